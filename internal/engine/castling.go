package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleMoves returns the castles the king on from may attempt: the king and rook still
// hold their castle right and every square between them is empty. Whether the king passes
// through check is decided later by isCastleLegal.
func castleMoves(board *chess.Board, from chess.Position, king chess.Piece) []chess.Move {
	colour := king.Colour
	home := chess.Position{Row: chess.HomeRow(colour), Col: chess.KingHomeCol}
	if king.HasMoved || from != home {
		return nil
	}

	var moves []chess.Move
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !board.CastleRight(colour, side) {
			continue
		}
		rook := chess.Position{Row: home.Row, Col: side.RookHomeCol()}
		if !pathClear(board, home, rook) {
			continue
		}
		class := chess.KingsideCastle
		if side == chess.Queenside {
			class = chess.QueensideCastle
		}
		moves = append(moves, chess.NewCastle(class, home))
	}
	return moves
}

// isCastleLegal rejects a castle if the king is in check now, or would be on any square
// it steps to on its way to the destination.
func isCastleLegal(board *chess.Board, move chess.Move) bool {
	colour := board.Get(move.From).Colour
	if IsInCheck(board, colour) {
		return false
	}

	scratch := board.Copy()
	king := move.From
	for king != move.To {
		next := king.Add(move.KingStep)
		applyNormalMove(scratch, king, next)
		king = next
		if IsInCheck(scratch, colour) {
			return false
		}
	}
	return true
}

// CastlingRights returns the rights of both colours in "KQkq" form, or "" if none remain.
func CastlingRights(board *chess.Board) string {
	var rights []byte
	for _, r := range []struct {
		colour chess.Colour
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	} {
		if board.CastleRight(r.colour, r.side) {
			rights = append(rights, r.letter)
		}
	}
	return string(rights)
}
