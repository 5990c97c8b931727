package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsLegal reports whether playing move would leave the mover's own king safe.
// The move is tried on a copy of board; board itself is never modified.
func IsLegal(board *chess.Board, move chess.Move) bool {
	if move.IsCastle() {
		return isCastleLegal(board, move)
	}

	colour := board.Get(move.From).Colour
	scratch := board.Copy()
	Execute(scratch, move)
	return !IsInCheck(scratch, colour)
}

// LegalMoves returns the legal moves of the piece on from, castles included.
func LegalMoves(board *chess.Board, from chess.Position) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	candidates := CandidateMoves(board, from)
	if piece.Type == chess.King {
		candidates = append(candidates, castleMoves(board, from, piece)...)
	}

	var legal []chess.Move
	for _, move := range candidates {
		if IsLegal(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// AllLegalMovesFor returns every legal move of colour, grouped by origin square in
// row-major order.
func AllLegalMovesFor(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, pos := range board.PiecePositionsFor(colour) {
		moves = append(moves, LegalMoves(board, pos)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, pos := range board.PiecePositionsFor(colour) {
		for _, move := range CandidateMoves(board, pos) {
			if IsLegal(board, move) {
				return true
			}
		}
	}
	// A castle is never the only legal move: the king's one-step move toward the rook
	// is then legal too.
	return false
}
