package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if any piece of the opponent could capture colour's king with
// one of its candidate moves. A colour without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	for _, pos := range board.PiecePositionsFor(colour.Opposite()) {
		if CanCaptureOpponentKing(board, pos) {
			return true
		}
	}
	return false
}

// CanCaptureEnPassant reports whether colour has a legal en passant capture onto the
// square the opponent's pawn skipped on the previous half-move.
func CanCaptureEnPassant(board *chess.Board, colour chess.Colour) bool {
	skip, ok := board.PawnSkipPosition(colour.Opposite())
	if !ok {
		return false
	}

	// A capturing pawn stands one row behind the skip square, on an adjacent file.
	behind := chess.Direction{RowDelta: -chess.ColourOffset(colour)}
	for _, side := range []chess.Direction{chess.West, chess.East} {
		from := skip.Add(behind).Add(side)
		if !from.IsInside() || !board.Get(from).Is(colour, chess.Pawn) {
			continue
		}
		if IsLegal(board, chess.NewEnPassantMove(from, skip)) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
