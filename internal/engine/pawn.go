package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates forward steps, the double step and diagonal captures including en
// passant for the pawn on from.
func pawnMoves(board *chess.Board, from chess.Position, pawn chess.Piece) []chess.Move {
	colour := pawn.Colour
	forward := chess.Direction{RowDelta: chess.ColourOffset(colour)}

	var moves []chess.Move

	// Forward moves
	one := from.Add(forward)
	if one.IsInside() && board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)

		two := one.Add(forward)
		if !pawn.HasMoved && two.IsInside() && board.IsEmpty(two) {
			moves = append(moves, chess.NewDoublePawnMove(from, two))
		}
	}

	// Diagonal captures
	skip, hasSkip := board.PawnSkipPosition(colour.Opposite())
	for _, side := range []chess.Direction{chess.West, chess.East} {
		to := from.Add(forward).Add(side)
		if !to.IsInside() {
			continue
		}
		if hasSkip && to == skip {
			moves = append(moves, chess.NewEnPassantMove(from, to))
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}

	return moves
}

// appendPawnMove appends a normal pawn move, or the four promotions when to is on the
// last row.
func appendPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour) []chess.Move {
	if to.Row != chess.PromotionRow(colour) {
		return append(moves, chess.NewNormalMove(from, to))
	}
	for _, pieceType := range chess.PromotionTypes {
		moves = append(moves, chess.NewPawnPromotion(from, to, pieceType))
	}
	return moves
}
