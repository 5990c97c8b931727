package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Execute plays move on board without checking legality.
// Returns true if the move resets the no-progress count (a capture or a pawn move).
func Execute(board *chess.Board, move chess.Move) bool {
	switch move.Class {
	case chess.NormalMove:
		return applyNormalMove(board, move.From, move.To)

	case chess.DoublePawnMove:
		board.SetPawnSkipPosition(board.Get(move.From).Colour, move.Skipped)
		applyNormalMove(board, move.From, move.To)
		return true

	case chess.EnPassantMove:
		applyNormalMove(board, move.From, move.To)
		board.Clear(move.Captured)
		return true

	case chess.KingsideCastle, chess.QueensideCastle:
		applyNormalMove(board, move.From, move.To)
		applyNormalMove(board, move.RookFrom, move.RookTo)
		return false

	case chess.PawnPromotion:
		applyPromotion(board, move)
		return true
	}
	return false
}

// applyNormalMove relocates the piece on from to to and marks it moved.
func applyNormalMove(board *chess.Board, from, to chess.Position) bool {
	piece := board.Get(from)
	capture := !board.IsEmpty(to)

	piece.HasMoved = true
	board.Set(to, piece)
	board.Clear(from)

	return capture || piece.Type == chess.Pawn
}

// applyPromotion replaces the pawn on move.From with a new piece on move.To.
func applyPromotion(board *chess.Board, move chess.Move) {
	pawn := board.Get(move.From)
	board.Clear(move.From)

	promoted := move.Promotion
	if !isPromotionType(promoted) {
		promoted = chess.Queen // Default to queen
	}
	board.Set(move.To, chess.Piece{Type: promoted, Colour: pawn.Colour, HasMoved: true})
}

func isPromotionType(pieceType chess.PieceType) bool {
	for _, t := range chess.PromotionTypes {
		if t == pieceType {
			return true
		}
	}
	return false
}
