// Package engine provides move generation, legality checking and the game state machine.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can ever deliver checkmate.
// Insufficient material covers:
// - K vs K
// - K+B vs K and K+N vs K (either side holding the minor piece)
// - K+B vs K+B with both bishops on the same square colour
//
// K+N+N vs K is not covered.
func HasInsufficientMaterial(board *chess.Board) bool {
	counting := board.CountPieces()

	switch counting.Total() {
	case 2:
		return true
	case 3:
		return counting.White(chess.Bishop)+counting.Black(chess.Bishop) == 1 ||
			counting.White(chess.Knight)+counting.Black(chess.Knight) == 1
	case 4:
		if counting.White(chess.Bishop) != 1 || counting.Black(chess.Bishop) != 1 {
			return false
		}
		white, _ := findPiece(board, chess.White, chess.Bishop)
		black, _ := findPiece(board, chess.Black, chess.Bishop)
		return white.SquareColour() == black.SquareColour()
	default:
		return false
	}
}

// findPiece returns the first square in row-major order holding a piece of the colour
// and type.
func findPiece(board *chess.Board, colour chess.Colour, pieceType chess.PieceType) (chess.Position, bool) {
	for _, pos := range board.PiecePositionsFor(colour) {
		if board.Get(pos).Type == pieceType {
			return pos, true
		}
	}
	return chess.Position{}, false
}

// standardMaterial is the piece count of each side in the initial position.
var standardMaterial = map[chess.PieceType]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// IsStandardMaterial checks if the board holds exactly the material of the initial position.
func IsStandardMaterial(board *chess.Board) bool {
	counting := board.CountPieces()
	for pieceType, expected := range standardMaterial {
		if counting.White(pieceType) != expected || counting.Black(pieceType) != expected {
			return false
		}
	}
	return true
}
