package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	straightDirs = []chess.Direction{chess.North, chess.South, chess.East, chess.West}
	diagonalDirs = []chess.Direction{chess.NorthWest, chess.NorthEast, chess.SouthWest, chess.SouthEast}
	allDirs      = append(append([]chess.Direction{}, straightDirs...), diagonalDirs...)

	knightJumps = buildKnightJumps()
)

// buildKnightJumps returns the eight (2,1) offsets: two steps along one axis and one
// along the other.
func buildKnightJumps() []chess.Direction {
	var jumps []chess.Direction
	for _, v := range []chess.Direction{chess.North, chess.South} {
		for _, h := range []chess.Direction{chess.West, chess.East} {
			jumps = append(jumps, v.Scale(2).Add(h), h.Scale(2).Add(v))
		}
	}
	return jumps
}

// CandidateMoves returns the moves the piece on from can make without regard for its own
// king's safety. Castles are not candidates; LegalMoves adds them for an unmoved king.
// An empty square yields no moves.
func CandidateMoves(board *chess.Board, from chess.Position) []chess.Move {
	piece := board.Get(from)

	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, from, piece)
	case chess.Knight:
		return stepMoves(board, from, piece.Colour, knightJumps)
	case chess.Bishop:
		return slidingMoves(board, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, from, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, from, piece.Colour, allDirs)
	case chess.King:
		return stepMoves(board, from, piece.Colour, allDirs)
	case chess.Empty, chess.NumPieceTypes:
		return nil
	}
	return nil
}

// CanCaptureOpponentKing reports whether one of the candidate moves of the piece on from
// lands on the opposing king.
func CanCaptureOpponentKing(board *chess.Board, from chess.Position) bool {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	for _, move := range CandidateMoves(board, from) {
		target := board.Get(move.To)
		if target.Type == chess.King && target.Colour != piece.Colour {
			return true
		}
	}
	return false
}

// canLandOn reports whether a piece of colour may finish a move on pos.
func canLandOn(board *chess.Board, pos chess.Position, colour chess.Colour) bool {
	if !pos.IsInside() {
		return false
	}
	target := board.Get(pos)
	return target.IsEmpty() || target.Colour != colour
}
