package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// slidingMoves walks each direction one square at a time, stopping at the edge of the
// board or at the first occupied square. An opposing piece on that square is a capture.
func slidingMoves(board *chess.Board, from chess.Position, colour chess.Colour, dirs []chess.Direction) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		for to := from.Add(dir); to.IsInside(); to = to.Add(dir) {
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewNormalMove(from, to))
				continue
			}
			if target.Colour != colour {
				moves = append(moves, chess.NewNormalMove(from, to))
			}
			break // Blocked
		}
	}
	return moves
}

// stepMoves tries a single hop along each offset: empty or opponent-occupied squares
// inside the board are destinations.
func stepMoves(board *chess.Board, from chess.Position, colour chess.Colour, offsets []chess.Direction) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		to := from.Add(offset)
		if canLandOn(board, to, colour) {
			moves = append(moves, chess.NewNormalMove(from, to))
		}
	}
	return moves
}

// pathClear reports whether every square strictly between a and b on the same row is empty.
func pathClear(board *chess.Board, a, b chess.Position) bool {
	lo, hi := a.Col, b.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if !board.IsEmpty(chess.Position{Row: a.Row, Col: col}) {
			return false
		}
	}
	return true
}
