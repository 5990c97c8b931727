package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf positions of the legal move tree depth plies below board, with
// colour to move. Draw rules are not applied; only positions without legal moves end a
// branch early.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := AllLegalMovesFor(board, colour)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		nodes += Perft(playOn(board, colour, move), colour.Opposite(), depth-1)
	}
	return nodes
}

// playOn returns a copy of board with move played by colour, following the same skip
// square bookkeeping as Game.MakeMove.
func playOn(board *chess.Board, colour chess.Colour, move chess.Move) *chess.Board {
	child := board.Copy()
	child.ClearPawnSkipPosition(colour)
	Execute(child, move)
	return child
}

// Divide returns the node count below each root move, in move generation order.
func Divide(board *chess.Board, colour chess.Colour, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := AllLegalMovesFor(board, colour)
	entries := make([]DivideEntry, len(moves))
	for i, move := range moves {
		entries[i] = DivideEntry{
			Move:  move,
			Nodes: Perft(playOn(board, colour, move), colour.Opposite(), depth-1),
		}
	}
	return entries
}

// ParallelDivide is Divide with the root moves spread over a worker pool.
func ParallelDivide(board *chess.Board, colour chess.Colour, depth, workers int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := AllLegalMovesFor(board, colour)
	items := make([]worker.WorkItem, len(moves))
	for i, move := range moves {
		items[i] = worker.WorkItem{
			Board:  playOn(board, colour, move),
			Colour: colour.Opposite(),
			Move:   move,
			Depth:  depth - 1,
			Index:  i,
		}
	}

	pool := worker.NewPoolWithOptions(perftItem, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	results := pool.RunAll(items)

	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}

// ParallelPerft is Perft with the root moves spread over a worker pool.
func ParallelPerft(board *chess.Board, colour chess.Colour, depth, workers int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, entry := range ParallelDivide(board, colour, depth, workers) {
		nodes += entry.Nodes
	}
	return nodes
}

func perftItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: Perft(item.Board, item.Colour, item.Depth),
	}
}
