package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Reference node counts from the widely published perft tables.
var perftPositions = []struct {
	name   string
	layout string
	colour chess.Colour
	counts []uint64 // index i is depth i+1
}{
	{"start position", InitialLayout, chess.White, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", chess.White, []uint64{48, 2039}},
	{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8", chess.White, []uint64{14, 191, 2812}},
	{"promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N", chess.Black, []uint64{24, 496}},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustLayout(t, tt.layout)
			for i, want := range tt.counts {
				depth := i + 1
				if got := Perft(board, tt.colour, depth); got != want {
					t.Errorf("Perft(depth %d) = %d; want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	if got := Perft(chess.NewInitialBoard(), chess.White, 0); got != 1 {
		t.Errorf("Perft(depth 0) = %d; want 1", got)
	}
}

func TestPerft_DoesNotModifyBoard(t *testing.T) {
	board := mustLayout(t, perftPositions[1].layout)
	before := BoardToLayout(board)
	Perft(board, chess.White, 2)
	if after := BoardToLayout(board); after != before {
		t.Errorf("board changed: %q -> %q", before, after)
	}
}

func TestDivide(t *testing.T) {
	board := chess.NewInitialBoard()
	entries := Divide(board, chess.White, 2)

	if len(entries) != 20 {
		t.Fatalf("len(Divide()) = %d; want 20", len(entries))
	}
	var total uint64
	for _, e := range entries {
		if e.Nodes != 20 {
			t.Errorf("Divide()[%s] = %d; want 20", e.Move, e.Nodes)
		}
		total += e.Nodes
	}
	if total != 400 {
		t.Errorf("sum of Divide() = %d; want 400", total)
	}
	if Divide(board, chess.White, 0) != nil {
		t.Error("Divide(depth 0) != nil")
	}
}

func TestParallelPerft(t *testing.T) {
	for _, workers := range []int{1, 2, 4} {
		for _, tt := range perftPositions[:3] {
			board := mustLayout(t, tt.layout)
			depth := len(tt.counts)
			want := tt.counts[depth-1]
			if got := ParallelPerft(board, tt.colour, depth, workers); got != want {
				t.Errorf("%s: ParallelPerft(depth %d, %d workers) = %d; want %d",
					tt.name, depth, workers, got, want)
			}
		}
	}
}

func TestParallelDivide_MatchesDivide(t *testing.T) {
	board := mustLayout(t, perftPositions[1].layout)
	want := Divide(board, chess.White, 2)
	got := ParallelDivide(board, chess.White, 2, 3)

	if len(got) != len(want) {
		t.Fatalf("len(ParallelDivide()) = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParallelDivide()[%d] = %s %d; want %s %d",
				i, got[i].Move, got[i].Nodes, want[i].Move, want[i].Nodes)
		}
	}
}
