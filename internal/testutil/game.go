package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustSquare parses a square name such as "e4" and calls t.Fatal on failure.
func MustSquare(t testing.TB, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("invalid square %q: %v", name, err)
	}
	return pos
}

// MustGame builds a game from a placement string with current to move.
// It calls t.Fatal if the layout is rejected.
func MustGame(t testing.TB, layout string, current chess.Colour, opts ...engine.GameOption) *engine.Game {
	t.Helper()
	game, err := engine.NewGameFromLayout(layout, current, opts...)
	if err != nil {
		t.Fatalf("failed to build game from %q: %v", layout, err)
	}
	return game
}

// PlayMoves plays each coordinate move in order and calls t.Fatal on the first
// one that is rejected.
func PlayMoves(t testing.TB, game *engine.Game, moves ...string) {
	t.Helper()
	for i, text := range moves {
		if _, err := game.Play(text); err != nil {
			t.Fatalf("move %d (%s): %v", i+1, text, err)
		}
	}
}

// SortedMoveTexts returns the coordinate text of moves in sorted order, for
// comparisons that do not depend on generation order.
func SortedMoveTexts(moves []chess.Move) []string {
	texts := engine.MoveStrings(moves)
	sort.Strings(texts)
	return texts
}
