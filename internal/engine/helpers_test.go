package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func sq(t testing.TB, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return pos
}

func mustLayout(t testing.TB, layout string) *chess.Board {
	t.Helper()
	board, err := ParseLayout(layout)
	if err != nil {
		t.Fatalf("ParseLayout(%q) error: %v", layout, err)
	}
	return board
}

func mustGame(t testing.TB, layout string, current chess.Colour, opts ...GameOption) *Game {
	t.Helper()
	game, err := NewGameFromLayout(layout, current, opts...)
	if err != nil {
		t.Fatalf("NewGameFromLayout(%q) error: %v", layout, err)
	}
	return game
}

func play(t testing.TB, game *Game, texts ...string) {
	t.Helper()
	for _, text := range texts {
		if _, err := game.Play(text); err != nil {
			t.Fatalf("Play(%q) error: %v", text, err)
		}
	}
}

// sortedTexts returns the coordinate text of moves in sorted order.
func sortedTexts(moves []chess.Move) []string {
	texts := MoveStrings(moves)
	sort.Strings(texts)
	return texts
}

func containsText(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
