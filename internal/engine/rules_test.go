package engine

import "testing"

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   bool
	}{
		{"kings only", "k7/8/8/8/8/8/8/K7", true},
		{"white bishop", "k7/8/8/8/8/8/8/KB6", true},
		{"white knight", "k7/8/8/8/8/8/8/KN6", true},
		{"black knight", "kn6/8/8/8/8/8/8/K7", true},
		{"bishops on same colour", "k4b2/8/8/8/8/8/8/K1B5", true},
		{"bishops on opposite colours", "k1b5/8/8/8/8/8/8/K1B5", false},
		{"bishop against knight", "kn6/8/8/8/8/8/8/KB6", false},
		{"two knights", "k7/8/8/8/8/8/8/KNN5", false},
		{"rook", "k7/8/8/8/8/8/8/KR6", false},
		{"pawn", "k7/8/8/8/8/8/P7/K7", false},
		{"two white bishops", "k7/8/8/8/8/8/8/KBB5", false},
		{"start position", InitialLayout, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasInsufficientMaterial(mustLayout(t, tt.layout)); got != tt.want {
				t.Errorf("HasInsufficientMaterial(%q) = %v; want %v", tt.layout, got, tt.want)
			}
		})
	}
}

func TestIsStandardMaterial(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   bool
	}{
		{"start position", InitialLayout, true},
		{"missing pawn", "rnbqkbnr/ppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR", false},
		{"pieces moved", "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR", true},
		{"kings only", "k7/8/8/8/8/8/8/K7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStandardMaterial(mustLayout(t, tt.layout)); got != tt.want {
				t.Errorf("IsStandardMaterial() = %v; want %v", got, tt.want)
			}
		})
	}
}
