package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func sq(t *testing.T, name string) Position {
	t.Helper()
	pos, err := ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return pos
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				pos := Position{Row: row, Col: col}
				if !b.IsEmpty(pos) {
					t.Errorf("IsEmpty(%v) = false; want true", pos)
				}
			}
		}
	})

	t.Run("no skip squares", func(t *testing.T) {
		if _, ok := b.PawnSkipPosition(White); ok {
			t.Error("White skip square set on empty board")
		}
		if _, ok := b.PawnSkipPosition(Black); ok {
			t.Error("Black skip square set on empty board")
		}
	})

	t.Run("no pieces", func(t *testing.T) {
		if got := len(b.PiecePositions()); got != 0 {
			t.Errorf("len(PiecePositions()) = %d; want 0", got)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		square string
		piece  Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Empty squares
		{"empty e3", "e3", Piece{}},
		{"empty d4", "d4", Piece{}},
		{"empty c6", "c6", Piece{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(sq(t, tt.square)); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}

	t.Run("thirty-two pieces", func(t *testing.T) {
		if got := len(b.PiecePositions()); got != 32 {
			t.Errorf("len(PiecePositions()) = %d; want 32", got)
		}
		if got := len(b.PiecePositionsFor(White)); got != 16 {
			t.Errorf("len(PiecePositionsFor(White)) = %d; want 16", got)
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		for _, colour := range []Colour{White, Black} {
			for _, side := range []CastleSide{Kingside, Queenside} {
				if !b.CastleRight(colour, side) {
					t.Errorf("CastleRight(%v, %v) = false; want true", colour, side)
				}
			}
		}
	})
}

func TestPiecePositions_RowMajor(t *testing.T) {
	b := NewBoard()
	b.Set(sq(t, "h1"), W(King))
	b.Set(sq(t, "a8"), B(King))
	b.Set(sq(t, "d4"), W(Knight))

	got := b.PiecePositions()
	want := []Position{{0, 0}, {4, 3}, {7, 7}}
	if len(got) != len(want) {
		t.Fatalf("PiecePositions() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PiecePositions()[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	// A second call must produce the same sequence.
	again := b.PiecePositions()
	for i := range got {
		if again[i] != got[i] {
			t.Errorf("second PiecePositions()[%d] = %v; want %v", i, again[i], got[i])
		}
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := NewBoard()
	off := Position{Row: 8, Col: 0}

	t.Run("Lookup returns ErrOutOfBounds", func(t *testing.T) {
		_, err := b.Lookup(off)
		if !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("Lookup(%v) error = %v; want ErrOutOfBounds", off, err)
		}
	})

	t.Run("Get panics with ErrOutOfBounds", func(t *testing.T) {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, chesserrors.ErrOutOfBounds) {
				t.Errorf("Get(%v) panic = %v; want ErrOutOfBounds", off, r)
			}
		}()
		b.Get(off)
	})
}

func TestBoardCopy_Independent(t *testing.T) {
	original := NewInitialBoard()
	copied := original.Copy()

	copied.Clear(sq(t, "e2"))
	copied.Set(sq(t, "e4"), Piece{Type: Pawn, Colour: White, HasMoved: true})
	copied.SetPawnSkipPosition(White, sq(t, "e3"))

	if original.IsEmpty(sq(t, "e2")) {
		t.Error("clearing e2 on copy emptied original")
	}
	if !original.IsEmpty(sq(t, "e4")) {
		t.Error("setting e4 on copy changed original")
	}
	if _, ok := original.PawnSkipPosition(White); ok {
		t.Error("skip square on copy leaked into original")
	}

	original.Set(sq(t, "a1"), Piece{Type: Rook, Colour: White, HasMoved: true})
	if copied.Get(sq(t, "a1")).HasMoved {
		t.Error("marking original rook moved changed copy")
	}
}

func TestPawnSkipPosition(t *testing.T) {
	b := NewBoard()
	e3 := sq(t, "e3")

	b.SetPawnSkipPosition(White, e3)
	got, ok := b.PawnSkipPosition(White)
	if !ok || got != e3 {
		t.Errorf("PawnSkipPosition(White) = %v, %v; want %v, true", got, ok, e3)
	}
	if _, ok := b.PawnSkipPosition(Black); ok {
		t.Error("PawnSkipPosition(Black) set; want unset")
	}

	b.ClearPawnSkipPosition(White)
	if _, ok := b.PawnSkipPosition(White); ok {
		t.Error("PawnSkipPosition(White) still set after clear")
	}

	b.SetPawnSkipPosition(NoColour, e3)
	if _, ok := b.PawnSkipPosition(NoColour); ok {
		t.Error("NoColour must never hold a skip square")
	}
}

func TestCountPieces(t *testing.T) {
	counting := NewInitialBoard().CountPieces()

	tests := []struct {
		colour    Colour
		pieceType PieceType
		want      int
	}{
		{White, Pawn, 8},
		{Black, Pawn, 8},
		{White, Knight, 2},
		{Black, Bishop, 2},
		{White, Rook, 2},
		{Black, Queen, 1},
		{White, King, 1},
	}
	for _, tt := range tests {
		if got := counting.Of(tt.colour, tt.pieceType); got != tt.want {
			t.Errorf("Of(%v, %v) = %d; want %d", tt.colour, tt.pieceType, got, tt.want)
		}
	}
	if got := counting.Total(); got != 32 {
		t.Errorf("Total() = %d; want 32", got)
	}
	if counting.White(Queen) != 1 || counting.Black(King) != 1 {
		t.Errorf("White(Queen), Black(King) = %d, %d; want 1, 1", counting.White(Queen), counting.Black(King))
	}
}

func TestCastleRight(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		colour Colour
		side   CastleSide
		want   bool
	}{
		{
			name:   "unmoved king and rook",
			setup:  func(b *Board) {},
			colour: White,
			side:   Kingside,
			want:   true,
		},
		{
			name: "king moved",
			setup: func(b *Board) {
				b.Set(Position{7, 4}, Piece{Type: King, Colour: White, HasMoved: true})
			},
			colour: White,
			side:   Queenside,
			want:   false,
		},
		{
			name: "rook moved",
			setup: func(b *Board) {
				b.Set(Position{0, 7}, Piece{Type: Rook, Colour: Black, HasMoved: true})
			},
			colour: Black,
			side:   Kingside,
			want:   false,
		},
		{
			name: "other rook moved",
			setup: func(b *Board) {
				b.Set(Position{0, 7}, Piece{Type: Rook, Colour: Black, HasMoved: true})
			},
			colour: Black,
			side:   Queenside,
			want:   true,
		},
		{
			name: "rook missing",
			setup: func(b *Board) {
				b.Clear(Position{7, 0})
			},
			colour: White,
			side:   Queenside,
			want:   false,
		},
		{
			name: "wrong colour rook",
			setup: func(b *Board) {
				b.Set(Position{7, 7}, B(Rook))
			},
			colour: White,
			side:   Kingside,
			want:   false,
		},
		{
			name: "pieces in between are ignored",
			setup: func(b *Board) {
				// the initial board still has knights and bishops in the way
			},
			colour: Black,
			side:   Queenside,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInitialBoard()
			tt.setup(b)
			if got := b.CastleRight(tt.colour, tt.side); got != tt.want {
				t.Errorf("CastleRight(%v, %v) = %v; want %v", tt.colour, tt.side, got, tt.want)
			}
		})
	}
}

func TestKingPosition(t *testing.T) {
	b := NewInitialBoard()
	if got, ok := b.KingPosition(White); !ok || got != sq(t, "e1") {
		t.Errorf("KingPosition(White) = %v, %v; want e1, true", got, ok)
	}
	if got, ok := b.KingPosition(Black); !ok || got != sq(t, "e8") {
		t.Errorf("KingPosition(Black) = %v, %v; want e8, true", got, ok)
	}
	if _, ok := NewBoard().KingPosition(White); ok {
		t.Error("KingPosition(White) on empty board = true; want false")
	}
}
