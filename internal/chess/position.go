package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Position is a square on the board. Row 0 is Black's back rank and column 0 is the a-file,
// so (0, 0) is a8 and (7, 7) is h1.
type Position struct {
	Row int
	Col int
}

// Add returns the position one step of dir away from p. The result may be off the board.
func (p Position) Add(dir Direction) Position {
	return Position{Row: p.Row + dir.RowDelta, Col: p.Col + dir.ColDelta}
}

// IsInside reports whether p lies on the board.
func (p Position) IsInside() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// SquareColour returns the colour of the square: White iff row+col is even.
func (p Position) SquareColour() Colour {
	if (p.Row+p.Col)%2 == 0 {
		return White
	}
	return Black
}

// String returns the algebraic square name (e.g. "e2"), or the raw coordinates if p is
// off the board.
func (p Position) String() string {
	if !p.IsInside() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('8' - p.Row)})
}

// ParseSquare converts an algebraic square name such as "e2" into a Position.
func ParseSquare(name string) (Position, error) {
	if len(name) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Position{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// Direction is a movement vector measured in rows and columns.
type Direction struct {
	RowDelta int
	ColDelta int
}

// The four orthogonal directions, as seen from White's side of the board.
var (
	North = Direction{RowDelta: -1, ColDelta: 0}
	South = Direction{RowDelta: 1, ColDelta: 0}
	East  = Direction{RowDelta: 0, ColDelta: 1}
	West  = Direction{RowDelta: 0, ColDelta: -1}
)

// The four diagonal directions.
var (
	NorthEast = North.Add(East)
	NorthWest = North.Add(West)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
)

// Add returns the vector sum of d and other.
func (d Direction) Add(other Direction) Direction {
	return Direction{RowDelta: d.RowDelta + other.RowDelta, ColDelta: d.ColDelta + other.ColDelta}
}

// Scale returns d multiplied by n.
func (d Direction) Scale(n int) Direction {
	return Direction{RowDelta: d.RowDelta * n, ColDelta: d.ColDelta * n}
}
