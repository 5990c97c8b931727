package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastleSide selects the kingside or queenside castle.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// RookHomeCol returns the column the castling rook starts on.
func (s CastleSide) RookHomeCol() int {
	if s == Kingside {
		return BoardSize - 1
	}
	return 0
}

// KingHomeCol is the column both kings start on.
const KingHomeCol = 4

// Board is an 8x8 grid of pieces plus the per-colour pawn skip square.
//
// Board is a plain value: copying the struct copies every piece, so a copy never aliases
// the original.
type Board struct {
	squares [BoardSize][BoardSize]Piece

	// The square a pawn of each colour passed over on its latest double step.
	// Indexed by colourIndex.
	skip [2]skipSquare
}

type skipSquare struct {
	pos Position
	set bool
}

// colourIndex maps White to 0 and Black to 1. Other values are rejected with false.
func colourIndex(colour Colour) (int, bool) {
	switch colour {
	case White:
		return 0, true
	case Black:
		return 1, true
	default:
		return 0, false
	}
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard 32-piece start position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[HomeRow(Black)][col] = B(backRank[col])
		b.squares[PawnRow(Black)][col] = B(Pawn)
		b.squares[PawnRow(White)][col] = W(Pawn)
		b.squares[HomeRow(White)][col] = W(backRank[col])
	}
}

// IsInside reports whether pos lies on the board.
func IsInside(pos Position) bool {
	return pos.IsInside()
}

// Get returns the piece at pos. It panics with an error wrapping errors.ErrOutOfBounds if
// pos is off the board; use Lookup when pos is untrusted.
func (b *Board) Get(pos Position) Piece {
	mustBeInside(pos)
	return b.squares[pos.Row][pos.Col]
}

// Set places a piece at pos, replacing any occupant. It panics like Get for squares off
// the board.
func (b *Board) Set(pos Position, piece Piece) {
	mustBeInside(pos)
	b.squares[pos.Row][pos.Col] = piece
}

// Clear empties the square at pos.
func (b *Board) Clear(pos Position) {
	b.Set(pos, Piece{})
}

// Lookup is the checked form of Get.
func (b *Board) Lookup(pos Position) (Piece, error) {
	if !pos.IsInside() {
		return Piece{}, fmt.Errorf("square %v: %w", pos, errors.ErrOutOfBounds)
	}
	return b.squares[pos.Row][pos.Col], nil
}

func mustBeInside(pos Position) {
	if !pos.IsInside() {
		panic(fmt.Errorf("square %v: %w", pos, errors.ErrOutOfBounds))
	}
}

// IsEmpty reports whether the square at pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos).IsEmpty()
}

// PiecePositions returns every occupied square in row-major order.
func (b *Board) PiecePositions() []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.squares[row][col].IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// PiecePositionsFor returns the squares occupied by pieces of the given colour,
// in row-major order.
func (b *Board) PiecePositionsFor(colour Colour) []Position {
	var positions []Position
	for _, pos := range b.PiecePositions() {
		if b.Get(pos).Colour == colour {
			positions = append(positions, pos)
		}
	}
	return positions
}

// KingPosition returns the square of the first king of the given colour.
func (b *Board) KingPosition(colour Colour) (Position, bool) {
	for _, pos := range b.PiecePositionsFor(colour) {
		if b.Get(pos).Type == King {
			return pos, true
		}
	}
	return Position{}, false
}

// PawnSkipPosition returns the square the colour's pawn skipped on its latest double step,
// if that step was the colour's most recent half-move.
func (b *Board) PawnSkipPosition(colour Colour) (Position, bool) {
	i, ok := colourIndex(colour)
	if !ok || !b.skip[i].set {
		return Position{}, false
	}
	return b.skip[i].pos, true
}

// SetPawnSkipPosition records the square skipped by a double pawn step of colour.
func (b *Board) SetPawnSkipPosition(colour Colour, pos Position) {
	if i, ok := colourIndex(colour); ok {
		b.skip[i] = skipSquare{pos: pos, set: true}
	}
}

// ClearPawnSkipPosition forgets the colour's skip square.
func (b *Board) ClearPawnSkipPosition(colour Colour) {
	if i, ok := colourIndex(colour); ok {
		b.skip[i] = skipSquare{}
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Counting holds the number of pieces on a board per colour and type.
type Counting struct {
	white [NumPieceTypes]int
	black [NumPieceTypes]int
	total int
}

// Increment adds one piece of the colour and type.
func (c *Counting) Increment(colour Colour, pieceType PieceType) {
	switch colour {
	case White:
		c.white[pieceType]++
	case Black:
		c.black[pieceType]++
	default:
		return
	}
	c.total++
}

// White returns the number of white pieces of the type.
func (c Counting) White(pieceType PieceType) int {
	return c.white[pieceType]
}

// Black returns the number of black pieces of the type.
func (c Counting) Black(pieceType PieceType) int {
	return c.black[pieceType]
}

// Of returns the number of pieces of the colour and type.
func (c Counting) Of(colour Colour, pieceType PieceType) int {
	if colour == White {
		return c.white[pieceType]
	}
	if colour == Black {
		return c.black[pieceType]
	}
	return 0
}

// Total returns the number of pieces on the board, kings included.
func (c Counting) Total() int {
	return c.total
}

// CountPieces counts the pieces on the board.
func (b *Board) CountPieces() Counting {
	var counting Counting
	for _, pos := range b.PiecePositions() {
		piece := b.Get(pos)
		counting.Increment(piece.Colour, piece.Type)
	}
	return counting
}

// CastleRight reports whether the colour's king and the rook for side both sit unmoved on
// their home squares. It does not look at the squares between them or at check.
func (b *Board) CastleRight(colour Colour, side CastleSide) bool {
	row := HomeRow(colour)
	king := b.squares[row][KingHomeCol]
	rook := b.squares[row][side.RookHomeCol()]
	return king.Is(colour, King) && !king.HasMoved &&
		rook.Is(colour, Rook) && !rook.HasMoved
}
