// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // No player (drawn results, empty squares)
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// ParseColour accepts "white"/"w" or "black"/"b" in any case.
func ParseColour(name string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return NoColour, fmt.Errorf("colour %q: %w", name, errors.ErrInvalidColour)
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// ColourOffset returns the row step of a pawn advance: -1 for White, +1 for Black.
// Row 0 is Black's back rank.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of a colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the pawns of a colour start on.
func PawnRow(colour Colour) int {
	return HomeRow(colour) + ColourOffset(colour)
}

// PromotionRow returns the row on which a pawn of the colour promotes.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may promote to, in generation order.
var PromotionTypes = [...]PieceType{Knight, Bishop, Rook, Queen}

// Piece is the occupant of a square. The zero Piece is an empty square.
//
// Pieces carry no position; the square holding a piece is always supplied by the caller.
// HasMoved is set the first time the piece is relocated and is consulted only for castling
// rights and the pawn double step.
type Piece struct {
	Type     PieceType
	Colour   Colour
	HasMoved bool
}

// NewPiece returns an unmoved piece.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates an unmoved white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates an unmoved black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether p is a piece of the given colour and type, ignoring HasMoved.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// Letter returns the layout letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a human readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}
