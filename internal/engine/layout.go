package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialLayout is the placement string of the standard start position.
const InitialLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParseLayout builds a board from a placement string: rows from row 0 (Black's back rank)
// down, separated by '/'; within a row a digit 1-8 skips that many files and a letter from
// "pnbrqk" places a piece (uppercase White, lowercase Black).
//
// Parsing stops at the first character that is not recognised or that would place a piece
// or advance past the edge of the board. The board is then returned as far as it was
// filled, together with a *errors.LayoutError wrapping errors.ErrInvalidLayout.
//
// Pawns that are not on their starting row are marked as moved.
func ParseLayout(layout string) (*chess.Board, error) {
	board := chess.NewBoard()
	row, col := 0, 0

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		fail := func() (*chess.Board, error) {
			return board, &errors.LayoutError{Err: errors.ErrInvalidLayout, Index: i, Char: c, Row: row, Col: col}
		}

		switch {
		case c == '/':
			if row+1 >= chess.BoardSize {
				return fail()
			}
			row++
			col = 0

		case c >= '1' && c <= '8':
			if col+int(c-'0') > chess.BoardSize {
				return fail()
			}
			col += int(c - '0')

		default:
			piece, ok := pieceFromLetter(c)
			pos := chess.Position{Row: row, Col: col}
			if !ok || !pos.IsInside() {
				return fail()
			}
			if piece.Type == chess.Pawn && row != chess.PawnRow(piece.Colour) {
				piece.HasMoved = true
			}
			board.Set(pos, piece)
			col++
		}
	}
	return board, nil
}

// MustParseLayout is like ParseLayout but panics on malformed input.
// It is intended for layouts known at compile time.
func MustParseLayout(layout string) *chess.Board {
	board, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return board
}

// pieceFromLetter maps a layout letter to an unmoved piece.
func pieceFromLetter(c byte) (chess.Piece, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	for pieceType := chess.Pawn; pieceType <= chess.King; pieceType++ {
		if pieceType.Letter() == c {
			return chess.NewPiece(colour, pieceType), true
		}
	}
	return chess.Piece{}, false
}

// BoardToLayout returns the placement string of board, the inverse of ParseLayout.
func BoardToLayout(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Position{Row: row, Col: col})
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// ValidateKings checks that each colour has exactly one king.
func ValidateKings(board *chess.Board) error {
	counting := board.CountPieces()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := counting.Of(colour, chess.King); n != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidLayout)
		}
	}
	return nil
}
