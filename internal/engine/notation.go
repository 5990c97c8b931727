package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveText is a parsed long coordinate move such as "e7e8q".
type MoveText struct {
	From      chess.Position
	To        chess.Position
	Promotion chess.PieceType // Empty when no suffix was given
}

// ParseMoveText parses long coordinate notation: origin square, destination square and an
// optional promotion letter (n, b, r or q, either case).
func ParseMoveText(text string) (MoveText, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return MoveText{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return MoveText{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return MoveText{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}

	mt := MoveText{From: from, To: to}
	if len(text) == 5 {
		piece, ok := pieceFromLetter(text[4])
		if !ok || !isPromotionType(piece.Type) {
			return MoveText{}, fmt.Errorf("move %q: bad promotion %q: %w", text, text[4], errors.ErrInvalidMoveText)
		}
		mt.Promotion = piece.Type
	}
	return mt, nil
}

// FindMove resolves coordinate text against a set of moves, normally the legal moves of
// the side to move. A promotion without a suffix resolves to the queen promotion.
func FindMove(moves []chess.Move, text string) (chess.Move, error) {
	mt, err := ParseMoveText(text)
	if err != nil {
		return chess.Move{}, err
	}

	promotion := mt.Promotion
	if promotion == chess.Empty {
		promotion = chess.Queen
	}
	for _, move := range moves {
		if move.From != mt.From || move.To != mt.To {
			continue
		}
		if move.Class == chess.PawnPromotion && move.Promotion != promotion {
			continue
		}
		if move.Class != chess.PawnPromotion && mt.Promotion != chess.Empty {
			continue
		}
		return move, nil
	}
	return chess.Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
}

// MoveStrings returns the coordinate text of each move.
func MoveStrings(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, move := range moves {
		texts[i] = move.String()
	}
	return texts
}
