package chess

// MoveClass categorizes the different kinds of chess moves.
type MoveClass int

const (
	NormalMove MoveClass = iota
	DoublePawnMove
	EnPassantMove
	KingsideCastle
	QueensideCastle
	PawnPromotion
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case NormalMove:
		return "Normal"
	case DoublePawnMove:
		return "DoublePawn"
	case EnPassantMove:
		return "EnPassant"
	case KingsideCastle:
		return "CastleKS"
	case QueensideCastle:
		return "CastleQS"
	case PawnPromotion:
		return "PawnPromotion"
	default:
		return "Unknown"
	}
}

// Move describes one ply. Which of the extra fields are meaningful depends on Class.
// Move is comparable, so two moves generated for the same position can be matched with ==.
type Move struct {
	Class MoveClass
	From  Position
	To    Position

	// Skipped is the square a DoublePawnMove passes over.
	Skipped Position

	// Captured is the square of the pawn removed by an EnPassantMove.
	Captured Position

	// RookFrom, RookTo and KingStep describe a castle.
	RookFrom Position
	RookTo   Position
	KingStep Direction

	// Promotion is the piece type a PawnPromotion creates.
	Promotion PieceType
}

// NewNormalMove creates a move that relocates a piece, possibly capturing.
func NewNormalMove(from, to Position) Move {
	return Move{Class: NormalMove, From: from, To: to}
}

// NewDoublePawnMove creates a two-square pawn advance.
func NewDoublePawnMove(from, to Position) Move {
	return Move{
		Class:   DoublePawnMove,
		From:    from,
		To:      to,
		Skipped: Position{Row: (from.Row + to.Row) / 2, Col: from.Col},
	}
}

// NewEnPassantMove creates an en passant capture. The captured pawn stands beside the
// origin, on the destination's file.
func NewEnPassantMove(from, to Position) Move {
	return Move{
		Class:    EnPassantMove,
		From:     from,
		To:       to,
		Captured: Position{Row: from.Row, Col: to.Col},
	}
}

// NewCastle creates a castle of the given class for the king standing on kingPos.
// Any class other than KingsideCastle is treated as QueensideCastle.
func NewCastle(class MoveClass, kingPos Position) Move {
	row := kingPos.Row
	if class == KingsideCastle {
		return Move{
			Class:    KingsideCastle,
			From:     kingPos,
			To:       Position{Row: row, Col: 6},
			RookFrom: Position{Row: row, Col: Kingside.RookHomeCol()},
			RookTo:   Position{Row: row, Col: 5},
			KingStep: East,
		}
	}
	return Move{
		Class:    QueensideCastle,
		From:     kingPos,
		To:       Position{Row: row, Col: 2},
		RookFrom: Position{Row: row, Col: Queenside.RookHomeCol()},
		RookTo:   Position{Row: row, Col: 3},
		KingStep: West,
	}
}

// NewPawnPromotion creates a pawn move onto the last rank that promotes to pieceType.
func NewPawnPromotion(from, to Position, pieceType PieceType) Move {
	return Move{Class: PawnPromotion, From: from, To: to, Promotion: pieceType}
}

// IsCastle reports whether m is a castle.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// CastleSide returns the side of a castle move.
func (m Move) CastleSide() CastleSide {
	if m.Class == KingsideCastle {
		return Kingside
	}
	return Queenside
}

// String returns the move in long coordinate form, e.g. "e2e4", "e7e8q" or "e1g1".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Class == PawnPromotion {
		s += string(rune(B(m.Promotion).Letter()))
	}
	return s
}
