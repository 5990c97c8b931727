// Package hashing provides canonical position keys and repetition tracking.
package hashing

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// NoRights is the castling field of a key when neither side may castle.
const NoRights = "-"

// EncodePosition builds the canonical key of a position from its placement string (as
// produced by engine.BoardToLayout), the side to move, the castling rights in "KQkq"
// form and the file of a capturable en passant square ("" for none).
//
// Two positions share a key exactly when they repeat in the sense of the draw rules.
func EncodePosition(placement string, toMove chess.Colour, rights, epFile string) string {
	if rights == "" {
		rights = NoRights
	}
	if epFile == "" {
		epFile = "-"
	}

	var sb strings.Builder
	sb.Grow(len(placement) + len(rights) + len(epFile) + 4)
	sb.WriteString(placement)
	sb.WriteByte(' ')
	sb.WriteByte(sideLetter(toMove))
	sb.WriteByte(' ')
	sb.WriteString(rights)
	sb.WriteByte(' ')
	sb.WriteString(epFile)
	return sb.String()
}

func sideLetter(colour chess.Colour) byte {
	if colour == chess.Black {
		return 'b'
	}
	return 'w'
}

// History counts how often each position key has occurred since the last reset.
type History struct {
	counts map[string]int
	total  int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{counts: make(map[string]int)}
}

// Record adds one occurrence of key and returns its new count.
func (h *History) Record(key string) int {
	h.counts[key]++
	h.total++
	return h.counts[key]
}

// Count returns the number of occurrences of key.
func (h *History) Count(key string) int {
	return h.counts[key]
}

// Reset forgets every recorded position.
func (h *History) Reset() {
	h.counts = make(map[string]int)
	h.total = 0
}

// Len returns the number of distinct keys recorded.
func (h *History) Len() int {
	return len(h.counts)
}

// Total returns the number of occurrences recorded, repeats included.
func (h *History) Total() int {
	return h.total
}

// Clone returns an independent copy of the history.
func (h *History) Clone() *History {
	clone := &History{counts: make(map[string]int, len(h.counts)), total: h.total}
	for key, n := range h.counts {
		clone.counts[key] = n
	}
	return clone
}
