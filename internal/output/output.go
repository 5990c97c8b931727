package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DefaultLineLength is the width at which move lists are wrapped.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a plain-text report of the game to cfg.OutputFile.
func OutputGame(game *engine.Game, cfg *config.Config) {
	writeReport(cfg.OutputFile, game, DefaultLineLength)
}

// writeReport writes the position, the moves played so far and either the legal moves
// or the result.
//
//	Layout:   rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR
//	To move:  black
//	Castling: KQkq
//	Moves:    e2e4
//	Legal:    a7a6 a7a5 ...
func writeReport(w io.Writer, game *engine.Game, lineLength int) {
	fmt.Fprintf(w, "Layout:   %s\n", game.Layout())
	fmt.Fprintf(w, "To move:  %s\n", colorName(game.CurrentPlayer()))

	rights := engine.CastlingRights(game.Board())
	if rights == "" {
		rights = "-"
	}
	fmt.Fprintf(w, "Castling: %s\n", rights)

	if game.InCheck() {
		fmt.Fprintln(w, "Check:    yes")
	}

	writeMoveList(w, "Moves:", engine.MoveStrings(game.History()), lineLength)

	if result, ok := game.Result(); ok {
		fmt.Fprintf(w, "Result:   %s\n", result)
		return
	}
	legal := engine.MoveStrings(game.AllLegalMovesFor(game.CurrentPlayer()))
	sort.Strings(legal)
	writeMoveList(w, "Legal:", legal, lineLength)
}

// writeMoveList writes label followed by the moves, wrapping continuation lines under the
// first move.
func writeMoveList(w io.Writer, label string, moves []string, lineLength int) {
	const indent = "          "
	fmt.Fprintf(w, "%-10s", label)
	if len(moves) == 0 {
		fmt.Fprintln(w, "-")
		return
	}

	var sb strings.Builder
	ow := NewOutputWriter(&sb, lineLength-len(indent))
	for _, m := range moves {
		ow.Write(m)
	}
	ow.NewLine()

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			fmt.Fprint(w, indent)
		}
		fmt.Fprintln(w, line)
	}
}

// FormatDivide writes one "move: nodes" line per root move followed by the total, in the
// usual perft divide layout.
func FormatDivide(w io.Writer, entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return total
}

// PieceName returns the lower-case name of a piece type, as used in reports.
func PieceName(pieceType chess.PieceType) string {
	return strings.ToLower(pieceType.String())
}
