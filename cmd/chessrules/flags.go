// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position setup
	layoutFlag = flag.String("layout", "", "Piece placement, rank 8 first, e.g. 4k3/8/8/8/8/8/8/4K3 (default: initial position)")
	sideFlag   = flag.String("side", "white", "Side to move: white or black")
	rightsFlag = flag.String("rights", "", "Castling rights in KQkq form, - for none (default: from unmoved pieces)")
	epFlag     = flag.String("ep", "", "Square the last double pawn move skipped, e.g. d6")
	movesFlag  = flag.String("moves", "", "Moves to play first, space separated (e.g. 'e2e4 e7e5')")

	// Queries
	legalFrom  = flag.String("legal", "", "List the legal moves of the piece on this square")
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Draw rules
	fiftyMove  = flag.Int("fifty", config.DefaultFiftyMoveHalfMoves, "Half-moves without capture or pawn move that draw the game")
	repetition = flag.Int("repetition", config.DefaultRepetitionCount, "Occurrences of a position that draw the game")

	// Output options
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// runOptions is the position and query part of the command line.
type runOptions struct {
	layout string
	side   string
	rights string
	ep     string
	moves  string
	legal  string
	divide bool
	json   bool
}

// optionsFromFlags collects the parsed position and query flags.
func optionsFromFlags() runOptions {
	return runOptions{
		layout: *layoutFlag,
		side:   *sideFlag,
		rights: *rightsFlag,
		ep:     *epFlag,
		moves:  *movesFlag,
		legal:  *legalFrom,
		divide: *divide,
		json:   *jsonOutput,
	}
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyRulesFlags(cfg)
	applyPerftFlags(cfg)
	cfg.Verbosity = *verbosity
}

// applyRulesFlags configures the draw rule thresholds.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.FiftyMoveHalfMoves = *fiftyMove
	cfg.Rules.RepetitionCount = *repetition
}

// applyPerftFlags configures move-path enumeration.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
