// runner.go - Position setup, move replay and query dispatch
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// run sets up the position described by opts, plays its moves and writes the requested
// report to cfg.OutputFile.
func run(cfg *config.Config, opts runOptions) error {
	game, err := engine.NewGameFromSetup(engine.Setup{
		Layout:    opts.layout,
		Turn:      opts.side,
		Castling:  opts.rights,
		EnPassant: opts.ep,
	}, engine.WithRules(cfg.Rules))
	if err != nil {
		return err
	}

	if err := playMoves(cfg, game, opts.moves); err != nil {
		return err
	}

	switch {
	case cfg.Perft.Depth > 0:
		return runPerft(cfg, game, opts.divide)
	case opts.legal != "":
		return runLegal(cfg, game, opts.legal, opts.json)
	default:
		return writeGame(cfg, game, opts.json)
	}
}

// playMoves plays the space separated coordinate moves in list.
func playMoves(cfg *config.Config, game *engine.Game, list string) error {
	for _, text := range strings.Fields(list) {
		mover := game.CurrentPlayer()
		if _, err := game.Play(text); err != nil {
			return err
		}
		cfg.Logf(2, "%v plays %s\n", mover, text)
	}
	if result, over := game.Result(); over {
		cfg.Logf(1, "%v\n", result)
	}
	return nil
}

// runPerft writes the move-path count of the position, split by root move when divide
// is set.
func runPerft(cfg *config.Config, game *engine.Game, divide bool) error {
	board, colour := game.Board(), game.CurrentPlayer()
	depth, workers := cfg.Perft.Depth, cfg.Perft.Workers

	if divide {
		entries := engine.ParallelDivide(board, colour, depth, workers)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Move.String() < entries[j].Move.String()
		})
		total := output.FormatDivide(cfg.OutputFile, entries)
		cfg.Logf(1, "perft(%d) = %d over %d root moves\n", depth, total, len(entries))
		return nil
	}

	nodes := engine.ParallelPerft(board, colour, depth, workers)
	_, err := fmt.Fprintf(cfg.OutputFile, "%d\n", nodes)
	return err
}

// legalReport is the JSON form of a legal move query.
type legalReport struct {
	Square string   `json:"square"`
	Moves  []string `json:"moves"`
}

// runLegal writes the sorted legal moves of the piece on square, one per line.
func runLegal(cfg *config.Config, game *engine.Game, square string, asJSON bool) error {
	pos, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}

	moves := engine.MoveStrings(game.LegalMovesForPiece(pos))
	sort.Strings(moves)

	if asJSON {
		return writeJSON(cfg.OutputFile, legalReport{Square: square, Moves: moves})
	}
	for _, move := range moves {
		if _, err := fmt.Fprintln(cfg.OutputFile, move); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeGame writes the game report as text or JSON.
func writeGame(cfg *config.Config, game *engine.Game, asJSON bool) error {
	gw := output.NewGameWriter(cfg.OutputFile, cfg, asJSON)
	if err := gw.WriteGame(game); err != nil {
		return err
	}
	return gw.Close()
}
