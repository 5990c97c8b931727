// chessrules sets up a chess position, plays moves on it and reports legal moves, game
// state and move-path counts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	os.Exit(execute(cfg))
}

// execute opens the files named on the command line, runs the command and closes the
// files again. It returns the process exit code.
func execute(cfg *config.Config) int {
	log, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(log)

	out, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	code := 0
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 2
	} else if err := run(cfg, optionsFromFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}

	if err := closeFile(out); err != nil && code == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	return code
}

// setupLogFile points cfg.LogFile at the file named by -l. It returns nil when no
// file was named.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}

	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile points cfg.OutputFile at the file named by -o. It returns nil when no
// file was named.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.OutputFile = file
	return file, nil
}

func closeFile(f *os.File) error {
	if f == nil {
		return nil
	}
	return f.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Apply the rules of chess to a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nLayout letters:\n")
	fmt.Fprintf(os.Stderr, "  KQRBNP  white king, queen, rook, bishop, knight, pawn\n")
	fmt.Fprintf(os.Stderr, "  kqrbnp  black pieces\n")
	fmt.Fprintf(os.Stderr, "  1-8     run of empty squares\n")
	fmt.Fprintf(os.Stderr, "  /       next rank\n")
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -moves 'f2f3 e7e5 g2g4 d8h4'\n")
	fmt.Fprintf(os.Stderr, "  chessrules -legal e2\n")
	fmt.Fprintf(os.Stderr, "  chessrules -perft 4 -divide\n")
}
