package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the enumeration depth accepted from users.
const MaxPerftDepth = 6

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate (0 = disabled)
	Depth int

	// Workers is the number of goroutines splitting the root moves
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
// Enumeration is disabled; Workers defaults to the CPU count.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   0,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be positive: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
