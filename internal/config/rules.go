package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Default rule thresholds.
const (
	DefaultFiftyMoveHalfMoves = 100
	DefaultRepetitionCount    = 3
)

// RulesConfig holds the thresholds of the automatic draw rules.
type RulesConfig struct {
	// FiftyMoveHalfMoves is the number of consecutive half-moves without a capture or
	// pawn move that ends the game in a draw.
	FiftyMoveHalfMoves int

	// RepetitionCount is the number of times a position must occur to end the game.
	RepetitionCount int
}

// NewRulesConfig creates a RulesConfig with the standard thresholds.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		FiftyMoveHalfMoves: DefaultFiftyMoveHalfMoves,
		RepetitionCount:    DefaultRepetitionCount,
	}
}

// Validate checks that the rule thresholds are usable.
func (r *RulesConfig) Validate() error {
	if r.FiftyMoveHalfMoves < 1 {
		return fmt.Errorf("fifty-move threshold (%d) must be positive: %w",
			r.FiftyMoveHalfMoves, errors.ErrInvalidConfig)
	}
	if r.RepetitionCount < 2 {
		return fmt.Errorf("repetition count (%d) must be at least 2: %w",
			r.RepetitionCount, errors.ErrInvalidConfig)
	}
	return nil
}

// OrDefault returns r with every threshold that Validate would reject replaced by its
// default.
func (r RulesConfig) OrDefault() RulesConfig {
	if r.FiftyMoveHalfMoves < 1 {
		r.FiftyMoveHalfMoves = DefaultFiftyMoveHalfMoves
	}
	if r.RepetitionCount < 2 {
		r.RepetitionCount = DefaultRepetitionCount
	}
	return r
}
