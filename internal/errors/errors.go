// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidLayout indicates a malformed board layout string.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrOutOfBounds indicates a square that does not lie on the board.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted after the game finished.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates a player tried to move out of turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidSquare indicates a malformed square name such as "i9".
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidColour indicates a side name other than white or black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidMoveText indicates malformed coordinate move text.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameFull indicates no more games can be created.
	ErrGameFull = errors.New("game limit reached")
)

// LayoutError describes where a board layout string stopped making sense.
// Row and Col give the square the parser had reached when it failed.
type LayoutError struct {
	Err   error // The underlying error
	Index int   // 0-based byte offset into the layout
	Char  byte  // The offending character (0 at end of input)
	Row   int   // Row being filled
	Col   int   // Column being filled
}

// Error returns a formatted error message including the failure location.
func (e *LayoutError) Error() string {
	var parts []string

	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("character %q at index %d", e.Char, e.Index))
	} else {
		parts = append(parts, fmt.Sprintf("end of input at index %d", e.Index))
	}
	parts = append(parts, fmt.Sprintf("row %d col %d", e.Row, e.Col))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with game context, including the game id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // 1-based ply the move would have been (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
