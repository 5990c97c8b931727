// Package output renders game state as plain-text reports or JSON.
package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes plain-text game reports.
type TextWriter struct {
	w          io.Writer
	lineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:          w,
		lineLength: DefaultLineLength,
	}
}

// WriteGame writes a report for game.
func (tw *TextWriter) WriteGame(game *engine.Game) error {
	writeReport(tw.w, game, tw.lineLength)
	return nil
}

// Flush is a no-op; reports are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game states in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame snapshots the game state and buffers it (or writes it in single mode).
// Later moves on game do not change a buffered snapshot.
func (jw *JSONWriter) WriteGame(game *engine.Game) error {
	jsonGame := GameToJSON(game, "")
	if jw.single {
		return encodeJSON(jw.w, jsonGame)
	}
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// NewGameWriter returns the JSON writer when asJSON is set and the text writer otherwise.
func NewGameWriter(w io.Writer, cfg *config.Config, asJSON bool) GameWriter {
	if asJSON {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}
