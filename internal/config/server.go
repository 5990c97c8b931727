package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and WebSocket game server.
type ServerConfig struct {
	// Addr is the listen address passed to fiber's Listen
	Addr string

	// AllowOrigins is the CORS allow-list, comma separated
	AllowOrigins string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers
	ReadBufferSize  int
	WriteBufferSize int

	// MaxGames caps the number of live games (0 = unlimited)
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":3000",
		AllowOrigins:    "*",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		MaxGames:        0,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadBufferSize < 0 || s.WriteBufferSize < 0 {
		return fmt.Errorf("negative websocket buffer size (%d/%d): %w",
			s.ReadBufferSize, s.WriteBufferSize, errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("negative game limit (%d): %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
