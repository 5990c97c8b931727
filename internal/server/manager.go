// Package server exposes games over a REST API and WebSocket connections.
package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameManager owns the live sessions, keyed by game id.
type GameManager struct {
	games map[string]*Session
	mu    sync.RWMutex
	cfg   *config.Config
}

// NewGameManager creates an empty manager. Games follow cfg.Rules and their number is
// capped by cfg.Server.MaxGames.
func NewGameManager(cfg *config.Config) *GameManager {
	return &GameManager{
		games: make(map[string]*Session),
		cfg:   cfg,
	}
}

// CreateGame starts a game described by req under a fresh id.
func (gm *GameManager) CreateGame(req CreateGameRequest) (*Session, error) {
	game, err := newGame(req, gm.cfg.Rules)
	if err != nil {
		return nil, err
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if limit := gm.cfg.Server.MaxGames; limit > 0 && len(gm.games) >= limit {
		return nil, errors.ErrGameFull
	}

	id := uuid.New().String()
	session := newSession(id, game, gm.cfg)
	gm.games[id] = session
	gm.cfg.Logf(1, "game %s: created (%d live)\n", id, len(gm.games))
	return session, nil
}

func newGame(req CreateGameRequest, rules config.RulesConfig) (*engine.Game, error) {
	return engine.NewGameFromSetup(engine.Setup{
		Layout:    req.Layout,
		Turn:      req.Turn,
		Castling:  req.Castling,
		EnPassant: req.EnPassant,
	}, engine.WithRules(rules))
}

// GetGame returns the session with the given id.
func (gm *GameManager) GetGame(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[id]
	if !exists {
		return nil, errors.ErrGameNotFound
	}
	return session, nil
}

// DeleteGame removes the session with the given id.
func (gm *GameManager) DeleteGame(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[id]; !exists {
		return errors.ErrGameNotFound
	}
	delete(gm.games, id)
	gm.cfg.Logf(1, "game %s: deleted\n", id)
	return nil
}

// Count returns the number of live games.
func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
