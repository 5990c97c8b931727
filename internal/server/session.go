package server

import (
	stderrors "errors"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// jsonWriter is the part of a WebSocket connection a Session writes to.
type jsonWriter interface {
	WriteJSON(v interface{}) error
}

// Session is one live game and the WebSocket clients watching it.
type Session struct {
	ID string

	mu   sync.Mutex // guards game
	game *engine.Game

	connMu sync.Mutex // guards conns and serialises writes to them
	conns  map[jsonWriter]struct{}

	cfg *config.Config
}

func newSession(id string, game *engine.Game, cfg *config.Config) *Session {
	return &Session{
		ID:    id,
		game:  game,
		conns: make(map[jsonWriter]struct{}),
		cfg:   cfg,
	}
}

// State returns a snapshot of the game.
func (s *Session) State() *output.JSONGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return output.GameToJSON(s.game, s.ID)
}

// LegalMoves returns the legal moves of the piece on square, or of the side to move
// when square is empty.
func (s *Session) LegalMoves(square string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if square == "" {
		return engine.MoveStrings(s.game.AllLegalMovesFor(s.game.CurrentPlayer())), nil
	}
	pos, err := chess.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	return engine.MoveStrings(s.game.LegalMovesForPiece(pos)), nil
}

// Play applies req to the game, broadcasts the new state to every client and returns it.
// Errors carry the session id. Clients receive states in the order moves were played.
func (s *Session) Play(req MoveRequest) (*output.JSONGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Color != "" {
		colour, err := chess.ParseColour(req.Color)
		if err != nil {
			return nil, err
		}
		if colour != s.game.CurrentPlayer() && !s.game.IsGameOver() {
			return nil, &errors.GameError{
				Err:      errors.ErrNotYourTurn,
				GameID:   s.ID,
				PlyNum:   s.game.PlyCount() + 1,
				MoveText: req.Move,
			}
		}
	}

	if _, err := s.game.Play(req.Move); err != nil {
		var gameErr *errors.GameError
		if stderrors.As(err, &gameErr) {
			gameErr.GameID = s.ID
		}
		return nil, err
	}

	state := output.GameToJSON(s.game, s.ID)
	s.cfg.Logf(2, "game %s: %s played %s\n", s.ID, state.History[len(state.History)-1].Color, req.Move)
	if state.Result != nil {
		s.cfg.Logf(1, "game %s: %s\n", s.ID, state.Result.Text)
	}
	s.broadcastState(state)
	return state, nil
}

// sendState writes the current state to one client. The game stays locked until the
// write completes, so no broadcast of a later move can overtake it.
func (s *Session) sendState(c jsonWriter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := newMessage(MessageTypeState, output.GameToJSON(s.game, s.ID))
	if err != nil {
		return err
	}
	return s.send(c, msg)
}

func (s *Session) addConn(c jsonWriter) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	s.conns[c] = struct{}{}
}

func (s *Session) removeConn(c jsonWriter) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	delete(s.conns, c)
}

// ConnCount returns the number of connected WebSocket clients.
func (s *Session) ConnCount() int {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	return len(s.conns)
}

// send writes msg to one client.
func (s *Session) send(c jsonWriter, msg Message) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	return c.WriteJSON(msg)
}

// broadcast writes msg to every client. Clients whose write fails are dropped.
func (s *Session) broadcast(msg Message) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	for c := range s.conns {
		if err := c.WriteJSON(msg); err != nil {
			s.cfg.Logf(1, "game %s: dropping client: %v\n", s.ID, err)
			delete(s.conns, c)
		}
	}
}

// broadcastState sends state to every client. Callers hold s.mu.
func (s *Session) broadcastState(state *output.JSONGame) {
	msg, err := newMessage(MessageTypeState, state)
	if err != nil {
		s.cfg.Logf(1, "game %s: encoding state: %v\n", s.ID, err)
		return
	}
	s.broadcast(msg)
}
