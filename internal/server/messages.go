package server

import (
	"encoding/json"
)

// MessageType identifies the kind of a WebSocket message.
type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message is the envelope of every WebSocket message in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MoveRequest is the body of POST /api/games/:id/moves and the payload of a "move"
// message. Color is optional; when set it must name the side to move.
type MoveRequest struct {
	Move  string `json:"move"`
	Color string `json:"color,omitempty"`
}

// CreateGameRequest is the optional body of POST /api/games. Every field may be empty:
// the standard start position with White to move is used by default.
type CreateGameRequest struct {
	Layout    string `json:"layout,omitempty"`
	Turn      string `json:"turn,omitempty"`
	Castling  string `json:"castling,omitempty"`  // "KQkq" form; "-" for none
	EnPassant string `json:"enPassant,omitempty"` // square the last double step skipped
}

// ErrorPayload is the payload of an "error" message and the body of REST errors.
type ErrorPayload struct {
	Error string `json:"error"`
}

func newMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

func errorMessage(err error) Message {
	msg, _ := newMessage(MessageTypeError, ErrorPayload{Error: err.Error()})
	return msg
}
