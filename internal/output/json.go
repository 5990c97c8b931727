package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents the state of a game in JSON format.
type JSONGame struct {
	ID          string      `json:"id,omitempty"`
	Layout      string      `json:"layout"`
	Turn        string      `json:"turn"` // "white" or "black"
	InCheck     bool        `json:"inCheck"`
	GameOver    bool        `json:"gameOver"`
	Result      *JSONResult `json:"result,omitempty"`
	Castling    string      `json:"castling"`
	PositionKey string      `json:"positionKey"`
	NoProgress  int         `json:"noProgress"`
	Repetitions int         `json:"repetitions"`
	PlyCount    int         `json:"plyCount"`
	History     []JSONMove  `json:"history"`
	LegalMoves  []string    `json:"legalMoves"`
}

// JSONResult is the outcome of a finished game.
type JSONResult struct {
	Winner string `json:"winner,omitempty"` // empty for a draw
	Reason string `json:"reason"`
	Text   string `json:"text"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"`
	Move      string `json:"move"`
	From      string `json:"from"`
	To        string `json:"to"`
	Kind      string `json:"kind"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(game *engine.Game, cfg *config.Config) error {
	return encodeJSON(cfg.OutputFile, GameToJSON(game, ""))
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a game to its JSON view. id may be empty.
func GameToJSON(game *engine.Game, id string) *JSONGame {
	board := game.Board()
	jg := &JSONGame{
		ID:          id,
		Layout:      game.Layout(),
		Turn:        colorName(game.CurrentPlayer()),
		InCheck:     game.InCheck(),
		GameOver:    game.IsGameOver(),
		Castling:    engine.CastlingRights(board),
		PositionKey: game.PositionKey(),
		NoProgress:  game.NoProgressCount(),
		Repetitions: game.RepetitionCount(),
		PlyCount:    game.PlyCount(),
		History:     convertHistory(game),
		LegalMoves:  []string{},
	}

	if result, ok := game.Result(); ok {
		jg.Result = resultToJSON(result)
	} else {
		jg.LegalMoves = engine.MoveStrings(game.AllLegalMovesFor(game.CurrentPlayer()))
	}
	return jg
}

func resultToJSON(result chess.Result) *JSONResult {
	jr := &JSONResult{
		Reason: result.Reason.String(),
		Text:   result.String(),
	}
	if !result.IsDraw() {
		jr.Winner = colorName(result.Winner)
	}
	return jr
}

// convertHistory lists the played moves. The colour of the first mover is derived from
// the side to move now and the number of plies played.
func convertHistory(game *engine.Game) []JSONMove {
	history := game.History()
	colour := game.CurrentPlayer()
	if len(history)%2 == 1 {
		colour = colour.Opposite()
	}

	moves := make([]JSONMove, len(history))
	for i, move := range history {
		moves[i] = convertSingleMove(move, i+1, colour)
		colour = colour.Opposite()
	}
	return moves
}

func convertSingleMove(move chess.Move, ply int, colour chess.Colour) JSONMove {
	jm := JSONMove{
		Ply:   ply,
		Color: colorName(colour),
		Move:  move.String(),
		From:  move.From.String(),
		To:    move.To.String(),
		Kind:  move.Class.String(),
	}
	if move.Class == chess.PawnPromotion {
		jm.Promotion = PieceName(move.Promotion)
	}
	return jm
}

func colorName(colour chess.Colour) string {
	return strings.ToLower(colour.String())
}
