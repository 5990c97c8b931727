package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Game is the state of one game: the board, the side to move, the draw-rule counters and,
// once the game has ended, its result.
//
// A Game is not safe for concurrent use.
type Game struct {
	board      *chess.Board
	current    chess.Colour
	result     *chess.Result
	noProgress int
	history    *hashing.History
	rules      config.RulesConfig
	plies      []chess.Move
}

// GameOption configures a Game at construction.
type GameOption func(*Game)

// WithRules sets the draw-rule thresholds. Zero fields keep their defaults.
func WithRules(rules config.RulesConfig) GameOption {
	return func(g *Game) {
		g.rules = rules
	}
}

// WithCastlingRights restricts castling to the rights listed in "KQkq" form; "-" or ""
// removes them all. A right that is absent marks the matching rook as moved. Rights that
// the position itself cannot support are not created.
func WithCastlingRights(rights string) GameOption {
	return func(g *Game) {
		for _, r := range []struct {
			colour chess.Colour
			side   chess.CastleSide
			letter rune
		}{
			{chess.White, chess.Kingside, 'K'},
			{chess.White, chess.Queenside, 'Q'},
			{chess.Black, chess.Kingside, 'k'},
			{chess.Black, chess.Queenside, 'q'},
		} {
			if containsRune(rights, r.letter) {
				continue
			}
			rookPos := chess.Position{Row: chess.HomeRow(r.colour), Col: r.side.RookHomeCol()}
			rook := g.board.Get(rookPos)
			if rook.Is(r.colour, chess.Rook) {
				rook.HasMoved = true
				g.board.Set(rookPos, rook)
			}
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// WithEnPassantSquare records pos as the square the opponent's pawn just skipped, so the
// side to move may capture en passant on its first move. pos is not checked; see
// ValidateEnPassantSquare.
func WithEnPassantSquare(pos chess.Position) GameOption {
	return func(g *Game) {
		g.board.SetPawnSkipPosition(g.current.Opposite(), pos)
	}
}

// NewGame creates a game from a copy of board with current to move.
func NewGame(current chess.Colour, board *chess.Board, opts ...GameOption) *Game {
	g := &Game{
		board:   board.Copy(),
		current: current,
		history: hashing.NewHistory(),
		rules:   *config.NewRulesConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rules = g.rules.OrDefault()
	g.history.Record(g.PositionKey())
	return g
}

// NewStandardGame creates a game from the standard start position with White to move.
func NewStandardGame(opts ...GameOption) *Game {
	return NewGame(chess.White, chess.NewInitialBoard(), opts...)
}

// NewGameFromLayout creates a game from a placement string. Malformed layouts and
// layouts without exactly one king per colour are rejected with errors.ErrInvalidLayout.
func NewGameFromLayout(layout string, current chess.Colour, opts ...GameOption) (*Game, error) {
	board, err := gameBoard(layout)
	if err != nil {
		return nil, err
	}
	return NewGame(current, board, opts...), nil
}

func gameBoard(layout string) (*chess.Board, error) {
	board, err := ParseLayout(layout)
	if err != nil {
		return nil, errors.Wrap(err, "parsing layout")
	}
	if err := ValidateKings(board); err != nil {
		return nil, err
	}
	return board, nil
}

// ValidateEnPassantSquare checks that pos could have been skipped by the double step the
// opponent of current just played: it lies on the skipped row, it and the pawn's start
// square behind it are empty, and an opposing pawn stands directly in front of it.
func ValidateEnPassantSquare(board *chess.Board, current chess.Colour, pos chess.Position) error {
	mover := current.Opposite()
	if mover == chess.NoColour || !pos.IsInside() {
		return fmt.Errorf("en passant square %v: %w", pos, errors.ErrInvalidSquare)
	}

	step := chess.ColourOffset(mover)
	start := chess.Position{Row: chess.PawnRow(mover), Col: pos.Col}
	landed := chess.Position{Row: pos.Row + step, Col: pos.Col}

	switch {
	case pos.Row != start.Row+step:
		return fmt.Errorf("en passant square %v not on the row %v skips: %w", pos, mover, errors.ErrInvalidSquare)
	case !board.IsEmpty(pos) || !board.IsEmpty(start):
		return fmt.Errorf("en passant square %v or %v occupied: %w", pos, start, errors.ErrInvalidSquare)
	case !board.Get(landed).Is(mover, chess.Pawn):
		return fmt.Errorf("en passant square %v: no %v pawn on %v: %w", pos, mover, landed, errors.ErrInvalidSquare)
	}
	return nil
}

// Setup describes a starting position in the text form accepted from users.
type Setup struct {
	Layout    string // Placement string; empty for InitialLayout
	Turn      string // Side to move, "white" or "black"; empty for White
	Castling  string // Rights in KQkq form; empty keeps every right the pieces allow
	EnPassant string // Square skipped by the last double pawn move; may be empty
}

// NewGameFromSetup creates a game from setup. opts are applied after the options setup
// implies.
func NewGameFromSetup(setup Setup, opts ...GameOption) (*Game, error) {
	current := chess.White
	if setup.Turn != "" {
		colour, err := chess.ParseColour(setup.Turn)
		if err != nil {
			return nil, err
		}
		current = colour
	}

	layout := setup.Layout
	if layout == "" {
		layout = InitialLayout
	}
	board, err := gameBoard(layout)
	if err != nil {
		return nil, err
	}

	var setupOpts []GameOption
	if setup.Castling != "" {
		setupOpts = append(setupOpts, WithCastlingRights(setup.Castling))
	}
	if setup.EnPassant != "" {
		pos, err := chess.ParseSquare(setup.EnPassant)
		if err != nil {
			return nil, err
		}
		if err := ValidateEnPassantSquare(board, current, pos); err != nil {
			return nil, err
		}
		setupOpts = append(setupOpts, WithEnPassantSquare(pos))
	}

	return NewGame(current, board, append(setupOpts, opts...)...), nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() chess.Colour {
	return g.current
}

// Result returns the result of a finished game. ok is false while the game is in progress.
func (g *Game) Result() (result chess.Result, ok bool) {
	if g.result == nil {
		return chess.Result{}, false
	}
	return *g.result, true
}

// IsGameOver reports whether the game has a result.
func (g *Game) IsGameOver() bool {
	return g.result != nil
}

// Rules returns the draw-rule thresholds in effect.
func (g *Game) Rules() config.RulesConfig {
	return g.rules
}

// LegalMovesForPiece returns the legal moves of the piece on pos. It is empty if pos is
// off the board, empty, or holds a piece of the side not to move.
func (g *Game) LegalMovesForPiece(pos chess.Position) []chess.Move {
	if !pos.IsInside() {
		return nil
	}
	piece := g.board.Get(pos)
	if piece.IsEmpty() || piece.Colour != g.current {
		return nil
	}
	return LegalMoves(g.board, pos)
}

// AllLegalMovesFor returns every legal move of colour in the current position.
func (g *Game) AllLegalMovesFor(colour chess.Colour) []chess.Move {
	return AllLegalMovesFor(g.board, colour)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(g.board, g.current)
}

// MakeMove plays a legal move for the side to move and evaluates the end-of-game rules.
// It returns a *errors.GameError wrapping errors.ErrGameOver or errors.ErrIllegalMove
// and leaves the game untouched if the move cannot be played.
func (g *Game) MakeMove(move chess.Move) error {
	if g.result != nil {
		return g.moveError(errors.ErrGameOver, move)
	}
	if !g.isLegalNow(move) {
		return g.moveError(errors.ErrIllegalMove, move)
	}

	g.board.ClearPawnSkipPosition(g.current)
	if Execute(g.board, move) {
		g.noProgress = 0
		g.history.Reset()
	} else {
		g.noProgress++
	}
	g.plies = append(g.plies, move)

	mover := g.current
	g.current = mover.Opposite()

	count := g.history.Record(g.PositionKey())
	g.result = g.evaluateEnd(mover, count)
	return nil
}

// Play resolves coordinate text such as "e2e4" against the legal moves and plays it.
func (g *Game) Play(text string) (chess.Move, error) {
	if g.result != nil {
		return chess.Move{}, &errors.GameError{Err: errors.ErrGameOver, PlyNum: len(g.plies) + 1, MoveText: text}
	}
	move, err := FindMove(AllLegalMovesFor(g.board, g.current), text)
	if err != nil {
		return chess.Move{}, &errors.GameError{Err: err, PlyNum: len(g.plies) + 1, MoveText: text}
	}
	return move, g.MakeMove(move)
}

func (g *Game) isLegalNow(move chess.Move) bool {
	for _, legal := range g.LegalMovesForPiece(move.From) {
		if legal == move {
			return true
		}
	}
	return false
}

func (g *Game) moveError(err error, move chess.Move) error {
	return &errors.GameError{Err: err, PlyNum: len(g.plies) + 1, MoveText: move.String()}
}

// evaluateEnd applies the end-of-game rules in priority order to the position reached
// after mover's half-move. count is the occurrence count of that position.
func (g *Game) evaluateEnd(mover chess.Colour, count int) *chess.Result {
	var result chess.Result

	switch {
	case !HasLegalMoves(g.board, g.current):
		if IsInCheck(g.board, g.current) {
			result = chess.Win(mover)
		} else {
			result = chess.Draw(chess.Stalemate)
		}
	case HasInsufficientMaterial(g.board):
		result = chess.Draw(chess.InsufficientMaterial)
	case g.noProgress >= g.rules.FiftyMoveHalfMoves:
		result = chess.Draw(chess.FiftyMoveRule)
	case count >= g.rules.RepetitionCount:
		result = chess.Draw(chess.ThreefoldRepetition)
	default:
		return nil
	}
	return &result
}

// NoProgressCount returns the number of consecutive half-moves without a capture or pawn move.
func (g *Game) NoProgressCount() int {
	return g.noProgress
}

// PositionKey returns the canonical key of the current position used for repetition.
func (g *Game) PositionKey() string {
	epFile := ""
	if CanCaptureEnPassant(g.board, g.current) {
		skip, _ := g.board.PawnSkipPosition(g.current.Opposite())
		epFile = skip.String()[:1]
	}
	return hashing.EncodePosition(BoardToLayout(g.board), g.current, CastlingRights(g.board), epFile)
}

// RepetitionCount returns how often the current position has occurred since the last
// capture or pawn move.
func (g *Game) RepetitionCount() int {
	return g.history.Count(g.PositionKey())
}

// PlyCount returns the number of half-moves played.
func (g *Game) PlyCount() int {
	return len(g.plies)
}

// History returns the moves played so far.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.plies...)
}

// Layout returns the placement string of the current board.
func (g *Game) Layout() string {
	return BoardToLayout(g.board)
}
