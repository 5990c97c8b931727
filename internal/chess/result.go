package chess

// EndReason is why a game finished.
type EndReason int

const (
	Checkmate EndReason = iota
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
)

// String returns the string representation of an end reason.
func (r EndReason) String() string {
	switch r {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	case ThreefoldRepetition:
		return "ThreefoldRepetition"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Winner Colour
	Reason EndReason
}

// Win returns a checkmate result won by winner.
func Win(winner Colour) Result {
	return Result{Winner: winner, Reason: Checkmate}
}

// Draw returns a drawn result.
func Draw(reason EndReason) Result {
	return Result{Winner: NoColour, Reason: reason}
}

// IsDraw reports whether nobody won.
func (r Result) IsDraw() bool {
	return r.Winner == NoColour
}

// String returns e.g. "White wins by Checkmate" or "Draw by Stalemate".
func (r Result) String() string {
	if r.IsDraw() {
		return "Draw by " + r.Reason.String()
	}
	return r.Winner.String() + " wins by " + r.Reason.String()
}
