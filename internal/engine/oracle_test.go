package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	nchess "github.com/notnil/chess"
)

var oraclePromotions = map[nchess.PieceType]string{
	nchess.Queen:  "q",
	nchess.Rook:   "r",
	nchess.Bishop: "b",
	nchess.Knight: "n",
}

func oracleText(m *nchess.Move) string {
	return m.S1().String() + m.S2().String() + oraclePromotions[m.Promo()]
}

func oracleMoves(game *nchess.Game) map[string]*nchess.Move {
	moves := make(map[string]*nchess.Move)
	for _, m := range game.ValidMoves() {
		moves[oracleText(m)] = m
	}
	return moves
}

func sortedKeys(m map[string]*nchess.Move) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TestLegalMoves_MatchOracle plays random games and compares the legal move list at
// every ply with an independent move generator.
func TestLegalMoves_MatchOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping random game comparison in short mode")
	}

	const maxPlies = 80
	for seed := int64(1); seed <= 12; seed++ {
		rng := rand.New(rand.NewSource(seed))
		game := NewStandardGame()
		oracle := nchess.NewGame()

		for ply := 0; ply < maxPlies; ply++ {
			if game.IsGameOver() || oracle.Outcome() != nchess.NoOutcome {
				break
			}

			ours := sortedTexts(game.AllLegalMovesFor(game.CurrentPlayer()))
			theirs := oracleMoves(oracle)
			if diff := cmp.Diff(sortedKeys(theirs), ours); diff != "" {
				t.Fatalf("seed %d ply %d layout %s: legal moves mismatch (-oracle +ours):\n%s",
					seed, ply, game.Layout(), diff)
			}

			text := ours[rng.Intn(len(ours))]
			if _, err := game.Play(text); err != nil {
				t.Fatalf("seed %d ply %d: Play(%q) error: %v", seed, ply, text, err)
			}
			if err := oracle.Move(theirs[text]); err != nil {
				t.Fatalf("seed %d ply %d: oracle rejected %q: %v", seed, ply, text, err)
			}
		}
	}
}

// TestPerft_MatchOracle checks the root move list of the perft positions.
func TestPerft_MatchOracle(t *testing.T) {
	fens := map[string]string{
		"kiwipete":     "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rook endgame": "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"promotions":   "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}

	for _, tt := range perftPositions {
		fen, ok := fens[tt.name]
		if !ok {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("FEN(%q) error: %v", fen, err)
			}
			oracle := nchess.NewGame(opt)
			ours := sortedTexts(AllLegalMovesFor(mustLayout(t, tt.layout), tt.colour))
			if diff := cmp.Diff(sortedKeys(oracleMoves(oracle)), ours); diff != "" {
				t.Errorf("root moves mismatch (-oracle +ours):\n%s", diff)
			}
		})
	}
}
