package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/VeeDeltaVee/knight-witch/internal/testutil"
)

// oracleFENs are promotion-free positions for cross-checking move
// generation against an independent bitboard engine. Promotions stay
// out because this rule set does not have them.
var oracleFENs = []struct {
	name string
	fen  string
}{
	{"initial", InitialFEN},
	{"kiwipete", kiwipeteFEN},
	{"en passant", enPassantFEN},
	{"castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
	{"castling black", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"},
	{"pinned knight", "4k3/8/8/b7/8/2N5/8/4K3 w - - 0 1"},
}

// oracleMoveTexts renders the oracle's legal moves as sorted
// coordinate text, the same shape testutil.MoveTexts produces.
func oracleMoveTexts(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	texts := make([]string, len(moves))
	for i, move := range moves {
		texts[i] = move.String()
	}
	sort.Strings(texts)
	return texts
}

// oraclePerft is a plain perft over the oracle's apply/unapply pair.
func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		unapply := b.Apply(move)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, tt := range oracleFENs {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			board := dragontoothmg.ParseFen(tt.fen)

			got := testutil.MoveTexts(LegalMoves(p))
			want := oracleMoveTexts(&board)
			testutil.AssertEqual(t, got, want, "move set for %q", tt.fen)
		})
	}
}

func TestPerftMatchesOracle(t *testing.T) {
	for _, tt := range oracleFENs {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			board := dragontoothmg.ParseFen(tt.fen)

			for depth := 1; depth <= 3; depth++ {
				got := Perft(p, depth)
				want := oraclePerft(&board, depth)
				if got != want {
					t.Errorf("Perft(%q, %d) = %d, oracle counts %d", tt.fen, depth, got, want)
				}
			}
		})
	}
}
