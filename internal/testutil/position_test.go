package testutil

import (
	"testing"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

func TestMustPosition(t *testing.T) {
	p := MustPosition(t, `
		..k
		...
		K..
	`)
	if p.Width != 3 || p.Height() != 3 {
		t.Errorf("extents = %dx%d; want 3x3", p.Width, p.Height())
	}
	if got := p.At(chess.Square{File: 2, Rank: 2}); got != chess.B(chess.King) {
		t.Errorf("At(c3) = %v; want black king", got)
	}
	if got := p.At(chess.Square{File: 0, Rank: 0}); got != chess.W(chess.King) {
		t.Errorf("At(a1) = %v; want white king", got)
	}
}

func TestMustParseMove(t *testing.T) {
	move := MustParseMove(t, "e2e4")
	want := chess.NewMove(chess.Square{File: 4, Rank: 1}, chess.Square{File: 4, Rank: 3})
	AssertEqual(t, move, want)
}

func TestMoveTexts(t *testing.T) {
	moves := []chess.Move{
		MustParseMove(t, "g1f3"),
		MustParseMove(t, "e2e4"),
		MustParseMove(t, "a2a3"),
	}
	AssertEqual(t, MoveTexts(moves), []string{"a2a3", "e2e4", "g1f3"})
}
