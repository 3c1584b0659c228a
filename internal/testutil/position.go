package testutil

import (
	"sort"
	"testing"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// MustPosition builds a position from an ASCII diagram.
// It calls t.Fatal on a malformed diagram, so tests can inline board
// art without error plumbing. The returned position has White to move
// and no castling rights; adjust both directly when a test needs them.
func MustPosition(t *testing.T, diagram string) *chess.Position {
	t.Helper()
	p, err := chess.FromDiagram(diagram)
	if err != nil {
		t.Fatalf("failed to build test position: %v\n%s", err, diagram)
	}
	return p
}

// MustParseMove parses coordinate move text, calling t.Fatal on
// unreadable input.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("failed to parse test move %q: %v", text, err)
	}
	return move
}

// MoveTexts renders moves as sorted coordinate text, a stable form for
// comparing generated move sets against expectations.
func MoveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, move := range moves {
		texts[i] = move.String()
	}
	sort.Strings(texts)
	return texts
}
