package engine

import (
	"testing"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/testutil"
)

// rookAndPawn is an otherwise empty board with a white rook on d4 and a
// black pawn three squares up the same file.
const rookAndPawn = `
	........
	...p....
	........
	........
	...R....
	........
	........
	........
`

func TestCastRay(t *testing.T) {
	tests := []struct {
		name       string
		diagram    string
		origin     chess.Square
		offset     chess.Offset
		canCapture bool
		want       chess.Square
	}{
		{
			name:       "stops on enemy piece when capturing",
			diagram:    rookAndPawn,
			origin:     chess.Square{File: 3, Rank: 3},
			offset:     off(0, 1),
			canCapture: true,
			want:       chess.Square{File: 3, Rank: 6},
		},
		{
			name:       "stops before enemy piece when not capturing",
			diagram:    rookAndPawn,
			origin:     chess.Square{File: 3, Rank: 3},
			offset:     off(0, 1),
			canCapture: false,
			want:       chess.Square{File: 3, Rank: 5},
		},
		{
			name:       "runs to the board edge",
			diagram:    rookAndPawn,
			origin:     chess.Square{File: 3, Rank: 3},
			offset:     off(-1, 0),
			canCapture: true,
			want:       chess.Square{File: 0, Rank: 3},
		},
		{
			name: "stops before friendly piece",
			diagram: `
				........
				...P....
				........
				........
				...R....
				........
				........
				........
			`,
			origin:     chess.Square{File: 3, Rank: 3},
			offset:     off(0, 1),
			canCapture: true,
			want:       chess.Square{File: 3, Rank: 5},
		},
		{
			name: "adjacent friendly piece leaves the ray at its origin",
			diagram: `
				........
				........
				........
				...P....
				...R....
				........
				........
				........
			`,
			origin:     chess.Square{File: 3, Rank: 3},
			offset:     off(0, 1),
			canCapture: true,
			want:       chess.Square{File: 3, Rank: 3},
		},
		{
			name:       "diagonal ray reaches the corner",
			diagram:    rookAndPawn,
			origin:     chess.Square{File: 3, Rank: 3},
			offset:     off(1, 1),
			canCapture: true,
			want:       chess.Square{File: 7, Rank: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.MustPosition(t, tt.diagram)
			got := castRay(p, tt.origin, tt.offset, tt.canCapture)
			if got != tt.want {
				t.Errorf("castRay(%v, %v, %v) = %v, want %v",
					tt.origin, tt.offset, tt.canCapture, got, tt.want)
			}
		})
	}
}

func TestSquaresBetween(t *testing.T) {
	p := testutil.MustPosition(t, rookAndPawn)
	origin := chess.Square{File: 3, Rank: 3}
	dest := chess.Square{File: 3, Rank: 6}

	got, err := squaresBetween(p, origin, dest, off(0, 1))
	testutil.AssertNoError(t, err)

	want := []chess.Square{
		{File: 3, Rank: 4},
		{File: 3, Rank: 5},
		{File: 3, Rank: 6},
	}
	testutil.AssertEqual(t, got, want, "ray from %v to %v", origin, dest)
}

func TestSquaresBetweenAdjacent(t *testing.T) {
	p := testutil.MustPosition(t, rookAndPawn)
	origin := chess.Square{File: 3, Rank: 3}
	dest := chess.Square{File: 4, Rank: 3}

	got, err := squaresBetween(p, origin, dest, off(1, 0))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []chess.Square{dest}, "adjacent destination")
}
