// Package evaluation scores chess positions. An Evaluation is either a
// centipawn estimate or a proven result a known number of plies away;
// Compare orders both kinds on one scale from White's perspective, so
// search can treat "mate in two" and "+0.5 pawns" as points on the same
// axis.
package evaluation

import (
	"fmt"

	"github.com/VeeDeltaVee/knight-witch/internal/engine"
)

// Class discriminates the kinds of evaluation.
type Class int

const (
	// EstimateClass is a heuristic score in centipawns, positive
	// favoring White.
	EstimateClass Class = iota

	// CertainClass is a proven game result reached Depth plies from the
	// evaluated position.
	CertainClass
)

// Evaluation is a closed union over Class. Estimates carry Centipawns;
// certainties carry Result and Depth.
type Evaluation struct {
	Class      Class
	Centipawns int
	Result     engine.Result
	Depth      int
}

// Estimate returns a heuristic evaluation in centipawns.
func Estimate(centipawns int) Evaluation {
	return Evaluation{Class: EstimateClass, Centipawns: centipawns}
}

// Certain returns a proven result at the given depth in plies.
func Certain(result engine.Result, depth int) Evaluation {
	return Evaluation{Class: CertainClass, Result: result, Depth: depth}
}

// String renders the evaluation for log lines: estimates as signed
// centipawns, certainties as the result and its distance.
func (e Evaluation) String() string {
	if e.Class == EstimateClass {
		return fmt.Sprintf("%+d", e.Centipawns)
	}
	if e.Depth == 0 {
		return e.Result.String()
	}
	return fmt.Sprintf("%v in %d", e.Result, e.Depth)
}

// Deepen returns the evaluation as seen one ply further away: certain
// results move a ply out, estimates pass through unchanged. Search
// applies it while backing results up the tree so nearer mates stay
// ahead of farther ones.
func (e Evaluation) Deepen() Evaluation {
	if e.Class == CertainClass {
		e.Depth++
	}
	return e
}

// Compare orders two evaluations from White's perspective, returning
// -1, 0, or 1 as a is worse than, equal to, or better than b:
//
//   - a certain White win beats everything except a faster certain
//     White win, and a certain Black win loses to everything except a
//     slower certain Black win;
//   - a certain draw sits at zero: estimates at or above zero beat it,
//     negative estimates lose to it;
//   - two estimates compare by centipawns.
func Compare(a, b Evaluation) int {
	switch {
	case a.Class == CertainClass && b.Class == CertainClass:
		return compareCertain(a, b)
	case a.Class == CertainClass:
		return compareMixed(a, b)
	case b.Class == CertainClass:
		return -compareMixed(b, a)
	default:
		return sign(a.Centipawns - b.Centipawns)
	}
}

// compareCertain orders two proven results.
func compareCertain(a, b Evaluation) int {
	ra, rb := resultRank(a.Result), resultRank(b.Result)
	if ra != rb {
		return sign(ra - rb)
	}
	switch {
	case ra > 0:
		// Both White wins: the faster mate is better for White.
		return sign(b.Depth - a.Depth)
	case ra < 0:
		// Both Black wins: the slower mate is better for White.
		return sign(a.Depth - b.Depth)
	default:
		return 0
	}
}

// compareMixed orders a certain result against an estimate.
func compareMixed(certain, estimate Evaluation) int {
	switch rank := resultRank(certain.Result); {
	case rank > 0:
		return 1
	case rank < 0:
		return -1
	case estimate.Centipawns >= 0:
		return -1
	default:
		return 1
	}
}

// resultRank maps results onto White's axis: wins above, losses below,
// draws at zero.
func resultRank(r engine.Result) int {
	switch r {
	case engine.WhiteWins:
		return 1
	case engine.BlackWins:
		return -1
	default:
		return 0
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
