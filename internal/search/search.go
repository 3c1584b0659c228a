// Package search picks moves by looking ahead. The Searcher interface
// is the seam the CLI plays through; Minimax is the depth-limited
// alpha-beta implementation over the engine's legal-move generator.
package search

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/engine"
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
	"github.com/VeeDeltaVee/knight-witch/internal/evaluation"
)

// DefaultDepth is the look-ahead in plies when none is configured.
const DefaultDepth = 3

// Searcher picks a move for the side to move, returning the move, its
// evaluation, and an error when the position has no legal moves.
type Searcher interface {
	Search(p *chess.Position) (chess.Move, evaluation.Evaluation, error)
}

// Minimax is a depth-limited minimax search with alpha-beta pruning.
// White maximizes and Black minimizes under evaluation.Compare; proven
// results deepen as they back up, so nearer mates order first. The
// search is deterministic for a fixed position and depth: among equal
// lines the first in generation order wins.
type Minimax struct {
	// Evaluator scores leaf positions. Defaults to evaluation.Default().
	Evaluator evaluation.Evaluator

	// Depth is the search depth in plies. Values below one fall back
	// to DefaultDepth.
	Depth int
}

var _ Searcher = (*Minimax)(nil)

// NewMinimax returns a minimax searcher with the default evaluator
// stack and depth.
func NewMinimax() *Minimax {
	return &Minimax{
		Evaluator: evaluation.Default(),
		Depth:     DefaultDepth,
	}
}

// Search runs the minimax from the given position and returns the best
// move found. Positions without legal moves return ErrGameOver along
// with the evaluator's verdict on the position.
func (m *Minimax) Search(p *chess.Position) (chess.Move, evaluation.Evaluation, error) {
	moves := engine.LegalMoves(p)
	if len(moves) == 0 {
		return chess.Move{}, m.evaluate(p), errors.Wrap(errors.ErrGameOver, "nothing to search")
	}

	maximizing := p.SideToMove == chess.White
	value := worstFor(p.SideToMove)
	alpha, beta := worstFor(chess.White), worstFor(chess.Black)

	var best chess.Move
	for _, move := range moves {
		next, err := engine.Applied(p, move, true)
		if err != nil {
			continue
		}
		child := m.minimax(next, m.depth()-1, alpha, beta).Deepen()

		if maximizing {
			if evaluation.Compare(child, value) > 0 {
				value, best = child, move
			}
			if evaluation.Compare(value, alpha) > 0 {
				alpha = value
			}
		} else {
			if evaluation.Compare(child, value) < 0 {
				value, best = child, move
			}
			if evaluation.Compare(value, beta) < 0 {
				beta = value
			}
		}
	}
	return best, value, nil
}

// minimax evaluates the subtree below p to the remaining depth within
// the (alpha, beta) window.
func (m *Minimax) minimax(p *chess.Position, depth int, alpha, beta evaluation.Evaluation) evaluation.Evaluation {
	if depth <= 0 {
		return m.evaluate(p)
	}
	moves := engine.LegalMoves(p)
	if len(moves) == 0 {
		return m.evaluate(p)
	}

	maximizing := p.SideToMove == chess.White
	value := worstFor(p.SideToMove)

	for _, move := range moves {
		next, err := engine.Applied(p, move, true)
		if err != nil {
			continue
		}
		child := m.minimax(next, depth-1, alpha, beta).Deepen()

		if maximizing {
			if evaluation.Compare(child, value) > 0 {
				value = child
			}
			if evaluation.Compare(value, alpha) > 0 {
				alpha = value
			}
		} else {
			if evaluation.Compare(child, value) < 0 {
				value = child
			}
			if evaluation.Compare(value, beta) < 0 {
				beta = value
			}
		}

		// The opponent already has a better line elsewhere; the rest
		// of this node cannot matter.
		if evaluation.Compare(beta, alpha) <= 0 {
			break
		}
	}
	return value
}

// evaluate scores a leaf through the configured evaluator.
func (m *Minimax) evaluate(p *chess.Position) evaluation.Evaluation {
	if m.Evaluator != nil {
		return m.Evaluator.Evaluate(p)
	}
	return evaluation.Default().Evaluate(p)
}

// depth returns the configured depth, falling back to the default.
func (m *Minimax) depth() int {
	if m.Depth > 0 {
		return m.Depth
	}
	return DefaultDepth
}

// worstFor returns the floor of the side's preference order: an
// immediate mate against it. Real backed-up lines always compare
// strictly better, because deepening keeps proven results at least one
// ply out.
func worstFor(side chess.Side) evaluation.Evaluation {
	if side == chess.White {
		return evaluation.Certain(engine.BlackWins, 0)
	}
	return evaluation.Certain(engine.WhiteWins, 0)
}
