package evaluation

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/engine"
)

// Evaluator scores a position. Implementations must not mutate it.
type Evaluator interface {
	Evaluate(p *chess.Position) Evaluation
}

// kindValues holds centipawn values indexed by chess.Kind. The king's
// value only matters in degenerate positions where one is missing.
var kindValues = [...]int{
	chess.NoKind: 0,
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   10000,
}

// Material estimates by piece values alone: White pieces count
// positive, Black pieces negative.
type Material struct{}

// Evaluate sums the piece values on the board.
func (Material) Evaluate(p *chess.Position) Evaluation {
	total := 0
	for _, piece := range p.Squares {
		value := kindValues[piece.Kind]
		if piece.Side == chess.Black {
			value = -value
		}
		total += value
	}
	return Estimate(total)
}

// Terminal detects finished games: checkmate and stalemate become
// certain results at depth zero, anything else is a neutral estimate.
type Terminal struct{}

// Evaluate probes the position's terminal result.
func (Terminal) Evaluate(p *chess.Position) Evaluation {
	result := engine.TerminalResult(p)
	if result == engine.Ongoing {
		return Estimate(0)
	}
	return Certain(result, 0)
}

// Composite combines member evaluators: any certain verdict wins, the
// nearest one first; with none, the estimates sum.
type Composite struct {
	Members []Evaluator
}

// NewComposite builds a composite over the given members.
func NewComposite(members ...Evaluator) Composite {
	return Composite{Members: members}
}

// Evaluate asks every member and merges their answers.
func (c Composite) Evaluate(p *chess.Position) Evaluation {
	var certain *Evaluation
	total := 0

	for _, member := range c.Members {
		result := member.Evaluate(p)
		if result.Class == CertainClass {
			if certain == nil || result.Depth < certain.Depth {
				result := result
				certain = &result
			}
			continue
		}
		total += result.Centipawns
	}

	if certain != nil {
		return *certain
	}
	return Estimate(total)
}

// Default is the standard evaluator stack: terminal detection over a
// material count.
func Default() Evaluator {
	return NewComposite(Terminal{}, Material{})
}
