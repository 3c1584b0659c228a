package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/worker"
)

// Perft counts the leaf nodes of the legal-move tree to the given
// depth. Depth 0 counts the position itself.
func Perft(p *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := p.Clone()
		if applyTo(next, move, true) != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide counts each root move's subtree separately, keyed by the
// move's coordinate text. The counts sum to Perft(p, depth).
func PerftDivide(p *chess.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, move := range LegalMoves(p) {
		next := p.Clone()
		if applyTo(next, move, true) != nil {
			continue
		}
		counts[move.String()] = Perft(next, depth-1)
	}
	return counts
}

// ParallelPerft counts the same tree as Perft by splitting the root
// move list across a worker pool. Every subtree owns a clone, so
// workers share nothing; the summed counts are identical to the
// sequential ones.
func ParallelPerft(p *chess.Position, depth, workers int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}

	pool := worker.NewPoolWithOptions(
		countSubtree,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)),
	)
	pool.Start()

	go func() {
		for i, move := range moves {
			next := p.Clone()
			if applyTo(next, move, true) != nil {
				continue
			}
			pool.Submit(worker.WorkItem{
				Move:     move,
				Position: next,
				Depth:    depth - 1,
				Index:    i,
			})
		}
		pool.Close()
	}()

	var nodes uint64
	for result := range pool.Results() {
		nodes += result.Nodes
	}
	return nodes
}

// countSubtree is the pool's count function: a plain sequential perft
// of the subtree below the item's position.
func countSubtree(item worker.WorkItem) worker.CountResult {
	return worker.CountResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: Perft(item.Position, item.Depth),
	}
}
