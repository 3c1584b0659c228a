// Package engine generates and applies chess moves: ray traversal,
// per-piece candidate generation, castling, check detection, and the
// clone-and-validate legality oracle.
package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// off builds an offset from a (file, rank) delta pair.
func off(file, rank int) chess.Offset {
	return chess.Offset{File: file, Rank: rank}
}

// castRay walks from origin one offset step at a time and returns the
// last square the piece on origin could occupy along the ray. The walk
// stops before the board edge and before friendly pieces; it steps onto
// the first opposing piece only when canCapture is set. The origin
// itself is returned when no step is possible.
func castRay(p *chess.Position, origin chess.Square, offset chess.Offset, canCapture bool) chess.Square {
	mover := p.At(origin)
	current := origin
	for {
		next, err := current.Add(offset).Validate(p)
		if err != nil {
			return current
		}
		occupant := p.At(next)
		if !occupant.IsEmpty() {
			if canCapture && occupant.Side != mover.Side {
				return next
			}
			return current
		}
		current = next
	}
}

// squaresBetween replays offset from origin and collects every square
// up to and including destination. The destination must lie on the ray,
// normally because castRay produced it; otherwise the walk leaves the
// board and the bounds error is returned.
func squaresBetween(p *chess.Position, origin, destination chess.Square, offset chess.Offset) ([]chess.Square, error) {
	var squares []chess.Square
	current := origin
	for current != destination {
		next, err := current.Add(offset).Validate(p)
		if err != nil {
			return nil, err
		}
		current = next
		squares = append(squares, current)
	}
	return squares, nil
}
