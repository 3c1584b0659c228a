package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// Fixed offset patterns. Sliding pieces reuse the same tables as ray
// directions.
var (
	knightOffsets = []chess.Offset{
		off(-1, 2), off(1, 2),
		off(-2, 1), off(2, 1),
		off(-2, -1), off(2, -1),
		off(-1, -2), off(1, -2),
	}

	kingOffsets = []chess.Offset{
		off(0, 1), off(1, 0), off(0, -1), off(-1, 0),
		off(1, 1), off(1, -1), off(-1, 1), off(-1, -1),
	}

	rookOffsets   = []chess.Offset{off(0, 1), off(1, 0), off(0, -1), off(-1, 0)}
	bishopOffsets = []chess.Offset{off(1, 1), off(1, -1), off(-1, 1), off(-1, -1)}
	queenOffsets  = kingOffsets
)

// piecesOf returns the squares holding the given side's pieces of the
// given kind, scanning rank by rank from the bottom.
func piecesOf(p *chess.Position, side chess.Side, kind chess.Kind) []chess.Square {
	var squares []chess.Square
	for rank := 0; rank < p.Height(); rank++ {
		for file := 0; file < p.Width; file++ {
			square := chess.Square{File: file, Rank: rank}
			piece := p.At(square)
			if piece.Kind == kind && piece.Side == side {
				squares = append(squares, square)
			}
		}
	}
	return squares
}

// movesByOffsets builds single-step candidate moves for every piece of
// the given kind belonging to the side to move: apply each offset,
// discard off-board results and squares held by the mover's own side.
func movesByOffsets(p *chess.Position, kind chess.Kind, offsets []chess.Offset) []chess.Move {
	var moves []chess.Move
	for _, from := range piecesOf(p, p.SideToMove, kind) {
		for _, offset := range offsets {
			to, err := from.Add(offset).Validate(p)
			if err != nil {
				continue
			}
			if occupant := p.At(to); !occupant.IsEmpty() && occupant.Side == p.SideToMove {
				continue
			}
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slidingMoves builds candidate moves for a sliding piece kind: cast a
// capturing ray along each direction to find the reachable extent, then
// expand every square between origin and extent into its own candidate.
func slidingMoves(p *chess.Position, kind chess.Kind, offsets []chess.Offset) []chess.Move {
	var moves []chess.Move
	for _, from := range piecesOf(p, p.SideToMove, kind) {
		for _, offset := range offsets {
			extent := castRay(p, from, offset, true)
			if extent == from {
				continue
			}
			destinations, err := squaresBetween(p, from, extent, offset)
			if err != nil {
				continue
			}
			for _, to := range destinations {
				moves = append(moves, chess.NewMove(from, to))
			}
		}
	}
	return moves
}

// knightMoves returns the knight candidates for the side to move.
func knightMoves(p *chess.Position) []chess.Move {
	return movesByOffsets(p, chess.Knight, knightOffsets)
}

// kingMoves returns the single-step king candidates for the side to
// move. Castling is generated separately.
func kingMoves(p *chess.Position) []chess.Move {
	return movesByOffsets(p, chess.King, kingOffsets)
}

// bishopMoves returns the bishop candidates for the side to move.
func bishopMoves(p *chess.Position) []chess.Move {
	return slidingMoves(p, chess.Bishop, bishopOffsets)
}

// rookMoves returns the rook candidates for the side to move.
func rookMoves(p *chess.Position) []chess.Move {
	return slidingMoves(p, chess.Rook, rookOffsets)
}

// queenMoves returns the queen candidates for the side to move.
func queenMoves(p *chess.Position) []chess.Move {
	return slidingMoves(p, chess.Queen, queenOffsets)
}
