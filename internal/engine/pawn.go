package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// pushDirection returns the forward rank delta for the side's pawns:
// White pawns climb ranks, Black pawns descend.
func pushDirection(side chess.Side) int {
	if side == chess.White {
		return 1
	}
	return -1
}

// doublePushRank returns the rank a side's pawns double-push from: the
// rank in front of the home rank on either end of the board.
func doublePushRank(p *chess.Position, side chess.Side) int {
	if side == chess.White {
		return 1
	}
	return p.Height() - 2
}

// pawnMoves returns the pawn candidates for the side to move: single
// and double pushes onto empty squares, diagonal captures, and the
// en-passant capture when the diagonal lands on the current target.
// Offsets that leave the board are discarded by validation, which also
// suppresses the off-edge diagonal on boundary files. A pawn reaching
// the last rank stays a pawn; there is no promotion in this rule set.
func pawnMoves(p *chess.Position) []chess.Move {
	var moves []chess.Move
	side := p.SideToMove
	forward := pushDirection(side)

	for _, from := range piecesOf(p, side, chess.Pawn) {
		if to, err := from.Add(off(0, forward)).Validate(p); err == nil && p.At(to).IsEmpty() {
			moves = append(moves, chess.NewMove(from, to))

			// The double push needs the intervening square clear, which
			// the single push above just established.
			if from.Rank == doublePushRank(p, side) {
				if to, err := from.Add(off(0, 2*forward)).Validate(p); err == nil && p.At(to).IsEmpty() {
					moves = append(moves, chess.NewMove(from, to))
				}
			}
		}

		for _, sideways := range []int{-1, 1} {
			to, err := from.Add(off(sideways, forward)).Validate(p)
			if err != nil {
				continue
			}
			occupant := p.At(to)
			switch {
			case !occupant.IsEmpty() && occupant.Side != side:
				moves = append(moves, chess.NewMove(from, to))
			case occupant.IsEmpty() && p.EnPassant != nil && *p.EnPassant == to:
				captured := chess.Square{File: to.File, Rank: from.Rank}
				moves = append(moves, chess.NewEnPassant(from, to, captured))
			}
		}
	}
	return moves
}
