package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// IsInCheck reports whether the side to move has a king standing on an
// attacked square.
func IsInCheck(p *chess.Position) bool {
	return IsAttacked(p, p.SideToMove)
}

// IsAttacked reports whether any king of the given side is attacked.
// The model tolerates boards with zero or several kings of a side;
// zero kings means no attack.
//
// The scan runs outward from each king square using the attacker's
// movement geometry rather than generating the opponent's move list,
// so it stays at a fixed pattern count per king.
func IsAttacked(p *chess.Position, side chess.Side) bool {
	for _, king := range piecesOf(p, side, chess.King) {
		if squareAttackedBy(p, king, side.Opposite()) {
			return true
		}
	}
	return false
}

// squareAttackedBy reports whether the attacker side attacks the target
// square. The target must hold a piece of the defending side so rays
// terminate correctly on attackers.
func squareAttackedBy(p *chess.Position, target chess.Square, attacker chess.Side) bool {
	for _, offset := range knightOffsets {
		if square, err := target.Add(offset).Validate(p); err == nil {
			if piece := p.At(square); piece.Kind == chess.Knight && piece.Side == attacker {
				return true
			}
		}
	}

	for _, offset := range kingOffsets {
		if square, err := target.Add(offset).Validate(p); err == nil {
			if piece := p.At(square); piece.Kind == chess.King && piece.Side == attacker {
				return true
			}
		}
	}

	for _, offset := range rookOffsets {
		piece := p.At(castRay(p, target, offset, true))
		if piece.Side == attacker && (piece.Kind == chess.Rook || piece.Kind == chess.Queen) {
			return true
		}
	}

	for _, offset := range bishopOffsets {
		piece := p.At(castRay(p, target, offset, true))
		if piece.Side == attacker && (piece.Kind == chess.Bishop || piece.Kind == chess.Queen) {
			return true
		}
	}

	// Pawns attack diagonally along their own push direction, so from
	// the target the probe steps against it.
	backward := -pushDirection(attacker)
	for _, sideways := range []int{-1, 1} {
		if square, err := target.Add(off(sideways, backward)).Validate(p); err == nil {
			if piece := p.At(square); piece.Kind == chess.Pawn && piece.Side == attacker {
				return true
			}
		}
	}

	return false
}
