package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// ApplyMove applies a move to the position in place. When checked is
// set, moves leaving the mover's own king attacked are rejected with
// ErrSelfCheck, and castling is only allowed through safe squares.
//
// Mutation happens on an internal clone committed only on success, so
// a failed move never corrupts the caller's position. The move's
// geometry is trusted: candidates come from the generators, and
// untrusted input is resolved against LegalMoves first.
func ApplyMove(p *chess.Position, move chess.Move, checked bool) error {
	next := p.Clone()
	if err := applyTo(next, move, checked); err != nil {
		return err
	}
	*p = *next
	return nil
}

// Applied returns a new position with the move applied, leaving the
// original untouched.
func Applied(p *chess.Position, move chess.Move, checked bool) (*chess.Position, error) {
	next := p.Clone()
	if err := applyTo(next, move, checked); err != nil {
		return nil, err
	}
	return next, nil
}

// applyTo mutates p directly. Callers own the cloning discipline.
func applyTo(p *chess.Position, move chess.Move, checked bool) error {
	mover := p.SideToMove

	switch move.Class {
	case chess.NullMove:
		// Nothing relocates: the turn passes. Under checked rules the
		// side to move may not stand pat while its king is attacked.
		if checked && IsAttacked(p, mover) {
			return errors.ErrSelfCheck
		}

	case chess.KingsideCastle, chess.QueensideCastle:
		if err := canCastle(p, move.Class, checked); err != nil {
			return err
		}
		executeCastle(p, move.Class)
		clearSideRights(p, mover)

	case chess.SimpleMove, chess.EnPassantCapture:
		if err := relocate(p, move, checked); err != nil {
			return err
		}

	default:
		return errors.Wrapf(errors.ErrBadMoveText, "unknown move class %v", move.Class)
	}

	updateEnPassantTarget(p, move)
	p.SideToMove = mover.Opposite()
	return nil
}

// relocate performs the piece movement shared by simple moves and
// en-passant captures: occupancy checks, the relocation itself,
// castling-right bookkeeping, and the self-check gate.
func relocate(p *chess.Position, move chess.Move, checked bool) error {
	mover := p.SideToMove

	from, err := move.From.Unchecked().Validate(p)
	if err != nil {
		return err
	}
	to, err := move.To.Unchecked().Validate(p)
	if err != nil {
		return err
	}

	piece := p.At(from)
	if piece.IsEmpty() {
		return errors.Wrapf(errors.ErrEmptySquare, "%v", from)
	}
	if piece.Side != mover {
		return errors.Wrapf(errors.ErrWrongSide, "%v to move, %v on %v", mover, piece.Kind, from)
	}
	if occupant := p.At(to); !occupant.IsEmpty() && occupant.Side == mover {
		return errors.Wrapf(errors.ErrFriendlyCapture, "%v on %v", occupant.Kind, to)
	}

	p.Set(from, chess.Piece{})
	p.Set(to, piece)
	if move.Class == chess.EnPassantCapture {
		captured, err := move.Captured.Unchecked().Validate(p)
		if err != nil {
			return err
		}
		p.Set(captured, chess.Piece{})
	}

	updateCastlingRights(p, from, to)

	if checked && IsAttacked(p, mover) {
		return errors.Wrapf(errors.ErrSelfCheck, "after %v", move)
	}
	return nil
}

// updateEnPassantTarget recomputes the en-passant target after a move:
// a fresh two-step pawn push exposes the square it skipped, every other
// move clears the target.
func updateEnPassantTarget(p *chess.Position, move chess.Move) {
	p.EnPassant = nil
	if move.Class != chess.SimpleMove {
		return
	}
	if p.At(move.To).Kind != chess.Pawn {
		return
	}
	if move.From.File != move.To.File || abs(move.To.Rank-move.From.Rank) != 2 {
		return
	}
	target := chess.Square{File: move.From.File, Rank: (move.From.Rank + move.To.Rank) / 2}
	p.EnPassant = &target
}
