package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// Castling geometry. The king starts on the e-file; rooks start on the
// outermost files. Executing a castle puts the king on the g- or
// c-file and the rook beside it on the f- or d-file.
const (
	kingHomeFile = 4

	kingsideKingFile = 6
	kingsideRookFile = 5

	queensideKingFile = 2
	queensideRookFile = 3
)

// homeRank returns the back rank for the given side: rank 0 for White,
// the top rank for Black.
func homeRank(p *chess.Position, side chess.Side) int {
	if side == chess.White {
		return 0
	}
	return p.Height() - 1
}

// kingHome returns the side's king starting square. The coordinate is
// geometric and may lie outside a narrow board; callers validate it.
func kingHome(p *chess.Position, side chess.Side) chess.Square {
	return chess.Square{File: kingHomeFile, Rank: homeRank(p, side)}
}

// rookHome returns the starting square of the side's rook for the given
// castling direction: file 0 queenside, the last file kingside.
func rookHome(p *chess.Position, side chess.Side, direction chess.MoveClass) chess.Square {
	file := 0
	if direction == chess.KingsideCastle {
		file = p.Width - 1
	}
	return chess.Square{File: file, Rank: homeRank(p, side)}
}

// hasRight reports whether the side still holds the castling right for
// the given direction.
func hasRight(p *chess.Position, side chess.Side, direction chess.MoveClass) bool {
	kingside := direction == chess.KingsideCastle
	if side == chess.White {
		if kingside {
			return p.Castling.WhiteKingside
		}
		return p.Castling.WhiteQueenside
	}
	if kingside {
		return p.Castling.BlackKingside
	}
	return p.Castling.BlackQueenside
}

// clearRight drops one castling right. Rights are monotone; nothing
// ever sets them back.
func clearRight(p *chess.Position, side chess.Side, direction chess.MoveClass) {
	kingside := direction == chess.KingsideCastle
	if side == chess.White {
		if kingside {
			p.Castling.WhiteKingside = false
		} else {
			p.Castling.WhiteQueenside = false
		}
		return
	}
	if kingside {
		p.Castling.BlackKingside = false
	} else {
		p.Castling.BlackQueenside = false
	}
}

// clearSideRights drops both of a side's castling rights.
func clearSideRights(p *chess.Position, side chess.Side) {
	clearRight(p, side, chess.KingsideCastle)
	clearRight(p, side, chess.QueensideCastle)
}

// updateCastlingRights clears rights invalidated by a move between the
// given squares, whichever side moves:
//   - any move leaving a king home square drops both of that side's
//     rights, whatever piece stood there;
//   - any move leaving or entering a rook home square drops that rook's
//     right, covering both the rook moving away and its capture.
func updateCastlingRights(p *chess.Position, from, to chess.Square) {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if from == kingHome(p, side) {
			clearSideRights(p, side)
		}
		for _, direction := range []chess.MoveClass{chess.KingsideCastle, chess.QueensideCastle} {
			home := rookHome(p, side, direction)
			if from == home || to == home {
				clearRight(p, side, direction)
			}
		}
	}
}

// canCastle reports whether the side to move may castle in the given
// direction. The conditions run in order and fail fast: the right must
// still be held; no piece may stand between the king and rook homes;
// king and rook must actually stand on their homes; and, when checked,
// the king may not be attacked where it stands, anywhere it passes
// through, or where it lands.
func canCastle(p *chess.Position, direction chess.MoveClass, checked bool) error {
	side := p.SideToMove
	if !hasRight(p, side, direction) {
		return errors.Wrap(errors.ErrCastlingNotAllowed, "right already lost")
	}

	kingFrom, err := kingHome(p, side).Unchecked().Validate(p)
	if err != nil {
		return errors.Wrap(errors.ErrCastlingNotAllowed, "no king home square on this board")
	}
	rookFrom, err := rookHome(p, side, direction).Unchecked().Validate(p)
	if err != nil {
		return errors.Wrap(errors.ErrCastlingNotAllowed, "no rook home square on this board")
	}

	// The squares strictly between king and rook must be empty. A
	// non-capturing ray from the king home stops just short of the
	// rook exactly when they are.
	towardRook := 1
	if direction == chess.QueensideCastle {
		towardRook = -1
	}
	extent := castRay(p, kingFrom, off(towardRook, 0), false)
	if direction == chess.KingsideCastle {
		if extent.File < rookFrom.File-1 {
			return errors.Wrap(errors.ErrCastlingNotAllowed, "path is blocked")
		}
	} else {
		if extent.File > rookFrom.File+1 {
			return errors.Wrap(errors.ErrCastlingNotAllowed, "path is blocked")
		}
	}

	if p.At(kingFrom) != (chess.Piece{Kind: chess.King, Side: side}) {
		return errors.Wrap(errors.ErrCastlingNotAllowed, "king has moved")
	}
	if p.At(rookFrom) != (chess.Piece{Kind: chess.Rook, Side: side}) {
		return errors.Wrap(errors.ErrCastlingNotAllowed, "rook has moved")
	}

	if checked {
		if IsAttacked(p, side) {
			return errors.Wrap(errors.ErrCastlingNotAllowed, "king is in check")
		}
		for _, file := range kingPathFiles(direction) {
			trial, err := chess.UncheckedSquare{File: file, Rank: kingFrom.Rank}.Validate(p)
			if err != nil {
				return errors.Wrap(errors.ErrCastlingNotAllowed, "king path leaves the board")
			}
			probe := p.Clone()
			probe.Set(kingFrom, chess.Piece{})
			probe.Set(trial, chess.Piece{Kind: chess.King, Side: side})
			if IsAttacked(probe, side) {
				return errors.Wrapf(errors.ErrCastlingNotAllowed, "king passes through an attacked square %v", trial)
			}
		}
	}

	return nil
}

// kingPathFiles lists the files the king crosses or lands on while
// castling, in crossing order. The first crossing is the square the
// rook ends up on; the b-file is not part of the queenside king path.
func kingPathFiles(direction chess.MoveClass) []int {
	if direction == chess.KingsideCastle {
		return []int{kingsideRookFile, kingsideKingFile}
	}
	return []int{queensideRookFile, queensideKingFile}
}

// executeCastle relocates the side to move's king and rook for an
// already-validated castle, vacating both home squares.
func executeCastle(p *chess.Position, direction chess.MoveClass) {
	side := p.SideToMove
	rank := homeRank(p, side)

	kingFrom := kingHome(p, side)
	rookFrom := rookHome(p, side, direction)
	kingTo := chess.Square{File: kingsideKingFile, Rank: rank}
	rookTo := chess.Square{File: kingsideRookFile, Rank: rank}
	if direction == chess.QueensideCastle {
		kingTo = chess.Square{File: queensideKingFile, Rank: rank}
		rookTo = chess.Square{File: queensideRookFile, Rank: rank}
	}

	king := p.At(kingFrom)
	rook := p.At(rookFrom)
	p.Set(kingFrom, chess.Piece{})
	p.Set(rookFrom, chess.Piece{})
	p.Set(kingTo, king)
	p.Set(rookTo, rook)
}

// castlingMoves returns the castle moves available to the side to move.
// The emitted moves carry the king's from/to squares so they render as
// coordinate text.
func castlingMoves(p *chess.Position, checked bool) []chess.Move {
	var moves []chess.Move
	for _, direction := range []chess.MoveClass{chess.KingsideCastle, chess.QueensideCastle} {
		if canCastle(p, direction, checked) != nil {
			continue
		}
		rank := homeRank(p, p.SideToMove)
		toFile := kingsideKingFile
		if direction == chess.QueensideCastle {
			toFile = queensideKingFile
		}
		moves = append(moves, chess.Move{
			Class: direction,
			From:  chess.Square{File: kingHomeFile, Rank: rank},
			To:    chess.Square{File: toFile, Rank: rank},
		})
	}
	return moves
}
