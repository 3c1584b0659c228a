package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// candidateMoves returns every geometric candidate for the side to
// move, before the legality oracle has filtered them.
func candidateMoves(p *chess.Position, checked bool) []chess.Move {
	var moves []chess.Move
	moves = append(moves, pawnMoves(p)...)
	moves = append(moves, knightMoves(p)...)
	moves = append(moves, bishopMoves(p)...)
	moves = append(moves, rookMoves(p)...)
	moves = append(moves, queenMoves(p)...)
	moves = append(moves, kingMoves(p)...)
	moves = append(moves, castlingMoves(p, checked)...)
	return moves
}

// movesWhere keeps the candidates that survive the legality oracle: a
// candidate is in the result iff applying it to a disposable clone
// succeeds under the given rules.
func movesWhere(p *chess.Position, checked bool) []chess.Move {
	var moves []chess.Move
	for _, move := range candidateMoves(p, checked) {
		trial := p.Clone()
		if applyTo(trial, move, checked) == nil {
			moves = append(moves, move)
		}
	}
	return moves
}

// LegalMoves returns every fully legal move for the side to move, in a
// deterministic board-scan order.
func LegalMoves(p *chess.Position) []chess.Move {
	return movesWhere(p, true)
}

// PseudoLegalMoves returns the moves that obey geometry and occupancy
// but may leave the mover's own king attacked. Performance-sensitive
// callers use it when a later step catches king captures anyway.
func PseudoLegalMoves(p *chess.Position) []chess.Move {
	return movesWhere(p, false)
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first one found.
func HasLegalMoves(p *chess.Position) bool {
	for _, move := range candidateMoves(p, true) {
		trial := p.Clone()
		if applyTo(trial, move, true) == nil {
			return true
		}
	}
	return false
}
