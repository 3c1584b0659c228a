package engine

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// Result is the terminal verdict of a position.
type Result int

const (
	// Ongoing means the side to move still has a legal move.
	Ongoing Result = iota

	// WhiteWins and BlackWins mean the other side is checkmated.
	WhiteWins
	BlackWins

	// Draw means the side to move has no legal move but is not in
	// check (stalemate).
	Draw
)

// String returns the result in words.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Winner returns the winning side. The second return is false for
// draws and ongoing games.
func (r Result) Winner() (chess.Side, bool) {
	switch r {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	default:
		return chess.White, false
	}
}

// TerminalResult classifies the position: with no legal moves left the
// side to move is checkmated if its king is attacked and stalemated
// otherwise; with moves left the game is ongoing.
func TerminalResult(p *chess.Position) Result {
	if HasLegalMoves(p) {
		return Ongoing
	}
	if IsInCheck(p) {
		if p.SideToMove == chess.White {
			return BlackWins
		}
		return WhiteWins
	}
	return Draw
}
