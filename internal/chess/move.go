package chess

import (
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// MoveClass discriminates the kinds of move. The set is closed: move
// handling code switches over it exhaustively.
type MoveClass int

const (
	// SimpleMove relocates one piece from From to To, capturing
	// whatever stood on To.
	SimpleMove MoveClass = iota

	// EnPassantCapture moves a pawn from From to the en-passant target
	// To and removes the opposing pawn on Captured.
	EnPassantCapture

	// KingsideCastle and QueensideCastle relocate king and rook
	// together. From and To carry the king's squares for display and
	// interchange.
	KingsideCastle
	QueensideCastle

	// NullMove passes the turn without touching a piece. It is used for
	// internal "what if it were the opponent's turn" probes and is not
	// part of the game's move vocabulary.
	NullMove
)

// String returns the move class name.
func (c MoveClass) String() string {
	names := []string{"SimpleMove", "EnPassantCapture", "KingsideCastle", "QueensideCastle", "NullMove"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move describes a single move as a closed union: Class selects which
// payload fields are meaningful. Moves are comparable with ==.
type Move struct {
	Class    MoveClass
	From     Square
	To       Square
	Captured Square // en passant only: the captured pawn's square
}

// NewMove returns a simple relocation move.
func NewMove(from, to Square) Move {
	return Move{Class: SimpleMove, From: from, To: to}
}

// NewEnPassant returns an en-passant capture landing on to and removing
// the pawn on captured.
func NewEnPassant(from, to, captured Square) Move {
	return Move{Class: EnPassantCapture, From: from, To: to, Captured: captured}
}

// String returns the move as four-character coordinate text, such as
// "e2e4". Castling moves render as the king's from/to coordinates (for
// example "e1g1"); the null move renders as "--".
func (m Move) String() string {
	if m.Class == NullMove {
		return "--"
	}
	return m.From.String() + m.To.String()
}

// ParseMove decodes move text: a four-character coordinate pair such as
// "e2e4", or the literals "O-O" and "O-O-O" for castling. Parsed
// castling moves carry no squares; callers resolve them against the
// legal moves of a position. Coordinates are lexical and bounds-checked
// only when the move is applied.
//
// En passant and promotion are never expressed in this form: en passant
// is derived from board state when the move is matched against the
// legal-move list, and a pawn reaching the last rank stays a pawn.
func ParseMove(text string) (Move, error) {
	switch text {
	case "O-O":
		return Move{Class: KingsideCastle}, nil
	case "O-O-O":
		return Move{Class: QueensideCastle}, nil
	}

	if len(text) != 4 {
		return Move{}, &errors.MoveError{Err: errors.ErrBadMoveText, MoveText: text}
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, &errors.MoveError{Err: err, MoveText: text}
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, &errors.MoveError{Err: err, MoveText: text}
	}
	return NewMove(from, to), nil
}
