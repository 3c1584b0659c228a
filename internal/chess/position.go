package chess

import (
	"strings"

	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// CastlingRights tracks the four castling permissions independently.
// Rights are monotone: once cleared they are never set again.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Position holds a full game state: piece placement, side to move,
// en-passant target, and castling rights. It is mutated in place by
// move application and cloned freely for trial moves.
type Position struct {
	// Squares holds the board in rank-major order: index = rank*Width +
	// file, rank 0 at the bottom. The zero Piece is an empty square.
	Squares []Piece

	// Width is the board's file extent. The rank extent derives from
	// len(Squares) / Width.
	Width int

	SideToMove Side

	// EnPassant is the square a capturing pawn would land on, set only
	// immediately after a two-step pawn push and cleared by every other
	// move. Nil when no en-passant capture is available.
	EnPassant *Square

	Castling CastlingRights
}

// EmptyPosition returns a cleared board of the given extents with White
// to move and no castling rights.
func EmptyPosition(width, height int) *Position {
	return &Position{
		Squares: make([]Piece, width*height),
		Width:   width,
	}
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() *Position {
	p := EmptyPosition(8, 8)
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		p.Set(Square{File: file, Rank: 0}, W(kind))
		p.Set(Square{File: file, Rank: 1}, W(Pawn))
		p.Set(Square{File: file, Rank: 6}, B(Pawn))
		p.Set(Square{File: file, Rank: 7}, B(kind))
	}
	p.Castling = CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
	return p
}

// Height returns the board's rank extent.
func (p *Position) Height() int {
	return len(p.Squares) / p.Width
}

// index maps a square to its slot in the Squares slice. Squares are
// trusted to be in bounds; untrusted coordinates must pass through
// UncheckedSquare.Validate first.
func (p *Position) index(s Square) int {
	return s.Rank*p.Width + s.File
}

// At returns the piece on the given square.
func (p *Position) At(s Square) Piece {
	return p.Squares[p.index(s)]
}

// Set places a piece on the given square, overwriting what was there.
func (p *Position) Set(s Square, piece Piece) {
	p.Squares[p.index(s)] = piece
}

// Clone returns a deep copy of the position. Mutating the clone never
// affects the original.
func (p *Position) Clone() *Position {
	clone := *p
	clone.Squares = make([]Piece, len(p.Squares))
	copy(clone.Squares, p.Squares)
	if p.EnPassant != nil {
		target := *p.EnPassant
		clone.EnPassant = &target
	}
	return &clone
}

// FromDiagram builds a position from a rank-major ASCII diagram: one
// character per square, rows separated by newlines with the top row as
// the highest rank. Pieces use FEN letters (upper case White, lower
// case Black), '.' is an empty square, and '*' is an empty square
// marked as the en-passant target. Leading and trailing whitespace on
// each row is ignored.
//
// Castling rights cannot be inferred from a diagram, so they start all
// false; the side to move defaults to White. Callers adjust both
// directly when needed.
func FromDiagram(diagram string) (*Position, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(errors.ErrBadDiagram, "no rows")
	}

	width := len(rows[0])
	height := len(rows)
	p := EmptyPosition(width, height)

	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(errors.ErrBadDiagram,
				"row %d is %d squares wide, want %d", i+1, len(row), width)
		}
		rank := height - 1 - i
		for file := 0; file < width; file++ {
			square := Square{File: file, Rank: rank}
			switch letter := row[file]; letter {
			case '.':
			case '*':
				if p.EnPassant != nil {
					return nil, errors.Wrap(errors.ErrBadDiagram, "more than one en-passant marker")
				}
				p.EnPassant = &square
			default:
				piece, ok := PieceFromLetter(letter)
				if !ok {
					return nil, errors.Wrapf(errors.ErrBadDiagram,
						"unknown piece letter %q at %v", letter, square)
				}
				p.Set(square, piece)
			}
		}
	}
	return p, nil
}

// Diagram renders the position in the same format FromDiagram reads:
// rank 0 at the bottom, FEN piece letters, '.' for empty squares, and
// '*' over the en-passant target if one is set.
func (p *Position) Diagram() string {
	var sb strings.Builder
	for rank := p.Height() - 1; rank >= 0; rank-- {
		if rank < p.Height()-1 {
			sb.WriteByte('\n')
		}
		for file := 0; file < p.Width; file++ {
			square := Square{File: file, Rank: rank}
			if p.EnPassant != nil && *p.EnPassant == square {
				sb.WriteByte('*')
				continue
			}
			sb.WriteByte(p.At(square).Letter())
		}
	}
	return sb.String()
}
