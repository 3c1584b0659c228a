package engine

import (
	"strconv"
	"strings"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PositionFromFEN builds a standard 8x8 position from Forsyth-Edwards
// notation. The piece placement field is required; side to move,
// castling rights, and the en-passant target default to White, none,
// and none. Halfmove and fullmove clocks are accepted but not modelled.
//
// FEN is the interchange bridge to external tools; positions on other
// board widths have no FEN form and travel as diagrams instead.
func PositionFromFEN(fen string) (*chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 1 {
		return nil, errors.Wrap(errors.ErrBadFEN, "empty FEN string")
	}

	p := chess.EmptyPosition(8, 8)

	if err := parsePiecePositions(p, fields[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, fields); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, fields); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, fields); err != nil {
		return nil, err
	}
	if err := parseClocks(fields); err != nil {
		return nil, err
	}

	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string,
// given rank by rank from the top.
func parsePiecePositions(p *chess.Position, placement string) error {
	rank := p.Height() - 1
	file := 0

	for _, c := range placement {
		switch {
		case c == '/':
			rank--
			file = 0
			if rank < 0 {
				return errors.Wrap(errors.ErrBadFEN, "too many ranks")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > p.Width {
				return errors.Wrapf(errors.ErrBadFEN, "rank %d overflows the board", rank+1)
			}
		default:
			piece, ok := chess.PieceFromLetter(byte(c))
			if !ok {
				return errors.Wrapf(errors.ErrBadFEN, "invalid piece character %q", c)
			}
			if file >= p.Width {
				return errors.Wrapf(errors.ErrBadFEN, "rank %d overflows the board", rank+1)
			}
			p.Set(chess.Square{File: file, Rank: rank}, piece)
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *chess.Position, fields []string) error {
	if len(fields) < 2 {
		return nil
	}
	switch fields[1] {
	case "w":
		p.SideToMove = chess.White
	case "b":
		p.SideToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrBadFEN, "invalid side to move %q", fields[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *chess.Position, fields []string) error {
	if len(fields) < 3 || fields[2] == "-" {
		return nil
	}
	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.Castling.WhiteKingside = true
		case 'Q':
			p.Castling.WhiteQueenside = true
		case 'k':
			p.Castling.BlackKingside = true
		case 'q':
			p.Castling.BlackQueenside = true
		default:
			return errors.Wrapf(errors.ErrBadFEN, "invalid castling right %q", c)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *chess.Position, fields []string) error {
	if len(fields) < 4 || fields[3] == "-" {
		return nil
	}
	square, err := chess.ParseSquare(fields[3])
	if err != nil {
		return errors.Wrapf(errors.ErrBadFEN, "invalid en passant target %q", fields[3])
	}
	target, err := square.Unchecked().Validate(p)
	if err != nil {
		return errors.Wrapf(errors.ErrBadFEN, "en passant target %q off the board", fields[3])
	}
	p.EnPassant = &target
	return nil
}

// parseClocks validates the halfmove clock and fullmove number fields.
// The position does not model them, so the values are discarded.
func parseClocks(fields []string) error {
	for _, i := range []int{4, 5} {
		if len(fields) <= i {
			return nil
		}
		if _, err := strconv.Atoi(fields[i]); err != nil {
			return errors.Wrapf(errors.ErrBadFEN, "invalid clock field %q", fields[i])
		}
	}
	return nil
}

// PositionToFEN renders the position in Forsyth-Edwards notation. The
// clock fields are not modelled and export as "0 1".
func PositionToFEN(p *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, p)
	sb.WriteByte(' ')
	writeSideToMove(&sb, p)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p)
	sb.WriteByte(' ')
	writeEnPassant(&sb, p)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p *chess.Position) {
	for rank := p.Height() - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < p.Width; file++ {
			piece := p.At(chess.Square{File: file, Rank: rank})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, p *chess.Position) {
	if p.SideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, p *chess.Position) {
	hasCastling := false
	if p.Castling.WhiteKingside {
		sb.WriteByte('K')
		hasCastling = true
	}
	if p.Castling.WhiteQueenside {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if p.Castling.BlackKingside {
		sb.WriteByte('k')
		hasCastling = true
	}
	if p.Castling.BlackQueenside {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, p *chess.Position) {
	if p.EnPassant != nil {
		sb.WriteString(p.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
}
