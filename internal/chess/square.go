package chess

import (
	"fmt"

	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// Square is a board coordinate that has passed bounds validation. File
// and Rank are zero-based; rank 0 is the bottom row from White's point
// of view.
type Square struct {
	File int
	Rank int
}

// String returns the two-character coordinate text for the square,
// such as "e4".
func (s Square) String() string {
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// Add applies an offset to the square. The result is unchecked: it must
// be validated against a position before use.
func (s Square) Add(o Offset) UncheckedSquare {
	return UncheckedSquare{File: s.File + o.File, Rank: s.Rank + o.Rank}
}

// Unchecked returns the square as a candidate coordinate, for callers
// that build coordinates directly rather than by offset arithmetic.
func (s Square) Unchecked() UncheckedSquare {
	return UncheckedSquare(s)
}

// UncheckedSquare is a candidate coordinate produced by offset
// arithmetic or parsing, pending bounds validation. Validate is the
// single choke point all movement code passes through; there are no
// edge special cases elsewhere.
type UncheckedSquare struct {
	File int
	Rank int
}

// Validate checks the candidate against the position's extents and
// returns a trusted Square. The error reports the failing axis and
// distinguishes negative coordinates from beyond-edge ones.
func (u UncheckedSquare) Validate(p *Position) (Square, error) {
	fileErr := checkAxis(u.File, p.Width)
	rankErr := checkAxis(u.Rank, p.Height())

	switch {
	case fileErr != nil && rankErr != nil:
		return Square{}, &errors.BoundsError{Err: fileErr, File: u.File, Rank: u.Rank, Axis: errors.Both}
	case fileErr != nil:
		return Square{}, &errors.BoundsError{Err: fileErr, File: u.File, Rank: u.Rank, Axis: errors.File}
	case rankErr != nil:
		return Square{}, &errors.BoundsError{Err: rankErr, File: u.File, Rank: u.Rank, Axis: errors.Rank}
	}
	return Square{File: u.File, Rank: u.Rank}, nil
}

// checkAxis reports whether a single coordinate lies in [0, extent).
func checkAxis(coord, extent int) error {
	if coord < 0 {
		return errors.ErrBelowZero
	}
	if coord >= extent {
		return errors.ErrOffBoard
	}
	return nil
}

// Add applies a further offset to an unchecked coordinate.
func (u UncheckedSquare) Add(o Offset) UncheckedSquare {
	return UncheckedSquare{File: u.File + o.File, Rank: u.Rank + o.Rank}
}

// ParseSquare decodes two-character coordinate text such as "e4" into a
// square. Decoding is purely lexical: files run 'a'-'z' and ranks
// '1'-'9', and the caller is responsible for validating the result
// against a position.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, errors.Wrapf(errors.ErrBadMoveText, "square %q", text)
	}
	file := text[0]
	rank := text[1]
	if file < 'a' || file > 'z' {
		return Square{}, errors.Wrapf(errors.ErrBadMoveText, "square %q: bad file letter %q", text, file)
	}
	if rank < '1' || rank > '9' {
		return Square{}, errors.Wrapf(errors.ErrBadMoveText, "square %q: bad rank digit %q", text, rank)
	}
	return Square{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

// Offset is a signed (file, rank) delta applied to squares during ray
// casting and fixed-pattern jumps.
type Offset struct {
	File int
	Rank int
}

// String formats the offset for diagnostics.
func (o Offset) String() string {
	return fmt.Sprintf("(%+d, %+d)", o.File, o.Rank)
}
