// Package errors provides sentinel errors and error types for knight-witch.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrBelowZero indicates a coordinate that went negative during
	// offset arithmetic.
	ErrBelowZero = errors.New("coordinate below zero")

	// ErrOffBoard indicates a coordinate beyond the board's extent.
	ErrOffBoard = errors.New("square off the board")

	// ErrEmptySquare indicates a move whose origin square holds no piece.
	ErrEmptySquare = errors.New("no piece on origin square")

	// ErrWrongSide indicates a move whose origin square holds a piece of
	// the side not on move.
	ErrWrongSide = errors.New("piece belongs to the side not on move")

	// ErrFriendlyCapture indicates a move onto a square already occupied
	// by the mover's own piece.
	ErrFriendlyCapture = errors.New("destination occupied by friendly piece")

	// ErrSelfCheck indicates a move that would leave the mover's own king
	// attacked.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrCastlingNotAllowed indicates an unmet castling precondition
	// (cleared rights, blocked path, displaced pieces, or an attacked
	// king path).
	ErrCastlingNotAllowed = errors.New("castling not allowed")

	// ErrBadMoveText indicates move text that is not a coordinate pair or
	// castling literal.
	ErrBadMoveText = errors.New("unreadable move text")

	// ErrBadDiagram indicates a malformed board diagram.
	ErrBadDiagram = errors.New("malformed board diagram")

	// ErrBadFEN indicates a malformed FEN string.
	ErrBadFEN = errors.New("malformed FEN string")

	// ErrGameOver indicates an operation that needs at least one legal
	// move in a position that has none.
	ErrGameOver = errors.New("no legal moves in position")

	// ErrInvalidConfig indicates an unusable configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Axis identifies which coordinate axis failed a bounds check.
type Axis int

const (
	File Axis = iota
	Rank
	Both
)

// String returns the axis name for error messages.
func (a Axis) String() string {
	switch a {
	case File:
		return "file"
	case Rank:
		return "rank"
	default:
		return "file and rank"
	}
}

// BoundsError wraps a coordinate failure with the offending raw coordinates
// and the failing axis. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type BoundsError struct {
	Err  error // ErrBelowZero or ErrOffBoard
	File int   // Raw file coordinate
	Rank int   // Raw rank coordinate
	Axis Axis  // Which axis failed
}

// Error returns a formatted message naming the failing axis and coordinates.
func (e *BoundsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at file %d, rank %d: %v", e.Axis, e.File, e.Rank, e.Err)
	}
	return fmt.Sprintf("%s at file %d, rank %d out of bounds", e.Axis, e.File, e.Rank)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the BoundsError wrapper.
func (e *BoundsError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context, including the ply at which the
// move was attempted and the move's textual form.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target. It is
// re-exported from the standard library so callers need only one errors
// import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, re-exported
// from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
