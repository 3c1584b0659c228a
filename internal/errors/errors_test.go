package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrBelowZero", ErrBelowZero, ErrBelowZero},
		{"ErrOffBoard", ErrOffBoard, ErrOffBoard},
		{"ErrEmptySquare", ErrEmptySquare, ErrEmptySquare},
		{"ErrWrongSide", ErrWrongSide, ErrWrongSide},
		{"ErrFriendlyCapture", ErrFriendlyCapture, ErrFriendlyCapture},
		{"ErrSelfCheck", ErrSelfCheck, ErrSelfCheck},
		{"ErrCastlingNotAllowed", ErrCastlingNotAllowed, ErrCastlingNotAllowed},
		{"ErrBadMoveText", ErrBadMoveText, ErrBadMoveText},
		{"ErrBadDiagram", ErrBadDiagram, ErrBadDiagram},
		{"ErrBadFEN", ErrBadFEN, ErrBadFEN},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("validating destination: %w", ErrOffBoard)

	if !errors.Is(wrapped, ErrOffBoard) {
		t.Errorf("errors.Is(wrapped, ErrOffBoard) = false, want true")
	}
}

// TestBoundsError_Error verifies the error message format
func TestBoundsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BoundsError
		contains []string
	}{
		{
			name: "negative rank",
			err: &BoundsError{
				Err:  ErrBelowZero,
				File: 3,
				Rank: -1,
				Axis: Rank,
			},
			contains: []string{"rank", "file 3", "-1", "below zero"},
		},
		{
			name: "file beyond edge",
			err: &BoundsError{
				Err:  ErrOffBoard,
				File: 8,
				Rank: 4,
				Axis: File,
			},
			contains: []string{"file", "8", "off the board"},
		},
		{
			name: "both axes",
			err: &BoundsError{
				Err:  ErrOffBoard,
				File: 9,
				Rank: 11,
				Axis: Both,
			},
			contains: []string{"file and rank", "9", "11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("BoundsError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestBoundsError_Unwrap verifies that BoundsError properly implements Unwrap
func TestBoundsError_Unwrap(t *testing.T) {
	boundsErr := &BoundsError{
		Err:  ErrBelowZero,
		File: -2,
		Rank: 0,
		Axis: File,
	}

	// Unwrap should return the underlying error
	unwrapped := errors.Unwrap(boundsErr)
	if !errors.Is(unwrapped, ErrBelowZero) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrBelowZero)
	}

	// errors.Is should work through the wrapper
	if !errors.Is(boundsErr, ErrBelowZero) {
		t.Error("errors.Is(boundsErr, ErrBelowZero) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrSelfCheck,
				PlyNum:   12,
				MoveText: "e2e4",
			},
			contains: []string{"ply 12", "e2e4", "check"},
		},
		{
			name: "bare error",
			err: &MoveError{
				Err: ErrWrongSide,
			},
			contains: []string{"side not on move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrCastlingNotAllowed,
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	// Wrap it further
	wrapped := fmt.Errorf("resolving input: %w", moveErr)

	// Should be able to extract MoveError with errors.As
	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
}

// TestAxis_String verifies axis names used in messages
func TestAxis_String(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{File, "file"},
		{Rank, "rank"},
		{Both, "file and rank"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.axis.String(); got != tt.want {
				t.Errorf("Axis.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrBadDiagram
	wrapped := Wrap(original, "importing board")

	if !errors.Is(wrapped, ErrBadDiagram) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "importing board") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrBadMoveText
	wrapped := Wrapf(original, "reading move %d", 15)

	if !errors.Is(wrapped, ErrBadMoveText) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// TestWrap_Nil verifies nil passthrough
func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
