// Package config holds the runtime configuration shared by the
// commands: log destination and verbosity, session streams, engine
// settings, and the archive and export paths.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// EnginePlayers selects which sides the engine plays in a session.
type EnginePlayers int

const (
	// EngineBlack has the engine answer for Black.
	EngineBlack EnginePlayers = iota
	// EngineWhite has the engine open for White.
	EngineWhite
	// EngineBoth lets the engine play itself.
	EngineBoth
	// EngineOff leaves both sides to human input.
	EngineOff
)

// String returns the mode name as accepted by ParseEnginePlayers.
func (e EnginePlayers) String() string {
	switch e {
	case EngineWhite:
		return "white"
	case EngineBoth:
		return "both"
	case EngineOff:
		return "off"
	default:
		return "black"
	}
}

// Plays reports whether the engine moves for the given side.
func (e EnginePlayers) Plays(side chess.Side) bool {
	switch e {
	case EngineWhite:
		return side == chess.White
	case EngineBlack:
		return side == chess.Black
	case EngineBoth:
		return true
	default:
		return false
	}
}

// ParseEnginePlayers maps a flag value to an engine mode.
func ParseEnginePlayers(s string) (EnginePlayers, error) {
	switch s {
	case "black":
		return EngineBlack, nil
	case "white":
		return EngineWhite, nil
	case "both":
		return EngineBoth, nil
	case "off":
		return EngineOff, nil
	}
	return EngineBlack, fmt.Errorf("engine players %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all command configuration.
type Config struct {
	// Verbosity gates diagnostics: 0=quiet, 1=milestones, 2=running
	// commentary.
	Verbosity int

	// Input is the session's move source.
	Input io.Reader

	// Output is where boards and prompts are written.
	Output io.Writer

	// LogFile is where diagnostics go, gated by Verbosity.
	LogFile io.Writer

	// SearchDepth is the engine look-ahead in plies.
	SearchDepth int

	// Players selects which sides the engine plays.
	Players EnginePlayers

	// Workers is the parallel perft worker count; 0 picks the pool
	// default.
	Workers int

	// DatabasePath is the game archive directory; empty disables
	// archiving.
	DatabasePath string

	// ParquetPath is the export file for finished games; empty disables
	// the export.
	ParquetPath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		Input:       os.Stdin,
		Output:      os.Stdout,
		LogFile:     os.Stderr,
		SearchDepth: 3,
		Players:     EngineBlack,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("search depth %d: %w", c.SearchDepth, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic to the log file when the verbosity level
// admits it. Format follows fmt.Fprintf; callers supply the newline.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
