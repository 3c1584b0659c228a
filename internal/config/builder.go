package config

import "io"

// Builder provides a fluent API for building Config instances.
type Builder struct {
	cfg *Config
}

// NewBuilder creates a Builder seeded with the default configuration.
func NewBuilder() *Builder {
	return &Builder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *Builder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the diagnostic verbosity level.
func (b *Builder) WithVerbosity(level int) *Builder {
	b.cfg.Verbosity = level
	return b
}

// WithInput sets the session's move source.
func (b *Builder) WithInput(r io.Reader) *Builder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the board and prompt destination.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the diagnostic destination.
func (b *Builder) WithLogFile(w io.Writer) *Builder {
	b.cfg.LogFile = w
	return b
}

// WithSearchDepth sets the engine look-ahead in plies.
func (b *Builder) WithSearchDepth(depth int) *Builder {
	b.cfg.SearchDepth = depth
	return b
}

// WithPlayers selects which sides the engine plays.
func (b *Builder) WithPlayers(players EnginePlayers) *Builder {
	b.cfg.Players = players
	return b
}

// WithWorkers sets the parallel perft worker count.
func (b *Builder) WithWorkers(workers int) *Builder {
	b.cfg.Workers = workers
	return b
}

// WithDatabasePath sets the game archive directory.
func (b *Builder) WithDatabasePath(path string) *Builder {
	b.cfg.DatabasePath = path
	return b
}

// WithParquetPath sets the export file for finished games.
func (b *Builder) WithParquetPath(path string) *Builder {
	b.cfg.ParquetPath = path
	return b
}
