// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/VeeDeltaVee/knight-witch/internal/config"
)

var (
	// Game options
	engineMode  = flag.String("engine", "black", "Side(s) the engine plays: white, black, both, or off")
	searchDepth = flag.Int("depth", 3, "Search depth in plies")
	startFEN    = flag.String("fen", "", "Starting position in FEN (default: the standard start)")

	// Archiving
	databasePath = flag.String("db", "", "Directory for the game archive (empty = no archiving)")
	parquetPath  = flag.String("parquet", "", "Rewrite a Parquet export of the archive after each game")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 = quiet, 1 = milestones, 2 = commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	players, err := config.ParseEnginePlayers(*engineMode)
	if err != nil {
		return err
	}
	cfg.Players = players

	cfg.SearchDepth = *searchDepth
	cfg.DatabasePath = *databasePath
	cfg.ParquetPath = *parquetPath

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}
