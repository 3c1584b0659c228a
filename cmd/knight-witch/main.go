// knight-witch is an interactive chess engine: it plays games over standard
// input and output, answering the human's coordinate moves with minimax
// search, and can archive finished games to a database and a Parquet export.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/config"
	"github.com/VeeDeltaVee/knight-witch/internal/engine"
	"github.com/VeeDeltaVee/knight-witch/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("knight-witch version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)

	start := startingPosition()
	store := setupStore(cfg)

	session := NewSession(cfg, store, start)
	err := session.Run()

	if store != nil {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupStore opens the game archive when -db is given. A Parquet export
// reads back archived games, so -parquet without -db is refused.
func setupStore(cfg *config.Config) *storage.Store {
	if cfg.DatabasePath == "" {
		if cfg.ParquetPath != "" {
			fmt.Fprintln(os.Stderr, "Error: -parquet exports the archive and needs -db")
			os.Exit(1)
		}
		return nil
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database %s: %v\n", cfg.DatabasePath, err)
		os.Exit(1)
	}
	return store
}

// startingPosition builds the game's first position from the -fen flag,
// or the standard start when the flag is empty.
func startingPosition() *chess.Position {
	if *startFEN == "" {
		return chess.StartingPosition()
	}

	p, err := engine.PositionFromFEN(*startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN %q: %v\n", *startFEN, err)
		os.Exit(1)
	}
	return p
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: knight-witch [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive chess engine played over standard input and output.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring a game, enter moves as coordinate pairs (e2e4) or castle\n")
	fmt.Fprintf(os.Stderr, "with the literals O-O and O-O-O. Other commands:\n")
	fmt.Fprintf(os.Stderr, "  moves  List the legal moves in the current position\n")
	fmt.Fprintf(os.Stderr, "  fen    Print the current position as FEN\n")
	fmt.Fprintf(os.Stderr, "  quit   Abandon the game\n")
}
