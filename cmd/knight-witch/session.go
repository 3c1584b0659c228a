// session.go - The interactive game loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/config"
	"github.com/VeeDeltaVee/knight-witch/internal/engine"
	"github.com/VeeDeltaVee/knight-witch/internal/evaluation"
	"github.com/VeeDeltaVee/knight-witch/internal/hashing"
	"github.com/VeeDeltaVee/knight-witch/internal/records"
	"github.com/VeeDeltaVee/knight-witch/internal/search"
	"github.com/VeeDeltaVee/knight-witch/internal/storage"
)

// Session runs one game from a starting position to its end. Each side
// is played either by the engine or by move text read from the
// configured input, according to cfg.Players.
type Session struct {
	cfg      *config.Config
	searcher search.Searcher
	tracker  *hashing.Tracker
	store    *storage.Store // nil disables archiving
	position *chess.Position
	moves    []string
	started  time.Time
	scanner  *bufio.Scanner
	out      io.Writer
}

// NewSession prepares a game on cfg's input and output. A nil start
// means the standard starting position; a nil store disables archiving.
func NewSession(cfg *config.Config, store *storage.Store, start *chess.Position) *Session {
	if start == nil {
		start = chess.StartingPosition()
	}
	return &Session{
		cfg:      cfg,
		searcher: &search.Minimax{Evaluator: evaluation.Default(), Depth: cfg.SearchDepth},
		tracker:  hashing.NewTracker(),
		store:    store,
		position: start,
		started:  time.Now(),
		scanner:  bufio.NewScanner(cfg.Input),
		out:      cfg.Output,
	}
}

// Run plays the game until checkmate, stalemate, threefold repetition,
// or the player quits. Finished games are archived when a store is set;
// an abandoned game is not.
func (s *Session) Run() error {
	s.cfg.Logf(1, "game started, engine plays %s at depth %d\n", s.cfg.Players, s.cfg.SearchDepth)
	s.tracker.Record(hashing.Hash(s.position))

	var result engine.Result
	for {
		fmt.Fprintf(s.out, "\n%s\n", s.position.Diagram())

		result = engine.TerminalResult(s.position)
		if result != engine.Ongoing {
			s.announceEnd(result)
			break
		}
		if s.tracker.ThreefoldRepetition() {
			result = engine.Draw
			fmt.Fprintln(s.out, "Draw by threefold repetition.")
			break
		}
		if engine.IsInCheck(s.position) {
			fmt.Fprintf(s.out, "%s is in check.\n", s.position.SideToMove)
		}

		var move chess.Move
		if s.cfg.Players.Plays(s.position.SideToMove) {
			found, value, err := s.searcher.Search(s.position)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			fmt.Fprintf(s.out, "%s plays %s\n", s.position.SideToMove, found)
			s.cfg.Logf(2, "searched %s to depth %d: %s valued %s\n",
				s.position.SideToMove, s.cfg.SearchDepth, found, value)
			move = found
		} else {
			entered, quit := s.promptMove()
			if quit {
				fmt.Fprintln(s.out, "Game abandoned.")
				return nil
			}
			move = entered
		}

		if err := engine.ApplyMove(s.position, move, true); err != nil {
			return fmt.Errorf("apply %s: %w", move, err)
		}
		s.moves = append(s.moves, move.String())
		s.tracker.Record(hashing.Hash(s.position))
	}

	return s.finish(result)
}

// promptMove reads input lines until one resolves to a legal move. The
// second return is true when the player quits, including on EOF.
func (s *Session) promptMove() (chess.Move, bool) {
	legal := engine.LegalMoves(s.position)
	for {
		fmt.Fprintf(s.out, "%s> ", s.position.SideToMove)
		if !s.scanner.Scan() {
			return chess.Move{}, true
		}

		text := strings.TrimSpace(s.scanner.Text())
		switch text {
		case "":
			continue
		case "quit":
			return chess.Move{}, true
		case "moves":
			texts := make([]string, len(legal))
			for i, m := range legal {
				texts[i] = m.String()
			}
			sort.Strings(texts)
			fmt.Fprintln(s.out, strings.Join(texts, " "))
			continue
		case "fen":
			fmt.Fprintln(s.out, engine.PositionToFEN(s.position))
			continue
		}

		parsed, err := chess.ParseMove(text)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot read %q: moves look like e2e4, O-O, or O-O-O.\n", text)
			continue
		}
		move, ok := resolveMove(parsed, legal)
		if !ok {
			fmt.Fprintf(s.out, "%s is not legal here.\n", text)
			continue
		}
		return move, false
	}
}

// resolveMove matches parsed move text against the legal-move list.
// Coordinate input carries no class, so a pair landing on the
// en-passant target resolves to the capture, and a king's two-square
// hop resolves to the castle. Castle literals match by class alone.
func resolveMove(parsed chess.Move, legal []chess.Move) (chess.Move, bool) {
	for _, m := range legal {
		switch parsed.Class {
		case chess.KingsideCastle, chess.QueensideCastle:
			if m.Class == parsed.Class {
				return m, true
			}
		default:
			if m.From == parsed.From && m.To == parsed.To {
				return m, true
			}
		}
	}
	return chess.Move{}, false
}

// announceEnd reports how the game finished. TerminalResult only draws
// by stalemate; repetition draws are announced at the call site.
func (s *Session) announceEnd(result engine.Result) {
	if winner, ok := result.Winner(); ok {
		fmt.Fprintf(s.out, "Checkmate. %s wins.\n", winner)
		return
	}
	fmt.Fprintln(s.out, "Stalemate. The game is a draw.")
}

// finish archives the finished game and refreshes the Parquet export.
func (s *Session) finish(result engine.Result) error {
	if s.store == nil {
		return nil
	}

	record := &storage.GameRecord{
		Moves:      s.moves,
		Result:     result,
		PlyCount:   len(s.moves),
		StartedAt:  s.started,
		FinishedAt: time.Now(),
	}
	id, err := s.store.Archive(record)
	if err != nil {
		return fmt.Errorf("archive game: %w", err)
	}
	s.cfg.Logf(1, "archived game %d (%d plies, %s)\n", id, record.PlyCount, result)

	if s.cfg.ParquetPath == "" {
		return nil
	}
	games, err := s.store.Games()
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	if err := records.ExportGames(s.cfg.ParquetPath, games); err != nil {
		return fmt.Errorf("export %s: %w", s.cfg.ParquetPath, err)
	}
	s.cfg.Logf(1, "exported %d game(s) to %s\n", len(games), s.cfg.ParquetPath)
	return nil
}
