package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/config"
	"github.com/VeeDeltaVee/knight-witch/internal/engine"
	"github.com/VeeDeltaVee/knight-witch/internal/records"
	"github.com/VeeDeltaVee/knight-witch/internal/storage"
	"github.com/VeeDeltaVee/knight-witch/internal/testutil"
)

// White mates with the rook ladder: b1b8 is the only winning move.
const mateInOneDiagram = `
	.......k
	R.......
	........
	........
	........
	........
	........
	.R.....K
`

// scriptedConfig builds a session config reading moves from input and
// collecting the transcript in the returned buffer.
func scriptedConfig(input string, players config.EnginePlayers) (*config.Config, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := config.NewBuilder().
		WithInput(strings.NewReader(input)).
		WithOutput(&out).
		WithLogFile(io.Discard).
		WithPlayers(players).
		WithSearchDepth(1).
		Build()
	return cfg, &out
}

// TestSessionScriptedCheckmate verifies that a full scripted game runs
// to checkmate and announces the winner.
func TestSessionScriptedCheckmate(t *testing.T) {
	cfg, out := scriptedConfig("f2f3\ne7e5\ng2g4\nd8h4\n", config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	testutil.AssertContains(t, out.String(), "Checkmate. Black wins.")
	testutil.AssertEqual(t, session.moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
}

// TestSessionRejectsBadInput verifies that unreadable and illegal move
// text re-prompts instead of ending the game.
func TestSessionRejectsBadInput(t *testing.T) {
	cfg, out := scriptedConfig("castle\ne2e5\ne2e4\nquit\n", config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	transcript := out.String()
	testutil.AssertContains(t, transcript, `Cannot read "castle"`)
	testutil.AssertContains(t, transcript, "e2e5 is not legal here.")
	testutil.AssertContains(t, transcript, "Game abandoned.")
	testutil.AssertEqual(t, session.moves, []string{"e2e4"})
}

// TestSessionQuitWithoutMoves verifies that quitting before the first
// move abandons the game cleanly.
func TestSessionQuitWithoutMoves(t *testing.T) {
	cfg, out := scriptedConfig("quit\n", config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	testutil.AssertContains(t, out.String(), "Game abandoned.")
	testutil.AssertEqual(t, len(session.moves), 0)
}

// TestSessionEndsOnEOF verifies that input running dry counts as
// quitting rather than an error.
func TestSessionEndsOnEOF(t *testing.T) {
	cfg, out := scriptedConfig("e2e4\n", config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	testutil.AssertContains(t, out.String(), "Game abandoned.")
	testutil.AssertEqual(t, session.moves, []string{"e2e4"})
}

// TestSessionEngineReplies verifies that the engine answers the human's
// move when it plays Black.
func TestSessionEngineReplies(t *testing.T) {
	cfg, out := scriptedConfig("e2e4\nquit\n", config.EngineBlack)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	testutil.AssertContains(t, out.String(), "Black plays ")
	testutil.AssertEqual(t, len(session.moves), 2)
}

// TestSessionEngineFinishesGame verifies that an engine-only game runs
// without any input at all.
func TestSessionEngineFinishesGame(t *testing.T) {
	cfg, out := scriptedConfig("", config.EngineBoth)
	start := testutil.MustPosition(t, mateInOneDiagram)

	session := NewSession(cfg, nil, start)
	testutil.AssertNoError(t, session.Run())

	transcript := out.String()
	testutil.AssertContains(t, transcript, "White plays b1b8")
	testutil.AssertContains(t, transcript, "Checkmate. White wins.")
}

// TestSessionThreefoldRepetition verifies that shuffling the knights
// back to the start twice ends the game as a repetition draw.
func TestSessionThreefoldRepetition(t *testing.T) {
	shuffle := "g1f3\nb8c6\nf3g1\nc6b8\ng1f3\nb8c6\nf3g1\nc6b8\n"
	cfg, out := scriptedConfig(shuffle, config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	testutil.AssertContains(t, out.String(), "Draw by threefold repetition.")
	testutil.AssertEqual(t, len(session.moves), 8)
}

// TestSessionCastleLiteral verifies that O-O resolves against the legal
// moves and relocates king and rook.
func TestSessionCastleLiteral(t *testing.T) {
	script := "e2e4\ne7e5\ng1f3\nb8c6\nf1c4\ng8f6\nO-O\nquit\n"
	cfg, out := scriptedConfig(script, config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	testutil.AssertNotContains(t, out.String(), "not legal")
	king := session.position.At(chess.Square{File: 6, Rank: 0})
	rook := session.position.At(chess.Square{File: 5, Rank: 0})
	testutil.AssertEqual(t, king, chess.Piece{Kind: chess.King, Side: chess.White})
	testutil.AssertEqual(t, rook, chess.Piece{Kind: chess.Rook, Side: chess.White})
}

// TestSessionEnPassantByCoordinates verifies that plain coordinate text
// landing on the en-passant target captures the bypassing pawn.
func TestSessionEnPassantByCoordinates(t *testing.T) {
	script := "e2e4\na7a6\ne4e5\nd7d5\ne5d6\nquit\n"
	cfg, _ := scriptedConfig(script, config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	landed := session.position.At(chess.Square{File: 3, Rank: 5})
	captured := session.position.At(chess.Square{File: 3, Rank: 4})
	testutil.AssertEqual(t, landed, chess.Piece{Kind: chess.Pawn, Side: chess.White})
	testutil.AssertTrue(t, captured.IsEmpty(), "the bypassing pawn should be gone")
}

// TestSessionCommands verifies the moves and fen helper commands.
func TestSessionCommands(t *testing.T) {
	cfg, out := scriptedConfig("moves\nfen\nquit\n", config.EngineOff)

	session := NewSession(cfg, nil, nil)
	testutil.AssertNoError(t, session.Run())

	transcript := out.String()
	testutil.AssertContains(t, transcript, "e2e4")
	testutil.AssertContains(t, transcript,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
}

// TestSessionArchivesFinishedGame verifies that a finished game lands
// in the store with its moves, result, and running statistics.
func TestSessionArchivesFinishedGame(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg, _ := scriptedConfig("f2f3\ne7e5\ng2g4\nd8h4\n", config.EngineOff)

	session := NewSession(cfg, store, nil)
	testutil.AssertNoError(t, session.Run())

	game, err := store.LoadGame(1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, game.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, game.Result, engine.BlackWins)
	testutil.AssertEqual(t, game.PlyCount, 4)

	stats, err := store.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats, &storage.Stats{GamesPlayed: 1, BlackWins: 1})
}

// TestSessionSkipsArchiveOnQuit verifies that abandoned games are not
// recorded.
func TestSessionSkipsArchiveOnQuit(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg, _ := scriptedConfig("e2e4\nquit\n", config.EngineOff)

	session := NewSession(cfg, store, nil)
	testutil.AssertNoError(t, session.Run())

	games, err := store.Games()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 0)
}

// TestSessionExportsParquet verifies that finishing a game with a
// Parquet path set rewrites the export from the archive.
func TestSessionExportsParquet(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "db"))
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { store.Close() })

	parquetPath := filepath.Join(dir, "games.parquet")
	cfg, _ := scriptedConfig("f2f3\ne7e5\ng2g4\nd8h4\n", config.EngineOff)
	cfg.ParquetPath = parquetPath

	session := NewSession(cfg, store, nil)
	testutil.AssertNoError(t, session.Run())

	rows, err := records.Read(parquetPath)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(rows), 1)
	testutil.AssertEqual(t, rows[0].GameID, int64(1))
	testutil.AssertEqual(t, rows[0].Result, "Black wins")
	testutil.AssertEqual(t, rows[0].PlyCount, int32(4))
}

// TestResolveMove verifies class and coordinate matching against a
// legal-move list.
func TestResolveMove(t *testing.T) {
	legal := []chess.Move{
		chess.NewMove(
			chess.Square{File: 4, Rank: 1},
			chess.Square{File: 4, Rank: 3},
		),
		{
			Class: chess.KingsideCastle,
			From:  chess.Square{File: 4, Rank: 0},
			To:    chess.Square{File: 6, Rank: 0},
		},
	}

	parsed := testutil.MustParseMove(t, "e2e4")
	move, ok := resolveMove(parsed, legal)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, move, legal[0])

	literal := testutil.MustParseMove(t, "O-O")
	move, ok = resolveMove(literal, legal)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, move, legal[1])

	// The king's castling hop typed as coordinates matches the castle.
	hop := testutil.MustParseMove(t, "e1g1")
	move, ok = resolveMove(hop, legal)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, move, legal[1])

	_, ok = resolveMove(testutil.MustParseMove(t, "a2a3"), legal)
	testutil.AssertFalse(t, ok)

	_, ok = resolveMove(testutil.MustParseMove(t, "O-O-O"), legal)
	testutil.AssertFalse(t, ok)
}
