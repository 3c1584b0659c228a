// Package storage archives finished games and aggregate results in a
// BadgerDB database.
package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/VeeDeltaVee/knight-witch/internal/engine"
	"github.com/VeeDeltaVee/knight-witch/internal/errors"
)

// Storage keys
const (
	keyStats     = "stats"
	keyGameCount = "game_count"
	gamePrefix   = "game:"
)

// GameRecord is one archived game.
type GameRecord struct {
	// ID is the sequential archive key, assigned by SaveGame.
	ID uint64 `json:"id"`

	// Moves holds the game's moves in coordinate notation.
	Moves []string `json:"moves"`

	Result   engine.Result `json:"result"`
	PlyCount int           `json:"ply_count"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Stats aggregates results across archived games.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
}

// Store wraps BadgerDB for persistent game storage.
type Store struct {
	db *badger.DB
}

// Open opens or creates the archive database in dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("database path is empty: %w", errors.ErrInvalidConfig)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame assigns the next sequential ID, stores the record under it,
// and returns the assigned ID.
func (s *Store) SaveGame(record *GameRecord) (uint64, error) {
	var id uint64

	err := s.db.Update(func(txn *badger.Txn) error {
		count, err := readCount(txn)
		if err != nil {
			return err
		}

		id = count + 1
		record.ID = id

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		if err := txn.Set(gameKey(id), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyGameCount), []byte(strconv.FormatUint(id, 10)))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// LoadGame retrieves one archived game. A missing ID surfaces
// badger.ErrKeyNotFound.
func (s *Store) LoadGame(id uint64) (*GameRecord, error) {
	record := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, record)
		})
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Games returns all archived games in ID order.
func (s *Store) Games() ([]*GameRecord, error) {
	var records []*GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			record := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// SaveStats stores the aggregate counters.
func (s *Store) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads the aggregate counters, returning zero values when
// none have been stored yet.
func (s *Store) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use zero values
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordResult folds one finished game into the aggregate counters.
func (s *Store) RecordResult(result engine.Result) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch result {
	case engine.WhiteWins:
		stats.WhiteWins++
	case engine.BlackWins:
		stats.BlackWins++
	case engine.Draw:
		stats.Draws++
	}

	return s.SaveStats(stats)
}

// Archive stores a finished game and folds its result into the
// aggregate counters, returning the assigned ID.
func (s *Store) Archive(record *GameRecord) (uint64, error) {
	id, err := s.SaveGame(record)
	if err != nil {
		return 0, err
	}
	return id, s.RecordResult(record.Result)
}

// readCount reads the number of games stored so far.
func readCount(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get([]byte(keyGameCount))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var count uint64
	err = item.Value(func(val []byte) error {
		parsed, err := strconv.ParseUint(string(val), 10, 64)
		count = parsed
		return err
	})
	return count, err
}

// gameKey builds the zero-padded key for one game, so lexicographic
// iteration order matches ID order.
func gameKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%012d", gamePrefix, id))
}
