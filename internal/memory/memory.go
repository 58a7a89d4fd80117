package memory

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
)

// MemoryEntry is one training record: the encoded state the search root
// saw, the policy target derived from its children's visit counts, and
// the color to move at that point (spec: "a tuple (board snapshot or
// simple state, policy target tensor, color) appended to the root
// Board's memory during self-play").
type MemoryEntry struct {
	State        []float32   `json:"state"`
	PolicyTarget []float32   `json:"policy_target"`
	Color        board.Color `json:"color"`
}

// Store wraps a BadgerDB database for append-only self-play game
// persistence, one Update/View transaction per call, following the same
// shape as the teacher's preferences/stats storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the Badger database at its default
// platform data directory.
func Open() (*Store, error) {
	dir, err := databaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens (creating if necessary) the Badger database rooted at dir.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func gameKey(runID string, seq int) []byte {
	return []byte(fmt.Sprintf("game:%s:%06d", runID, seq))
}

func gamePrefix(runID string) []byte {
	return []byte(fmt.Sprintf("game:%s:", runID))
}

// AppendGame persists one self-play game's MemoryEntry records, keyed by
// runID and their sequence position, one Badger key per entry so games
// can be streamed in without rewriting an ever-growing blob.
func (s *Store) AppendGame(runID string, entries []MemoryEntry) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for seq, entry := range entries {
			data, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			if err := txn.Set(gameKey(runID, seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadGame replays every MemoryEntry recorded under runID, in sequence
// order.
func (s *Store) LoadGame(runID string) ([]MemoryEntry, error) {
	var entries []MemoryEntry

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = gamePrefix(runID)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()
			var entry MemoryEntry
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
