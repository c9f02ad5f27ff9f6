package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const gameKeyPrefix = "game/"

var ErrNotFound = errors.New("record not found")

// Record is the persisted snapshot of one game session.
type Record struct {
	ID        string    `json:"id"`
	Position  string    `json:"position"` // circlechess FEN-like encoding
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage wraps BadgerDB for persistent game sessions
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errors.New("storage: empty data directory")
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte { return []byte(gameKeyPrefix + id) }

// Save stores rec under its ID, replacing any earlier snapshot.
func (s *Storage) Save(rec *Record) error {
	if rec == nil || rec.ID == "" {
		return errors.New("storage: record without id")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// Load returns the snapshot for id, or ErrNotFound.
func (s *Storage) Load(id string) (*Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns every stored snapshot in key order.
func (s *Storage) List() ([]*Record, error) {
	var out []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := new(Record)
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

// Delete removes the snapshot for id. Deleting a missing id is not an error.
func (s *Storage) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}
