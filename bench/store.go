package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const appName = "chessior"

// Record is the stored outcome of one benchmark case.
type Record struct {
	Nodes    uint64        `json:"nodes"`
	Move     string        `json:"move"`
	Score    int           `json:"score"`
	Elapsed  time.Duration `json:"elapsed"`
	Recorded time.Time     `json:"recorded"`
}

// Store wraps BadgerDB for benchmark history.
type Store struct {
	db *badger.DB
}

// OpenStore opens the history database in dir. An empty dir keeps the
// history in memory only.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open bench history: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func recordKey(rulesName, name string, depth int) []byte {
	return []byte(fmt.Sprintf("bench/%s/%s/%d", rulesName, name, depth))
}

// Get returns the last record for a case. ok is false if none was stored.
func (s *Store) Get(rulesName, name string, depth int) (rec Record, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(rulesName, name, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, ok, err
}

// Put stores rec as the latest record for a case.
func (s *Store) Put(rulesName, name string, depth int, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rulesName, name, depth), data)
	})
}

// History returns every stored record for a rules engine keyed by
// "<name>/<depth>".
func (s *Store) History(rulesName string) (map[string]Record, error) {
	prefix := []byte(fmt.Sprintf("bench/%s/", rulesName))
	out := make(map[string]Record)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := strings.TrimPrefix(string(item.KeyCopy(nil)), string(prefix))
			var rec Record
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out[key] = rec
		}
		return nil
	})
	return out, err
}

// DefaultDir returns the directory used by --bench-db auto, creating it
// if needed. $XDG_DATA_HOME wins when set.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		var err error
		if base, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("locate bench history: %w", err)
		}
	}
	dir := filepath.Join(base, appName, "bench")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bench history dir: %w", err)
	}
	return dir, nil
}
