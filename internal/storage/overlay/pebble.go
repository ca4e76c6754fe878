// Package overlay provides StatusStore implementations for the durable
// review-approval overlay.
package overlay

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog/log"
)

// PebbleStore is a StatusStore backed by an embedded Pebble database.
// Approvals survive process restarts; unreadable entries degrade to
// "absent" rather than surfacing errors to readers.
type PebbleStore struct {
	db *pebble.DB
}

func OpenPebble(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

func (p *PebbleStore) Close() error { return p.db.Close() }

func (p *PebbleStore) Get(key string) (string, bool) {
	v, closer, err := p.db.Get([]byte(key))
	if err != nil {
		if err != pebble.ErrNotFound {
			log.Warn().Err(err).Str("key", key).Msg("overlay read failed, treating as absent")
		}
		return "", false
	}
	defer closer.Close()
	return string(append([]byte(nil), v...)), true
}

func (p *PebbleStore) Set(key, value string) error {
	return p.db.Set([]byte(key), []byte(value), pebble.Sync)
}

func (p *PebbleStore) Delete(key string) error {
	return p.db.Delete([]byte(key), pebble.Sync)
}

// Clear removes every key. Keys are collected first, then deleted in one
// batch, so a concurrent iterator never sees a half-cleared store.
func (p *PebbleStore) Clear() error {
	it, err := p.db.NewIter(nil)
	if err != nil {
		return err
	}
	var keys [][]byte
	for it.First(); it.Valid(); it.Next() {
		keys = append(keys, append([]byte(nil), it.Key()...))
	}
	if err := it.Close(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	b := p.db.NewBatch()
	for _, k := range keys {
		if err := b.Delete(k, nil); err != nil {
			return err
		}
	}
	return b.Commit(pebble.Sync)
}
