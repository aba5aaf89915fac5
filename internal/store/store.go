// Package store persists entity collections as JSON arrays under fixed keys.
//
// Each collection is read and written whole: Save replaces the stored array,
// last write wins, and there is no merge. A stored value that is not a JSON
// array is treated as an empty collection so a damaged file never blocks
// startup. Single elements that do not decode are skipped on Load and kept
// verbatim, so the next Save of that collection writes them back.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"electroledger/internal/logger"
	"electroledger/pkg/models"
)

// Key names a stored collection.
type Key string

const (
	KeyCustomers Key = "clients"
	KeyPurchases Key = "purchases"
	KeyEmployees Key = "employees"
	KeyExpenses  Key = "expenses"

	keySchemaVersion Key = "schema_version"
)

// Identified is implemented by every stored entity.
type Identified interface {
	Identity() models.ID
}

// Store reads and writes whole collections through a Backend.
type Store struct {
	backend Backend
	log     zerolog.Logger

	mu         sync.Mutex
	unreadable map[Key][]json.RawMessage // from the last Load of each key
}

// New wraps backend.
func New(backend Backend) *Store {
	return &Store{
		backend:    backend,
		log:        logger.WithComponent("store"),
		unreadable: make(map[Key][]json.RawMessage),
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return storageError("Close", "", s.backend.Close())
}

// Load returns the collection stored under key. A missing key, a JSON null
// or a value that is not a JSON array all yield an empty, non-nil slice.
// Elements that do not decode as T are left out and held for Save. Only a
// backend read failure is returned as an error.
func Load[T any](ctx context.Context, s *Store, key Key) ([]T, error) {
	data, found, err := s.backend.Read(ctx, string(key))
	if err != nil {
		s.log.Error().Err(err).Str("collection", string(key)).Msg("Failed to read collection")
		return nil, storageError("Read", key, err)
	}
	if !found {
		s.hold(key, nil)
		return []T{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn().
			Err(err).
			Str("collection", string(key)).
			Int("bytes", len(data)).
			Msg("Stored collection is not a JSON array, treating as empty")
		s.hold(key, nil)
		return []T{}, nil
	}

	items := make([]T, 0, len(raw))
	var bad []json.RawMessage
	for i, elem := range raw {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			s.log.Warn().
				Err(err).
				Str("collection", string(key)).
				Int("index", i).
				Msg("Skipping unreadable record")
			bad = append(bad, elem)
			continue
		}
		items = append(items, item)
	}
	s.hold(key, bad)
	return items, nil
}

// Save serializes items and overwrites the value stored under key. Records
// held back by the last Load of key are written after items, unchanged.
func Save[T any](ctx context.Context, s *Store, key Key, items []T) error {
	held := s.held(key)
	out := make([]interface{}, 0, len(items)+len(held))
	for _, item := range items {
		out = append(out, item)
	}
	for _, elem := range held {
		out = append(out, elem)
	}
	data, err := json.Marshal(out)
	if err != nil {
		s.log.Error().Err(err).Str("collection", string(key)).Msg("Failed to encode collection")
		return storageError("Encode", key, err)
	}
	if err := s.backend.Write(ctx, string(key), data); err != nil {
		s.log.Error().Err(err).Str("collection", string(key)).Msg("Failed to write collection")
		return storageError("Write", key, err)
	}
	s.log.Debug().
		Str("collection", string(key)).
		Int("records", len(items)).
		Int("unreadable", len(held)).
		Msg("Collection saved")
	return nil
}

func (s *Store) hold(key Key, elems []json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(elems) == 0 {
		delete(s.unreadable, key)
		return
	}
	s.unreadable[key] = elems
}

func (s *Store) held(key Key) []json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadable[key]
}

// NextID returns 1 for an empty collection and otherwise one more than the
// largest numeric id present. Non-numeric ids are ignored.
func NextID[T Identified](items []T) models.ID {
	var max int64
	for _, item := range items {
		if n, ok := item.Identity().Int(); ok && n > max {
			max = n
		}
	}
	return models.NewID(max + 1)
}

// AllocateID is NextID over items that also steps past the ids of records
// held back by the last Load of key, so those ids are never handed out again.
func AllocateID[T Identified](s *Store, key Key, items []T) models.ID {
	next := NextID(items)
	n, _ := next.Int()
	for _, elem := range s.held(key) {
		var head struct {
			ID models.ID `json:"id"`
		}
		if json.Unmarshal(elem, &head) != nil {
			continue
		}
		if id, ok := head.ID.Int(); ok && id >= n {
			n = id + 1
		}
	}
	return models.NewID(n)
}
