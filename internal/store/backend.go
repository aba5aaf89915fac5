package store

import (
	"context"
	"fmt"
	"path/filepath"
)

// Backend is a key-value area holding one serialized collection per key.
// Write replaces the whole value; a Read never observes a partial Write.
type Backend interface {
	Read(ctx context.Context, key string) (data []byte, found bool, err error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	// Backend is one of "file", "sqlite" or "memory".
	Backend string

	// Dir is the data directory for the file and sqlite backends.
	Dir string
}

// Open creates the backend named in opts and wraps it in a Store.
func Open(opts Options) (*Store, error) {
	var (
		backend Backend
		err     error
	)
	switch opts.Backend {
	case "", "file":
		backend, err = NewFileBackend(opts.Dir)
	case "sqlite":
		backend, err = NewSQLiteBackend(filepath.Join(opts.Dir, "electroledger.db"))
	case "memory":
		backend = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, storageError("Open", "", err)
	}
	return New(backend), nil
}
