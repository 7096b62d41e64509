// Package store provides the durable key-value stores the dashboard state is
// persisted into.
//
// A store is a passive sink: values are opaque strings (JSON documents in
// practice), written as a whole with Set and read back with Get.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Store is a durable key-value store.
type Store interface {
	// Get returns the value stored under key, ok is false if there is none.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored under key. It either fully succeeds or
	// leaves the previous value in place.
	Set(ctx context.Context, key, value string) error
}

// Backend is a Store that holds resources.
type Backend interface {
	Store
	io.Closer
}

// Backend names accepted by Open.
const (
	MemoryBackend = "memory"
	FileBackend   = "file"
	SQLiteBackend = "sqlite"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown store backend")
	// ErrInvalidKey is returned for empty keys or keys that are not plain names.
	ErrInvalidKey = errors.New("invalid key")
)

// Open opens the store 'backend' at 'path'. For the file backend path is a
// folder, for sqlite it is the database file. The memory backend ignores it.
func Open(backend, path string, log zerolog.Logger) (Backend, error) {
	switch backend {
	case MemoryBackend:
		return NewMemory(), nil
	case FileBackend:
		return OpenFile(path, log)
	case SQLiteBackend:
		return OpenSQLite(path, log)
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownBackend, backend, MemoryBackend, FileBackend, SQLiteBackend)
	}
}

// checkKey validates that key is usable by every backend, including as a file name.
func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\:`) || key == "." || key == ".." {
		return fmt.Errorf("%w %q", ErrInvalidKey, key)
	}
	return nil
}
