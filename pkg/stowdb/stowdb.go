// Package stowdb is the embeddable entry point for the store: a
// persistent, single-file, log-structured key-value store. Open a DB, call
// Get/Set/Remove, and Close it when done.
//
// stowdb has no server and no network surface; it is linked directly into
// the host process. DB's methods take no context.Context — every
// operation runs its filesystem calls synchronously with no cancellation
// protocol (the store's concurrency model is single-threaded, cooperative
// I/O), so threading a context through would have nothing to do.
package stowdb

import (
	"stowdb/internal/engine"
	"stowdb/pkg/options"
)

// DB is a handle to an open store. A DB is not safe for concurrent use
// from multiple goroutines; callers needing that must synchronize
// externally.
type DB struct {
	engine *engine.Engine
}

// Open opens the store at path, creating it if absent. If path names an
// existing directory, the store resolves to path/test.db within it.
func Open(path string, opts ...options.OptionFunc) (*DB, error) {
	eng, err := engine.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return &DB{engine: eng}, nil
}

// Get returns the value stored for key and true, or "" and false if key is
// absent.
func (db *DB) Get(key string) (string, bool, error) {
	return db.engine.Get(key)
}

// Set stores key=value, overwriting any existing value for key.
func (db *DB) Set(key, value string) error {
	return db.engine.Set(key, value)
}

// Remove deletes key. It fails with errors.ErrKeyNotFound if key is absent.
func (db *DB) Remove(key string) error {
	return db.engine.Remove(key)
}

// Compact rewrites the log to contain only live records, reclaiming the
// space held by superseded and tombstoned entries.
func (db *DB) Compact() error {
	return db.engine.Compact()
}

// Sync flushes all pending writes to stable storage.
func (db *DB) Sync() error {
	return db.engine.Sync()
}

// Close releases the DB's file descriptor. Close is idempotent.
func (db *DB) Close() error {
	return db.engine.Close()
}
