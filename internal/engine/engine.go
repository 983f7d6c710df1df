// Package engine implements the store's public operations: Open, Get, Set,
// Remove, Compact, and Sync. It orchestrates the record codec
// (internal/record), the single backing file (internal/diskio), and the
// in-memory index (internal/index), replaying the log at open time and
// keeping all three in lock-step on every mutation.
package engine

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stowdb/internal/diskio"
	"stowdb/internal/index"
	"stowdb/internal/record"
	stowerrors "stowdb/pkg/errors"
	"stowdb/pkg/options"
)

// defaultFileName is used when the caller opens a directory rather than a
// file path directly.
const defaultFileName = "test.db"

// Engine coordinates the record codec, file layer, and index into the
// store's operations. It is not safe for concurrent use from multiple
// goroutines without external synchronization.
type Engine struct {
	path    string
	file    *diskio.File
	idx     *index.Index
	header  record.Header
	options *options.Options
	log     *zap.SugaredLogger
	closed  atomic.Bool
}

// Open opens the store at path, creating it if absent, and replays its log
// to rebuild the in-memory index. If path names an existing directory, the
// store file resolves to path/test.db within it.
func Open(path string, opts ...options.OptionFunc) (*Engine, error) {
	resolved := options.NewDefaultOptions()
	for _, fn := range opts {
		fn(&resolved)
	}
	if resolved.Logger == nil {
		prod, err := zap.NewProduction()
		if err != nil {
			return nil, stowerrors.NewIOError(err, stowerrors.ErrorCodeInternal, "failed to build default logger")
		}
		resolved.Logger = prod.Sugar()
	}
	log := resolved.Logger

	resolvedPath, err := resolveStorePath(path)
	if err != nil {
		return nil, err
	}

	log.Infow("opening store", "path", resolvedPath)
	file, err := diskio.Open(resolvedPath, resolved.FileMode, log)
	if err != nil {
		return nil, err
	}

	var header record.Header
	if file.Len() < diskio.HeaderSize {
		header, err = file.InitHeader()
	} else {
		header, err = file.ReadHeader()
	}
	if err != nil {
		file.Close()
		return nil, err
	}

	idx := index.New()
	if err := replay(file, header, idx); err != nil {
		file.Close()
		return nil, err
	}

	log.Infow("store opened", "path", resolvedPath, "records", header.TotalRecords, "liveKeys", idx.Len())
	return &Engine{
		path:    resolvedPath,
		file:    file,
		idx:     idx,
		header:  header,
		options: &resolved,
		log:     log,
	}, nil
}

// resolveStorePath implements the directory-to-file rule: if path exists
// and is a directory, the store lives at path/test.db within it.
func resolveStorePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", stowerrors.NewIOError(err, stowerrors.ErrorCodeIO, "failed to stat store path").
			WithPath(path).WithOp("stat")
	}
	if info.IsDir() {
		return filepath.Join(path, defaultFileName), nil
	}
	return path, nil
}

// Sync flushes all pending writes to stable storage.
func (e *Engine) Sync() error {
	if e.closed.Load() {
		return stowerrors.ErrClosed
	}
	return e.file.Sync()
}

// Close releases the engine's file descriptor. Close is idempotent; the
// second and later calls return nil. Close attempts a final Sync before
// closing so that any write issued but not yet flushed by the caller is
// given a chance to reach stable storage.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	e.log.Infow("closing store", "path", e.path)
	syncErr := e.file.Sync()
	closeErr := e.file.Close()
	if err := multierr.Append(syncErr, closeErr); err != nil {
		return err
	}
	return nil
}
