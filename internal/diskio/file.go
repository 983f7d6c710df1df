// Package diskio owns the single backing file of a store: positioned reads
// and writes, truncation, fsync, and the fixed-size metadata header at the
// front of the file. Nothing above this layer touches *os.File directly.
//
// File ownership follows a single O_CREATE|O_RDWR handle with explicit
// size bookkeeping; every failure path is classified through pkg/errors
// rather than surfaced as a bare *os.PathError.
package diskio

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"

	"stowdb/internal/record"
	stowerrors "stowdb/pkg/errors"
)

// HeaderSize is re-exported for callers that need it without importing
// internal/record directly.
const HeaderSize = record.HeaderSize

// File wraps the single regular file backing a store, exposing the
// positioned I/O primitives the engine builds on.
type File struct {
	path   string
	handle *os.File
	size   int64
	closed atomic.Bool
	log    *zap.SugaredLogger
}

// Open opens path for reading and writing, creating it if absent. The
// returned File's Len() reflects the file's current size on disk.
func Open(path string, mode os.FileMode, log *zap.SugaredLogger) (*File, error) {
	handle, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, mode)
	if err != nil {
		return nil, stowerrors.ClassifyFileOpenError(err, path)
	}

	info, err := handle.Stat()
	if err != nil {
		handle.Close()
		return nil, stowerrors.NewIOError(err, stowerrors.ErrorCodeIO, "failed to stat log file").
			WithPath(path).WithOp("stat")
	}

	log.Infow("opened log file", "path", path, "size", info.Size())
	return &File{path: path, handle: handle, size: info.Size(), log: log}, nil
}

// Path returns the filesystem path backing this file.
func (f *File) Path() string {
	return f.path
}

// Len returns the file's current size in bytes.
func (f *File) Len() int64 {
	return f.size
}

// ReadExactAt reads exactly n bytes starting at offset, failing Io on a
// short read or any underlying error.
func (f *File) ReadExactAt(offset int64, n int) ([]byte, error) {
	if f.closed.Load() {
		return nil, stowerrors.ErrClosed
	}

	buf := make([]byte, n)
	read, err := f.handle.ReadAt(buf, offset)
	if err != nil && !(err == io.EOF && read == n) {
		return nil, stowerrors.NewIOError(err, stowerrors.ErrorCodeIO, "short or failed read").
			WithPath(f.path).WithOffset(offset).WithOp("read_at").
			WithDetail("requested", n).WithDetail("read", read)
	}
	return buf, nil
}

// WriteAt writes bytes at the given offset, failing Io on a short write or
// any underlying error. It does not extend f.Len() bookkeeping beyond what
// the write actually covers; callers track the log region's logical length
// themselves via the header.
func (f *File) WriteAt(offset int64, data []byte) error {
	if f.closed.Load() {
		return stowerrors.ErrClosed
	}

	n, err := f.handle.WriteAt(data, offset)
	if err != nil || n != len(data) {
		return stowerrors.ClassifyWriteError(err, f.path, offset)
	}

	if end := offset + int64(n); end > f.size {
		f.size = end
	}
	return nil
}

// SetLen truncates or extends the file to exactly n bytes.
func (f *File) SetLen(n int64) error {
	if f.closed.Load() {
		return stowerrors.ErrClosed
	}
	if err := f.handle.Truncate(n); err != nil {
		return stowerrors.NewIOError(err, stowerrors.ErrorCodeIO, "failed to truncate log file").
			WithPath(f.path).WithOffset(n).WithOp("truncate")
	}
	f.size = n
	return nil
}

// Sync flushes file data and metadata to stable storage.
func (f *File) Sync() error {
	if f.closed.Load() {
		return stowerrors.ErrClosed
	}
	if err := f.handle.Sync(); err != nil {
		return stowerrors.ClassifySyncError(err, f.path)
	}
	return nil
}

// Close releases the underlying file descriptor. Close is idempotent.
func (f *File) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := f.handle.Close(); err != nil {
		return stowerrors.NewIOError(err, stowerrors.ErrorCodeIO, "failed to close log file").
			WithPath(f.path).WithOp("close")
	}
	return nil
}
