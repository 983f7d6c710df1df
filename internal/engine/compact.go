package engine

import (
	"stowdb/internal/diskio"
	"stowdb/internal/index"
	"stowdb/internal/record"
	stowerrors "stowdb/pkg/errors"
)

// Compact rewrites the log region to contain only the records currently
// referenced by the index, in arbitrary order, then atomically (from this
// process's point of view) replaces the log region and header in place.
//
// The in-place rewrite is not crash-safe against power loss mid-compaction.
// stowdb keeps this in-place protocol rather than a temp-file-and-rename
// variant, since the latter would change the on-disk format (a sibling
// temp file) beyond what this store's layout documents.
func (e *Engine) Compact() error {
	if e.closed.Load() {
		return stowerrors.ErrClosed
	}

	type liveEntry struct {
		key string
		ptr index.Pointer
	}

	entries := make([]liveEntry, 0, e.idx.Len())
	e.idx.Range(func(key string, ptr index.Pointer) {
		entries = append(entries, liveEntry{key: key, ptr: ptr})
	})

	newBuf := make([]byte, 0, e.header.TotalBytes)
	newPointers := make(map[string]index.Pointer, len(entries))

	for _, entry := range entries {
		bytes, err := e.file.ReadExactAt(diskio.HeaderSize+entry.ptr.Offset, int(entry.ptr.Size))
		if err != nil {
			return err
		}
		newOffset := int64(len(newBuf))
		newBuf = append(newBuf, bytes...)
		newPointers[entry.key] = index.Pointer{Offset: newOffset, Size: entry.ptr.Size}
	}

	if len(newBuf) > 0 {
		if err := e.file.WriteAt(diskio.HeaderSize, newBuf); err != nil {
			return err
		}
	}
	if err := e.file.SetLen(diskio.HeaderSize + int64(len(newBuf))); err != nil {
		return err
	}

	newHeader := record.Header{
		TotalRecords: uint64(len(entries)),
		TotalBytes:   uint64(len(newBuf)),
	}
	if err := e.file.WriteHeader(newHeader); err != nil {
		return err
	}
	e.header = newHeader

	e.idx.Reset()
	for key, ptr := range newPointers {
		e.idx.Put(key, ptr)
	}

	e.log.Infow("compacted store", "liveKeys", len(entries), "totalBytes", newHeader.TotalBytes)
	return nil
}
