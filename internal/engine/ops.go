package engine

import (
	"stowdb/internal/diskio"
	"stowdb/internal/index"
	"stowdb/internal/record"
	stowerrors "stowdb/pkg/errors"
)

// Get returns the value stored for key and true, or "" and false if key is
// absent. It never returns an error for absence; only underlying I/O or
// corruption failures are reported as errors.
func (e *Engine) Get(key string) (string, bool, error) {
	if e.closed.Load() {
		return "", false, stowerrors.ErrClosed
	}

	ptr, ok := e.idx.Get(key)
	if !ok {
		return "", false, nil
	}

	rec, err := e.readRecord(ptr)
	if err != nil {
		return "", false, err
	}

	if rec.Op != record.OpSet {
		// A live index entry must always point at a Set record; surface
		// violations as corruption rather than silently returning a
		// tombstone's nonexistent value.
		return "", false, stowerrors.NewMalformedRecordError(nil, diskio.HeaderSize+ptr.Offset).
			WithKey(key).WithMessage("index points at a non-Set record")
	}

	e.log.Debugw("get", "key", key)
	return rec.Value, true, nil
}

// Set writes key=value as a new record and updates the index to point at
// it. Fails RecordTooLarge without modifying any state if the encoded
// record would exceed the maximum record size.
func (e *Engine) Set(key, value string) error {
	if e.closed.Load() {
		return stowerrors.ErrClosed
	}

	if err := e.append(record.Record{ID: e.header.TotalRecords, Op: record.OpSet, Key: key, Value: value}); err != nil {
		return err
	}

	e.log.Debugw("set", "key", key)
	return e.maybeAutoCompact()
}

// Remove deletes key. Fails KeyNotFound without writing anything if key is
// absent from the index.
func (e *Engine) Remove(key string) error {
	if e.closed.Load() {
		return stowerrors.ErrClosed
	}

	if _, ok := e.idx.Get(key); !ok {
		return stowerrors.ErrKeyNotFound
	}

	if err := e.append(record.Record{ID: e.header.TotalRecords, Op: record.OpRemove, Key: key}); err != nil {
		return err
	}

	e.log.Debugw("remove", "key", key)
	return e.maybeAutoCompact()
}

// append implements the shared steps of Set and Remove: encode, position,
// write, update header, then update the index to match the operation.
func (e *Engine) append(rec record.Record) error {
	payload, err := record.Encode(rec)
	if err != nil {
		return err
	}

	relOff := int64(e.header.TotalBytes)
	absOff := diskio.HeaderSize + relOff

	if err := e.file.WriteAt(absOff, record.EncodeLengthPrefix(len(payload))); err != nil {
		return err
	}
	if err := e.file.WriteAt(absOff+record.LengthPrefixSize, payload); err != nil {
		return err
	}

	size := uint32(len(payload)) + record.LengthPrefixSize
	newHeader := record.Header{
		TotalRecords: e.header.TotalRecords + 1,
		TotalBytes:   e.header.TotalBytes + uint64(size),
	}
	if err := e.file.WriteHeader(newHeader); err != nil {
		return err
	}
	e.header = newHeader

	switch rec.Op {
	case record.OpSet:
		e.idx.Put(rec.Key, index.Pointer{Offset: relOff, Size: size})
	case record.OpRemove:
		e.idx.Delete(rec.Key)
	}

	if e.options.SyncOnWrite {
		return e.file.Sync()
	}
	return nil
}

// readRecord reads and decodes the record located at ptr.
func (e *Engine) readRecord(ptr index.Pointer) (record.Record, error) {
	absOff := diskio.HeaderSize + ptr.Offset

	prefix, err := e.file.ReadExactAt(absOff, record.LengthPrefixSize)
	if err != nil {
		return record.Record{}, err
	}
	payloadLen := record.DecodeLengthPrefix(prefix)

	payload, err := e.file.ReadExactAt(absOff+record.LengthPrefixSize, int(payloadLen))
	if err != nil {
		return record.Record{}, err
	}

	return record.Decode(payload, absOff)
}

// maybeAutoCompact runs Compact once total_records exceeds
// AutoCompactThreshold times the number of live keys. A zero threshold
// disables the policy.
func (e *Engine) maybeAutoCompact() error {
	threshold := e.options.AutoCompactThreshold
	if threshold == 0 {
		return nil
	}
	if live := uint64(e.idx.Len()); live > 0 && e.header.TotalRecords > threshold*live {
		e.log.Infow("auto-compact threshold reached", "totalRecords", e.header.TotalRecords, "liveKeys", live)
		return e.Compact()
	}
	return nil
}
