// Package record implements the on-disk record codec: the tagged-union
// payload format carried by every log entry, and the shared primitives
// (length-prefixed strings, unsigned varints) that the file header reuses
// for its own payload.
//
// A record on disk is a 2-byte little-endian length prefix followed by the
// payload produced by Encode. The payload is self-describing: a varint
// record id, a one-byte operation tag, and the operation's fields. Decoding
// never trusts anything but the bytes themselves, the way godb's log codec
// and aether-kv's format.Record both decode without external schema
// information.
package record

import (
	"encoding/binary"

	stowerrors "stowdb/pkg/errors"
)

// MaxPayloadSize is the largest payload Encode will produce. It is bounded
// by the 16-bit length prefix that precedes every record on disk, and set
// one byte below that prefix's largest value (65535).
const MaxPayloadSize = 65534

// LengthPrefixSize is the width of the length prefix preceding every
// encoded payload on disk.
const LengthPrefixSize = 2

// Op identifies which operation a record carries.
type Op uint8

const (
	// OpSet records a key/value write.
	OpSet Op = iota
	// OpRemove records a tombstone for a key.
	OpRemove
)

// Record is one mutation event: a monotonically increasing id assigned at
// append time, an operation tag, and the key/value fields the operation
// carries. Value is unused for OpRemove.
type Record struct {
	ID    uint64
	Op    Op
	Key   string
	Value string
}

// Encode serializes r into its self-describing payload form (without the
// length prefix). It fails with a RecordError coded RECORD_TOO_LARGE if the
// resulting payload would exceed MaxPayloadSize.
func Encode(r Record) ([]byte, error) {
	buf := make([]byte, 0, 16+len(r.Key)+len(r.Value))
	buf = appendUvarint(buf, r.ID)
	buf = append(buf, byte(r.Op))
	buf = appendString(buf, r.Key)

	switch r.Op {
	case OpSet:
		buf = appendString(buf, r.Value)
	case OpRemove:
		// Remove carries no value.
	default:
		return nil, stowerrors.NewRecordError(
			nil, stowerrors.ErrorCodeMalformedRecord, "unknown operation tag",
		).WithKey(r.Key).WithRecordID(r.ID)
	}

	if len(buf) > MaxPayloadSize {
		return nil, stowerrors.NewRecordTooLargeError(r.Key, len(buf), MaxPayloadSize)
	}
	return buf, nil
}

// Decode parses a payload previously produced by Encode. offset is the
// absolute file offset of the record's length prefix, used only to enrich
// any MalformedRecord error with where the corruption was found.
func Decode(payload []byte, offset int64) (Record, error) {
	var r Record

	id, rest, err := takeUvarint(payload)
	if err != nil {
		return r, stowerrors.NewMalformedRecordError(err, offset)
	}
	r.ID = id

	if len(rest) < 1 {
		return r, stowerrors.NewMalformedRecordError(nil, offset).
			WithMessage("truncated payload: missing operation tag")
	}
	r.Op = Op(rest[0])
	rest = rest[1:]

	key, rest, err := takeString(rest)
	if err != nil {
		return r, stowerrors.NewMalformedRecordError(err, offset).WithRecordID(id)
	}
	r.Key = key

	switch r.Op {
	case OpSet:
		value, rest2, err := takeString(rest)
		if err != nil {
			return r, stowerrors.NewMalformedRecordError(err, offset).
				WithRecordID(id).WithKey(key)
		}
		r.Value = value
		rest = rest2
	case OpRemove:
		// no value field
	default:
		return r, stowerrors.NewMalformedRecordError(nil, offset).
			WithRecordID(id).WithKey(key).WithMessage("unknown operation tag")
	}

	if len(rest) != 0 {
		return r, stowerrors.NewMalformedRecordError(nil, offset).
			WithRecordID(id).WithKey(key).WithMessage("trailing bytes after payload")
	}

	return r, nil
}

// EncodeLengthPrefix returns the 2-byte little-endian length prefix for a
// payload of the given size.
func EncodeLengthPrefix(payloadLen int) []byte {
	b := make([]byte, LengthPrefixSize)
	binary.LittleEndian.PutUint16(b, uint16(payloadLen))
	return b
}

// DecodeLengthPrefix reads a 2-byte little-endian length prefix.
func DecodeLengthPrefix(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}
