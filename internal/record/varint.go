package record

import (
	"encoding/binary"
	"errors"
)

// errTruncated is wrapped into a MalformedRecord error by callers; it never
// escapes this package on its own.
var errTruncated = errors.New("truncated varint or string field")

// appendUvarint appends v to buf using the standard LEB128-style unsigned
// varint encoding, the same primitive encoding/binary uses for protobuf-
// style fields.
func appendUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}

// takeUvarint reads a varint from the front of b, returning the value and
// the remaining bytes.
func takeUvarint(b []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0, nil, errTruncated
	}
	return v, b[n:], nil
}

// appendString appends a varint length prefix followed by s's bytes.
func appendString(buf []byte, s string) []byte {
	buf = appendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// takeString reads a varint-length-prefixed string from the front of b,
// returning the string and the remaining bytes.
func takeString(b []byte) (string, []byte, error) {
	n, rest, err := takeUvarint(b)
	if err != nil {
		return "", nil, err
	}
	if uint64(len(rest)) < n {
		return "", nil, errTruncated
	}
	return string(rest[:n]), rest[n:], nil
}
