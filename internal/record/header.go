package record

import (
	"encoding/binary"

	stowerrors "stowdb/pkg/errors"
)

// HeaderSize is the fixed width, in bytes, of the metadata header at the
// start of every store file. The log region begins immediately after it.
const HeaderSize = 1024

// headerLengthPrefixSize is the width of the header's own payload-length
// prefix, distinct from the 2-byte prefix used by individual records.
const headerLengthPrefixSize = 4

// Header is the fixed-size metadata block describing the log region:
// how many records it holds, and how many bytes long it is.
type Header struct {
	TotalRecords uint64
	TotalBytes   uint64
}

// EncodeHeader serializes h into a HeaderSize-byte buffer: a 4-byte
// little-endian payload length, the payload itself encoded with the same
// varint/string primitives records use, and a zero-filled reserved tail.
func EncodeHeader(h Header) ([]byte, error) {
	var payload []byte
	payload = appendUvarint(payload, h.TotalRecords)
	payload = appendUvarint(payload, h.TotalBytes)

	if headerLengthPrefixSize+len(payload) > HeaderSize {
		return nil, stowerrors.NewRecordError(
			nil, stowerrors.ErrorCodeMalformedRecord, "header payload exceeds header size",
		)
	}

	out := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(payload)))
	copy(out[4:], payload)
	// out[4+len(payload):] is already zero-filled by make.
	return out, nil
}

// DecodeHeader parses a HeaderSize-byte buffer previously produced by
// EncodeHeader.
func DecodeHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) < headerLengthPrefixSize {
		return h, stowerrors.NewMalformedRecordError(nil, 0).
			WithMessage("truncated header: missing payload length")
	}

	payloadLen := binary.LittleEndian.Uint32(buf[0:4])
	end := headerLengthPrefixSize + int(payloadLen)
	if end > len(buf) {
		return h, stowerrors.NewMalformedRecordError(nil, 0).
			WithMessage("truncated header: payload length exceeds header size")
	}
	payload := buf[headerLengthPrefixSize:end]

	totalRecords, rest, err := takeUvarint(payload)
	if err != nil {
		return h, stowerrors.NewMalformedRecordError(err, 0).
			WithMessage("malformed header: total_records")
	}
	totalBytes, rest, err := takeUvarint(rest)
	if err != nil {
		return h, stowerrors.NewMalformedRecordError(err, 0).
			WithMessage("malformed header: total_bytes")
	}
	if len(rest) != 0 {
		return h, stowerrors.NewMalformedRecordError(nil, 0).
			WithMessage("malformed header: trailing bytes in payload")
	}

	h.TotalRecords = totalRecords
	h.TotalBytes = totalBytes
	return h, nil
}
