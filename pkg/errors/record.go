package errors

// RecordError is a specialized error type for record codec failures: a byte
// sequence that does not decode to a valid record, or an encoded payload
// that would exceed the maximum record size.
type RecordError struct {
	*baseError

	// offset is the byte offset in the log file where the malformed record
	// starts, when known.
	offset int64

	// recordID identifies the record being encoded or decoded, when known.
	recordID uint64

	// key is the record's key, when it could be read before the failure.
	key string
}

// NewRecordError creates a new record-codec error with the provided context.
func NewRecordError(err error, code ErrorCode, msg string) *RecordError {
	return &RecordError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while maintaining the RecordError type.
func (re *RecordError) WithMessage(msg string) *RecordError {
	re.baseError.WithMessage(msg)
	return re
}

// WithDetail adds contextual information while maintaining the RecordError type.
func (re *RecordError) WithDetail(key string, value any) *RecordError {
	re.baseError.WithDetail(key, value)
	return re
}

// WithOffset records where in the file the malformed record begins.
func (re *RecordError) WithOffset(offset int64) *RecordError {
	re.offset = offset
	return re
}

// WithRecordID records which record was being encoded or decoded.
func (re *RecordError) WithRecordID(id uint64) *RecordError {
	re.recordID = id
	return re
}

// WithKey records which key was being processed, if known.
func (re *RecordError) WithKey(key string) *RecordError {
	re.key = key
	return re
}

// Offset returns the byte offset of the malformed record.
func (re *RecordError) Offset() int64 {
	return re.offset
}

// RecordID returns the record identifier involved in the error.
func (re *RecordError) RecordID() uint64 {
	return re.recordID
}

// Key returns the key involved in the error, if known.
func (re *RecordError) Key() string {
	return re.key
}

// NewMalformedRecordError creates an error for a record that failed to
// decode at the given file offset.
func NewMalformedRecordError(cause error, offset int64) *RecordError {
	return NewRecordError(cause, ErrorCodeMalformedRecord, "malformed record").
		WithOffset(offset)
}

// NewRecordTooLargeError creates an error for a payload that exceeds the
// maximum encodable record size.
func NewRecordTooLargeError(key string, size, max int) *RecordError {
	return NewRecordError(nil, ErrorCodeRecordTooLarge, "record payload too large").
		WithKey(key).
		WithDetail("size", size).
		WithDetail("max", max)
}
