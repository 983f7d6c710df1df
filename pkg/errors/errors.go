// Package errors provides the structured error taxonomy used across stowdb.
//
// Every error that crosses a package boundary carries an ErrorCode and,
// where useful, domain-specific context captured through a fluent
// With...() builder. Two concrete types cover the store's failure modes:
// IOError for failures touching the backing file, and RecordError for
// codec failures. Two sentinels, ErrKeyNotFound and ErrClosed, cover the
// two conditions the engine reports without extra context.
//
// Callers inspect errors with IsIOError/AsIOError, IsRecordError/
// AsRecordError, or the generic GetErrorCode/GetErrorDetails, all of which
// walk the error chain with errors.As so wrapped errors are still
// classified correctly.
package errors

import (
	stdErrors "errors"
	"os"
	"syscall"
)

// IsIOError checks if the given error is an IOError or contains one in its
// error chain.
func IsIOError(err error) bool {
	var ie *IOError
	return stdErrors.As(err, &ie)
}

// IsRecordError checks if the given error is a RecordError or contains one
// in its error chain.
func IsRecordError(err error) bool {
	var re *RecordError
	return stdErrors.As(err, &re)
}

// AsIOError extracts an IOError from an error chain, giving access to the
// path, offset, and operation involved.
func AsIOError(err error) (*IOError, bool) {
	var ie *IOError
	if stdErrors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// AsRecordError extracts a RecordError from an error chain, giving access
// to the offset, record id, and key involved.
func AsRecordError(err error) (*RecordError, bool) {
	var re *RecordError
	if stdErrors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from any error that supports it, the
// sentinels, or ErrorCodeInternal as a fallback.
func GetErrorCode(err error) ErrorCode {
	if ie, ok := AsIOError(err); ok {
		return ie.Code()
	}
	if re, ok := AsRecordError(err); ok {
		return re.Code()
	}
	if stdErrors.Is(err, ErrKeyNotFound) {
		return ErrorCodeKeyNotFound
	}
	if stdErrors.Is(err, ErrClosed) {
		return ErrorCodeClosed
	}
	return ErrorCodeInternal
}

// GetErrorDetails extracts structured details from any error that supports
// them, returning an empty map otherwise.
func GetErrorDetails(err error) map[string]any {
	if ie, ok := AsIOError(err); ok {
		if details := ie.Details(); details != nil {
			return details
		}
	}
	if re, ok := AsRecordError(err); ok {
		if details := re.Details(); details != nil {
			return details
		}
	}
	return make(map[string]any)
}

// ClassifyDirectoryCreationError analyzes directory creation failures and
// returns an IOError with the appropriate code for the underlying system
// error.
func ClassifyDirectoryCreationError(err error, path string) error {
	if os.IsPermission(err) {
		return NewIOError(
			err, ErrorCodePermissionDenied,
			"insufficient permissions to create data directory",
		).WithPath(path).WithOp("mkdir")
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewIOError(
					err, ErrorCodeDiskFull,
					"insufficient disk space to create data directory",
				).WithPath(path).WithOp("mkdir")
			case syscall.EROFS:
				return NewIOError(
					err, ErrorCodeFilesystemReadonly,
					"cannot create directory on read-only filesystem",
				).WithPath(path).WithOp("mkdir")
			}
		}
	}

	return NewIOError(err, ErrorCodeIO, "failed to create data directory").
		WithPath(path).WithOp("mkdir")
}

// ClassifyFileOpenError analyzes file opening failures and returns an
// IOError with the appropriate code for the underlying system error.
func ClassifyFileOpenError(err error, path string) error {
	if os.IsPermission(err) {
		return NewIOError(
			err, ErrorCodePermissionDenied,
			"insufficient permissions to open log file",
		).WithPath(path).WithOp("open")
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewIOError(
					err, ErrorCodeDiskFull,
					"insufficient disk space to create log file",
				).WithPath(path).WithOp("open")
			case syscall.EROFS:
				return NewIOError(
					err, ErrorCodeFilesystemReadonly,
					"cannot create file on read-only filesystem",
				).WithPath(path).WithOp("open")
			}
		}
	}

	return NewIOError(err, ErrorCodeIO, "failed to open log file").
		WithPath(path).WithOp("open")
}

// ClassifySyncError analyzes fsync failures and returns an IOError with the
// appropriate code for the underlying system error.
func ClassifySyncError(err error, path string) error {
	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewIOError(
					err, ErrorCodeDiskFull,
					"cannot sync file: insufficient disk space",
				).WithPath(path).WithOp("sync")
			case syscall.EROFS:
				return NewIOError(
					err, ErrorCodeFilesystemReadonly,
					"cannot sync file: filesystem is read-only",
				).WithPath(path).WithOp("sync")
			case syscall.EIO:
				return NewIOError(
					err, ErrorCodeIO,
					"I/O error during file sync",
				).WithPath(path).WithOp("sync")
			}
		}
	}

	return NewIOError(err, ErrorCodeIO, "failed to sync log file to disk").
		WithPath(path).WithOp("sync")
}

// ClassifyWriteError analyzes a positioned write failure, including a short
// write with a nil err, and returns an IOError with the appropriate code.
func ClassifyWriteError(err error, path string, offset int64) error {
	if err == nil {
		return NewIOError(nil, ErrorCodeIO, "short write").
			WithPath(path).WithOffset(offset).WithOp("write_at")
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewIOError(
					err, ErrorCodeDiskFull, "insufficient disk space to write",
				).WithPath(path).WithOffset(offset).WithOp("write_at")
			case syscall.EROFS:
				return NewIOError(
					err, ErrorCodeFilesystemReadonly, "cannot write to read-only filesystem",
				).WithPath(path).WithOffset(offset).WithOp("write_at")
			}
		}
	}

	return NewIOError(err, ErrorCodeIO, "failed to write to log file").
		WithPath(path).WithOffset(offset).WithOp("write_at")
}
