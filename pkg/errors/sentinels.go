package errors

import stdErrors "errors"

// ErrKeyNotFound is returned by Remove when the target key is absent from
// the index. Get never returns this error; it reports absence through its
// second return value instead.
var ErrKeyNotFound = stdErrors.New("key not found")

// ErrClosed is returned by any engine operation attempted after Close has
// completed.
var ErrClosed = stdErrors.New("engine is closed")
