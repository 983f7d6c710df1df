package options

const (
	// DefaultFileMode is the permission bits used when creating the log
	// file if none is specified.
	DefaultFileMode = 0644

	// DefaultSyncOnWrite leaves durability to explicit Sync calls.
	DefaultSyncOnWrite = false

	// DefaultAutoCompactThreshold disables automatic compaction; callers
	// opt in explicitly via WithAutoCompactThreshold.
	DefaultAutoCompactThreshold uint64 = 0
)

// defaultOptions holds the package's baseline configuration.
var defaultOptions = Options{
	FileMode:             DefaultFileMode,
	SyncOnWrite:          DefaultSyncOnWrite,
	AutoCompactThreshold: DefaultAutoCompactThreshold,
}

// NewDefaultOptions returns a copy of the default configuration.
func NewDefaultOptions() Options {
	return defaultOptions
}
