// Package options provides data structures and functions for configuring
// stowdb. It defines the handful of knobs a single-file, single-writer log
// store actually has: how eagerly to sync, when to auto-compact, the file
// mode used to create the log file, and the logger to wire through every
// layer.
package options

import (
	"os"

	"go.uber.org/zap"
)

// Options defines the configuration parameters for a store instance.
type Options struct {
	// Logger receives structured events from every internal layer. When
	// unset, Open builds a production zap logger.
	//
	// Default: nil (Open builds one)
	Logger *zap.SugaredLogger `json:"-"`

	// FileMode is the permission bits used when creating the backing file.
	//
	// Default: 0644
	FileMode os.FileMode `json:"fileMode"`

	// SyncOnWrite, when true, makes Set and Remove call Sync before
	// returning, trading throughput for durability that otherwise is only
	// guaranteed via an explicit Sync call.
	//
	// Default: false
	SyncOnWrite bool `json:"syncOnWrite"`

	// AutoCompactThreshold triggers an automatic Compact once
	// total_records exceeds AutoCompactThreshold * len(index). Zero
	// disables auto-compaction.
	//
	// Default: 0 (disabled)
	AutoCompactThreshold uint64 `json:"autoCompactThreshold"`
}

// OptionFunc is a function type that modifies a store's configuration.
type OptionFunc func(*Options)

// WithDefaultOptions applies the package's default configuration values.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := NewDefaultOptions()
		o.FileMode = opts.FileMode
		o.SyncOnWrite = opts.SyncOnWrite
		o.AutoCompactThreshold = opts.AutoCompactThreshold
	}
}

// WithLogger sets the structured logger used by every internal layer.
func WithLogger(logger *zap.SugaredLogger) OptionFunc {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithFileMode sets the permission bits used when creating the log file.
func WithFileMode(mode os.FileMode) OptionFunc {
	return func(o *Options) {
		if mode != 0 {
			o.FileMode = mode
		}
	}
}

// WithSyncOnWrite controls whether Set and Remove fsync before returning.
func WithSyncOnWrite(enabled bool) OptionFunc {
	return func(o *Options) {
		o.SyncOnWrite = enabled
	}
}

// WithAutoCompactThreshold sets the multiple of live keys past which the
// engine compacts automatically. A threshold of zero disables the policy.
func WithAutoCompactThreshold(threshold uint64) OptionFunc {
	return func(o *Options) {
		o.AutoCompactThreshold = threshold
	}
}
