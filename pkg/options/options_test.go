package options

import "testing"

func TestWithDefaultOptions(t *testing.T) {
	var o Options
	WithDefaultOptions()(&o)

	if o.FileMode != DefaultFileMode {
		t.Errorf("FileMode = %v, want %v", o.FileMode, DefaultFileMode)
	}
	if o.SyncOnWrite != DefaultSyncOnWrite {
		t.Errorf("SyncOnWrite = %v, want %v", o.SyncOnWrite, DefaultSyncOnWrite)
	}
	if o.AutoCompactThreshold != DefaultAutoCompactThreshold {
		t.Errorf("AutoCompactThreshold = %v, want %v", o.AutoCompactThreshold, DefaultAutoCompactThreshold)
	}
}

func TestWithFileModeIgnoresZero(t *testing.T) {
	o := Options{FileMode: 0600}
	WithFileMode(0)(&o)
	if o.FileMode != 0600 {
		t.Errorf("FileMode changed to %v on zero input, want unchanged 0600", o.FileMode)
	}

	WithFileMode(0640)(&o)
	if o.FileMode != 0640 {
		t.Errorf("FileMode = %v, want 0640", o.FileMode)
	}
}

func TestWithSyncOnWrite(t *testing.T) {
	var o Options
	WithSyncOnWrite(true)(&o)
	if !o.SyncOnWrite {
		t.Error("expected SyncOnWrite = true")
	}
	WithSyncOnWrite(false)(&o)
	if o.SyncOnWrite {
		t.Error("expected SyncOnWrite = false")
	}
}

func TestWithAutoCompactThreshold(t *testing.T) {
	var o Options
	WithAutoCompactThreshold(4)(&o)
	if o.AutoCompactThreshold != 4 {
		t.Errorf("AutoCompactThreshold = %d, want 4", o.AutoCompactThreshold)
	}
}
