package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPutGetDelete(t *testing.T) {
	idx := New()

	if _, ok := idx.Get("a"); ok {
		t.Fatal("expected absent key to report not found")
	}

	idx.Put("a", Pointer{Offset: 0, Size: 10})
	got, ok := idx.Get("a")
	if !ok {
		t.Fatal("expected key to be present after Put")
	}
	want := Pointer{Offset: 0, Size: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	idx.Put("a", Pointer{Offset: 20, Size: 5})
	got, _ = idx.Get("a")
	if got.Offset != 20 || got.Size != 5 {
		t.Errorf("Put did not replace existing pointer, got %+v", got)
	}

	if !idx.Delete("a") {
		t.Error("Delete should report true for a present key")
	}
	if idx.Delete("a") {
		t.Error("Delete should report false for an already-absent key")
	}
	if _, ok := idx.Get("a"); ok {
		t.Error("key should be absent after Delete")
	}
}

func TestLenAndRange(t *testing.T) {
	idx := New()
	want := map[string]Pointer{
		"a": {Offset: 0, Size: 1},
		"b": {Offset: 1, Size: 2},
		"c": {Offset: 3, Size: 3},
	}
	for k, p := range want {
		idx.Put(k, p)
	}

	if idx.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", idx.Len(), len(want))
	}

	got := make(map[string]Pointer)
	idx.Range(func(k string, p Pointer) { got[k] = p })
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	idx := New()
	idx.Put("a", Pointer{Offset: 0, Size: 1})
	idx.Reset()
	if idx.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", idx.Len())
	}
	if _, ok := idx.Get("a"); ok {
		t.Error("expected key to be gone after Reset")
	}
}
