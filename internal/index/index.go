// Package index is the in-memory hash table mapping each live key to the
// location of its most recent record in the log region. It embodies the
// Bitcask principle of keeping all keys in memory while values stay on
// disk: lookups are a single map access plus one positioned file read.
//
// The engine above is single-threaded and cooperative (external
// synchronization, if any, is the caller's responsibility), so this index
// carries no internal locking — there is nothing to race against within
// one engine instance.
package index

// Pointer locates a record within the log region: its offset relative to
// the start of the region, and its total on-disk size including the
// 2-byte length prefix.
type Pointer struct {
	Offset int64
	Size   uint32
}

// Index maps live key to Pointer. The zero value is not ready for use; use
// New.
type Index struct {
	entries map[string]Pointer
}

// New returns an empty Index, pre-sized to avoid early rehashing on the
// first few thousand inserts.
func New() *Index {
	return &Index{entries: make(map[string]Pointer, 2048)}
}

// Get returns the pointer for key and whether it was present.
func (idx *Index) Get(key string) (Pointer, bool) {
	p, ok := idx.entries[key]
	return p, ok
}

// Put inserts or replaces the pointer for key.
func (idx *Index) Put(key string, p Pointer) {
	idx.entries[key] = p
}

// Delete removes key from the index, reporting whether it was present.
func (idx *Index) Delete(key string) bool {
	_, ok := idx.entries[key]
	delete(idx.entries, key)
	return ok
}

// Len returns the number of live keys.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Range calls fn for every (key, pointer) pair. Iteration order is
// unspecified.
func (idx *Index) Range(fn func(key string, p Pointer)) {
	for k, p := range idx.entries {
		fn(k, p)
	}
}

// Reset discards all entries, used when swapping in a freshly-replayed or
// freshly-compacted key set.
func (idx *Index) Reset() {
	idx.entries = make(map[string]Pointer, 2048)
}
