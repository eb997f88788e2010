package alloc

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is a single slab of arena memory with a bump offset.
type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator implementing Allocator. Individual Free
// calls are no-ops; memory is reclaimed in bulk by Reset or Release. Typical
// usage is one arena per batch of short-lived arrays.
//
// Not safe for concurrent use.
type Arena struct {
	chunks    []chunk
	chunkSize int
	current   *chunk
}

// NewArena creates an arena with the given chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate bump-allocates n zeroed bytes from the current chunk, appending a
// new chunk when it does not fit.
func (a *Arena) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if a.chunks == nil {
		return nil, ErrReleased
	}
	if n == 0 {
		return []byte{}, nil
	}

	c := a.current
	off := alignPtr(c.offset)
	if off+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
		c = a.current
		off = alignPtr(c.offset)
	}

	start := int(off)
	c.offset = off + uintptr(n)
	b := c.buf[start : start+n : start+n]
	// Chunks are reused across Reset, so the slice may hold stale bytes.
	clear(b)
	return b, nil
}

// Reallocate allocates a fresh region and copies the preserved prefix.
// The old region becomes dead arena space until the next Reset or Release.
func (a *Arena) Reallocate(buf []byte, n int) ([]byte, error) {
	if n == len(buf) {
		return buf, nil
	}
	next, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	return next, nil
}

// Free is a no-op; arena memory is reclaimed in bulk.
func (a *Arena) Free([]byte) {}

// Reset rewinds all chunk offsets to zero, keeping the chunks for reuse.
// Buffers handed out before the call must no longer be used.
func (a *Arena) Reset() {
	if a.chunks == nil {
		return
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = &a.chunks[0]
}

// Release drops all chunks. Subsequent Allocate calls return ErrReleased.
func (a *Arena) Release() {
	a.chunks = nil
	a.current = nil
}

// grow appends a chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = &a.chunks[len(a.chunks)-1]
}

// alignPtr rounds off up to pointer-size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) &^ mask
}

// ArenaMetrics is a snapshot of arena statistics.
type ArenaMetrics struct {
	SizeInUse   int     // bytes currently allocated, including alignment waste
	Capacity    int     // total capacity of all chunks in bytes
	NumChunks   int     // number of chunks
	ChunkSize   int     // configured chunk size
	Utilization float64 // SizeInUse / Capacity, 0.0-1.0
}

// SizeInUse returns the number of bytes currently allocated from the arena,
// including internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// Capacity returns the total capacity of all chunks in bytes.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// NumChunks returns the number of chunks currently held.
func (a *Arena) NumChunks() int { return len(a.chunks) }

// Utilization returns the ratio of bytes in use to total capacity.
// Returns 0 when the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.chunkSize,
		Utilization: a.Utilization(),
	}
}

var _ Allocator = (*Arena)(nil)
