package alloc

import "sync"

// Tracking wraps another Allocator and accounts for every buffer it hands
// out. It is the implementation of choice in tests: after a container is
// destroyed, LiveBytes and LiveAllocs must both be zero, and any double or
// foreign Free shows up in BadFrees.
//
// Safe for concurrent use.
type Tracking struct {
	inner Allocator

	mu       sync.Mutex
	live     map[*byte]int // first byte of buffer -> allocation size
	allocs   int
	frees    int
	badFrees int
	bytes    int
}

// TrackingStats is a snapshot of a Tracking allocator's accounting.
type TrackingStats struct {
	LiveBytes   int // bytes currently outstanding
	LiveAllocs  int // buffers currently outstanding
	TotalAllocs int // Allocate and growing Reallocate calls
	TotalFrees  int // accepted Free calls
	BadFrees    int // double or foreign Free calls
}

// NewTracking wraps inner with allocation accounting.
// If inner is nil, Default is used.
func NewTracking(inner Allocator) *Tracking {
	if inner == nil {
		inner = Default
	}
	return &Tracking{inner: inner, live: make(map[*byte]int)}
}

func (t *Tracking) Allocate(n int) ([]byte, error) {
	b, err := t.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.record(b, n)
	t.mu.Unlock()
	return b, nil
}

func (t *Tracking) Reallocate(buf []byte, n int) ([]byte, error) {
	next, err := t.inner.Reallocate(buf, n)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.forget(buf)
	t.record(next, n)
	t.mu.Unlock()
	return next, nil
}

func (t *Tracking) Free(buf []byte) {
	t.mu.Lock()
	key := bufKey(buf)
	if key == nil {
		t.mu.Unlock()
		return
	}
	size, ok := t.live[key]
	if !ok {
		t.badFrees++
		t.mu.Unlock()
		return
	}
	delete(t.live, key)
	t.frees++
	t.bytes -= size
	t.mu.Unlock()
	t.inner.Free(buf)
}

// Stats returns a snapshot of the allocator's accounting.
func (t *Tracking) Stats() TrackingStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TrackingStats{
		LiveBytes:   t.bytes,
		LiveAllocs:  len(t.live),
		TotalAllocs: t.allocs,
		TotalFrees:  t.frees,
		BadFrees:    t.badFrees,
	}
}

// LiveBytes returns the number of bytes currently outstanding.
func (t *Tracking) LiveBytes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}

// LiveAllocs returns the number of buffers currently outstanding.
func (t *Tracking) LiveAllocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// BadFrees returns the number of double or foreign Free calls observed.
func (t *Tracking) BadFrees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.badFrees
}

// record notes an outstanding buffer. Zero-length buffers have no identity
// and are not tracked. Caller holds mu.
func (t *Tracking) record(b []byte, n int) {
	key := bufKey(b)
	if key == nil {
		return
	}
	t.live[key] = n
	t.allocs++
	t.bytes += n
}

// forget drops accounting for a buffer consumed by Reallocate. Caller holds mu.
func (t *Tracking) forget(b []byte) {
	key := bufKey(b)
	if key == nil {
		return
	}
	if size, ok := t.live[key]; ok {
		delete(t.live, key)
		t.bytes -= size
	}
}

// bufKey returns the identity of a buffer: the address of its first byte.
func bufKey(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

var _ Allocator = (*Tracking)(nil)
