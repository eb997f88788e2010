package alloc

// Allocator is the capability bundle every container buffer goes through.
//
// Implementations must be safe to share by value or reference between
// containers; the interface assumes no per-container state.
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly n bytes.
	Allocate(n int) ([]byte, error)

	// Reallocate returns a buffer of exactly n bytes holding the first
	// min(len(buf), n) bytes of buf. The region may move; buf must not be
	// used afterward.
	Reallocate(buf []byte, n int) ([]byte, error)

	// Free releases a buffer obtained from this allocator. Freeing a foreign
	// buffer, or the same buffer twice, is a caller contract violation.
	Free(buf []byte)
}

// Std allocates through the Go runtime. Free is a no-op; the garbage
// collector reclaims buffers once unreferenced.
type Std struct{}

func (Std) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return make([]byte, n), nil
}

func (Std) Reallocate(buf []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n == len(buf) {
		return buf, nil
	}
	next := make([]byte, n)
	copy(next, buf)
	return next, nil
}

func (Std) Free([]byte) {}

// Default is the allocator used when a container is constructed without one.
// Safe for concurrent use.
var Default Allocator = Std{}
