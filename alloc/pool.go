package alloc

import (
	"math/bits"
	"sync"
)

const (
	// poolMinSize is the smallest bucketed allocation (smaller requests round up).
	poolMinSize = 1 << 6 // 64 B
	// poolMaxSize is the largest bucketed allocation; larger requests bypass
	// the pools and go straight to the runtime.
	poolMaxSize = 1 << 16 // 64 KiB

	poolBuckets = 11 // 64 B .. 64 KiB in power-of-two classes
)

// Pool is a size-bucketed allocator backed by sync.Pool. Buffers are recycled
// through power-of-two classes between 64 B and 64 KiB; requests outside that
// range fall through to the runtime and are never pooled.
//
// Safe for concurrent use.
type Pool struct {
	buckets [poolBuckets]sync.Pool
}

// NewPool creates a pooled allocator.
func NewPool() *Pool {
	return &Pool{}
}

// Allocate returns n zeroed bytes, reusing a pooled buffer when one of a
// matching class is available. The returned slice has the class size as its
// capacity so Free can route it back to the right bucket.
func (p *Pool) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n == 0 {
		return []byte{}, nil
	}
	if n > poolMaxSize {
		return make([]byte, n), nil
	}

	i := bucketIndex(n)
	if v := p.buckets[i].Get(); v != nil {
		b := (*(v.(*[]byte)))[:n]
		// Recycled buffers hold whatever the previous owner wrote.
		clear(b)
		return b, nil
	}
	return make([]byte, n, bucketSize(i)), nil
}

// Reallocate grows or shrinks buf to exactly n bytes, preserving the first
// min(len(buf), n) bytes. Shrinking within the same class reuses the buffer.
func (p *Pool) Reallocate(buf []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n == len(buf) {
		return buf, nil
	}
	if n <= cap(buf) {
		grown := buf[:n]
		if n > len(buf) {
			clear(grown[len(buf):])
		}
		return grown, nil
	}
	next, err := p.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	p.Free(buf)
	return next, nil
}

// Free returns buf to its class bucket. Buffers whose capacity is not an
// exact class size (including all over-poolMaxSize allocations) are left to
// the garbage collector.
func (p *Pool) Free(buf []byte) {
	c := cap(buf)
	if c < poolMinSize || c > poolMaxSize {
		return
	}
	i := bucketIndex(c)
	if bucketSize(i) != c {
		return
	}
	full := buf[:c]
	p.buckets[i].Put(&full)
}

// bucketIndex returns the smallest class index whose size fits n.
// n must be in (0, poolMaxSize].
func bucketIndex(n int) int {
	if n <= poolMinSize {
		return 0
	}
	return bits.Len(uint(n-1)) - 6
}

// bucketSize returns the allocation size of class i.
func bucketSize(i int) int {
	return poolMinSize << i
}

var _ Allocator = (*Pool)(nil)
