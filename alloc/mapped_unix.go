//go:build unix

package alloc

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Mapped allocates buffers from anonymous private memory mappings, keeping
// container memory out of the garbage-collected heap and returning it to the
// operating system on Free.
//
// Safe for concurrent use.
type Mapped struct {
	mu sync.Mutex
	// owned maps the first byte of every live mapping to the full slice that
	// Munmap needs, so Free and Reallocate work with resliced inputs too.
	owned map[*byte][]byte
}

// NewMapped creates an mmap-backed allocator.
func NewMapped() *Mapped {
	return &Mapped{owned: make(map[*byte][]byte)}
}

// Allocate maps n zeroed bytes. The kernel rounds the mapping up to whole
// pages; the returned slice is exactly n bytes long.
func (m *Mapped) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n == 0 {
		return []byte{}, nil
	}
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrNoSpace, err)
	}
	m.mu.Lock()
	m.owned[&b[0]] = b
	m.mu.Unlock()
	return b, nil
}

// Reallocate maps a new region, copies the preserved prefix and unmaps the
// old region.
func (m *Mapped) Reallocate(buf []byte, n int) ([]byte, error) {
	if n == len(buf) {
		return buf, nil
	}
	next, err := m.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	m.Free(buf)
	return next, nil
}

// Free unmaps a buffer obtained from this allocator. Foreign buffers are
// ignored.
func (m *Mapped) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	m.mu.Lock()
	full, ok := m.owned[&buf[0]]
	if ok {
		delete(m.owned, &buf[0])
	}
	m.mu.Unlock()
	if ok {
		// Unmapping can only fail on an invalid range, which the registry
		// rules out.
		_ = unix.Munmap(full)
	}
}

var _ Allocator = (*Mapped)(nil)
