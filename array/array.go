package array

import (
	"fmt"

	"github.com/mtrafisz/arraykit/alloc"
	"github.com/mtrafisz/arraykit/internal/buf"
)

// DefaultCapacity is the initial capacity used by NewDefault.
const DefaultCapacity = 16

// Array is a growable contiguous container of fixed-size byte records.
// The zero value is not usable; construct with New or NewDefault.
//
// Not safe for concurrent use.
type Array struct {
	size     int
	capacity int
	elemSize int
	data     []byte // len(data) == capacity*elemSize
	alloc    alloc.Allocator

	// gen advances on every structural mutation and is checked by iterators.
	gen       uint64
	destroyed bool
}

// New creates an array of capacity slots of elemSize bytes each, with all
// buffer management going through a. A nil allocator means alloc.Default.
func New(elemSize, capacity int, a alloc.Allocator) (*Array, error) {
	if elemSize <= 0 {
		return nil, ErrBadElemSize
	}
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	total, ok := buf.Size(capacity, elemSize)
	if !ok {
		return nil, fmt.Errorf("%w: capacity=%d elemSize=%d", ErrTooLarge, capacity, elemSize)
	}
	if a == nil {
		a = alloc.Default
	}
	data, err := a.Allocate(total)
	if err != nil {
		return nil, fmt.Errorf("array: allocate %d bytes: %w", total, err)
	}
	return &Array{
		capacity: capacity,
		elemSize: elemSize,
		data:     data,
		alloc:    a,
	}, nil
}

// NewDefault creates an array with DefaultCapacity slots.
func NewDefault(elemSize int, a alloc.Allocator) (*Array, error) {
	return New(elemSize, DefaultCapacity, a)
}

// Size returns the number of occupied records.
func (a *Array) Size() int { return a.size }

// Cap returns the number of allocated record slots.
func (a *Array) Cap() int { return a.capacity }

// ElemSize returns the record size in bytes, fixed for the array's lifetime.
func (a *Array) ElemSize() int { return a.elemSize }

// Append copies rec into the slot at index Size and grows the array first
// when it is full. Capacity doubles on growth, so appends are amortized O(1).
// The caller keeps ownership of rec; only its bytes are copied.
func (a *Array) Append(rec []byte) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if len(rec) != a.elemSize {
		return fmt.Errorf("%w: got %d, want %d", ErrRecordSize, len(rec), a.elemSize)
	}
	if a.size == a.capacity {
		if err := a.ensureCap(a.size + 1); err != nil {
			return err
		}
	}
	copy(a.data[a.size*a.elemSize:], rec)
	a.size++
	return nil
}

// Set overwrites the record at index i. Unlike At, the bound is the occupied
// size: slots beyond it must be filled through Append or Resize first.
func (a *Array) Set(i int, rec []byte) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i >= a.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, a.size)
	}
	if len(rec) != a.elemSize {
		return fmt.Errorf("%w: got %d, want %d", ErrRecordSize, len(rec), a.elemSize)
	}
	copy(a.data[i*a.elemSize:(i+1)*a.elemSize], rec)
	return nil
}

// At returns the record at index i, aliasing the array's buffer. The bound is
// the capacity, not the size: pre-allocated but unoccupied slots are valid
// read/write targets, so a pre-sized buffer can be filled through At instead
// of Append. The returned slice is invalidated by any structural mutation.
func (a *Array) At(i int) ([]byte, error) {
	if a.destroyed {
		return nil, ErrDestroyed
	}
	if i < 0 || i >= a.capacity {
		return nil, fmt.Errorf("%w: index %d, capacity %d", ErrIndexOutOfBounds, i, a.capacity)
	}
	rec, ok := buf.Record(a.data, i, a.elemSize)
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, i)
	}
	return rec, nil
}

// Resize sets the occupied size to n. Growing past the capacity reallocates
// the buffer so that capacity == n exactly, with no headroom - unlike Append,
// which doubles. Shrinking only moves the size; the buffer is untouched.
// Either way outstanding iterators are invalidated.
func (a *Array) Resize(n int) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n > a.capacity {
		if err := a.realloc(n); err != nil {
			return err
		}
	}
	a.size = n
	a.gen++
	return nil
}

// Shrink reallocates the buffer so that capacity == size exactly. An empty
// array keeps one slot, preserving the capacity >= 1 invariant.
func (a *Array) Shrink() error {
	if a.destroyed {
		return ErrDestroyed
	}
	target := a.size
	if target == 0 {
		target = 1
	}
	if target == a.capacity {
		return nil
	}
	return a.realloc(target)
}

// Clone returns an independent copy: same capacity, same allocator, occupied
// records bytewise identical. Mutating either array never affects the other.
func (a *Array) Clone() (*Array, error) {
	if a.destroyed {
		return nil, ErrDestroyed
	}
	next, err := New(a.elemSize, a.capacity, a.alloc)
	if err != nil {
		return nil, err
	}
	copy(next.data, a.data[:a.size*a.elemSize])
	next.size = a.size
	return next, nil
}

// Combine appends every occupied record of src, in index order. src is left
// unmodified. Combining an array with itself doubles it.
func (a *Array) Combine(src *Array) error {
	if a.destroyed || src.destroyed {
		return ErrDestroyed
	}
	if src.elemSize != a.elemSize {
		return fmt.Errorf("%w: dst %d, src %d", ErrElemSizeMismatch, a.elemSize, src.elemSize)
	}
	n := src.size
	if n == 0 {
		return nil
	}
	// Reserve up front: a single reallocation, and self-combine stays safe
	// because no growth happens while records are being read.
	if err := a.ensureCap(a.size + n); err != nil {
		return err
	}
	copy(a.data[a.size*a.elemSize:], src.data[:n*src.elemSize])
	a.size += n
	return nil
}

// Destroy releases the buffer through the allocator. The array must not be
// used afterward; every operation, including a second Destroy, reports
// ErrDestroyed. Memory referenced by record contents is never freed.
func (a *Array) Destroy() error {
	if a.destroyed {
		return ErrDestroyed
	}
	a.alloc.Free(a.data)
	a.data = nil
	a.destroyed = true
	a.gen++
	return nil
}

// ensureCap grows the buffer, doubling from the current capacity until need
// fits. No-op when need is within capacity.
func (a *Array) ensureCap(need int) error {
	if need <= a.capacity {
		return nil
	}
	next := a.capacity
	for next < need {
		doubled, ok := buf.MulOverflowSafe(next, 2)
		if !ok {
			next = need
			break
		}
		next = doubled
	}
	return a.realloc(next)
}

// realloc moves the buffer to exactly capacity newCap and invalidates
// outstanding iterators.
func (a *Array) realloc(newCap int) error {
	total, ok := buf.Size(newCap, a.elemSize)
	if !ok {
		return fmt.Errorf("%w: capacity=%d elemSize=%d", ErrTooLarge, newCap, a.elemSize)
	}
	data, err := a.alloc.Reallocate(a.data, total)
	if err != nil {
		return fmt.Errorf("array: reallocate to %d bytes: %w", total, err)
	}
	a.data = data
	a.capacity = newCap
	a.gen++
	return nil
}
