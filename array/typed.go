package array

import (
	"unsafe"

	"github.com/mtrafisz/arraykit/alloc"
)

// Typed is a thin generic adapter over Array that derives the element size
// from T and bridges values to record bytes, removing manual byte
// bookkeeping for homogeneous use.
//
// T must be pointer-free (integers, floats, bools, arrays and structs
// thereof): record bytes live in allocator-owned buffers that the garbage
// collector treats as raw data, so pointer fields would not keep their
// referents alive. Zero-size types are rejected at construction.
type Typed[T any] struct {
	a *Array
}

// NewTyped creates a typed array with DefaultCapacity slots.
// A nil allocator means alloc.Default.
func NewTyped[T any](al alloc.Allocator) (*Typed[T], error) {
	return NewTypedCap[T](DefaultCapacity, al)
}

// NewTypedCap creates a typed array with the given capacity.
func NewTypedCap[T any](capacity int, al alloc.Allocator) (*Typed[T], error) {
	var zero T
	a, err := New(int(unsafe.Sizeof(zero)), capacity, al)
	if err != nil {
		return nil, err
	}
	return &Typed[T]{a: a}, nil
}

// Raw returns the underlying byte-record array.
func (t *Typed[T]) Raw() *Array { return t.a }

// Size returns the number of occupied elements.
func (t *Typed[T]) Size() int { return t.a.Size() }

// Cap returns the number of allocated element slots.
func (t *Typed[T]) Cap() int { return t.a.Cap() }

// Append copies v into the slot at index Size, growing the array as needed.
func (t *Typed[T]) Append(v T) error {
	return t.a.Append(recordOf(&v))
}

// At returns a copy of the element at index i. The bound is the capacity,
// matching Array.At.
func (t *Typed[T]) At(i int) (T, error) {
	var v T
	rec, err := t.a.At(i)
	if err != nil {
		return v, err
	}
	copy(recordOf(&v), rec)
	return v, nil
}

// Set overwrites the element at index i. The bound is the occupied size.
func (t *Typed[T]) Set(i int, v T) error {
	return t.a.Set(i, recordOf(&v))
}

// Sort reorders the elements in place with a three-way comparator over T.
// Unstable, like Array.Sort.
func (t *Typed[T]) Sort(cmp func(x, y T) int) error {
	return t.a.Sort(func(x, y []byte) int {
		return cmp(*(*T)(unsafe.Pointer(&x[0])), *(*T)(unsafe.Pointer(&y[0])))
	})
}

// Each calls fn for every occupied element in index order until fn returns
// false or the elements are exhausted. Returns ErrStale if the array is
// mutated structurally mid-iteration.
func (t *Typed[T]) Each(fn func(v T) bool) error {
	it := t.a.Iter()
	for rec, ok := it.Next(); ok; rec, ok = it.Next() {
		if !fn(*(*T)(unsafe.Pointer(&rec[0]))) {
			return nil
		}
	}
	return it.Err()
}

// Clone returns an independent copy backed by the same allocator.
func (t *Typed[T]) Clone() (*Typed[T], error) {
	a, err := t.a.Clone()
	if err != nil {
		return nil, err
	}
	return &Typed[T]{a: a}, nil
}

// Destroy releases the backing buffer through the allocator.
func (t *Typed[T]) Destroy() error {
	return t.a.Destroy()
}

// recordOf views the bytes of *v as a record slice.
func recordOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
