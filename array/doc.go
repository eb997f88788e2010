// Package array implements a growable contiguous container of fixed-size
// byte records whose memory is obtained through a swappable allocator.
//
// # Overview
//
// The container does not know the element type: every element is an opaque
// record of elemSize bytes, stored back to back in one buffer owned by the
// Array. All buffer management goes through the alloc.Allocator supplied at
// construction, so arena, pool, mmap or tracking allocators are drop-in.
//
//	a, err := array.New(4, 16, alloc.Default)
//	if err != nil {
//	    return err
//	}
//	defer a.Destroy()
//
//	rec := make([]byte, 4)
//	binary.LittleEndian.PutUint32(rec, 42)
//	if err := a.Append(rec); err != nil {
//	    return err
//	}
//
// For homogeneous typed use, Typed[T] wraps an Array and removes the manual
// byte bookkeeping:
//
//	xs, err := array.NewTyped[int32](nil)
//	if err != nil {
//	    return err
//	}
//	defer xs.Destroy()
//	_ = xs.Append(42)
//
// # Size and capacity
//
// Size is the number of occupied records, capacity the number of allocated
// slots. capacity >= 1 and size <= capacity hold at all times. Append doubles
// capacity when full; Resize beyond capacity reallocates to the requested
// size exactly, with no headroom; Shrink trims capacity down to size.
//
// # Errors
//
// Contract violations surface as sentinel errors (ErrIndexOutOfBounds,
// ErrZeroCapacity, ErrDestroyed, ...) rather than panics, so callers decide
// between recovery and abort.
//
// # Iterators
//
// Iter returns a forward cursor over the records occupied at creation time.
// Every structural mutation of the array (reallocation, resize, shrink,
// destroy) advances an internal generation counter; an outdated iterator
// stops at the next step and reports ErrStale through Err. Records yielded by
// the iterator alias the array's buffer and must not be retained across
// mutations.
//
// # Ownership
//
// The Array owns its backing buffer exclusively and releases it through the
// allocator on Destroy. Element bytes are copied in and out; pointers stored
// inside records are invisible to the container (and to the garbage
// collector - see Typed). Deep-copy semantics are out of scope.
//
// # Thread Safety
//
// Arrays are not safe for concurrent use. Callers must synchronize
// externally; concurrent mutation, or mutation concurrent with iteration, is
// a data race.
package array
