package array

// Iterator is a non-owning forward cursor over the records an array held
// when the iterator was created. It holds no memory of its own; yielded
// records alias the array's buffer.
type Iterator struct {
	a    *Array
	off  int // byte offset of the next record
	end  int // one past the last occupied byte, snapshotted at creation
	gen  uint64
	done bool
	err  error
}

// Iter returns an iterator positioned at record 0. Iterating an already
// destroyed array yields nothing and reports ErrDestroyed through Err.
func (a *Array) Iter() *Iterator {
	it := &Iterator{
		a:   a,
		end: a.size * a.elemSize,
		gen: a.gen,
	}
	if a.destroyed {
		it.done = true
		it.err = ErrDestroyed
	}
	return it
}

// Next returns the next record and true, or nil and false once the iterator
// is exhausted. Exhaustion is terminal: the iterator never wraps or resets,
// a new one must be created to iterate again.
//
// The array's generation is checked on every step; if the array was mutated
// structurally since the iterator was created, iteration stops and Err
// reports ErrStale.
func (it *Iterator) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}
	if it.a.gen != it.gen {
		it.done = true
		it.err = ErrStale
		return nil, false
	}
	if it.off >= it.end {
		it.done = true
		return nil, false
	}
	es := it.a.elemSize
	rec := it.a.data[it.off : it.off+es : it.off+es]
	it.off += es
	return rec, true
}

// Err returns nil after a clean exhaustion, ErrStale when the source array
// was mutated mid-iteration, or ErrDestroyed when it was created from a
// destroyed array.
func (it *Iterator) Err() error { return it.err }
