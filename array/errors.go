package array

import "errors"

var (
	// ErrZeroCapacity indicates a construction request with capacity 0.
	ErrZeroCapacity = errors.New("array: capacity must be at least 1")

	// ErrBadElemSize indicates a non-positive element size at construction.
	ErrBadElemSize = errors.New("array: element size must be positive")

	// ErrIndexOutOfBounds indicates an index outside the operation's bound
	// (size for Set, capacity for At).
	ErrIndexOutOfBounds = errors.New("array: index out of bounds")

	// ErrRecordSize indicates a record whose length differs from the array's
	// element size.
	ErrRecordSize = errors.New("array: record length does not match element size")

	// ErrElemSizeMismatch indicates a Combine of arrays with different
	// element sizes.
	ErrElemSizeMismatch = errors.New("array: element sizes differ")

	// ErrNegativeSize indicates a negative target size passed to Resize.
	ErrNegativeSize = errors.New("array: negative size")

	// ErrTooLarge indicates a capacity whose byte size overflows int.
	ErrTooLarge = errors.New("array: buffer size overflows int")

	// ErrDestroyed indicates use of an array after Destroy.
	ErrDestroyed = errors.New("array: used after Destroy")

	// ErrStale indicates an iterator outlived a structural mutation of its
	// array.
	ErrStale = errors.New("array: iterator invalidated by mutation")
)
