package alloc

import "errors"

var (
	// ErrNoSpace indicates that the allocator could not satisfy a request.
	ErrNoSpace = errors.New("alloc: cannot satisfy allocation")

	// ErrNegativeSize indicates a request for a negative number of bytes.
	ErrNegativeSize = errors.New("alloc: negative size")

	// ErrForeignBuffer indicates a buffer that was not obtained from this
	// allocator, or was already freed. Only reported by implementations that
	// track ownership.
	ErrForeignBuffer = errors.New("alloc: buffer not owned by this allocator")

	// ErrReleased indicates use of an arena after Release.
	ErrReleased = errors.New("alloc: arena used after Release")
)
