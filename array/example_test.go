package array_test

import (
	"encoding/binary"
	"fmt"

	"github.com/mtrafisz/arraykit/alloc"
	"github.com/mtrafisz/arraykit/array"
)

// Example builds an array of 4-byte integers, reverses it into a second
// array, destroys the source, sorts the copy and iterates it.
func Example() {
	a, err := array.NewDefault(4, alloc.Default)
	if err != nil {
		panic(err)
	}

	rec := make([]byte, 4)
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(rec, uint32(i))
		if err := a.Append(rec); err != nil {
			panic(err)
		}
	}

	// Reverse into a fresh array of exactly the right capacity.
	r, err := array.New(4, a.Size(), alloc.Default)
	if err != nil {
		panic(err)
	}
	for i := a.Size() - 1; i >= 0; i-- {
		src, err := a.At(i)
		if err != nil {
			panic(err)
		}
		if err := r.Append(src); err != nil {
			panic(err)
		}
	}

	// The reversed array is independent of the source.
	if err := a.Destroy(); err != nil {
		panic(err)
	}

	err = r.Sort(func(x, y []byte) int {
		return int(binary.LittleEndian.Uint32(x)) - int(binary.LittleEndian.Uint32(y))
	})
	if err != nil {
		panic(err)
	}

	it := r.Iter()
	for rec, ok := it.Next(); ok; rec, ok = it.Next() {
		fmt.Printf("%d ", binary.LittleEndian.Uint32(rec))
	}
	fmt.Println()

	if err := r.Destroy(); err != nil {
		panic(err)
	}

	// Output:
	// 0 1 2 3 4 5 6 7
}

// ExampleTyped shows the generic adapter with an arena allocator.
func ExampleTyped() {
	arena := alloc.NewArena(0)
	defer arena.Release()

	xs, err := array.NewTyped[int32](arena)
	if err != nil {
		panic(err)
	}

	for _, v := range []int32{3, 1, 2} {
		if err := xs.Append(v); err != nil {
			panic(err)
		}
	}
	if err := xs.Sort(func(a, b int32) int { return int(a) - int(b) }); err != nil {
		panic(err)
	}

	if err := xs.Each(func(v int32) bool {
		fmt.Printf("%d ", v)
		return true
	}); err != nil {
		panic(err)
	}
	fmt.Println()

	// Output:
	// 1 2 3
}
