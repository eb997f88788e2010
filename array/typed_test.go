package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrafisz/arraykit/alloc"
)

type point struct {
	X, Y int32
}

func TestTyped_AppendAtRoundTrip(t *testing.T) {
	xs, err := NewTyped[int32](nil)
	require.NoError(t, err)
	defer xs.Destroy()

	for i := 0; i < 26; i++ {
		require.NoError(t, xs.Append(int32(i)))
	}
	require.Equal(t, 26, xs.Size())

	for i := 0; i < 26; i++ {
		v, err := xs.At(i)
		require.NoError(t, err)
		assert.Equal(t, int32(i), v)
	}
}

func TestTyped_StructElements(t *testing.T) {
	ps, err := NewTypedCap[point](2, nil)
	require.NoError(t, err)
	defer ps.Destroy()

	require.NoError(t, ps.Append(point{X: 1, Y: 2}))
	require.NoError(t, ps.Append(point{X: 3, Y: 4}))
	require.NoError(t, ps.Append(point{X: 5, Y: 6})) // forces growth

	p, err := ps.At(2)
	require.NoError(t, err)
	assert.Equal(t, point{X: 5, Y: 6}, p)
}

func TestTyped_Set(t *testing.T) {
	xs, err := NewTyped[int64](nil)
	require.NoError(t, err)
	defer xs.Destroy()

	require.NoError(t, xs.Append(10))
	require.NoError(t, xs.Set(0, 99))

	v, err := xs.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(99), v)

	assert.ErrorIs(t, xs.Set(1, 5), ErrIndexOutOfBounds)
}

func TestTyped_Sort(t *testing.T) {
	xs, err := NewTyped[int32](nil)
	require.NoError(t, err)
	defer xs.Destroy()

	for _, v := range []int32{5, -3, 9, 0, -7, 2} {
		require.NoError(t, xs.Append(v))
	}
	require.NoError(t, xs.Sort(func(a, b int32) int { return int(a) - int(b) }))

	want := []int32{-7, -3, 0, 2, 5, 9}
	for i, w := range want {
		v, err := xs.At(i)
		require.NoError(t, err)
		assert.Equal(t, w, v)
	}
}

func TestTyped_Each(t *testing.T) {
	xs, err := NewTyped[int32](nil)
	require.NoError(t, err)
	defer xs.Destroy()

	for i := 0; i < 5; i++ {
		require.NoError(t, xs.Append(int32(i*2)))
	}

	var got []int32
	require.NoError(t, xs.Each(func(v int32) bool {
		got = append(got, v)
		return true
	}))
	assert.Equal(t, []int32{0, 2, 4, 6, 8}, got)

	// Early stop.
	n := 0
	require.NoError(t, xs.Each(func(int32) bool {
		n++
		return n < 2
	}))
	assert.Equal(t, 2, n)
}

func TestTyped_Clone(t *testing.T) {
	xs, err := NewTyped[uint16](nil)
	require.NoError(t, err)
	defer xs.Destroy()

	require.NoError(t, xs.Append(7))

	ys, err := xs.Clone()
	require.NoError(t, err)
	defer ys.Destroy()

	require.NoError(t, xs.Set(0, 8))
	v, err := ys.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), v, "clone must be independent")
}

func TestTyped_ZeroSizeElementRejected(t *testing.T) {
	_, err := NewTyped[struct{}](nil)
	assert.ErrorIs(t, err, ErrBadElemSize)
}

func TestTyped_RawSharesStorage(t *testing.T) {
	xs, err := NewTyped[uint32](alloc.NewPool())
	require.NoError(t, err)
	defer xs.Destroy()

	require.NoError(t, xs.Append(0xAABBCCDD))
	assert.Equal(t, 4, xs.Raw().ElemSize())
	assert.Equal(t, 1, xs.Raw().Size())
}
