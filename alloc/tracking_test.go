package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracking_AccountsLiveBytes(t *testing.T) {
	tr := NewTracking(nil)

	b1, err := tr.Allocate(100)
	require.NoError(t, err)
	b2, err := tr.Allocate(50)
	require.NoError(t, err)

	assert.Equal(t, 150, tr.LiveBytes())
	assert.Equal(t, 2, tr.LiveAllocs())

	tr.Free(b1)
	assert.Equal(t, 50, tr.LiveBytes())
	assert.Equal(t, 1, tr.LiveAllocs())

	tr.Free(b2)
	assert.Zero(t, tr.LiveBytes())
	assert.Zero(t, tr.LiveAllocs())
}

func TestTracking_DetectsDoubleFree(t *testing.T) {
	tr := NewTracking(nil)

	b, err := tr.Allocate(10)
	require.NoError(t, err)

	tr.Free(b)
	tr.Free(b)

	assert.Equal(t, 1, tr.BadFrees())
	assert.Zero(t, tr.LiveAllocs(), "double free must not corrupt accounting")
}

func TestTracking_DetectsForeignFree(t *testing.T) {
	tr := NewTracking(nil)

	tr.Free(make([]byte, 10))

	assert.Equal(t, 1, tr.BadFrees())
}

func TestTracking_ReallocateMovesAccounting(t *testing.T) {
	tr := NewTracking(nil)

	b, err := tr.Allocate(10)
	require.NoError(t, err)

	b, err = tr.Reallocate(b, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, tr.LiveBytes())
	assert.Equal(t, 1, tr.LiveAllocs(), "reallocation must not leak the old buffer")

	tr.Free(b)
	assert.Zero(t, tr.LiveBytes())
}

func TestTracking_Stats(t *testing.T) {
	tr := NewTracking(Std{})

	b, err := tr.Allocate(20)
	require.NoError(t, err)
	tr.Free(b)
	tr.Free(b) // double

	s := tr.Stats()
	assert.Equal(t, 1, s.TotalAllocs)
	assert.Equal(t, 1, s.TotalFrees)
	assert.Equal(t, 1, s.BadFrees)
	assert.Zero(t, s.LiveBytes)
	assert.Zero(t, s.LiveAllocs)
}

func TestTracking_WrapsArena(t *testing.T) {
	inner := NewArena(0)
	tr := NewTracking(inner)

	b, err := tr.Allocate(64)
	require.NoError(t, err)
	assert.Equal(t, 64, tr.LiveBytes())

	tr.Free(b)
	assert.Zero(t, tr.LiveBytes())
}
