package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"simple", 2, 3, 5, true},
		{"zero", 0, 0, 0, true},
		{"negative", -5, 3, -2, true},
		{"max boundary", math.MaxInt - 1, 1, math.MaxInt, true},
		{"positive overflow", math.MaxInt, 1, 0, false},
		{"negative overflow", math.MinInt, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AddOverflowSafe(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMulOverflowSafe(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"simple", 4, 8, 32, true},
		{"zero left", 0, math.MaxInt, 0, true},
		{"zero right", math.MaxInt, 0, 0, true},
		{"max boundary", math.MaxInt / 2, 2, math.MaxInt - 1, true},
		{"positive overflow", math.MaxInt/2 + 1, 2, 0, false},
		{"mixed sign overflow", math.MaxInt, -2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulOverflowSafe(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSize(t *testing.T) {
	n, ok := Size(16, 4)
	require.True(t, ok)
	assert.Equal(t, 64, n)

	_, ok = Size(-1, 4)
	assert.False(t, ok, "negative count must be rejected")

	_, ok = Size(4, -1)
	assert.False(t, ok, "negative record size must be rejected")

	_, ok = Size(math.MaxInt/2, 4)
	assert.False(t, ok, "count*recordSize overflow must be rejected")
}

func TestRecord(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	rec, ok := Record(b, 1, 4)
	require.True(t, ok)
	assert.Equal(t, []byte{4, 5, 6, 7}, rec)
	assert.Equal(t, 4, cap(rec), "record capacity must be clipped")

	_, ok = Record(b, 2, 4)
	assert.False(t, ok, "record past end must be rejected")

	_, ok = Record(b, -1, 4)
	assert.False(t, ok)

	_, ok = Record(b, 0, 0)
	assert.False(t, ok, "zero record size must be rejected")
}

func TestRecord_WriteThroughAliasesBuffer(t *testing.T) {
	b := make([]byte, 12)
	rec, ok := Record(b, 2, 4)
	require.True(t, ok)

	rec[0] = 0xAB
	assert.Equal(t, byte(0xAB), b[8], "record slice must alias the backing buffer")
}

func TestHas(t *testing.T) {
	b := make([]byte, 16)
	assert.True(t, Has(b, 3, 4))
	assert.False(t, Has(b, 4, 4))
}
