// Package buf provides overflow-safe size arithmetic for byte buffers that
// are addressed as sequences of fixed-size records.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This is essential for count * recordSize calculations.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Size returns count * recordSize, with ok = false on negative inputs or
// overflow. This is the only way buffer byte sizes are computed.
func Size(count, recordSize int) (int, bool) {
	if count < 0 || recordSize < 0 {
		return 0, false
	}
	return MulOverflowSafe(count, recordSize)
}

// Record returns the sub-slice holding record i of recordSize bytes, with its
// capacity clipped to the record so writes through the returned slice cannot
// spill into the neighbouring record. ok = false when the record is out of
// bounds of b.
func Record(b []byte, i, recordSize int) ([]byte, bool) {
	if i < 0 || recordSize <= 0 {
		return nil, false
	}
	off, ok := MulOverflowSafe(i, recordSize)
	if !ok {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, recordSize)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Has reports whether record i of recordSize bytes is within bounds of b.
func Has(b []byte, i, recordSize int) bool {
	_, ok := Record(b, i, recordSize)
	return ok
}
