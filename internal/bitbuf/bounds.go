package bitbuf

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

// HasBits reports whether n bits starting at bit offset off fit inside a
// buffer of total bits.
func HasBits(total, off, n int) bool {
	if off < 0 || n < 0 || off > total {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= total
}
