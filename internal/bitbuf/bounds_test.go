package bitbuf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestHasBits(t *testing.T) {
	if !HasBits(16, 0, 16) {
		t.Fatalf("HasBits should accept a full-width span")
	}
	if !HasBits(16, 16, 0) {
		t.Fatalf("HasBits should accept an empty span at the end")
	}
	if HasBits(16, 10, 7) {
		t.Fatalf("HasBits should reject a span past the end")
	}
	if HasBits(16, -1, 1) || HasBits(16, 0, -1) {
		t.Fatalf("HasBits should reject negative offsets and widths")
	}
	if HasBits(16, 1, math.MaxInt) {
		t.Fatalf("HasBits should reject overflowing spans")
	}
}
