// Package bitbuf contains MSB-first bit cursors over byte buffers.
package bitbuf

import (
	"errors"
	"fmt"
)

// MaxTake is the widest single read supported by Take.
const MaxTake = 64

// ErrOutOfBits indicates a read asked for more bits than remain in the buffer.
var ErrOutOfBits = errors.New("bitbuf: out of bits")

// Reader is a forward-only cursor over a byte buffer. Bits within a byte are
// consumed most-significant first and bytes in buffer order.
//
// The zero value reads from an empty buffer.
type Reader struct {
	data []byte
	off  int // consumed bits
}

// NewReader returns a Reader positioned at bit 0 of data. The buffer is not
// copied and must not be modified while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total number of bits in the underlying buffer.
func (r *Reader) Len() int { return len(r.data) * 8 }

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of bits not yet consumed.
func (r *Reader) Remaining() int { return r.Len() - r.off }

// Take consumes the next n bits and returns them in the low n bits of the
// result, the earliest bit being the most significant. n must be in
// [0, MaxTake]. When fewer than n bits remain, Take returns ErrOutOfBits and
// the cursor does not move.
func (r *Reader) Take(n int) (uint64, error) {
	if n < 0 || n > MaxTake {
		return 0, fmt.Errorf("bitbuf: invalid width %d", n)
	}
	if !HasBits(r.Len(), r.off, n) {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrOutOfBits, n, r.Remaining())
	}

	var v uint64
	for n > 0 {
		idx := r.off >> 3
		used := r.off & 7
		avail := 8 - used
		chunk := avail
		if n < chunk {
			chunk = n
		}
		// Bits [used, used+chunk) of the current byte, counted from the MSB.
		b := uint64(r.data[idx]>>(avail-chunk)) & (1<<chunk - 1)
		v = v<<chunk | b
		r.off += chunk
		n -= chunk
	}
	return v, nil
}

// TakeBit consumes a single bit.
func (r *Reader) TakeBit() (bool, error) {
	v, err := r.Take(1)
	return v == 1, err
}

// Skip advances the cursor by n bits without decoding them.
func (r *Reader) Skip(n int) error {
	if n < 0 || !HasBits(r.Len(), r.off, n) {
		return fmt.Errorf("%w: skip %d, have %d", ErrOutOfBits, n, r.Remaining())
	}
	r.off += n
	return nil
}
