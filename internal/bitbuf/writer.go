package bitbuf

import "fmt"

// Writer appends bits MSB-first to a growing byte buffer. It is the inverse
// of Reader: bits written with Put are read back unchanged by Take.
type Writer struct {
	data []byte
	n    int // bits written
}

// NewWriter returns an empty Writer with room for sizeHint bits.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{data: make([]byte, 0, (sizeHint+7)/8)}
}

// Len returns the number of bits written.
func (w *Writer) Len() int { return w.n }

// Put appends the low n bits of v, most significant first. n must be in
// [0, MaxTake] and v must fit in n bits.
func (w *Writer) Put(v uint64, n int) error {
	if n < 0 || n > MaxTake {
		return fmt.Errorf("bitbuf: invalid width %d", n)
	}
	if n < MaxTake && v>>n != 0 {
		return fmt.Errorf("bitbuf: value %d does not fit in %d bits", v, n)
	}
	for i := n - 1; i >= 0; i-- {
		if w.n&7 == 0 {
			w.data = append(w.data, 0)
		}
		if v>>i&1 == 1 {
			w.data[len(w.data)-1] |= 0x80 >> (w.n & 7)
		}
		w.n++
	}
	return nil
}

// PutBit appends a single bit.
func (w *Writer) PutBit(b bool) error {
	if b {
		return w.Put(1, 1)
	}
	return w.Put(0, 1)
}

// Bytes returns the written bits zero-padded to a byte boundary. The slice
// aliases the Writer's buffer until the next Put.
func (w *Writer) Bytes() []byte { return w.data }

// Append copies every bit written to o onto the end of w.
func (w *Writer) Append(o *Writer) error {
	r := NewReader(o.data)
	for left := o.n; left > 0; {
		n := min(left, MaxTake)
		v, err := r.Take(n)
		if err != nil {
			return err
		}
		if err := w.Put(v, n); err != nil {
			return err
		}
		left -= n
	}
	return nil
}
