// Package mmfile maps transmission files into memory.
package mmfile

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned when a file exceeds the caller's size cap.
var ErrTooLarge = errors.New("mmfile: file too large")

// File is a read-only view of a file's bytes. Close releases the mapping;
// Data must not be used afterwards.
type File struct {
	Data  []byte
	close func() error
}

// Close releases the mapping. It is safe to call more than once.
func (f *File) Close() error {
	if f == nil || f.close == nil {
		return nil
	}
	c := f.close
	f.close = nil
	f.Data = nil
	return c()
}

func checkSize(path string, size, maxSize int64) error {
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTooLarge, path, size, maxSize)
	}
	if size > int64(^uint(0)>>1) {
		return fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, size)
	}
	return nil
}
