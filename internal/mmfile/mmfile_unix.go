//go:build unix

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at path. maxSize caps the file length (0 = no cap).
func Open(path string, maxSize int64) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if err := checkSize(path, size, maxSize); err != nil {
		return nil, err
	}
	if size == 0 || !info.Mode().IsRegular() {
		// Pipes and devices cannot be mapped.
		return read(f, maxSize)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, close: func() error { return unix.Munmap(data) }}, nil
}
