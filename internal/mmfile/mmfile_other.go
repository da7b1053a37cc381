//go:build !unix

package mmfile

import "os"

// Open reads the whole file at path. maxSize caps the file length (0 = no cap).
func Open(path string, maxSize int64) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if err := checkSize(path, info.Size(), maxSize); err != nil {
		return nil, err
	}
	return read(f, maxSize)
}
