// Package mmfile maps shell link files into memory read-only. Platforms
// without mmap fall back to reading the whole file.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrTooLarge is returned when a file exceeds the caller's size limit.
var ErrTooLarge = errors.New("mmfile: file exceeds size limit")

// noop is the cleanup for data that was read rather than mapped.
func noop() error { return nil }

// checkSize stats f and enforces maxSize (0 = unlimited).
func checkSize(f *os.File, maxSize int64) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	size := info.Size()
	if maxSize > 0 && size > maxSize {
		return 0, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, f.Name(), size, maxSize)
	}
	return size, nil
}

// readAll reads f after its size has been checked.
func readAll(f *os.File, size int64) ([]byte, error) {
	data := make([]byte, size)
	if _, err := f.ReadAt(data, 0); err != nil && size > 0 {
		return nil, err
	}
	return data, nil
}
