//go:build !unix && !windows

package mmfile

import "os"

// Map reads the entire file when mmap is not available. maxSize of 0 means
// no limit.
func Map(path string, maxSize int64) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, noop, err
	}
	defer f.Close()

	size, err := checkSize(f, maxSize)
	if err != nil {
		return nil, noop, err
	}
	data, err := readAll(f, size)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
