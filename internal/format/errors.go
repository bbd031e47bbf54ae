package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a field.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnterminated indicates a NUL-terminated string ran to the end of its bound.
	ErrUnterminated = errors.New("format: unterminated string")
	// ErrOddLength indicates UTF-16 data with an odd number of bytes.
	ErrOddLength = errors.New("format: odd-length utf-16 data")
	// ErrUnknownCodePage indicates a code page name that could not be resolved.
	ErrUnknownCodePage = errors.New("format: unknown code page")
)
