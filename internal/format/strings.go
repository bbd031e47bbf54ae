package format

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultCodePage decodes ANSI strings when the caller does not pick one.
// Shell links carry strings in the system code page of the machine that
// wrote them; Windows-1252 covers the common Western case.
var DefaultCodePage encoding.Encoding = charmap.Windows1252

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ResolveCodePage maps an IANA or Windows code page name ("windows-1252",
// "shift_jis", "cp437", ...) to an encoding. An empty name yields DefaultCodePage.
func ResolveCodePage(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultCodePage, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodePage, name)
	}
	return enc, nil
}

// DecodeANSI converts code-page bytes to UTF-8. A nil enc selects DefaultCodePage.
func DecodeANSI(b []byte, enc encoding.Encoding) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if isASCII(b) {
		return string(b), nil
	}
	if enc == nil {
		enc = DefaultCodePage
	}
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode ansi string: %w", err)
	}
	return string(decoded), nil
}

// DecodeUTF16 converts UTF-16LE bytes to UTF-8. No terminator is stripped.
func DecodeUTF16(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	decoded, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode utf-16 string: %w", err)
	}
	return string(decoded), nil
}

// CString returns the bytes of the NUL-terminated string starting at off,
// without the terminator. The terminator must appear inside b.
func CString(b []byte, off int) ([]byte, error) {
	if off < 0 || off >= len(b) {
		return nil, fmt.Errorf("cstring at %d: %w", off, ErrTruncated)
	}
	n := bytes.IndexByte(b[off:], 0)
	if n < 0 {
		return nil, fmt.Errorf("cstring at %d: %w", off, ErrUnterminated)
	}
	return b[off : off+n], nil
}

// CString16 returns the bytes of the NUL-terminated UTF-16LE string starting
// at off, without the two-byte terminator. The terminator must appear inside b.
func CString16(b []byte, off int) ([]byte, error) {
	if off < 0 || off >= len(b) {
		return nil, fmt.Errorf("cstring16 at %d: %w", off, ErrTruncated)
	}
	for i := off; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[off:i], nil
		}
	}
	return nil, fmt.Errorf("cstring16 at %d: %w", off, ErrUnterminated)
}

// FixedString returns the prefix of a fixed-width ANSI field up to the first
// NUL, or the whole field when none is present.
func FixedString(b []byte) []byte {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		return b[:n]
	}
	return b
}

// FixedString16 is FixedString for fixed-width UTF-16LE fields.
func FixedString16(b []byte) []byte {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i]
		}
	}
	return b[:len(b)&^1]
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
