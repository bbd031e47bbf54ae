package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

func TestDecodeANSI(t *testing.T) {
	s, err := DecodeANSI([]byte("C:\\Windows"), nil)
	require.NoError(t, err)
	require.Equal(t, "C:\\Windows", s)

	// 0xE9 is 'é' in Windows-1252.
	s, err = DecodeANSI([]byte{'c', 'a', 'f', 0xE9}, nil)
	require.NoError(t, err)
	require.Equal(t, "café", s)

	// Same byte under code page 437 is 'Θ'.
	s, err = DecodeANSI([]byte{0xE9}, charmap.CodePage437)
	require.NoError(t, err)
	require.Equal(t, "Θ", s)
}

func TestDecodeUTF16(t *testing.T) {
	s, err := DecodeUTF16(EncodeUTF16("abcd_äöüß"))
	require.NoError(t, err)
	require.Equal(t, "abcd_äöüß", s)

	_, err = DecodeUTF16([]byte{0x41})
	require.ErrorIs(t, err, ErrOddLength)
}

func TestCString(t *testing.T) {
	b := []byte("xxC:\\\x00tail")
	got, err := CString(b, 2)
	require.NoError(t, err)
	require.Equal(t, "C:\\", string(got))

	_, err = CString([]byte("abc"), 0)
	require.True(t, errors.Is(err, ErrUnterminated))

	_, err = CString(b, len(b))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestCString16(t *testing.T) {
	b := append([]byte{0xFF, 0xFF}, EncodeUTF16("Share")...)
	b = append(b, 0, 0, 'x', 0)
	got, err := CString16(b, 2)
	require.NoError(t, err)
	s, err := DecodeUTF16(got)
	require.NoError(t, err)
	require.Equal(t, "Share", s)

	_, err = CString16(EncodeUTF16("abc"), 0)
	require.ErrorIs(t, err, ErrUnterminated)
}

func TestFixedStrings(t *testing.T) {
	require.Equal(t, "abc", string(FixedString([]byte("abc\x00\x00junk"))))
	require.Equal(t, "full", string(FixedString([]byte("full"))))
	require.Equal(t, EncodeUTF16("ab"), FixedString16(append(EncodeUTF16("ab"), 0, 0, 'z', 0)))
	require.Equal(t, EncodeUTF16("ab"), FixedString16(append(EncodeUTF16("ab"), 0x41)))
}

func TestResolveCodePage(t *testing.T) {
	enc, err := ResolveCodePage("")
	require.NoError(t, err)
	require.Equal(t, DefaultCodePage, enc)

	enc, err = ResolveCodePage("Shift_JIS")
	require.NoError(t, err)
	require.Equal(t, japanese.ShiftJIS, enc)

	_, err = ResolveCodePage("not-a-code-page")
	require.ErrorIs(t, err, ErrUnknownCodePage)
}
