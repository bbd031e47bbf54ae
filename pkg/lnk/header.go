package lnk

import (
	"bytes"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeHeader decodes the fixed 76-byte ShellLinkHeader at the start of b.
// Bytes past the header are ignored.
func DecodeHeader(b []byte) (types.ShellLinkHeader, error) {
	var h types.ShellLinkHeader
	if len(b) < format.HeaderSize {
		return h, fieldErr(structHeader, "", -1, uint64(len(b)), types.ErrHeaderLength)
	}

	if size := buf.U32LE(b[format.HeaderSizeOffset:]); size != format.HeaderSize {
		return h, fieldErr(structHeader, "HeaderSize", format.HeaderSizeOffset, uint64(size), types.ErrHeaderSize)
	}
	if !bytes.Equal(b[format.LinkCLSIDOffset:format.LinkFlagsOffset], format.LinkCLSID) {
		return h, fieldErr(structHeader, "LinkCLSID", format.LinkCLSIDOffset, 0, types.ErrLinkCLSID)
	}

	flags, err := types.ParseLinkFlags(buf.U32LE(b[format.LinkFlagsOffset:]))
	if err != nil {
		return h, atOffset(err, format.LinkFlagsOffset)
	}
	attrs, err := types.ParseFileAttributes(buf.U32LE(b[format.FileAttributesOffset:]))
	if err != nil {
		return h, atOffset(err, format.FileAttributesOffset)
	}
	hotKey, err := decodeHotKey(b[format.HotKeyOffset], b[format.HotKeyModifierOffset])
	if err != nil {
		return h, err
	}

	h = types.ShellLinkHeader{
		LinkFlags:      flags,
		FileAttributes: attrs,
		CreationTime:   types.NewFiletime(buf.U64LE(b[format.CreationTimeOffset:])),
		AccessTime:     types.NewFiletime(buf.U64LE(b[format.AccessTimeOffset:])),
		WriteTime:      types.NewFiletime(buf.U64LE(b[format.WriteTimeOffset:])),
		FileSize:       buf.U32LE(b[format.FileSizeOffset:]),
		IconIndex:      buf.I32LE(b[format.IconIndexOffset:]),
		ShowCommand:    types.ShowCommandFromWire(buf.U32LE(b[format.ShowCommandOffset:])),
		HotKey:         hotKey,
	}
	return h, nil
}

// decodeHotKey returns nil when both bytes are zero (no shortcut assigned).
func decodeHotKey(key, mod uint8) (*types.HotKeyFlags, error) {
	if key == 0 && mod == 0 {
		return nil, nil
	}
	k, ok := types.HotKeyFromWire(key)
	if !ok {
		return nil, fieldErr(structHeader, "HotKey", format.HotKeyOffset, uint64(key), types.ErrHotKey)
	}
	m, ok := types.HotKeyModifierFromWire(mod)
	if !ok {
		return nil, fieldErr(structHeader, "HotKeyModifier", format.HotKeyModifierOffset, uint64(mod), types.ErrHotKeyModifier)
	}
	return &types.HotKeyFlags{Key: k, Modifier: m}, nil
}
