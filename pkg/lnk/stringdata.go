package lnk

import (
	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeStringData decodes the StringData entries announced by flags, in
// wire order, from the start of b. It returns the strings and the number of
// bytes consumed. Counts are in characters: bytes when IsUnicode is clear,
// UTF-16 code units when it is set. No terminator is read.
func DecodeStringData(b []byte, flags types.LinkFlags, opts ...Option) (types.StringData, int, error) {
	return decodeStringData(b, flags, newConfig(opts))
}

func decodeStringData(b []byte, flags types.LinkFlags, cfg *config) (types.StringData, int, error) {
	var sd types.StringData
	unit := 1
	if flags.Has(types.IsUnicode) {
		unit = 2
	}

	off := 0
	for _, kind := range types.StringKinds {
		if !flags.Has(kind.Flag()) {
			continue
		}
		count, ok := buf.U16At(b, off)
		if !ok {
			return sd, 0, fieldErr(structStringData, kind.String(), off, uint64(len(b)-off), types.ErrStringDataTruncated)
		}
		raw, ok := buf.Slice(b, off+format.StringCountLen, int(count)*unit)
		if !ok {
			return sd, 0, fieldErr(structStringData, kind.String(), off, uint64(count), types.ErrStringDataTruncated)
		}

		var s string
		var err error
		if unit == 2 {
			s, err = format.DecodeUTF16(raw)
		} else {
			s, err = cfg.ansi(raw)
		}
		if err != nil {
			return sd, 0, fieldErr(structStringData, kind.String(), off, uint64(count), types.ErrStringEncoding)
		}
		sd.Set(kind, s)
		off += format.StringCountLen + len(raw)
	}
	return sd, off, nil
}
