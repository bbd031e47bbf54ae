package lnk

import (
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Decode decodes a complete shell link held in b.
//
// Sections are decoded in wire order: header, LinkTargetIDList (when
// HasLinkTargetIDList is set), LinkInfo (when HasLinkInfo is set),
// StringData, then ExtraData up to its terminal block or the end of b.
// The first structural error aborts the decode; no partial link is returned.
//
// b is only read. The returned link shares no memory with it, so the caller
// may reuse or unmap b as soon as Decode returns.
func Decode(b []byte, opts ...Option) (*ShellLink, error) {
	cfg := newConfig(opts)

	header, err := DecodeHeader(b)
	if err != nil {
		return nil, err
	}
	link := &types.ShellLink{Header: header}
	flags := header.LinkFlags
	off := format.HeaderSize
	cfg.debug("decoded header", "flags", flags.String(), "attributes", header.FileAttributes.String())

	if flags.Has(types.HasLinkTargetIDList) {
		idl, n, err := DecodeIDList(b[off:])
		if err != nil {
			return nil, err
		}
		cfg.debug("decoded id list", "offset", off, "size", n, "items", idl.Len())
		link.IDList = idl
		off += n
	}

	if flags.Has(types.HasLinkInfo) {
		li, n, err := decodeLinkInfo(b[off:], cfg)
		if err != nil {
			return nil, err
		}
		cfg.debug("decoded link info", "offset", off, "size", n, "flags", li.Flags.String())
		link.LinkInfo = li
		off += n
	}

	sd, n, err := decodeStringData(b[off:], flags, cfg)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		cfg.debug("decoded string data", "offset", off, "size", n)
	}
	link.StringData = sd
	off += n

	blocks, n, err := decodeExtraData(b[off:], cfg)
	if err != nil {
		return nil, err
	}
	cfg.debug("decoded extra data", "offset", off, "size", n, "blocks", len(blocks))
	link.ExtraData = blocks

	return link, nil
}
