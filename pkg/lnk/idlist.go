package lnk

import (
	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeIDList decodes a LinkTargetIDList at the start of b and returns it
// with the number of bytes it occupies (the size prefix plus IDListSize).
func DecodeIDList(b []byte) (*types.IDList, int, error) {
	size, ok := buf.U16At(b, 0)
	if !ok {
		return nil, 0, fieldErr(structIDList, "IDListSize", 0, uint64(len(b)), types.ErrIDListTruncated)
	}
	body, ok := buf.Slice(b, format.IDListSizeLen, int(size))
	if !ok {
		return nil, 0, fieldErr(structIDList, "IDListSize", 0, uint64(size), types.ErrIDListTruncated)
	}
	items, err := walkItemIDs(body, structIDList, format.IDListSizeLen)
	if err != nil {
		return nil, 0, err
	}
	return &types.IDList{Size: size, Items: items}, format.IDListSizeLen + int(size), nil
}

// walkItemIDs decodes ItemID records from b up to the zero-size terminator.
// b is the bound: no record may extend past it. base is b's offset within
// the named structure, for error reporting.
func walkItemIDs(b []byte, structure string, base int) ([]types.ItemID, error) {
	var items []types.ItemID
	off := 0
	for {
		size, ok := buf.U16At(b, off)
		if !ok {
			return nil, fieldErr(structure, "ItemIDSize", base+off, uint64(len(b)-off), types.ErrIDListTruncated)
		}
		if size == 0 {
			return items, nil
		}
		if size < format.ItemIDSizeLen {
			return nil, fieldErr(structure, "ItemIDSize", base+off, uint64(size), types.ErrIDListTruncated)
		}
		rec, ok := buf.Slice(b, off, int(size))
		if !ok {
			return nil, fieldErr(structure, "ItemIDSize", base+off, uint64(size), types.ErrIDListBounds)
		}
		items = append(items, types.ItemID{
			Size: size,
			Data: buf.Clone(rec[format.ItemIDSizeLen:]),
		})
		off += int(size)
	}
}
