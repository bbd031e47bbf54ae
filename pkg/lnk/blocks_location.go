package lnk

import (
	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func decodeTracker(blk []byte, cfg *config) (types.ExtraDataBlock, error) {
	const name = "TrackerDataBlock"
	if err := minSize(name, blk, format.TrackerMinSize); err != nil {
		return nil, err
	}
	length := buf.U32LE(blk[format.TrackerLengthOffset:])
	if length < format.TrackerMinLength {
		return nil, fieldErr(name, "Length", format.TrackerLengthOffset, uint64(length), types.ErrExtraDataSize)
	}
	machine, err := fixedANSI(name, "MachineID", blk, format.TrackerMachineIDOffset, format.TrackerMachineIDLen, cfg)
	if err != nil {
		return nil, err
	}

	t := &types.TrackerDataBlock{
		Size:      uint32(len(blk)),
		Length:    length,
		Version:   buf.U32LE(blk[format.TrackerVersionOffset:]),
		MachineID: machine,
	}
	for i := range 2 {
		// Cannot fail: len(blk) >= TrackerMinSize.
		t.Droid[i], _ = format.GUIDFromBytes(blk[format.TrackerDroidOffset+i*format.GUIDSize:])
		t.DroidBirth[i], _ = format.GUIDFromBytes(blk[format.TrackerDroidBirthOffset+i*format.GUIDSize:])
	}
	return t, nil
}

func decodeSpecialFolder(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	if err := exactSize("SpecialFolderDataBlock", blk, format.SpecialFolderSize); err != nil {
		return nil, err
	}
	return &types.SpecialFolderDataBlock{
		Size:            uint32(len(blk)),
		SpecialFolderID: buf.U32LE(blk[format.SpecialFolderIDOffset:]),
		Offset:          buf.U32LE(blk[format.SpecialFolderItemOffset:]),
	}, nil
}

func decodeKnownFolder(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	const name = "KnownFolderDataBlock"
	if err := exactSize(name, blk, format.KnownFolderSize); err != nil {
		return nil, err
	}
	id, err := format.GUIDFromBytes(blk[format.KnownFolderIDOffset:])
	if err != nil {
		return nil, fieldErr(name, "KnownFolderID", format.KnownFolderIDOffset, 0, types.ErrExtraDataTruncated)
	}
	return &types.KnownFolderDataBlock{
		Size:          uint32(len(blk)),
		KnownFolderID: id,
		Offset:        buf.U32LE(blk[format.KnownFolderItemOffset:]),
	}, nil
}

// decodePropertyStore keeps the payload verbatim. It is parsed on demand by
// PropertyStoreDataBlock.Storages.
func decodePropertyStore(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	if err := minSize("PropertyStoreDataBlock", blk, format.PropertyStoreMinSize); err != nil {
		return nil, err
	}
	return &types.PropertyStoreDataBlock{
		Size: uint32(len(blk)),
		Data: buf.Clone(blk[format.PropertyStoreDataOffset:]),
	}, nil
}

func decodeVistaAndAboveIDList(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	const name = "VistaAndAboveIDListDataBlock"
	if err := minSize(name, blk, format.VistaAndAboveIDListMinSize); err != nil {
		return nil, err
	}
	items, err := walkItemIDs(blk[format.VistaAndAboveIDListOffset:], name, format.VistaAndAboveIDListOffset)
	if err != nil {
		return nil, err
	}
	return &types.VistaAndAboveIDListDataBlock{
		Size:   uint32(len(blk)),
		IDList: types.IDList{Items: items},
	}, nil
}
