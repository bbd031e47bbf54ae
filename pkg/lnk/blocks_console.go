package lnk

import (
	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

const (
	fontFamilyMask = 0xF0
	fontPitchMask  = 0x0F
)

func decodeConsole(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	const name = "ConsoleDataBlock"
	if err := exactSize(name, blk, format.ConsoleSize); err != nil {
		return nil, err
	}

	rawFamily := buf.U32LE(blk[format.ConsoleFontFamilyOffset:])
	family, ok := types.FontFamilyFromWire(rawFamily & fontFamilyMask)
	if !ok {
		return nil, fieldErr(name, "FontFamily", format.ConsoleFontFamilyOffset, uint64(rawFamily), types.ErrFontFamily)
	}
	face, err := fixedUTF16(name, "FaceName", blk, format.ConsoleFaceNameOffset, format.ConsoleFaceNameLen)
	if err != nil {
		return nil, err
	}

	c := &types.ConsoleDataBlock{
		Size:                   uint32(len(blk)),
		FillAttributes:         types.FillAttributes(buf.U16LE(blk[format.ConsoleFillAttributesOffset:])),
		PopupFillAttributes:    types.FillAttributes(buf.U16LE(blk[format.ConsolePopupFillAttributesOffset:])),
		ScreenBufferSizeX:      buf.I16LE(blk[format.ConsoleScreenBufferSizeXOffset:]),
		ScreenBufferSizeY:      buf.I16LE(blk[format.ConsoleScreenBufferSizeYOffset:]),
		WindowSizeX:            buf.I16LE(blk[format.ConsoleWindowSizeXOffset:]),
		WindowSizeY:            buf.I16LE(blk[format.ConsoleWindowSizeYOffset:]),
		WindowOriginX:          buf.I16LE(blk[format.ConsoleWindowOriginXOffset:]),
		WindowOriginY:          buf.I16LE(blk[format.ConsoleWindowOriginYOffset:]),
		FontSize:               buf.U32LE(blk[format.ConsoleFontSizeOffset:]),
		FontFamily:             family,
		FontPitch:              types.FontPitch(rawFamily & fontPitchMask),
		FontWeight:             buf.U32LE(blk[format.ConsoleFontWeightOffset:]),
		FaceName:               face,
		CursorSize:             buf.U32LE(blk[format.ConsoleCursorSizeOffset:]),
		FullScreen:             buf.U32LE(blk[format.ConsoleFullScreenOffset:]) != 0,
		QuickEdit:              buf.U32LE(blk[format.ConsoleQuickEditOffset:]) != 0,
		InsertMode:             buf.U32LE(blk[format.ConsoleInsertModeOffset:]) != 0,
		AutoPosition:           buf.U32LE(blk[format.ConsoleAutoPositionOffset:]) != 0,
		HistoryBufferSize:      buf.U32LE(blk[format.ConsoleHistoryBufferSizeOffset:]),
		NumberOfHistoryBuffers: buf.U32LE(blk[format.ConsoleHistoryBufferCountOffset:]),
		HistoryNoDup:           buf.U32LE(blk[format.ConsoleHistoryNoDupOffset:]) != 0,
	}
	for i := range c.ColorTable {
		c.ColorTable[i] = buf.U32LE(blk[format.ConsoleColorTableOffset+4*i:])
	}
	return c, nil
}

func decodeConsoleFE(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	if err := exactSize("ConsoleFEDataBlock", blk, format.ConsoleFESize); err != nil {
		return nil, err
	}
	return &types.ConsoleFEDataBlock{
		Size:     uint32(len(blk)),
		CodePage: buf.U32LE(blk[format.ConsoleFECodePageOffset:]),
	}, nil
}
