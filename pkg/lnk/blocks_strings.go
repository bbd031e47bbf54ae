package lnk

import (
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// expandableStrings decodes the ANSI/Unicode pair shared by the
// EnvironmentVariable, IconEnvironment and Darwin blocks.
func expandableStrings(name string, blk []byte, want int, cfg *config) (string, string, error) {
	if err := exactSize(name, blk, want); err != nil {
		return "", "", err
	}
	ansi, err := fixedANSI(name, "TargetAnsi", blk, format.ExpandableStringANSIOffset, format.ExpandableStringANSILen, cfg)
	if err != nil {
		return "", "", err
	}
	uni, err := fixedUTF16(name, "TargetUnicode", blk, format.ExpandableStringUnicodeOffset, format.ExpandableStringUnicodeLen)
	if err != nil {
		return "", "", err
	}
	return ansi, uni, nil
}

func decodeEnvironmentVariable(blk []byte, cfg *config) (types.ExtraDataBlock, error) {
	const name = "EnvironmentVariableDataBlock"
	ansi, uni, err := expandableStrings(name, blk, format.EnvironmentVariableSize, cfg)
	if err != nil {
		return nil, err
	}
	return &types.EnvironmentVariableDataBlock{Size: uint32(len(blk)), TargetANSI: ansi, TargetUnicode: uni}, nil
}

func decodeIconEnvironment(blk []byte, cfg *config) (types.ExtraDataBlock, error) {
	const name = "IconEnvironmentDataBlock"
	ansi, uni, err := expandableStrings(name, blk, format.IconEnvironmentSize, cfg)
	if err != nil {
		return nil, err
	}
	return &types.IconEnvironmentDataBlock{Size: uint32(len(blk)), TargetANSI: ansi, TargetUnicode: uni}, nil
}

func decodeDarwin(blk []byte, cfg *config) (types.ExtraDataBlock, error) {
	const name = "DarwinDataBlock"
	ansi, uni, err := expandableStrings(name, blk, format.DarwinSize, cfg)
	if err != nil {
		return nil, err
	}
	return &types.DarwinDataBlock{Size: uint32(len(blk)), DarwinDataANSI: ansi, DarwinDataUnicode: uni}, nil
}

// decodeShim reads the layer name, which fills the rest of the block.
func decodeShim(blk []byte, _ *config) (types.ExtraDataBlock, error) {
	const name = "ShimDataBlock"
	if err := minSize(name, blk, format.ShimMinSize); err != nil {
		return nil, err
	}
	layer, err := fixedUTF16(name, "LayerName", blk, format.ShimLayerNameOffset, len(blk)-format.ShimLayerNameOffset)
	if err != nil {
		return nil, err
	}
	return &types.ShimDataBlock{Size: uint32(len(blk)), LayerName: layer}, nil
}
