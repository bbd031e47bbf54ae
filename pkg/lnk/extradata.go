package lnk

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// blockDecoder decodes one framed block. blk spans the whole block,
// including its 8-byte size/signature header, and len(blk) == BlockSize.
type blockDecoder func(blk []byte, cfg *config) (types.ExtraDataBlock, error)

var blockDecoders = map[uint32]blockDecoder{
	format.EnvironmentVariableSignature: decodeEnvironmentVariable,
	format.ConsoleSignature:             decodeConsole,
	format.TrackerSignature:             decodeTracker,
	format.ConsoleFESignature:           decodeConsoleFE,
	format.SpecialFolderSignature:       decodeSpecialFolder,
	format.DarwinSignature:              decodeDarwin,
	format.IconEnvironmentSignature:     decodeIconEnvironment,
	format.ShimSignature:                decodeShim,
	format.PropertyStoreSignature:       decodePropertyStore,
	format.KnownFolderSignature:         decodeKnownFolder,
	format.VistaAndAboveIDListSignature: decodeVistaAndAboveIDList,
}

// DecodeExtraData decodes ExtraData blocks from the start of b until a
// terminal block (BlockSize < 4) or the end of b. Blocks with unknown
// signatures are kept as *types.UnknownBlock. It returns the blocks and the
// number of bytes consumed, terminal block included.
func DecodeExtraData(b []byte, opts ...Option) ([]types.ExtraDataBlock, int, error) {
	return decodeExtraData(b, newConfig(opts))
}

func decodeExtraData(b []byte, cfg *config) ([]types.ExtraDataBlock, int, error) {
	var blocks []types.ExtraDataBlock
	off := 0
	for {
		size, ok := buf.U32At(b, off+format.BlockSizeOffset)
		if !ok {
			cfg.debug("extra data ended without terminal block", "offset", off, "trailing", len(b)-off)
			return blocks, off, nil
		}
		if size < format.TerminalBlockMax {
			return blocks, off + format.BlockSizeLen, nil
		}
		if size < format.BlockHeaderSize {
			return nil, 0, fieldErr(structExtraData, "BlockSize", off, uint64(size), types.ErrExtraDataTruncated)
		}
		blk, ok := buf.Slice(b, off, int(size))
		if !ok {
			return nil, 0, fieldErr(structExtraData, "BlockSize", off, uint64(size), types.ErrExtraDataTruncated)
		}

		sig := buf.U32LE(blk[format.BlockSignatureOffset:])
		decode, known := blockDecoders[sig]
		if !known {
			cfg.debug("skipping unknown extra data block",
				"signature", fmt.Sprintf("0x%08X", sig), "size", size, "offset", off)
			blocks = append(blocks, &types.UnknownBlock{
				Size:         size,
				RawSignature: sig,
				Data:         buf.Clone(blk[format.BlockDataOffset:]),
			})
			off += int(size)
			continue
		}

		block, err := decode(blk, cfg)
		if err != nil {
			return nil, 0, err
		}
		cfg.debug("decoded extra data block", "block", block.BlockName(), "size", size, "offset", off)
		blocks = append(blocks, block)
		off += int(size)
	}
}

// exactSize and minSize validate a block's declared size for its signature.
func exactSize(name string, blk []byte, want int) error {
	if len(blk) != want {
		return fieldErr(name, "BlockSize", format.BlockSizeOffset, uint64(len(blk)), types.ErrExtraDataSize)
	}
	return nil
}

func minSize(name string, blk []byte, want int) error {
	if len(blk) < want {
		return fieldErr(name, "BlockSize", format.BlockSizeOffset, uint64(len(blk)), types.ErrExtraDataSize)
	}
	return nil
}

// fixedANSI decodes a NUL-padded ANSI field of n bytes at off.
func fixedANSI(name, field string, blk []byte, off, n int, cfg *config) (string, error) {
	s, err := cfg.ansi(format.FixedString(blk[off : off+n]))
	if err != nil {
		return "", fieldErr(name, field, off, 0, types.ErrStringEncoding)
	}
	return s, nil
}

// fixedUTF16 decodes a NUL-padded UTF-16LE field of n bytes at off.
func fixedUTF16(name, field string, blk []byte, off, n int) (string, error) {
	s, err := format.DecodeUTF16(format.FixedString16(blk[off : off+n]))
	if err != nil {
		return "", fieldErr(name, field, off, 0, types.ErrStringEncoding)
	}
	return s, nil
}
