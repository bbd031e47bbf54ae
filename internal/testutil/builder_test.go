package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
)

func TestBuilderMinimalLink(t *testing.T) {
	b := NewBuilder().Bytes()
	require.Len(t, b, format.HeaderSize+4)
	assert.Equal(t, uint32(format.HeaderSize), buf.U32LE(b))
	assert.Equal(t, format.LinkCLSID, b[format.LinkCLSIDOffset:format.LinkFlagsOffset])
	assert.Equal(t, uint32(1), buf.U32LE(b[format.ShowCommandOffset:]))
}

func TestBuilderSectionsInOrder(t *testing.T) {
	b := NewBuilder().
		WithIDList([]byte{1, 2, 3, 4}).
		WithString(0, "hi").
		Bytes()

	flags := buf.U32LE(b[format.LinkFlagsOffset:])
	assert.Equal(t, uint32(FlagHasLinkTargetIDList|FlagHasName), flags)

	rest := b[format.HeaderSize:]
	assert.Equal(t, []byte{8, 0, 6, 0, 1, 2, 3, 4, 0, 0}, rest[:10])
	assert.Equal(t, []byte{2, 0, 'h', 'i'}, rest[10:14])
	assert.Equal(t, []byte{0, 0, 0, 0}, rest[14:])
}

func TestLinkInfoSpecOffsets(t *testing.T) {
	li := LinkInfoSpec{
		Volume:           &VolumeSpec{DriveType: 3, SerialNumber: 0x1234, Label: "SYS"},
		LocalBasePath:    `C:\`,
		CommonPathSuffix: "",
	}.Bytes()

	size := buf.U32LE(li)
	assert.Equal(t, uint32(len(li)), size)
	assert.Equal(t, uint32(format.LinkInfoMinHeaderSize), buf.U32LE(li[format.LinkInfoHeaderSizeOffset:]))
	volOff := buf.U32LE(li[format.LinkInfoVolumeIDOffsetOffset:])
	assert.Equal(t, uint32(format.LinkInfoMinHeaderSize), volOff)
	assert.Equal(t, uint32(3), buf.U32LE(li[volOff+format.VolumeDriveTypeOffset:]))
}

func TestExpandableStringBlockSize(t *testing.T) {
	blk := ExpandableStringBlock(format.EnvironmentVariableSignature, "a", "b")
	assert.Len(t, blk, format.EnvironmentVariableSize)
	assert.Len(t, ConsoleProps{}.Bytes(), format.ConsoleSize)
	assert.Len(t, ShimBlock("x"), format.ShimMinSize)
	assert.Len(t, KnownFolderBlock([16]byte{}, 0), format.KnownFolderSize)
	assert.Len(t, SpecialFolderBlock(0, 0), format.SpecialFolderSize)
	assert.Len(t, ConsoleFEBlock(0), format.ConsoleFESize)
}
