package lnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func TestDecodeLinkInfo_Local(t *testing.T) {
	raw := testutil.LinkInfoSpec{
		Volume:           &testutil.VolumeSpec{DriveType: 3, SerialNumber: 0xCAFEBABE, Label: "Windows"},
		LocalBasePath:    `C:\Windows\`,
		CommonPathSuffix: "notepad.exe",
	}.Bytes()

	li, n, err := DecodeLinkInfo(append(raw, 0xEE, 0xEE))
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.Equal(t, uint32(format.LinkInfoMinHeaderSize), li.HeaderSize)
	assert.True(t, li.Flags.Has(types.VolumeIDAndLocalBasePath))
	assert.Nil(t, li.CommonNetworkRelativeLink)

	require.NotNil(t, li.VolumeID)
	assert.Equal(t, types.DriveFixed, li.VolumeID.DriveType)
	assert.Equal(t, uint32(0xCAFEBABE), li.VolumeID.DriveSerialNumber)
	assert.Equal(t, "Windows", li.VolumeID.VolumeLabel)
	assert.False(t, li.VolumeID.LabelIsUnicode)

	assert.Equal(t, `C:\Windows\`, li.LocalBasePath)
	assert.Equal(t, "notepad.exe", li.CommonPathSuffix)
	assert.Equal(t, `C:\Windows\notepad.exe`, li.LocalPath())
}

func TestDecodeLinkInfo_UnicodeFields(t *testing.T) {
	raw := testutil.LinkInfoSpec{
		Volume:                  &testutil.VolumeSpec{DriveType: 2, Label: "ДИСК", UnicodeLabel: true},
		LocalBasePath:           `D:\?`,
		LocalBasePathUnicode:    `D:\Документы`,
		CommonPathSuffixUnicode: "отчёт.docx",
	}.Bytes()

	li, _, err := DecodeLinkInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(format.LinkInfoUnicodeHeaderSize), li.HeaderSize)
	assert.True(t, li.VolumeID.LabelIsUnicode)
	assert.Equal(t, uint32(format.VolumeLabelUnicodeMarker), li.VolumeID.VolumeLabelOffset)
	assert.Equal(t, "ДИСК", li.VolumeID.VolumeLabel)
	assert.Equal(t, types.DriveRemovable, li.VolumeID.DriveType)
	assert.Equal(t, `D:\?`, li.LocalBasePath)
	assert.Equal(t, `D:\Документы`, li.LocalBasePathUnicode)
	assert.Equal(t, "отчёт.docx", li.CommonPathSuffixUnicode)
	assert.Equal(t, `D:\Документы\отчёт.docx`, li.LocalPath())
}

func TestDecodeLinkInfo_Network(t *testing.T) {
	raw := testutil.LinkInfoSpec{
		Network: &testutil.NetworkSpec{
			Flags:        3,
			ProviderType: 0x00200000, // WNNC_NET_DECORB
			NetName:      `\\server\share`,
			DeviceName:   "Z:",
		},
		CommonPathSuffix: `docs\a.txt`,
	}.Bytes()

	li, _, err := DecodeLinkInfo(raw)
	require.NoError(t, err)
	assert.Nil(t, li.VolumeID)
	require.NotNil(t, li.CommonNetworkRelativeLink)
	cnrl := li.CommonNetworkRelativeLink
	assert.Equal(t, `\\server\share`, cnrl.NetName)
	assert.Equal(t, "Z:", cnrl.DeviceName)
	assert.Equal(t, types.NetProviderDecorb, cnrl.NetworkProviderType)
	assert.Empty(t, cnrl.NetNameUnicode)
	assert.Equal(t, `\\server\share\docs\a.txt`, li.NetworkPath())
}

func TestDecodeLinkInfo_NetworkProviderIgnoredWithoutValidNetType(t *testing.T) {
	raw := testutil.LinkInfoSpec{
		Network: &testutil.NetworkSpec{
			Flags:        0,
			ProviderType: 0xDEADBEEF,
			NetName:      `\\host\c$`,
			DeviceName:   "Y:",
		},
	}.Bytes()

	li, _, err := DecodeLinkInfo(raw)
	require.NoError(t, err)
	cnrl := li.CommonNetworkRelativeLink
	assert.Equal(t, types.NetProviderNone, cnrl.NetworkProviderType)
	assert.Equal(t, uint32(0xDEADBEEF), cnrl.NetworkProviderTypeRaw)
	assert.Empty(t, cnrl.DeviceName, "device name is only read with ValidDevice")
}

func TestDecodeLinkInfo_NetworkUnicode(t *testing.T) {
	raw := testutil.LinkInfoSpec{
		Network: &testutil.NetworkSpec{
			Flags:             1,
			NetName:           `\\srv\x`,
			DeviceName:        "X:",
			NetNameUnicode:    `\\сервер\x`,
			DeviceNameUnicode: "X:",
		},
	}.Bytes()

	li, _, err := DecodeLinkInfo(raw)
	require.NoError(t, err)
	cnrl := li.CommonNetworkRelativeLink
	assert.Equal(t, uint32(0x1C), cnrl.NetNameOffset)
	assert.Equal(t, `\\сервер\x`, cnrl.NetNameUnicode)
	assert.Equal(t, "X:", cnrl.DeviceNameUnicode)
	assert.Equal(t, `\\сервер\x`, li.NetworkPath())
}

func TestDecodeLinkInfo_CodePage(t *testing.T) {
	raw := testutil.LinkInfoSpec{
		Volume:        &testutil.VolumeSpec{DriveType: 3},
		LocalBasePath: "C:\\\x82\xA0", // CP437: "é", "á"
	}.Bytes()

	li, _, err := DecodeLinkInfo(raw, WithCodePage(charmap.CodePage437))
	require.NoError(t, err)
	assert.Equal(t, `C:\éá`, li.LocalBasePath)

	li, _, err = DecodeLinkInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, "C:\\\u201a\u00a0", li.LocalBasePath)
}

func TestDecodeLinkInfo_Errors(t *testing.T) {
	valid := func() []byte {
		return testutil.LinkInfoSpec{
			Volume:           &testutil.VolumeSpec{DriveType: 3, Label: "L"},
			LocalBasePath:    `C:\`,
			CommonPathSuffix: "x",
		}.Bytes()
	}
	// valid() places the VolumeID right after the header.
	const volumeOff = format.LinkInfoMinHeaderSize

	tests := []struct {
		name     string
		mutate   func([]byte) []byte
		sentinel error
		field    string
	}{
		{
			name:     "short buffer",
			mutate:   func(b []byte) []byte { return b[:3] },
			sentinel: types.ErrLinkInfoBounds,
			field:    "LinkInfoSize",
		},
		{
			name: "size below minimum",
			mutate: func(b []byte) []byte {
				format.PutU32(b, format.LinkInfoSizeOffset, 0x1B)
				return b
			},
			sentinel: types.ErrBlockTooSmall,
			field:    "LinkInfoSize",
		},
		{
			name: "size past buffer",
			mutate: func(b []byte) []byte {
				format.PutU32(b, format.LinkInfoSizeOffset, uint32(len(b)+1))
				return b
			},
			sentinel: types.ErrLinkInfoBounds,
			field:    "LinkInfoSize",
		},
		{
			name: "header size past size",
			mutate: func(b []byte) []byte {
				format.PutU32(b, format.LinkInfoHeaderSizeOffset, uint32(len(b)+4))
				return b
			},
			sentinel: types.ErrLinkInfoBounds,
			field:    "LinkInfoHeaderSize",
		},
		{
			name: "unknown flags",
			mutate: func(b []byte) []byte {
				format.PutU32(b, format.LinkInfoFlagsOffset, 0x5)
				return b
			},
			sentinel: types.ErrLinkInfoFlags,
			field:    "LinkInfoFlags",
		},
		{
			name: "volume offset out of range",
			mutate: func(b []byte) []byte {
				format.PutU32(b, format.LinkInfoVolumeIDOffsetOffset, uint32(len(b)))
				return b
			},
			sentinel: types.ErrLinkInfoBounds,
			field:    "VolumeIDOffset",
		},
		{
			name: "suffix offset out of range",
			mutate: func(b []byte) []byte {
				format.PutU32(b, format.LinkInfoCommonPathSuffixOffsetOffset, 0xFFFFFFFF)
				return b
			},
			sentinel: types.ErrLinkInfoBounds,
			field:    "CommonPathSuffixOffset",
		},
		{
			name: "invalid drive type",
			mutate: func(b []byte) []byte {
				format.PutU32(b, volumeOff+format.VolumeDriveTypeOffset, 7)
				return b
			},
			sentinel: types.ErrDriveType,
			field:    "DriveType",
		},
		{
			name: "volume id too small",
			mutate: func(b []byte) []byte {
				format.PutU32(b, volumeOff+format.VolumeIDSizeOffset, 0x0C)
				return b
			},
			sentinel: types.ErrBlockTooSmall,
			field:    "VolumeIDSize",
		},
		{
			name: "volume id past link info",
			mutate: func(b []byte) []byte {
				format.PutU32(b, volumeOff+format.VolumeIDSizeOffset, 0x400)
				return b
			},
			sentinel: types.ErrLinkInfoBounds,
			field:    "VolumeIDSize",
		},
		{
			name: "unterminated suffix",
			mutate: func(b []byte) []byte {
				b[len(b)-1] = 'y'
				return b
			},
			sentinel: types.ErrLinkInfoBounds,
			field:    "CommonPathSuffixOffset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeLinkInfo(tt.mutate(valid()))
			fe := requireFieldError(t, err, tt.sentinel)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestDecodeLinkInfo_NetworkErrors(t *testing.T) {
	t.Run("invalid provider", func(t *testing.T) {
		raw := testutil.LinkInfoSpec{
			Network: &testutil.NetworkSpec{Flags: 2, ProviderType: 0x00280000, NetName: `\\a\b`},
		}.Bytes()
		_, _, err := DecodeLinkInfo(raw)
		fe := requireFieldError(t, err, types.ErrNetworkProviderType)
		assert.Equal(t, uint64(0x00280000), fe.Value)
	})
	t.Run("unknown flags", func(t *testing.T) {
		raw := testutil.LinkInfoSpec{
			Network: &testutil.NetworkSpec{Flags: 4, NetName: `\\a\b`},
		}.Bytes()
		_, _, err := DecodeLinkInfo(raw)
		requireFieldError(t, err, types.ErrNetworkLinkFlags)
	})
	t.Run("size below minimum", func(t *testing.T) {
		raw := testutil.LinkInfoSpec{
			Network: &testutil.NetworkSpec{NetName: `\\a\b`},
		}.Bytes()
		cnrlOff := int(format.LinkInfoMinHeaderSize)
		format.PutU32(raw, cnrlOff, 0x10)
		_, _, err := DecodeLinkInfo(raw)
		fe := requireFieldError(t, err, types.ErrBlockTooSmall)
		assert.Equal(t, "CommonNetworkRelativeLink", fe.Structure)
	})
}
