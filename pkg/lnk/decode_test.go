package lnk

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// notepadLink builds a link exercising every section.
func notepadLink() []byte {
	li := testutil.LinkInfoSpec{
		Volume:        &testutil.VolumeSpec{DriveType: 3, SerialNumber: 0x1C2B3A49, Label: "OS"},
		LocalBasePath: `C:\Windows\notepad.exe`,
	}
	b := testutil.NewBuilder()
	b.Attributes = uint32(types.FileAttributeArchive)
	b.WriteTime = 132512544000000000
	b.FileSize = 201216
	b.HotKey = 0x4E         // N
	b.HotKeyModifier = 0x06 // Ctrl+Alt
	return b.
		WithFlags(testutil.FlagIsUnicode).
		WithIDList([]byte{0x1F, 0x50, 0xE0, 0x4F}, []byte{0x2F, 'C', ':', '\\', 0}).
		WithLinkInfo(li.Bytes()).
		WithString(int(types.StringName), "Text editor").
		WithString(int(types.StringWorkingDir), `%HOMEDRIVE%%HOMEPATH%`).
		WithExtraBlock(testutil.ExpandableStringBlock(format.EnvironmentVariableSignature, `%windir%\notepad.exe`, `%windir%\notepad.exe`)).
		WithExtraBlock(testutil.SpecialFolderBlock(0x25, 0xDD)).
		WithExtraBlock(testutil.KnownFolderBlock(uuid.MustParse("1ac14e77-02e7-4e5d-b744-2eb1ae5198b7"), 0xDD)).
		Bytes()
}

func TestDecode_FullLink(t *testing.T) {
	link, err := Decode(notepadLink())
	require.NoError(t, err)

	h := link.Header
	assert.True(t, h.LinkFlags.Has(types.HasLinkTargetIDList|types.HasLinkInfo|types.IsUnicode))
	assert.Equal(t, uint32(201216), h.FileSize)
	require.NotNil(t, h.WriteTime)
	assert.Equal(t, 2020, h.WriteTime.Year)
	assert.Nil(t, h.CreationTime)
	require.NotNil(t, h.HotKey)
	assert.Equal(t, "Ctrl+Alt+N", h.HotKey.String())

	require.NotNil(t, link.IDList)
	assert.Equal(t, 2, link.IDList.Len())

	require.NotNil(t, link.LinkInfo)
	require.NotNil(t, link.LinkInfo.VolumeID)
	assert.Equal(t, types.DriveFixed, link.LinkInfo.VolumeID.DriveType)
	assert.Equal(t, "OS", link.LinkInfo.VolumeID.VolumeLabel)
	assert.Equal(t, `C:\Windows\notepad.exe`, link.TargetPath())

	name, ok := link.StringData.Get(types.StringName)
	require.True(t, ok)
	assert.Equal(t, "Text editor", name)
	_, ok = link.StringData.Get(types.StringArguments)
	assert.False(t, ok)

	require.Len(t, link.ExtraData, 3)
	env, ok := link.EnvironmentVariables()
	require.True(t, ok)
	assert.Equal(t, `%windir%\notepad.exe`, env.Target())
	sf, ok := link.SpecialFolder()
	require.True(t, ok)
	assert.Equal(t, uint32(0x25), sf.SpecialFolderID)
	kf, ok := link.KnownFolder()
	require.True(t, ok)
	assert.Equal(t, "1ac14e77-02e7-4e5d-b744-2eb1ae5198b7", kf.KnownFolderID.String())
	_, ok = link.Tracker()
	assert.False(t, ok)
}

func TestDecode_MinimalLink(t *testing.T) {
	link, err := Decode(testutil.NewBuilder().Bytes())
	require.NoError(t, err)
	assert.Nil(t, link.IDList)
	assert.Nil(t, link.LinkInfo)
	assert.Equal(t, types.StringData{}, link.StringData)
	assert.Empty(t, link.ExtraData)
	assert.Empty(t, link.TargetPath())
}

func TestDecode_HeaderOnly(t *testing.T) {
	// No terminal block at all is accepted.
	link, err := Decode(testutil.NewBuilder().Header())
	require.NoError(t, err)
	assert.Empty(t, link.ExtraData)
}

func TestDecode_Deterministic(t *testing.T) {
	data := notepadLink()
	first, err := Decode(data)
	require.NoError(t, err)
	second, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_DoesNotMutateOrAliasInput(t *testing.T) {
	data := notepadLink()
	orig := bytes.Clone(data)

	link, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, orig, data)

	want := bytes.Clone(link.IDList.Items[0].Data)
	for i := range data {
		data[i] = 0xCC
	}
	assert.Equal(t, want, link.IDList.Items[0].Data)
}

func TestDecode_Concurrent(t *testing.T) {
	data := notepadLink()
	want, err := Decode(data)
	require.NoError(t, err)

	var g errgroup.Group
	results := make([]*ShellLink, 16)
	for i := range results {
		g.Go(func() error {
			link, err := Decode(data)
			results[i] = link
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestDecode_FailFast(t *testing.T) {
	tests := []struct {
		name     string
		data     func() []byte
		sentinel error
	}{
		{
			name: "bad clsid",
			data: func() []byte {
				b := testutil.NewBuilder()
				b.CLSID = make([]byte, 16)
				return b.Bytes()
			},
			sentinel: types.ErrLinkCLSID,
		},
		{
			name: "id list past end",
			data: func() []byte {
				return testutil.NewBuilder().WithRawIDList([]byte{0x40, 0x00, 0x00}).WithTrailer([]byte{}).Bytes()
			},
			sentinel: types.ErrIDListTruncated,
		},
		{
			name: "string past end",
			data: func() []byte {
				raw := testutil.NewBuilder().WithString(int(types.StringName), "abcdef").WithTrailer([]byte{}).Bytes()
				return raw[:len(raw)-2]
			},
			sentinel: types.ErrStringDataTruncated,
		},
		{
			name: "bad extra block",
			data: func() []byte {
				return testutil.NewBuilder().
					WithExtraBlock(testutil.ConsoleFEBlock(1252)).
					WithExtraBlock(testutil.Block(format.ConsoleFESignature, nil)).
					Bytes()
			},
			sentinel: types.ErrExtraDataSize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := Decode(tt.data())
			assert.Nil(t, link)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestDecode_LinkInfoSkippedWithoutFlag(t *testing.T) {
	// Bytes that are not a valid LinkInfo are never read when HasLinkInfo is clear.
	b := testutil.NewBuilder().WithString(int(types.StringArguments), "-x")
	link, err := Decode(b.Bytes())
	require.NoError(t, err)
	assert.Nil(t, link.LinkInfo)
	args, _ := link.StringData.Get(types.StringArguments)
	assert.Equal(t, "-x", args)
}
