package lnk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/mmfile"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func TestDecodeFile(t *testing.T) {
	path := testutil.WriteLink(t, "notepad.lnk", notepadLink())

	link, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, `C:\Windows\notepad.exe`, link.TargetPath())

	want, err := Decode(notepadLink())
	require.NoError(t, err)
	assert.Equal(t, want, link)
}

func TestDecodeFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.lnk")
	_, err := DecodeFile(path)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.lnk")
}

func TestDecodeFile_Empty(t *testing.T) {
	path := testutil.WriteLink(t, "empty.lnk", nil)
	_, err := DecodeFile(path)
	require.ErrorIs(t, err, types.ErrHeaderLength)
	assert.Contains(t, err.Error(), "decode ")
}

func TestDecodeFile_SizeLimit(t *testing.T) {
	data := notepadLink()
	path := testutil.WriteLink(t, "big.lnk", data)

	_, err := DecodeFile(path, WithLimits(types.Limits{MaxFileSize: int64(len(data) - 1)}))
	require.ErrorIs(t, err, mmfile.ErrTooLarge)

	_, err = DecodeFile(path, WithLimits(types.Limits{MaxFileSize: int64(len(data))}))
	require.NoError(t, err)

	_, err = DecodeFile(path, WithLimits(types.Limits{}))
	require.NoError(t, err, "zero limit means unlimited")
}
