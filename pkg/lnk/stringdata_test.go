package lnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func TestDecodeStringData_ANSI(t *testing.T) {
	var b []byte
	b = append(b, testutil.EncodeCountedString("Notepad", false)...)
	b = append(b, testutil.EncodeCountedString(`C:\Temp`, false)...)
	b = append(b, 0xFF) // next section

	flags := types.HasName | types.HasWorkingDir
	sd, n, err := DecodeStringData(b, flags)
	require.NoError(t, err)
	assert.Equal(t, len(b)-1, n)

	name, ok := sd.Get(types.StringName)
	require.True(t, ok)
	assert.Equal(t, "Notepad", name)
	wd, ok := sd.Get(types.StringWorkingDir)
	require.True(t, ok)
	assert.Equal(t, `C:\Temp`, wd)
	_, ok = sd.Get(types.StringRelativePath)
	assert.False(t, ok)
}

func TestDecodeStringData_Unicode(t *testing.T) {
	var b []byte
	for _, s := range []string{`..\..\bin\app.exe`, "--flag=ÿ €", `%SystemRoot%\icon.ico`} {
		b = append(b, testutil.EncodeCountedString(s, true)...)
	}

	flags := types.IsUnicode | types.HasRelativePath | types.HasArguments | types.HasIconLocation
	sd, n, err := DecodeStringData(b, flags)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	rel, _ := sd.Get(types.StringRelativePath)
	assert.Equal(t, `..\..\bin\app.exe`, rel)
	args, _ := sd.Get(types.StringArguments)
	assert.Equal(t, "--flag=ÿ €", args)
	icon, _ := sd.Get(types.StringIconLocation)
	assert.Equal(t, `%SystemRoot%\icon.ico`, icon)
}

func TestDecodeStringData_EmptyString(t *testing.T) {
	sd, n, err := DecodeStringData([]byte{0, 0}, types.HasArguments)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	v, ok := sd.Get(types.StringArguments)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestDecodeStringData_NoFlags(t *testing.T) {
	sd, n, err := DecodeStringData(nil, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, types.StringData{}, sd)
}

func TestDecodeStringData_Truncated(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		flags types.LinkFlags
		field string
	}{
		{"missing count", nil, types.HasName, "NameString"},
		{"short ansi", []byte{5, 0, 'a', 'b'}, types.HasName, "NameString"},
		{"short unicode", []byte{2, 0, 'a', 0, 'b'}, types.HasWorkingDir | types.IsUnicode, "WorkingDir"},
		{
			"second string missing",
			testutil.EncodeCountedString("x", false),
			types.HasName | types.HasArguments,
			"CommandLineArguments",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeStringData(tt.in, tt.flags)
			fe := requireFieldError(t, err, types.ErrStringDataTruncated)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}
