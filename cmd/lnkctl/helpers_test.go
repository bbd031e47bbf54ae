package main

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// resetGlobals restores flag and output state and returns the buffer that
// command output is captured into.
func resetGlobals(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origOut, origSettings := out, settings
	t.Cleanup(func() {
		out, settings = origOut, origSettings
		verbose, quiet = false, false
		extraSignature = ""
		scanStrict = false
	})
	out = &buf
	settings = defaultConfig()
	verbose, quiet = false, false
	extraSignature = ""
	scanStrict = false
	return &buf
}

// sampleLink is a local-target link with arguments, a tracker and a console FE block.
func sampleLink() []byte {
	li := testutil.LinkInfoSpec{
		Volume:        &testutil.VolumeSpec{DriveType: 3, SerialNumber: 0xA1B2C3D4, Label: "Windows"},
		LocalBasePath: `C:\Windows\System32\cmd.exe`,
	}
	droid := [2]uuid.UUID{
		uuid.MustParse("94e2ca7c-4c5a-4b3c-9a3e-2fcb1b4a0a11"),
		uuid.MustParse("e8b1a0c0-3f2a-11e4-8c21-0800200c9a66"),
	}
	b := testutil.NewBuilder()
	b.FileSize = 289792
	b.WriteTime = 132512544000000000
	return b.
		WithLinkInfo(li.Bytes()).
		WithString(int(types.StringArguments), "/k echo hi").
		WithExtraBlock(testutil.TrackerBlock("workstation", droid, droid)).
		WithExtraBlock(testutil.ConsoleFEBlock(437)).
		Bytes()
}

// uncLink targets a network share.
func uncLink() []byte {
	li := testutil.LinkInfoSpec{
		Network: &testutil.NetworkSpec{
			Flags:        uint32(types.ValidNetType),
			ProviderType: 0x00200000, // WNNC_NET_DECORB
			NetName:      `\\fileserver\public`,
		},
		CommonPathSuffix: `reports\q3.xlsx`,
	}
	return testutil.NewBuilder().WithLinkInfo(li.Bytes()).Bytes()
}

// corruptLink has a header with a bad size field.
func corruptLink() []byte {
	b := testutil.NewBuilder()
	b.HeaderSize = format.HeaderSize + 4
	return b.Bytes()
}
