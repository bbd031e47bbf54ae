package lnk_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Example decodes a link pointing at a local file.
func Example() {
	data := testutil.NewBuilder().
		WithLinkInfo(testutil.LinkInfoSpec{
			Volume:           &testutil.VolumeSpec{DriveType: 3, Label: "OS"},
			LocalBasePath:    `C:\Windows\notepad.exe`,
			CommonPathSuffix: "",
		}.Bytes()).
		WithString(int(types.StringArguments), "readme.txt").
		Bytes()

	link, err := lnk.Decode(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	args, _ := link.StringData.Get(types.StringArguments)
	fmt.Println(link.TargetPath(), args)
	fmt.Println(link.LinkInfo.VolumeID.DriveType)
	// Output:
	// C:\Windows\notepad.exe readme.txt
	// DRIVE_FIXED
}

// ExampleDecode_errors shows how to inspect a decode failure.
func ExampleDecode_errors() {
	b := testutil.NewBuilder()
	b.HeaderSize = 0x50

	_, err := lnk.Decode(b.Bytes())
	var fe *types.FieldError
	if errors.Is(err, types.ErrHeaderSize) && errors.As(err, &fe) {
		fmt.Printf("%s.%s = 0x%x\n", fe.Structure, fe.Field, fe.Value)
	}
	// Output:
	// ShellLinkHeader.HeaderSize = 0x50
}
