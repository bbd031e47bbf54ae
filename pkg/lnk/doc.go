/*
Package lnk decodes Windows Shell Link (.lnk) files.

# Quick Start

Decode a link from disk:

	link, err := lnk.DecodeFile("notepad.lnk")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(link.TargetPath())

Decode a link already in memory:

	link, err := lnk.Decode(data)

# Features

  - Header, LinkTargetIDList, LinkInfo, StringData and every documented
    ExtraData block
  - Unknown extra data blocks kept, not rejected
  - Typed errors carrying the structure, field, offset and raw value
  - Configurable ANSI code page
  - No I/O in Decode; DecodeFile maps the file read-only

# Options

	link, err := lnk.Decode(data,
	    lnk.WithLogger(slog.Default()),
	    lnk.WithCodePage(japanese.ShiftJIS),
	)

# Error Handling

Every decode error wraps one of the sentinels in pkg/types:

	link, err := lnk.Decode(data)
	if errors.Is(err, types.ErrLinkCLSID) {
	    // not a shell link
	}
	var fe *types.FieldError
	if errors.As(err, &fe) {
	    fmt.Printf("%s.%s at 0x%x: 0x%x\n", fe.Structure, fe.Field, fe.Offset, fe.Value)
	}

# Concurrency

Decode holds no shared state. Independent buffers may be decoded from any
number of goroutines at once.
*/
package lnk
