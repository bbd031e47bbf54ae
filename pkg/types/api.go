package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // wrong magic: header size, CLSID
	ErrKindCorrupt                    // structural corruption (bad flags, sizes, offsets, table values)
	ErrKindTruncated                  // input ended before a structure did
	ErrKindUnsupported                // recognized but not decodable content
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindTruncated:
		return "truncated"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (wrapped in *FieldError) by the decoders.
var (
	// ShellLinkHeader.
	ErrHeaderLength    = &Error{Kind: ErrKindTruncated, Msg: "shell link header shorter than 76 bytes"}
	ErrHeaderSize      = &Error{Kind: ErrKindFormat, Msg: "shell link header size is not 0x4C"}
	ErrLinkCLSID       = &Error{Kind: ErrKindFormat, Msg: "not a shell link (CLSID mismatch)"}
	ErrLinkFlags       = &Error{Kind: ErrKindCorrupt, Msg: "link flags contain unknown bits"}
	ErrFileAttributes  = &Error{Kind: ErrKindCorrupt, Msg: "file attributes contain unknown bits"}
	ErrHotKey          = &Error{Kind: ErrKindCorrupt, Msg: "invalid hotkey"}
	ErrHotKeyModifier  = &Error{Kind: ErrKindCorrupt, Msg: "invalid hotkey modifier"}
	ErrIDListTruncated = &Error{Kind: ErrKindTruncated, Msg: "link target id list truncated"}
	ErrIDListBounds    = &Error{Kind: ErrKindCorrupt, Msg: "item id exceeds declared id list size"}

	// LinkInfo.
	ErrLinkInfoBounds      = &Error{Kind: ErrKindCorrupt, Msg: "link info size or offset out of bounds"}
	ErrLinkInfoFlags       = &Error{Kind: ErrKindCorrupt, Msg: "link info flags contain unknown bits"}
	ErrNetworkLinkFlags    = &Error{Kind: ErrKindCorrupt, Msg: "network link flags contain unknown bits"}
	ErrDriveType           = &Error{Kind: ErrKindCorrupt, Msg: "invalid drive type"}
	ErrNetworkProviderType = &Error{Kind: ErrKindCorrupt, Msg: "invalid network provider type"}
	ErrBlockTooSmall       = &Error{Kind: ErrKindCorrupt, Msg: "structure size below minimum"}

	// StringData.
	ErrStringDataTruncated = &Error{Kind: ErrKindTruncated, Msg: "string data truncated"}

	// Any string field whose bytes are not valid in its encoding.
	ErrStringEncoding = &Error{Kind: ErrKindCorrupt, Msg: "string does not decode in its encoding"}

	// ExtraData.
	ErrExtraDataSize      = &Error{Kind: ErrKindCorrupt, Msg: "extra data block size does not match its signature"}
	ErrExtraDataTruncated = &Error{Kind: ErrKindTruncated, Msg: "extra data block truncated"}
	ErrFontFamily         = &Error{Kind: ErrKindCorrupt, Msg: "invalid console font family"}
	ErrPropertyStore      = &Error{Kind: ErrKindUnsupported, Msg: "malformed serialized property storage"}
)

// FieldError locates a decode failure. Offset is relative to the start of
// Structure; it is -1 when the failure is not tied to a single field.
type FieldError struct {
	Structure string
	Field     string
	Offset    int
	Value     uint64
	Err       error
}

func (e *FieldError) Error() string {
	where := e.Structure
	if e.Field != "" {
		where += "." + e.Field
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("lnk: %s (offset 0x%x, value 0x%x): %v", where, e.Offset, e.Value, e.Err)
	}
	return fmt.Sprintf("lnk: %s (value 0x%x): %v", where, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError builds a *FieldError; it keeps call sites in the decoders short.
func NewFieldError(structure, field string, off int, value uint64, err error) *FieldError {
	return &FieldError{Structure: structure, Field: field, Offset: off, Value: value, Err: err}
}

// KindOf returns the category of err and whether err carries one.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
