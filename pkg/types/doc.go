// Package types defines the public data model produced by the shell link
// decoder in pkg/lnk: the fixed header, its bit-sets and lookup tables, the
// optional id-list, link-info and string-data sections, and the typed
// extra-data blocks.
//
// Every value is built once by a decode call and never mutated afterwards.
// Values own their strings and byte slices; nothing aliases the input buffer.
//
// Errors carry a stable category (ErrKind) and, through *FieldError, the
// structure, field, relative offset and raw value that failed validation:
//
//	var fe *types.FieldError
//	if errors.As(err, &fe) && errors.Is(err, types.ErrHeaderSize) {
//	    log.Printf("header size was 0x%x", fe.Value)
//	}
package types
