package types

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
)

// VarType is a property value type (VT_*).
type VarType uint16

const (
	VTEmpty    VarType = 0x0000
	VTI2       VarType = 0x0002
	VTI4       VarType = 0x0003
	VTBSTR     VarType = 0x0008
	VTBool     VarType = 0x000B
	VTUI1      VarType = 0x0011
	VTUI2      VarType = 0x0012
	VTUI4      VarType = 0x0013
	VTI8       VarType = 0x0014
	VTUI8      VarType = 0x0015
	VTLPWSTR   VarType = 0x001F
	VTFiletime VarType = 0x0040
	VTCLSID    VarType = 0x0048
)

var varTypeNames = map[VarType]string{
	VTEmpty:    "VT_EMPTY",
	VTI2:       "VT_I2",
	VTI4:       "VT_I4",
	VTBSTR:     "VT_BSTR",
	VTBool:     "VT_BOOL",
	VTUI1:      "VT_UI1",
	VTUI2:      "VT_UI2",
	VTUI4:      "VT_UI4",
	VTI8:       "VT_I8",
	VTUI8:      "VT_UI8",
	VTLPWSTR:   "VT_LPWSTR",
	VTFiletime: "VT_FILETIME",
	VTCLSID:    "VT_CLSID",
}

func (t VarType) String() string {
	if n, ok := varTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("VT(0x%04X)", uint16(t))
}

// PropertyStorage is one serialized property storage: the values of a single
// property set, identified by FormatID.
type PropertyStorage struct {
	FormatID uuid.UUID
	Values   []PropertyValue
}

// PropertyValue is one property. Exactly one of Name (string-named storages)
// or ID (integer-named storages) identifies it.
type PropertyValue struct {
	ID    uint32
	Name  string
	Type  VarType
	Value any    // decoded value for the supported types, nil otherwise
	Raw   []byte // value bytes following the type header
}

var stringNameFormatID = uuid.MustParse(format.PropertyStringNameFormatID)

// Storages parses Data as a sequence of serialized property storages. Errors
// are reported here only; a malformed payload never fails the link decode.
func (b PropertyStoreDataBlock) Storages() ([]PropertyStorage, error) {
	var out []PropertyStorage
	off := 0
	for {
		size, ok := buf.U32At(b.Data, off)
		if !ok {
			if off == len(b.Data) {
				return out, nil
			}
			return nil, NewFieldError("PropertyStore", "StorageSize", off, uint64(len(b.Data)-off), ErrPropertyStore)
		}
		if size == 0 {
			return out, nil
		}
		raw, ok := buf.Slice(b.Data, off, int(size))
		if !ok || size < format.PropertyStorageHeaderSize {
			return nil, NewFieldError("PropertyStore", "StorageSize", off, uint64(size), ErrPropertyStore)
		}
		st, err := parseStorage(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
		off += int(size)
	}
}

func parseStorage(b []byte) (PropertyStorage, error) {
	var st PropertyStorage
	if v := buf.U32LE(b[format.PropertyStorageVersionOffset:]); v != format.PropertyStorageVersion {
		return st, NewFieldError("PropertyStore", "Version", format.PropertyStorageVersionOffset, uint64(v), ErrPropertyStore)
	}
	id, err := format.GUIDFromBytes(b[format.PropertyStorageFormatIDOffset:])
	if err != nil {
		return st, NewFieldError("PropertyStore", "FormatID", format.PropertyStorageFormatIDOffset, 0, ErrPropertyStore)
	}
	st.FormatID = id
	named := id == stringNameFormatID

	off := format.PropertyStorageHeaderSize
	for {
		size, ok := buf.U32At(b, off)
		if !ok {
			return st, NewFieldError("PropertyStore", "ValueSize", off, 0, ErrPropertyStore)
		}
		if size == 0 {
			return st, nil
		}
		rec, ok := buf.Slice(b, off, int(size))
		if !ok || size < format.PropertyValueHeaderSize {
			return st, NewFieldError("PropertyStore", "ValueSize", off, uint64(size), ErrPropertyStore)
		}
		v, err := parseValue(rec, named)
		if err != nil {
			return st, err
		}
		st.Values = append(st.Values, v)
		off += int(size)
	}
}

func parseValue(rec []byte, named bool) (PropertyValue, error) {
	var v PropertyValue
	body := format.PropertyValueHeaderSize
	if named {
		nameSize := int(buf.U32LE(rec[format.PropertyValueNameSizeOffset:]))
		nameBytes, ok := buf.Slice(rec, body, nameSize)
		if !ok {
			return v, NewFieldError("PropertyStore", "NameSize", format.PropertyValueNameSizeOffset, uint64(nameSize), ErrPropertyStore)
		}
		name, err := format.DecodeUTF16(format.FixedString16(nameBytes))
		if err != nil {
			return v, NewFieldError("PropertyStore", "Name", body, 0, ErrPropertyStore)
		}
		v.Name = name
		body += nameSize
	} else {
		v.ID = buf.U32LE(rec[format.PropertyValueIDOffset:])
	}

	typed, ok := buf.Tail(rec, body)
	if !ok || len(typed) < format.TypedValueDataOffset {
		return v, NewFieldError("PropertyStore", "Value", body, 0, ErrPropertyStore)
	}
	v.Type = VarType(buf.U16LE(typed[format.TypedValueTypeOffset:]))
	v.Raw = buf.Clone(typed[format.TypedValueDataOffset:])
	v.Value = decodeTypedValue(v.Type, v.Raw)
	return v, nil
}

// decodeTypedValue returns nil for unsupported types and short payloads.
func decodeTypedValue(t VarType, b []byte) any {
	switch t {
	case VTI2:
		if len(b) >= 2 {
			return buf.I16LE(b)
		}
	case VTUI1:
		if len(b) >= 1 {
			return b[0]
		}
	case VTUI2:
		if len(b) >= 2 {
			return buf.U16LE(b)
		}
	case VTI4:
		if len(b) >= 4 {
			return buf.I32LE(b)
		}
	case VTUI4:
		if len(b) >= 4 {
			return buf.U32LE(b)
		}
	case VTI8:
		if len(b) >= 8 {
			return int64(buf.U64LE(b))
		}
	case VTUI8:
		if len(b) >= 8 {
			return buf.U64LE(b)
		}
	case VTBool:
		if len(b) >= 2 {
			return buf.U16LE(b) != 0
		}
	case VTFiletime:
		if len(b) >= 8 {
			return NewFiletime(buf.U64LE(b))
		}
	case VTCLSID:
		if id, err := format.GUIDFromBytes(b); err == nil {
			return id
		}
	case VTLPWSTR:
		// Length counts UTF-16 code units including the terminator.
		n, ok := buf.U32At(b, 0)
		if !ok {
			return nil
		}
		chars, ok := buf.Slice(b, 4, int(n)*2)
		if !ok {
			return nil
		}
		if s, err := format.DecodeUTF16(format.FixedString16(chars)); err == nil {
			return s
		}
	case VTBSTR:
		// Size counts bytes; property stores write UTF-16 strings.
		n, ok := buf.U32At(b, 0)
		if !ok {
			return nil
		}
		chars, ok := buf.Slice(b, 4, int(n))
		if !ok {
			return nil
		}
		if s, err := format.DecodeUTF16(format.FixedString16(chars)); err == nil {
			return s
		}
	}
	return nil
}
