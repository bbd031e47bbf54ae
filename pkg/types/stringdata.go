package types

// StringKind names one of the optional StringData entries, in wire order.
type StringKind int

const (
	StringName StringKind = iota
	StringRelativePath
	StringWorkingDir
	StringArguments
	StringIconLocation
)

var stringKindNames = [...]string{"NameString", "RelativePath", "WorkingDir", "CommandLineArguments", "IconLocation"}

func (k StringKind) String() string {
	if k < 0 || int(k) >= len(stringKindNames) {
		return "StringKind(?)"
	}
	return stringKindNames[k]
}

// Flag returns the LinkFlags bit that announces this string.
func (k StringKind) Flag() LinkFlags {
	switch k {
	case StringName:
		return HasName
	case StringRelativePath:
		return HasRelativePath
	case StringWorkingDir:
		return HasWorkingDir
	case StringArguments:
		return HasArguments
	case StringIconLocation:
		return HasIconLocation
	}
	return 0
}

// StringKinds lists every StringKind in the order they appear on the wire.
var StringKinds = []StringKind{StringName, StringRelativePath, StringWorkingDir, StringArguments, StringIconLocation}

// StringData holds the optional strings that follow LinkInfo. A nil field
// was not present in the link; a non-nil empty string was present with zero
// characters.
type StringData struct {
	Name         *string `json:"name,omitempty"`
	RelativePath *string `json:"relative_path,omitempty"`
	WorkingDir   *string `json:"working_dir,omitempty"`
	Arguments    *string `json:"arguments,omitempty"`
	IconLocation *string `json:"icon_location,omitempty"`
}

// Get returns the string of the given kind and whether it was present.
func (s *StringData) Get(k StringKind) (string, bool) {
	if p := s.field(k); p != nil && *p != nil {
		return **p, true
	}
	return "", false
}

// Set stores v as the string of the given kind.
func (s *StringData) Set(k StringKind, v string) {
	if p := s.field(k); p != nil {
		*p = &v
	}
}

func (s *StringData) field(k StringKind) **string {
	switch k {
	case StringName:
		return &s.Name
	case StringRelativePath:
		return &s.RelativePath
	case StringWorkingDir:
		return &s.WorkingDir
	case StringArguments:
		return &s.Arguments
	case StringIconLocation:
		return &s.IconLocation
	}
	return nil
}
