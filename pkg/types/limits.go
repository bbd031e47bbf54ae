package types

// ============================================================================
// Decode Limits
// ============================================================================
// Decoding is bounded by the input length. These limits guard the file entry
// point, where the input length is not under the caller's control.

const (
	// DefaultMaxFileSize is the largest file DecodeFile maps by default.
	// Real links rarely exceed a few kilobytes; property stores and
	// embedded id-lists push a handful to tens of kilobytes.
	DefaultMaxFileSize = 16 << 20 // 16 MiB

	// StrictMaxFileSize suits scanning untrusted directories.
	StrictMaxFileSize = 1 << 20 // 1 MiB
)

// Limits bounds work done outside the pure decoder.
type Limits struct {
	// MaxFileSize is the largest input DecodeFile accepts. Zero disables the check.
	MaxFileSize int64
}

// DefaultLimits returns the limits applied when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxFileSize: DefaultMaxFileSize}
}

// StrictLimits returns tighter limits for untrusted inputs.
func StrictLimits() Limits {
	return Limits{MaxFileSize: StrictMaxFileSize}
}
