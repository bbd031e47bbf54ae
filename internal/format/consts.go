// Package format houses the wire-level constants and low-level codecs for the
// Windows Shell Link (.lnk) binary format: field offsets, block signatures,
// FILETIME conversion, and string/GUID decoding. Decoders in pkg/lnk read
// every field through these constants so the layout lives in one place.
package format

// LinkCLSID is the shell link class identifier 00021401-0000-0000-C000-000000000046
// in its on-disk (mixed-endian GUID) byte order.
var LinkCLSID = []byte{
	0x01, 0x14, 0x02, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// ============================================================================
// ShellLinkHeader
// ============================================================================
//
//	Offset  Size  Field
//	0x00    4     HeaderSize (0x4C)
//	0x04    16    LinkCLSID
//	0x14    4     LinkFlags
//	0x18    4     FileAttributes
//	0x1C    8     CreationTime (FILETIME)
//	0x24    8     AccessTime (FILETIME)
//	0x2C    8     WriteTime (FILETIME)
//	0x34    4     FileSize
//	0x38    4     IconIndex (signed)
//	0x3C    4     ShowCommand
//	0x40    1     HotKey low byte (virtual key)
//	0x41    1     HotKey high byte (modifiers)
//	0x42    10    Reserved1/2/3
const (
	HeaderSize = 0x4C

	HeaderSizeOffset     = 0x00
	LinkCLSIDOffset      = 0x04
	LinkFlagsOffset      = 0x14
	FileAttributesOffset = 0x18
	CreationTimeOffset   = 0x1C
	AccessTimeOffset     = 0x24
	WriteTimeOffset      = 0x2C
	FileSizeOffset       = 0x34
	IconIndexOffset      = 0x38
	ShowCommandOffset    = 0x3C
	HotKeyOffset         = 0x40
	HotKeyModifierOffset = 0x41
	HeaderReservedOffset = 0x42
	HeaderReservedLen    = HeaderSize - HeaderReservedOffset // 10
	LinkCLSIDLen         = LinkFlagsOffset - LinkCLSIDOffset // 16
	FiletimeLen          = 8
)

// ============================================================================
// LinkTargetIDList
// ============================================================================
const (
	// IDListSizeLen is the width of the IDListSize prefix.
	IDListSizeLen = 2
	// ItemIDSizeLen is the width of each ItemIDSize field. The size includes
	// the field itself, so any non-terminal item is at least this large.
	ItemIDSizeLen = 2
)

// ============================================================================
// LinkInfo
// ============================================================================
//
// Every offset below is relative to the start of the LinkInfo structure.
const (
	LinkInfoSizeOffset                    = 0x00
	LinkInfoHeaderSizeOffset              = 0x04
	LinkInfoFlagsOffset                   = 0x08
	LinkInfoVolumeIDOffsetOffset          = 0x0C
	LinkInfoLocalBasePathOffsetOffset     = 0x10
	LinkInfoNetworkLinkOffsetOffset       = 0x14
	LinkInfoCommonPathSuffixOffsetOffset  = 0x18
	LinkInfoLocalBasePathUnicodeOffset    = 0x1C
	LinkInfoCommonPathSuffixUnicodeOffset = 0x20

	// LinkInfoMinHeaderSize is the header size without the optional Unicode offsets.
	LinkInfoMinHeaderSize = 0x1C
	// LinkInfoUnicodeHeaderSize is the smallest header that carries both Unicode offsets.
	LinkInfoUnicodeHeaderSize = 0x24
)

// VolumeID field offsets, relative to the VolumeID start.
const (
	VolumeIDSizeOffset             = 0x00
	VolumeDriveTypeOffset          = 0x04
	VolumeDriveSerialNumberOffset  = 0x08
	VolumeLabelOffsetOffset        = 0x0C
	VolumeLabelOffsetUnicodeOffset = 0x10

	VolumeIDMinSize = 0x10
	// VolumeLabelUnicodeMarker in VolumeLabelOffset means the label lives at
	// VolumeLabelOffsetUnicode instead.
	VolumeLabelUnicodeMarker = 0x14
)

// CommonNetworkRelativeLink field offsets, relative to its start.
const (
	NetworkLinkSizeOffset              = 0x00
	NetworkLinkFlagsOffset             = 0x04
	NetworkLinkNetNameOffsetOffset     = 0x08
	NetworkLinkDeviceNameOffsetOffset  = 0x0C
	NetworkLinkProviderTypeOffset      = 0x10
	NetworkLinkNetNameUnicodeOffset    = 0x14
	NetworkLinkDeviceNameUnicodeOffset = 0x18

	NetworkLinkMinSize = 0x14
)

// ============================================================================
// StringData
// ============================================================================
const (
	// StringCountLen is the width of the CountCharacters prefix.
	StringCountLen = 2
)

// ============================================================================
// ExtraData
// ============================================================================
const (
	BlockSizeOffset      = 0x00
	BlockSignatureOffset = 0x04
	BlockDataOffset      = 0x08
	BlockSizeLen         = 4
	BlockHeaderSize      = 8

	// TerminalBlockMax: any BlockSize below this value ends the section.
	TerminalBlockMax = 0x04
)

// Extra data block signatures.
const (
	EnvironmentVariableSignature = 0xA0000001
	ConsoleSignature             = 0xA0000002
	TrackerSignature             = 0xA0000003
	ConsoleFESignature           = 0xA0000004
	SpecialFolderSignature       = 0xA0000005
	DarwinSignature              = 0xA0000006
	IconEnvironmentSignature     = 0xA0000007
	ShimSignature                = 0xA0000008
	PropertyStoreSignature       = 0xA0000009
	KnownFolderSignature         = 0xA000000B
	VistaAndAboveIDListSignature = 0xA000000C
)

// Extra data block sizes. "Size" values are exact; "MinSize" values are lower bounds.
const (
	EnvironmentVariableSize       = 0x314
	ConsoleSize                   = 0xCC
	TrackerMinSize                = 0x60
	TrackerMinLength              = 0x58
	ConsoleFESize                 = 0x0C
	SpecialFolderSize             = 0x10
	DarwinSize                    = 0x314
	IconEnvironmentSize           = 0x314
	ShimMinSize                   = 0x88
	PropertyStoreMinSize          = 0x0C
	KnownFolderSize               = 0x1C
	VistaAndAboveIDListMinSize    = 0x0A
	ExpandableStringANSILen       = 260
	ExpandableStringUnicodeLen    = 520
	ExpandableStringANSIOffset    = 0x08
	ExpandableStringUnicodeOffset = ExpandableStringANSIOffset + ExpandableStringANSILen // 0x10C
)

// ConsoleDataBlock field offsets, relative to the block start.
const (
	ConsoleFillAttributesOffset      = 0x08
	ConsolePopupFillAttributesOffset = 0x0A
	ConsoleScreenBufferSizeXOffset   = 0x0C
	ConsoleScreenBufferSizeYOffset   = 0x0E
	ConsoleWindowSizeXOffset         = 0x10
	ConsoleWindowSizeYOffset         = 0x12
	ConsoleWindowOriginXOffset       = 0x14
	ConsoleWindowOriginYOffset       = 0x16
	ConsoleFontSizeOffset            = 0x20
	ConsoleFontFamilyOffset          = 0x24
	ConsoleFontWeightOffset          = 0x28
	ConsoleFaceNameOffset            = 0x2C
	ConsoleFaceNameLen               = 64
	ConsoleCursorSizeOffset          = 0x6C
	ConsoleFullScreenOffset          = 0x70
	ConsoleQuickEditOffset           = 0x74
	ConsoleInsertModeOffset          = 0x78
	ConsoleAutoPositionOffset        = 0x7C
	ConsoleHistoryBufferSizeOffset   = 0x80
	ConsoleHistoryBufferCountOffset  = 0x84
	ConsoleHistoryNoDupOffset        = 0x88
	ConsoleColorTableOffset          = 0x8C
	ConsoleColorTableEntries         = 16
)

// Small fixed blocks.
const (
	ConsoleFECodePageOffset   = 0x08
	SpecialFolderIDOffset     = 0x08
	SpecialFolderItemOffset   = 0x0C
	KnownFolderIDOffset       = 0x08
	KnownFolderItemOffset     = 0x18
	ShimLayerNameOffset       = 0x08
	PropertyStoreDataOffset   = 0x08
	VistaAndAboveIDListOffset = 0x08
	TrackerLengthOffset       = 0x08
	TrackerVersionOffset      = 0x0C
	TrackerMachineIDOffset    = 0x10
	TrackerMachineIDLen       = 16
	TrackerDroidOffset        = 0x20
	TrackerDroidBirthOffset   = 0x40
	GUIDSize                  = 16
)

// ============================================================================
// Serialized property storage (PropertyStoreDataBlock payload)
// ============================================================================
const (
	PropertyStorageSizeOffset     = 0x00
	PropertyStorageVersionOffset  = 0x04
	PropertyStorageFormatIDOffset = 0x08
	PropertyStorageHeaderSize     = 0x18

	// PropertyStorageVersion is 'SPS1' read as a little-endian uint32.
	PropertyStorageVersion = 0x53505331

	PropertyValueSizeOffset     = 0x00
	PropertyValueIDOffset       = 0x04 // integer-named values
	PropertyValueNameSizeOffset = 0x04 // string-named values
	PropertyValueReservedOffset = 0x08
	PropertyValueHeaderSize     = 0x09

	TypedValueTypeOffset = 0x00
	TypedValueDataOffset = 0x04
)

// PropertyStringNameFormatID is the FMTID whose values are named by strings
// rather than integer IDs: D5CDD505-2E9C-101B-9397-08002B2CF9AE.
const PropertyStringNameFormatID = "d5cdd505-2e9c-101b-9397-08002b2cf9ae"
