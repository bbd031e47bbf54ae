package testutil

import (
	"github.com/google/uuid"

	"github.com/joshuapare/lnkkit/internal/format"
)

// Raw LinkFlags bits used by Builder. Tests that need other bits set them
// through WithFlags.
const (
	FlagHasLinkTargetIDList = 1 << 0
	FlagHasLinkInfo         = 1 << 1
	FlagHasName             = 1 << 2
	FlagIsUnicode           = 1 << 7
)

// Builder assembles byte-exact shell link fixtures. Header fields are set
// directly; sections are appended in wire order by Bytes.
type Builder struct {
	HeaderSize     uint32
	CLSID          []byte
	Flags          uint32
	Attributes     uint32
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    uint32
	HotKey         uint8
	HotKeyModifier uint8

	idList   []byte
	linkInfo []byte
	strings  [5]*string
	extra    [][]byte
	trailer  []byte
}

// NewBuilder returns a builder for a minimal valid link: correct header size
// and CLSID, no flags, SW_SHOWNORMAL.
func NewBuilder() *Builder {
	return &Builder{
		HeaderSize:  format.HeaderSize,
		CLSID:       format.LinkCLSID,
		ShowCommand: 1,
	}
}

// WithFlags ORs raw LinkFlags bits into the header.
func (b *Builder) WithFlags(flags uint32) *Builder {
	b.Flags |= flags
	return b
}

// WithIDList sets HasLinkTargetIDList and encodes items (payloads without
// their size prefix) followed by the terminator.
func (b *Builder) WithIDList(items ...[]byte) *Builder {
	b.Flags |= FlagHasLinkTargetIDList
	body := EncodeItemIDs(items...)
	b.idList = append(format.AppendU16(nil, uint16(len(body))), body...)
	return b
}

// WithRawIDList sets HasLinkTargetIDList and writes raw verbatim, including
// its IDListSize prefix.
func (b *Builder) WithRawIDList(raw []byte) *Builder {
	b.Flags |= FlagHasLinkTargetIDList
	b.idList = raw
	return b
}

// WithLinkInfo sets HasLinkInfo and appends the encoded LinkInfo.
func (b *Builder) WithLinkInfo(li []byte) *Builder {
	b.Flags |= FlagHasLinkInfo
	b.linkInfo = li
	return b
}

// WithString sets the string at kind (0 Name ... 4 IconLocation) and its flag.
func (b *Builder) WithString(kind int, s string) *Builder {
	b.Flags |= FlagHasName << kind
	b.strings[kind] = &s
	return b
}

// WithExtraBlock appends an encoded extra data block.
func (b *Builder) WithExtraBlock(block []byte) *Builder {
	b.extra = append(b.extra, block)
	return b
}

// WithTrailer replaces the default 4-byte terminal block with raw bytes.
func (b *Builder) WithTrailer(raw []byte) *Builder {
	b.trailer = raw
	return b
}

// Header encodes only the 76-byte header.
func (b *Builder) Header() []byte {
	h := make([]byte, format.HeaderSize)
	format.PutU32(h, format.HeaderSizeOffset, b.HeaderSize)
	copy(h[format.LinkCLSIDOffset:format.LinkFlagsOffset], b.CLSID)
	format.PutU32(h, format.LinkFlagsOffset, b.Flags)
	format.PutU32(h, format.FileAttributesOffset, b.Attributes)
	format.PutU64(h, format.CreationTimeOffset, b.CreationTime)
	format.PutU64(h, format.AccessTimeOffset, b.AccessTime)
	format.PutU64(h, format.WriteTimeOffset, b.WriteTime)
	format.PutU32(h, format.FileSizeOffset, b.FileSize)
	format.PutU32(h, format.IconIndexOffset, uint32(b.IconIndex))
	format.PutU32(h, format.ShowCommandOffset, b.ShowCommand)
	h[format.HotKeyOffset] = b.HotKey
	h[format.HotKeyModifierOffset] = b.HotKeyModifier
	return h
}

// Bytes encodes the whole link.
func (b *Builder) Bytes() []byte {
	out := b.Header()
	out = append(out, b.idList...)
	out = append(out, b.linkInfo...)
	unicode := b.Flags&FlagIsUnicode != 0
	for _, s := range b.strings {
		if s != nil {
			out = append(out, EncodeCountedString(*s, unicode)...)
		}
	}
	for _, blk := range b.extra {
		out = append(out, blk...)
	}
	if b.trailer != nil {
		return append(out, b.trailer...)
	}
	return format.AppendU32(out, 0)
}

// EncodeItemIDs encodes item payloads with their size prefixes and a
// terminating zero-size record.
func EncodeItemIDs(items ...[]byte) []byte {
	var out []byte
	for _, it := range items {
		out = format.AppendU16(out, uint16(len(it)+format.ItemIDSizeLen))
		out = append(out, it...)
	}
	return format.AppendU16(out, 0)
}

// EncodeCountedString encodes a StringData entry: a character count then
// the characters, with no terminator.
func EncodeCountedString(s string, unicode bool) []byte {
	if unicode {
		chars := format.EncodeUTF16(s)
		return append(format.AppendU16(nil, uint16(len(chars)/2)), chars...)
	}
	return append(format.AppendU16(nil, uint16(len(s))), s...)
}

func cstring(s string) []byte   { return append([]byte(s), 0) }
func cstring16(s string) []byte { return append(format.EncodeUTF16(s), 0, 0) }

// ============================================================================
// LinkInfo
// ============================================================================

// VolumeSpec describes a VolumeID.
type VolumeSpec struct {
	DriveType    uint32
	SerialNumber uint32
	Label        string
	UnicodeLabel bool
}

// NetworkSpec describes a CommonNetworkRelativeLink. Unicode names are
// written only when at least one is non-empty.
type NetworkSpec struct {
	Flags             uint32
	ProviderType      uint32
	NetName           string
	DeviceName        string
	NetNameUnicode    string
	DeviceNameUnicode string
}

// LinkInfoSpec describes a LinkInfo structure. The 0x24-byte header with
// Unicode offsets is used when Unicode is set or any Unicode path is given.
type LinkInfoSpec struct {
	Volume                  *VolumeSpec
	LocalBasePath           string
	LocalBasePathUnicode    string
	Network                 *NetworkSpec
	CommonPathSuffix        string
	CommonPathSuffixUnicode string
	Unicode                 bool
}

// Bytes encodes the LinkInfo with every substructure laid out back to back
// after the header.
func (s LinkInfoSpec) Bytes() []byte {
	unicode := s.Unicode || s.LocalBasePathUnicode != "" || s.CommonPathSuffixUnicode != ""
	headerSize := format.LinkInfoMinHeaderSize
	if unicode {
		headerSize = format.LinkInfoUnicodeHeaderSize
	}

	var flags uint32
	var volumeOff, baseOff, netOff, suffixOff, baseUniOff, suffixUniOff int
	body := make([]byte, 0, 128)
	at := func() int { return headerSize + len(body) }

	if s.Volume != nil {
		flags |= 1
		volumeOff = at()
		body = append(body, s.Volume.Bytes()...)
		baseOff = at()
		body = append(body, cstring(s.LocalBasePath)...)
	}
	if s.Network != nil {
		flags |= 2
		netOff = at()
		body = append(body, s.Network.Bytes()...)
	}
	suffixOff = at()
	body = append(body, cstring(s.CommonPathSuffix)...)
	if unicode {
		if s.Volume != nil && s.LocalBasePathUnicode != "" {
			baseUniOff = at()
			body = append(body, cstring16(s.LocalBasePathUnicode)...)
		}
		if s.CommonPathSuffixUnicode != "" {
			suffixUniOff = at()
			body = append(body, cstring16(s.CommonPathSuffixUnicode)...)
		}
	}

	out := make([]byte, headerSize, headerSize+len(body))
	format.PutU32(out, format.LinkInfoSizeOffset, uint32(headerSize+len(body)))
	format.PutU32(out, format.LinkInfoHeaderSizeOffset, uint32(headerSize))
	format.PutU32(out, format.LinkInfoFlagsOffset, flags)
	format.PutU32(out, format.LinkInfoVolumeIDOffsetOffset, uint32(volumeOff))
	format.PutU32(out, format.LinkInfoLocalBasePathOffsetOffset, uint32(baseOff))
	format.PutU32(out, format.LinkInfoNetworkLinkOffsetOffset, uint32(netOff))
	format.PutU32(out, format.LinkInfoCommonPathSuffixOffsetOffset, uint32(suffixOff))
	if unicode {
		format.PutU32(out, format.LinkInfoLocalBasePathUnicodeOffset, uint32(baseUniOff))
		format.PutU32(out, format.LinkInfoCommonPathSuffixUnicodeOffset, uint32(suffixUniOff))
	}
	return append(out, body...)
}

// Bytes encodes the VolumeID.
func (v VolumeSpec) Bytes() []byte {
	var out []byte
	if v.UnicodeLabel {
		label := cstring16(v.Label)
		out = make([]byte, format.VolumeLabelUnicodeMarker, format.VolumeLabelUnicodeMarker+len(label))
		format.PutU32(out, format.VolumeLabelOffsetOffset, format.VolumeLabelUnicodeMarker)
		format.PutU32(out, format.VolumeLabelOffsetUnicodeOffset, format.VolumeLabelUnicodeMarker)
		out = append(out, label...)
	} else {
		label := cstring(v.Label)
		out = make([]byte, format.VolumeIDMinSize, format.VolumeIDMinSize+len(label))
		format.PutU32(out, format.VolumeLabelOffsetOffset, format.VolumeIDMinSize)
		out = append(out, label...)
	}
	format.PutU32(out, format.VolumeIDSizeOffset, uint32(len(out)))
	format.PutU32(out, format.VolumeDriveTypeOffset, v.DriveType)
	format.PutU32(out, format.VolumeDriveSerialNumberOffset, v.SerialNumber)
	return out
}

// Bytes encodes the CommonNetworkRelativeLink.
func (n NetworkSpec) Bytes() []byte {
	unicode := n.NetNameUnicode != "" || n.DeviceNameUnicode != ""
	headerSize := format.NetworkLinkMinSize
	if unicode {
		headerSize = format.NetworkLinkDeviceNameUnicodeOffset + 4
	}
	out := make([]byte, headerSize)
	format.PutU32(out, format.NetworkLinkFlagsOffset, n.Flags)
	format.PutU32(out, format.NetworkLinkProviderTypeOffset, n.ProviderType)

	format.PutU32(out, format.NetworkLinkNetNameOffsetOffset, uint32(len(out)))
	out = append(out, cstring(n.NetName)...)
	if n.DeviceName != "" {
		format.PutU32(out, format.NetworkLinkDeviceNameOffsetOffset, uint32(len(out)))
		out = append(out, cstring(n.DeviceName)...)
	}
	if n.NetNameUnicode != "" {
		format.PutU32(out, format.NetworkLinkNetNameUnicodeOffset, uint32(len(out)))
		out = append(out, cstring16(n.NetNameUnicode)...)
	}
	if n.DeviceNameUnicode != "" {
		format.PutU32(out, format.NetworkLinkDeviceNameUnicodeOffset, uint32(len(out)))
		out = append(out, cstring16(n.DeviceNameUnicode)...)
	}
	format.PutU32(out, format.NetworkLinkSizeOffset, uint32(len(out)))
	return out
}

// ============================================================================
// Extra data blocks
// ============================================================================

// Block frames payload with a BlockSize/BlockSignature header.
func Block(signature uint32, payload []byte) []byte {
	out := format.AppendU32(nil, uint32(format.BlockHeaderSize+len(payload)))
	out = format.AppendU32(out, signature)
	return append(out, payload...)
}

// ExpandableStringBlock encodes the 0x314-byte layout shared by the
// EnvironmentVariable, IconEnvironment and Darwin blocks.
func ExpandableStringBlock(signature uint32, ansi, unicode string) []byte {
	payload := make([]byte, format.ExpandableStringANSILen+format.ExpandableStringUnicodeLen)
	copy(payload, ansi)
	copy(payload[format.ExpandableStringANSILen:], format.EncodeUTF16(unicode))
	return Block(signature, payload)
}

// ConsoleProps holds the ConsoleDataBlock fields tests usually care about.
type ConsoleProps struct {
	FillAttributes      uint16
	PopupFillAttributes uint16
	ScreenBufferSizeX   int16
	ScreenBufferSizeY   int16
	WindowSizeX         int16
	WindowSizeY         int16
	FontSize            uint32
	FontFamily          uint32
	FontWeight          uint32
	FaceName            string
	CursorSize          uint32
	QuickEdit           bool
	InsertMode          bool
	HistoryBufferSize   uint32
	HistoryBuffers      uint32
	ColorTable          [16]uint32
}

// Bytes encodes the ConsoleDataBlock.
func (c ConsoleProps) Bytes() []byte {
	b := make([]byte, format.ConsoleSize)
	format.PutU32(b, format.BlockSizeOffset, format.ConsoleSize)
	format.PutU32(b, format.BlockSignatureOffset, format.ConsoleSignature)
	format.PutU16(b, format.ConsoleFillAttributesOffset, c.FillAttributes)
	format.PutU16(b, format.ConsolePopupFillAttributesOffset, c.PopupFillAttributes)
	format.PutU16(b, format.ConsoleScreenBufferSizeXOffset, uint16(c.ScreenBufferSizeX))
	format.PutU16(b, format.ConsoleScreenBufferSizeYOffset, uint16(c.ScreenBufferSizeY))
	format.PutU16(b, format.ConsoleWindowSizeXOffset, uint16(c.WindowSizeX))
	format.PutU16(b, format.ConsoleWindowSizeYOffset, uint16(c.WindowSizeY))
	format.PutU32(b, format.ConsoleFontSizeOffset, c.FontSize)
	format.PutU32(b, format.ConsoleFontFamilyOffset, c.FontFamily)
	format.PutU32(b, format.ConsoleFontWeightOffset, c.FontWeight)
	copy(b[format.ConsoleFaceNameOffset:format.ConsoleFaceNameOffset+format.ConsoleFaceNameLen], format.EncodeUTF16(c.FaceName))
	format.PutU32(b, format.ConsoleCursorSizeOffset, c.CursorSize)
	format.PutU32(b, format.ConsoleQuickEditOffset, boolWord(c.QuickEdit))
	format.PutU32(b, format.ConsoleInsertModeOffset, boolWord(c.InsertMode))
	format.PutU32(b, format.ConsoleHistoryBufferSizeOffset, c.HistoryBufferSize)
	format.PutU32(b, format.ConsoleHistoryBufferCountOffset, c.HistoryBuffers)
	for i, v := range c.ColorTable {
		format.PutU32(b, format.ConsoleColorTableOffset+4*i, v)
	}
	return b
}

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// TrackerBlock encodes a TrackerDataBlock with the given machine ID and droids.
func TrackerBlock(machineID string, droid, birth [2]uuid.UUID) []byte {
	b := make([]byte, format.TrackerMinSize)
	format.PutU32(b, format.BlockSizeOffset, format.TrackerMinSize)
	format.PutU32(b, format.BlockSignatureOffset, format.TrackerSignature)
	format.PutU32(b, format.TrackerLengthOffset, format.TrackerMinLength)
	copy(b[format.TrackerMachineIDOffset:format.TrackerMachineIDOffset+format.TrackerMachineIDLen], machineID)
	copy(b[format.TrackerDroidOffset:], format.GUIDBytes(droid[0]))
	copy(b[format.TrackerDroidOffset+format.GUIDSize:], format.GUIDBytes(droid[1]))
	copy(b[format.TrackerDroidBirthOffset:], format.GUIDBytes(birth[0]))
	copy(b[format.TrackerDroidBirthOffset+format.GUIDSize:], format.GUIDBytes(birth[1]))
	return b
}

// KnownFolderBlock encodes a KnownFolderDataBlock.
func KnownFolderBlock(id uuid.UUID, offset uint32) []byte {
	payload := append(format.GUIDBytes(id), format.AppendU32(nil, offset)...)
	return Block(format.KnownFolderSignature, payload)
}

// SpecialFolderBlock encodes a SpecialFolderDataBlock.
func SpecialFolderBlock(folderID, offset uint32) []byte {
	return Block(format.SpecialFolderSignature, format.AppendU32(format.AppendU32(nil, folderID), offset))
}

// ConsoleFEBlock encodes a ConsoleFEDataBlock.
func ConsoleFEBlock(codePage uint32) []byte {
	return Block(format.ConsoleFESignature, format.AppendU32(nil, codePage))
}

// ShimBlock encodes a ShimDataBlock, padding the layer name to the minimum size.
func ShimBlock(layer string) []byte {
	payload := cstring16(layer)
	if need := format.ShimMinSize - format.BlockHeaderSize; len(payload) < need {
		payload = append(payload, make([]byte, need-len(payload))...)
	}
	return Block(format.ShimSignature, payload)
}

// VistaIDListBlock encodes a VistaAndAboveIDListDataBlock.
func VistaIDListBlock(items ...[]byte) []byte {
	return Block(format.VistaAndAboveIDListSignature, EncodeItemIDs(items...))
}
