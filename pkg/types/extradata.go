package types

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
)

// Extra data block signatures.
const (
	SignatureEnvironmentVariable uint32 = 0xA0000001
	SignatureConsole             uint32 = 0xA0000002
	SignatureTracker             uint32 = 0xA0000003
	SignatureConsoleFE           uint32 = 0xA0000004
	SignatureSpecialFolder       uint32 = 0xA0000005
	SignatureDarwin              uint32 = 0xA0000006
	SignatureIconEnvironment     uint32 = 0xA0000007
	SignatureShim                uint32 = 0xA0000008
	SignaturePropertyStore       uint32 = 0xA0000009
	SignatureKnownFolder         uint32 = 0xA000000B
	SignatureVistaAndAboveIDList uint32 = 0xA000000C
)

// ExtraDataBlock is one decoded block of the trailing ExtraData section.
type ExtraDataBlock interface {
	// Signature is the block's wire signature.
	Signature() uint32
	// BlockSize is the declared size, including the 8-byte block header.
	BlockSize() uint32
	// BlockName is the structure name, e.g. "TrackerDataBlock".
	BlockName() string
}

// EnvironmentVariableDataBlock holds a target path containing environment
// variables, e.g. %windir%\notepad.exe.
type EnvironmentVariableDataBlock struct {
	Size          uint32
	TargetANSI    string
	TargetUnicode string
}

func (EnvironmentVariableDataBlock) Signature() uint32   { return SignatureEnvironmentVariable }
func (b EnvironmentVariableDataBlock) BlockSize() uint32 { return b.Size }
func (EnvironmentVariableDataBlock) BlockName() string   { return "EnvironmentVariableDataBlock" }

// Target returns the Unicode target when present, else the ANSI one.
func (b EnvironmentVariableDataBlock) Target() string {
	return firstNonEmpty(b.TargetUnicode, b.TargetANSI)
}

// ConsoleDataBlock holds console window settings for console applications.
type ConsoleDataBlock struct {
	Size                   uint32
	FillAttributes         FillAttributes
	PopupFillAttributes    FillAttributes
	ScreenBufferSizeX      int16
	ScreenBufferSizeY      int16
	WindowSizeX            int16
	WindowSizeY            int16
	WindowOriginX          int16
	WindowOriginY          int16
	FontSize               uint32
	FontFamily             FontFamily
	FontPitch              FontPitch
	FontWeight             uint32
	FaceName               string
	CursorSize             uint32
	FullScreen             bool
	QuickEdit              bool
	InsertMode             bool
	AutoPosition           bool
	HistoryBufferSize      uint32
	NumberOfHistoryBuffers uint32
	HistoryNoDup           bool
	ColorTable             [16]uint32
}

func (ConsoleDataBlock) Signature() uint32   { return SignatureConsole }
func (b ConsoleDataBlock) BlockSize() uint32 { return b.Size }
func (ConsoleDataBlock) BlockName() string   { return "ConsoleDataBlock" }

// FontWidth and FontHeight split FontSize. Vector fonts store only a height.
func (b ConsoleDataBlock) FontWidth() uint16  { return uint16(b.FontSize) }
func (b ConsoleDataBlock) FontHeight() uint16 { return uint16(b.FontSize >> 16) }

// TrackerDataBlock carries the distributed link tracking data used to find a
// moved target.
type TrackerDataBlock struct {
	Size       uint32
	Length     uint32
	Version    uint32
	MachineID  string
	Droid      [2]uuid.UUID // volume, object
	DroidBirth [2]uuid.UUID
}

func (TrackerDataBlock) Signature() uint32   { return SignatureTracker }
func (b TrackerDataBlock) BlockSize() uint32 { return b.Size }
func (TrackerDataBlock) BlockName() string   { return "TrackerDataBlock" }

// MACAddress returns the node field of the file droid. It is only meaningful
// when the droid is a time-based (version 1) UUID.
func (b TrackerDataBlock) MACAddress() (net.HardwareAddr, bool) {
	if b.Droid[1].Version() != 1 {
		return nil, false
	}
	return net.HardwareAddr(b.Droid[1].NodeID()), true
}

// DroidTime returns the creation time embedded in a version 1 file droid.
func (b TrackerDataBlock) DroidTime() (time.Time, bool) {
	if b.Droid[1].Version() != 1 {
		return time.Time{}, false
	}
	sec, nsec := b.Droid[1].Time().UnixTime()
	return time.Unix(sec, nsec).UTC(), true
}

// ConsoleFEDataBlock holds the code page used for console text.
type ConsoleFEDataBlock struct {
	Size     uint32
	CodePage uint32
}

func (ConsoleFEDataBlock) Signature() uint32   { return SignatureConsoleFE }
func (b ConsoleFEDataBlock) BlockSize() uint32 { return b.Size }
func (ConsoleFEDataBlock) BlockName() string   { return "ConsoleFEDataBlock" }

// SpecialFolderDataBlock locates a CSIDL special folder within the IDList.
type SpecialFolderDataBlock struct {
	Size            uint32
	SpecialFolderID uint32
	Offset          uint32
}

func (SpecialFolderDataBlock) Signature() uint32   { return SignatureSpecialFolder }
func (b SpecialFolderDataBlock) BlockSize() uint32 { return b.Size }
func (SpecialFolderDataBlock) BlockName() string   { return "SpecialFolderDataBlock" }

// DarwinDataBlock carries an application identifier for Windows Installer
// advertised shortcuts.
type DarwinDataBlock struct {
	Size              uint32
	DarwinDataANSI    string
	DarwinDataUnicode string
}

func (DarwinDataBlock) Signature() uint32   { return SignatureDarwin }
func (b DarwinDataBlock) BlockSize() uint32 { return b.Size }
func (DarwinDataBlock) BlockName() string   { return "DarwinDataBlock" }

// IconEnvironmentDataBlock holds an icon path containing environment variables.
type IconEnvironmentDataBlock struct {
	Size          uint32
	TargetANSI    string
	TargetUnicode string
}

func (IconEnvironmentDataBlock) Signature() uint32   { return SignatureIconEnvironment }
func (b IconEnvironmentDataBlock) BlockSize() uint32 { return b.Size }
func (IconEnvironmentDataBlock) BlockName() string   { return "IconEnvironmentDataBlock" }

// Target returns the Unicode icon path when present, else the ANSI one.
func (b IconEnvironmentDataBlock) Target() string {
	return firstNonEmpty(b.TargetUnicode, b.TargetANSI)
}

// ShimDataBlock names the application compatibility shim layer.
type ShimDataBlock struct {
	Size      uint32
	LayerName string
}

func (ShimDataBlock) Signature() uint32   { return SignatureShim }
func (b ShimDataBlock) BlockSize() uint32 { return b.Size }
func (ShimDataBlock) BlockName() string   { return "ShimDataBlock" }

// PropertyStoreDataBlock holds a serialized property storage sequence.
// Data is kept verbatim; Storages parses it on demand.
type PropertyStoreDataBlock struct {
	Size uint32
	Data []byte
}

func (PropertyStoreDataBlock) Signature() uint32   { return SignaturePropertyStore }
func (b PropertyStoreDataBlock) BlockSize() uint32 { return b.Size }
func (PropertyStoreDataBlock) BlockName() string   { return "PropertyStoreDataBlock" }

// KnownFolderDataBlock locates a known folder within the IDList.
type KnownFolderDataBlock struct {
	Size          uint32
	KnownFolderID uuid.UUID
	Offset        uint32
}

func (KnownFolderDataBlock) Signature() uint32   { return SignatureKnownFolder }
func (b KnownFolderDataBlock) BlockSize() uint32 { return b.Size }
func (KnownFolderDataBlock) BlockName() string   { return "KnownFolderDataBlock" }

// VistaAndAboveIDListDataBlock holds an alternate IDList used in place of
// LinkTargetIDList on Windows Vista and later.
type VistaAndAboveIDListDataBlock struct {
	Size   uint32
	IDList IDList
}

func (VistaAndAboveIDListDataBlock) Signature() uint32   { return SignatureVistaAndAboveIDList }
func (b VistaAndAboveIDListDataBlock) BlockSize() uint32 { return b.Size }
func (VistaAndAboveIDListDataBlock) BlockName() string   { return "VistaAndAboveIDListDataBlock" }

// UnknownBlock is a block whose signature is not recognized. Its payload
// (everything after the 8-byte header) is kept so callers can inspect it.
type UnknownBlock struct {
	Size         uint32
	RawSignature uint32
	Data         []byte
}

func (b UnknownBlock) Signature() uint32 { return b.RawSignature }
func (b UnknownBlock) BlockSize() uint32 { return b.Size }
func (b UnknownBlock) BlockName() string { return fmt.Sprintf("UnknownBlock(0x%08X)", b.RawSignature) }
