package types

import "strings"

// flagName pairs a single-bit flag with its display name.
type flagName[T ~uint16 | ~uint32] struct {
	flag T
	name string
}

func flagNames[T ~uint16 | ~uint32](v T, table []flagName[T]) []string {
	var out []string
	for _, f := range table {
		if v&f.flag != 0 {
			out = append(out, f.name)
		}
	}
	return out
}

func joinFlags(names []string) string {
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// ============================================================================
// LinkFlags
// ============================================================================

// LinkFlags selects which optional structures follow the header and how the
// link is resolved.
type LinkFlags uint32

const (
	HasLinkTargetIDList         LinkFlags = 1 << 0
	HasLinkInfo                 LinkFlags = 1 << 1
	HasName                     LinkFlags = 1 << 2
	HasRelativePath             LinkFlags = 1 << 3
	HasWorkingDir               LinkFlags = 1 << 4
	HasArguments                LinkFlags = 1 << 5
	HasIconLocation             LinkFlags = 1 << 6
	IsUnicode                   LinkFlags = 1 << 7
	ForceNoLinkInfo             LinkFlags = 1 << 8
	HasExpString                LinkFlags = 1 << 9
	RunInSeparateProcess        LinkFlags = 1 << 11
	HasDarwinID                 LinkFlags = 1 << 12
	RunAsUser                   LinkFlags = 1 << 13
	HasExpIcon                  LinkFlags = 1 << 14
	NoPidlAlias                 LinkFlags = 1 << 15
	RunWithShimLayer            LinkFlags = 1 << 17
	ForceNoLinkTrack            LinkFlags = 1 << 18
	EnableTargetMetadata        LinkFlags = 1 << 19
	DisableLinkPathTracking     LinkFlags = 1 << 20
	DisableKnownFolderTracking  LinkFlags = 1 << 21
	DisableKnownFolderAlias     LinkFlags = 1 << 22
	AllowLinkToLink             LinkFlags = 1 << 23
	UnaliasOnSave               LinkFlags = 1 << 24
	PreferEnvironmentPath       LinkFlags = 1 << 25
	KeepLocalIDListForUNCTarget LinkFlags = 1 << 26
)

var linkFlagNames = []flagName[LinkFlags]{
	{HasLinkTargetIDList, "HasLinkTargetIDList"},
	{HasLinkInfo, "HasLinkInfo"},
	{HasName, "HasName"},
	{HasRelativePath, "HasRelativePath"},
	{HasWorkingDir, "HasWorkingDir"},
	{HasArguments, "HasArguments"},
	{HasIconLocation, "HasIconLocation"},
	{IsUnicode, "IsUnicode"},
	{ForceNoLinkInfo, "ForceNoLinkInfo"},
	{HasExpString, "HasExpString"},
	{RunInSeparateProcess, "RunInSeparateProcess"},
	{HasDarwinID, "HasDarwinID"},
	{RunAsUser, "RunAsUser"},
	{HasExpIcon, "HasExpIcon"},
	{NoPidlAlias, "NoPidlAlias"},
	{RunWithShimLayer, "RunWithShimLayer"},
	{ForceNoLinkTrack, "ForceNoLinkTrack"},
	{EnableTargetMetadata, "EnableTargetMetadata"},
	{DisableLinkPathTracking, "DisableLinkPathTracking"},
	{DisableKnownFolderTracking, "DisableKnownFolderTracking"},
	{DisableKnownFolderAlias, "DisableKnownFolderAlias"},
	{AllowLinkToLink, "AllowLinkToLink"},
	{UnaliasOnSave, "UnaliasOnSave"},
	{PreferEnvironmentPath, "PreferEnvironmentPath"},
	{KeepLocalIDListForUNCTarget, "KeepLocalIDListForUNCTarget"},
}

// LinkFlagsKnown is the union of every defined LinkFlags bit.
const LinkFlagsKnown = HasLinkTargetIDList | HasLinkInfo | HasName | HasRelativePath |
	HasWorkingDir | HasArguments | HasIconLocation | IsUnicode | ForceNoLinkInfo |
	HasExpString | RunInSeparateProcess | HasDarwinID | RunAsUser | HasExpIcon |
	NoPidlAlias | RunWithShimLayer | ForceNoLinkTrack | EnableTargetMetadata |
	DisableLinkPathTracking | DisableKnownFolderTracking | DisableKnownFolderAlias |
	AllowLinkToLink | UnaliasOnSave | PreferEnvironmentPath | KeepLocalIDListForUNCTarget

// ParseLinkFlags validates a raw LinkFlags word.
func ParseLinkFlags(v uint32) (LinkFlags, error) {
	if v&^uint32(LinkFlagsKnown) != 0 {
		return 0, NewFieldError("ShellLinkHeader", "LinkFlags", -1, uint64(v), ErrLinkFlags)
	}
	return LinkFlags(v), nil
}

func (f LinkFlags) Has(flag LinkFlags) bool { return f&flag == flag }
func (f LinkFlags) Wire() uint32            { return uint32(f) }
func (f LinkFlags) Names() []string         { return flagNames(f, linkFlagNames) }
func (f LinkFlags) String() string          { return joinFlags(f.Names()) }

// ============================================================================
// FileAttributes
// ============================================================================

// FileAttributes mirrors the target's FILE_ATTRIBUTE_* bits at link creation.
type FileAttributes uint32

const (
	FileAttributeReadOnly          FileAttributes = 1 << 0
	FileAttributeHidden            FileAttributes = 1 << 1
	FileAttributeSystem            FileAttributes = 1 << 2
	FileAttributeDirectory         FileAttributes = 1 << 4
	FileAttributeArchive           FileAttributes = 1 << 5
	FileAttributeNormal            FileAttributes = 1 << 7
	FileAttributeTemporary         FileAttributes = 1 << 8
	FileAttributeSparseFile        FileAttributes = 1 << 9
	FileAttributeReparsePoint      FileAttributes = 1 << 10
	FileAttributeCompressed        FileAttributes = 1 << 11
	FileAttributeOffline           FileAttributes = 1 << 12
	FileAttributeNotContentIndexed FileAttributes = 1 << 13
	FileAttributeEncrypted         FileAttributes = 1 << 14
)

var fileAttributeNames = []flagName[FileAttributes]{
	{FileAttributeReadOnly, "ReadOnly"},
	{FileAttributeHidden, "Hidden"},
	{FileAttributeSystem, "System"},
	{FileAttributeDirectory, "Directory"},
	{FileAttributeArchive, "Archive"},
	{FileAttributeNormal, "Normal"},
	{FileAttributeTemporary, "Temporary"},
	{FileAttributeSparseFile, "SparseFile"},
	{FileAttributeReparsePoint, "ReparsePoint"},
	{FileAttributeCompressed, "Compressed"},
	{FileAttributeOffline, "Offline"},
	{FileAttributeNotContentIndexed, "NotContentIndexed"},
	{FileAttributeEncrypted, "Encrypted"},
}

// FileAttributesKnown is the union of every defined FileAttributes bit.
// Bits 3 and 6 are reserved and must be zero.
const FileAttributesKnown = FileAttributeReadOnly | FileAttributeHidden | FileAttributeSystem |
	FileAttributeDirectory | FileAttributeArchive | FileAttributeNormal | FileAttributeTemporary |
	FileAttributeSparseFile | FileAttributeReparsePoint | FileAttributeCompressed |
	FileAttributeOffline | FileAttributeNotContentIndexed | FileAttributeEncrypted

// ParseFileAttributes validates a raw FileAttributes word.
func ParseFileAttributes(v uint32) (FileAttributes, error) {
	if v&^uint32(FileAttributesKnown) != 0 {
		return 0, NewFieldError("ShellLinkHeader", "FileAttributes", -1, uint64(v), ErrFileAttributes)
	}
	return FileAttributes(v), nil
}

func (a FileAttributes) Has(flag FileAttributes) bool { return a&flag == flag }
func (a FileAttributes) Wire() uint32                 { return uint32(a) }
func (a FileAttributes) Names() []string              { return flagNames(a, fileAttributeNames) }
func (a FileAttributes) String() string               { return joinFlags(a.Names()) }

// ============================================================================
// LinkInfoFlags / NetworkLinkFlags
// ============================================================================

// LinkInfoFlags tells which location structures a LinkInfo carries.
type LinkInfoFlags uint32

const (
	VolumeIDAndLocalBasePath               LinkInfoFlags = 1 << 0
	CommonNetworkRelativeLinkAndPathSuffix LinkInfoFlags = 1 << 1

	LinkInfoFlagsKnown = VolumeIDAndLocalBasePath | CommonNetworkRelativeLinkAndPathSuffix
)

var linkInfoFlagNames = []flagName[LinkInfoFlags]{
	{VolumeIDAndLocalBasePath, "VolumeIDAndLocalBasePath"},
	{CommonNetworkRelativeLinkAndPathSuffix, "CommonNetworkRelativeLinkAndPathSuffix"},
}

// ParseLinkInfoFlags validates a raw LinkInfoFlags word.
func ParseLinkInfoFlags(v uint32) (LinkInfoFlags, error) {
	if v&^uint32(LinkInfoFlagsKnown) != 0 {
		return 0, NewFieldError("LinkInfo", "LinkInfoFlags", -1, uint64(v), ErrLinkInfoFlags)
	}
	return LinkInfoFlags(v), nil
}

func (f LinkInfoFlags) Has(flag LinkInfoFlags) bool { return f&flag == flag }
func (f LinkInfoFlags) Wire() uint32                { return uint32(f) }
func (f LinkInfoFlags) Names() []string             { return flagNames(f, linkInfoFlagNames) }
func (f LinkInfoFlags) String() string              { return joinFlags(f.Names()) }

// NetworkLinkFlags tells which optional CommonNetworkRelativeLink fields are valid.
type NetworkLinkFlags uint32

const (
	ValidDevice  NetworkLinkFlags = 1 << 0
	ValidNetType NetworkLinkFlags = 1 << 1

	NetworkLinkFlagsKnown = ValidDevice | ValidNetType
)

var networkLinkFlagNames = []flagName[NetworkLinkFlags]{
	{ValidDevice, "ValidDevice"},
	{ValidNetType, "ValidNetType"},
}

// ParseNetworkLinkFlags validates a raw CommonNetworkRelativeLinkFlags word.
func ParseNetworkLinkFlags(v uint32) (NetworkLinkFlags, error) {
	if v&^uint32(NetworkLinkFlagsKnown) != 0 {
		return 0, NewFieldError("CommonNetworkRelativeLink", "Flags", -1, uint64(v), ErrNetworkLinkFlags)
	}
	return NetworkLinkFlags(v), nil
}

func (f NetworkLinkFlags) Has(flag NetworkLinkFlags) bool { return f&flag == flag }
func (f NetworkLinkFlags) Wire() uint32                   { return uint32(f) }
func (f NetworkLinkFlags) Names() []string                { return flagNames(f, networkLinkFlagNames) }
func (f NetworkLinkFlags) String() string                 { return joinFlags(f.Names()) }

// ============================================================================
// Console bit-sets
// ============================================================================

// FillAttributes are console text colors. High bits are kept as written.
type FillAttributes uint16

const (
	ForegroundBlue      FillAttributes = 0x0001
	ForegroundGreen     FillAttributes = 0x0002
	ForegroundRed       FillAttributes = 0x0004
	ForegroundIntensity FillAttributes = 0x0008
	BackgroundBlue      FillAttributes = 0x0010
	BackgroundGreen     FillAttributes = 0x0020
	BackgroundRed       FillAttributes = 0x0040
	BackgroundIntensity FillAttributes = 0x0080
)

var fillAttributeNames = []flagName[FillAttributes]{
	{ForegroundBlue, "ForegroundBlue"},
	{ForegroundGreen, "ForegroundGreen"},
	{ForegroundRed, "ForegroundRed"},
	{ForegroundIntensity, "ForegroundIntensity"},
	{BackgroundBlue, "BackgroundBlue"},
	{BackgroundGreen, "BackgroundGreen"},
	{BackgroundRed, "BackgroundRed"},
	{BackgroundIntensity, "BackgroundIntensity"},
}

func (a FillAttributes) Has(flag FillAttributes) bool { return a&flag == flag }
func (a FillAttributes) Wire() uint16                 { return uint16(a) }
func (a FillAttributes) Names() []string              { return flagNames(a, fillAttributeNames) }
func (a FillAttributes) String() string               { return joinFlags(a.Names()) }

// FontPitch is the low nibble of the console FontFamily word.
type FontPitch uint32

const (
	FontPitchFixed    FontPitch = 0x1
	FontPitchVector   FontPitch = 0x2
	FontPitchTrueType FontPitch = 0x4
	FontPitchDevice   FontPitch = 0x8

	FontPitchKnown = FontPitchFixed | FontPitchVector | FontPitchTrueType | FontPitchDevice
)

var fontPitchNames = []flagName[FontPitch]{
	{FontPitchFixed, "FixedPitch"},
	{FontPitchVector, "Vector"},
	{FontPitchTrueType, "TrueType"},
	{FontPitchDevice, "Device"},
}

func (p FontPitch) Has(flag FontPitch) bool { return p&flag == flag }
func (p FontPitch) Wire() uint32            { return uint32(p) }
func (p FontPitch) Names() []string         { return flagNames(p, fontPitchNames) }
func (p FontPitch) String() string          { return joinFlags(p.Names()) }
