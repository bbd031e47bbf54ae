package types

// LinkInfo records where the link target lived when the link was made: a
// local volume plus base path, a network share, or both.
type LinkInfo struct {
	Size       uint32
	HeaderSize uint32
	Flags      LinkInfoFlags

	VolumeIDOffset                  uint32
	LocalBasePathOffset             uint32
	CommonNetworkRelativeLinkOffset uint32
	CommonPathSuffixOffset          uint32
	LocalBasePathOffsetUnicode      uint32 // zero when HeaderSize < 0x24
	CommonPathSuffixOffsetUnicode   uint32 // zero when HeaderSize < 0x24

	VolumeID                  *VolumeID
	LocalBasePath             string
	LocalBasePathUnicode      string
	CommonNetworkRelativeLink *CommonNetworkRelativeLink
	CommonPathSuffix          string
	CommonPathSuffixUnicode   string
}

// VolumeID describes the volume holding a local target.
type VolumeID struct {
	Size                     uint32
	DriveType                DriveType
	DriveSerialNumber        uint32
	VolumeLabelOffset        uint32
	VolumeLabelOffsetUnicode uint32 // set only when VolumeLabelOffset is 0x14
	VolumeLabel              string
	LabelIsUnicode           bool
}

// CommonNetworkRelativeLink describes the network share holding a target.
type CommonNetworkRelativeLink struct {
	Size                    uint32
	Flags                   NetworkLinkFlags
	NetNameOffset           uint32
	DeviceNameOffset        uint32
	NetworkProviderType     NetworkProviderType // NetProviderNone unless ValidNetType is set
	NetworkProviderTypeRaw  uint32
	NetNameOffsetUnicode    uint32
	DeviceNameOffsetUnicode uint32
	NetName                 string
	DeviceName              string
	NetNameUnicode          string
	DeviceNameUnicode       string
}

// LocalPath joins the local base path with the common suffix, preferring the
// Unicode forms. It returns "" when the link carries no local location.
func (li *LinkInfo) LocalPath() string {
	if li == nil || !li.Flags.Has(VolumeIDAndLocalBasePath) {
		return ""
	}
	base := firstNonEmpty(li.LocalBasePathUnicode, li.LocalBasePath)
	if base == "" {
		return ""
	}
	return joinWindowsPath(base, firstNonEmpty(li.CommonPathSuffixUnicode, li.CommonPathSuffix))
}

// NetworkPath joins the share name with the common suffix. It returns "" when
// the link carries no network location.
func (li *LinkInfo) NetworkPath() string {
	if li == nil || li.CommonNetworkRelativeLink == nil {
		return ""
	}
	cnrl := li.CommonNetworkRelativeLink
	share := firstNonEmpty(cnrl.NetNameUnicode, cnrl.NetName)
	if share == "" {
		return ""
	}
	return joinWindowsPath(share, firstNonEmpty(li.CommonPathSuffixUnicode, li.CommonPathSuffix))
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func joinWindowsPath(base, suffix string) string {
	if suffix == "" {
		return base
	}
	if base[len(base)-1] == '\\' || suffix[0] == '\\' {
		return base + suffix
	}
	return base + `\` + suffix
}
