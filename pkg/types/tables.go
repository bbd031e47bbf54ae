package types

// tableEntry binds a closed-set value to its wire encoding and display name.
// Tables are small and scanned linearly.
type tableEntry[T comparable, W comparable] struct {
	value T
	wire  W
	name  string
}

func fromWire[T, W comparable](table []tableEntry[T, W], w W) (T, bool) {
	for _, e := range table {
		if e.wire == w {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

func toWire[T, W comparable](table []tableEntry[T, W], v T) (W, bool) {
	for _, e := range table {
		if e.value == v {
			return e.wire, true
		}
	}
	var zero W
	return zero, false
}

func nameOf[T, W comparable](table []tableEntry[T, W], v T, fallback string) string {
	for _, e := range table {
		if e.value == v {
			return e.name
		}
	}
	return fallback
}

// ============================================================================
// ShowCommand
// ============================================================================

// ShowCommand is the initial window state of the launched application.
type ShowCommand int

const (
	ShowNormal ShowCommand = iota
	ShowMaximized
	ShowMinNoActive
)

var showCommandTable = []tableEntry[ShowCommand, uint32]{
	{ShowNormal, 0x1, "SW_SHOWNORMAL"},
	{ShowMaximized, 0x3, "SW_SHOWMAXIMIZED"},
	{ShowMinNoActive, 0x7, "SW_SHOWMINNOACTIVE"},
}

// ShowCommandFromWire maps a raw ShowCommand. Values other than 0x3 and 0x7
// decode as ShowNormal.
func ShowCommandFromWire(w uint32) ShowCommand {
	if v, ok := fromWire(showCommandTable, w); ok {
		return v
	}
	return ShowNormal
}

func (s ShowCommand) Wire() uint32 {
	w, _ := toWire(showCommandTable, s)
	return w
}

func (s ShowCommand) String() string { return nameOf(showCommandTable, s, "SW_UNKNOWN") }

// ============================================================================
// DriveType
// ============================================================================

// DriveType is the kind of volume a VolumeID describes.
type DriveType int

const (
	DriveUnknown DriveType = iota
	DriveNoRootDir
	DriveRemovable
	DriveFixed
	DriveRemote
	DriveCDROM
	DriveRAMDisk
)

var driveTypeTable = []tableEntry[DriveType, uint32]{
	{DriveUnknown, 0, "DRIVE_UNKNOWN"},
	{DriveNoRootDir, 1, "DRIVE_NO_ROOT_DIR"},
	{DriveRemovable, 2, "DRIVE_REMOVABLE"},
	{DriveFixed, 3, "DRIVE_FIXED"},
	{DriveRemote, 4, "DRIVE_REMOTE"},
	{DriveCDROM, 5, "DRIVE_CDROM"},
	{DriveRAMDisk, 6, "DRIVE_RAMDISK"},
}

func DriveTypeFromWire(w uint32) (DriveType, bool) { return fromWire(driveTypeTable, w) }

func (d DriveType) Wire() uint32 {
	w, _ := toWire(driveTypeTable, d)
	return w
}

func (d DriveType) String() string { return nameOf(driveTypeTable, d, "DRIVE_INVALID") }

// ============================================================================
// NetworkProviderType
// ============================================================================

// NetworkProviderType identifies the network provider (WNNC_NET_*) of a
// CommonNetworkRelativeLink. The zero value means no provider was recorded.
type NetworkProviderType int

const (
	NetProviderNone NetworkProviderType = iota
	NetProviderAvid
	NetProviderDocuspace
	NetProviderMangosoft
	NetProviderSernet
	NetProviderRiverfront1
	NetProviderRiverfront2
	NetProviderDecorb
	NetProviderProtstor
	NetProviderFJRedir
	NetProviderDistinct
	NetProviderTwins
	NetProviderRDR2Sample
	NetProviderCSC
	NetProviderThreeIn1
	NetProviderExtendNet
	NetProviderStac
	NetProviderFoxbat
	NetProviderYahoo
	NetProviderExifs
	NetProviderDAV
	NetProviderKnoware
	NetProviderObjectDire
	NetProviderMasfax
	NetProviderHobNFS
	NetProviderShiva
	NetProviderIBMAL
	NetProviderLock
	NetProviderTermsrv
	NetProviderSRT
	NetProviderQuincy
	NetProviderOpenAFS
	NetProviderAvid1
	NetProviderDFS
	NetProviderKWNP
	NetProviderZenworks
	NetProviderDriveOnWeb
	NetProviderVMware
	NetProviderRSFX
	NetProviderMFiles
	NetProviderMSNFS
	NetProviderGoogle
)

var networkProviderTable = []tableEntry[NetworkProviderType, uint32]{
	{NetProviderAvid, 0x001A0000, "WNNC_NET_AVID"},
	{NetProviderDocuspace, 0x001B0000, "WNNC_NET_DOCUSPACE"},
	{NetProviderMangosoft, 0x001C0000, "WNNC_NET_MANGOSOFT"},
	{NetProviderSernet, 0x001D0000, "WNNC_NET_SERNET"},
	{NetProviderRiverfront1, 0x001E0000, "WNNC_NET_RIVERFRONT1"},
	{NetProviderRiverfront2, 0x001F0000, "WNNC_NET_RIVERFRONT2"},
	{NetProviderDecorb, 0x00200000, "WNNC_NET_DECORB"},
	{NetProviderProtstor, 0x00210000, "WNNC_NET_PROTSTOR"},
	{NetProviderFJRedir, 0x00220000, "WNNC_NET_FJ_REDIR"},
	{NetProviderDistinct, 0x00230000, "WNNC_NET_DISTINCT"},
	{NetProviderTwins, 0x00240000, "WNNC_NET_TWINS"},
	{NetProviderRDR2Sample, 0x00250000, "WNNC_NET_RDR2SAMPLE"},
	{NetProviderCSC, 0x00260000, "WNNC_NET_CSC"},
	{NetProviderThreeIn1, 0x00270000, "WNNC_NET_3IN1"},
	{NetProviderExtendNet, 0x00290000, "WNNC_NET_EXTENDNET"},
	{NetProviderStac, 0x002A0000, "WNNC_NET_STAC"},
	{NetProviderFoxbat, 0x002B0000, "WNNC_NET_FOXBAT"},
	{NetProviderYahoo, 0x002C0000, "WNNC_NET_YAHOO"},
	{NetProviderExifs, 0x002D0000, "WNNC_NET_EXIFS"},
	{NetProviderDAV, 0x002E0000, "WNNC_NET_DAV"},
	{NetProviderKnoware, 0x002F0000, "WNNC_NET_KNOWARE"},
	{NetProviderObjectDire, 0x00300000, "WNNC_NET_OBJECT_DIRE"},
	{NetProviderMasfax, 0x00310000, "WNNC_NET_MASFAX"},
	{NetProviderHobNFS, 0x00320000, "WNNC_NET_HOB_NFS"},
	{NetProviderShiva, 0x00330000, "WNNC_NET_SHIVA"},
	{NetProviderIBMAL, 0x00340000, "WNNC_NET_IBMAL"},
	{NetProviderLock, 0x00350000, "WNNC_NET_LOCK"},
	{NetProviderTermsrv, 0x00360000, "WNNC_NET_TERMSRV"},
	{NetProviderSRT, 0x00370000, "WNNC_NET_SRT"},
	{NetProviderQuincy, 0x00380000, "WNNC_NET_QUINCY"},
	{NetProviderOpenAFS, 0x00390000, "WNNC_NET_OPENAFS"},
	{NetProviderAvid1, 0x003A0000, "WNNC_NET_AVID1"},
	{NetProviderDFS, 0x003B0000, "WNNC_NET_DFS"},
	{NetProviderKWNP, 0x003C0000, "WNNC_NET_KWNP"},
	{NetProviderZenworks, 0x003D0000, "WNNC_NET_ZENWORKS"},
	{NetProviderDriveOnWeb, 0x003E0000, "WNNC_NET_DRIVEONWEB"},
	{NetProviderVMware, 0x003F0000, "WNNC_NET_VMWARE"},
	{NetProviderRSFX, 0x00400000, "WNNC_NET_RSFX"},
	{NetProviderMFiles, 0x00410000, "WNNC_NET_MFILES"},
	{NetProviderMSNFS, 0x00420000, "WNNC_NET_MS_NFS"},
	{NetProviderGoogle, 0x00430000, "WNNC_NET_GOOGLE"},
}

func NetworkProviderTypeFromWire(w uint32) (NetworkProviderType, bool) {
	return fromWire(networkProviderTable, w)
}

func (p NetworkProviderType) Wire() uint32 {
	w, _ := toWire(networkProviderTable, p)
	return w
}

func (p NetworkProviderType) String() string {
	if p == NetProviderNone {
		return "none"
	}
	return nameOf(networkProviderTable, p, "WNNC_NET_INVALID")
}

// ============================================================================
// FontFamily
// ============================================================================

// FontFamily is the family nibble (bits 4-7) of the console FontFamily word.
type FontFamily int

const (
	FontDontCare FontFamily = iota
	FontRoman
	FontSwiss
	FontModern
	FontScript
	FontDecorative
)

var fontFamilyTable = []tableEntry[FontFamily, uint32]{
	{FontDontCare, 0x00, "FF_DONTCARE"},
	{FontRoman, 0x10, "FF_ROMAN"},
	{FontSwiss, 0x20, "FF_SWISS"},
	{FontModern, 0x30, "FF_MODERN"},
	{FontScript, 0x40, "FF_SCRIPT"},
	{FontDecorative, 0x50, "FF_DECORATIVE"},
}

func FontFamilyFromWire(w uint32) (FontFamily, bool) { return fromWire(fontFamilyTable, w) }

func (f FontFamily) Wire() uint32 {
	w, _ := toWire(fontFamilyTable, f)
	return w
}

func (f FontFamily) String() string { return nameOf(fontFamilyTable, f, "FF_INVALID") }

// ============================================================================
// HotKey
// ============================================================================

// HotKey is the virtual key of a link's keyboard shortcut. The zero value
// means no key.
type HotKey int

const (
	KeyNone HotKey = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyNumLock
	KeyScrollLock
)

var hotKeyTable = []tableEntry[HotKey, uint8]{
	{Key0, 0x30, "0"},
	{Key1, 0x31, "1"},
	{Key2, 0x32, "2"},
	{Key3, 0x33, "3"},
	{Key4, 0x34, "4"},
	{Key5, 0x35, "5"},
	{Key6, 0x36, "6"},
	{Key7, 0x37, "7"},
	{Key8, 0x38, "8"},
	{Key9, 0x39, "9"},
	{KeyA, 0x41, "A"},
	{KeyB, 0x42, "B"},
	{KeyC, 0x43, "C"},
	{KeyD, 0x44, "D"},
	{KeyE, 0x45, "E"},
	{KeyF, 0x46, "F"},
	{KeyG, 0x47, "G"},
	{KeyH, 0x48, "H"},
	{KeyI, 0x49, "I"},
	{KeyJ, 0x4A, "J"},
	{KeyK, 0x4B, "K"},
	{KeyL, 0x4C, "L"},
	{KeyM, 0x4D, "M"},
	{KeyN, 0x4E, "N"},
	{KeyO, 0x4F, "O"},
	{KeyP, 0x50, "P"},
	{KeyQ, 0x51, "Q"},
	{KeyR, 0x52, "R"},
	{KeyS, 0x53, "S"},
	{KeyT, 0x54, "T"},
	{KeyU, 0x55, "U"},
	{KeyV, 0x56, "V"},
	{KeyW, 0x57, "W"},
	{KeyX, 0x58, "X"},
	{KeyY, 0x59, "Y"},
	{KeyZ, 0x5A, "Z"},
	{KeyF1, 0x70, "F1"},
	{KeyF2, 0x71, "F2"},
	{KeyF3, 0x72, "F3"},
	{KeyF4, 0x73, "F4"},
	{KeyF5, 0x74, "F5"},
	{KeyF6, 0x75, "F6"},
	{KeyF7, 0x76, "F7"},
	{KeyF8, 0x77, "F8"},
	{KeyF9, 0x78, "F9"},
	{KeyF10, 0x79, "F10"},
	{KeyF11, 0x7A, "F11"},
	{KeyF12, 0x7B, "F12"},
	{KeyF13, 0x7C, "F13"},
	{KeyF14, 0x7D, "F14"},
	{KeyF15, 0x7E, "F15"},
	{KeyF16, 0x7F, "F16"},
	{KeyF17, 0x80, "F17"},
	{KeyF18, 0x81, "F18"},
	{KeyF19, 0x82, "F19"},
	{KeyF20, 0x83, "F20"},
	{KeyF21, 0x84, "F21"},
	{KeyF22, 0x85, "F22"},
	{KeyF23, 0x86, "F23"},
	{KeyF24, 0x87, "F24"},
	{KeyNumLock, 0x90, "NumLock"},
	{KeyScrollLock, 0x91, "ScrollLock"},
}

func HotKeyFromWire(w uint8) (HotKey, bool) { return fromWire(hotKeyTable, w) }

func (k HotKey) Wire() uint8 {
	w, _ := toWire(hotKeyTable, k)
	return w
}

func (k HotKey) String() string { return nameOf(hotKeyTable, k, "none") }

// ============================================================================
// HotKeyModifier
// ============================================================================

// HotKeyModifier is a non-empty combination of Shift, Control and Alt.
type HotKeyModifier int

const (
	ModNone HotKeyModifier = iota
	ModShift
	ModControl
	ModShiftControl
	ModAlt
	ModShiftAlt
	ModControlAlt
	ModShiftControlAlt
)

const (
	hotKeyShift   = 0x01
	hotKeyControl = 0x02
	hotKeyAlt     = 0x04
)

var hotKeyModifierTable = []tableEntry[HotKeyModifier, uint8]{
	{ModShift, hotKeyShift, "Shift"},
	{ModControl, hotKeyControl, "Ctrl"},
	{ModShiftControl, hotKeyShift | hotKeyControl, "Shift+Ctrl"},
	{ModAlt, hotKeyAlt, "Alt"},
	{ModShiftAlt, hotKeyShift | hotKeyAlt, "Shift+Alt"},
	{ModControlAlt, hotKeyControl | hotKeyAlt, "Ctrl+Alt"},
	{ModShiftControlAlt, hotKeyShift | hotKeyControl | hotKeyAlt, "Shift+Ctrl+Alt"},
}

func HotKeyModifierFromWire(w uint8) (HotKeyModifier, bool) {
	return fromWire(hotKeyModifierTable, w)
}

func (m HotKeyModifier) Wire() uint8 {
	w, _ := toWire(hotKeyModifierTable, m)
	return w
}

func (m HotKeyModifier) Shift() bool   { return m.Wire()&hotKeyShift != 0 }
func (m HotKeyModifier) Control() bool { return m.Wire()&hotKeyControl != 0 }
func (m HotKeyModifier) Alt() bool     { return m.Wire()&hotKeyAlt != 0 }

func (m HotKeyModifier) String() string { return nameOf(hotKeyModifierTable, m, "none") }
