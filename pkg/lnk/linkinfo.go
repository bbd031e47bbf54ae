package lnk

import (
	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeLinkInfo decodes a LinkInfo structure at the start of b and returns
// it with LinkInfoSize, the number of bytes it occupies.
func DecodeLinkInfo(b []byte, opts ...Option) (*types.LinkInfo, int, error) {
	return decodeLinkInfo(b, newConfig(opts))
}

func decodeLinkInfo(b []byte, cfg *config) (*types.LinkInfo, int, error) {
	size, ok := buf.U32At(b, format.LinkInfoSizeOffset)
	if !ok {
		return nil, 0, fieldErr(structLinkInfo, "LinkInfoSize", format.LinkInfoSizeOffset, uint64(len(b)), types.ErrLinkInfoBounds)
	}
	if size < format.LinkInfoMinHeaderSize {
		return nil, 0, fieldErr(structLinkInfo, "LinkInfoSize", format.LinkInfoSizeOffset, uint64(size), types.ErrBlockTooSmall)
	}
	li, ok := buf.Slice(b, 0, int(size))
	if !ok {
		return nil, 0, fieldErr(structLinkInfo, "LinkInfoSize", format.LinkInfoSizeOffset, uint64(size), types.ErrLinkInfoBounds)
	}

	headerSize := buf.U32LE(li[format.LinkInfoHeaderSizeOffset:])
	if headerSize < format.LinkInfoMinHeaderSize || headerSize > size {
		return nil, 0, fieldErr(structLinkInfo, "LinkInfoHeaderSize", format.LinkInfoHeaderSizeOffset, uint64(headerSize), types.ErrLinkInfoBounds)
	}
	flags, err := types.ParseLinkInfoFlags(buf.U32LE(li[format.LinkInfoFlagsOffset:]))
	if err != nil {
		return nil, 0, atOffset(err, format.LinkInfoFlagsOffset)
	}

	info := &types.LinkInfo{
		Size:                            size,
		HeaderSize:                      headerSize,
		Flags:                           flags,
		VolumeIDOffset:                  buf.U32LE(li[format.LinkInfoVolumeIDOffsetOffset:]),
		LocalBasePathOffset:             buf.U32LE(li[format.LinkInfoLocalBasePathOffsetOffset:]),
		CommonNetworkRelativeLinkOffset: buf.U32LE(li[format.LinkInfoNetworkLinkOffsetOffset:]),
		CommonPathSuffixOffset:          buf.U32LE(li[format.LinkInfoCommonPathSuffixOffsetOffset:]),
	}
	unicode := headerSize >= format.LinkInfoUnicodeHeaderSize
	if unicode {
		info.LocalBasePathOffsetUnicode = buf.U32LE(li[format.LinkInfoLocalBasePathUnicodeOffset:])
		info.CommonPathSuffixOffsetUnicode = buf.U32LE(li[format.LinkInfoCommonPathSuffixUnicodeOffset:])
	}

	r := offsetReader{b: li, structure: structLinkInfo, cfg: cfg}

	if flags.Has(types.VolumeIDAndLocalBasePath) {
		off, err := r.offset("VolumeIDOffset", format.LinkInfoVolumeIDOffsetOffset, info.VolumeIDOffset)
		if err != nil {
			return nil, 0, err
		}
		if info.VolumeID, err = decodeVolumeID(li, off, cfg); err != nil {
			return nil, 0, err
		}
		if info.LocalBasePath, err = r.ansi("LocalBasePathOffset", format.LinkInfoLocalBasePathOffsetOffset, info.LocalBasePathOffset); err != nil {
			return nil, 0, err
		}
		if unicode && info.LocalBasePathOffsetUnicode != 0 {
			if info.LocalBasePathUnicode, err = r.utf16("LocalBasePathOffsetUnicode", format.LinkInfoLocalBasePathUnicodeOffset, info.LocalBasePathOffsetUnicode); err != nil {
				return nil, 0, err
			}
		}
	}

	if flags.Has(types.CommonNetworkRelativeLinkAndPathSuffix) {
		off, err := r.offset("CommonNetworkRelativeLinkOffset", format.LinkInfoNetworkLinkOffsetOffset, info.CommonNetworkRelativeLinkOffset)
		if err != nil {
			return nil, 0, err
		}
		if info.CommonNetworkRelativeLink, err = decodeNetworkLink(li, off, cfg); err != nil {
			return nil, 0, err
		}
	}

	if info.CommonPathSuffix, err = r.ansi("CommonPathSuffixOffset", format.LinkInfoCommonPathSuffixOffsetOffset, info.CommonPathSuffixOffset); err != nil {
		return nil, 0, err
	}
	if unicode && info.CommonPathSuffixOffsetUnicode != 0 {
		if info.CommonPathSuffixUnicode, err = r.utf16("CommonPathSuffixOffsetUnicode", format.LinkInfoCommonPathSuffixUnicodeOffset, info.CommonPathSuffixOffsetUnicode); err != nil {
			return nil, 0, err
		}
	}

	return info, int(size), nil
}

func decodeVolumeID(li []byte, start int, cfg *config) (*types.VolumeID, error) {
	size, ok := buf.U32At(li, start+format.VolumeIDSizeOffset)
	if !ok {
		return nil, fieldErr(structVolumeID, "VolumeIDSize", format.VolumeIDSizeOffset, uint64(len(li)-start), types.ErrLinkInfoBounds)
	}
	if size < format.VolumeIDMinSize {
		return nil, fieldErr(structVolumeID, "VolumeIDSize", format.VolumeIDSizeOffset, uint64(size), types.ErrBlockTooSmall)
	}
	vb, ok := buf.Slice(li, start, int(size))
	if !ok {
		return nil, fieldErr(structVolumeID, "VolumeIDSize", format.VolumeIDSizeOffset, uint64(size), types.ErrLinkInfoBounds)
	}

	rawDrive := buf.U32LE(vb[format.VolumeDriveTypeOffset:])
	drive, ok := types.DriveTypeFromWire(rawDrive)
	if !ok {
		return nil, fieldErr(structVolumeID, "DriveType", format.VolumeDriveTypeOffset, uint64(rawDrive), types.ErrDriveType)
	}

	vol := &types.VolumeID{
		Size:              size,
		DriveType:         drive,
		DriveSerialNumber: buf.U32LE(vb[format.VolumeDriveSerialNumberOffset:]),
		VolumeLabelOffset: buf.U32LE(vb[format.VolumeLabelOffsetOffset:]),
	}

	r := offsetReader{b: vb, structure: structVolumeID, cfg: cfg}
	var err error
	if vol.VolumeLabelOffset == format.VolumeLabelUnicodeMarker {
		uniOff, ok := buf.U32At(vb, format.VolumeLabelOffsetUnicodeOffset)
		if !ok {
			return nil, fieldErr(structVolumeID, "VolumeIDSize", format.VolumeIDSizeOffset, uint64(size), types.ErrBlockTooSmall)
		}
		vol.VolumeLabelOffsetUnicode = uniOff
		vol.LabelIsUnicode = true
		vol.VolumeLabel, err = r.utf16("VolumeLabelOffsetUnicode", format.VolumeLabelOffsetUnicodeOffset, uniOff)
	} else {
		vol.VolumeLabel, err = r.ansi("VolumeLabelOffset", format.VolumeLabelOffsetOffset, vol.VolumeLabelOffset)
	}
	if err != nil {
		return nil, err
	}
	return vol, nil
}

func decodeNetworkLink(li []byte, start int, cfg *config) (*types.CommonNetworkRelativeLink, error) {
	size, ok := buf.U32At(li, start+format.NetworkLinkSizeOffset)
	if !ok {
		return nil, fieldErr(structNetworkLink, "Size", format.NetworkLinkSizeOffset, uint64(len(li)-start), types.ErrLinkInfoBounds)
	}
	if size < format.NetworkLinkMinSize {
		return nil, fieldErr(structNetworkLink, "Size", format.NetworkLinkSizeOffset, uint64(size), types.ErrBlockTooSmall)
	}
	nb, ok := buf.Slice(li, start, int(size))
	if !ok {
		return nil, fieldErr(structNetworkLink, "Size", format.NetworkLinkSizeOffset, uint64(size), types.ErrLinkInfoBounds)
	}

	flags, err := types.ParseNetworkLinkFlags(buf.U32LE(nb[format.NetworkLinkFlagsOffset:]))
	if err != nil {
		return nil, atOffset(err, format.NetworkLinkFlagsOffset)
	}
	cnrl := &types.CommonNetworkRelativeLink{
		Size:                   size,
		Flags:                  flags,
		NetNameOffset:          buf.U32LE(nb[format.NetworkLinkNetNameOffsetOffset:]),
		DeviceNameOffset:       buf.U32LE(nb[format.NetworkLinkDeviceNameOffsetOffset:]),
		NetworkProviderTypeRaw: buf.U32LE(nb[format.NetworkLinkProviderTypeOffset:]),
	}

	// Unicode offsets follow only when the ANSI name does not start right
	// after the fixed fields.
	unicode := cnrl.NetNameOffset > format.NetworkLinkMinSize
	if unicode {
		netUni, ok1 := buf.U32At(nb, format.NetworkLinkNetNameUnicodeOffset)
		devUni, ok2 := buf.U32At(nb, format.NetworkLinkDeviceNameUnicodeOffset)
		if !ok1 || !ok2 {
			return nil, fieldErr(structNetworkLink, "Size", format.NetworkLinkSizeOffset, uint64(size), types.ErrBlockTooSmall)
		}
		cnrl.NetNameOffsetUnicode = netUni
		cnrl.DeviceNameOffsetUnicode = devUni
	}

	if flags.Has(types.ValidNetType) {
		p, ok := types.NetworkProviderTypeFromWire(cnrl.NetworkProviderTypeRaw)
		if !ok {
			return nil, fieldErr(structNetworkLink, "NetworkProviderType", format.NetworkLinkProviderTypeOffset, uint64(cnrl.NetworkProviderTypeRaw), types.ErrNetworkProviderType)
		}
		cnrl.NetworkProviderType = p
	}

	r := offsetReader{b: nb, structure: structNetworkLink, cfg: cfg}
	if cnrl.NetName, err = r.ansi("NetNameOffset", format.NetworkLinkNetNameOffsetOffset, cnrl.NetNameOffset); err != nil {
		return nil, err
	}
	if flags.Has(types.ValidDevice) {
		if cnrl.DeviceName, err = r.ansi("DeviceNameOffset", format.NetworkLinkDeviceNameOffsetOffset, cnrl.DeviceNameOffset); err != nil {
			return nil, err
		}
	}
	if unicode && cnrl.NetNameOffsetUnicode != 0 {
		if cnrl.NetNameUnicode, err = r.utf16("NetNameOffsetUnicode", format.NetworkLinkNetNameUnicodeOffset, cnrl.NetNameOffsetUnicode); err != nil {
			return nil, err
		}
	}
	if unicode && flags.Has(types.ValidDevice) && cnrl.DeviceNameOffsetUnicode != 0 {
		if cnrl.DeviceNameUnicode, err = r.utf16("DeviceNameOffsetUnicode", format.NetworkLinkDeviceNameUnicodeOffset, cnrl.DeviceNameOffsetUnicode); err != nil {
			return nil, err
		}
	}
	return cnrl, nil
}

// offsetReader reads NUL-terminated strings at offsets stored in a
// structure's header. Every offset is checked against len(b), the
// structure's declared size, before it is dereferenced.
type offsetReader struct {
	b         []byte
	structure string
	cfg       *config
}

// offset validates v, read from the header field at fieldOff, lies in [0, len(b)).
func (r offsetReader) offset(field string, fieldOff int, v uint32) (int, error) {
	if uint64(v) >= uint64(len(r.b)) {
		return 0, fieldErr(r.structure, field, fieldOff, uint64(v), types.ErrLinkInfoBounds)
	}
	return int(v), nil
}

func (r offsetReader) ansi(field string, fieldOff int, v uint32) (string, error) {
	off, err := r.offset(field, fieldOff, v)
	if err != nil {
		return "", err
	}
	raw, err := format.CString(r.b, off)
	if err != nil {
		return "", fieldErr(r.structure, field, fieldOff, uint64(v), types.ErrLinkInfoBounds)
	}
	s, err := r.cfg.ansi(raw)
	if err != nil {
		return "", fieldErr(r.structure, field, fieldOff, uint64(v), types.ErrStringEncoding)
	}
	return s, nil
}

func (r offsetReader) utf16(field string, fieldOff int, v uint32) (string, error) {
	off, err := r.offset(field, fieldOff, v)
	if err != nil {
		return "", err
	}
	raw, err := format.CString16(r.b, off)
	if err != nil {
		return "", fieldErr(r.structure, field, fieldOff, uint64(v), types.ErrLinkInfoBounds)
	}
	s, err := format.DecodeUTF16(raw)
	if err != nil {
		return "", fieldErr(r.structure, field, fieldOff, uint64(v), types.ErrStringEncoding)
	}
	return s, nil
}
