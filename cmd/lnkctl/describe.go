package main

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func hex32(v uint32) string { return fmt.Sprintf("0x%08X", v) }

func filetime(ft *types.Filetime) string {
	if ft == nil {
		return "-"
	}
	return ft.String()
}

func headerReport(h types.ShellLinkHeader) report {
	hotkey := "-"
	if h.HotKey != nil {
		hotkey = h.HotKey.String()
	}
	return report{}.
		add("LinkFlags", h.LinkFlags.String()).
		add("FileAttributes", h.FileAttributes.String()).
		add("CreationTime", filetime(h.CreationTime)).
		add("AccessTime", filetime(h.AccessTime)).
		add("WriteTime", filetime(h.WriteTime)).
		add("FileSize", h.FileSize).
		add("IconIndex", h.IconIndex).
		add("ShowCommand", h.ShowCommand.String()).
		add("HotKey", hotkey)
}

func idListReport(idl *types.IDList) report {
	items := make([]report, 0, len(idl.Items))
	for _, it := range idl.Items {
		items = append(items, report{}.
			add("Size", it.Size).
			add("Type", fmt.Sprintf("0x%02X", it.Type())).
			add("Data", hex.EncodeToString(it.Data)))
	}
	return report{}.add("Size", idl.Size).add("Items", items)
}

func linkInfoReport(li *types.LinkInfo) report {
	r := report{}.
		add("Size", li.Size).
		add("HeaderSize", hex32(li.HeaderSize)).
		add("Flags", li.Flags.String())
	if v := li.VolumeID; v != nil {
		r = r.add("VolumeID", report{}.
			add("DriveType", v.DriveType.String()).
			add("DriveSerialNumber", hex32(v.DriveSerialNumber)).
			add("VolumeLabel", v.VolumeLabel).
			add("LabelIsUnicode", v.LabelIsUnicode))
	}
	r = r.
		addIf(li.LocalBasePath != "", "LocalBasePath", li.LocalBasePath).
		addIf(li.LocalBasePathUnicode != "", "LocalBasePathUnicode", li.LocalBasePathUnicode)
	if n := li.CommonNetworkRelativeLink; n != nil {
		r = r.add("CommonNetworkRelativeLink", report{}.
			add("Flags", n.Flags.String()).
			add("NetName", n.NetName).
			addIf(n.NetNameUnicode != "", "NetNameUnicode", n.NetNameUnicode).
			addIf(n.Flags.Has(types.ValidDevice), "DeviceName", n.DeviceName).
			addIf(n.DeviceNameUnicode != "", "DeviceNameUnicode", n.DeviceNameUnicode).
			addIf(n.Flags.Has(types.ValidNetType), "NetworkProviderType", n.NetworkProviderType.String()))
	}
	return r.
		add("CommonPathSuffix", li.CommonPathSuffix).
		addIf(li.CommonPathSuffixUnicode != "", "CommonPathSuffixUnicode", li.CommonPathSuffixUnicode)
}

func stringDataReport(sd *types.StringData) report {
	var r report
	for _, kind := range types.StringKinds {
		if s, ok := sd.Get(kind); ok {
			r = r.add(kind.String(), s)
		}
	}
	return r
}

// blockReport describes one extra data block.
func blockReport(b types.ExtraDataBlock) report {
	r := report{}.
		add("Block", b.BlockName()).
		add("Signature", hex32(b.Signature())).
		add("Size", b.BlockSize())

	switch blk := b.(type) {
	case *types.EnvironmentVariableDataBlock:
		r = r.add("TargetAnsi", blk.TargetANSI).add("TargetUnicode", blk.TargetUnicode)
	case *types.IconEnvironmentDataBlock:
		r = r.add("TargetAnsi", blk.TargetANSI).add("TargetUnicode", blk.TargetUnicode)
	case *types.DarwinDataBlock:
		r = r.add("DarwinDataAnsi", blk.DarwinDataANSI).add("DarwinDataUnicode", blk.DarwinDataUnicode)
	case *types.ConsoleDataBlock:
		colors := make([]string, len(blk.ColorTable))
		for i, c := range blk.ColorTable {
			colors[i] = fmt.Sprintf("#%02X%02X%02X", c&0xFF, c>>8&0xFF, c>>16&0xFF)
		}
		r = r.
			add("FillAttributes", blk.FillAttributes.String()).
			add("PopupFillAttributes", blk.PopupFillAttributes.String()).
			add("ScreenBuffer", fmt.Sprintf("%dx%d", blk.ScreenBufferSizeX, blk.ScreenBufferSizeY)).
			add("Window", fmt.Sprintf("%dx%d", blk.WindowSizeX, blk.WindowSizeY)).
			add("WindowOrigin", fmt.Sprintf("%d,%d", blk.WindowOriginX, blk.WindowOriginY)).
			add("Font", fmt.Sprintf("%s %dx%d", blk.FaceName, blk.FontWidth(), blk.FontHeight())).
			add("FontFamily", blk.FontFamily.String()).
			add("FontPitch", blk.FontPitch.String()).
			add("FontWeight", blk.FontWeight).
			add("CursorSize", blk.CursorSize).
			add("FullScreen", blk.FullScreen).
			add("QuickEdit", blk.QuickEdit).
			add("InsertMode", blk.InsertMode).
			add("AutoPosition", blk.AutoPosition).
			add("HistoryBufferSize", blk.HistoryBufferSize).
			add("NumberOfHistoryBuffers", blk.NumberOfHistoryBuffers).
			add("HistoryNoDup", blk.HistoryNoDup).
			add("ColorTable", colors)
	case *types.TrackerDataBlock:
		r = r.
			add("MachineID", blk.MachineID).
			add("Version", blk.Version).
			add("VolumeDroid", blk.Droid[0].String()).
			add("FileDroid", blk.Droid[1].String()).
			add("BirthVolumeDroid", blk.DroidBirth[0].String()).
			add("BirthFileDroid", blk.DroidBirth[1].String())
		if mac, ok := blk.MACAddress(); ok {
			r = r.add("MACAddress", mac.String())
		}
		if t, ok := blk.DroidTime(); ok {
			r = r.add("DroidTime", t.Format("2006-01-02T15:04:05.0000000Z"))
		}
	case *types.ConsoleFEDataBlock:
		r = r.add("CodePage", blk.CodePage)
	case *types.SpecialFolderDataBlock:
		r = r.add("SpecialFolderID", blk.SpecialFolderID).add("Offset", blk.Offset)
	case *types.KnownFolderDataBlock:
		r = r.add("KnownFolderID", blk.KnownFolderID.String()).add("Offset", blk.Offset)
	case *types.ShimDataBlock:
		r = r.add("LayerName", blk.LayerName)
	case *types.VistaAndAboveIDListDataBlock:
		r = r.add("IDList", idListReport(&blk.IDList))
	case *types.PropertyStoreDataBlock:
		r = r.add("Storages", propertyStoreReport(blk))
	case *types.UnknownBlock:
		r = r.add("Data", hex.EncodeToString(blk.Data))
	}
	return r
}

// propertyStoreReport lists decoded property values. A store that does not
// parse is reported as raw bytes with the parse error.
func propertyStoreReport(blk *types.PropertyStoreDataBlock) any {
	storages, err := blk.Storages()
	if err != nil {
		return report{}.
			add("Error", err.Error()).
			add("Data", hex.EncodeToString(blk.Data))
	}
	out := make([]report, 0, len(storages))
	for _, st := range storages {
		values := make([]report, 0, len(st.Values))
		for _, v := range st.Values {
			values = append(values, report{}.
				addIf(v.Name == "", "ID", v.ID).
				addIf(v.Name != "", "Name", v.Name).
				add("Type", v.Type.String()).
				add("Value", propertyValue(v)))
		}
		out = append(out, report{}.add("FormatID", st.FormatID.String()).add("Values", values))
	}
	return out
}

func propertyValue(v types.PropertyValue) any {
	switch x := v.Value.(type) {
	case nil:
		return hex.EncodeToString(v.Raw)
	case *types.Filetime:
		return filetime(x)
	case fmt.Stringer:
		return x.String()
	default:
		return x
	}
}

func extraDataReport(blocks []types.ExtraDataBlock) []report {
	out := make([]report, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockReport(b))
	}
	return out
}

// linkReport is the full decode of a link.
func linkReport(path string, link *lnk.ShellLink) report {
	r := report{}.
		add("File", path).
		add("TargetPath", link.TargetPath()).
		add("Header", headerReport(link.Header))
	if link.IDList != nil {
		r = r.add("LinkTargetIDList", idListReport(link.IDList))
	}
	if link.LinkInfo != nil {
		r = r.add("LinkInfo", linkInfoReport(link.LinkInfo))
	}
	if sd := stringDataReport(&link.StringData); len(sd) > 0 {
		r = r.add("StringData", sd)
	}
	return r.add("ExtraData", extraDataReport(link.ExtraData))
}
