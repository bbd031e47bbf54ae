package types

import (
	"fmt"
	"time"
)

// ShellLinkHeader is the fixed 76-byte structure at the start of every link.
// Reserved fields are not retained.
type ShellLinkHeader struct {
	LinkFlags      LinkFlags
	FileAttributes FileAttributes
	CreationTime   *Filetime // nil when the field is all zeroes
	AccessTime     *Filetime
	WriteTime      *Filetime
	FileSize       uint32 // low 32 bits of the target size
	IconIndex      int32
	ShowCommand    ShowCommand
	HotKey         *HotKeyFlags // nil when no shortcut is assigned
}

// HotKeyFlags is a keyboard shortcut: a virtual key plus its modifiers.
type HotKeyFlags struct {
	Key      HotKey
	Modifier HotKeyModifier
}

func (h HotKeyFlags) String() string {
	return h.Modifier.String() + "+" + h.Key.String()
}

// Filetime is a FILETIME value together with its broken-down UTC calendar form.
type Filetime struct {
	Ticks      uint64 `json:"ticks"` // 100ns intervals since 1601-01-01
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Hour       int    `json:"hour"`
	Minute     int    `json:"minute"`
	Second     int    `json:"second"`
	Nanosecond int    `json:"nanosecond"`
	YearDay    int    `json:"year_day"` // 0-based
	Weekday    int    `json:"weekday"`  // 0 = Sunday
}

// Time returns f as a UTC time.Time.
func (f Filetime) Time() time.Time {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, time.UTC)
}

func (f Filetime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%07dZ",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond/100)
}
