package types

import "github.com/joshuapare/lnkkit/internal/format"

// NewFiletime converts raw FILETIME ticks. It returns nil for zero, which
// shell links use to mean "not set".
func NewFiletime(ticks uint64) *Filetime {
	if ticks == 0 {
		return nil
	}
	c := format.ConvertFiletime(ticks)
	return &Filetime{
		Ticks:      ticks,
		Year:       c.Year,
		Month:      c.Month,
		Day:        c.Day,
		Hour:       c.Hour,
		Minute:     c.Minute,
		Second:     c.Second,
		Nanosecond: c.Nanosecond,
		YearDay:    c.YearDay,
		Weekday:    c.Weekday,
	}
}
