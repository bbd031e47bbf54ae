package format

import "time"

// FILETIME ticks are 100ns intervals since 1601-01-01T00:00:00Z.
const (
	TicksPerSecond = 10_000_000
	TicksPerMinute = 60 * TicksPerSecond
	TicksPerHour   = 60 * TicksPerMinute
	TicksPerDay    = 24 * TicksPerHour

	// nanosPerTick converts the sub-second tick remainder to nanoseconds.
	nanosPerTick = 100

	filetimeEpochYear = 1601
	calendarBaseYear  = 1900

	// baseWeekday is the weekday of calendarBaseYear-01-01 (a Monday), with
	// Sunday = 0.
	baseWeekday = 1
)

// monthDays holds month lengths for common and leap years.
var monthDays = [12][2]uint64{
	{31, 31}, // Jan
	{28, 29}, // Feb
	{31, 31}, // Mar
	{30, 30}, // Apr
	{31, 31}, // May
	{30, 30}, // Jun
	{31, 31}, // Jul
	{31, 31}, // Aug
	{30, 30}, // Sep
	{31, 31}, // Oct
	{30, 30}, // Nov
	{31, 31}, // Dec
}

// baseOffsetTicks is the distance from the FILETIME epoch to calendarBaseYear.
var baseOffsetTicks = daysBetween(filetimeEpochYear, calendarBaseYear) * TicksPerDay

// Calendar is a broken-down UTC timestamp.
type Calendar struct {
	Year       int
	Month      int // 1-12
	Day        int // 1-31
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	YearDay    int // 0-based day within the year
	Weekday    int // 0 = Sunday
}

// Time returns c as a UTC time.Time.
func (c Calendar) Time() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, time.UTC)
}

// IsLeapYear reports whether y is a leap year. The divisible-by-25/16 form is
// the Gregorian century rule: a multiple of 4 that is a multiple of 25 is a
// multiple of 100, and it is a multiple of 400 iff it is also a multiple of 16.
func IsLeapYear(y uint64) bool {
	return y&3 == 0 && (y%25 != 0 || y&15 == 0)
}

func yearDays(y uint64) uint64 {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}

func daysBetween(from, to uint64) uint64 {
	var days uint64
	for y := from; y < to; y++ {
		days += yearDays(y)
	}
	return days
}

// ConvertFiletime breaks a FILETIME tick count down into calendar fields.
// Values before 1900-01-01 saturate to that instant.
func ConvertFiletime(ticks uint64) Calendar {
	var sinceBase uint64
	if ticks > baseOffsetTicks {
		sinceBase = ticks - baseOffsetTicks
	}

	subSecond := sinceBase % TicksPerSecond
	second := (sinceBase % TicksPerMinute) / TicksPerSecond
	minute := (sinceBase % TicksPerHour) / TicksPerMinute
	hour := (sinceBase % TicksPerDay) / TicksPerHour
	totalDays := sinceBase / TicksPerDay

	year := uint64(calendarBaseYear)
	remaining := totalDays
	for remaining >= yearDays(year) {
		remaining -= yearDays(year)
		year++
	}
	yearDay := remaining

	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}
	month := 0
	for month < 11 && remaining >= monthDays[month][leap] {
		remaining -= monthDays[month][leap]
		month++
	}

	return Calendar{
		Year:       int(year),
		Month:      month + 1,
		Day:        int(remaining) + 1,
		Hour:       int(hour),
		Minute:     int(minute),
		Second:     int(second),
		Nanosecond: int(subSecond * nanosPerTick),
		YearDay:    int(yearDay),
		Weekday:    int((totalDays + baseWeekday) % 7),
	}
}
