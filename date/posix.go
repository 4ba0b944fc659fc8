package date

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// Posix wraps a Date derived from a Unix timestamp. Timestamps before the
// epoch are not supported.
type Posix struct {
	Date Date
}

// ParsePosix parses a decimal seconds-since-epoch string, e.g. "1700749800".
func ParsePosix(s string) (Posix, error) {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Posix{}, fmt.Errorf("date: invalid timestamp %q", s)
	}
	return FromTimestamp(ts)
}

// FromTimestamp decomposes seconds since the epoch into civil components.
func FromTimestamp(ts int64) (Posix, error) {
	if ts < 0 {
		return Posix{}, fmt.Errorf("date: negative timestamp %d (pre-1970) not supported", ts)
	}

	remaining := ts
	daysSinceEpoch := remaining / secondsPerDay
	remaining %= secondsPerDay

	hour := int(remaining / secondsPerHour)
	remaining %= secondsPerHour
	minute := int(remaining / secondsPerMinute)
	second := int(remaining % secondsPerMinute)

	year := 1970
	days := daysSinceEpoch
	for {
		daysInYear := int64(365)
		if isLeapYear(year) {
			daysInYear = 366
		}
		if days < daysInYear {
			break
		}
		days -= daysInYear
		year++
	}

	month := 1
	for days >= int64(daysInMonth(year, month)) {
		days -= int64(daysInMonth(year, month))
		month++
	}

	return Posix{Date: Date{
		Year:   year,
		Month:  month,
		Day:    int(days) + 1,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}}, nil
}

// Timestamp converts the civil components back to seconds since the epoch.
func (p Posix) Timestamp() int64 {
	var totalDays int64
	for y := 1970; y < p.Date.Year; y++ {
		if isLeapYear(y) {
			totalDays += 366
		} else {
			totalDays += 365
		}
	}
	for m := 1; m < p.Date.Month; m++ {
		totalDays += int64(daysInMonth(p.Date.Year, m))
	}
	totalDays += int64(p.Date.Day - 1)

	return totalDays*secondsPerDay +
		int64(p.Date.Hour)*secondsPerHour +
		int64(p.Date.Minute)*secondsPerMinute +
		int64(p.Date.Second)
}

// String returns the raw timestamp in decimal.
func (p Posix) String() string {
	return strconv.FormatInt(p.Timestamp(), 10)
}

// Human returns the YYYY-MM-DD HH:MM:SS UTC presentation form.
func (p Posix) Human() string {
	d := p.Date
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d UTC",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Format replaces pattern tokens with date components. It supports the same
// tokens as RFC3339.Format plus TS for the raw timestamp.
func (p Posix) Format(pattern string) string {
	d := p.Date
	rep := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", d.Year),
		"yy", fmt.Sprintf("%02d", d.Year%100),
		"mm", fmt.Sprintf("%02d", d.Month),
		"dd", fmt.Sprintf("%02d", d.Day),
		"HH", fmt.Sprintf("%02d", d.Hour),
		"MM", fmt.Sprintf("%02d", d.Minute),
		"SS", fmt.Sprintf("%02d", d.Second),
		"TS", p.String(),
	)
	return rep.Replace(pattern)
}
