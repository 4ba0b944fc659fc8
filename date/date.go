// Package date implements small, dependency-free codecs for the ISO 8601,
// RFC 3339 and POSIX timestamp formats. All calendar math is done by hand in
// UTC; the time package is deliberately not involved so that parsing and
// formatting round-trip the exact grammar of each format.
package date

// Date is a moment in time broken into civil components, always UTC.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Valid reports whether the components form a real calendar date. Seconds up
// to 60 are accepted to tolerate leap seconds.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Hour > 23 || d.Hour < 0 ||
		d.Minute < 0 || d.Minute > 59 || d.Second < 0 || d.Second > 60 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Year, d.Month)
}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
