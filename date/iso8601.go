package date

import (
	"fmt"
	"strconv"
	"strings"
)

// ISO8601 wraps a Date parsed from or destined for ISO 8601 text.
type ISO8601 struct {
	Date Date
}

// ParseISO8601 parses either the extended format (2023-11-23T14:30:00) or
// the basic format (20231123T143000). Seconds may be omitted in both forms
// and a trailing 'Z' is tolerated.
func ParseISO8601(s string) (ISO8601, error) {
	if s == "" {
		return ISO8601{}, fmt.Errorf("date: empty ISO 8601 string")
	}
	datePart, timePart, found := strings.Cut(s, "T")
	if !found {
		return ISO8601{}, fmt.Errorf("date: missing 'T' separator in %q", s)
	}
	timePart = strings.TrimSuffix(timePart, "Z")

	year, month, day, err := parseISODatePart(datePart)
	if err != nil {
		return ISO8601{}, err
	}
	hour, minute, second, err := parseISOTimePart(timePart)
	if err != nil {
		return ISO8601{}, err
	}

	d := Date{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
	if !d.Valid() {
		return ISO8601{}, fmt.Errorf("date: %q is not a valid calendar date", s)
	}
	return ISO8601{Date: d}, nil
}

func parseISODatePart(s string) (year, month, day int, err error) {
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return 0, 0, 0, fmt.Errorf("date: invalid extended date %q", s)
		}
		year, err = parseISONum(parts[0])
		if err == nil {
			month, err = parseISONum(parts[1])
		}
		if err == nil {
			day, err = parseISONum(parts[2])
		}
		return year, month, day, err
	}
	if len(s) != 8 {
		return 0, 0, 0, fmt.Errorf("date: basic date %q must be 8 digits", s)
	}
	year, err = parseISONum(s[0:4])
	if err == nil {
		month, err = parseISONum(s[4:6])
	}
	if err == nil {
		day, err = parseISONum(s[6:8])
	}
	return year, month, day, err
}

func parseISOTimePart(s string) (hour, minute, second int, err error) {
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return 0, 0, 0, fmt.Errorf("date: invalid extended time %q", s)
		}
		hour, err = parseISONum(parts[0])
		if err == nil {
			minute, err = parseISONum(parts[1])
		}
		if err == nil && len(parts) == 3 {
			second, err = parseISONum(parts[2])
		}
		return hour, minute, second, err
	}
	switch len(s) {
	case 6:
		hour, err = parseISONum(s[0:2])
		if err == nil {
			minute, err = parseISONum(s[2:4])
		}
		if err == nil {
			second, err = parseISONum(s[4:6])
		}
		return hour, minute, second, err
	case 4:
		hour, err = parseISONum(s[0:2])
		if err == nil {
			minute, err = parseISONum(s[2:4])
		}
		return hour, minute, 0, err
	default:
		return 0, 0, 0, fmt.Errorf("date: basic time %q must be 4 or 6 digits", s)
	}
}

func parseISONum(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("date: invalid number %q", s)
	}
	return n, nil
}

// Extended returns the extended form, YYYY-MM-DDTHH:MM:SS.
func (i ISO8601) Extended() string {
	d := i.Date
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Basic returns the compact form, YYYYMMDDTHHMMSS.
func (i ISO8601) Basic() string {
	d := i.Date
	return fmt.Sprintf("%04d%02d%02dT%02d%02d%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// String returns the extended form.
func (i ISO8601) String() string {
	return i.Extended()
}

// Duration is an ISO 8601 duration, P[n]Y[n]M[n]DT[n]H[n]M[n]S.
// An 'M' designator means months before the 'T' and minutes after it.
type Duration struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// ParseDuration parses an ISO 8601 duration string such as "P3Y6M4DT12H30M5S".
func ParseDuration(s string) (Duration, error) {
	if !strings.HasPrefix(s, "P") {
		return Duration{}, fmt.Errorf("date: duration %q must start with 'P'", s)
	}
	var dur Duration
	var num strings.Builder
	inTime := false

	take := func(designator byte) (int, error) {
		if num.Len() == 0 {
			return 0, fmt.Errorf("date: missing number before '%c' in duration %q", designator, s)
		}
		n, err := strconv.Atoi(num.String())
		num.Reset()
		if err != nil {
			return 0, fmt.Errorf("date: invalid number before '%c' in duration %q", designator, s)
		}
		return n, nil
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			num.WriteByte(c)
		case c == 'T':
			if num.Len() > 0 {
				return Duration{}, fmt.Errorf("date: unexpected number before 'T' in duration %q", s)
			}
			inTime = true
		case c == 'Y':
			if inTime {
				return Duration{}, fmt.Errorf("date: years not allowed in time part of %q", s)
			}
			n, err := take(c)
			if err != nil {
				return Duration{}, err
			}
			dur.Years = n
		case c == 'M':
			n, err := take(c)
			if err != nil {
				return Duration{}, err
			}
			if inTime {
				dur.Minutes = n
			} else {
				dur.Months = n
			}
		case c == 'D':
			if inTime {
				return Duration{}, fmt.Errorf("date: days not allowed in time part of %q", s)
			}
			n, err := take(c)
			if err != nil {
				return Duration{}, err
			}
			dur.Days = n
		case c == 'H':
			if !inTime {
				return Duration{}, fmt.Errorf("date: hours must follow 'T' in %q", s)
			}
			n, err := take(c)
			if err != nil {
				return Duration{}, err
			}
			dur.Hours = n
		case c == 'S':
			if !inTime {
				return Duration{}, fmt.Errorf("date: seconds must follow 'T' in %q", s)
			}
			n, err := take(c)
			if err != nil {
				return Duration{}, err
			}
			dur.Seconds = n
		default:
			return Duration{}, fmt.Errorf("date: invalid character %q in duration %q", c, s)
		}
	}
	if num.Len() > 0 {
		return Duration{}, fmt.Errorf("date: dangling number in duration %q", s)
	}
	return dur, nil
}

// String formats the duration back to ISO 8601 text. A zero duration
// renders as "P0D".
func (d Duration) String() string {
	var sb strings.Builder
	sb.WriteByte('P')
	if d.Years > 0 {
		fmt.Fprintf(&sb, "%dY", d.Years)
	}
	if d.Months > 0 {
		fmt.Fprintf(&sb, "%dM", d.Months)
	}
	if d.Days > 0 {
		fmt.Fprintf(&sb, "%dD", d.Days)
	}
	if d.Hours > 0 || d.Minutes > 0 || d.Seconds > 0 {
		sb.WriteByte('T')
		if d.Hours > 0 {
			fmt.Fprintf(&sb, "%dH", d.Hours)
		}
		if d.Minutes > 0 {
			fmt.Fprintf(&sb, "%dM", d.Minutes)
		}
		if d.Seconds > 0 {
			fmt.Fprintf(&sb, "%dS", d.Seconds)
		}
	}
	if sb.Len() == 1 {
		return "P0D"
	}
	return sb.String()
}
