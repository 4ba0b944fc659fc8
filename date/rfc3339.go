package date

import (
	"fmt"
	"strconv"
	"strings"
)

// RFC3339 wraps a Date parsed from RFC 3339 text. Offsets other than 'Z'
// are not handled; all values are UTC.
type RFC3339 struct {
	Date Date
}

// ParseRFC3339 parses a fixed-layout RFC 3339 string, e.g.
// "2023-11-23T14:30:00Z".
func ParseRFC3339(s string) (RFC3339, error) {
	if len(s) < 19 {
		return RFC3339{}, fmt.Errorf("date: RFC 3339 string %q too short", s)
	}
	field := func(start, end int) (int, error) {
		n, err := strconv.Atoi(s[start:end])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("date: invalid number %q at offset %d", s[start:end], start)
		}
		return n, nil
	}

	var d Date
	var err error
	if d.Year, err = field(0, 4); err != nil {
		return RFC3339{}, err
	}
	if d.Month, err = field(5, 7); err != nil {
		return RFC3339{}, err
	}
	if d.Day, err = field(8, 10); err != nil {
		return RFC3339{}, err
	}
	if d.Hour, err = field(11, 13); err != nil {
		return RFC3339{}, err
	}
	if d.Minute, err = field(14, 16); err != nil {
		return RFC3339{}, err
	}
	if d.Second, err = field(17, 19); err != nil {
		return RFC3339{}, err
	}

	if !d.Valid() {
		return RFC3339{}, fmt.Errorf("date: %q is not a valid calendar date", s)
	}
	return RFC3339{Date: d}, nil
}

// String reconstructs the RFC 3339 representation.
func (r RFC3339) String() string {
	d := r.Date
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Human returns the DD/MM/YYYY - HH:MM presentation form.
func (r RFC3339) Human() string {
	d := r.Date
	return fmt.Sprintf("%02d/%02d/%04d - %02d:%02d", d.Day, d.Month, d.Year, d.Hour, d.Minute)
}

// Format replaces pattern tokens with date components.
//
// Tokens: YYYY (year), yy (two-digit year), mm (month), dd (day),
// HH (hour), MM (minute), SS (second). Longer tokens are replaced first so
// that YYYY is not consumed as two yy.
func (r RFC3339) Format(pattern string) string {
	d := r.Date
	rep := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", d.Year),
		"yy", fmt.Sprintf("%02d", d.Year%100),
		"mm", fmt.Sprintf("%02d", d.Month),
		"dd", fmt.Sprintf("%02d", d.Day),
		"HH", fmt.Sprintf("%02d", d.Hour),
		"MM", fmt.Sprintf("%02d", d.Minute),
		"SS", fmt.Sprintf("%02d", d.Second),
	)
	return rep.Replace(pattern)
}
