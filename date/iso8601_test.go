package date

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO8601_Extended(t *testing.T) {
	iso, err := ParseISO8601("2023-11-23T14:30:05")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2023, Month: 11, Day: 23, Hour: 14, Minute: 30, Second: 5}, iso.Date)
}

func TestParseISO8601_Basic(t *testing.T) {
	iso, err := ParseISO8601("20231123T143005")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2023, Month: 11, Day: 23, Hour: 14, Minute: 30, Second: 5}, iso.Date)
}

func TestParseISO8601_ExtendedAndBasicAgree(t *testing.T) {
	a, err := ParseISO8601("2023-11-23T14:30:00")
	require.NoError(t, err)
	b, err := ParseISO8601("20231123T143000")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseISO8601_OptionalSecondsAndZ(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"extended without seconds", "2023-11-23T14:30"},
		{"basic without seconds", "20231123T1430"},
		{"trailing Z", "2023-11-23T14:30:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso, err := ParseISO8601(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 14, iso.Date.Hour)
			assert.Equal(t, 30, iso.Date.Minute)
			assert.Equal(t, 0, iso.Date.Second)
		})
	}
}

func TestParseISO8601_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing T", "2023-11-23 14:30:00"},
		{"bad month", "2023-13-01T00:00:00"},
		{"bad day", "2023-02-30T00:00:00"},
		{"non-leap february 29", "2023-02-29T00:00:00"},
		{"garbage date", "20xx-11-23T14:30:00"},
		{"basic date wrong length", "202311T143000"},
		{"basic time wrong length", "20231123T14300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseISO8601(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseISO8601_LeapDay(t *testing.T) {
	_, err := ParseISO8601("2024-02-29T12:00:00")
	assert.NoError(t, err)
}

func TestISO8601_OutputFormats(t *testing.T) {
	iso, err := ParseISO8601("2023-11-23T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-23T14:30:00", iso.Extended())
	assert.Equal(t, "20231123T143000", iso.Basic())
	assert.Equal(t, iso.Extended(), iso.String())
}

func TestParseDuration_Full(t *testing.T) {
	dur, err := ParseDuration("P3Y6M4DT12H30M5S")
	require.NoError(t, err)
	assert.Equal(t, Duration{Years: 3, Months: 6, Days: 4, Hours: 12, Minutes: 30, Seconds: 5}, dur)
}

func TestParseDuration_Partial(t *testing.T) {
	dur, err := ParseDuration("P1YT5S")
	require.NoError(t, err)
	assert.Equal(t, 1, dur.Years)
	assert.Equal(t, 5, dur.Seconds)
	assert.Equal(t, 0, dur.Months)
}

func TestParseDuration_MonthMinuteDisambiguation(t *testing.T) {
	dur, err := ParseDuration("P1MT1M")
	require.NoError(t, err)
	assert.Equal(t, 1, dur.Months)
	assert.Equal(t, 1, dur.Minutes)
}

func TestParseDuration_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing P", "3Y"},
		{"number before T", "P3T1H"},
		{"years in time part", "PT1Y"},
		{"hours without T", "P1H"},
		{"dangling number", "P3"},
		{"invalid character", "P1W2D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "P1YT2H", Duration{Years: 1, Hours: 2}.String())
	assert.Equal(t, "P0D", Duration{}.String())
	assert.Equal(t, "P3Y6M4DT12H30M5S",
		Duration{Years: 3, Months: 6, Days: 4, Hours: 12, Minutes: 30, Seconds: 5}.String())
}

func TestDuration_RoundTrip(t *testing.T) {
	for _, s := range []string{"P1Y", "P2M", "PT30M", "P1YT2H", "P3Y6M4DT12H30M5S"} {
		dur, err := ParseDuration(s)
		require.NoError(t, err)
		assert.Equal(t, s, dur.String())
	}
}
