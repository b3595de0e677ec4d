package eligibility

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "plain", input: "30", want: 30, wantOK: true},
		{name: "leading whitespace", input: "  42", want: 42, wantOK: true},
		{name: "trailing text ignored", input: "30 years", want: 30, wantOK: true},
		{name: "decimal truncated", input: "3.7", want: 3, wantOK: true},
		{name: "negative", input: "-5", want: -5, wantOK: true},
		{name: "explicit plus", input: "+19", want: 19, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "letters first", input: "abc30", wantOK: false},
		{name: "sign only", input: "-", wantOK: false},
		{name: "overflow saturates", input: "99999999999999999999999", want: math.MaxInt, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "integer", input: "60", want: 60, wantOK: true},
		{name: "fraction", input: "55.5", want: 55.5, wantOK: true},
		{name: "unit suffix", input: "60kg", want: 60, wantOK: true},
		{name: "leading dot", input: ".5", want: 0.5, wantOK: true},
		{name: "trailing dot", input: "5.", want: 5, wantOK: true},
		{name: "second dot stops", input: "1.2.3", want: 1.2, wantOK: true},
		{name: "exponent", input: "5e1", want: 50, wantOK: true},
		{name: "dangling exponent", input: "5e", want: 5, wantOK: true},
		{name: "negative", input: "-12", want: -12, wantOK: true},
		{name: "dot only", input: ".", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "words", input: "heavy", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLeadingFloat(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}

	t.Run("infinity", func(t *testing.T) {
		got, ok := ParseLeadingFloat("Infinity")
		require.True(t, ok)
		assert.True(t, math.IsInf(got, 1))

		got, ok = ParseLeadingFloat("-Infinity")
		require.True(t, ok)
		assert.True(t, math.IsInf(got, -1))
	})
}

func TestExtractHemoglobin(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "decimal", input: "12.5", want: 12.5, wantOK: true},
		{name: "with unit", input: "13.5 g/dL", want: 13.5, wantOK: true},
		{name: "ratio takes first number", input: "23/9", want: 23, wantOK: true},
		{name: "prefixed label", input: "Hb: 14", want: 14, wantOK: true},
		{name: "multiple decimals", input: "12.5.1", want: 12.5, wantOK: true},
		{name: "dots only", input: "..", wantOK: false},
		{name: "no digits", input: "normal", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractHemoglobin(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseBloodPressure(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSys int
		wantDia int
		wantOK  bool
	}{
		{name: "standard", input: "120/80", wantSys: 120, wantDia: 80, wantOK: true},
		{name: "spaces", input: " 120 / 80 ", wantSys: 120, wantDia: 80, wantOK: true},
		{name: "out of range still parses", input: "70/40", wantSys: 70, wantDia: 40, wantOK: true},
		{name: "no slash", input: "12080", wantOK: false},
		{name: "two slashes", input: "120/80/60", wantOK: false},
		{name: "missing diastolic", input: "120/", wantOK: false},
		{name: "missing systolic", input: "/80", wantOK: false},
		{name: "zero side", input: "0/80", wantOK: false},
		{name: "non numeric", input: "high/low", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, dia, ok := ParseBloodPressure(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSys, sys)
				assert.Equal(t, tt.wantDia, dia)
			}
		})
	}
}

func TestParseDonationDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "iso date is utc", input: "2026-07-01", want: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "rfc3339", input: "2026-07-01T10:30:00Z", want: time.Date(2026, 7, 1, 10, 30, 0, 0, time.UTC), wantOK: true},
		{name: "local datetime", input: "2026-07-01T10:30:00", want: time.Date(2026, 7, 1, 10, 30, 0, 0, ist), wantOK: true},
		{name: "slashed iso", input: "2026/07/01", want: time.Date(2026, 7, 1, 0, 0, 0, 0, ist), wantOK: true},
		{name: "us date", input: "07/01/2026", want: time.Date(2026, 7, 1, 0, 0, 0, 0, ist), wantOK: true},
		{name: "long month", input: "July 1, 2026", want: time.Date(2026, 7, 1, 0, 0, 0, 0, ist), wantOK: true},
		{name: "short month", input: "Jul 1, 2026", want: time.Date(2026, 7, 1, 0, 0, 0, 0, ist), wantOK: true},
		{name: "unpadded iso date is utc", input: "2024-3-5", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "unpadded month only", input: "2026-7-01", want: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "unpadded slashed iso", input: "2024/3/5", want: time.Date(2024, 3, 5, 0, 0, 0, 0, ist), wantOK: true},
		{name: "dotted", input: "2024.03.05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, ist), wantOK: true},
		{name: "unpadded dotted", input: "2024.3.5", want: time.Date(2024, 3, 5, 0, 0, 0, 0, ist), wantOK: true},
		{name: "long month without comma", input: "March 5 2024", want: time.Date(2024, 3, 5, 0, 0, 0, 0, ist), wantOK: true},
		{name: "short month without comma", input: "Mar 5 2024", want: time.Date(2024, 3, 5, 0, 0, 0, 0, ist), wantOK: true},
		{name: "unpadded us date", input: "3/5/2024", want: time.Date(2024, 3, 5, 0, 0, 0, 0, ist), wantOK: true},
		{name: "surrounding space", input: " 2026-07-01 ", want: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "garbage", input: "last summer", wantOK: false},
		{name: "impossible day", input: "2026-02-30", wantOK: false},
		{name: "impossible unpadded month", input: "2024-13-5", wantOK: false},
		{name: "blank", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDonationDate(tt.input, ist)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			}
		})
	}
}
