package eligibility

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var numericToken = regexp.MustCompile(`[0-9.]+`)

// ParseLeadingInt reads an optionally signed run of decimal digits from the
// start of s, after leading whitespace. Anything after the digits is ignored,
// so "30 years" is 30 and "3.7" is 3. ok is false when no digit is found.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign, rest := splitSign(s)
	digits := leadingDigits(rest)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(sign+digits, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// ParseInt saturates on overflow, which keeps huge inputs out of range.
	return int(v), true
}

// ParseLeadingFloat reads the longest decimal literal at the start of s:
// optional sign, digits, fraction and exponent, or "Infinity".
// "60kg" is 60, ".5" is 0.5 and "1.2.3" is 1.2.
func ParseLeadingFloat(s string) (f float64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign, rest := splitSign(s)
	if strings.HasPrefix(rest, "Infinity") {
		if sign == "-" {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	intPart := leadingDigits(rest)
	end := len(intPart)
	fracDigits := 0
	if end < len(rest) && rest[end] == '.' {
		fracDigits = len(leadingDigits(rest[end+1:]))
		end += 1 + fracDigits
	}
	if intPart == "" && fracDigits == 0 {
		return 0, false
	}
	if end < len(rest) && (rest[end] == 'e' || rest[end] == 'E') {
		expSign, expRest := splitSign(rest[end+1:])
		if expDigits := leadingDigits(expRest); expDigits != "" {
			end += 1 + len(expSign) + len(expDigits)
		}
	}

	v, err := strconv.ParseFloat(sign+rest[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// ExtractHemoglobin takes the first run of digits and dots anywhere in s and
// reads it as a decimal. "13.5 g/dL" is 13.5; "23/9" is 23.
func ExtractHemoglobin(s string) (float64, bool) {
	token := numericToken.FindString(s)
	if token == "" {
		return 0, false
	}
	return ParseLeadingFloat(token)
}

// ParseBloodPressure splits "<systolic>/<diastolic>". The input must contain
// exactly one slash and both sides must read as non-zero integers.
func ParseBloodPressure(s string) (systolic, diastolic int, ok bool) {
	if strings.Count(s, "/") != 1 {
		return 0, 0, false
	}
	left, right, _ := strings.Cut(s, "/")
	systolic, okSys := ParseLeadingInt(left)
	diastolic, okDia := ParseLeadingInt(right)
	if !okSys || !okDia || systolic == 0 || diastolic == 0 {
		return 0, 0, false
	}
	return systolic, diastolic, true
}

// dateLayouts lists accepted donation date formats. Month and day may be
// unpadded. Dash-separated dates and RFC 3339 are absolute; the rest are
// read in the caller's location.
var dateLayouts = []struct {
	layout string
	utc    bool
}{
	{"2006-1-2", true},
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006/1/2", false},
	{"2006.1.2", false},
	{"1/2/2006", false},
	{"January 2, 2006", false},
	{"January 2 2006", false},
	{"Jan 2, 2006", false},
	{"Jan 2 2006", false},
	{"2 January 2006", false},
	{"2 Jan 2006", false},
}

// ParseDonationDate parses a last-donation date. Dash-separated date-only
// values are midnight UTC; layouts without a zone are read in loc.
func ParseDonationDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, l := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if l.utc {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, loc)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func splitSign(s string) (sign, rest string) {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1], s[1:]
	}
	return "", s
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
