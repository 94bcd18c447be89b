package univalue

import (
	"strconv"
	"strings"
)

// The parsers below are total functions: they never panic and report failure
// through the second return value only. On failure the first return value is
// unspecified. All of them require the entire input to be consumed by the
// conversion and reject values outside the exact range of the target type.

// parsePrechecks rejects input no strict numeric parser should ever see:
// empty strings, padding whitespace at either end, and embedded NUL bytes
// hiding trailing garbage.
func parsePrechecks(s string) bool {
	if len(s) == 0 { // no empty string allowed
		return false
	}
	if isSpace(s[0]) || isSpace(s[len(s)-1]) { // no padding allowed
		return false
	}
	if strings.IndexByte(s, 0) >= 0 { // no embedded NUL characters allowed
		return false
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// ParseInt32 converts base-10 text to an int32. Both range boundaries are
// accepted; anything outside them, or any partial parse, fails.
func ParseInt32(s string) (int32, bool) {
	if !parsePrechecks(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err == nil
}

// ParseInt64 converts base-10 text to an int64.
func ParseInt64(s string) (int64, bool) {
	if !parsePrechecks(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// ParseUint64 converts base-10 text to a uint64. Negative input always
// fails; it never wraps. A single leading '+' is tolerated, matching the
// usual wide-conversion primitives.
func ParseUint64(s string) (uint64, bool) {
	if !parsePrechecks(s) {
		return 0, false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}

// ParseDouble converts text to a float64 using the fixed '.' decimal
// separator regardless of the process locale. Hex floats, inf/nan spellings
// and digit separators are rejected; the conversion must consume the whole
// string without overflow.
func ParseDouble(s string) (float64, bool) {
	if !parsePrechecks(s) {
		return 0, false
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') { // no hexadecimal floats allowed
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c):
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
