package strength

import (
	"strconv"
	"strings"
)

// PatternVerdict is the outcome of the common-pattern gate. Either reason
// alone zeroes the pattern factor; there is no partial penalty.
type PatternVerdict struct {
	// Longest denylisted token found, empty if none.
	CommonToken string
	RepeatedRun bool
}

func (v PatternVerdict) Penalized() bool {
	return v.CommonToken != "" || v.RepeatedRun
}

// Reason describes why the gate fired, or "" when it did not.
func (v PatternVerdict) Reason() string {
	switch {
	case v.CommonToken != "" && v.RepeatedRun:
		return "common pattern " + strconv.Quote(v.CommonToken) + " and repeated characters"
	case v.CommonToken != "":
		return "common pattern " + strconv.Quote(v.CommonToken)
	case v.RepeatedRun:
		return "repeated characters"
	}
	return ""
}

// CheckPatterns runs the denylist and repeated-run checks.
func CheckPatterns(password string) PatternVerdict {
	var v PatternVerdict

	lowered := strings.ToLower(password)
	for _, p := range CommonPatterns {
		if len(p) > len(v.CommonToken) && strings.Contains(lowered, p) {
			v.CommonToken = p
		}
	}

	v.RepeatedRun = hasRun(password, 3)
	return v
}

// hasRun reports whether any character other than a line terminator
// occurs n or more times in a row.
func hasRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if isLineTerminator(r) {
			count = 0
			continue
		}
		if count > 0 && r == prev {
			count++
		} else {
			prev, count = r, 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
