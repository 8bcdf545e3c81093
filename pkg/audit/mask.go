package audit

import "strings"

// Mask hides a password for logging: the first and last characters stay
// visible and everything in between becomes '*'. Passwords of one or two
// characters are masked entirely. The result has as many characters as the
// input.
func Mask(pw string) string {
	runes := []rune(pw)
	switch n := len(runes); {
	case n == 0:
		return ""
	case n <= 2:
		return strings.Repeat("*", n)
	default:
		return string(runes[0]) + strings.Repeat("*", n-2) + string(runes[n-1])
	}
}
