package strength

import (
	"math"
	"slices"
	"unicode/utf8"
)

// EntropyBits estimates brute-force entropy as length * log2(pool), where
// the pool is the union of the character classes present. It is reported
// alongside the score and does not affect it.
func EntropyBits(password string) float64 {
	pool := poolSize(password)
	if pool == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

func poolSize(password string) int {
	runes := []rune(password)

	pool := 0
	if slices.ContainsFunc(runes, isDigit) {
		pool += 10
	}
	if slices.ContainsFunc(runes, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		pool += 26
	}
	if slices.ContainsFunc(runes, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		pool += 26
	}
	if slices.ContainsFunc(runes, func(r rune) bool {
		return r < '0' || (r > '9' && r < 'A') || (r > 'Z' && r < 'a') || r > 'z'
	}) {
		pool += 33
	}

	return pool
}
