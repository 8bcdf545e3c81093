package generate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseLength converts a decoded JSON value into a length. Integral numbers
// and base-10 integer strings are accepted; everything else, including a
// missing value, is an *InvalidLengthError. The range is checked by
// Generate.
func ParseLength(v any) (int, error) {
	notInteger := &InvalidLengthError{Reason: ReasonNotInteger}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return clamp(float64(n))
	case float64:
		if n != math.Trunc(n) {
			return 0, notInteger
		}
		return clamp(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, notInteger
		}
		return clamp(float64(i))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, notInteger
		}
		return clamp(float64(i))
	}

	return 0, notInteger
}

// Out-of-range magnitudes collapse to the nearest int so that Generate
// reports them as too short or too long rather than overflowing.
func clamp(f float64) (int, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, &InvalidLengthError{Reason: ReasonNotInteger}
	case f > math.MaxInt32:
		return math.MaxInt32, nil
	case f < math.MinInt32:
		return math.MinInt32, nil
	}
	return int(f), nil
}
