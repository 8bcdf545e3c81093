// Package strength rates how resistant a password is to guessing.
//
// The rating is a fixed rubric of five independently capped factors
// (length, letter case, digits, symbols, common patterns) summed into a
// 0-100 score and mapped onto a label.
package strength

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

const MinLength = 6

type Label string

const (
	Invalid    Label = "Invalid"
	TooShort   Label = "Too short (min 6)"
	Weak       Label = "Weak"
	Medium     Label = "Medium"
	Strong     Label = "Strong"
	VeryStrong Label = "Very Strong"
)

// Symbols counted towards the symbol factor.
const Symbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// CommonPatterns are matched case-insensitively anywhere in the password.
var CommonPatterns = []string{
	"123", "1234", "12345", "123456",
	"password", "qwerty", "abc", "letmein", "admin", "welcome", "iloveyou",
}

type Result struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
	Label     Label     `json:"label"`
}

// Evaluate scores a password. It never fails; passwords shorter than
// MinLength short-circuit with only the length factor populated.
func Evaluate(password string) Result {
	n := utf8.RuneCountInString(password)
	if n < MinLength {
		return Result{
			Score:     0,
			Breakdown: Breakdown{stage: stageLength},
			Label:     TooShort,
		}
	}

	b := Breakdown{stage: stageFull}
	b.LengthScore = lengthScore(n)
	b.CaseScore = caseScore(password)
	if strings.ContainsFunc(password, isDigit) {
		b.DigitScore = 20
	}
	if strings.ContainsAny(password, Symbols) {
		b.SymbolScore = 20
	}

	v := CheckPatterns(password)
	b.ContainsCommonPattern = v.CommonToken != ""
	b.HasRepeatedRun = v.RepeatedRun
	if !v.Penalized() {
		b.PatternScore = 20
	}

	score := min(100, b.Total())
	return Result{Score: score, Breakdown: b, Label: labelFor(score)}
}

// EvaluateInput scores a decoded, untyped value such as a JSON field.
// Absent, empty and non-string values rate as Invalid.
func EvaluateInput(v any) Result {
	s, ok := v.(string)
	if !ok || s == "" {
		return Result{Score: 0, Breakdown: Breakdown{stage: stageNone}, Label: Invalid}
	}
	return Evaluate(s)
}

// Linear from 0 at MinLength to 25 at 12 characters, flat afterwards.
func lengthScore(n int) int {
	ratio := math.Min(1, float64(min(n, 12)-MinLength)/6)
	return int(math.Round(ratio * 25))
}

func caseScore(password string) int {
	lower := strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' })
	upper := strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' })

	switch {
	case lower && upper:
		return 15
	case lower || upper:
		return 7
	}
	return 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func labelFor(score int) Label {
	switch {
	case score >= 85:
		return VeryStrong
	case score >= 65:
		return Strong
	case score >= 40:
		return Medium
	}
	return Weak
}

var ranked = []Label{Invalid, TooShort, Weak, Medium, Strong, VeryStrong}

// Rank orders labels from Invalid (0) to VeryStrong (5). Unknown labels
// rank -1.
func (l Label) Rank() int {
	return slices.Index(ranked, l)
}

// ParseLabel matches a label case-insensitively.
func ParseLabel(s string) (Label, bool) {
	for _, l := range ranked {
		if strings.EqualFold(string(l), strings.TrimSpace(s)) {
			return l, true
		}
	}
	return "", false
}
