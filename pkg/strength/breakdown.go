package strength

import "encoding/json"

type stage uint8

const (
	stageNone stage = iota
	stageLength
	stageFull
)

// Breakdown holds the per-factor sub-scores and pattern diagnostics.
//
// Only the factors that were actually evaluated are serialised: an invalid
// input encodes as {}, a too-short password as {"lengthScore":0}.
type Breakdown struct {
	LengthScore           int
	CaseScore             int
	DigitScore            int
	SymbolScore           int
	PatternScore          int
	ContainsCommonPattern bool
	HasRepeatedRun        bool

	stage stage
}

// Total is the uncapped sum of the five sub-scores.
func (b Breakdown) Total() int {
	return b.LengthScore + b.CaseScore + b.DigitScore + b.SymbolScore + b.PatternScore
}

// Complete reports whether every factor was evaluated.
func (b Breakdown) Complete() bool {
	return b.stage == stageFull
}

type fullBreakdown struct {
	LengthScore    int  `json:"lengthScore"`
	CaseScore      int  `json:"caseScore"`
	DigitScore     int  `json:"digitScore"`
	SymbolScore    int  `json:"symbolScore"`
	PatternScore   int  `json:"patternScore"`
	ContainsCommon bool `json:"containsCommon"`
	RepeatedChars  bool `json:"repeatedChars"`
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	switch b.stage {
	case stageNone:
		return []byte("{}"), nil
	case stageLength:
		return json.Marshal(struct {
			LengthScore int `json:"lengthScore"`
		}{b.LengthScore})
	}

	return json.Marshal(fullBreakdown{
		LengthScore:    b.LengthScore,
		CaseScore:      b.CaseScore,
		DigitScore:     b.DigitScore,
		SymbolScore:    b.SymbolScore,
		PatternScore:   b.PatternScore,
		ContainsCommon: b.ContainsCommonPattern,
		RepeatedChars:  b.HasRepeatedRun,
	})
}

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var full fullBreakdown
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}

	*b = Breakdown{
		LengthScore:           full.LengthScore,
		CaseScore:             full.CaseScore,
		DigitScore:            full.DigitScore,
		SymbolScore:           full.SymbolScore,
		PatternScore:          full.PatternScore,
		ContainsCommonPattern: full.ContainsCommon,
		HasRepeatedRun:        full.RepeatedChars,
	}

	switch {
	case len(raw) == 0:
		b.stage = stageNone
	case len(raw) == 1:
		b.stage = stageLength
	default:
		b.stage = stageFull
	}
	return nil
}
