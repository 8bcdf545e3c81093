package commands

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/hatchdotlol/passcheck/pkg/audit"
	"github.com/hatchdotlol/passcheck/pkg/strength"
)

type CheckCommand struct {
	JSON      bool   `long:"json" description:"print one JSON result per password"`
	FailBelow string `long:"fail-below" default:"Medium" description:"exit with status 3 when a password rates below this label" value-name:"LABEL"`

	Args struct {
		Password string `positional-arg-name:"PASSWORD"`
	} `positional-args:"yes"`
}

type checkLine struct {
	Masked      string          `json:"masked"`
	EntropyBits float64         `json:"entropyBits"`
	Result      strength.Result `json:"result"`
}

func (command *CheckCommand) Execute(args []string) error {
	threshold, ok := strength.ParseLabel(command.FailBelow)
	if !ok {
		return fmt.Errorf("unknown label %q", command.FailBelow)
	}

	weak := 0
	check := func(pw string) error {
		res := strength.Evaluate(pw)
		if res.Label.Rank() < threshold.Rank() {
			weak++
		}
		return command.print(pw, res)
	}

	if command.Args.Password != "" {
		if err := check(command.Args.Password); err != nil {
			return err
		}
	} else {
		scanner := bufio.NewScanner(Stdin)
		for scanner.Scan() {
			if scanner.Text() == "" {
				continue
			}
			if err := check(scanner.Text()); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	if weak > 0 {
		return &WeakPasswordsError{Count: weak, Threshold: string(threshold)}
	}
	return nil
}

func (command *CheckCommand) print(pw string, res strength.Result) error {
	line := checkLine{
		Masked:      audit.Mask(pw),
		EntropyBits: strength.EntropyBits(pw),
		Result:      res,
	}

	if command.JSON {
		out, err := json.Marshal(line)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(Stdout, string(out))
		return err
	}

	fmt.Fprintf(Stdout, "%s %s score=%d entropy=%.1f bits\n", colorLabel(res.Label), line.Masked, res.Score, line.EntropyBits)
	if !res.Breakdown.Complete() {
		return nil
	}

	b := res.Breakdown
	fmt.Fprintf(Stdout, "  length=%d case=%d digits=%d symbols=%d patterns=%d\n",
		b.LengthScore, b.CaseScore, b.DigitScore, b.SymbolScore, b.PatternScore)
	if reason := strength.CheckPatterns(pw).Reason(); reason != "" {
		fmt.Fprintf(Stdout, "  %s %s\n", yellow("[WARN]"), reason)
	}
	return nil
}
