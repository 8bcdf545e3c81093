package commands

import (
	"fmt"

	"github.com/hatchdotlol/passcheck/pkg/generate"
)

type GenerateCommand struct {
	Length int `short:"l" long:"length" default:"16" description:"password length (at least 6)"`
	Count  int `short:"c" long:"count" default:"1" description:"number of passwords to print"`
}

func (command *GenerateCommand) Execute(args []string) error {
	if command.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	for i := 0; i < command.Count; i++ {
		pw, err := generate.Generate(command.Length)
		if err != nil {
			return err
		}
		fmt.Fprintln(Stdout, pw)
	}

	return nil
}
