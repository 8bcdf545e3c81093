package main

import (
	"errors"
	"os"

	"github.com/hatchdotlol/passcheck/pkg/commands"
	"github.com/jessevdk/go-flags"
)

func main() {
	parser := flags.NewParser(&commands.Pwtool, flags.HelpFlag|flags.PrintErrors)

	if _, err := parser.Parse(); err != nil {
		var weak *commands.WeakPasswordsError
		if errors.As(err, &weak) {
			os.Exit(3)
		}

		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}
}
