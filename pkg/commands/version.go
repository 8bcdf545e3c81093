package commands

import "fmt"

// Set with -ldflags "-X github.com/hatchdotlol/passcheck/pkg/commands.Version=..."
var Version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Fprintln(Stdout, "pwtool", Version)
	return nil
}
