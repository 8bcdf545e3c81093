package commands

import (
	"fmt"
	"io"
	"os"
)

type PwtoolCommand struct {
	Check    CheckCommand    `command:"check" description:"Rate a password, or each line of STDIN"`
	Generate GenerateCommand `command:"generate" description:"Generate random passwords"`
	Version  VersionCommand  `command:"version" description:"Displays pwtool version" alias:"V"`
}

var Pwtool PwtoolCommand

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// WeakPasswordsError means at least one checked password rated below the
// threshold. pwtool exits with status 3 on it.
type WeakPasswordsError struct {
	Count     int
	Threshold string
}

func (e *WeakPasswordsError) Error() string {
	return fmt.Sprintf("%d password(s) rated below %s", e.Count, e.Threshold)
}
