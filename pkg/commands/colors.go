package commands

import (
	"github.com/hatchdotlol/passcheck/pkg/strength"
	"github.com/mgutz/ansi"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
)

func colorLabel(l strength.Label) string {
	text := "[" + string(l) + "]"
	switch l {
	case strength.Strong, strength.VeryStrong:
		return green(text)
	case strength.Medium:
		return yellow(text)
	}
	return red(text)
}
