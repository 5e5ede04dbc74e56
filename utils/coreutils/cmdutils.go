package coreutils

import (
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// Add green color style to the string if possible.
func PrintTitle(str string) string {
	return colorStr(str, color.Green)
}

// Add red color style to the string if possible.
func PrintRed(str string) string {
	return colorStr(str, color.Red)
}

// Add cyan color style to the string if possible.
func PrintLink(str string) string {
	return colorStr(str, color.Cyan)
}

// Add bold style to the string if possible.
func PrintBold(str string) string {
	return colorStr(str, color.Bold)
}

// Add gray color style to the string if possible.
func PrintComment(str string) string {
	return colorStr(str, color.Gray)
}

// Add the requested style to the string if possible.
func colorStr(str string, c color.Color) string {
	// Add styles only on supported terminals
	if IsStdOutTerminal() && IsColorsSupported() {
		return c.Render(str)
	}
	return str
}

func IsStdOutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func IsColorsSupported() bool {
	return os.Getenv("NO_COLOR") == ""
}
