package ui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// noColorFlag is set from the --no-color flag.
var noColorFlag = false

// SetNoColor disables all styled output for this process.
func SetNoColor(v bool) {
	noColorFlag = v
}

// ShouldUseColor reports whether styled output should be emitted.
// Precedence: NO_COLOR disables, then --no-color, then CLICOLOR_FORCE
// forces color even when stdout is not a TTY, otherwise color requires a
// terminal that supports it.
func ShouldUseColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if noColorFlag {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// IsInteractive reports whether stdin is attached to a terminal, which
// decides between the interactive form and flag-only collection.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WrapWidth returns the word-wrap width for rendered output: terminal width
// capped at 100 columns for readability, 80 when the size is unavailable.
func WrapWidth() int {
	const maxReadableWidth = 100
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if width > maxReadableWidth {
		width = maxReadableWidth
	}
	return width
}
