package ansirender

import (
	"os"

	"golang.org/x/term"
)

// Size returns the dimensions of the terminal attached to f.
func Size(f *os.File) (width, height int, err error) {
	return getTerminalSize(int(f.Fd()))
}

// SizeOr returns the size of the terminal attached to f, or the fallback
// dimensions when f is not a terminal.
func SizeOr(f *os.File, fallbackW, fallbackH int) (width, height int) {
	w, h, err := Size(f)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
