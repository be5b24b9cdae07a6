package ansirender

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// ParseProfile maps a profile name to a termenv profile. "auto" (or "")
// detects the profile from out and the environment, which honours NO_COLOR
// and CLICOLOR_FORCE.
func ParseProfile(name string, out io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return termenv.NewOutput(out).EnvColorProfile(), nil
	case "truecolor", "true-color", "24bit":
		return termenv.TrueColor, nil
	case "ansi256", "256":
		return termenv.ANSI256, nil
	case "ansi", "16":
		return termenv.ANSI, nil
	case "ascii", "none":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown colour profile %q", name)
}

// ProfileName returns the canonical name ParseProfile accepts for p.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	}
	return "ascii"
}
