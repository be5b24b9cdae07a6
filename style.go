package tuit

// Toggle is a tri-state flag. Unset fields inherit from the fallback style.
type Toggle uint8

const (
	// Unset inherits the value from the fallback style.
	Unset Toggle = iota
	// On enables the attribute.
	On
	// Off disables the attribute even if the fallback enables it.
	Off
)

// Enabled reports whether the toggle is On.
func (t Toggle) Enabled() bool {
	return t == On
}

// ToggleOf converts a bool into On or Off.
func ToggleOf(v bool) Toggle {
	if v {
		return On
	}
	return Off
}

// BoldWeight is the font weight at which renderers switch to bold text.
const BoldWeight uint16 = 700

// Style holds a cell's formatting. Every field is optional: a zero Colour,
// zero FontWeight or Unset Toggle falls back along cell -> terminal default ->
// GlobalDefaultStyle when resolved with [Style.Inherit].
//
// The zero value leaves everything unset.
type Style struct {
	Fg         Colour
	Bg         Colour
	FontWeight uint16
	Underline  Toggle
	// Invert swaps foreground and background; mostly useful on single-colour displays.
	Invert Toggle
}

// GlobalDefaultStyle is the last fallback when neither the cell nor the
// terminal sets a field.
var GlobalDefaultStyle = Style{
	Fg:         TerminalDefault(),
	Bg:         TerminalDefault(),
	FontWeight: 400,
	Underline:  Off,
	Invert:     Off,
}

// NewStyle returns a Style with every field unset.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground colour.
func (s Style) Foreground(c Colour) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background colour.
func (s Style) Background(c Colour) Style {
	s.Bg = c
	return s
}

// FgAnsi4 returns a new Style with a 16-colour ANSI foreground.
func (s Style) FgAnsi4(c Ansi4) Style {
	return s.Foreground(Ansi16(c))
}

// BgAnsi4 returns a new Style with a 16-colour ANSI background.
func (s Style) BgAnsi4(c Ansi4) Style {
	return s.Background(Ansi16(c))
}

// Weight returns a new Style with the given font weight.
func (s Style) Weight(w uint16) Style {
	s.FontWeight = w
	return s
}

// Bold returns a new Style with a bold font weight.
func (s Style) Bold() Style {
	return s.Weight(BoldWeight)
}

// Underlined returns a new Style with underline enabled.
func (s Style) Underlined() Style {
	s.Underline = On
	return s
}

// Inverted returns a new Style with foreground and background swapped.
func (s Style) Inverted() Style {
	s.Invert = On
	return s
}

// IsBold reports whether the font weight reaches BoldWeight.
func (s Style) IsBold() bool {
	return s.FontWeight >= BoldWeight
}

// Inherit fills every unset field of s from fallback.
func (s Style) Inherit(fallback Style) Style {
	if !s.Fg.IsSet() {
		s.Fg = fallback.Fg
	}
	if !s.Bg.IsSet() {
		s.Bg = fallback.Bg
	}
	if s.FontWeight == 0 {
		s.FontWeight = fallback.FontWeight
	}
	if s.Underline == Unset {
		s.Underline = fallback.Underline
	}
	if s.Invert == Unset {
		s.Invert = fallback.Invert
	}
	return s
}

// Resolve applies the full precedence chain: s, then the terminal default,
// then GlobalDefaultStyle. The result has every field set.
func (s Style) Resolve(terminalDefault Style) Style {
	return s.Inherit(terminalDefault).Inherit(GlobalDefaultStyle)
}
