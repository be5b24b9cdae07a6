package tuit

import (
	"errors"
	"fmt"
	"strings"
)

// Ansi4 is one of the 16 standard ANSI terminal colours.
type Ansi4 uint8

const (
	Black Ansi4 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var ansi4Names = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// String returns the lower-case, dash-separated colour name.
func (a Ansi4) String() string {
	if int(a) < len(ansi4Names) {
		return ansi4Names[a]
	}
	return fmt.Sprintf("ansi4(%d)", uint8(a))
}

// Pack combines a foreground and background colour into one byte, with the
// foreground in the high nibble.
func (a Ansi4) Pack(bg Ansi4) uint8 {
	return uint8(a&0x0f)<<4 | uint8(bg&0x0f)
}

// ParseAnsi4 looks up an Ansi4 by the name returned from [Ansi4.String].
func ParseAnsi4(name string) (Ansi4, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range ansi4Names {
		if n == name {
			return Ansi4(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ansi colour %q", name)
}

// ColourKind distinguishes between colour representations.
type ColourKind uint8

const (
	// ColourUnset means the cell inherits the colour from the terminal default.
	ColourUnset ColourKind = iota
	// ColourTerminalDefault uses whatever colour the display considers default.
	ColourTerminalDefault
	// ColourRgb24 is a 24-bit true colour.
	ColourRgb24
	// ColourLuma8 is an 8-bit grayscale value.
	ColourLuma8
	// ColourAnsi16 is one of the 16 standard ANSI colours.
	ColourAnsi16
	// ColourAnsi256 is an index into the xterm 256-colour palette.
	ColourAnsi256
)

// Colour is a terminal colour in one of several colour models.
// The zero value is unset, which means "inherit"; see [Style.Inherit].
//
// How a display handles a model it cannot show is up to the renderer; it
// should degrade rather than fail.
type Colour struct {
	kind    ColourKind
	r, g, b uint8
}

// Rgb24 returns a 24-bit true colour.
func Rgb24(r, g, b uint8) Colour {
	return Colour{kind: ColourRgb24, r: r, g: g, b: b}
}

// Luma8 returns a grayscale colour of the given brightness.
func Luma8(v uint8) Colour {
	return Colour{kind: ColourLuma8, r: v, g: v, b: v}
}

// Ansi16 returns one of the 16 standard ANSI colours.
func Ansi16(c Ansi4) Colour {
	return Colour{kind: ColourAnsi16, r: uint8(c & 0x0f)}
}

// Ansi256 returns an xterm 256-palette colour.
func Ansi256(index uint8) Colour {
	return Colour{kind: ColourAnsi256, r: index}
}

// TerminalDefault returns the display's default colour.
func TerminalDefault() Colour {
	return Colour{kind: ColourTerminalDefault}
}

// HexColour parses "#RRGGBB" or "#RGB" into an Rgb24 colour.
func HexColour(hex string) (Colour, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		var v [3]uint8
		for i := range v {
			b, err := parseHexByte(hex[i*2 : i*2+2])
			if err != nil {
				return Colour{}, err
			}
			v[i] = b
		}
		return Rgb24(v[0], v[1], v[2]), nil
	case 3:
		var v [3]uint8
		for i := range v {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return Colour{}, err
			}
			// Expand nibble to byte: 0xF -> 0xFF
			v[i] = n<<4 | n
		}
		return Rgb24(v[0], v[1], v[2]), nil
	default:
		return Colour{}, errors.New("invalid hex colour format: expected #RGB or #RRGGBB")
	}
}

func parseHexByte(s string) (uint8, error) {
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex character %q", c)
	}
}

// Kind returns the colour model.
func (c Colour) Kind() ColourKind {
	return c.kind
}

// IsSet returns false for the zero (inherit) colour.
func (c Colour) IsSet() bool {
	return c.kind != ColourUnset
}

// Index returns the palette index of an Ansi16 or Ansi256 colour.
// Returns false for every other model.
func (c Colour) Index() (uint8, bool) {
	switch c.kind {
	case ColourAnsi16, ColourAnsi256:
		return c.r, true
	}
	return 0, false
}

// ansi16RGB maps ANSI colours 0-15 to approximate RGB values.
// Actual values vary by terminal theme.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// RGB approximates any colour as red, green and blue components.
// Palette colours use typical terminal values; unset and default colours
// report (0, 0, 0).
func (c Colour) RGB() (r, g, b uint8) {
	switch c.kind {
	case ColourRgb24, ColourLuma8:
		return c.r, c.g, c.b
	case ColourAnsi16:
		rgb := ansi16RGB[c.r&0x0f]
		return rgb[0], rgb[1], rgb[2]
	case ColourAnsi256:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 6x6x6 colour cube: index = 16 + 36*r + 6*g + b
			idx -= 16
			cube := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// Hex returns the colour as "#rrggbb" using [Colour.RGB].
func (c Colour) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String describes the colour for debugging.
func (c Colour) String() string {
	switch c.kind {
	case ColourTerminalDefault:
		return "default"
	case ColourRgb24:
		return "rgb" + c.Hex()
	case ColourLuma8:
		return fmt.Sprintf("luma(%d)", c.r)
	case ColourAnsi16:
		return Ansi4(c.r).String()
	case ColourAnsi256:
		return fmt.Sprintf("ansi256(%d)", c.r)
	}
	return "unset"
}
