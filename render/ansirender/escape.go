package ansirender

import (
	"strconv"
	"unicode/utf8"

	"github.com/grindlemire/go-tuit"
	"github.com/muesli/termenv"
)

// escBuilder accumulates a frame of text and escape sequences in a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built frame.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to (x, y). Both are 0-indexed; the sequence is 1-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the whole screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor hides the cursor.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, "?25l"...)
}

// ShowCursor shows the cursor.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, "?25h"...)
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, "?1049h"...)
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, "?1049l"...)
}

// BeginSyncUpdate asks the terminal to hold output until EndSyncUpdate.
// Terminals without synchronized output ignore it.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, "?2026h"...)
}

// EndSyncUpdate releases output held since BeginSyncUpdate.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, "?2026l"...)
}

// ResetStyle resets all attributes to the terminal's defaults.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle emits a single SGR sequence for a fully resolved style, with
// colours converted to what profile can show. The sequence always starts by
// resetting so no attribute leaks from the previous cell.
func (e *escBuilder) SetStyle(s tuit.Style, profile termenv.Profile) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	switch {
	case s.IsBold():
		e.buf = append(e.buf, ';', '1')
	case s.FontWeight > 0 && s.FontWeight <= faintWeight:
		e.buf = append(e.buf, ';', '2')
	}
	if s.Underline.Enabled() {
		e.buf = append(e.buf, ';', '4')
	}
	if s.Invert.Enabled() {
		e.buf = append(e.buf, ';', '7')
	}

	e.appendColour(s.Fg, profile, false)
	e.appendColour(s.Bg, profile, true)

	e.buf = append(e.buf, 'm')
}

// faintWeight is the heaviest font weight still drawn dim.
const faintWeight = 300

func (e *escBuilder) appendColour(c tuit.Colour, profile termenv.Profile, bg bool) {
	tc := termColour(c)
	if tc == nil {
		return
	}
	seq := profile.Convert(tc).Sequence(bg)
	if seq == "" {
		return
	}
	e.buf = append(e.buf, ';')
	e.buf = append(e.buf, seq...)
}

// termColour maps a Colour onto termenv's colour models. Unset and terminal
// default colours return nil: the reset at the start of SetStyle covers them.
func termColour(c tuit.Colour) termenv.Color {
	switch c.Kind() {
	case tuit.ColourAnsi16:
		idx, _ := c.Index()
		return termenv.ANSIColor(idx)
	case tuit.ColourAnsi256:
		idx, _ := c.Index()
		return termenv.ANSI256Color(idx)
	case tuit.ColourRgb24, tuit.ColourLuma8:
		return termenv.RGBColor(c.Hex())
	}
	return nil
}

// WriteRune appends a UTF-8 encoded rune.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// WriteString appends a string as is.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
