// Package tcellrender shows tuit terminals on a tcell.Screen and turns tcell
// events into tuit update information.
package tcellrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/debug"
)

// Renderer copies a terminal onto a tcell screen. Cells beyond the screen
// size are clipped.
type Renderer struct {
	screen tcell.Screen
}

var _ tuit.Renderer = (*Renderer)(nil)

// New creates a Renderer for an initialised screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen {
	return r.screen
}

// Render writes every cell of t to the screen and shows it.
func (r *Renderer) Render(t tuit.TerminalConst) error {
	w, h := t.Dimensions()
	sw, sh := r.screen.Size()
	if w > sw || h > sh {
		debug.Log("tcellrender: clipping terminal", "width", w, "height", h, "screenWidth", sw, "screenHeight", sh)
	}
	def := t.DefaultStyle()

	cols, rows := min(w, sw), min(h, sh)
	for y := range rows {
		for x := 0; x < cols; x++ {
			c, _ := t.Cell(x, y)
			ch, width := c.Character, c.Width()
			if ch == 0 || width == 0 || x+width > cols {
				ch, width = ' ', 1
			}
			r.screen.SetContent(x, y, ch, nil, Style(c.Style.Resolve(def)))
			x += width - 1
		}
	}
	r.screen.Show()
	return nil
}

// Style converts a resolved tuit style to a tcell style.
func Style(s tuit.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Colour(s.Fg)).
		Background(Colour(s.Bg)).
		Bold(s.IsBold()).
		Dim(s.FontWeight > 0 && s.FontWeight <= 300).
		Underline(s.Underline.Enabled()).
		Reverse(s.Invert.Enabled())
}

// Colour converts a tuit colour to a tcell colour. Unset and terminal
// default colours become tcell.ColorDefault.
func Colour(c tuit.Colour) tcell.Color {
	switch c.Kind() {
	case tuit.ColourAnsi16, tuit.ColourAnsi256:
		idx, _ := c.Index()
		return tcell.PaletteColor(int(idx))
	case tuit.ColourRgb24, tuit.ColourLuma8:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
