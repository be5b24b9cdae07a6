// Package glossrender turns tuit terminals into styled strings with
// lipgloss, for hosts that draw strings rather than cells.
package glossrender

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-tuit"
	"github.com/muesli/termenv"
)

// Renderer styles each run of same-styled cells with lipgloss. Each distinct
// resolved style is converted once and cached.
type Renderer struct {
	out    io.Writer
	gloss  *lipgloss.Renderer
	styles map[tuit.Style]lipgloss.Style
}

var _ tuit.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile overrides the colour profile lipgloss detected for the output.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.gloss.SetColorProfile(p)
	}
}

// New creates a Renderer writing frames to out. The colour profile is
// detected from out unless WithProfile is given.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:    out,
		gloss:  lipgloss.NewRenderer(out),
		styles: make(map[tuit.Style]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes String(t) followed by a newline.
func (r *Renderer) Render(t tuit.TerminalConst) error {
	if _, err := io.WriteString(r.out, r.String(t)+"\n"); err != nil {
		return tuit.IoError(err)
	}
	return nil
}

// String returns t as rows joined by newlines, with styles applied.
func (r *Renderer) String(t tuit.TerminalConst) string {
	w, h := t.Dimensions()
	def := t.DefaultStyle()

	var sb strings.Builder
	var run strings.Builder
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}

		var style tuit.Style
		for x := 0; x < w; x++ {
			c, _ := t.Cell(x, y)
			resolved := c.Style.Resolve(def)
			if run.Len() > 0 && resolved != style {
				sb.WriteString(r.style(style).Render(run.String()))
				run.Reset()
			}
			style = resolved

			ch, width := c.Character, c.Width()
			if ch == 0 || width == 0 || x+width > w {
				ch, width = ' ', 1
			}
			run.WriteRune(ch)
			x += width - 1
		}
		if run.Len() > 0 {
			sb.WriteString(r.style(style).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

func (r *Renderer) style(s tuit.Style) lipgloss.Style {
	if st, ok := r.styles[s]; ok {
		return st
	}

	st := r.gloss.NewStyle().
		Bold(s.IsBold()).
		Faint(s.FontWeight > 0 && s.FontWeight <= 300).
		Underline(s.Underline.Enabled()).
		Reverse(s.Invert.Enabled())
	if c, ok := Colour(s.Fg); ok {
		st = st.Foreground(c)
	}
	if c, ok := Colour(s.Bg); ok {
		st = st.Background(c)
	}

	r.styles[s] = st
	return st
}

// Colour converts a tuit colour to a lipgloss colour. Returns false for
// unset and terminal default colours, which lipgloss leaves alone.
func Colour(c tuit.Colour) (lipgloss.Color, bool) {
	switch c.Kind() {
	case tuit.ColourAnsi16, tuit.ColourAnsi256:
		idx, _ := c.Index()
		return lipgloss.Color(strconv.Itoa(int(idx))), true
	case tuit.ColourRgb24, tuit.ColourLuma8:
		return lipgloss.Color(c.Hex()), true
	}
	return "", false
}
