// Package ansirender shows a tuit terminal on any writer that understands
// ANSI escape sequences.
package ansirender

import (
	"io"

	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/debug"
	"github.com/muesli/termenv"
)

// Renderer writes whole frames to an io.Writer. Each call to Render redraws
// every cell; the terminal itself keeps nothing between frames.
type Renderer struct {
	out     io.Writer
	esc     *escBuilder
	profile termenv.Profile

	inline     bool
	altScreen  bool
	hideCursor bool
	started    bool
}

var _ tuit.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile sets the colour profile. Colours the profile cannot show are
// converted to the closest one it can; termenv.Ascii drops colour entirely.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = p
	}
}

// WithAltScreen draws on the alternate screen buffer until Close.
func WithAltScreen() Option {
	return func(r *Renderer) {
		r.altScreen = true
	}
}

// WithHiddenCursor hides the cursor until Close.
func WithHiddenCursor() Option {
	return func(r *Renderer) {
		r.hideCursor = true
	}
}

// Inline writes rows separated by line breaks instead of positioning the
// cursor, so a frame can be printed into ordinary scrollback.
func Inline() Option {
	return func(r *Renderer) {
		r.inline = true
	}
}

// New creates a Renderer writing to out. Without WithProfile it uses
// true colour.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		esc:     newEscBuilder(4096),
		profile: termenv.TrueColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the colour profile in use.
func (r *Renderer) Profile() termenv.Profile {
	return r.profile
}

// Render writes t as one frame. Every cell style is resolved against the
// terminal's default style, and only changes in resolved style produce a
// new escape sequence.
func (r *Renderer) Render(t tuit.TerminalConst) error {
	w, h := t.Dimensions()
	def := t.DefaultStyle()

	r.esc.Reset()
	if !r.started {
		if r.altScreen {
			r.esc.EnterAltScreen()
		}
		if r.hideCursor {
			r.esc.HideCursor()
		}
		if !r.inline {
			r.esc.ClearScreen()
		}
		r.started = true
	}
	if !r.inline {
		r.esc.BeginSyncUpdate()
	}

	var last tuit.Style
	styled := false
	for y := range h {
		switch {
		case !r.inline:
			r.esc.MoveTo(0, y)
		case y > 0:
			r.esc.WriteString("\r\n")
		}

		for x := 0; x < w; x++ {
			c, _ := t.Cell(x, y)

			style := c.Style.Resolve(def)
			if !styled || style != last {
				r.esc.SetStyle(style, r.profile)
				last = style
				styled = true
			}

			ch, width := c.Character, c.Width()
			if ch == 0 || width == 0 || x+width > w {
				ch, width = ' ', 1
			}
			r.esc.WriteRune(ch)
			// A wide character covers the next cell as well.
			x += width - 1
		}
	}

	r.esc.ResetStyle()
	if r.inline {
		r.esc.WriteString("\r\n")
	} else {
		r.esc.EndSyncUpdate()
	}

	debug.Log("ansirender: frame", "width", w, "height", h, "bytes", r.esc.Len())
	return r.flush()
}

// Close restores the cursor and leaves the alternate screen if Render
// changed either.
func (r *Renderer) Close() error {
	if !r.started {
		return nil
	}
	r.esc.Reset()
	if r.hideCursor {
		r.esc.ShowCursor()
	}
	if r.altScreen {
		r.esc.ExitAltScreen()
	}
	r.started = false
	if r.esc.Len() == 0 {
		return nil
	}
	return r.flush()
}

func (r *Renderer) flush() error {
	if _, err := r.out.Write(r.esc.Bytes()); err != nil {
		return tuit.IoError(err)
	}
	return nil
}
