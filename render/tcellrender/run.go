package tcellrender

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/debug"
)

type runOptions struct {
	tick  time.Duration
	style tuit.Style
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithTick sends a TimeDelta to the widget every d. Zero disables ticks.
func WithTick(d time.Duration) RunOption {
	return func(o *runOptions) {
		o.tick = d
	}
}

// WithDefaultStyle sets the default style of the terminal handed to the widget.
func WithDefaultStyle(s tuit.Style) RunOption {
	return func(o *runOptions) {
		o.style = s
	}
}

// Run drives w on screen until a frame returns LifecycleEnd, a widget
// returns an error, the user presses Ctrl-C or the screen is finalised.
// The screen must already be initialised and is left open; the caller owns
// Fini.
func Run(screen tcell.Screen, w tuit.Widget, opts ...RunOption) error {
	o := runOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	width, height := screen.Size()
	term := tuit.NewMaxSize(width, height)
	term.SetDefaultStyle(o.style)
	r := New(screen)

	frame := func(info tuit.UpdateInfo) (bool, error) {
		res, err := tuit.Step(w, term, info)
		if err != nil {
			return true, err
		}
		if err := r.Render(term); err != nil {
			return true, err
		}
		return res == tuit.LifecycleEnd, nil
	}

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var tick <-chan time.Time
	if o.tick > 0 {
		ticker := time.NewTicker(o.tick)
		defer ticker.Stop()
		tick = ticker.C
	}
	last := time.Now()

	if end, err := frame(tuit.NoInfo{}); end || err != nil {
		return err
	}

	var tr Translator
	for {
		var info tuit.UpdateInfo
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if key, isKey := ev.(*tcell.EventKey); isKey && key.Key() == tcell.KeyCtrlC {
				return nil
			}
			info = tr.Translate(ev)
			if _, resized := info.(tuit.TerminalResized); resized {
				screen.Sync()
				term = resize(term, screen)
			}
			if _, none := info.(tuit.NoInfo); none {
				continue
			}

		case now := <-tick:
			info = tuit.TimeDelta{Elapsed: now.Sub(last)}
			last = now
		}

		if end, err := frame(info); end || err != nil {
			return err
		}
	}
}

// resize fits term to the screen, replacing it when the screen outgrows
// its capacity.
func resize(term *tuit.MaxSize, screen tcell.Screen) *tuit.MaxSize {
	w, h := screen.Size()
	if err := term.Rescale(w, h); err == nil {
		return term
	}

	mw, mh := term.MaxDimensions()
	debug.Log("tcellrender: growing terminal", "width", w, "height", h, "maxWidth", mw, "maxHeight", mh)
	grown := tuit.NewMaxSize(max(w, mw), max(h, mh))
	grown.SetDefaultStyle(term.DefaultStyle())
	if err := grown.Rescale(w, h); err != nil {
		debug.Log("tcellrender: rescale failed", "err", err)
	}
	return grown
}
