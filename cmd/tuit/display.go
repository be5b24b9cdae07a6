package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/bubble"
	"github.com/grindlemire/go-tuit/internal/config"
	"github.com/grindlemire/go-tuit/render/ansirender"
	"github.com/grindlemire/go-tuit/render/glossrender"
	"github.com/grindlemire/go-tuit/render/tcellrender"
)

// show presents w with the configured renderer. The ansi renderer draws a
// single frame of width x height, unless the configuration overrides the
// size, and writes it to the command output. tcell and bubble run until the
// widget ends its lifecycle or Ctrl-C is pressed.
func (a *App) show(cmd *cobra.Command, w tuit.Widget, width, height int) (tuit.UpdateResult, error) {
	display := a.cfg.Display
	out := cmd.OutOrStdout()

	profile, err := ansirender.ParseProfile(display.Profile, out)
	if err != nil {
		return tuit.NoEvent, err
	}

	switch display.Renderer {
	case config.RendererANSI:
		if display.Width > 0 {
			width = display.Width
		}
		if display.Height > 0 {
			height = display.Height
		}
		term := tuit.NewConstantSize(width, height)
		res, err := tuit.Drawn(w, term)
		if err != nil {
			return res, err
		}
		a.logger.Debug("drawn", "width", width, "height", height, "result", res)
		return res, tuit.Display(term, ansirender.New(out, ansirender.Inline(), ansirender.WithProfile(profile)))

	case config.RendererTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return tuit.NoEvent, tuit.IoError(err)
		}
		if err := screen.Init(); err != nil {
			return tuit.NoEvent, tuit.IoError(err)
		}
		defer screen.Fini()
		screen.EnableMouse()
		rec := &recorder{Widget: w}
		err = tcellrender.Run(screen, rec)
		return rec.result, err

	case config.RendererBubble:
		opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
		if display.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}
		tw, th := ansirender.SizeOr(os.Stdout, width, height)
		m, err := bubble.Run(w,
			bubble.WithSize(tw, th),
			bubble.WithRenderer(glossrender.New(os.Stdout, glossrender.WithProfile(profile))),
			bubble.WithProgramOptions(opts...),
		)
		return m.Result(), err
	}

	return tuit.NoEvent, fmt.Errorf("unknown renderer %q", display.Renderer)
}

// recorder keeps the largest result w has returned.
type recorder struct {
	tuit.Widget
	result tuit.UpdateResult
}

func (r *recorder) Update(info tuit.UpdateInfo, t tuit.TerminalConst) (tuit.UpdateResult, error) {
	res, err := r.Widget.Update(info, t)
	r.result = tuit.MergeResults(r.result, res)
	return res, err
}

func (r *recorder) Draw(info tuit.UpdateInfo, t tuit.Terminal) (tuit.UpdateResult, error) {
	res, err := r.Widget.Draw(info, t)
	r.result = tuit.MergeResults(r.result, res)
	return res, err
}

// untilQuit ends w's lifecycle when Escape or q is pressed, for demos that
// have no way to finish on their own.
func untilQuit(w tuit.Widget) tuit.Widget {
	return tuit.WidgetFunc{
		OnUpdate: func(info tuit.UpdateInfo, t tuit.TerminalConst) (tuit.UpdateResult, error) {
			switch info := info.(type) {
			case tuit.KeyboardInput:
				if info.Code == tuit.KeyEscape && info.State == tuit.KeyDown {
					return tuit.LifecycleEnd, nil
				}
			case tuit.KeyboardCharacter:
				if info.Char == 'q' && info.State == tuit.KeyDown {
					return tuit.LifecycleEnd, nil
				}
			}
			return w.Update(info, t)
		},
		OnDraw: w.Draw,
	}
}
