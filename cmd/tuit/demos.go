package main

import (
	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/config"
	"github.com/grindlemire/go-tuit/internal/debug"
	"github.com/grindlemire/go-tuit/widgets"
)

// Sizes the demos are laid out for when the ansi renderer prints them.
const (
	promptWidth, promptHeight     = 57, 14
	splitWidth, splitHeight       = 50, 20
	stackingWidth, stackingHeight = 30, 9
)

const longText = "Here's some really long text that will probably, or at least I hope, " +
	"wrap around when drawn on the left side of the terminal! It even has some extra " +
	"padding to add space! Wow, isn't that cool!?"

// promptDemo is a question over a row of buttons, centred on a backdrop
// over a full-screen sweep. The buttons are returned so the caller can
// read the choice once the prompt ends.
func promptDemo(question string, labels []string, p config.Palette) (tuit.Widget, *widgets.Buttons) {
	text := tuit.NewStyle().Foreground(p.Text).Background(p.Backdrop)

	buttons := widgets.NewButtons(labels...).Styled(
		tuit.NewStyle().Foreground(p.Button).Background(p.Backdrop),
		tuit.NewStyle().Foreground(p.SelectedButton).Inverted(),
	).SelectLast()

	query := widgets.WithMargin(widgets.NewText(question).Styled(text), 1)
	prompt := widgets.UseBackdrop(widgets.Centered(widgets.OnTopOf(query, buttons)), p.Backdrop)

	return layered(widgets.SweeperOfColour(p.Screen), prompt), buttons
}

// splitDemo fills each half of a split view and writes text inside a
// two-cell border.
func splitDemo() tuit.Widget {
	yellow := widgets.SweeperOfColour(tuit.Ansi16(tuit.Yellow))
	magenta := widgets.SweeperOfColour(tuit.Ansi16(tuit.Magenta))
	blue := widgets.WithShrink(widgets.SweeperOfColour(tuit.Ansi16(tuit.Blue)), 2)

	onBlue := tuit.NewStyle().BgAnsi4(tuit.Blue).FgAnsi4(tuit.BrightWhite)
	left := widgets.WithShrink(widgets.NewText(longText).Styled(onBlue), 2)
	right := widgets.WithShrink(widgets.NewText("The guy next to me is too loud...").Styled(onBlue), 2)

	return tuit.DrawFunc(func(info tuit.UpdateInfo, t tuit.Terminal) (tuit.UpdateResult, error) {
		l, r := tuit.NewViewSplit(t).Halves()
		drawAll(info, r, yellow, blue, right)
		drawAll(info, l, magenta, blue, left)
		return tuit.NoEvent, nil
	})
}

// stackingDemo centres three text widgets stacked on top of each other.
func stackingDemo() tuit.Widget {
	top := widgets.NewText("Top widget")
	middle := widgets.NewText("Middle widget")
	bottom := widgets.NewText("Bottom widget").Styled(tuit.NewStyle().BgAnsi4(tuit.Red))

	stacked := widgets.Centered(widgets.OnTopOf(widgets.OnTopOf(top, middle), bottom))
	return layered(widgets.SweeperOfColour(tuit.Ansi16(tuit.Cyan)), stacked)
}

// layered draws each widget over the previous one. Updates reach every
// widget and the largest result wins.
func layered(layers ...tuit.Widget) tuit.Widget {
	return tuit.WidgetFunc{
		OnUpdate: func(info tuit.UpdateInfo, t tuit.TerminalConst) (tuit.UpdateResult, error) {
			res := tuit.NoEvent
			for _, w := range layers {
				r, err := w.Update(info, t)
				if err != nil {
					return res, err
				}
				res = tuit.MergeResults(res, r)
			}
			return res, nil
		},
		OnDraw: func(info tuit.UpdateInfo, t tuit.Terminal) (tuit.UpdateResult, error) {
			res := tuit.NoEvent
			for _, w := range layers {
				r, err := w.Draw(info, t)
				if err != nil {
					return res, err
				}
				res = tuit.MergeResults(res, r)
			}
			return res, nil
		},
	}
}

// drawAll draws widgets in order and carries on past failures, which only
// happen when a region is too small for its text.
func drawAll(info tuit.UpdateInfo, t tuit.Terminal, ws ...tuit.Widget) {
	for _, w := range ws {
		if _, err := w.Draw(info, t); err != nil {
			debug.Log("demo: widget did not fit", "err", err)
		}
	}
}
