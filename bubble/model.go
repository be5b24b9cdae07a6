// Package bubble hosts a tuit widget inside a Bubble Tea program.
package bubble

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/debug"
	"github.com/grindlemire/go-tuit/render/glossrender"
)

// Model is a tea.Model that feeds Bubble Tea messages to a widget and shows
// the result through a glossrender.Renderer.
//
// The program quits when a frame returns LifecycleEnd, when the widget
// returns an error (see Err), or on Ctrl-C.
type Model struct {
	widget tuit.Widget
	term   *tuit.MaxSize
	gloss  *glossrender.Renderer
	tick   time.Duration
	last   time.Time

	programOpts []tea.ProgramOption

	result tuit.UpdateResult
	err    error
}

var _ tea.Model = (*Model)(nil)

// Option configures a Model.
type Option func(*Model)

// WithSize sets the terminal size used until the first tea.WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.term = tuit.NewMaxSize(width, height)
	}
}

// WithRenderer sets the renderer used by View.
func WithRenderer(r *glossrender.Renderer) Option {
	return func(m *Model) {
		m.gloss = r
	}
}

// WithTick sends a TimeDelta to the widget every d.
func WithTick(d time.Duration) Option {
	return func(m *Model) {
		m.tick = d
	}
}

// WithDefaultStyle sets the default style of the widget's terminal.
func WithDefaultStyle(s tuit.Style) Option {
	return func(m *Model) {
		m.term.SetDefaultStyle(s)
	}
}

// WithProgramOptions replaces the options Run passes to tea.NewProgram.
// The defaults are tea.WithAltScreen and tea.WithMouseCellMotion.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(m *Model) {
		m.programOpts = opts
	}
}

// New creates a Model for w. Options are applied in order, so WithSize
// should come before WithDefaultStyle.
func New(w tuit.Widget, opts ...Option) *Model {
	m := &Model{
		widget:      w,
		term:        tuit.NewMaxSize(80, 24),
		programOpts: []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.gloss == nil {
		m.gloss = glossrender.New(os.Stdout)
	}
	return m
}

type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	if m.tick <= 0 {
		return nil
	}
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init draws the first frame and starts the ticker, if any.
func (m *Model) Init() tea.Cmd {
	m.last = time.Now()
	if m.step(tuit.NoInfo{}) {
		return tea.Quit
	}
	return m.tickCmd()
}

// Update translates msg and runs a frame for each resulting update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.last)
		m.last = now
		if m.step(tuit.TimeDelta{Elapsed: elapsed}) {
			return m, tea.Quit
		}
		return m, m.tickCmd()
	}

	for _, info := range Translate(msg) {
		if m.step(info) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current terminal.
func (m *Model) View() string {
	return m.gloss.String(m.term)
}

// Terminal returns the terminal the widget draws into.
func (m *Model) Terminal() tuit.TerminalConst {
	return m.term
}

// Result returns the largest UpdateResult seen so far.
func (m *Model) Result() tuit.UpdateResult {
	return m.result
}

// Err returns the widget error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// step runs one frame and reports whether the program should quit.
func (m *Model) step(info tuit.UpdateInfo) bool {
	res, err := tuit.Step(m.widget, m.term, info)
	m.result = tuit.MergeResults(m.result, res)
	if err != nil {
		debug.Log("bubble: widget failed", "err", err)
		m.err = err
		return true
	}
	return res == tuit.LifecycleEnd
}

func (m *Model) resize(w, h int) {
	if err := m.term.Rescale(w, h); err == nil {
		return
	}
	mw, mh := m.term.MaxDimensions()
	grown := tuit.NewMaxSize(max(w, mw), max(h, mh))
	grown.SetDefaultStyle(m.term.DefaultStyle())
	if err := grown.Rescale(w, h); err != nil {
		debug.Log("bubble: rescale failed", "err", err)
	}
	m.term = grown
}

// Run starts a Bubble Tea program for w and blocks until it quits. It
// returns the model so callers can inspect Result, and the widget error if
// one stopped the program.
func Run(w tuit.Widget, opts ...Option) (*Model, error) {
	m := New(w, opts...)
	p := tea.NewProgram(m, m.programOpts...)
	if _, err := p.Run(); err != nil {
		return m, tuit.IoError(err)
	}
	return m, m.err
}
