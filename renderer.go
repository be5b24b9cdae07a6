package tuit

import (
	"errors"
	"fmt"
)

// Renderer shows a finished terminal on some display.
type Renderer interface {
	Render(t TerminalConst) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(t TerminalConst) error

// Render calls f(t).
func (f RendererFunc) Render(t TerminalConst) error {
	return f(t)
}

// Display hands t to r. Errors that do not already match ErrRender or ErrIo
// are wrapped with ErrRender.
func Display(t TerminalConst, r Renderer) error {
	err := r.Render(t)
	if err == nil || errors.Is(err, ErrRender) || errors.Is(err, ErrIo) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRender, err)
}
