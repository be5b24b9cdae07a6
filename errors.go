package tuit

import (
	"errors"
	"fmt"
)

var (
	// ErrIo wraps failures writing to or reading from the display.
	ErrIo = errors.New("tuit: io error")
	// ErrRender is returned by renderers that cannot show a terminal.
	ErrRender = errors.New("tuit: render error")
	// ErrTodo marks functionality that a widget has not implemented yet.
	ErrTodo = errors.New("tuit: not implemented")
	// ErrDraw is the parent of every error returned through DrawError.
	ErrDraw = errors.New("tuit: draw error")
	// ErrUpdate is the parent of every error returned through UpdateError.
	ErrUpdate = errors.New("tuit: update error")
)

// OutOfBoundsCharacterError reports a linear cell index that does not fit
// in the available region.
type OutOfBoundsCharacterError struct {
	Index int
}

func (e *OutOfBoundsCharacterError) Error() string {
	return fmt.Sprintf("character index %d out of bounds", e.Index)
}

// OutOfBoundsCharacter returns an *OutOfBoundsCharacterError for index i.
func OutOfBoundsCharacter(i int) error {
	return &OutOfBoundsCharacterError{Index: i}
}

// OutOfBoundsCoordinateError reports a coordinate (or a right-bottom corner)
// outside the available region.
type OutOfBoundsCoordinateError struct {
	X, Y int
}

func (e *OutOfBoundsCoordinateError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) out of bounds", e.X, e.Y)
}

// OutOfBoundsCoordinate returns an *OutOfBoundsCoordinateError for (x, y).
func OutOfBoundsCoordinate(x, y int) error {
	return &OutOfBoundsCoordinateError{X: x, Y: y}
}

// IsOutOfBounds reports whether err is, or wraps, either bounds error.
func IsOutOfBounds(err error) bool {
	var ch *OutOfBoundsCharacterError
	var co *OutOfBoundsCoordinateError
	return errors.As(err, &ch) || errors.As(err, &co)
}

type wrappedError struct {
	kind  error
	cause error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%v: %v", e.kind, e.cause)
}

func (e *wrappedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// DrawError wraps a widget-specific failure from Draw. The result matches
// ErrDraw and err with errors.Is. A nil err returns nil.
func DrawError(err error) error {
	if err == nil {
		return nil
	}
	return &wrappedError{kind: ErrDraw, cause: err}
}

// UpdateError wraps a widget-specific failure from Update. The result matches
// ErrUpdate and err with errors.Is. A nil err returns nil.
func UpdateError(err error) error {
	if err == nil {
		return nil
	}
	return &wrappedError{kind: ErrUpdate, cause: err}
}

// IoError wraps an I/O failure from a renderer so it matches ErrIo.
func IoError(err error) error {
	if err == nil {
		return nil
	}
	return &wrappedError{kind: ErrIo, cause: err}
}
