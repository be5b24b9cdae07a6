package tuit

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorWrappers(t *testing.T) {
	cause := errors.New("widget exploded")

	type tc struct {
		err    error
		parent error
	}

	tests := map[string]tc{
		"draw":   {err: DrawError(cause), parent: ErrDraw},
		"update": {err: UpdateError(cause), parent: ErrUpdate},
		"io":     {err: IoError(cause), parent: ErrIo},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.parent) {
				t.Errorf("errors.Is(%v, parent) = false", tt.err)
			}
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%v, cause) = false", tt.err)
			}
		})
	}

	if DrawError(nil) != nil || UpdateError(nil) != nil || IoError(nil) != nil {
		t.Errorf("wrapping nil should return nil")
	}
}

func TestIsOutOfBounds(t *testing.T) {
	if !IsOutOfBounds(fmt.Errorf("centering: %w", OutOfBoundsCoordinate(3, 4))) {
		t.Errorf("wrapped coordinate error not detected")
	}
	if !IsOutOfBounds(DrawError(OutOfBoundsCharacter(9))) {
		t.Errorf("wrapped character error not detected")
	}
	if IsOutOfBounds(ErrTodo) {
		t.Errorf("ErrTodo reported as out of bounds")
	}
}
