package tuit

import (
	"errors"
	"testing"
)

func TestNewView_Bounds(t *testing.T) {
	type tc struct {
		rect    Rectangle
		wantErr bool
		wantX   int
		wantY   int
	}

	tests := map[string]tc{
		"whole parent":  {rect: OfSize(10, 5)},
		"inner region":  {rect: NewRectangle(Point{X: 2, Y: 1}, Point{X: 6, Y: 4})},
		"empty region":  {rect: NewRectangle(Point{X: 3, Y: 3}, Point{X: 3, Y: 3})},
		"too wide":      {rect: OfSize(11, 5), wantErr: true, wantX: 11, wantY: 5},
		"too tall":      {rect: NewRectangle(Point{X: 1, Y: 2}, Point{X: 4, Y: 6}), wantErr: true, wantX: 4, wantY: 6},
		"negative left": {rect: NewRectangle(Point{X: -1, Y: 0}, Point{X: 3, Y: 3}), wantErr: true, wantX: -1, wantY: 0},
	}

	parent := NewConstantSize(10, 5)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := NewView(parent, tt.rect)
			cv, cerr := NewConstView(parent, tt.rect)

			if !tt.wantErr {
				if err != nil || cerr != nil {
					t.Fatalf("unexpected errors: %v, %v", err, cerr)
				}
				if v.Rect() != tt.rect || cv.Rect() != tt.rect {
					t.Errorf("Rect() = %v / %v, want %v", v.Rect(), cv.Rect(), tt.rect)
				}
				return
			}

			for _, e := range []error{err, cerr} {
				var oob *OutOfBoundsCoordinateError
				if !errors.As(e, &oob) {
					t.Fatalf("error = %v, want *OutOfBoundsCoordinateError", e)
				}
				if oob.X != tt.wantX || oob.Y != tt.wantY {
					t.Errorf("error coordinate = (%d, %d), want (%d, %d)", oob.X, oob.Y, tt.wantX, tt.wantY)
				}
			}
		})
	}
}

func TestView_TranslatesCoordinates(t *testing.T) {
	parent := NewConstantSize(8, 6)
	v, err := NewView(parent, NewRectangle(Point{X: 3, Y: 2}, Point{X: 7, Y: 5}))
	if err != nil {
		t.Fatal(err)
	}

	if w, h := v.Dimensions(); w != 4 || h != 3 {
		t.Errorf("Dimensions() = (%d, %d), want (4, 3)", w, h)
	}

	v.CellMut(0, 0).Character = 'a'
	v.CellMut(3, 2).Character = 'b'

	if c, _ := parent.Cell(3, 2); c.Character != 'a' {
		t.Errorf("parent (3, 2) = %q, want 'a'", c.Character)
	}
	if c, _ := parent.Cell(6, 4); c.Character != 'b' {
		t.Errorf("parent (6, 4) = %q, want 'b'", c.Character)
	}
	if c, ok := v.Cell(3, 2); !ok || c.Character != 'b' {
		t.Errorf("view Cell(3, 2) = %q, %v", c.Character, ok)
	}
}

// Coordinates that are valid in the parent but outside the region must be
// rejected rather than forwarded.
func TestView_RejectsOutsideRegion(t *testing.T) {
	type tc struct {
		x, y int
	}

	tests := map[string]tc{
		"right of region": {x: 4, y: 0},
		"below region":    {x: 0, y: 3},
		"negative x":      {x: -1, y: 1},
		"negative y":      {x: 1, y: -1},
	}

	parent := NewConstantSize(8, 6)
	v, _ := NewView(parent, NewRectangle(Point{X: 3, Y: 2}, Point{X: 7, Y: 5}))
	cv, _ := NewConstView(parent, v.Rect())

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if c := v.CellMut(tt.x, tt.y); c != nil {
				t.Errorf("CellMut(%d, %d) returned a cell", tt.x, tt.y)
			}
			if _, ok := v.Cell(tt.x, tt.y); ok {
				t.Errorf("Cell(%d, %d) ok = true", tt.x, tt.y)
			}
			if _, ok := cv.Cell(tt.x, tt.y); ok {
				t.Errorf("ConstView.Cell(%d, %d) ok = true", tt.x, tt.y)
			}
		})
	}
}

func TestView_Nested(t *testing.T) {
	parent := NewConstantSize(10, 10)
	outer, _ := NewView(parent, NewRectangle(Point{X: 2, Y: 2}, Point{X: 8, Y: 8}))
	inner, err := NewView(outer, NewRectangle(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}))
	if err != nil {
		t.Fatal(err)
	}

	for c := range inner.CellsMut() {
		c.Character = '*'
	}

	count := 0
	for c := range parent.Cells() {
		if c.Character == '*' {
			count++
		}
	}
	if count != 4 {
		t.Errorf("nested view wrote %d cells, want 4", count)
	}
	if c, _ := parent.Cell(3, 3); c.Character != '*' {
		t.Errorf("parent (3, 3) = %q, want '*'", c.Character)
	}
	if c, _ := parent.Cell(5, 5); c.Character == '*' {
		t.Errorf("parent (5, 5) written outside nested region")
	}

	if _, err := NewView(outer, OfSize(7, 1)); err == nil {
		t.Errorf("nested view wider than its parent view should fail")
	}
}

func TestView_DefaultStyleForwards(t *testing.T) {
	parent := NewConstantSize(4, 4)
	parent.SetDefaultStyle(NewStyle().Bold())
	v, _ := NewView(parent, OfSize(2, 2))
	if !v.DefaultStyle().IsBold() {
		t.Errorf("DefaultStyle() did not forward to parent")
	}
}

func TestView_StaleAfterRescale(t *testing.T) {
	parent := NewMaxSize(6, 4)
	v, err := NewView(parent, NewRectangle(Point{X: 2, Y: 1}, Point{X: 6, Y: 4}))
	if err != nil {
		t.Fatal(err)
	}

	count := func() (mut, cells int) {
		for range v.CellsMut() {
			mut++
		}
		for range v.Cells() {
			cells++
		}
		return mut, cells
	}

	if mut, cells := count(); mut != 12 || cells != 12 {
		t.Fatalf("before rescale: %d mutable / %d cells, want 12", mut, cells)
	}

	if err := parent.Rescale(4, 4); err != nil {
		t.Fatal(err)
	}
	if mut, cells := count(); mut != 0 || cells != 0 {
		t.Errorf("after shrinking: %d mutable / %d cells, want none", mut, cells)
	}

	if err := parent.Rescale(6, 4); err != nil {
		t.Fatal(err)
	}
	if mut, cells := count(); mut != 12 || cells != 12 {
		t.Errorf("after growing back: %d mutable / %d cells, want 12", mut, cells)
	}
}
