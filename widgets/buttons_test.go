package widgets

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-tuit"
)

func TestButtons_Draw(t *testing.T) {
	b := NewButtons(" Yes ", " No ")
	b.ButtonStyle = tuit.NewStyle().FgAnsi4(tuit.White)

	term := tuit.NewConstantSize(12, 2)
	if _, err := tuit.Drawn(b, term); err != nil {
		t.Fatal(err)
	}

	if got := lines(term)[0]; got != " Yes  No    " {
		t.Errorf("row 0 = %q", got)
	}
	if c, _ := term.Cell(1, 0); !c.Style.Invert.Enabled() {
		t.Errorf("selected label not drawn with SelectedButtonStyle")
	}
	if c, _ := term.Cell(6, 0); c.Style != b.ButtonStyle {
		t.Errorf("unselected label style = %+v", c.Style)
	}
	if c, _ := term.Cell(9, 0); c.Style != (tuit.Style{}) {
		t.Errorf("cell past the labels was written")
	}
}

func TestButtons_SelectLast(t *testing.T) {
	b := NewButtons("a", "b", "c")
	last := b.SelectLast()

	if last.Selected != 2 || last.SelectedLabel() != "c" {
		t.Errorf("SelectLast().Selected = %d", last.Selected)
	}
	if b.Selected != 0 {
		t.Errorf("SelectLast mutated the receiver")
	}
	if NewButtons().SelectLast().Selected != 0 {
		t.Errorf("SelectLast on no labels should stay at 0")
	}
}

func TestButtons_Update(t *testing.T) {
	type tc struct {
		start    int
		info     tuit.UpdateInfo
		want     tuit.UpdateResult
		selected int
	}

	tests := map[string]tc{
		"click second label": {
			start: 0, info: tuit.CellClicked{X: 6, Y: 0, Button: tuit.Primary},
			want: tuit.Interacted, selected: 1,
		},
		"click past labels": {
			start: 0, info: tuit.CellClicked{X: 10, Y: 0, Button: tuit.Primary},
			want: tuit.NoEvent, selected: 0,
		},
		"secondary click": {
			start: 0, info: tuit.CellClicked{X: 6, Y: 0, Button: tuit.Secondary},
			want: tuit.NoEvent, selected: 0,
		},
		"right arrow": {
			start: 0, info: tuit.KeyboardInput{Code: tuit.KeyRightArrow, State: tuit.KeyDown},
			want: tuit.Interacted, selected: 1,
		},
		"right arrow at end": {
			start: 2, info: tuit.KeyboardInput{Code: tuit.KeyRightArrow, State: tuit.KeyDown},
			want: tuit.NoEvent, selected: 2,
		},
		"left arrow": {
			start: 2, info: tuit.KeyboardInput{Code: tuit.KeyLeftArrow, State: tuit.KeyDown},
			want: tuit.Interacted, selected: 1,
		},
		"arrow release ignored": {
			start: 0, info: tuit.KeyboardInput{Code: tuit.KeyRightArrow, State: tuit.KeyUp},
			want: tuit.NoEvent, selected: 0,
		},
		"enter": {
			start: 1, info: tuit.KeyboardInput{Code: tuit.KeyEnter, State: tuit.KeyDown},
			want: tuit.LifecycleEnd, selected: 1,
		},
	}

	term := tuit.NewConstantSize(12, 1)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewButtons(" Yes ", " No ", "?")
			b.Selected = tt.start

			got, err := b.Update(tt.info, term)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Update() = %v, want %v", got, tt.want)
			}
			if b.Selected != tt.selected {
				t.Errorf("Selected = %d, want %d", b.Selected, tt.selected)
			}
		})
	}
}

func TestButtons_BoundingBox(t *testing.T) {
	b := NewButtons(" Yes ", " No ")

	box, err := b.BoundingBox(tuit.OfSize(20, 3))
	if err != nil {
		t.Fatal(err)
	}
	if box != tuit.OfSize(9, 1) {
		t.Errorf("BoundingBox() = %v, want %v", box, tuit.OfSize(9, 1))
	}

	_, err = b.BoundingBox(tuit.OfSize(8, 3))
	var oob *tuit.OutOfBoundsCoordinateError
	if !errors.As(err, &oob) || oob.X != 9 || oob.Y != 1 {
		t.Errorf("BoundingBox() error = %v, want (9, 1)", err)
	}

	b.Gap = 2
	if box, _ := b.BoundingBox(tuit.OfSize(20, 3)); box.Width() != 11 {
		t.Errorf("width with gap = %d, want 11", box.Width())
	}
}

// The prompt from the demo program: a question with a margin stacked on a
// row of buttons, centred on a backdrop.
func TestPromptLayout(t *testing.T) {
	cyan := tuit.Ansi16(tuit.BrightCyan)
	yellow := tuit.Ansi16(tuit.Yellow)

	buttons := NewButtons(" Yes ", " No ")
	buttons.SelectedButtonStyle = tuit.NewStyle().FgAnsi4(tuit.BrightWhite).Inverted()

	prompt := Centered(OnTopOf(WithMargin(NewText("Continue?"), 1), buttons.SelectLast()))

	term := tuit.NewConstantSize(57, 14)
	if _, err := tuit.Drawn(SweeperOfColour(cyan), term); err != nil {
		t.Fatal(err)
	}
	if _, err := tuit.Drawn(UseBackdrop(prompt, yellow), term); err != nil {
		t.Fatal(err)
	}

	rows := lines(term)
	if got, want := rows[6][24:33], "Continue?"; got != want {
		t.Errorf("row 6 = %q, want %q at column 24", rows[6], want)
	}
	if got, want := rows[8][23:32], " Yes  No "; got != want {
		t.Errorf("row 8 = %q, want %q at column 23", rows[8], want)
	}

	type spot struct {
		x, y int
		bg   tuit.Colour
	}
	for _, p := range []spot{
		{x: 22, y: 5, bg: cyan},
		{x: 23, y: 5, bg: yellow},
		{x: 33, y: 8, bg: yellow},
		{x: 34, y: 8, bg: cyan},
		{x: 28, y: 9, bg: cyan},
	} {
		if c, _ := term.Cell(p.x, p.y); c.Style.Bg != p.bg {
			t.Errorf("(%d, %d) background = %v, want %v", p.x, p.y, c.Style.Bg, p.bg)
		}
	}

	if c, _ := term.Cell(28, 8); !c.Style.Invert.Enabled() {
		t.Errorf("selected button (No) should be inverted")
	}
}
