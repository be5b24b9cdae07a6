package tuit

import (
	"testing"
	"time"
)

func TestMouseRelativeTo(t *testing.T) {
	type tc struct {
		info UpdateInfo
		rect Rectangle
		want UpdateInfo
	}

	rect := NewRectangle(Point{X: 5, Y: 3}, Point{X: 10, Y: 8})

	tests := map[string]tc{
		"inside": {
			info: CellClicked{X: 7, Y: 4, Button: Primary},
			rect: rect,
			want: CellClicked{X: 2, Y: 1, Button: Primary},
		},
		"at corner": {
			info: CellClicked{X: 5, Y: 3, Button: Secondary},
			rect: rect,
			want: CellClicked{X: 0, Y: 0, Button: Secondary},
		},
		"left of rect": {
			info: CellClicked{X: 4, Y: 4},
			rect: rect,
			want: NoInfo{},
		},
		"above rect": {
			info: CellClicked{X: 6, Y: 2},
			rect: rect,
			want: NoInfo{},
		},
		"keyboard untouched": {
			info: KeyboardCharacter{Char: 'a', State: KeyDown},
			rect: rect,
			want: KeyboardCharacter{Char: 'a', State: KeyDown},
		},
		"time untouched": {
			info: TimeDelta{Elapsed: time.Second},
			rect: rect,
			want: TimeDelta{Elapsed: time.Second},
		},
		"nil becomes no info": {
			info: nil,
			rect: rect,
			want: NoInfo{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MouseRelativeTo(tt.info, tt.rect); got != tt.want {
				t.Errorf("MouseRelativeTo(%v, %v) = %#v, want %#v", tt.info, tt.rect, got, tt.want)
			}
		})
	}
}

func TestMergeResults(t *testing.T) {
	type tc struct {
		in   []UpdateResult
		want UpdateResult
	}

	tests := map[string]tc{
		"empty":          {in: nil, want: NoEvent},
		"all no event":   {in: []UpdateResult{NoEvent, NoEvent}, want: NoEvent},
		"one interacted": {in: []UpdateResult{NoEvent, Interacted}, want: Interacted},
		"lifecycle wins": {in: []UpdateResult{LifecycleEnd, Interacted, NoEvent}, want: LifecycleEnd},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MergeResults(tt.in...); got != tt.want {
				t.Errorf("MergeResults(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderings(t *testing.T) {
	if !(NoEvent < Interacted && Interacted < LifecycleEnd) {
		t.Errorf("UpdateResult ordering broken")
	}
	if !(KeyUp < KeyDown && KeyDown < KeyHeld) {
		t.Errorf("KeyState ordering broken")
	}
}

func TestMouseButton_Auxiliary(t *testing.T) {
	b := Auxiliary(3)
	if b == Primary || b == Secondary {
		t.Fatalf("Auxiliary(3) collides with a named button")
	}
	if n, ok := b.AuxiliaryIndex(); !ok || n != 3 {
		t.Errorf("AuxiliaryIndex() = %d, %v, want 3, true", n, ok)
	}
	if _, ok := Primary.AuxiliaryIndex(); ok {
		t.Errorf("Primary.AuxiliaryIndex() ok = true")
	}
	if got := b.String(); got != "auxiliary(3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestKeyboardInput_Is(t *testing.T) {
	if !(KeyboardInput{Code: KeyEnter, State: KeyDown}).Is(KeyEnter) {
		t.Errorf("Is(KeyEnter) = false for a key down")
	}
	if (KeyboardInput{Code: KeyEnter, State: KeyUp}).Is(KeyEnter) {
		t.Errorf("Is(KeyEnter) = true for a key release")
	}
}
