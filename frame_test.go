package tuit

import (
	"errors"
	"testing"
)

func TestStep(t *testing.T) {
	errUpdate := errors.New("update failed")

	type tc struct {
		update   UpdateResult
		draw     UpdateResult
		fail     bool
		want     UpdateResult
		wantDraw bool
	}

	tests := map[string]tc{
		"both quiet":         {update: NoEvent, draw: NoEvent, want: NoEvent, wantDraw: true},
		"update interacted":  {update: Interacted, draw: NoEvent, want: Interacted, wantDraw: true},
		"draw ends":          {update: Interacted, draw: LifecycleEnd, want: LifecycleEnd, wantDraw: true},
		"update error skips": {update: NoEvent, fail: true, want: NoEvent},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := NewConstantSize(3, 1)
			term.CellMut(2, 0).Character = 'z'

			drawn := false
			w := WidgetFunc{
				OnUpdate: func(UpdateInfo, TerminalConst) (UpdateResult, error) {
					if tt.fail {
						return tt.update, errUpdate
					}
					return tt.update, nil
				},
				OnDraw: func(_ UpdateInfo, t Terminal) (UpdateResult, error) {
					drawn = true
					t.CellMut(0, 0).Character = 'a'
					return tt.draw, nil
				},
			}

			got, err := Step(w, term, NoInfo{})
			if tt.fail != errors.Is(err, errUpdate) {
				t.Fatalf("Step() error = %v, want failure %v", err, tt.fail)
			}
			if got != tt.want {
				t.Errorf("Step() = %v, want %v", got, tt.want)
			}
			if drawn != tt.wantDraw {
				t.Errorf("Draw called = %v, want %v", drawn, tt.wantDraw)
			}
			if !tt.wantDraw {
				return
			}
			if got := TextTrimmed(term); got != "a" {
				t.Errorf("terminal after Step = %q, want stale cells cleared", got)
			}
		})
	}
}
