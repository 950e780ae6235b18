package presenter

import (
	"testing"

	"github.com/jangho/subcrop-go/domain/gesture"
)

type fakeStateView struct{ label string }

func (f *fakeStateView) SetStateLabel(s string) { f.label = s }

func TestModePresenter_ReflectsTransitions(t *testing.T) {
	view := &fakeStateView{}
	p := NewModePresenter(view)
	p.OnMode(gesture.ModeIdle, gesture.ModeDrawing)
	if view.label != "Mode: drawing" {
		t.Fatalf("expected drawing label, got %q", view.label)
	}
	p.OnMode(gesture.ModeDrawing, gesture.ModeIdle)
	if view.label != "Mode: idle" {
		t.Fatalf("expected idle label, got %q", view.label)
	}
}
