package model

import (
	"image"
	"testing"

	"github.com/jangho/subcrop-go/domain/geometry"
)

func TestROIModel_SetClearRoundTrip(t *testing.T) {
	m := NewROIModel()
	if _, has := m.Rect(); has {
		t.Fatalf("fresh model should have no selection")
	}
	want := geometry.Rect{X: 10, Y: 20, W: 30, H: 40}
	m.Set(want)
	r, has := m.Rect()
	if !has || r != want {
		t.Fatalf("expected %+v, got %+v has=%v", want, r, has)
	}
	m.Clear()
	if _, has := m.Rect(); has {
		t.Fatalf("clear should drop the selection")
	}
}

func TestROIModel_KeepsSubMinimumValues(t *testing.T) {
	m := NewROIModel()
	tiny := geometry.Rect{X: 1, Y: 1, W: 2, H: 2}
	m.Set(tiny)
	if r, has := m.Rect(); !has || r != tiny {
		t.Fatalf("model must store tiny rects unchanged, got %+v", r)
	}
}

func TestROIModel_NilReceiver(t *testing.T) {
	var m *ROIModel
	m.Set(geometry.Rect{W: 10, H: 10})
	m.Clear()
	if _, has := m.Rect(); has {
		t.Fatalf("nil model should report no selection")
	}
}

func TestFrameModel_NaturalSize(t *testing.T) {
	m := NewFrameModel()
	if _, _, ok := m.NaturalSize(); ok {
		t.Fatalf("empty model should report no size")
	}
	m.SetFrame(image.NewRGBA(image.Rect(0, 0, 400, 200)))
	w, h, ok := m.NaturalSize()
	if !ok || w != 400 || h != 200 {
		t.Fatalf("expected 400x200, got %dx%d ok=%v", w, h, ok)
	}
	m.SetFrame(nil)
	if _, _, ok := m.NaturalSize(); ok {
		t.Fatalf("nil frame should clear the size")
	}
}
