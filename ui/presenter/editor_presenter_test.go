package presenter

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jangho/subcrop-go/domain/gesture"
	"github.com/jangho/subcrop-go/domain/geometry"
	"github.com/jangho/subcrop-go/ui/model"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeOverlay struct {
	shown  bool
	rect   geometry.Rect
	hidden int
}

func (f *fakeOverlay) ShowSelection(r geometry.Rect) {
	f.shown = true
	f.rect = r
}

func (f *fakeOverlay) HideSelection() {
	f.shown = false
	f.hidden++
}

type fakeFields struct {
	raw          geometry.RealRect
	hasRaw       bool
	visible      geometry.RealRect
	setVisibleN  int
	resetVisible int
}

func (f *fakeFields) SetRaw(rr geometry.RealRect) {
	f.raw = rr
	f.hasRaw = true
}

func (f *fakeFields) ClearRaw() {
	f.raw = geometry.RealRect{}
	f.hasRaw = false
}

func (f *fakeFields) Raw() geometry.RealRect { return f.raw }

func (f *fakeFields) SetVisible(rr geometry.RealRect) {
	f.visible = rr
	f.setVisibleN++
}

func (f *fakeFields) ResetVisible() {
	f.visible = geometry.RealRect{}
	f.resetVisible++
}

func (f *fakeFields) Visible() geometry.RealRect { return f.visible }

type fakeLayout struct {
	scale geometry.Scale
	ok    bool
}

func (f *fakeLayout) Layout() (geometry.Scale, bool) { return f.scale, f.ok }

func newTestEditor() (*EditorPresenter, *model.ROIModel, *fakeOverlay, *fakeFields, *fakeLayout) {
	roi := model.NewROIModel()
	overlay := &fakeOverlay{}
	fields := &fakeFields{}
	// Native 400x200 frame displayed at 200x100: scale factor 2.
	layout := &fakeLayout{scale: geometry.NewScale(400, 200, 200, 100), ok: true}
	gest := gesture.NewMachine(testLogger)
	p := NewEditorPresenter(roi, gest, layout, overlay, fields, 5, 6, testLogger)
	return p, roi, overlay, fields, layout
}

func TestEditor_DrawGestureAppliesAndSyncs(t *testing.T) {
	p, roi, overlay, fields, _ := newTestEditor()
	p.PointerDown(10, 10)
	p.PointerMove(110, 60)
	p.PointerUp()

	r, has := roi.Rect()
	if !has {
		t.Fatalf("expected a stored selection")
	}
	want := geometry.Rect{X: 10, Y: 10, W: 100, H: 50}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
	if !overlay.shown || overlay.rect != want {
		t.Fatalf("overlay not showing applied rect: shown=%v rect=%+v", overlay.shown, overlay.rect)
	}
	wantReal := geometry.RealRect{X: 20, Y: 20, W: 200, H: 100}
	if fields.raw != wantReal {
		t.Fatalf("raw fields: expected %+v, got %+v", wantReal, fields.raw)
	}
	if fields.visible != wantReal {
		t.Fatalf("visible fields should sync during gestures: expected %+v, got %+v", wantReal, fields.visible)
	}
}

func TestEditor_SubMinimumHiddenMidDragDiscardedOnRelease(t *testing.T) {
	p, roi, overlay, fields, _ := newTestEditor()
	p.PointerDown(10, 10)
	p.PointerMove(12, 12)

	// Mid-drag: the tiny value is kept but the overlay stays hidden.
	if _, has := roi.Rect(); !has {
		t.Fatalf("sub-minimum candidate should still be stored mid-drag")
	}
	if overlay.shown {
		t.Fatalf("overlay must stay hidden below the minimum size")
	}
	if !fields.hasRaw {
		t.Fatalf("raw fields should track the candidate mid-drag")
	}

	p.PointerUp()
	if _, has := roi.Rect(); has {
		t.Fatalf("sub-minimum selection must be discarded on release")
	}
	if fields.hasRaw {
		t.Fatalf("raw fields should be blank after discard")
	}
	if fields.resetVisible == 0 {
		t.Fatalf("visible fields should reset to zero after discard")
	}
}

func TestEditor_FieldsEditedDoesNotEchoVisible(t *testing.T) {
	p, roi, overlay, fields, _ := newTestEditor()
	fields.visible = geometry.RealRect{X: 40, Y: 20, W: 80, H: 30}
	p.FieldsEdited()

	r, has := roi.Rect()
	if !has {
		t.Fatalf("expected selection from field edit")
	}
	want := geometry.Rect{X: 20, Y: 10, W: 40, H: 15}
	if r != want {
		t.Fatalf("expected display %+v, got %+v", want, r)
	}
	if overlay.rect != want {
		t.Fatalf("overlay: expected %+v, got %+v", want, overlay.rect)
	}
	wantReal := geometry.RealRect{X: 40, Y: 20, W: 80, H: 30}
	if fields.raw != wantReal {
		t.Fatalf("raw fields: expected %+v, got %+v", wantReal, fields.raw)
	}
	if fields.setVisibleN != 0 {
		t.Fatalf("visible fields must not be rewritten while the user is typing")
	}
}

func TestEditor_RestoreRebuildsFromRaw(t *testing.T) {
	p, roi, _, fields, _ := newTestEditor()
	fields.SetRaw(geometry.RealRect{X: 40, Y: 20, W: 80, H: 30})
	p.Restore()

	r, has := roi.Rect()
	if !has {
		t.Fatalf("expected restored selection")
	}
	want := geometry.Rect{X: 20, Y: 10, W: 40, H: 15}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
	if fields.setVisibleN == 0 {
		t.Fatalf("restore should sync the visible fields")
	}
}

func TestEditor_RestoreAcrossResizeKeepsRealValues(t *testing.T) {
	p, roi, _, fields, layout := newTestEditor()
	fields.SetRaw(geometry.RealRect{X: 40, Y: 20, W: 80, H: 30})
	p.Restore()

	// Shrink the display to half: same real record, new geometry.
	layout.scale = geometry.NewScale(400, 200, 100, 50)
	p.Restore()

	r, _ := roi.Rect()
	want := geometry.Rect{X: 10, Y: 5, W: 20, H: 7.5}
	if r != want {
		t.Fatalf("expected %+v after resize, got %+v", want, r)
	}
	// The durable record never drifts with display changes.
	wantReal := geometry.RealRect{X: 40, Y: 20, W: 80, H: 30}
	if fields.raw != wantReal {
		t.Fatalf("raw fields drifted: expected %+v, got %+v", wantReal, fields.raw)
	}
}

func TestEditor_RestoreWithEmptyRawClears(t *testing.T) {
	p, roi, overlay, fields, _ := newTestEditor()
	roi.Set(geometry.Rect{X: 10, Y: 10, W: 50, H: 20})
	overlay.shown = true
	p.Restore()

	if _, has := roi.Rect(); has {
		t.Fatalf("empty raw record should clear the selection")
	}
	if overlay.shown {
		t.Fatalf("overlay should hide on clear")
	}
	if fields.resetVisible == 0 {
		t.Fatalf("visible fields should reset on clear")
	}
}

func TestEditor_NoLayoutIsNoop(t *testing.T) {
	p, roi, _, _, layout := newTestEditor()
	layout.ok = false
	p.PointerDown(10, 10)
	p.PointerMove(110, 60)
	p.FieldsEdited()
	p.Restore()
	if _, has := roi.Rect(); has {
		t.Fatalf("no frame loaded: nothing should be stored")
	}
}

func TestEditor_ApplyListenersFire(t *testing.T) {
	p, _, _, _, _ := newTestEditor()
	n := 0
	p.AddApplyListener(func() { n++ })
	p.PointerDown(10, 10)
	p.PointerMove(110, 60)
	p.Clear()
	if n != 2 {
		t.Fatalf("expected 2 notifications (apply + clear), got %d", n)
	}
}

func TestEditor_MoveGesturePinsAtEdges(t *testing.T) {
	p, roi, _, _, _ := newTestEditor()
	p.PointerDown(10, 10)
	p.PointerMove(60, 60)
	p.PointerUp()

	// Grab the body and drag far past the right edge.
	p.PointerDown(35, 35)
	p.PointerMove(500, 35)
	p.PointerUp()

	r, _ := roi.Rect()
	if r.W != 50 || r.H != 50 {
		t.Fatalf("move must preserve size, got %+v", r)
	}
	if r.X != 150 {
		t.Fatalf("expected x pinned at 150, got %+v", r)
	}
}
