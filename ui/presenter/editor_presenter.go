package presenter

import (
	"log/slog"

	"github.com/jangho/subcrop-go/domain/gesture"
	"github.com/jangho/subcrop-go/domain/geometry"
	"github.com/jangho/subcrop-go/ui/model"
)

// OverlayView renders the selection over the displayed frame.
type OverlayView interface {
	ShowSelection(r geometry.Rect)
	HideSelection()
}

// FieldsView exposes the two paired field sets: the raw (machine) fields that
// form the contract with the downstream OCR collaborator, and the visible
// fields the user can edit directly. All values are native pixels.
type FieldsView interface {
	SetRaw(rr geometry.RealRect)
	ClearRaw()
	Raw() geometry.RealRect // blank/invalid components read as 0
	SetVisible(rr geometry.RealRect)
	ResetVisible()
	Visible() geometry.RealRect // coerced: invalid/empty/negative -> 0
}

// LayoutSource returns the live display geometry. ok is false while no frame
// is loaded. Implementations must compute the scale fresh on every call and
// never cache it, so a mid-session resize is reflected on the very next
// pointer event.
type LayoutSource interface {
	Layout() (geometry.Scale, bool)
}

// EditorPresenter is the single controller owning the selection rectangle and
// the gesture state. All event handlers are methods on it and run to
// completion on the UI thread, so mutation is serialized by construction.
type EditorPresenter struct {
	roi     *model.ROIModel
	gest    gesture.MachineContract
	layout  LayoutSource
	overlay OverlayView
	fields  FieldsView
	logger  *slog.Logger

	minSizePx float64
	gripPx    float64

	applied []func()
}

// NewEditorPresenter wires the controller. minSizePx is the threshold below
// which a released selection counts as accidental; gripPx is the handle hit
// tolerance.
func NewEditorPresenter(roi *model.ROIModel, gest gesture.MachineContract, layout LayoutSource, overlay OverlayView, fields FieldsView, minSizePx, gripPx int, logger *slog.Logger) *EditorPresenter {
	if minSizePx < 1 {
		minSizePx = 5
	}
	if gripPx < 2 {
		gripPx = 6
	}
	return &EditorPresenter{
		roi:       roi,
		gest:      gest,
		layout:    layout,
		overlay:   overlay,
		fields:    fields,
		logger:    logger,
		minSizePx: float64(minSizePx),
		gripPx:    float64(gripPx),
	}
}

// AddApplyListener registers a hook invoked after every applied update or
// clear, once the fields reflect the new state.
func (p *EditorPresenter) AddApplyListener(fn func()) {
	if p == nil || fn == nil {
		return
	}
	p.applied = append(p.applied, fn)
}

// PointerDown begins a gesture at display position (x, y).
func (p *EditorPresenter) PointerDown(x, y float64) {
	if p == nil {
		return
	}
	s, ok := p.layout.Layout()
	if !ok {
		return
	}
	var current *geometry.Rect
	if r, has := p.roi.Rect(); has {
		current = &r
	}
	p.gest.Down(geometry.Point{X: x, Y: y}, current, p.gripPx, s)
}

// PointerMove advances the active gesture and applies the candidate
// rectangle. No-op when idle.
func (p *EditorPresenter) PointerMove(x, y float64) {
	if p == nil {
		return
	}
	s, ok := p.layout.Layout()
	if !ok {
		return
	}
	candidate, active := p.gest.Move(geometry.Point{X: x, Y: y}, s)
	if !active {
		return
	}
	p.applyRect(candidate, s, true)
}

// PointerUp finalizes the gesture. A selection below the minimum size in
// either dimension is discarded entirely: sub-threshold states are tolerated
// mid-drag but never survive release.
func (p *EditorPresenter) PointerUp() {
	if p == nil {
		return
	}
	p.gest.Up()
	r, has := p.roi.Rect()
	if has && (r.W < p.minSizePx || r.H < p.minSizePx) {
		if p.logger != nil {
			p.logger.Debug("selection discarded below minimum", "w", r.W, "h", r.H)
		}
		p.Clear()
	}
}

// FieldsEdited re-projects the user-edited visible fields into display space
// and applies the result. Feedback writes into the visible fields are
// suppressed so typing is not disturbed.
func (p *EditorPresenter) FieldsEdited() {
	if p == nil {
		return
	}
	s, ok := p.layout.Layout()
	if !ok {
		return
	}
	rr := p.fields.Visible()
	p.applyRect(geometry.ToDisplay(rr, s), s, false)
}

// Restore rebuilds display geometry from the raw fields, the durable
// real-space record. Called after frame load and on viewport resize. A
// zero/missing width or height clears the selection.
func (p *EditorPresenter) Restore() {
	if p == nil {
		return
	}
	s, ok := p.layout.Layout()
	if !ok {
		return
	}
	rr := p.fields.Raw()
	if rr.W <= 0 || rr.H <= 0 {
		p.Clear()
		return
	}
	p.applyRect(geometry.ToDisplay(rr, s), s, true)
}

// Clear drops the selection: overlay hidden, raw fields blanked, visible
// fields reset to zero.
func (p *EditorPresenter) Clear() {
	if p == nil {
		return
	}
	p.roi.Clear()
	p.overlay.HideSelection()
	p.fields.ClearRaw()
	p.fields.ResetVisible()
	p.notifyApplied()
}

// applyRect is the single store-and-sync path: clamp, store, push overlay
// geometry (hidden below the minimum size so a drag can pass through
// sub-threshold states without losing the value), project to real space and
// write the fields. Raw fields are always written; visible fields only when
// syncVisible is set.
func (p *EditorPresenter) applyRect(candidate geometry.Rect, s geometry.Scale, syncVisible bool) {
	candidate = geometry.ClampToBounds(candidate, s.BoundsW, s.BoundsH)
	p.roi.Set(candidate)
	if candidate.W < p.minSizePx || candidate.H < p.minSizePx {
		p.overlay.HideSelection()
	} else {
		p.overlay.ShowSelection(candidate)
	}
	real := geometry.ToReal(candidate, s)
	p.fields.SetRaw(real)
	if syncVisible {
		p.fields.SetVisible(real)
	}
	p.notifyApplied()
}

func (p *EditorPresenter) notifyApplied() {
	for _, fn := range p.applied {
		fn()
	}
}
