package gesture

import (
	"log/slog"

	"github.com/jangho/subcrop-go/domain/geometry"
)

// Machine tracks the active selection gesture between pointer-down and
// pointer-up: its mode, the grabbed handle, the anchor point and the baseline
// rectangle the gesture mutates.
//
// Dispatch is strictly synchronous. The Tk event loop already serializes
// pointer events, so handlers are plain method calls on the single owning
// controller; a move or up event can never be observed before its down event
// and no locking is needed. Each new gesture fully supersedes the previous
// state.
type Machine struct {
	mode      Mode
	handle    geometry.Handle
	anchor    geometry.Point
	baseline  geometry.Rect
	logger    *slog.Logger
	listeners []TransitionListener
}

// NewMachine returns an idle gesture machine.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{logger: logger}
}

// AddListener registers a transition listener.
func (m *Machine) AddListener(l TransitionListener) {
	if m == nil || l == nil {
		return
	}
	m.listeners = append(m.listeners, l)
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	if m == nil {
		return ModeIdle
	}
	return m.mode
}

// ActiveHandle returns the handle grabbed at pointer-down, or HandleNone.
// During a drag-through resize the effective handle reported by Move may
// differ; the grabbed handle stays fixed so deltas remain relative to the
// baseline.
func (m *Machine) ActiveHandle() geometry.Handle {
	if m == nil {
		return geometry.HandleNone
	}
	return m.handle
}

// Down starts a gesture for a press at p. current is the existing selection
// (nil when none); grip is the handle hit tolerance in display pixels.
//
// A press on a grip of the existing selection starts a resize, a press on its
// body starts a move, anything else starts drawing a fresh rectangle from the
// clamped pointer position.
func (m *Machine) Down(p geometry.Point, current *geometry.Rect, grip float64, s geometry.Scale) {
	if m == nil {
		return
	}
	if current != nil {
		if h := geometry.HandleAt(*current, p, grip); h != geometry.HandleNone {
			m.anchor = p
			m.baseline = *current
			m.handle = h
			m.transition(ModeResizing)
			return
		}
		if current.Contains(p) {
			m.anchor = p
			m.baseline = *current
			m.handle = geometry.HandleNone
			m.transition(ModeMoving)
			return
		}
	}
	anchor := geometry.ClampPoint(p, s)
	m.anchor = anchor
	m.baseline = geometry.Rect{X: anchor.X, Y: anchor.Y}
	m.handle = geometry.HandleNone
	m.transition(ModeDrawing)
}

// Move produces the candidate rectangle for a pointer position. It returns
// ok=false when no gesture is active. The candidate is not yet clamped for
// the drawing and resizing modes; the store clamps on apply.
func (m *Machine) Move(p geometry.Point, s geometry.Scale) (geometry.Rect, bool) {
	if m == nil {
		return geometry.Rect{}, false
	}
	switch m.mode {
	case ModeDrawing:
		return geometry.FromCorners(m.anchor, p), true
	case ModeMoving:
		moved := m.baseline.Translate(p.X-m.anchor.X, p.Y-m.anchor.Y)
		return moved.PinToBounds(s.BoundsW, s.BoundsH), true
	case ModeResizing:
		r, _ := geometry.Resize(m.baseline, m.handle, p.X-m.anchor.X, p.Y-m.anchor.Y)
		return r, true
	default:
		return geometry.Rect{}, false
	}
}

// Up ends the gesture unconditionally and returns to idle.
func (m *Machine) Up() {
	if m == nil {
		return
	}
	m.anchor = geometry.Point{}
	m.baseline = geometry.Rect{}
	m.handle = geometry.HandleNone
	m.transition(ModeIdle)
}

func (m *Machine) transition(next Mode) {
	prev := m.mode
	if prev == next {
		return
	}
	m.mode = next
	if m.logger != nil {
		m.logger.Debug("gesture transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

// Ensure contract satisfaction
var _ MachineContract = (*Machine)(nil)
