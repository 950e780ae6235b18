package gesture

import "github.com/jangho/subcrop-go/domain/geometry"

// Mode enumerates the finite states of a selection gesture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// TransitionListener is called on each mode transition.
type TransitionListener func(prev, next Mode)

// ModeSource reports the current gesture mode.
type ModeSource interface{ Current() Mode }

// PointerSink receives pointer events for the active gesture.
type PointerSink interface {
	Down(p geometry.Point, current *geometry.Rect, grip float64, s geometry.Scale)
	Move(p geometry.Point, s geometry.Scale) (geometry.Rect, bool)
	Up()
}

// MachineContract aggregates the gesture machine surface used by presenters.
type MachineContract interface {
	ModeSource
	PointerSink
	ActiveHandle() geometry.Handle
	AddListener(TransitionListener)
}
