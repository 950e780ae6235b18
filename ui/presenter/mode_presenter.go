package presenter

import "github.com/jangho/subcrop-go/domain/gesture"

// StateView sets the gesture state label in the view.
type StateView interface{ SetStateLabel(string) }

// ModePresenter reflects gesture transitions into the state label. Dispatch
// is synchronous, so OnMode is registered directly as a machine listener.
type ModePresenter struct {
	view StateView
}

func NewModePresenter(view StateView) *ModePresenter { return &ModePresenter{view: view} }

// OnMode is a gesture.TransitionListener.
func (p *ModePresenter) OnMode(prev, next gesture.Mode) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetStateLabel("Mode: " + next.String())
}
