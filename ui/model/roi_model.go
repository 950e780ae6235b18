package model

import "github.com/jangho/subcrop-go/domain/geometry"

// ROIModel is the single source of truth for the current selection in display
// space. The zero value means no selection and is usable. No synchronization
// needed: all mutation happens on the UI thread inside event handlers.
type ROIModel struct {
	rect geometry.Rect
	has  bool
}

func NewROIModel() *ROIModel { return &ROIModel{} }

// Set stores the rectangle. Callers clamp before storing; the model does not
// reject sub-minimum sizes because a drag may pass through them.
func (m *ROIModel) Set(r geometry.Rect) {
	if m == nil {
		return
	}
	m.rect = r
	m.has = true
}

// Clear drops the selection.
func (m *ROIModel) Clear() {
	if m == nil {
		return
	}
	m.rect = geometry.Rect{}
	m.has = false
}

// Rect returns the current rectangle and whether a selection exists.
func (m *ROIModel) Rect() (geometry.Rect, bool) {
	if m == nil {
		return geometry.Rect{}, false
	}
	return m.rect, m.has
}
