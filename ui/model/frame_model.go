package model

import "image"

// FrameModel holds the native-resolution frame being annotated. The zero
// value means no frame loaded and is usable.
type FrameModel struct {
	frame *image.RGBA
}

func NewFrameModel() *FrameModel { return &FrameModel{} }

// SetFrame stores the frame. A nil frame clears the model.
func (m *FrameModel) SetFrame(img *image.RGBA) {
	if m == nil {
		return
	}
	m.frame = img
}

// Frame returns the native frame, or nil when none is loaded.
func (m *FrameModel) Frame() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.frame
}

// NaturalSize returns the frame's native pixel dimensions.
func (m *FrameModel) NaturalSize() (w, h int, ok bool) {
	if m == nil || m.frame == nil {
		return 0, 0, false
	}
	b := m.frame.Bounds()
	return b.Dx(), b.Dy(), true
}
