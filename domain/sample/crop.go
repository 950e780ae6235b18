package sample

import (
	"errors"
	"image"
	"image/draw"

	"github.com/jangho/subcrop-go/domain/geometry"
)

// CropFrame cuts the ROI out of a decoded frame. The rectangle is intersected
// with the frame bounds first, matching what the OCR pass does per sampled
// frame; an ROI that falls entirely outside the frame is an error, not a
// zero-size crop. Returns the crop (always *image.RGBA) and the effective
// rectangle relative to the frame.
func CropFrame(frame *image.RGBA, roi geometry.RealRect) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	x1, y1 := roi.X, roi.Y
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	x2, y2 := roi.X+roi.W, roi.Y+roi.H
	if x2 > b.Dx() {
		x2 = b.Dx()
	}
	if y2 > b.Dy() {
		y2 = b.Dy()
	}
	if x2 <= x1 || y2 <= y1 {
		return nil, image.Rectangle{}, errors.New("roi outside frame bounds")
	}
	rect := image.Rect(b.Min.X+x1, b.Min.Y+y1, b.Min.X+x2, b.Min.Y+y2)
	sub := frame.SubImage(rect)
	if rgba, ok := sub.(*image.RGBA); ok {
		return rgba, rect, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), sub, rect.Min, draw.Src)
	return out, rect, nil
}
