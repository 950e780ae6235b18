package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// PlaceholderPNG contains the raw PNG bytes of the placeholder frame shown
// before any video frame is loaded.
//
//go:embed placeholder_frame.png
var PlaceholderPNG []byte

// PlaceholderFrame decodes the embedded PNG into an RGBA frame.
func PlaceholderFrame() (*image.RGBA, error) {
	if len(PlaceholderPNG) == 0 {
		return nil, fmt.Errorf("embedded placeholder_frame.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(PlaceholderPNG))
	if err != nil {
		return nil, err
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, nil
}
