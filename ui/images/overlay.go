package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jangho/subcrop-go/domain/geometry"
)

var (
	selectionBorder = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	selectionGrip   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DrawSelection composites the selection rectangle and its eight compass
// grips onto dst in place. r is in display pixels and is expected to be
// clamped to dst already; out-of-range spans are simply cut off by the
// fill helper. grip is the half-size of each grip square.
func DrawSelection(dst *image.RGBA, r geometry.Rect, grip float64) {
	if dst == nil {
		return
	}
	x0, y0 := int(r.X+0.5), int(r.Y+0.5)
	x1, y1 := int(r.X+r.W+0.5), int(r.Y+r.H+0.5)
	const border = 2
	// Hollow rectangle as four thin fills.
	fillRect(dst, x0, y0, x1, y0+border, selectionBorder)
	fillRect(dst, x0, y1-border, x1, y1, selectionBorder)
	fillRect(dst, x0, y0, x0+border, y1, selectionBorder)
	fillRect(dst, x1-border, y0, x1, y1, selectionBorder)

	g := int(grip + 0.5)
	for _, h := range geometry.Handles {
		p := geometry.HandlePoint(r, h)
		cx, cy := int(p.X+0.5), int(p.Y+0.5)
		fillRect(dst, cx-g, cy-g, cx+g, cy+g, selectionGrip)
		fillRect(dst, cx-g+1, cy-g+1, cx+g-1, cy+g-1, selectionBorder)
	}
}

func fillRect(dst *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	rect := image.Rect(x0, y0, x1, y1).Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
