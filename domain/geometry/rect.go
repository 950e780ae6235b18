package geometry

import "math"

// Point is a position in display-space pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in display space (the rendered size of
// the frame). Top-left origin, non-negative extents after clamping.
type Rect struct {
	X, Y, W, H float64
}

// RealRect is a rectangle in the frame's native pixel resolution. This is the
// durable form: display geometry is always re-derived from it, never the
// other way around.
type RealRect struct {
	X, Y, W, H int
}

// Scale maps display space onto real space. It is derived fresh from live
// layout metrics on every pointer event; callers must not cache it across
// gestures so a mid-session resize is reflected immediately.
type Scale struct {
	ScaleX, ScaleY   float64
	BoundsW, BoundsH float64
}

// NewScale derives the scale context from the frame's native size and its
// current rendered size. Degenerate rendered sizes are coerced to 1px.
func NewScale(naturalW, naturalH, displayW, displayH int) Scale {
	if displayW < 1 {
		displayW = 1
	}
	if displayH < 1 {
		displayH = 1
	}
	return Scale{
		ScaleX:  float64(naturalW) / float64(displayW),
		ScaleY:  float64(naturalH) / float64(displayH),
		BoundsW: float64(displayW),
		BoundsH: float64(displayH),
	}
}

// ToReal projects a display-space rectangle into native pixels, rounding each
// axis to the nearest integer. No clamping.
func ToReal(r Rect, s Scale) RealRect {
	return RealRect{
		X: int(math.Round(r.X * s.ScaleX)),
		Y: int(math.Round(r.Y * s.ScaleY)),
		W: int(math.Round(r.W * s.ScaleX)),
		H: int(math.Round(r.H * s.ScaleY)),
	}
}

// ToDisplay is the inverse of ToReal, clamped against the current display
// bounds so a stale real-space record never produces an off-surface rectangle.
func ToDisplay(rr RealRect, s Scale) Rect {
	sx, sy := s.ScaleX, s.ScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	r := Rect{
		X: float64(rr.X) / sx,
		Y: float64(rr.Y) / sy,
		W: float64(rr.W) / sx,
		H: float64(rr.H) / sy,
	}
	return ClampToBounds(r, s.BoundsW, s.BoundsH)
}

// ClampToBounds constrains r to [0,boundsW]x[0,boundsH]. Width and height are
// clamped against the already-clamped origin so the result never extends past
// the far edges. Idempotent.
func ClampToBounds(r Rect, boundsW, boundsH float64) Rect {
	x := clamp(r.X, 0, boundsW)
	y := clamp(r.Y, 0, boundsH)
	return Rect{
		X: x,
		Y: y,
		W: clamp(r.W, 0, boundsW-x),
		H: clamp(r.H, 0, boundsH-y),
	}
}

// ClampPoint constrains p to the display bounds of s.
func ClampPoint(p Point, s Scale) Point {
	return Point{X: clamp(p.X, 0, s.BoundsW), Y: clamp(p.Y, 0, s.BoundsH)}
}

// Contains reports whether p lies inside r (far edges inclusive, so a grab on
// the border counts as the body when no handle matched).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// PinToBounds keeps r's size and shifts its origin so the far edges never
// exceed the bounds: x <= boundsW-w, y <= boundsH-h. Unlike ClampToBounds it
// never shrinks the rectangle, which is what a move gesture wants: dragging
// past an edge must not snap the selection to full width.
func (r Rect) PinToBounds(boundsW, boundsH float64) Rect {
	maxX := boundsW - r.W
	if maxX < 0 {
		maxX = 0
	}
	maxY := boundsH - r.H
	if maxY < 0 {
		maxY = 0
	}
	return Rect{X: clamp(r.X, 0, maxX), Y: clamp(r.Y, 0, maxY), W: r.W, H: r.H}
}

// FromCorners returns the normalized rectangle spanned by two points.
func FromCorners(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
