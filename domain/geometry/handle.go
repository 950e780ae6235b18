package geometry

// Handle identifies one of the eight compass-direction resize grips on the
// selection border.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

func (h Handle) String() string {
	switch h {
	case HandleN:
		return "n"
	case HandleS:
		return "s"
	case HandleE:
		return "e"
	case HandleW:
		return "w"
	case HandleNE:
		return "ne"
	case HandleNW:
		return "nw"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	default:
		return "none"
	}
}

func (h Handle) north() bool { return h == HandleN || h == HandleNE || h == HandleNW }
func (h Handle) south() bool { return h == HandleS || h == HandleSE || h == HandleSW }
func (h Handle) east() bool  { return h == HandleE || h == HandleNE || h == HandleSE }
func (h Handle) west() bool  { return h == HandleW || h == HandleNW || h == HandleSW }

// flipH mirrors the handle's horizontal component (drag-through past the
// opposite vertical edge).
func (h Handle) flipH() Handle {
	switch h {
	case HandleE:
		return HandleW
	case HandleW:
		return HandleE
	case HandleNE:
		return HandleNW
	case HandleNW:
		return HandleNE
	case HandleSE:
		return HandleSW
	case HandleSW:
		return HandleSE
	}
	return h
}

// flipV mirrors the handle's vertical component.
func (h Handle) flipV() Handle {
	switch h {
	case HandleN:
		return HandleS
	case HandleS:
		return HandleN
	case HandleNE:
		return HandleSE
	case HandleSE:
		return HandleNE
	case HandleNW:
		return HandleSW
	case HandleSW:
		return HandleNW
	}
	return h
}

// HandlePoint returns the grip's position on r's border.
func HandlePoint(r Rect, h Handle) Point {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	switch h {
	case HandleN:
		return Point{X: cx, Y: r.Y}
	case HandleS:
		return Point{X: cx, Y: r.Y + r.H}
	case HandleE:
		return Point{X: r.X + r.W, Y: cy}
	case HandleW:
		return Point{X: r.X, Y: cy}
	case HandleNE:
		return Point{X: r.X + r.W, Y: r.Y}
	case HandleNW:
		return Point{X: r.X, Y: r.Y}
	case HandleSE:
		return Point{X: r.X + r.W, Y: r.Y + r.H}
	case HandleSW:
		return Point{X: r.X, Y: r.Y + r.H}
	}
	return Point{X: cx, Y: cy}
}

// Handles lists all eight grips in drawing order.
var Handles = [8]Handle{HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW}

// HandleAt hit-tests p against r's grips with a square tolerance of grip
// pixels per side. Corners are checked before edge midpoints so a press near
// a corner always wins. Returns HandleNone when nothing is hit.
func HandleAt(r Rect, p Point, grip float64) Handle {
	order := [8]Handle{HandleNW, HandleNE, HandleSE, HandleSW, HandleN, HandleS, HandleE, HandleW}
	for _, h := range order {
		hp := HandlePoint(r, h)
		if p.X >= hp.X-grip && p.X <= hp.X+grip && p.Y >= hp.Y-grip && p.Y <= hp.Y+grip {
			return h
		}
	}
	return HandleNone
}

// Resize adjusts the edge(s) named by h on the baseline rectangle by the
// pointer delta. When the adjusted right edge crosses left (or bottom crosses
// top) the edges are swapped and the reported handle flips, which lets a drag
// pass straight through the opposite edge. The result is not clamped.
func Resize(baseline Rect, h Handle, dx, dy float64) (Rect, Handle) {
	left, top := baseline.X, baseline.Y
	right, bottom := baseline.X+baseline.W, baseline.Y+baseline.H
	if h.west() {
		left += dx
	}
	if h.east() {
		right += dx
	}
	if h.north() {
		top += dy
	}
	if h.south() {
		bottom += dy
	}
	active := h
	if right < left {
		left, right = right, left
		active = active.flipH()
	}
	if bottom < top {
		top, bottom = bottom, top
		active = active.flipV()
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, active
}
