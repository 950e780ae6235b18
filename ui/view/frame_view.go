package view

import (
	"image"
	"log/slog"
	"math"

	"github.com/jangho/subcrop-go/domain/geometry"
	"github.com/jangho/subcrop-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FrameView renders the frame at the current zoom with the selection overlay
// composited on top, plus the native-resolution crop preview beside it.
// The overlay is drawn into the displayed pixels and pushed as a fresh photo,
// so there is no separate canvas item to keep in sync.
type FrameView interface {
	SetFrame(img *image.RGBA)
	SetZoom(z float64)
	DisplaySize() (w, h int)
	ShowSelection(r geometry.Rect)
	HideSelection()
	UpdateCrop(img image.Image)
	ResetCrop()
}

// PointerCallbacks receive display-space pointer events from the frame label.
type PointerCallbacks struct {
	Down func(x, y float64)
	Move func(x, y float64)
	Up   func()
}

type frameView struct {
	logger *slog.Logger

	frameLabel *LabelWidget
	cropLabel  *LabelWidget
	prevFrame  *Img // last Tk photo for the frame, disposed on swap
	prevCrop   *Img

	native    *image.RGBA
	zoom      float64
	selection *geometry.Rect
	grip      float64
}

const (
	placeholderW = 480
	placeholderH = 270
	maxCropW     = 400
	maxCropH     = 120
)

// NewFrameView creates the frame and crop labels, grids them at the given row
// and binds the primary pointer button. grip is the handle half-size in
// display pixels.
func NewFrameView(row int, grip int, pointer PointerCallbacks, logger *slog.Logger) FrameView {
	v := &frameView{logger: logger, zoom: 1.0, grip: float64(grip)}

	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	pngBytes := images.EncodePNG(placeholder)
	framePhoto := NewPhoto(Data(pngBytes))
	cropPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, maxCropW, maxCropH)))))
	v.frameLabel = Label(Image(framePhoto), Borderwidth(1), Relief("sunken"))
	v.cropLabel = Label(Image(cropPhoto), Borderwidth(1), Relief("sunken"))
	v.prevFrame = framePhoto
	v.prevCrop = cropPhoto
	Grid(v.frameLabel, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(v.cropLabel, Row(row), Column(4), Columnspan(1), Sticky("n"), Padx("0.4m"), Pady("0.4m"))

	if pointer.Down != nil {
		Bind(v.frameLabel, "<ButtonPress-1>", Command(func(e *Event) {
			pointer.Down(float64(e.X), float64(e.Y))
		}))
	}
	if pointer.Move != nil {
		Bind(v.frameLabel, "<B1-Motion>", Command(func(e *Event) {
			pointer.Move(float64(e.X), float64(e.Y))
		}))
	}
	if pointer.Up != nil {
		Bind(v.frameLabel, "<ButtonRelease-1>", Command(func(e *Event) {
			pointer.Up()
		}))
	}
	return v
}

func (v *frameView) SetFrame(img *image.RGBA) {
	if v == nil {
		return
	}
	v.native = img
	v.render()
}

func (v *frameView) SetZoom(z float64) {
	if v == nil {
		return
	}
	if z <= 0 || z > 4 {
		z = 1.0
	}
	v.zoom = z
	v.render()
}

// DisplaySize reports the rendered frame size at the current zoom. Zero while
// no frame is loaded.
func (v *frameView) DisplaySize() (int, int) {
	if v == nil || v.native == nil {
		return 0, 0
	}
	b := v.native.Bounds()
	w := int(math.Round(float64(b.Dx()) * v.zoom))
	h := int(math.Round(float64(b.Dy()) * v.zoom))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (v *frameView) ShowSelection(r geometry.Rect) {
	if v == nil {
		return
	}
	v.selection = &r
	v.render()
}

func (v *frameView) HideSelection() {
	if v == nil {
		return
	}
	v.selection = nil
	v.render()
}

func (v *frameView) UpdateCrop(img image.Image) {
	if v == nil || v.cropLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxCropW, maxCropH)
	pngBytes := images.EncodePNG(scaled)
	if v.prevCrop != nil {
		v.prevCrop.Delete()
	}
	v.prevCrop = NewPhoto(Data(pngBytes))
	v.cropLabel.Configure(Image(v.prevCrop))
}

func (v *frameView) ResetCrop() {
	if v == nil || v.cropLabel == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, maxCropW, maxCropH))
	if v.prevCrop != nil {
		v.prevCrop.Delete()
	}
	v.prevCrop = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.cropLabel.Configure(Image(v.prevCrop))
}

// render recomposites the displayed frame: scale to the zoomed size, draw the
// selection if present, swap the photo. Replacing the previous photo avoids
// retaining obsolete pixel buffers.
func (v *frameView) render() {
	if v.frameLabel == nil {
		return
	}
	var display *image.RGBA
	if v.native == nil {
		display = image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	} else {
		w, h := v.DisplaySize()
		display = images.ScaleTo(v.native, w, h)
	}
	if v.selection != nil {
		images.DrawSelection(display, *v.selection, v.grip)
	}
	pngBytes := images.EncodePNG(display)
	if v.prevFrame != nil {
		v.prevFrame.Delete()
	}
	v.prevFrame = NewPhoto(Data(pngBytes))
	v.frameLabel.Configure(Image(v.prevFrame))
}
