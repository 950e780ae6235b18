package frame

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/vova616/screenshot"
)

// Source yields a native-resolution frame for ROI editing. The editor treats
// every source the same: it only needs the pixels and their natural size.
type Source interface {
	Frame() (*image.RGBA, error)
}

// FileSource decodes a still frame (PNG or JPEG) exported from the video.
type FileSource struct {
	Path string
}

func (s FileSource) Frame() (*image.RGBA, error) {
	if s.Path == "" {
		return nil, errors.New("empty frame path")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return toRGBA(img), nil
}

// ScreenSource grabs the current screen, useful when the video is playing in
// another window and no exported frame is at hand.
type ScreenSource struct{}

func (ScreenSource) Frame() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
