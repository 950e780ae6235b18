package presenter

import (
	"image"
	"log/slog"

	"github.com/jangho/subcrop-go/domain/sample"
	"github.com/jangho/subcrop-go/ui/model"
)

// CropView displays the native-resolution cut of the current ROI.
type CropView interface {
	UpdateCrop(img image.Image)
	ResetCrop()
}

// CropPresenter keeps the crop preview in sync with the raw fields. It shows
// exactly what the downstream OCR pass will receive per sampled frame.
type CropPresenter struct {
	frame  *model.FrameModel
	fields FieldsView
	view   CropView
	logger *slog.Logger
}

func NewCropPresenter(frame *model.FrameModel, fields FieldsView, view CropView, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{frame: frame, fields: fields, view: view, logger: logger}
}

// Refresh re-cuts the preview from the native frame. Registered as an apply
// listener on the editor so it runs after every selection update.
func (p *CropPresenter) Refresh() {
	if p == nil || p.frame == nil || p.fields == nil || p.view == nil {
		return
	}
	frame := p.frame.Frame()
	rr := p.fields.Raw()
	if frame == nil || rr.W <= 0 || rr.H <= 0 {
		p.view.ResetCrop()
		return
	}
	crop, _, err := sample.CropFrame(frame, rr)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("crop preview", "error", err)
		}
		p.view.ResetCrop()
		return
	}
	p.view.UpdateCrop(crop)
}
