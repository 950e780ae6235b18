package presenter

import (
	"log/slog"

	"github.com/jangho/subcrop-go/config"
	"github.com/jangho/subcrop-go/domain/geometry"
)

// RestoreTarget narrows what the lifecycle presenter needs from the editor.
type RestoreTarget interface {
	Restore()
	Clear()
}

// LifecyclePresenter owns the durability of the selection across frame loads,
// viewport resizes and app restarts. Real-space values are the durable truth:
// the raw fields survive a resize untouched and the display rectangle is
// always re-derived from them.
type LifecyclePresenter struct {
	editor  RestoreTarget
	fields  FieldsView
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

func NewLifecyclePresenter(editor RestoreTarget, fields FieldsView, cfg *config.Config, cfgPath string, logger *slog.Logger) *LifecyclePresenter {
	return &LifecyclePresenter{editor: editor, fields: fields, cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// FrameLoaded reconstructs display geometry after a new frame finished
// loading.
func (p *LifecyclePresenter) FrameLoaded() {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.Restore()
}

// ViewportResized reconstructs display geometry against the new bounds.
func (p *LifecyclePresenter) ViewportResized() {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.Restore()
}

// RestoreFromConfig seeds the raw fields from the persisted ROI and rebuilds
// the display rectangle. Called once at startup after the first frame load.
func (p *LifecyclePresenter) RestoreFromConfig() {
	if p == nil || p.editor == nil || p.fields == nil || p.cfg == nil {
		return
	}
	if p.cfg.RoiW <= 0 || p.cfg.RoiH <= 0 {
		return
	}
	p.fields.SetRaw(geometry.RealRect{X: p.cfg.RoiX, Y: p.cfg.RoiY, W: p.cfg.RoiW, H: p.cfg.RoiH})
	p.editor.Restore()
}

// Persist writes the current raw ROI into the config file. Called after each
// completed gesture; an unset selection zeroes the persisted rectangle.
func (p *LifecyclePresenter) Persist() {
	if p == nil || p.fields == nil || p.cfg == nil {
		return
	}
	rr := p.fields.Raw()
	if rr.W <= 0 || rr.H <= 0 {
		rr = geometry.RealRect{}
	}
	p.cfg.RoiX, p.cfg.RoiY, p.cfg.RoiW, p.cfg.RoiH = rr.X, rr.Y, rr.W, rr.H
	if p.cfgPath == "" {
		return
	}
	if err := p.cfg.Save(p.cfgPath); err != nil && p.logger != nil {
		p.logger.Error("config save failed", "error", err)
	}
}
