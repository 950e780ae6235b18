package app

import (
	"log/slog"

	"github.com/jangho/subcrop-go/config"
	"github.com/jangho/subcrop-go/domain/gesture"
	"github.com/jangho/subcrop-go/domain/geometry"
	"github.com/jangho/subcrop-go/ui/model"
	"github.com/jangho/subcrop-go/ui/presenter"
	"github.com/jangho/subcrop-go/ui/view"
)

// AppContainer assembles models, the gesture machine, presenters and the
// root view.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	ROI     *model.ROIModel
	Frame   *model.FrameModel
	Gesture *gesture.Machine

	RootView *view.RootView
	UI       view.UI

	// Presenters, wired after the view is built.
	Editor     *presenter.EditorPresenter
	Lifecycle  *presenter.LifecyclePresenter
	Crop       *presenter.CropPresenter
	Mode       *presenter.ModePresenter
	Transcript *presenter.TextPresenter
}

// BuildContainer constructs the models, machine and view shell. Presenters
// depend on built widgets and are attached by the app once the layout exists.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.ROI = model.NewROIModel()
	c.Frame = model.NewFrameModel()
	c.Gesture = gesture.NewMachine(logger)
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView
	return c
}

// layoutFunc adapts a closure to the presenter.LayoutSource contract.
type layoutFunc func() (geometry.Scale, bool)

func (f layoutFunc) Layout() (geometry.Scale, bool) { return f() }

var _ presenter.LayoutSource = (layoutFunc)(nil)
