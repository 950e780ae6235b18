package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/jangho/subcrop-go/assets"
	"github.com/jangho/subcrop-go/config"
	"github.com/jangho/subcrop-go/debug"
	"github.com/jangho/subcrop-go/domain/frame"
	"github.com/jangho/subcrop-go/domain/geometry"
	"github.com/jangho/subcrop-go/domain/sample"
	"github.com/jangho/subcrop-go/ui/presenter"
	"github.com/jangho/subcrop-go/ui/theme"
	"github.com/jangho/subcrop-go/ui/view"
)

type app struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	width   int
	height  int
	c       *AppContainer
}

// NewApp creates the application window.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{cfg: cfg, cfgPath: cfgPath, logger: logger, width: width, height: height}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the layout, wires the presenters and enters the Tk event
// loop. All editor mutation happens synchronously inside the callbacks bound
// here, so the event loop is the sole serializer of state.
func (a *app) Start() {
	theme.InitStyles()

	c := BuildContainer(a.cfg, a.logger)
	a.c = c

	c.RootView.Build(view.Callbacks{
		LoadFrame:  func() { a.loadFrame(frame.FileSource{Path: a.cfg.FramePath}) },
		SnapScreen: func() { a.loadFrame(frame.ScreenSource{}) },
		Reset: func() {
			c.Editor.Clear()
			c.Lifecycle.Persist()
		},
		Exit: a.exitHandler,
		ZoomChanged: func(zoom float64) {
			a.cfg.Zoom = zoom
			c.RootView.Frame.SetZoom(zoom)
			c.Lifecycle.ViewportResized()
		},
		Pointer: view.PointerCallbacks{
			Down: func(x, y float64) { c.Editor.PointerDown(x, y) },
			Move: func(x, y float64) { c.Editor.PointerMove(x, y) },
			Up: func() {
				c.Editor.PointerUp()
				c.Lifecycle.Persist()
			},
		},
		FieldsEdited: func() { c.Editor.FieldsEdited() },
		CleanText:    func() { c.Transcript.Clean() },
	})
	c.RootView.Frame.SetZoom(a.cfg.Zoom)

	// Scale is derived fresh from live layout on every call; nothing here is
	// cached across gestures.
	layout := layoutFunc(func() (geometry.Scale, bool) {
		natW, natH, ok := c.Frame.NaturalSize()
		if !ok {
			return geometry.Scale{}, false
		}
		dispW, dispH := c.RootView.Frame.DisplaySize()
		return geometry.NewScale(natW, natH, dispW, dispH), true
	})

	c.Editor = presenter.NewEditorPresenter(c.ROI, c.Gesture, layout, c.RootView, c.RootView.Fields,
		a.cfg.MinSizePx, a.cfg.HandleGripPx, a.logger)
	c.Lifecycle = presenter.NewLifecyclePresenter(c.Editor, c.RootView.Fields, a.cfg, a.cfgPath, a.logger)
	c.Crop = presenter.NewCropPresenter(c.Frame, c.RootView.Fields, c.RootView, a.logger)
	c.Mode = presenter.NewModePresenter(c.RootView)
	c.Transcript = presenter.NewTextPresenter(c.RootView.Text, a.cfg, a.logger)
	c.Gesture.AddListener(c.Mode.OnMode)
	c.Editor.AddApplyListener(c.Crop.Refresh)

	a.loadInitialFrame()
	c.Lifecycle.RestoreFromConfig()
	a.updatePlanLabel()

	if a.cfg.Debug {
		debug.StartGoroutineLogger(2*time.Second, a.logger)
		debug.StartMemLogger(5*time.Second, a.logger)
	}

	App.Wait()
}

// loadFrame replaces the working frame and reconstructs the selection from
// the durable real-space record against the new layout.
func (a *app) loadFrame(src frame.Source) {
	img, err := src.Frame()
	if err != nil {
		a.logger.Error("frame load failed", "error", err)
		return
	}
	a.c.Frame.SetFrame(img)
	a.c.RootView.Frame.SetFrame(img)
	a.c.Lifecycle.FrameLoaded()
	b := img.Bounds()
	a.logger.Info("frame loaded", "w", b.Dx(), "h", b.Dy())
}

func (a *app) loadInitialFrame() {
	if a.cfg.FramePath != "" {
		a.loadFrame(frame.FileSource{Path: a.cfg.FramePath})
		return
	}
	img, err := assets.PlaceholderFrame()
	if err != nil {
		a.logger.Error("placeholder frame", "error", err)
		return
	}
	a.c.Frame.SetFrame(img)
	a.c.RootView.Frame.SetFrame(img)
	a.c.Lifecycle.FrameLoaded()
}

func (a *app) updatePlanLabel() {
	plan := sample.Plan(a.cfg.MaxSampleSeconds, a.cfg.SampleIntervalSeconds, a.cfg.MaxSampleSeconds, a.cfg.LimitSampling)
	thumbs := sample.ThumbnailTimestamps(float64(a.cfg.MaxSampleSeconds))
	a.c.UI.SetPlanLabel(fmt.Sprintf("OCR plan: %d frames @ %ds, thumbnails at %v", len(plan), a.cfg.SampleIntervalSeconds, thumbs))
}

func (a *app) exitHandler() {
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.logger.Error("config save failed", "error", err)
	}
	Destroy(App)
}
