package view

import (
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jangho/subcrop-go/config"
	"github.com/jangho/subcrop-go/domain/geometry"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level editor layout and wires UI callbacks.
// It owns the subviews but exposes only the narrow surfaces presenters need.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Frame  FrameView
	Fields FieldsPanel
	Text   TextPanel

	// Widgets
	StateLabel *LabelWidget
	PlanLabel  *LabelWidget
	ZoomSelect *TComboboxWidget
}

// UI abstracts the view operations needed by presenters, decoupling them from
// the concrete RootView.
type UI interface {
	SetStateLabel(text string)
	SetPlanLabel(text string)
	ShowSelection(r geometry.Rect)
	HideSelection()
	UpdateCrop(img image.Image)
	ResetCrop()
}

// Callbacks groups the user-action handlers invoked by the root view.
type Callbacks struct {
	LoadFrame    func()
	SnapScreen   func()
	Reset        func()
	Exit         func()
	ZoomChanged  func(zoom float64)
	Pointer      PointerCallbacks
	FieldsEdited func()
	CleanText    func()
}

var zoomChoices = []string{"50%", "75%", "100%", "150%", "200%"}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: status row, button column, frame + crop
// previews, and the paired field rows.
func (rv *RootView) Build(cb Callbacks) {
	if rv == nil {
		return
	}
	// Row 0: state label, sampling plan label, buttons frame.
	rv.StateLabel = Label(Txt("Mode: idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.PlanLabel = Label(Txt(""), Anchor("w"))
	Grid(rv.PlanLabel, Row(0), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	loadBtn := Button(Txt("Load Frame"), Command(cb.LoadFrame))
	Grid(loadBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	snapBtn := Button(Txt("Snap Screen"), Command(cb.SnapScreen))
	Grid(snapBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	resetBtn := Button(Txt("Reset Selection"), Command(cb.Reset))
	Grid(resetBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.ZoomSelect = TCombobox(Values(zoomChoices), Width(8))
	Grid(rv.ZoomSelect, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.selectZoom(rv.cfg.Zoom)
	Bind(rv.ZoomSelect, "<<ComboboxSelected>>", Command(func() {
		if rv.ZoomSelect == nil || cb.ZoomChanged == nil {
			return
		}
		idxStr := rv.ZoomSelect.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(zoomChoices) {
			if rv.logger != nil {
				rv.logger.Error("zoom selection parse error", "error", err)
			}
			return
		}
		cb.ZoomChanged(parseZoom(zoomChoices[idx]))
	}))
	exitBtn := Button(Txt("Exit"), Command(cb.Exit))
	Grid(exitBtn, In(btnFrame), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: frame and crop previews.
	grip := 6
	if rv.cfg != nil && rv.cfg.HandleGripPx > 0 {
		grip = rv.cfg.HandleGripPx
	}
	rv.Frame = NewFrameView(1, grip, cb.Pointer, rv.logger)

	// Rows 2..: field rows, then the transcript rows.
	rv.Fields = NewFieldsPanel()
	row := rv.Fields.Build(2, cb.FieldsEdited)
	rv.Text = NewTextPanel()
	rv.Text.Build(row, cb.CleanText)
}

// selectZoom preselects the combobox entry closest to z.
func (rv *RootView) selectZoom(z float64) {
	if rv.ZoomSelect == nil {
		return
	}
	best := 2 // 100%
	for i, choice := range zoomChoices {
		if parseZoom(choice) == z {
			best = i
			break
		}
	}
	rv.ZoomSelect.Current(best)
}

func parseZoom(s string) float64 {
	pct, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil || pct <= 0 {
		return 1.0
	}
	return float64(pct) / 100
}

// SetStateLabel updates the gesture mode label.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetPlanLabel updates the downstream sampling hint.
func (rv *RootView) SetPlanLabel(text string) {
	if rv != nil && rv.PlanLabel != nil {
		rv.PlanLabel.Configure(Txt(text))
	}
}

// --- EditorPresenter overlay contract ---

func (rv *RootView) ShowSelection(r geometry.Rect) {
	if rv != nil && rv.Frame != nil {
		rv.Frame.ShowSelection(r)
	}
}

func (rv *RootView) HideSelection() {
	if rv != nil && rv.Frame != nil {
		rv.Frame.HideSelection()
	}
}

// --- CropPresenter view contract ---

func (rv *RootView) UpdateCrop(img image.Image) {
	if rv != nil && rv.Frame != nil {
		rv.Frame.UpdateCrop(img)
	}
}

func (rv *RootView) ResetCrop() {
	if rv != nil && rv.Frame != nil {
		rv.Frame.ResetCrop()
	}
}

var _ UI = (*RootView)(nil)
