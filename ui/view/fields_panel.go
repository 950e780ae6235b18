package view

import (
	"strconv"
	"strings"

	"github.com/jangho/subcrop-go/domain/geometry"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FieldsPanel owns the two paired field rows: the raw machine fields holding
// the ROI in native pixels (the contract consumed downstream: read-only in
// the UI, blank when no selection exists) and the visible fields the user can
// edit for direct numeric entry.
type FieldsPanel interface {
	Build(startRow int, onEdited func()) (endRow int)

	SetRaw(rr geometry.RealRect)
	ClearRaw()
	Raw() geometry.RealRect
	SetVisible(rr geometry.RealRect)
	ResetVisible()
	Visible() geometry.RealRect
}

type fieldsPanel struct {
	raw     map[string]*TextWidget
	visible map[string]*TextWidget
}

var fieldKeys = [4]string{"x", "y", "w", "h"}

// NewFieldsPanel creates the panel; widgets are built by Build.
func NewFieldsPanel() FieldsPanel {
	return &fieldsPanel{raw: make(map[string]*TextWidget), visible: make(map[string]*TextWidget)}
}

func (v *fieldsPanel) Build(startRow int, onEdited func()) (row int) {
	row = startRow
	makeRow := func(dst map[string]*TextWidget, label string, editable bool) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		for i, key := range fieldKeys {
			w := Text(Height(1), Width(8))
			Grid(w, Row(row), Column(1+i), Sticky("we"), Padx("0.2m"), Pady("0.15m"))
			if editable {
				if onEdited != nil {
					Bind(w, "<KeyRelease>", Command(func() { onEdited() }))
				}
			} else {
				w.Configure(State("disabled"))
			}
			dst[key] = w
		}
		row++
	}
	makeRow(v.visible, "ROI (native px)", true)
	makeRow(v.raw, "Crop output", false)
	return row
}

func (v *fieldsPanel) SetRaw(rr geometry.RealRect) {
	v.setRaw("x", strconv.Itoa(rr.X))
	v.setRaw("y", strconv.Itoa(rr.Y))
	v.setRaw("w", strconv.Itoa(rr.W))
	v.setRaw("h", strconv.Itoa(rr.H))
}

// ClearRaw blanks the raw fields: the downstream contract for "no selection"
// is empty strings, not zeros.
func (v *fieldsPanel) ClearRaw() {
	for _, key := range fieldKeys {
		v.setRaw(key, "")
	}
}

func (v *fieldsPanel) Raw() geometry.RealRect {
	return geometry.RealRect{
		X: parseField(v.text(v.raw["x"])),
		Y: parseField(v.text(v.raw["y"])),
		W: parseField(v.text(v.raw["w"])),
		H: parseField(v.text(v.raw["h"])),
	}
}

func (v *fieldsPanel) SetVisible(rr geometry.RealRect) {
	v.setText(v.visible["x"], strconv.Itoa(rr.X))
	v.setText(v.visible["y"], strconv.Itoa(rr.Y))
	v.setText(v.visible["w"], strconv.Itoa(rr.W))
	v.setText(v.visible["h"], strconv.Itoa(rr.H))
}

func (v *fieldsPanel) ResetVisible() {
	for _, key := range fieldKeys {
		v.setText(v.visible[key], "0")
	}
}

func (v *fieldsPanel) Visible() geometry.RealRect {
	return geometry.RealRect{
		X: parseField(v.text(v.visible["x"])),
		Y: parseField(v.text(v.visible["y"])),
		W: parseField(v.text(v.visible["w"])),
		H: parseField(v.text(v.visible["h"])),
	}
}

// setRaw writes a disabled widget by toggling its state around the edit.
func (v *fieldsPanel) setRaw(key, value string) {
	w := v.raw[key]
	if w == nil {
		return
	}
	w.Configure(State("normal"))
	v.setText(w, value)
	w.Configure(State("disabled"))
}

func (v *fieldsPanel) setText(w *TextWidget, value string) {
	if w == nil {
		return
	}
	w.Delete("1.0", END)
	w.Insert("1.0", value)
}

func (v *fieldsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

// parseField coerces a field value to a non-negative integer. Invalid, empty
// or negative input reads as 0; this is an interactive editor, not a
// validating form.
func parseField(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}
