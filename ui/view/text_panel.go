package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TextPanel owns the transcript rows: a free-form input for raw OCR lines
// (pasted from the downstream pass) and a read-only output holding the
// cleaned, deduplicated subtitle lines.
type TextPanel interface {
	Build(startRow int, onClean func()) (endRow int)

	RawLines() []string
	SetCleanLines(lines []string)
}

type textPanel struct {
	input  *TextWidget
	output *TextWidget
}

// NewTextPanel creates the panel; widgets are built by Build.
func NewTextPanel() TextPanel {
	return &textPanel{}
}

func (v *textPanel) Build(startRow int, onClean func()) (row int) {
	row = startRow
	lbl := Label(Txt("OCR text"), Anchor("w"))
	Grid(lbl, Row(row), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.15m"))
	v.input = Text(Height(5), Width(48))
	Grid(v.input, Row(row), Column(1), Columnspan(3), Sticky("we"), Padx("0.2m"), Pady("0.15m"))
	cleanBtn := Button(Txt("Clean Text"), Command(func() {
		if onClean != nil {
			onClean()
		}
	}))
	Grid(cleanBtn, Row(row), Column(4), Sticky("nwe"), Padx("0.2m"), Pady("0.15m"))
	row++

	outLbl := Label(Txt("Subtitles"), Anchor("w"))
	Grid(outLbl, Row(row), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.15m"))
	v.output = Text(Height(5), Width(48))
	v.output.Configure(State("disabled"))
	Grid(v.output, Row(row), Column(1), Columnspan(4), Sticky("we"), Padx("0.2m"), Pady("0.15m"))
	row++
	return row
}

// RawLines returns the pasted input split into lines.
func (v *textPanel) RawLines() []string {
	if v == nil || v.input == nil {
		return nil
	}
	parts := v.input.Get("1.0", END)
	return strings.Split(strings.Join(parts, ""), "\n")
}

// SetCleanLines replaces the output with the cleaned lines, one per row.
func (v *textPanel) SetCleanLines(lines []string) {
	if v == nil || v.output == nil {
		return
	}
	v.output.Configure(State("normal"))
	v.output.Delete("1.0", END)
	v.output.Insert("1.0", strings.Join(lines, "\n"))
	v.output.Configure(State("disabled"))
}
