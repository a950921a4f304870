package view

import (
	"fmt"
	"image/color"

	"github.com/n1tr0xs/fire-danger-map/domain/danger"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// NewLegend grids one swatch per danger class, least severe first, starting
// at (row, col). It returns the next free row.
func NewLegend(row, col int, uiFont Opt) int {
	levels := danger.Levels()
	frame := Frame()
	Grid(frame, Row(row), Column(col), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	for i := len(levels) - 1; i >= 0; i-- {
		l := levels[i]
		text := fmt.Sprintf("%s: %s", l.Class, l.Range())
		sw := Label(Txt(text), uiFont, Background(hexColor(l.Color)), Foreground(textOn(l.Color)), Borderwidth(1), Relief("ridge"), Padx("1m"))
		Grid(sw, In(frame), Row(0), Column(len(levels)-1-i), Sticky("we"), Padx("0.2m"))
	}
	return row + 1
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// textOn picks black or white text for readability on background c.
func textOn(c color.RGBA) string {
	// ITU-R BT.601 luma
	if 299*int(c.R)+587*int(c.G)+114*int(c.B) > 128000 {
		return "black"
	}
	return "white"
}
