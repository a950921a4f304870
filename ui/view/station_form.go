package view

import (
	"strings"

	"github.com/n1tr0xs/fire-danger-map/domain/registry"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// StationForm is the input table: one row per station with its regions and
// a single-line value field.
type StationForm interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	FieldText(station string) string
	SetEditable(enabled bool)
}

type stationForm struct {
	reg     *registry.Registry
	uiFont  Opt
	widgets  map[string]*TextWidget // keyed by station name
}

// NewStationForm creates the form for the stations of reg in registry order.
func NewStationForm(reg *registry.Registry, uiFont Opt) StationForm {
	return &stationForm{reg: reg, uiFont: uiFont, widgets: make(map[string]*TextWidget)}
}

func (v *stationForm) Build(startRow int) (row int) {
	row = startRow
	header := func(col int, text string) {
		Grid(Label(Txt(text), v.uiFont, Anchor("w")), Row(row), Column(col), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	}
	header(0, "Станция")
	header(1, "Районы")
	header(2, "Показатель горимости")
	row++
	Grid(TSeparator(Orient("horizontal")), Row(row), Column(0), Columnspan(3), Sticky("we"), Pady("0.2m"))
	row++

	for _, name := range v.reg.Names() {
		regions, _ := v.reg.Regions(name)
		Grid(Label(Txt(name), v.uiFont, Anchor("w")), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		Grid(Label(Txt(strings.Join(regions, "\n")), v.uiFont, Anchor("w"), Justify("left")), Row(row), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16), v.uiFont)
		Grid(w, Row(row), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[name] = w
		row++
		Grid(TSeparator(Orient("horizontal")), Row(row), Column(0), Columnspan(3), Sticky("we"))
		row++
	}
	return row
}

// FieldText returns the raw text typed for station.
func (v *stationForm) FieldText(station string) string {
	w := v.widgets[station]
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func (v *stationForm) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
}
