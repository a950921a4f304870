package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/n1tr0xs/fire-danger-map/domain/registry"
	"github.com/n1tr0xs/fire-danger-map/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// maxDetail bounds the stack trace shown in the error dialog.
const maxDetail = 1500

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	reg           *registry.Registry
	template      image.Image
	previewHeight int
	fontSize      int
	logger        *slog.Logger

	// Subviews
	Form    StationForm
	Preview MapPreview
	Stats   RunStats

	// Widgets
	SubmitBtn   *TButtonWidget
	RevealBtn   *TButtonWidget
	StatusLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	FieldText(station string) string
	SetSubmitEnabled(enabled bool)
	SetRevealEnabled(enabled bool)
	ShowPreview(img image.Image)
	ResetPreview()
	SetStatus(text string)
	ShowError(title, msg, detail string)
	SetTiming(run, total time.Duration, runs int)
}

var _ UI = (*RootView)(nil)

// NewRootView creates the view for reg. template is the base map shown in
// the preview before the first run.
func NewRootView(reg *registry.Registry, template image.Image, previewHeight, fontSize int, logger *slog.Logger) *RootView {
	return &RootView{reg: reg, template: template, previewHeight: previewHeight, fontSize: fontSize, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onSubmit, onReveal func()) {
	if rv == nil {
		return
	}
	uiFont := Font("Helvetica", rv.fontSize)

	rv.Form = NewStationForm(rv.reg, uiFont)
	formEnd := rv.Form.Build(0)

	Grid(Label(Txt("Предпросмотр"), uiFont, Anchor("w")), Row(0), Column(3), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	span := formEnd - 2
	if span < 1 {
		span = 1
	}
	rv.Preview = NewMapPreview(2, 3, span, rv.previewHeight, rv.template)

	row := formEnd
	if rv.reg.Len() == 0 {
		Grid(Label(Txt("Нет станций: проверьте station_regions.txt"), uiFont), Row(row), Column(0), Columnspan(3), Sticky("w"), Padx("0.4m"))
		row++
	}
	row = NewLegend(row, 0, uiFont)

	btnFrame := Frame()
	Grid(btnFrame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.SubmitBtn = TButton(Txt("Сгенерировать картинку"), Style(theme.StylePrimaryButton), Command(onSubmit))
	Grid(rv.SubmitBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.RevealBtn = TButton(Txt("Перейти к картинке"), Command(onReveal), State("disabled"))
	Grid(rv.RevealBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	row++

	rv.StatusLabel = Label(Txt("Готово"), Anchor("w"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	statsFrame := Frame()
	Grid(statsFrame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"))
	rv.Stats = NewRunStats(statsFrame, 0, 0)

	GridColumnConfigure(App, 2, Weight(1))
}

// FieldText returns the raw value typed for station.
func (rv *RootView) FieldText(station string) string {
	if rv == nil || rv.Form == nil {
		return ""
	}
	return rv.Form.FieldText(station)
}

// SetSubmitEnabled toggles the submit button and the input fields together.
func (rv *RootView) SetSubmitEnabled(enabled bool) {
	if rv == nil {
		return
	}
	setEnabled(rv.SubmitBtn, enabled)
	if rv.Form != nil {
		rv.Form.SetEditable(enabled)
	}
}

// SetRevealEnabled toggles the show-in-file-browser button.
func (rv *RootView) SetRevealEnabled(enabled bool) {
	if rv != nil {
		setEnabled(rv.RevealBtn, enabled)
	}
}

// ShowPreview proxies to the map preview.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Update(img)
	}
}

// ResetPreview shows the base map again.
func (rv *RootView) ResetPreview() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// ShowError opens a modal error dialog.
func (rv *RootView) ShowError(title, msg, detail string) {
	if rv == nil {
		return
	}
	if len(detail) > maxDetail {
		detail = "..." + detail[len(detail)-maxDetail:]
	}
	MessageBox(Icon("error"), Title(title), Msg(msg), Detail(detail))
}

// SetTiming proxies to the run stats labels.
func (rv *RootView) SetTiming(run, total time.Duration, runs int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetTiming(run, total, runs)
	}
}

func setEnabled(b *TButtonWidget, enabled bool) {
	if b == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	b.Configure(State(state))
}
