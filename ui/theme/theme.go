package theme

// Palette and ttk styles for the map generator window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg      = "#f7f9fb" // app background
	ColorPrimary = "#2563eb" // submit button
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
)

// InitStyles activates the base theme and configures semantic styles. It
// must run on the Tk thread before any widget is created.
func InitStyles() {
	_ = ActivateTheme("azure light")
	App.Configure(Background(ColorBg))
	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
}
