package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/file-converter/internal/convert"
)

// NewMainWindow applies the app icon and theme, then builds the centered
// converter window around converter. Both process entries start here.
func NewMainWindow(app fyne.App, converter convert.Converter) fyne.Window {
	app.SetIcon(AppIconResource)
	app.Settings().SetTheme(NewConverterTheme())

	window := app.NewWindow(AppName)
	window.SetIcon(AppIconResource)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	NewRootUI(window, app, converter)
	return window
}
