package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/file-converter/internal/convert"
	"github.com/ytget/file-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", ui.AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(ui.AppID)

	// Initialize services
	convertSvc := convert.NewService()

	// Create and setup UI
	myWindow := ui.NewMainWindow(myApp, convertSvc)

	// Show and run
	myWindow.ShowAndRun()
}
