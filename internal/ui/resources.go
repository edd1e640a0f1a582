package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "file-converter.png"
)

//go:embed assets/file-converter.png
var appIconPNG []byte

// AppIconResource is the application and window icon, embedded at build time
var AppIconResource fyne.Resource = fyne.NewStaticResource(AppIcon, appIconPNG)
