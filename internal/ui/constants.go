package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Application identity
const (
	AppID   = "com.ytget.file-converter"
	AppName = "File Converter"
)

// Window sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 220
	LogoSize     float32 = 32
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 220
)

// Text fragments
const (
	StatusSeparator = ": "
)
