package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyRevealOnComplete = "reveal_on_complete"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
)

// Settings manages application configuration. Only presentation preferences are
// stored here; the converter form itself is never persisted.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes fall back to the default.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether to reveal converted files in the file manager
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to reveal converted files in the file manager
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
