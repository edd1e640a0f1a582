package ui

import (
	"testing"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	english := l.texts[DefaultLanguageCode]
	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s is listed but has no texts", code)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"en", "en"},
		{"ru", "ru"},
		{"pt", "pt"},
		{"xx", DefaultLanguageCode},
		{"", DefaultLanguageCode},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.code)
			if got := l.GetCurrentLanguage(); got != tt.expected {
				t.Errorf("SetLanguage(%q) -> %q, expected %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestLocalization_SystemResolvesToKnownLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language resolved to unknown code %q", l.GetCurrentLanguage())
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText(KeyConvert); got != "Converter" {
		t.Errorf("Expected Portuguese text, got %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Unknown key should return itself, got %q", got)
	}
}
