package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyFile             = "file"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyPathPlaceholder  = "path_placeholder"
	KeyImageExtension   = "image_extension"
	KeyConvert          = "convert"
	KeyBrowse           = "browse"
	KeyOpen             = "open"
	KeyReveal           = "reveal"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyRevealOnComplete = "reveal_on_complete"
	KeyConvertedTo      = "converted_to"
	KeyErrorOpeningFile = "error_opening_file"
	KeyInterface        = "interface"
	KeyAfterConversion  = "after_conversion"
)

// DefaultLanguageCode is used when the requested or system language has no translation
const DefaultLanguageCode = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguageCode,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" resolves to the OS locale
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = DefaultLanguageCode
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[DefaultLanguageCode]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage returns the two-letter language of the OS locale
func systemLanguage() string {
	code := strings.ToLower(lang.SystemLocale().LanguageString())
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyFile:             "File",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyPathPlaceholder:  "Path to an image file",
		KeyImageExtension:   "Image Extension",
		KeyConvert:          "Convert",
		KeyBrowse:           "Browse",
		KeyOpen:             "Open",
		KeyReveal:           "Reveal",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyRevealOnComplete: "Reveal converted file in file manager",
		KeyConvertedTo:      "Converted to",
		KeyErrorOpeningFile: "Error opening file",
		KeyInterface:        "Interface",
		KeyAfterConversion:  "After conversion",
	}

	l.texts["ru"] = map[string]string{
		KeyFile:             "Файл",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyPathPlaceholder:  "Путь к изображению",
		KeyImageExtension:   "Формат изображения",
		KeyConvert:          "Конвертировать",
		KeyBrowse:           "Обзор",
		KeyOpen:             "Открыть",
		KeyReveal:           "Показать",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyRevealOnComplete: "Показывать файл в файловом менеджере",
		KeyConvertedTo:      "Сохранено как",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyInterface:        "Интерфейс",
		KeyAfterConversion:  "После конвертации",
	}

	l.texts["pt"] = map[string]string{
		KeyFile:             "Arquivo",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyPathPlaceholder:  "Caminho para um arquivo de imagem",
		KeyImageExtension:   "Extensão da Imagem",
		KeyConvert:          "Converter",
		KeyBrowse:           "Navegar",
		KeyOpen:             "Abrir",
		KeyReveal:           "Mostrar",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyRevealOnComplete: "Mostrar arquivo convertido no gerenciador",
		KeyConvertedTo:      "Convertido para",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyInterface:        "Interface",
		KeyAfterConversion:  "Após a conversão",
	}
}
