package model

import (
	"fmt"
	"strings"
)

// OutputFormat is the target encoding selected in the form
type OutputFormat int

const (
	FormatPNG OutputFormat = iota
	FormatJPEG
)

// Selector labels and output extensions
const (
	LabelPNG  = "PNG"
	LabelJPEG = "JPEG"

	ExtensionPNG  = "png"
	ExtensionJPG  = "jpg"
	ExtensionJPEG = "jpeg"
)

// OutputFormats returns every format in selector order
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatPNG, FormatJPEG}
}

// String returns the label shown in the format selector
func (f OutputFormat) String() string {
	switch f {
	case FormatPNG:
		return LabelPNG
	case FormatJPEG:
		return LabelJPEG
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// IsValid reports whether f is one of the known variants
func (f OutputFormat) IsValid() bool {
	return f == FormatPNG || f == FormatJPEG
}

// Extension returns the extension (without dot) written for this format
func (f OutputFormat) Extension() string {
	if f == FormatJPEG {
		return ExtensionJPG
	}
	return ExtensionPNG
}

// Matches reports whether a lower-cased source extension already is this format.
// jpg and jpeg are the same format.
func (f OutputFormat) Matches(ext string) bool {
	switch f {
	case FormatPNG:
		return ext == ExtensionPNG
	case FormatJPEG:
		return ext == ExtensionJPG || ext == ExtensionJPEG
	}
	return false
}

// ParseOutputFormat maps a selector label back to its format
func ParseOutputFormat(label string) (OutputFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case LabelPNG:
		return FormatPNG, nil
	case LabelJPEG, "JPG":
		return FormatJPEG, nil
	}
	return FormatPNG, fmt.Errorf("unknown output format: %q", label)
}

// OutputFormatLabels returns selector labels in the same order as OutputFormats
func OutputFormatLabels() []string {
	formats := OutputFormats()
	labels := make([]string, 0, len(formats))
	for _, f := range formats {
		labels = append(labels, f.String())
	}
	return labels
}
