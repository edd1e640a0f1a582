package ui

// Package ui contains the Fyne-based desktop user interface for the converter.
// A single form state record drives the path entry and the format selector;
// the Convert button hands that record to the conversion service. All UI
// strings are localized via Localization; console status lines are not.
