package model

// Package model defines the data the converter form works on: the output format
// enum, the form state bound to the widgets, and the record of a single
// conversion attempt. Structures are designed for direct binding in the UI.
