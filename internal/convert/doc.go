package convert

// Package convert implements the one-shot image conversion behind the Convert
// button: it checks the source path, guards against converting a file into its
// own format, decodes with github.com/disintegration/imaging and writes the PNG
// or JPEG result next to the source.
