package convert

import (
	"errors"
	"fmt"

	"github.com/ytget/file-converter/internal/model"
)

// ErrFileNotExist is returned when the form path does not name an existing file
var ErrFileNotExist = errors.New("file does not exist")

// Stage names the step of a conversion that failed
type Stage string

const (
	StageDecode Stage = "decode"
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
)

// ConversionError reports a failed decode, encode or write. The attempt is
// aborted but the application keeps running.
type ConversionError struct {
	Stage  Stage
	Format model.OutputFormat
	Path   string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
