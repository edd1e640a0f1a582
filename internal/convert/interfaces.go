package convert

import (
	"github.com/ytget/file-converter/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(*model.ConversionTask))
	Convert(state model.FormState) (*model.ConversionTask, error)
}

var _ Converter = (*Service)(nil)
