package model

// FormState holds the two user-editable fields of the converter form.
// It is owned by the UI and mutated in place on every edit.
type FormState struct {
	FilePath string
	Ext      OutputFormat
}

// NewFormState returns the startup state: empty path, PNG target
func NewFormState() *FormState {
	return &FormState{
		FilePath: "",
		Ext:      FormatPNG,
	}
}

// SetFilePath stores the raw entry text; it is not validated here
func (fs *FormState) SetFilePath(path string) {
	fs.FilePath = path
}

// SetFormat overwrites the selected format. Unknown values are ignored so Ext
// always stays one of the enumerated variants.
func (fs *FormState) SetFormat(f OutputFormat) {
	if !f.IsValid() {
		return
	}
	fs.Ext = f
}
