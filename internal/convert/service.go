package convert

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/ytget/file-converter/internal/model"
	"github.com/ytget/file-converter/internal/platform"
)

// Console status lines
const (
	MsgFileNotExist         = "File does not exist"
	MsgAlreadyPNG           = "Already a PNG file!"
	MsgAlreadyJPEG          = "Already a JPEG file!"
	MsgConversionFailed     = "Conversion failed: %v"
	MsgJPEGConversionFailed = "Conversion to JPEG failed: %v"
)

// Encoder settings
const (
	// JPEGQuality is the encoder default; no quality control is exposed
	JPEGQuality = 75

	OutputFileMode    os.FileMode = 0o644
	TempFilePattern               = ".convert-*.tmp"
	TaskIDPrefix                  = "convert-"
	ExtensionSeparator            = "."
)

// InputExtensions lists the extensions of every decoder registered for input
var InputExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Service performs conversions synchronously on the caller's goroutine
type Service struct {
	console  io.Writer                   // receives user-facing status lines
	onUpdate func(*model.ConversionTask) // callback for UI updates
}

// NewService creates a conversion service that reports to stderr
func NewService() *Service {
	return &Service{
		console: os.Stderr,
	}
}

// SetConsole redirects the status lines
func (s *Service) SetConsole(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.console = w
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ConversionTask)) {
	s.onUpdate = callback
}

// Convert attempts exactly one conversion of the file named by state.
// It returns the task record in every case. The returned error is nil for a
// successful conversion and for a file that already has the target format.
func (s *Service) Convert(state model.FormState) (*model.ConversionTask, error) {
	task := model.NewConversionTask(generateTaskID(), state)
	task.Status = model.TaskStatusConverting
	s.notifyUpdate(task)

	if _, err := platform.StatRegularFile(state.FilePath); err != nil {
		log.Printf("Rejected source %q: %v", state.FilePath, err)
		task.LastError = err.Error()
		s.finish(task, model.TaskStatusError, MsgFileNotExist)
		return task, ErrFileNotExist
	}

	if state.Ext.Matches(SourceExtension(state.FilePath)) {
		s.finish(task, model.TaskStatusSkipped, alreadyMessage(state.Ext))
		return task, nil
	}

	img, err := imaging.Open(state.FilePath)
	if err != nil {
		return task, s.fail(task, &ConversionError{Stage: StageDecode, Format: state.Ext, Path: state.FilePath, Err: err})
	}

	task.OutputPath = OutputPath(state.FilePath, state.Ext)

	var buf bytes.Buffer
	if err := Encode(&buf, img, state.Ext); err != nil {
		return task, s.fail(task, &ConversionError{Stage: StageEncode, Format: state.Ext, Path: task.OutputPath, Err: err})
	}

	if err := writeFileAtomic(task.OutputPath, buf.Bytes()); err != nil {
		return task, s.fail(task, &ConversionError{Stage: StageWrite, Format: state.Ext, Path: task.OutputPath, Err: err})
	}

	s.finish(task, model.TaskStatusCompleted, "")
	bounds := img.Bounds()
	log.Printf("Converted %s -> %s (%dx%d, %s)", task.InputPath, task.OutputPath,
		bounds.Dx(), bounds.Dy(), task.Duration().Round(time.Millisecond))
	return task, nil
}

// Encode writes img in the given format. JPEG output is flattened to opaque RGB
// first; PNG output keeps the decoded color model, alpha included.
func Encode(w io.Writer, img image.Image, format model.OutputFormat) error {
	switch format {
	case model.FormatPNG:
		return imaging.Encode(w, img, imaging.PNG)
	case model.FormatJPEG:
		return imaging.Encode(w, FlattenRGB(img), imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FlattenRGB drops the alpha channel, keeping the straight (non-premultiplied)
// color values of every pixel.
func FlattenRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// SourceExtension returns the lower-cased extension of path without the dot.
// A dot-file such as ".profile" has no extension.
func SourceExtension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, ExtensionSeparator))
}

// OutputPath keeps the directory and stem of inputPath and replaces the
// extension with the one for format
func OutputPath(inputPath string, format model.OutputFormat) string {
	dir, base := filepath.Split(inputPath)
	stem := base
	if ext := filepath.Ext(base); ext != base {
		stem = strings.TrimSuffix(base, ext)
	}
	return dir + stem + ExtensionSeparator + format.Extension()
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path, so a failed write never leaves a partial output behind.
// A symlink at path is written through, and an existing file keeps its mode.
func writeFileAtomic(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := OutputFileMode
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// fail records a conversion error on the task and prints the failure line
func (s *Service) fail(task *model.ConversionTask, err *ConversionError) error {
	log.Printf("Conversion of %s failed at %s: %v", task.InputPath, err.Stage, err.Err)
	task.LastError = err.Error()
	s.finish(task, model.TaskStatusError, failureMessage(err.Format, err))
	return err
}

// finish sets the final status, prints the message if any and notifies the UI
func (s *Service) finish(task *model.ConversionTask, status model.TaskStatus, message string) {
	task.Finish(status, message)
	if message != "" {
		fmt.Fprintln(s.console, message)
	}
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ConversionTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

func alreadyMessage(format model.OutputFormat) string {
	if format == model.FormatJPEG {
		return MsgAlreadyJPEG
	}
	return MsgAlreadyPNG
}

func failureMessage(format model.OutputFormat, err error) string {
	if format == model.FormatJPEG {
		return fmt.Sprintf(MsgJPEGConversionFailed, err)
	}
	return fmt.Sprintf(MsgConversionFailed, err)
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
