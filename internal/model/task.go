package model

import (
	"path/filepath"
	"time"
)

// ConversionTask records a single conversion attempt
type ConversionTask struct {
	ID         string
	InputPath  string
	OutputPath string // empty until the output path is derived
	Format     OutputFormat
	Status     TaskStatus
	Message    string // status line printed to the console
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewConversionTask creates a task for the given form state
func NewConversionTask(id string, state FormState) *ConversionTask {
	return &ConversionTask{
		ID:        id,
		InputPath: state.FilePath,
		Format:    state.Ext,
		Status:    TaskStatusIdle,
		StartedAt: time.Now(),
	}
}

// Finish moves the task into a final status with its console message
func (ct *ConversionTask) Finish(status TaskStatus, message string) {
	ct.Status = status
	ct.Message = message
	ct.FinishedAt = time.Now()
}

// HasOutput reports whether the task produced an output file
func (ct *ConversionTask) HasOutput() bool {
	return ct.Status == TaskStatusCompleted && ct.OutputPath != ""
}

// Duration returns how long the attempt took, zero while unfinished
func (ct *ConversionTask) Duration() time.Duration {
	if ct.FinishedAt.IsZero() {
		return 0
	}
	return ct.FinishedAt.Sub(ct.StartedAt)
}

// GetDisplayName returns the output file name, or the input file name, or ""
func (ct *ConversionTask) GetDisplayName() string {
	if ct.OutputPath != "" {
		return filepath.Base(ct.OutputPath)
	}
	if ct.InputPath != "" {
		return filepath.Base(ct.InputPath)
	}
	return ""
}
