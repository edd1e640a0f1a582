package model

import (
	"testing"
	"time"
)

func TestNewConversionTask(t *testing.T) {
	state := FormState{FilePath: "/tmp/photo.bmp", Ext: FormatJPEG}
	task := NewConversionTask("convert-123", state)

	if task.ID != "convert-123" {
		t.Errorf("Expected ID to be 'convert-123', got '%s'", task.ID)
	}
	if task.InputPath != state.FilePath {
		t.Errorf("Expected InputPath %s, got %s", state.FilePath, task.InputPath)
	}
	if task.Format != FormatJPEG {
		t.Errorf("Expected format JPEG, got %s", task.Format)
	}
	if task.Status != TaskStatusIdle {
		t.Errorf("Expected status Idle, got %s", task.Status)
	}
	if task.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
	if task.Duration() != 0 {
		t.Errorf("Unfinished task should have zero duration, got %v", task.Duration())
	}
}

func TestConversionTask_Finish(t *testing.T) {
	task := NewConversionTask("id", FormState{FilePath: "/tmp/a.png"})
	task.StartedAt = time.Now().Add(-time.Second)
	task.OutputPath = "/tmp/a.jpg"

	task.Finish(TaskStatusCompleted, "")

	if !task.HasOutput() {
		t.Error("Completed task with output path should report HasOutput")
	}
	if task.Duration() < time.Second {
		t.Errorf("Expected duration >= 1s, got %v", task.Duration())
	}

	task.Finish(TaskStatusError, "Conversion failed: boom")
	if task.HasOutput() {
		t.Error("Failed task must not report HasOutput")
	}
	if task.Message != "Conversion failed: boom" {
		t.Errorf("Unexpected message %q", task.Message)
	}
}

func TestConversionTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		output   string
		expected string
	}{
		{"/dir/photo.bmp", "/dir/photo.jpg", "photo.jpg"},
		{"/dir/photo.bmp", "", "photo.bmp"},
		{"", "", ""},
	}

	for _, test := range tests {
		task := &ConversionTask{InputPath: test.input, OutputPath: test.output}
		result := task.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with input=%q output=%q = %q, expected %q",
				test.input, test.output, result, test.expected)
		}
	}
}
