package model

// TaskStatus represents the status of a conversion attempt
type TaskStatus string

const (
	// TaskStatusIdle means nothing has been attempted yet
	TaskStatusIdle TaskStatus = "Idle"

	// TaskStatusConverting means the synchronous conversion body is running
	TaskStatusConverting TaskStatus = "Converting"

	// TaskStatusCompleted means the output file was written
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusSkipped means the source already had the target format
	TaskStatusSkipped TaskStatus = "Skipped"

	// TaskStatusError means the attempt failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true while a conversion is running
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusConverting
}

// IsFinished returns true if the task is in a finished state (completed, skipped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusSkipped || ts == TaskStatusError
}
