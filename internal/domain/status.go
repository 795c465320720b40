package domain

import "fmt"

// TaskStatus is the lifecycle of a single task instance.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// UnmarshalText rejects unknown statuses when decoding JSON or YAML.
func (s *TaskStatus) UnmarshalText(b []byte) error {
	v := TaskStatus(b)
	if v == "" {
		v = TaskPending
	}
	if !v.Valid() {
		return fmt.Errorf("invalid task status %q", string(b))
	}
	*s = v
	return nil
}

// StageStatus is derived from the statuses of a stage's tasks.
type StageStatus string

const (
	StagePending   StageStatus = "pending"
	StageActive    StageStatus = "active"
	StageCompleted StageStatus = "completed"
)

func (s StageStatus) Valid() bool {
	switch s {
	case StagePending, StageActive, StageCompleted:
		return true
	}
	return false
}

func (s *StageStatus) UnmarshalText(b []byte) error {
	v := StageStatus(b)
	if v == "" {
		v = StagePending
	}
	if !v.Valid() {
		return fmt.Errorf("invalid stage status %q", string(b))
	}
	*s = v
	return nil
}

func (p Pfad) Valid() bool {
	return p == PfadNABEG || p == PfadEnWG
}

func (p *Pfad) UnmarshalText(b []byte) error {
	v := Pfad(b)
	if !v.Valid() {
		return fmt.Errorf("invalid procedure path %q", string(b))
	}
	*p = v
	return nil
}
