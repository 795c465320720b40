package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	ProjectCreated = "project.created"
	TaskCompleted  = "task.completed"
	TaskSaved      = "task.saved"
	TaskReopened   = "task.reopened"
	EmailAction    = "email.action"
)

type Payload map[string]any

type Event struct {
	Type       string
	ProjectID  string
	EntityKind string
	EntityID   string
	Payload    Payload
}

// Recorder appends activity events.
type Recorder interface {
	Record(ctx context.Context, e Event) error
}

// Writer appends events to the workspace events table.
type Writer struct {
	DB  *sql.DB
	Now func() time.Time
}

func (w Writer) Record(ctx context.Context, e Event) error {
	if w.Now == nil {
		w.Now = time.Now
	}
	ts := w.Now().UTC().Format(time.RFC3339)
	if e.Payload == nil {
		e.Payload = Payload{}
	}
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	_, err = w.DB.ExecContext(ctx, `INSERT INTO events(ts,type,project_id,entity_kind,entity_id,payload_json) VALUES (?,?,?,?,?,?)`,
		ts, e.Type, nullable(e.ProjectID), e.EntityKind, nullable(e.EntityID), string(data))
	return err
}

// Logger writes events as structured log lines.
type Logger struct {
	Log *zap.Logger
}

func (l Logger) Record(ctx context.Context, e Event) error {
	if l.Log == nil {
		return nil
	}
	l.Log.Info("event",
		zap.String("type", e.Type),
		zap.String("project_id", e.ProjectID),
		zap.String("entity_kind", e.EntityKind),
		zap.String("entity_id", e.EntityID),
		zap.Any("payload", map[string]any(e.Payload)),
	)
	return nil
}

// Multi fans an event out to every recorder and joins their errors.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, e Event) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
