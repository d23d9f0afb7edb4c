// Package audit records tool invocations. The default recorder discards
// entries; pkg/audit/postgres persists them.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome classifies how a tool invocation ended
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeInvalidArgument Outcome = "invalid_argument"
	OutcomeUnknownTool     Outcome = "unknown_tool"
	OutcomeError           Outcome = "error"
)

// Entry is a single tool invocation
type Entry struct {
	ID        uuid.UUID
	Tool      string
	Arguments json.RawMessage
	Outcome   Outcome
	Error     string
	StartedAt time.Time
	Duration  time.Duration
}

// NewEntry starts an entry with a fresh invocation ID
func NewEntry(tool string, args json.RawMessage, startedAt time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Tool:      tool,
		Arguments: args,
		StartedAt: startedAt,
	}
}

// Finish sets the outcome, error text and duration of the entry
func (e *Entry) Finish(outcome Outcome, err error, finishedAt time.Time) {
	e.Outcome = outcome
	if err != nil {
		e.Error = err.Error()
	}
	e.Duration = finishedAt.Sub(e.StartedAt)
}

// Recorder persists invocation entries
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// NopRecorder discards every entry
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) error { return nil }

// LoggingRecorder wraps a Recorder so that failed writes are logged and
// swallowed. Tool calls never fail because of auditing.
type LoggingRecorder struct {
	next   Recorder
	logger *zap.Logger
}

// NewLoggingRecorder wraps next. A nil next behaves like NopRecorder.
func NewLoggingRecorder(next Recorder, logger *zap.Logger) *LoggingRecorder {
	if next == nil {
		next = NopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingRecorder{next: next, logger: logger}
}

func (r *LoggingRecorder) Record(ctx context.Context, entry Entry) error {
	if err := r.next.Record(ctx, entry); err != nil {
		r.logger.Warn("Failed to record tool invocation",
			zap.String("invocation_id", entry.ID.String()),
			zap.String("tool", entry.Tool),
			zap.Error(err))
	}
	return nil
}
