// Package postgres stores audit entries in PostgreSQL using pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/natserract/mailchimp-mcp/pkg/audit"
	"go.uber.org/zap"
)

const insertInvocation = `
INSERT INTO tool_invocations (id, tool, arguments, outcome, error, started_at, duration_ms)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// execer is the subset of pgxpool.Pool used by Recorder
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Recorder inserts audit entries into tool_invocations
type Recorder struct {
	db     execer
	logger *zap.Logger
}

// NewRecorder creates a recorder backed by db
func NewRecorder(db *DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db.Pool(), logger: logger}
}

// invocationParams converts an entry into insert arguments
func invocationParams(entry audit.Entry) []any {
	var args any
	if len(entry.Arguments) > 0 && json.Valid(entry.Arguments) {
		args = entry.Arguments
	}
	errText := pgtype.Text{String: entry.Error, Valid: entry.Error != ""}
	startedAt := pgtype.Timestamptz{Time: entry.StartedAt, Valid: !entry.StartedAt.IsZero()}

	return []any{
		pgtype.UUID{Bytes: entry.ID, Valid: true},
		entry.Tool,
		args,
		string(entry.Outcome),
		errText,
		startedAt,
		entry.Duration.Milliseconds(),
	}
}

func (r *Recorder) Record(ctx context.Context, entry audit.Entry) error {
	if _, err := r.db.Exec(ctx, insertInvocation, invocationParams(entry)...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fmt.Errorf("failed to insert invocation %s (sqlstate %s): %w", entry.ID, pgErr.Code, err)
		}
		return fmt.Errorf("failed to insert invocation %s: %w", entry.ID, err)
	}

	r.logger.Debug("Recorded tool invocation",
		zap.String("invocation_id", entry.ID.String()),
		zap.String("tool", entry.Tool),
		zap.String("outcome", string(entry.Outcome)))
	return nil
}
