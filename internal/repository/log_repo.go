package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"call_analytics/internal/models"
)

// timeLayout matches the writer's TIMESTAMP format in the logs table.
const timeLayout = "2006-01-02 15:04:05"

type LogSQLite struct {
	db *sql.DB
}

func NewLogSQLite(db *sql.DB) *LogSQLite { return &LogSQLite{db: db} }

// List runs the single filtered read of the log table. All values travel as
// bound parameters; nothing from the filter is ever spliced into the SQL
// text. The LIMIT applies after the descending order, so the result is the
// most recent Limit rows matching the predicate.
func (r *LogSQLite) List(ctx context.Context, f models.Filter) ([]models.LogEvent, error) {
	conds := []string{"timestamp >= ?", "timestamp <= ?"}
	args := []any{f.Start.Format(timeLayout), f.End.Format(timeLayout)}

	if f.EventType != "" {
		conds = append(conds, "event_type = ?")
		args = append(args, f.EventType)
	}
	// A duration bound also excludes rows where the writer never recorded
	// a completion (NULL duration).
	if f.MinDuration != nil {
		conds = append(conds, "(duration IS NOT NULL AND duration >= ?)")
		args = append(args, *f.MinDuration)
	}
	if f.MaxDuration != nil {
		conds = append(conds, "(duration IS NOT NULL AND duration <= ?)")
		args = append(args, *f.MaxDuration)
	}

	q := `SELECT id, event_type, timestamp, duration FROM logs WHERE ` +
		strings.Join(conds, " AND ") +
		` ORDER BY timestamp DESC LIMIT ?`
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	out := make([]models.LogEvent, 0, 64)
	for rows.Next() {
		var (
			ev  models.LogEvent
			ts  string
			dur sql.NullFloat64
		)
		if err := rows.Scan(&ev.ID, &ev.EventType, &ts, &dur); err != nil {
			return nil, fmt.Errorf("scan log row: %w", err)
		}
		ev.Timestamp, err = time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		if dur.Valid {
			d := dur.Float64
			ev.Duration = &d
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}
	return out, nil
}

// EventTypes lists the distinct event types present in the store. Used only
// to populate the operator's type-filter choices.
func (r *LogSQLite) EventTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT event_type FROM logs ORDER BY event_type`)
	if err != nil {
		return nil, fmt.Errorf("query event types: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0, 16)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan event type: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event types: %w", err)
	}
	return out, nil
}
