package models

import "time"

// LogEvent is one row of the append-only log store. The store is written by
// an external service; this application only reads it.
type LogEvent struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	// Duration is the call duration in seconds. Nil when the writer recorded
	// a start without a completion.
	Duration *float64 `json:"duration,omitempty"`
}
