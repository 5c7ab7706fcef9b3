package models

import (
	"fmt"
	"time"
)

// FilterInput is the raw operator intent as it arrives from the input
// boundary. Nothing here is trusted: validation turns it into a Filter,
// silently correcting out-of-range values.
type FilterInput struct {
	EventType  string    // "" means all types
	StartDate  time.Time // date granularity; zero means default window
	EndDate    time.Time // date granularity; zero means today
	GroupHours int       // requested bucket width; 0 means default
	// Duration bounds in seconds. Nil means the operator supplied nothing.
	// A zero lower bound and a ceiling-valued upper bound are UI sentinels
	// for "unbounded" and map to nil during validation.
	MinDuration *float64
	MaxDuration *float64
	Limit       int // 0 means default
}

// Filter is the validated, immutable query specification. Every field is
// already normalized: the time range is inclusive and spans at least one
// day, GroupHours is one of 1, 4, 24, and duration bounds are present only
// when they actually constrain the query.
type Filter struct {
	EventType   string    `json:"event_type,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	GroupHours  int       `json:"group_hours"`
	MinDuration *float64  `json:"min_duration,omitempty"`
	MaxDuration *float64  `json:"max_duration,omitempty"`
	Limit       int       `json:"limit"`
}

// CacheKey identifies the filter for memoization. Two filters with the same
// key must produce the same raw row set within the cache TTL.
func (f Filter) CacheKey() string {
	min, max := -1.0, -1.0
	if f.MinDuration != nil {
		min = *f.MinDuration
	}
	if f.MaxDuration != nil {
		max = *f.MaxDuration
	}
	return fmt.Sprintf("%s|%d|%d|%d|%g|%g|%d",
		f.EventType, f.Start.Unix(), f.End.Unix(), f.GroupHours, min, max, f.Limit)
}
