package service

import (
	"fmt"
	"strings"
	"time"

	"call_analytics/internal/models"
)

// FilterOptions are the tunable edges of filter validation. DurationCeiling
// is the input widget's nominal maximum; a supplied upper bound equal to it
// (or above) means "unbounded above". That is a UI convention inherited
// from the dashboard's duration field, not a property of the data.
type FilterOptions struct {
	DurationCeiling float64
	DefaultLimit    int
	MaxLimit        int
	DefaultDays     int // width of the default window when no start date is given
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		DurationCeiling: 100,
		DefaultLimit:    100,
		MaxLimit:        1000,
		DefaultDays:     7,
	}
}

// ValidateFilter turns raw operator input into a valid Filter. Invalid
// ranges are never an error: they are corrected deterministically and each
// correction is reported as a warning for the operator to see.
func ValidateFilter(in models.FilterInput, opts FilterOptions) (models.Filter, []string) {
	var warnings []string

	now := time.Now()
	end := in.EndDate
	if end.IsZero() {
		end = now
	}
	start := in.StartDate
	if start.IsZero() {
		start = end.AddDate(0, 0, -opts.DefaultDays)
	}

	// Work at date granularity; the input boundary collects dates, not times.
	start = startOfDay(start)
	end = startOfDay(end)

	if end.Before(start) {
		end = start
		warnings = append(warnings, "end date was before start date; clamped to start date")
	}
	if end.Sub(start) < 24*time.Hour {
		end = start.AddDate(0, 0, 1)
		warnings = append(warnings, "date range was below the one-day minimum; extended by one day")
	}

	group := in.GroupHours
	switch group {
	case 1, 4, 24:
	case 0:
		group = 4
	default:
		warnings = append(warnings, fmt.Sprintf("grouping of %dh is not supported; using 4h", group))
		group = 4
	}

	minDur := normalizeLowerBound(in.MinDuration, &warnings)
	maxDur := normalizeUpperBound(in.MaxDuration, opts.DurationCeiling, &warnings)

	limit := in.Limit
	switch {
	case limit <= 0:
		limit = opts.DefaultLimit
	case limit > opts.MaxLimit:
		warnings = append(warnings, fmt.Sprintf("row limit capped at %d", opts.MaxLimit))
		limit = opts.MaxLimit
	}

	return models.Filter{
		EventType:   strings.TrimSpace(in.EventType),
		Start:       start,
		End:         endOfDay(end),
		GroupHours:  group,
		MinDuration: minDur,
		MaxDuration: maxDur,
		Limit:       limit,
	}, warnings
}

// normalizeLowerBound maps the zero sentinel (and nonsense negatives) to
// "no lower bound".
func normalizeLowerBound(v *float64, warnings *[]string) *float64 {
	if v == nil {
		return nil
	}
	if *v < 0 {
		*warnings = append(*warnings, "negative minimum duration ignored")
		return nil
	}
	if *v == 0 {
		return nil
	}
	d := *v
	return &d
}

// normalizeUpperBound maps values at or above the widget ceiling to "no
// upper bound". Rows whose duration truly equals the ceiling are therefore
// included when the operator asks for unbounded-above.
func normalizeUpperBound(v *float64, ceiling float64, warnings *[]string) *float64 {
	if v == nil {
		return nil
	}
	if *v < 0 {
		*warnings = append(*warnings, "negative maximum duration ignored")
		return nil
	}
	if *v >= ceiling {
		return nil
	}
	d := *v
	return &d
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable second of t's day; the store
// keeps timestamps at second resolution.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
