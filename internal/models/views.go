package models

// Derived views computed by the aggregation engine. Each one is a plain
// ordered table keyed by the dimension it summarizes, ready for a chart
// widget to render as-is.

// TypeCount is one bar of the calls-per-type chart.
type TypeCount struct {
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

// HourBucket is one slice of the 24-hour clock. The sequence is always
// dense: 24/GroupHours entries, zero-filled where no events fall.
type HourBucket struct {
	Label     string `json:"label"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"` // exclusive; 24 for the last bucket
	Count     int    `json:"count"`
}

// DurationShare is one type's slice of the total-duration pie.
type DurationShare struct {
	EventType    string  `json:"event_type"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
}

// DurationTotals reports summed durations per type. HasData is false when
// no row in the filtered set carries a duration; Shares is empty then and
// no percentage is ever computed against a zero grand total.
type DurationTotals struct {
	Shares       []DurationShare `json:"shares"`
	TotalSeconds float64         `json:"total_seconds"`
	HasData      bool            `json:"has_data"`
}

// TypeAverage is one type's mean duration in seconds.
type TypeAverage struct {
	EventType      string  `json:"event_type"`
	AverageSeconds float64 `json:"average_seconds"`
}

// ActivityMatrix is the dense weekday-by-hour activity grid. Weekdays are
// language-neutral indices, Monday=0 through Sunday=6; display naming is a
// presentation concern. The shape is fixed at 7x24 regardless of input.
type ActivityMatrix struct {
	Counts [7][24]int `json:"counts"`
}

// DurationSummary is reported only when at least one row has a duration.
type DurationSummary struct {
	MeanSeconds   float64 `json:"mean_seconds"`
	MedianSeconds float64 `json:"median_seconds"`
}

// Summary are the headline numbers above the charts.
type Summary struct {
	TotalEvents   int              `json:"total_events"`
	DistinctTypes int              `json:"distinct_types"`
	Duration      *DurationSummary `json:"duration,omitempty"`
}

// LogsPage is the raw filtered row set plus the filter that produced it.
type LogsPage struct {
	Filter   Filter     `json:"filter"`
	Warnings []string   `json:"warnings,omitempty"`
	Count    int        `json:"count"`
	Events   []LogEvent `json:"events"`
}

// Report bundles the raw rows and every derived view for one filter pass.
type Report struct {
	Filter           Filter         `json:"filter"`
	Warnings         []string       `json:"warnings,omitempty"`
	Events           []LogEvent     `json:"events"`
	TypeCounts       []TypeCount    `json:"type_counts"`
	HourBuckets      []HourBucket   `json:"hour_buckets"`
	DurationTotals   DurationTotals `json:"duration_totals"`
	DurationAverages []TypeAverage  `json:"duration_averages"`
	Activity         ActivityMatrix `json:"activity"`
	Summary          Summary        `json:"summary"`
}
