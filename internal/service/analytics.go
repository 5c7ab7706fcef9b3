package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"call_analytics/internal/models"
	"call_analytics/internal/repository"
)

const hoursPerDay = 24

// AnalyticsService turns a raw filter into the report views. It owns the
// single query pass per request and the TTL memoization of its result; all
// aggregation below works on the already-fetched rows and never re-queries.
type AnalyticsService struct {
	logs  repository.LogRepo
	cache *rowCache
	opts  FilterOptions
}

func NewAnalyticsService(logs repository.LogRepo, cache *rowCache, opts FilterOptions) *AnalyticsService {
	return &AnalyticsService{logs: logs, cache: cache, opts: opts}
}

// Report validates the input, fetches the matching rows and computes every
// derived view in one synchronous pass.
func (s *AnalyticsService) Report(ctx context.Context, in models.FilterInput) (*models.Report, error) {
	f, warnings := ValidateFilter(in, s.opts)
	events, err := s.loadEvents(ctx, f)
	if err != nil {
		return nil, err
	}
	return BuildReport(f, warnings, events), nil
}

// Logs returns just the raw filtered row set, without the derived views.
func (s *AnalyticsService) Logs(ctx context.Context, in models.FilterInput) (*models.LogsPage, error) {
	f, warnings := ValidateFilter(in, s.opts)
	events, err := s.loadEvents(ctx, f)
	if err != nil {
		return nil, err
	}
	return &models.LogsPage{
		Filter:   f,
		Warnings: warnings,
		Count:    len(events),
		Events:   events,
	}, nil
}

func (s *AnalyticsService) loadEvents(ctx context.Context, f models.Filter) ([]models.LogEvent, error) {
	key := f.CacheKey()
	if events, ok := s.cache.getRows(key); ok {
		return events, nil
	}
	events, err := s.logs.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	s.cache.putRows(key, events)
	return events, nil
}

// BuildReport computes all derived views over one raw row set. An empty row
// set yields the defined "no data" shape of every view, never an error.
func BuildReport(f models.Filter, warnings []string, events []models.LogEvent) *models.Report {
	return &models.Report{
		Filter:           f,
		Warnings:         warnings,
		Events:           events,
		TypeCounts:       CountByType(events),
		HourBuckets:      BucketByHour(events, f.GroupHours),
		DurationTotals:   SumDurationByType(events),
		DurationAverages: AverageDurationByType(events),
		Activity:         ActivityByWeekdayHour(events),
		Summary:          Summarize(events),
	}
}

// CountByType counts rows per event type, ordered ascending by count so a
// horizontal bar chart stacks the largest bars consistently. Ties break on
// type name for a deterministic order.
func CountByType(events []models.LogEvent) []models.TypeCount {
	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.EventType]++
	}
	out := make([]models.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, models.TypeCount{EventType: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count < out[j].Count
		}
		return out[i].EventType < out[j].EventType
	})
	return out
}

// BucketByHour profiles activity over the 24-hour clock: every row lands in
// the bucket its hour-of-day falls into, regardless of calendar date. The
// result is always dense with 24/groupHours entries.
func BucketByHour(events []models.LogEvent, groupHours int) []models.HourBucket {
	if groupHours <= 0 || hoursPerDay%groupHours != 0 {
		groupHours = hoursPerDay
	}
	n := hoursPerDay / groupHours
	out := make([]models.HourBucket, n)
	for i := range out {
		start := i * groupHours
		end := start + groupHours
		label := fmt.Sprintf("%02d:00–%02d:00", start, end)
		if groupHours == hoursPerDay {
			label = "all day"
		}
		out[i] = models.HourBucket{Label: label, StartHour: start, EndHour: end}
	}
	for _, ev := range events {
		out[ev.Timestamp.Hour()/groupHours].Count++
	}
	return out
}

// SumDurationByType sums durations per type over rows that have one,
// ordered descending by total. Percentages are shares of the grand total;
// when no row carries a duration the view reports HasData=false instead of
// dividing by zero.
func SumDurationByType(events []models.LogEvent) models.DurationTotals {
	totals := make(map[string]float64)
	var grand float64
	for _, ev := range events {
		if ev.Duration == nil {
			continue
		}
		totals[ev.EventType] += *ev.Duration
		grand += *ev.Duration
	}
	if len(totals) == 0 || grand == 0 {
		return models.DurationTotals{}
	}
	shares := make([]models.DurationShare, 0, len(totals))
	for t, sum := range totals {
		shares = append(shares, models.DurationShare{
			EventType:    t,
			TotalSeconds: sum,
			Percent:      sum / grand * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].TotalSeconds != shares[j].TotalSeconds {
			return shares[i].TotalSeconds > shares[j].TotalSeconds
		}
		return shares[i].EventType < shares[j].EventType
	})
	return models.DurationTotals{Shares: shares, TotalSeconds: grand, HasData: true}
}

// AverageDurationByType reports the mean duration per type over rows that
// have one, ordered descending by mean.
func AverageDurationByType(events []models.LogEvent) []models.TypeAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, ev := range events {
		if ev.Duration == nil {
			continue
		}
		sums[ev.EventType] += *ev.Duration
		counts[ev.EventType]++
	}
	out := make([]models.TypeAverage, 0, len(sums))
	for t, sum := range sums {
		out = append(out, models.TypeAverage{EventType: t, AverageSeconds: sum / float64(counts[t])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageSeconds != out[j].AverageSeconds {
			return out[i].AverageSeconds > out[j].AverageSeconds
		}
		return out[i].EventType < out[j].EventType
	})
	return out
}

// ActivityByWeekdayHour fills the fixed 7x24 weekday-by-hour grid. Weekday
// indices are Monday=0 through Sunday=6, independent of any locale.
func ActivityByWeekdayHour(events []models.LogEvent) models.ActivityMatrix {
	var m models.ActivityMatrix
	for _, ev := range events {
		wd := mondayIndexed(ev.Timestamp.Weekday())
		m.Counts[wd][ev.Timestamp.Hour()]++
	}
	return m
}

// Summarize computes the headline numbers. Duration statistics are omitted
// entirely when no row carries a duration.
func Summarize(events []models.LogEvent) models.Summary {
	types := make(map[string]struct{})
	durations := make([]float64, 0, len(events))
	for _, ev := range events {
		types[ev.EventType] = struct{}{}
		if ev.Duration != nil {
			durations = append(durations, *ev.Duration)
		}
	}
	out := models.Summary{
		TotalEvents:   len(events),
		DistinctTypes: len(types),
	}
	if len(durations) > 0 {
		out.Duration = &models.DurationSummary{
			MeanSeconds:   mean(durations),
			MedianSeconds: median(durations),
		}
	}
	return out
}

// mondayIndexed maps time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median sorts a copy so callers' slices are never reordered.
func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
