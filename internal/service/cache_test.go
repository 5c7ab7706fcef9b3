package service

import (
	"context"
	"testing"
	"time"

	"call_analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_MemoizesIdenticalFilters(t *testing.T) {
	repo := &stubLogRepo{events: []models.LogEvent{event("a", at(1), f64(1.0))}}
	svc := NewAnalyticsService(repo, newRowCache(time.Minute, time.Minute), DefaultFilterOptions())

	in := models.FilterInput{StartDate: day(2026, 8, 1), EndDate: day(2026, 8, 8)}

	first, err := svc.Report(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.Report(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls, "second identical request served from cache")
	assert.Equal(t, first.Summary, second.Summary)
}

func TestReport_DifferentFiltersMiss(t *testing.T) {
	repo := &stubLogRepo{}
	svc := NewAnalyticsService(repo, newRowCache(time.Minute, time.Minute), DefaultFilterOptions())

	_, err := svc.Report(context.Background(), models.FilterInput{EventType: "a"})
	require.NoError(t, err)
	_, err = svc.Report(context.Background(), models.FilterInput{EventType: "b"})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
}

func TestReport_ZeroTTLDisablesCache(t *testing.T) {
	repo := &stubLogRepo{}
	svc := NewAnalyticsService(repo, newRowCache(0, 0), DefaultFilterOptions())

	in := models.FilterInput{StartDate: day(2026, 8, 1), EndDate: day(2026, 8, 8)}
	_, err := svc.Report(context.Background(), in)
	require.NoError(t, err)
	_, err = svc.Report(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
}

func TestReport_ErrorsAreNotCached(t *testing.T) {
	repo := &stubLogRepo{err: assert.AnError}
	svc := NewAnalyticsService(repo, newRowCache(time.Minute, time.Minute), DefaultFilterOptions())

	in := models.FilterInput{}
	_, err := svc.Report(context.Background(), in)
	require.Error(t, err)
	_, err = svc.Report(context.Background(), in)
	require.Error(t, err)

	assert.Equal(t, 2, repo.listCalls, "failures must be retried, not memoized")
}

func TestEventTypes_Memoized(t *testing.T) {
	repo := &stubLogRepo{types: []string{"add", "multiply"}}
	cache := newRowCache(time.Minute, time.Minute)
	svc := NewCatalogService(repo, cache)

	got, err := svc.EventTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"add", "multiply"}, got)

	_, err = svc.EventTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.typeCalls)
}

func TestEventTypes_ErrorPropagates(t *testing.T) {
	repo := &stubLogRepo{err: assert.AnError}
	svc := NewCatalogService(repo, newRowCache(0, 0))

	_, err := svc.EventTypes(context.Background())
	require.Error(t, err)
}
