package service

import (
	"context"
	"time"

	"call_analytics/internal/models"
	"call_analytics/internal/repository"
)

// Analytics is the single filter-to-views pass behind the dashboard.
type Analytics interface {
	Report(ctx context.Context, in models.FilterInput) (*models.Report, error)
	Logs(ctx context.Context, in models.FilterInput) (*models.LogsPage, error)
}

// Catalog exposes the distinct-event-type listing that feeds the operator's
// type-filter choices.
type Catalog interface {
	EventTypes(ctx context.Context) ([]string, error)
}

// Options carries the tunables the reference hard-coded: memoization TTLs
// and the filter validation edges.
type Options struct {
	RowsTTL  time.Duration
	TypesTTL time.Duration
	Filters  FilterOptions
}

func DefaultOptions() Options {
	return Options{
		RowsTTL:  60 * time.Second,
		TypesTTL: 300 * time.Second,
		Filters:  DefaultFilterOptions(),
	}
}

// Service aggregates all sub-services.
type Service struct {
	Analytics
	Catalog
}

// NewService wires the repository layer into concrete services. The row and
// type caches are shared so one staleness policy covers the whole request
// path.
func NewService(repos *repository.Repository, opts Options) *Service {
	cache := newRowCache(opts.RowsTTL, opts.TypesTTL)
	return &Service{
		Analytics: NewAnalyticsService(repos.Logs, cache, opts.Filters),
		Catalog:   NewCatalogService(repos.Logs, cache),
	}
}
