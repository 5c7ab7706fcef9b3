package service

import (
	"context"
	"fmt"

	"call_analytics/internal/repository"
)

// CatalogService serves the distinct-event-type listing. The vocabulary is
// writer-defined and changes rarely, so it gets the longer cache TTL.
type CatalogService struct {
	logs  repository.LogRepo
	cache *rowCache
}

func NewCatalogService(logs repository.LogRepo, cache *rowCache) *CatalogService {
	return &CatalogService{logs: logs, cache: cache}
}

func (s *CatalogService) EventTypes(ctx context.Context) ([]string, error) {
	if types, ok := s.cache.getTypes(); ok {
		return types, nil
	}
	types, err := s.logs.EventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load event types: %w", err)
	}
	s.cache.putTypes(types)
	return types, nil
}
