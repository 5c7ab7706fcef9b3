package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"call_analytics/internal/models"
)

const (
	rowCacheSize  = 128
	typeCacheSize = 1

	typeCacheKey = "event_types"
)

// rowCache memoizes query results for repeated identical filters. Entries
// expire purely by elapsed time; the store is append-only and has no write
// notifications, so a bounded staleness window is the only safe policy.
// A zero or negative TTL disables the corresponding cache.
type rowCache struct {
	rows  *expirable.LRU[string, []models.LogEvent]
	types *expirable.LRU[string, []string]
}

func newRowCache(rowsTTL, typesTTL time.Duration) *rowCache {
	c := &rowCache{}
	if rowsTTL > 0 {
		c.rows = expirable.NewLRU[string, []models.LogEvent](rowCacheSize, nil, rowsTTL)
	}
	if typesTTL > 0 {
		c.types = expirable.NewLRU[string, []string](typeCacheSize, nil, typesTTL)
	}
	return c
}

func (c *rowCache) getRows(key string) ([]models.LogEvent, bool) {
	if c == nil || c.rows == nil {
		return nil, false
	}
	return c.rows.Get(key)
}

func (c *rowCache) putRows(key string, events []models.LogEvent) {
	if c == nil || c.rows == nil {
		return
	}
	c.rows.Add(key, events)
}

func (c *rowCache) getTypes() ([]string, bool) {
	if c == nil || c.types == nil {
		return nil, false
	}
	return c.types.Get(typeCacheKey)
}

func (c *rowCache) putTypes(types []string) {
	if c == nil || c.types == nil {
		return
	}
	c.types.Add(typeCacheKey, types)
}
