package repository

import (
	"context"
	"database/sql"

	"call_analytics/internal/models"
	"call_analytics/internal/repository/db"
)

// LogRepo is the read-only accessor over the external writer's log table.
type LogRepo interface {
	List(ctx context.Context, f models.Filter) ([]models.LogEvent, error)
	EventTypes(ctx context.Context) ([]string, error)
}

type Repository struct {
	Logs LogRepo
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Logs: NewLogSQLite(database),
	}
}

// OpenStore opens the configured SQLite log store read-only.
func OpenStore(path string) (*sql.DB, error) {
	return db.Open(path)
}
