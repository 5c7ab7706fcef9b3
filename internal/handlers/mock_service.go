package handlers

import (
	"context"

	"call_analytics/internal/models"
	"call_analytics/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAnalytics struct {
	report    *models.Report
	page      *models.LogsPage
	reportErr error
	logsErr   error

	lastIn models.FilterInput
}

func (m *mockAnalytics) Report(ctx context.Context, in models.FilterInput) (*models.Report, error) {
	m.lastIn = in
	return m.report, m.reportErr
}

func (m *mockAnalytics) Logs(ctx context.Context, in models.FilterInput) (*models.LogsPage, error) {
	m.lastIn = in
	return m.page, m.logsErr
}

type mockCatalog struct {
	types []string
	err   error
	calls int
}

func (m *mockCatalog) EventTypes(ctx context.Context) ([]string, error) {
	m.calls++
	return m.types, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
