package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"call_analytics/internal/models"
	"call_analytics/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, s *service.Service, url string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandler_ParsesAllParams(t *testing.T) {
	analytics := &mockAnalytics{report: &models.Report{}}
	s := &service.Service{Analytics: analytics}

	w := doGet(t, s, "/api/v1/report?type=multiply&from=2026-08-01&to=2026-08-08&group_hours=4&min_duration=0.5&max_duration=10&limit=200")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	in := analytics.lastIn
	assert.Equal(t, "multiply", in.EventType)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), in.StartDate)
	assert.Equal(t, time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC), in.EndDate)
	assert.Equal(t, 4, in.GroupHours)
	require.NotNil(t, in.MinDuration)
	assert.Equal(t, 0.5, *in.MinDuration)
	require.NotNil(t, in.MaxDuration)
	assert.Equal(t, 10.0, *in.MaxDuration)
	assert.Equal(t, 200, in.Limit)
}

func TestReportHandler_OmittedBoundsStayNil(t *testing.T) {
	analytics := &mockAnalytics{report: &models.Report{}}
	s := &service.Service{Analytics: analytics}

	w := doGet(t, s, "/api/v1/report")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Nil(t, analytics.lastIn.MinDuration)
	assert.Nil(t, analytics.lastIn.MaxDuration)
	assert.Zero(t, analytics.lastIn.Limit)
}

func TestReportHandler_BadParamsRejected(t *testing.T) {
	s := &service.Service{Analytics: &mockAnalytics{report: &models.Report{}}}

	for _, url := range []string{
		"/api/v1/report?from=notadate",
		"/api/v1/report?to=08/2026",
		"/api/v1/report?group_hours=four",
		"/api/v1/report?min_duration=fast",
		"/api/v1/report?limit=many",
	} {
		w := doGet(t, s, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestReportHandler_ServiceErrorIs500(t *testing.T) {
	s := &service.Service{Analytics: &mockAnalytics{reportErr: assert.AnError}}

	w := doGet(t, s, "/api/v1/report")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"], "query failure is reported, never conflated with zero rows")
}

func TestReportHandler_WarningsReachTheOperator(t *testing.T) {
	rep := &models.Report{Warnings: []string{"date range was below the one-day minimum; extended by one day"}}
	s := &service.Service{Analytics: &mockAnalytics{report: rep}}

	w := doGet(t, s, "/api/v1/report?from=2026-08-10&to=2026-08-10")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Warnings, 1)
	assert.Contains(t, body.Warnings[0], "one-day minimum")
}

func TestLogsHandler_ReturnsPage(t *testing.T) {
	now := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	page := &models.LogsPage{
		Count: 2,
		Events: []models.LogEvent{
			{ID: 2, EventType: "add", Timestamp: now},
			{ID: 1, EventType: "add", Timestamp: now.Add(-time.Hour)},
		},
	}
	s := &service.Service{Analytics: &mockAnalytics{page: page}}

	w := doGet(t, s, "/api/v1/logs?type=add")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.LogsPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Events, 2)
	assert.Equal(t, int64(2), body.Events[0].ID)
}

func TestLogsHandler_ServiceErrorIs500(t *testing.T) {
	s := &service.Service{Analytics: &mockAnalytics{logsErr: assert.AnError}}

	w := doGet(t, s, "/api/v1/logs")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEventTypesHandler(t *testing.T) {
	catalog := &mockCatalog{types: []string{"add", "divide", "multiply"}}
	s := &service.Service{Catalog: catalog}

	w := doGet(t, s, "/api/v1/event-types")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count      int      `json:"count"`
		EventTypes []string `json:"event_types"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, []string{"add", "divide", "multiply"}, body.EventTypes)
}

func TestEventTypesHandler_Error(t *testing.T) {
	s := &service.Service{Catalog: &mockCatalog{err: assert.AnError}}

	w := doGet(t, s, "/api/v1/event-types")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	s := &service.Service{}

	w := doGet(t, s, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
