package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"call_analytics/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid  = "invalid 'from' date; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' date; use RFC3339 or YYYY-MM-DD"
	errGroupInvalid = "invalid 'group_hours'; must be an integer"
	errDurInvalid   = "invalid duration bound; must be a number"
	errLimitInvalid = "invalid 'limit'; must be an integer"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// @Summary      Full analytics report
// @Description  Runs one filtered query over the log store and returns the raw rows plus every derived view: per-type counts, hour-of-day buckets, duration totals and averages per type, the 7x24 weekday/hour activity matrix and summary statistics. Out-of-range filter values are corrected and reported in 'warnings'.
// @Tags         analytics
// @Produce      json
// @Param        type          query  string  false  "Event type; empty matches all"
// @Param        from          query  string  false  "Start date (RFC3339 or YYYY-MM-DD); default one week back"
// @Param        to            query  string  false  "End date (RFC3339 or YYYY-MM-DD), inclusive; default today"
// @Param        group_hours   query  int     false  "Hour bucket width"  Enums(1,4,24)
// @Param        min_duration  query  number  false  "Minimum duration in seconds; 0 means unbounded"
// @Param        max_duration  query  number  false  "Maximum duration in seconds; the widget ceiling means unbounded"
// @Param        limit         query  int     false  "Maximum rows, most recent first"
// @Success      200  {object}  models.Report
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/report [get]
func (h *Handler) getReport(c *gin.Context) {
	in, ok := h.parseFilterInput(c)
	if !ok {
		return
	}
	report, err := h.services.Analytics.Report(c.Request.Context(), in)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("report_failed", "err", err, "type", in.EventType)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary      Raw filtered log rows
// @Description  Returns the most recent rows matching the filter, without the derived views.
// @Tags         analytics
// @Produce      json
// @Param        type          query  string  false  "Event type; empty matches all"
// @Param        from          query  string  false  "Start date (RFC3339 or YYYY-MM-DD)"
// @Param        to            query  string  false  "End date (RFC3339 or YYYY-MM-DD), inclusive"
// @Param        min_duration  query  number  false  "Minimum duration in seconds"
// @Param        max_duration  query  number  false  "Maximum duration in seconds"
// @Param        limit         query  int     false  "Maximum rows, most recent first"
// @Success      200  {object}  models.LogsPage
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	in, ok := h.parseFilterInput(c)
	if !ok {
		return
	}
	page, err := h.services.Analytics.Logs(c.Request.Context(), in)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("logs_list_failed", "err", err, "type", in.EventType)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load logs"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// parseFilterInput collects the raw filter parameters. Unparseable values
// are a 400 here; semantically out-of-range values are left for validation
// to correct, which reports them as warnings instead of failing.
func (h *Handler) parseFilterInput(c *gin.Context) (models.FilterInput, bool) {
	var in models.FilterInput
	in.EventType = strings.TrimSpace(c.Query("type"))

	if qs := c.Query("from"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return in, false
		}
		in.StartDate = t
	}
	if qs := c.Query("to"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return in, false
		}
		in.EndDate = t
	}
	if qs := c.Query("group_hours"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errGroupInvalid})
			return in, false
		}
		in.GroupHours = n
	}
	if qs := c.Query("min_duration"); qs != "" {
		v, err := strconv.ParseFloat(qs, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errDurInvalid})
			return in, false
		}
		in.MinDuration = &v
	}
	if qs := c.Query("max_duration"); qs != "" {
		v, err := strconv.ParseFloat(qs, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errDurInvalid})
			return in, false
		}
		in.MaxDuration = &v
	}
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
			return in, false
		}
		in.Limit = n
	}
	return in, true
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2026-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
