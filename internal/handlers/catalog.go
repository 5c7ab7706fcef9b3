package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Distinct event types
// @Description  Lists the event types present in the store, lexicographically ascending. Feeds the operator's type-filter choices.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, event_types"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/event-types [get]
func (h *Handler) getEventTypes(c *gin.Context) {
	types, err := h.services.Catalog.EventTypes(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("event_types_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(types),
		"event_types": types,
	})
}
