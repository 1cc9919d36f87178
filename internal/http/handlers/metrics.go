package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okaycreative/studioops/internal/observability"
)

type MetricsHandler struct {
	metrics *observability.Metrics
}

func NewMetricsHandler(m *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: m}
}

// GET /metrics
func (h *MetricsHandler) Render(c *gin.Context) {
	if h.metrics == nil {
		c.String(http.StatusOK, "")
		return
	}
	c.String(http.StatusOK, h.metrics.Render())
}
