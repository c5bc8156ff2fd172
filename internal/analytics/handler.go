package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BoraOzcoban/sukoc/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

// RegisterRoutes mounts the analytics endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.Report)
}

// Report handles GET /api/v1/analytics.
func (h *Handler) Report(c *gin.Context) {
	report, err := h.Service.Report(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "analytics_failed", "could not aggregate analytics", nil)
		return
	}
	respond.OK(c, report)
}
