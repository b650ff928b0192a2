package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats
// @Summary GetStats
// @Description Dashboard aggregates, recomputed on every call
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} errorResponse
// @Router /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.GetStats()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
