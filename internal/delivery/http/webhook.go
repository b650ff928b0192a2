package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordertrack/internal/service"
)

// ProcessOrderEmail
// @Summary ProcessOrderEmail
// @Description Ingests raw email content: classifies it, extracts order data and upserts keyed on the order number. Negative classification and failed extraction are 200 outcomes with action "skipped"/"failed".
// @Accept json
// @Produce json
// @Param email body service.WebhookEmail true "email content"
// @Success 200,201 {object} map[string]interface{}
// @Failure 400,500 {object} errorResponse
// @Router /api/webhooks/order [post]
func (h *Handler) ProcessOrderEmail(c *gin.Context) {
	var email service.WebhookEmail
	if err := c.ShouldBindJSON(&email); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.ProcessEmail(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingContent),
			errors.Is(err, service.ErrNoOrderNumber):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	switch res.Action {
	case service.ActionSkipped:
		c.JSON(http.StatusOK, gin.H{
			"message":        res.Message,
			"classification": res.Classification,
			"action":         res.Action,
		})
	case service.ActionFailed:
		c.JSON(http.StatusOK, gin.H{
			"message":        res.Message,
			"classification": res.Classification,
			"extraction":     res.Extraction,
			"action":         res.Action,
		})
	default:
		status := http.StatusOK
		if res.Action == service.ActionCreated {
			status = http.StatusCreated
		}
		c.JSON(status, gin.H{
			"message":        res.Message,
			"order":          res.Order,
			"action":         res.Action,
			"classification": res.Classification,
			"extraction":     res.Extraction,
		})
	}
}
