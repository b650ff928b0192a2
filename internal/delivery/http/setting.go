package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordertrack/internal/models"
	"ordertrack/internal/service"
)

func (h *Handler) GetAllSettings(c *gin.Context) {
	settings, err := h.svc.GetAllSettings()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetSetting serves both the generic key lookup and the two well-known list
// settings, which respond in their own shape and fall back to defaults when
// the row is absent.
func (h *Handler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	switch key {
	case models.SettingVendors, models.SettingStatuses:
		list, err := h.svc.GetStringList(key)
		if err != nil {
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{key: list})
	default:
		value, err := h.svc.GetSetting(key)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				newErrorResponse(c, http.StatusNotFound, "Setting not found")
				return
			}
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
	}
}

func (h *Handler) SetSetting(c *gin.Context) {
	key := c.Param("key")

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch key {
	case models.SettingVendors, models.SettingStatuses:
		if err := h.svc.SetStringList(key, body[key]); err != nil {
			if errors.Is(err, service.ErrNotArray) {
				newErrorResponse(c, http.StatusBadRequest, key+" must be an array")
				return
			}
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{key: body[key]})
	default:
		value := body["value"]
		if err := h.svc.SetSetting(key, value); err != nil {
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
	}
}
