package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

// settingsHandler serves the currency settings.
type settingsHandler struct {
	settingsSvc portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsSvc portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsSvc: settingsSvc}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

func (h *settingsHandler) getSettings(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	settings, err := h.settingsSvc.GetCurrencySettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSettingsResponse(settings)))
}

func (h *settingsHandler) updateSettings(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	settings, err := h.settingsSvc.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSettingsResponse(settings)))
}
