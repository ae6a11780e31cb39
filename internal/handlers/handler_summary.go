package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

// summaryHandler serves the dashboard read-model.
type summaryHandler struct {
	summarySvc portssvc.SummarySvcFacade
}

func registerSummaryRoutes(rg *gin.RouterGroup, summarySvc portssvc.SummarySvcFacade) {
	h := &summaryHandler{summarySvc: summarySvc}
	rg.GET("/summary", h.getSummary)
}

func (h *summaryHandler) getSummary(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	summary, err := h.summarySvc.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSummaryResponse(summary)))
}
