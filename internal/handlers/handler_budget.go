package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetSvc portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetSvc portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetSvc: budgetSvc}

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.getBudgets)
		budgets.PUT("", h.setBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

func (h *budgetHandler) getBudgets(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	progress, err := h.budgetSvc.GetBudgetsWithProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToBudgetProgressResponses(progress)))
}

func (h *budgetHandler) setBudget(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budget, err := h.budgetSvc.SetBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(budget))
}

func (h *budgetHandler) deleteBudget(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.budgetSvc.DeleteBudget(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil))
}
