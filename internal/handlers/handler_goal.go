package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalSvc portssvc.GoalSvcFacade
}

func registerGoalRoutes(rg *gin.RouterGroup, goalSvc portssvc.GoalSvcFacade) {
	h := &goalHandler{goalSvc: goalSvc}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/contribute", h.contribute)
	}
}

func (h *goalHandler) createGoal(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalSvc.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(goal))
}

func (h *goalHandler) listGoals(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	analytics, err := h.goalSvc.GetGoalsWithAnalytics(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToGoalAnalyticsResponses(analytics)))
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalSvc.UpdateGoal(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(goal))
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.goalSvc.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil))
}

func (h *goalHandler) contribute(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalSvc.Contribute(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(goal))
}
