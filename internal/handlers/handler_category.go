package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categorySvc portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categorySvc portssvc.CategorySvcFacade) {
	h := &categoryHandler{categorySvc: categorySvc}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categorySvc.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToCategoryResponse(category)))
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	categories, err := h.categorySvc.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponses(categories)))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categorySvc.UpdateCategory(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(category)))
}

func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.categorySvc.DeleteCategory(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil))
}
