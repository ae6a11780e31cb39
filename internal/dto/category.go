package dto

import (
	"github.com/vantage-fin/vantage/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Kind  domain.CategoryKind `json:"kind" binding:"required,oneof=income expense"`
	Icon  string              `json:"icon"`
	Color string              `json:"color"`
}

// UpdateCategoryRequest defines the editable fields of a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryResponse mirrors domain.Category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Name       string              `json:"name"`
	Kind       domain.CategoryKind `json:"kind"`
	Icon       string              `json:"icon,omitempty"`
	Color      string              `json:"color,omitempty"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Kind:       c.Kind,
		Icon:       c.Icon,
		Color:      c.Color,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
