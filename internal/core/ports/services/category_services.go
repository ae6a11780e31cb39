package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/dto"
)

// CategorySvcFacade manages classification tags.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
