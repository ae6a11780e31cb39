package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/platform/cache"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
	inv          cache.Invalidator
}

// NewCategoryService creates the classification-tag service. Name uniqueness
// is case-insensitive and enforced by the storage layer's unique index.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, inv cache.Invalidator) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, inv: inv}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       name,
		Kind:       req.Kind,
		Icon:       req.Icon,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Warn("Failed to create category", "error", err)
		return nil, err
	}

	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, userID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
		}
		category.Name = name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}

	s.inv.Invalidate(cache.UserTag(cache.TagSummary, userID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	// Referencing transactions keep their rows; the fk sets category_id NULL.
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	s.inv.Invalidate(cache.UserTag(cache.TagSummary, userID))
	return nil
}
