package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/dto"
)

// BudgetSvcFacade manages monthly per-category limits and computes progress
// against the current month's spending.
type BudgetSvcFacade interface {
	GetBudgetsWithProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error)
	SetBudget(ctx context.Context, userID string, req dto.SetBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
