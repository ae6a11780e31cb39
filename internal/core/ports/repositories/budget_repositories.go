package repositories

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// BudgetRow is a budget joined with its category's name, as listed for a month.
type BudgetRow struct {
	domain.Budget
	CategoryName string
}

// BudgetRepository persists monthly per-category limits. Writes upsert by
// the (user, category, month, year) natural key, relying on the storage
// layer's uniqueness constraint rather than a read-then-write.
type BudgetRepository interface {
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	ListBudgetsForMonth(ctx context.Context, userID string, month, year int) ([]BudgetRow, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
