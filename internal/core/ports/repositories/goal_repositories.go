package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// GoalRepository persists savings goals. Amounts are stored in USD.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, userID, goalID string) error
	// AddContribution increments the goal's current amount by usdAmount and
	// inserts the matching expense transaction against the funding account,
	// both in one atomic unit. A goal update affecting zero rows aborts with
	// apperrors.ErrNotFound; the transaction insert failing rolls back the
	// goal update.
	AddContribution(ctx context.Context, userID, goalID string, usdAmount decimal.Decimal, txn domain.Transaction) error
}
