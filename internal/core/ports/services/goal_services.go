package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/dto"
)

// GoalSvcFacade manages savings goals, their derived analytics and the
// contribution path.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalsWithAnalytics(ctx context.Context, userID string) ([]domain.GoalAnalytics, error)
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
	// Contribute converts the amount from the funding account's native
	// currency into USD, adds it to the goal and records a matching expense
	// transaction, atomically.
	Contribute(ctx context.Context, userID, goalID string, req dto.ContributeRequest) (*domain.Goal, error)
}
