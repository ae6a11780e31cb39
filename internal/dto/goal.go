package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// CreateGoalRequest defines the data needed to create a savings goal.
// TargetAmount is in the user's display currency and converted to USD for
// storage.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     *time.Time      `json:"deadline"`
	AccountID    *string         `json:"accountID" binding:"omitempty,uuid"`
	CategoryID   *string         `json:"categoryID" binding:"omitempty,uuid"`
}

// UpdateGoalRequest defines the editable fields of a goal.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Deadline     *time.Time       `json:"deadline"`
	AccountID    *string          `json:"accountID" binding:"omitempty,uuid"`
	CategoryID   *string          `json:"categoryID" binding:"omitempty,uuid"`
}

// ContributeRequest records a contribution towards a goal. Amount is in the
// funding account's native currency.
type ContributeRequest struct {
	AccountID  string          `json:"accountID" binding:"required,uuid"`
	CategoryID *string         `json:"categoryID" binding:"omitempty,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// GoalAnalyticsResponse is a goal with derived progress figures, monetary
// fields converted to the user's base currency.
type GoalAnalyticsResponse struct {
	GoalID                string           `json:"goalID"`
	Name                  string           `json:"name"`
	TargetAmount          decimal.Decimal  `json:"targetAmount"`
	CurrentAmount         decimal.Decimal  `json:"currentAmount"`
	Deadline              *time.Time       `json:"deadline,omitempty"`
	AccountID             *string          `json:"accountID,omitempty"`
	CategoryID            *string          `json:"categoryID,omitempty"`
	ProgressPercent       decimal.Decimal  `json:"progressPercent"`
	DaysRemaining         *int             `json:"daysRemaining,omitempty"`
	RequiredMonthlySaving *decimal.Decimal `json:"requiredMonthlySaving,omitempty"`
}

// ToGoalAnalyticsResponses converts goal analytics rows.
func ToGoalAnalyticsResponses(rows []domain.GoalAnalytics) []GoalAnalyticsResponse {
	res := make([]GoalAnalyticsResponse, len(rows))
	for i, r := range rows {
		res[i] = GoalAnalyticsResponse{
			GoalID:                r.GoalID,
			Name:                  r.Name,
			TargetAmount:          r.TargetAmount,
			CurrentAmount:         r.CurrentAmount,
			Deadline:              r.Deadline,
			AccountID:             r.AccountID,
			CategoryID:            r.CategoryID,
			ProgressPercent:       r.ProgressPercent,
			DaysRemaining:         r.DaysRemaining,
			RequiredMonthlySaving: r.RequiredMonthlySaving,
		}
	}
	return res
}
