package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. TargetAmount and CurrentAmount are stored in USD
// regardless of the user's display currency; conversion happens only on read.
// AccountID and CategoryID, when set, are used to record contributions as
// expense transactions against the funding account.
type Goal struct {
	GoalID        string          `json:"goalID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	AccountID     *string         `json:"accountID,omitempty"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	AuditFields
}

// GoalAnalytics is a goal augmented with derived progress figures. Monetary
// fields are converted to the user's base currency for presentation.
type GoalAnalytics struct {
	Goal
	ProgressPercent        decimal.Decimal  `json:"progressPercent"`
	DaysRemaining          *int             `json:"daysRemaining,omitempty"`
	RequiredMonthlySaving  *decimal.Decimal `json:"requiredMonthlySaving,omitempty"`
}
