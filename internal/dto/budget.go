package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// SetBudgetRequest upserts the monthly limit for one category. Amount is in
// the user's display currency; the service converts it to the stored base
// representation. Month and year default to the current calendar month.
type SetBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Month      int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year       int             `json:"year" binding:"omitempty,min=2000"`
}

// BudgetProgressResponse is one budget with the month's spend against it.
type BudgetProgressResponse struct {
	BudgetID     string          `json:"budgetID"`
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Limit        decimal.Decimal `json:"limit"`
	Spent        decimal.Decimal `json:"spent"`
	Percentage   decimal.Decimal `json:"percentage"`
	OverBudget   bool            `json:"overBudget"`
}

// ToBudgetProgressResponses converts budget progress rows.
func ToBudgetProgressResponses(rows []domain.BudgetProgress) []BudgetProgressResponse {
	res := make([]BudgetProgressResponse, len(rows))
	for i, r := range rows {
		res[i] = BudgetProgressResponse{
			BudgetID:     r.BudgetID,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Month:        r.Month,
			Year:         r.Year,
			Limit:        r.LimitAmount,
			Spent:        r.Spent,
			Percentage:   r.Percentage,
			OverBudget:   r.OverBudget,
		}
	}
	return res
}
