package domain

import "github.com/shopspring/decimal"

// Budget is a per-category monthly spending limit. LimitAmount is stored in
// the owner's base currency. At most one budget exists per
// (user, category, month, year); writes upsert by that natural key.
type Budget struct {
	BudgetID    string          `json:"budgetID"`
	UserID      string          `json:"userID"`
	CategoryID  string          `json:"categoryID"`
	Month       int             `json:"month"` // 1..12
	Year        int             `json:"year"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	AuditFields
}

// BudgetProgress is a budget joined with the month's spend for its category.
type BudgetProgress struct {
	Budget
	CategoryName string          `json:"categoryName"`
	Spent        decimal.Decimal `json:"spent"`
	Percentage   decimal.Decimal `json:"percentage"`
	OverBudget   bool            `json:"overBudget"`
}
