package domain

import "github.com/shopspring/decimal"

// CategoryBreakdownRow is one slice of the dashboard's expense breakdown,
// expressed in the user's base currency.
type CategoryBreakdownRow struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// Summary is the dashboard read-model: everything converted into the user's
// base currency at read time.
type Summary struct {
	BaseCurrency      string                 `json:"baseCurrency"`
	TotalBalance      decimal.Decimal        `json:"totalBalance"`
	MonthIncome       decimal.Decimal        `json:"monthIncome"`
	MonthExpense      decimal.Decimal        `json:"monthExpense"`
	NetCashFlow       decimal.Decimal        `json:"netCashFlow"`
	AccountBalances   []AccountBalance       `json:"accountBalances"`
	CategoryBreakdown []CategoryBreakdownRow `json:"categoryBreakdown"`
}
