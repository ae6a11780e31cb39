package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// CategoryBreakdownResponse is one slice of the expense breakdown.
type CategoryBreakdownResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// SummaryResponse is the dashboard read-model, in the user's base currency.
type SummaryResponse struct {
	BaseCurrency      string                      `json:"baseCurrency"`
	TotalBalance      decimal.Decimal             `json:"totalBalance"`
	MonthIncome       decimal.Decimal             `json:"monthIncome"`
	MonthExpense      decimal.Decimal             `json:"monthExpense"`
	NetCashFlow       decimal.Decimal             `json:"netCashFlow"`
	AccountBalances   []AccountBalanceResponse    `json:"accountBalances"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
}

// ToSummaryResponse converts the dashboard read-model.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(s.CategoryBreakdown))
	for i, row := range s.CategoryBreakdown {
		breakdown[i] = CategoryBreakdownResponse{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        row.Total,
			Percentage:   row.Percentage,
		}
	}
	return SummaryResponse{
		BaseCurrency:      s.BaseCurrency,
		TotalBalance:      s.TotalBalance,
		MonthIncome:       s.MonthIncome,
		MonthExpense:      s.MonthExpense,
		NetCashFlow:       s.NetCashFlow,
		AccountBalances:   ToAccountBalanceResponses(s.AccountBalances),
		CategoryBreakdown: breakdown,
	}
}
