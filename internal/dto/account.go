package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	Type           domain.AccountType `json:"type" binding:"required,oneof=checking savings credit cash investment"`
	CurrencyCode   string             `json:"currencyCode" binding:"required,currency"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// UpdateAccountRequest defines the fields that may change after creation.
// The opening balance is immutable through this path; only transfers rewrite it.
type UpdateAccountRequest struct {
	Name *string             `json:"name"`
	Type *domain.AccountType `json:"type" binding:"omitempty,oneof=checking savings credit cash investment"`
}

// AccountResponse mirrors domain.Account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Type           domain.AccountType `json:"type"`
	CurrencyCode   string             `json:"currencyCode"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Type:           acc.Type,
		CurrencyCode:   acc.CurrencyCode,
		OpeningBalance: acc.OpeningBalance,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

// AccountBalanceResponse is one row of the derived balance read-model.
type AccountBalanceResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Type           domain.AccountType `json:"type"`
	CurrencyCode   string             `json:"currencyCode"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
}

// ToAccountBalanceResponses converts the derived balances.
func ToAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = AccountBalanceResponse{
			AccountID:      b.AccountID,
			Name:           b.Name,
			Type:           b.Type,
			CurrencyCode:   b.CurrencyCode,
			CurrentBalance: b.CurrentBalance,
		}
	}
	return res
}
