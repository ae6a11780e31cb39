package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// UpdateSettingsRequest sets the user's base currency and USD→ETB rate.
// The legacy alias BIRR is accepted for the second currency.
type UpdateSettingsRequest struct {
	BaseCurrency string          `json:"baseCurrency" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
}

// SettingsResponse mirrors domain.CurrencySettings.
type SettingsResponse struct {
	BaseCurrency string          `json:"baseCurrency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ToSettingsResponse converts currency settings.
func ToSettingsResponse(s domain.CurrencySettings) SettingsResponse {
	return SettingsResponse{BaseCurrency: s.BaseCurrency, ExchangeRate: s.ExchangeRate}
}
