package domain

import "github.com/shopspring/decimal"

// User represents a registered user of the application.
type User struct {
	UserID       string          `json:"userID"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Name         string          `json:"name"`
	BaseCurrency string          `json:"baseCurrency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // USD→ETB multiplier, always > 0
	AuditFields
}

// Settings extracts the user's currency settings, substituting defaults for
// unset values.
func (u User) Settings() CurrencySettings {
	s := CurrencySettings{
		BaseCurrency: NormalizeCurrency(u.BaseCurrency),
		ExchangeRate: u.ExchangeRate,
	}
	if s.BaseCurrency == "" {
		s.BaseCurrency = CurrencyUSD
	}
	if s.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		s.ExchangeRate = DefaultExchangeRate
	}
	return s
}
