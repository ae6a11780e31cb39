package domain

import "github.com/shopspring/decimal"

// Supported currency codes. ETB is the international code for the Ethiopian
// birr; the legacy alias "BIRR" is still accepted on input and mapped to ETB.
const (
	CurrencyUSD = "USD"
	CurrencyETB = "ETB"

	// legacyBirrAlias is the pre-ISO code older clients still send.
	legacyBirrAlias = "BIRR"
)

// NormalizeCurrency maps legacy currency aliases to their canonical code.
// Unknown codes are returned unchanged; conversion treats them as already
// being in the base currency.
func NormalizeCurrency(code string) string {
	if code == legacyBirrAlias {
		return CurrencyETB
	}
	return code
}

// IsSupportedBaseCurrency reports whether code may be used as a user's base currency.
func IsSupportedBaseCurrency(code string) bool {
	code = NormalizeCurrency(code)
	return code == CurrencyUSD || code == CurrencyETB
}

// CurrencySettings is a user's display-currency preference together with the
// single stored USD→ETB exchange rate.
type CurrencySettings struct {
	BaseCurrency string          `json:"baseCurrency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// DefaultExchangeRate is used when a user has no stored rate.
var DefaultExchangeRate = decimal.NewFromInt(120)

// DefaultCurrencySettings returns the fallback settings for users without a
// stored preference.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{
		BaseCurrency: CurrencyUSD,
		ExchangeRate: DefaultExchangeRate,
	}
}
