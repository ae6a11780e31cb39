// Package money holds the pure currency-conversion arithmetic. All
// conversion between an account's native currency and the user's base
// currency goes through here; nothing in this package performs I/O.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// ToBase converts amount from nativeCurrency into the base currency of the
// given settings. The stored rate is always the USD→ETB multiplier, so the
// direction of the conversion decides whether to multiply or divide.
// A currency code outside the supported pair is treated as already being in
// the base currency and passes through untouched.
func ToBase(amount decimal.Decimal, nativeCurrency string, settings domain.CurrencySettings) decimal.Decimal {
	native := domain.NormalizeCurrency(nativeCurrency)
	base := domain.NormalizeCurrency(settings.BaseCurrency)

	if native == base {
		return amount
	}
	switch {
	case native == domain.CurrencyUSD && base == domain.CurrencyETB:
		return amount.Mul(settings.ExchangeRate)
	case native == domain.CurrencyETB && base == domain.CurrencyUSD:
		return amount.Div(settings.ExchangeRate)
	default:
		// Unknown code: policy is pass-through, not a validation failure.
		return amount
	}
}

// FromBase converts amount from the settings' base currency into
// targetCurrency. Inverse of ToBase for the supported pair.
func FromBase(amount decimal.Decimal, targetCurrency string, settings domain.CurrencySettings) decimal.Decimal {
	target := domain.NormalizeCurrency(targetCurrency)
	base := domain.NormalizeCurrency(settings.BaseCurrency)

	if target == base {
		return amount
	}
	switch {
	case base == domain.CurrencyUSD && target == domain.CurrencyETB:
		return amount.Mul(settings.ExchangeRate)
	case base == domain.CurrencyETB && target == domain.CurrencyUSD:
		return amount.Div(settings.ExchangeRate)
	default:
		return amount
	}
}

// ToUSD converts amount from the settings' base currency into USD, the
// internal storage currency for goals.
func ToUSD(amount decimal.Decimal, settings domain.CurrencySettings) decimal.Decimal {
	if domain.NormalizeCurrency(settings.BaseCurrency) == domain.CurrencyETB {
		return amount.Div(settings.ExchangeRate)
	}
	return amount
}

// FromUSD converts a USD-stored amount into the settings' base currency.
func FromUSD(amount decimal.Decimal, settings domain.CurrencySettings) decimal.Decimal {
	if domain.NormalizeCurrency(settings.BaseCurrency) == domain.CurrencyETB {
		return amount.Mul(settings.ExchangeRate)
	}
	return amount
}

// Convert applies a caller-supplied rate directionally for a cross-currency
// transfer between the supported pair: multiply when going USD→ETB, divide
// for the inverse. Both codes must already be normalized and distinct.
func Convert(amount decimal.Decimal, fromCurrency, toCurrency string, rate decimal.Decimal) decimal.Decimal {
	if fromCurrency == domain.CurrencyUSD && toCurrency == domain.CurrencyETB {
		return amount.Mul(rate)
	}
	return amount.Div(rate)
}
