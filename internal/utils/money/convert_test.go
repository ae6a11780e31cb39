package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/utils/money"
)

func usdSettings(rate int64) domain.CurrencySettings {
	return domain.CurrencySettings{BaseCurrency: domain.CurrencyUSD, ExchangeRate: decimal.NewFromInt(rate)}
}

func etbSettings(rate int64) domain.CurrencySettings {
	return domain.CurrencySettings{BaseCurrency: domain.CurrencyETB, ExchangeRate: decimal.NewFromInt(rate)}
}

func TestToBase(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		native   string
		settings domain.CurrencySettings
		want     string
	}{
		{"same currency is identity", "123.45", "USD", usdSettings(120), "123.45"},
		{"USD to ETB multiplies", "100", "USD", etbSettings(120), "12000"},
		{"ETB to USD divides", "12000", "ETB", usdSettings(120), "100"},
		{"legacy BIRR alias normalizes", "12000", "BIRR", usdSettings(120), "100"},
		{"BIRR alias as base is identity for ETB", "50", "ETB", domain.CurrencySettings{BaseCurrency: "BIRR", ExchangeRate: decimal.NewFromInt(120)}, "50"},
		{"unknown currency passes through", "99.99", "EUR", usdSettings(120), "99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := money.ToBase(amount, tt.native, tt.settings)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestFromBase_IsInverseOfToBase(t *testing.T) {
	settings := usdSettings(120)
	for _, currency := range []string{"USD", "ETB", "BIRR", "EUR"} {
		amount := decimal.RequireFromString("250.75")
		roundTrip := money.FromBase(money.ToBase(amount, currency, settings), currency, settings)
		assert.True(t, roundTrip.Equal(amount), "round trip for %s: got %s", currency, roundTrip)
	}
}

func TestConvert_USDToETBAndBack(t *testing.T) {
	rate := decimal.RequireFromString("133.5")
	amount := decimal.RequireFromString("841.27")

	there := money.Convert(amount, domain.CurrencyUSD, domain.CurrencyETB, rate)
	back := money.Convert(there, domain.CurrencyETB, domain.CurrencyUSD, rate)

	assert.True(t, there.Equal(amount.Mul(rate)))
	assert.True(t, back.Equal(amount), "expected %s, got %s", amount, back)
}

func TestUSDStorageConversions(t *testing.T) {
	t.Run("USD base is identity", func(t *testing.T) {
		settings := usdSettings(120)
		amount := decimal.RequireFromString("42.42")
		assert.True(t, money.ToUSD(amount, settings).Equal(amount))
		assert.True(t, money.FromUSD(amount, settings).Equal(amount))
	})

	t.Run("ETB base converts through the rate", func(t *testing.T) {
		settings := etbSettings(120)
		assert.True(t, money.ToUSD(decimal.NewFromInt(12000), settings).Equal(decimal.NewFromInt(100)))
		assert.True(t, money.FromUSD(decimal.NewFromInt(100), settings).Equal(decimal.NewFromInt(12000)))
	})
}
