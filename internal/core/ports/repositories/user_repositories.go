package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// UserRepository persists users and their currency preferences.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateCurrencySettings stores the user's base currency and USD→ETB rate.
	UpdateCurrencySettings(ctx context.Context, userID string, baseCurrency string, exchangeRate decimal.Decimal, now time.Time) error
}
