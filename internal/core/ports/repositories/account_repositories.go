package repositories

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// AccountRepository persists financial accounts. Every query is scoped by
// user ID so cross-user access is structurally impossible. Baseline balance
// rewrites happen inside the storage layer's atomic units (transfers), not
// through this interface.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
