package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/dto"
)

// AccountSvcFacade manages financial accounts and the derived balance read-model.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	// GetBalances derives each account's current balance from the ledger:
	// opening balance + income sum − expense sum, in native currency.
	GetBalances(ctx context.Context, userID string) ([]domain.AccountBalance, error)
}
