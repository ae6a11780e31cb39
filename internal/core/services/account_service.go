package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/platform/cache"
)

type accountService struct {
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	inv             cache.Invalidator
}

// NewAccountService creates the account CRUD and balance-ledger service.
func NewAccountService(accountRepo portsrepo.AccountRepository, transactionRepo portsrepo.TransactionRepository, inv cache.Invalidator) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, transactionRepo: transactionRepo, inv: inv}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		Type:           req.Type,
		CurrencyCode:   domain.NormalizeCurrency(req.CurrencyCode),
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to create account", "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.inv.Invalidate(cache.UserTag(cache.TagAccounts, userID), cache.UserTag(cache.TagSummary, userID))

	logger.Info("Account created", "account_id", account.AccountID)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, userID)
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Type != nil {
		if !domain.ValidAccountType(*req.Type) {
			return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *req.Type)
		}
		account.Type = *req.Type
	}
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	s.inv.Invalidate(cache.UserTag(cache.TagAccounts, userID), cache.UserTag(cache.TagSummary, userID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		return err
	}
	s.inv.Invalidate(cache.UserTag(cache.TagAccounts, userID), cache.UserTag(cache.TagSummary, userID))
	logger.Info("Account deleted", "account_id", accountID)
	return nil
}

// GetBalances derives each account's current balance from the ledger:
// opening balance plus income sum minus expense sum, in native currency.
// Transfers never enter the aggregate; their effect already lives in the
// opening balance.
func (s *accountService) GetBalances(ctx context.Context, userID string) ([]domain.AccountBalance, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	flows, err := s.transactionRepo.AccountFlows(ctx, userID)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.AccountBalance, len(accounts))
	for i, account := range accounts {
		current := account.OpeningBalance
		if flow, ok := flows[account.AccountID]; ok {
			current = current.Add(flow.IncomeSum).Sub(flow.ExpenseSum)
		}
		balances[i] = domain.AccountBalance{
			AccountID:      account.AccountID,
			Name:           account.Name,
			Type:           account.Type,
			CurrencyCode:   account.CurrencyCode,
			CurrentBalance: current,
		}
	}
	return balances, nil
}
