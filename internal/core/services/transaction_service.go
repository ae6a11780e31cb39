package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/platform/cache"
	"github.com/vantage-fin/vantage/internal/utils/money"
)

type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	categoryRepo    portsrepo.CategoryRepository
	inv             cache.Invalidator
}

// NewTransactionService creates the ledger-entry recorder.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, categoryRepo portsrepo.CategoryRepository, inv cache.Invalidator) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		inv:             inv,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !domain.ValidTransactionKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, req.Kind)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if req.Kind != domain.Transfer && string(category.Kind) != string(req.Kind) {
			return nil, fmt.Errorf("%w: category kind %q does not match transaction kind %q", apperrors.ErrValidation, category.Kind, req.Kind)
		}
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     account.AccountID,
		Kind:          req.Kind,
		Amount:        req.Amount,
		OccurredOn:    req.OccurredOn,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		IsRecurring:   req.IsRecurring,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if req.Kind == domain.Transfer {
		if err := s.recordTransfer(ctx, userID, account, &txn, req); err != nil {
			return nil, err
		}
	} else {
		if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
			logger.Error("Failed to save transaction", "error", err)
			return nil, err
		}
	}

	s.inv.Invalidate(
		cache.UserTag(cache.TagTransactions, userID),
		cache.UserTag(cache.TagSummary, userID),
	)

	logger.Info("Transaction recorded", "transaction_id", txn.TransactionID, "kind", txn.Kind)
	return &txn, nil
}

// recordTransfer validates the transfer leg pair and hands the three effects
// to the repository as one atomic unit. The destination account receives no
// transaction row; its balance effect folds into its opening balance.
func (s *transactionService) recordTransfer(ctx context.Context, userID string, source *domain.Account, txn *domain.Transaction, req dto.CreateTransactionRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.DestinationAccountID == nil {
		return fmt.Errorf("%w: destinationAccountID is required for transfers", apperrors.ErrValidation)
	}
	if *req.DestinationAccountID == source.AccountID {
		return fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	destination, err := s.accountRepo.FindAccountByID(ctx, userID, *req.DestinationAccountID)
	if err != nil {
		return err
	}

	convertedAmount, err := transferAmount(txn.Amount, source.CurrencyCode, destination.CurrencyCode, req.ExchangeRate)
	if err != nil {
		return err
	}

	txn.CounterpartyAccountID = &destination.AccountID

	if err := s.transactionRepo.SaveTransfer(ctx, *txn, destination.AccountID, convertedAmount); err != nil {
		logger.Error("Failed to save transfer", "error", err,
			"source_account", source.AccountID, "destination_account", destination.AccountID)
		return err
	}

	s.inv.Invalidate(cache.UserTag(cache.TagAccounts, userID))
	return nil
}

// transferAmount decides what the destination account is credited with.
// Same currency moves one-to-one. A cross-currency move is only permitted
// between USD and ETB and requires a positive per-transfer rate.
func transferAmount(amount decimal.Decimal, sourceCurrency, destinationCurrency string, rate *string) (decimal.Decimal, error) {
	from := domain.NormalizeCurrency(sourceCurrency)
	to := domain.NormalizeCurrency(destinationCurrency)

	if from == to {
		return amount, nil
	}

	supported := func(code string) bool {
		return code == domain.CurrencyUSD || code == domain.CurrencyETB
	}
	if !supported(from) || !supported(to) {
		return decimal.Zero, fmt.Errorf("%w: %s to %s", apperrors.ErrUnsupportedCurrencyPair, from, to)
	}

	if rate == nil || *rate == "" {
		return decimal.Zero, apperrors.ErrMissingExchangeRate
	}
	parsed, err := decimal.NewFromString(*rate)
	if err != nil || parsed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, apperrors.ErrInvalidExchangeRate
	}

	return money.Convert(amount, from, to, parsed), nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.ListTransactionsFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Kind:       domain.TransactionKind(params.Kind),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}

	if params.Kind != "" && !domain.ValidTransactionKind(filter.Kind) {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, params.Kind)
	}

	if params.From != "" {
		from, err := time.Parse("2006-01-02", params.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse("2006-01-02", params.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.To = &to
	}

	return s.transactionRepo.ListTransactions(ctx, userID, filter)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Kind == domain.Transfer {
		// A transfer already rewrote two baselines; editing it would leave
		// them stale.
		return nil, fmt.Errorf("%w: transfers cannot be edited", apperrors.ErrConflict)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.OccurredOn != nil {
		txn.OccurredOn = *req.OccurredOn
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if string(category.Kind) != string(txn.Kind) {
			return nil, fmt.Errorf("%w: category kind %q does not match transaction kind %q", apperrors.ErrValidation, category.Kind, txn.Kind)
		}
		txn.CategoryID = req.CategoryID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.IsRecurring != nil {
		txn.IsRecurring = *req.IsRecurring
	}
	txn.UpdatedAt = time.Now()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}

	s.inv.Invalidate(
		cache.UserTag(cache.TagTransactions, userID),
		cache.UserTag(cache.TagSummary, userID),
	)
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if txn.Kind == domain.Transfer {
		return fmt.Errorf("%w: transfers cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return err
	}

	s.inv.Invalidate(
		cache.UserTag(cache.TagTransactions, userID),
		cache.UserTag(cache.TagSummary, userID),
	)
	return nil
}
