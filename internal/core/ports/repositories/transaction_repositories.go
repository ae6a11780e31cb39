package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// ListTransactionsFilter narrows a transaction listing.
type ListTransactionsFilter struct {
	AccountID  string
	CategoryID string
	Kind       domain.TransactionKind
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// TransactionRepository persists ledger entries and serves the aggregate
// queries the balance ledger and the read-models are derived from.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// SaveTransfer applies the transfer's three effects as one atomic unit:
	// insert the transfer row on the source account, decrement the source
	// baseline by txn.Amount and increment the destination baseline by
	// convertedAmount. A balance update affecting zero rows aborts the whole
	// unit with apperrors.ErrBalanceUpdateFailed.
	SaveTransfer(ctx context.Context, txn domain.Transaction, destinationAccountID string, convertedAmount decimal.Decimal) error
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter ListTransactionsFilter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, userID, transactionID string) error

	// AccountFlows returns income and expense sums grouped by account,
	// excluding transfers, keyed by account ID.
	AccountFlows(ctx context.Context, userID string) (map[string]domain.AccountFlow, error)
	// CategorySpend returns expense sums within [from, to] grouped by
	// category and the native currency of the charged account.
	CategorySpend(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error)
	// CurrencyFlows returns income and expense sums within [from, to]
	// grouped by the native currency of the charged account.
	CurrencyFlows(ctx context.Context, userID string, from, to time.Time) ([]domain.CurrencyFlow, error)
}
