package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, account_id, kind, amount, occurred_on, category_id, description, is_recurring, counterparty_account_id, created_at, updated_at`

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, user_id, account_id, kind, amount, occurred_on, category_id, description, is_recurring, counterparty_account_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	_, err := r.Pool.Exec(ctx, insertTransactionQuery,
		txn.TransactionID,
		txn.UserID,
		txn.AccountID,
		txn.Kind,
		txn.Amount,
		txn.OccurredOn,
		txn.CategoryID,
		txn.Description,
		txn.IsRecurring,
		txn.CounterpartyAccountID,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// SaveTransfer inserts the transfer row and rewrites both account baselines
// inside a single database transaction. Either balance update matching zero
// rows aborts everything with apperrors.ErrBalanceUpdateFailed.
func (r *PgxTransactionRepository) SaveTransfer(ctx context.Context, txn domain.Transaction, destinationAccountID string, convertedAmount decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	_, err = tx.Exec(ctx, insertTransactionQuery,
		txn.TransactionID,
		txn.UserID,
		txn.AccountID,
		txn.Kind,
		txn.Amount,
		txn.OccurredOn,
		txn.CategoryID,
		txn.Description,
		txn.IsRecurring,
		txn.CounterpartyAccountID,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer transaction: %w", err)
	}

	if err := applyBalanceDelta(ctx, tx, txn.UserID, txn.AccountID, txn.Amount.Neg(), txn.UpdatedAt); err != nil {
		return fmt.Errorf("transfer debit: %w", err)
	}
	if err := applyBalanceDelta(ctx, tx, txn.UserID, destinationAccountID, convertedAmount, txn.UpdatedAt); err != nil {
		return fmt.Errorf("transfer credit: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		query += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND occurred_on >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND occurred_on <= $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY occurred_on DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $3,
		    amount = $4,
		    occurred_on = $5,
		    category_id = $6,
		    description = $7,
		    is_recurring = $8,
		    updated_at = $9
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.AccountID,
		txn.Amount,
		txn.OccurredOn,
		txn.CategoryID,
		txn.Description,
		txn.IsRecurring,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) AccountFlows(ctx context.Context, userID string) (map[string]domain.AccountFlow, error) {
	query := `
		SELECT account_id,
		       COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0) AS income_sum,
		       COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0) AS expense_sum
		FROM transactions
		WHERE user_id = $1 AND kind <> 'transfer'
		GROUP BY account_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate account flows for user %s: %w", userID, err)
	}
	defer rows.Close()

	flows := map[string]domain.AccountFlow{}
	for rows.Next() {
		var flow domain.AccountFlow
		if err := rows.Scan(&flow.AccountID, &flow.IncomeSum, &flow.ExpenseSum); err != nil {
			return nil, fmt.Errorf("failed to scan account flow row: %w", err)
		}
		flows[flow.AccountID] = flow
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account flow rows: %w", err)
	}
	return flows, nil
}

func (r *PgxTransactionRepository) CategorySpend(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error) {
	query := `
		SELECT t.category_id, a.currency_code, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.user_id = $1
		  AND t.kind = 'expense'
		  AND t.category_id IS NOT NULL
		  AND t.occurred_on >= $2
		  AND t.occurred_on <= $3
		GROUP BY t.category_id, a.currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category spend for user %s: %w", userID, err)
	}
	defer rows.Close()

	spends := []domain.CategorySpend{}
	for rows.Next() {
		var spend domain.CategorySpend
		if err := rows.Scan(&spend.CategoryID, &spend.CurrencyCode, &spend.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category spend row: %w", err)
		}
		spends = append(spends, spend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spend rows: %w", err)
	}
	return spends, nil
}

func (r *PgxTransactionRepository) CurrencyFlows(ctx context.Context, userID string, from, to time.Time) ([]domain.CurrencyFlow, error) {
	query := `
		SELECT a.currency_code,
		       COALESCE(SUM(t.amount) FILTER (WHERE t.kind = 'income'), 0) AS income_sum,
		       COALESCE(SUM(t.amount) FILTER (WHERE t.kind = 'expense'), 0) AS expense_sum
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.user_id = $1
		  AND t.kind <> 'transfer'
		  AND t.occurred_on >= $2
		  AND t.occurred_on <= $3
		GROUP BY a.currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate currency flows for user %s: %w", userID, err)
	}
	defer rows.Close()

	flows := []domain.CurrencyFlow{}
	for rows.Next() {
		var flow domain.CurrencyFlow
		if err := rows.Scan(&flow.CurrencyCode, &flow.IncomeSum, &flow.ExpenseSum); err != nil {
			return nil, fmt.Errorf("failed to scan currency flow row: %w", err)
		}
		flows = append(flows, flow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency flow rows: %w", err)
	}
	return flows, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.AccountID,
		&txn.Kind,
		&txn.Amount,
		&txn.OccurredOn,
		&txn.CategoryID,
		&txn.Description,
		&txn.IsRecurring,
		&txn.CounterpartyAccountID,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
