package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// UpsertBudget writes through the budgets natural key: setting a budget for
// a (category, month, year) that already has one replaces its limit instead
// of creating a second row.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	query := `
		INSERT INTO budgets (budget_id, user_id, category_id, month, year, limit_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT ON CONSTRAINT budgets_natural_key DO UPDATE SET
		    limit_amount = EXCLUDED.limit_amount,
		    updated_at = EXCLUDED.updated_at
		RETURNING budget_id, user_id, category_id, month, year, limit_amount, created_at, updated_at;
	`
	var saved domain.Budget
	err := r.Pool.QueryRow(ctx, query,
		budget.BudgetID,
		budget.UserID,
		budget.CategoryID,
		budget.Month,
		budget.Year,
		budget.LimitAmount,
		budget.CreatedAt,
		budget.UpdatedAt,
	).Scan(
		&saved.BudgetID,
		&saved.UserID,
		&saved.CategoryID,
		&saved.Month,
		&saved.Year,
		&saved.LimitAmount,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return &saved, nil
}

func (r *PgxBudgetRepository) ListBudgetsForMonth(ctx context.Context, userID string, month, year int) ([]portsrepo.BudgetRow, error) {
	query := `
		SELECT b.budget_id, b.user_id, b.category_id, b.month, b.year, b.limit_amount, b.created_at, b.updated_at, c.name
		FROM budgets b
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3
		ORDER BY c.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	budgets := []portsrepo.BudgetRow{}
	for rows.Next() {
		var row portsrepo.BudgetRow
		err := rows.Scan(
			&row.BudgetID,
			&row.UserID,
			&row.CategoryID,
			&row.Month,
			&row.Year,
			&row.LimitAmount,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
