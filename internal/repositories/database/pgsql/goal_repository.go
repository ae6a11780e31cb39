package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

const goalColumns = `goal_id, user_id, name, target_amount, current_amount, deadline, account_id, category_id, created_at, updated_at`

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (goal_id, user_id, name, target_amount, current_amount, deadline, account_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.AccountID,
		goal.CategoryID,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE goal_id = $1 AND user_id = $2;
	`
	goal, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}
	return goal, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $3,
		    target_amount = $4,
		    current_amount = $5,
		    deadline = $6,
		    account_id = $7,
		    category_id = $8,
		    updated_at = $9
		WHERE goal_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.AccountID,
		goal.CategoryID,
		goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goal.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddContribution increments the goal and records the funding expense inside
// one database transaction.
func (r *PgxGoalRepository) AddContribution(ctx context.Context, userID, goalID string, usdAmount decimal.Decimal, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	goalQuery := `
		UPDATE goals
		SET current_amount = current_amount + $3,
		    updated_at = $4
		WHERE goal_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, goalQuery, goalID, userID, usdAmount, txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to add contribution to goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

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
		return fmt.Errorf("failed to record contribution transaction: %w", err)
	}

	return r.Commit(ctx, tx)
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var goal domain.Goal
	err := row.Scan(
		&goal.GoalID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Deadline,
		&goal.AccountID,
		&goal.CategoryID,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
