package db

import (
	"budgetbuddy-server/src/models"
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `
	b.id, b.user_id, b.category_id, b.limit_amount, b.spent, b.month,
	c.name, c.color, b.created_at, b.updated_at
`

// spentForPeriod sums the user's expenses for one (category, month) pair.
// It is the source of truth spent is (re)initialized from. The month is
// taken in UTC to agree with Expense.MonthKey regardless of the session
// time zone.
const spentForPeriod = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE user_id = $1 AND category_id = $2 AND to_char(date AT TIME ZONE 'UTC', 'YYYY-MM') = $3
`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(
		&b.ID, &b.UserID, &b.CategoryID, &b.Limit, &b.Spent, &b.Month,
		&b.CategoryName, &b.CategoryColor, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBudget inserts a budget with spent pre-filled from the expenses
// already recorded for its category and month. A second budget for the
// same (user, category, month) is a conflict.
func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := categoryOwnedByUser(ctx, tx, budget.UserID, budget.CategoryID); err != nil {
		return nil, err
	}

	var spent float64
	if err := tx.QueryRow(ctx, spentForPeriod, budget.UserID, budget.CategoryID, budget.Month).Scan(&spent); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO budgets (id, user_id, category_id, limit_amount, spent, month)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id string
	err = tx.QueryRow(ctx, query, uuid.NewString(), budget.UserID, budget.CategoryID, budget.Limit, spent, budget.Month).Scan(&id)
	if err != nil {
		return nil, translateError(err)
	}

	created, err := scanBudget(tx.QueryRow(ctx, `
		SELECT `+budgetColumns+`
		FROM budgets b JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1
	`, id))
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, userID, budgetID string) (*models.Budget, error) {
	budget, err := scanBudget(pool.QueryRow(ctx, `
		SELECT `+budgetColumns+`
		FROM budgets b JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1 AND b.user_id = $2
	`, budgetID, userID))
	if err != nil {
		return nil, translateError(err)
	}
	return budget, nil
}

func GetAllBudgetsForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Budget, error) {
	rows, err := pool.Query(ctx, `
		SELECT `+budgetColumns+`
		FROM budgets b JOIN categories c ON b.category_id = c.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

// UpdateBudget may move a budget to a different category or month, so
// spent is recomputed from the matching expenses rather than carried over.
func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := categoryOwnedByUser(ctx, tx, budget.UserID, budget.CategoryID); err != nil {
		return nil, err
	}

	var spent float64
	if err := tx.QueryRow(ctx, spentForPeriod, budget.UserID, budget.CategoryID, budget.Month).Scan(&spent); err != nil {
		return nil, err
	}

	query := `
		UPDATE budgets
		SET category_id = $1, limit_amount = $2, spent = $3, month = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`
	cmd, err := tx.Exec(ctx, query, budget.CategoryID, budget.Limit, spent, budget.Month, budget.ID, budget.UserID)
	if err != nil {
		return nil, translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	updated, err := scanBudget(tx.QueryRow(ctx, `
		SELECT `+budgetColumns+`
		FROM budgets b JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1
	`, budget.ID))
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID string) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
