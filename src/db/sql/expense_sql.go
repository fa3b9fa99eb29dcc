package db

import (
	"budgetbuddy-server/src/models"
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `
	e.id, e.user_id, e.category_id, e.amount, e.description, e.date,
	e.is_recurring, COALESCE(e.recurring_frequency, ''), c.name, c.color,
	e.created_at, e.updated_at
`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var e models.Expense
	var freq string
	err := row.Scan(
		&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Description, &e.Date,
		&e.IsRecurring, &freq, &e.CategoryName, &e.CategoryColor,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.RecurringFrequency = models.Frequency(freq)
	return &e, nil
}

// addToBudgetSpent applies an expense amount to the matching budget as a
// single server-side increment. Two concurrent submissions can never lose
// an update this way. Zero matched rows is fine: budgets are optional.
func addToBudgetSpent(ctx context.Context, tx pgx.Tx, userID, categoryID, month string, amount float64) error {
	query := `
		UPDATE budgets
		SET spent = spent + $1, updated_at = NOW()
		WHERE user_id = $2 AND category_id = $3 AND month = $4
	`
	_, err := tx.Exec(ctx, query, amount, userID, categoryID, month)
	return err
}

// removeFromBudgetSpent reverses a contribution, flooring spent at zero.
func removeFromBudgetSpent(ctx context.Context, tx pgx.Tx, userID, categoryID, month string, amount float64) error {
	query := `
		UPDATE budgets
		SET spent = GREATEST(spent - $1, 0), updated_at = NOW()
		WHERE user_id = $2 AND category_id = $3 AND month = $4
	`
	_, err := tx.Exec(ctx, query, amount, userID, categoryID, month)
	return err
}

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := categoryOwnedByUser(ctx, tx, expense.UserID, expense.CategoryID); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO expenses (id, user_id, category_id, amount, description, date, is_recurring, recurring_frequency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING id
	`
	var id string
	err = tx.QueryRow(ctx, query,
		uuid.NewString(), expense.UserID, expense.CategoryID, expense.Amount,
		expense.Description, expense.Date, expense.IsRecurring, string(expense.RecurringFrequency),
	).Scan(&id)
	if err != nil {
		return nil, translateError(err)
	}

	if err := addToBudgetSpent(ctx, tx, expense.UserID, expense.CategoryID, expense.MonthKey(), expense.Amount); err != nil {
		return nil, err
	}

	created, err := scanExpense(tx.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses e JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1
	`, id))
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func GetExpenseByID(ctx context.Context, pool *pgxpool.Pool, userID, expenseID string) (*models.Expense, error) {
	expense, err := scanExpense(pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses e JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1 AND e.user_id = $2
	`, expenseID, userID))
	if err != nil {
		return nil, translateError(err)
	}
	return expense, nil
}

func GetAllExpensesForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Expense, error) {
	rows, err := pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses e JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// UpdateExpense treats an amount/category/date change as delete-old plus
// create-new against the budgets: the old contribution is reversed, the
// new one applied, all in one transaction.
func UpdateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	old, err := scanExpense(tx.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses e JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1 AND e.user_id = $2
		FOR UPDATE OF e
	`, expense.ID, expense.UserID))
	if err != nil {
		return nil, translateError(err)
	}

	if err := categoryOwnedByUser(ctx, tx, expense.UserID, expense.CategoryID); err != nil {
		return nil, err
	}

	query := `
		UPDATE expenses
		SET category_id = $1, amount = $2, description = $3, date = $4,
		    is_recurring = $5, recurring_frequency = NULLIF($6, ''), updated_at = NOW()
		WHERE id = $7 AND user_id = $8
	`
	cmd, err := tx.Exec(ctx, query,
		expense.CategoryID, expense.Amount, expense.Description, expense.Date,
		expense.IsRecurring, string(expense.RecurringFrequency),
		expense.ID, expense.UserID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if err := removeFromBudgetSpent(ctx, tx, old.UserID, old.CategoryID, old.MonthKey(), old.Amount); err != nil {
		return nil, err
	}
	if err := addToBudgetSpent(ctx, tx, expense.UserID, expense.CategoryID, expense.MonthKey(), expense.Amount); err != nil {
		return nil, err
	}

	updated, err := scanExpense(tx.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses e JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1
	`, expense.ID))
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, userID, expenseID string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	old, err := scanExpense(tx.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses e JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1 AND e.user_id = $2
		FOR UPDATE OF e
	`, expenseID, userID))
	if err != nil {
		return translateError(err)
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, expenseID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := removeFromBudgetSpent(ctx, tx, old.UserID, old.CategoryID, old.MonthKey(), old.Amount); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
