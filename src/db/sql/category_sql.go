package db

import (
	"budgetbuddy-server/src/models"
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// queryRower is satisfied by both the pool and a transaction.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// categoryOwnedByUser confirms the category exists and belongs to the
// user. Expenses and budgets must not reference another user's category,
// even though the FK alone would allow it.
func categoryOwnedByUser(ctx context.Context, q queryRower, userID, categoryID string) error {
	var one int
	err := q.QueryRow(ctx, `SELECT 1 FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID).Scan(&one)
	return translateError(err)
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (id, user_id, name, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, color
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, uuid.NewString(), category.UserID, category.Name, category.Color).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Color)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// SeedDefaultCategories inserts the stock category set for a new user.
// Re-running is harmless: duplicates are skipped.
func SeedDefaultCategories(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	query := `
		INSERT INTO categories (id, user_id, name, color)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, name) DO NOTHING
	`
	for _, c := range models.DefaultCategories {
		if _, err := pool.Exec(ctx, query, uuid.NewString(), userID, c.Name, c.Color); err != nil {
			return translateError(err)
		}
	}
	return nil
}

func GetAllCategoriesForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, color
		FROM categories WHERE user_id = $1
		ORDER BY name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, userID, categoryID string) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, categoryID, userID)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
