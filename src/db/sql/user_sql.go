package db

import (
	"budgetbuddy-server/src/models"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, name, password_hash, avatar, currency, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Avatar,
		&user.Currency,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, name, password_hash, avatar, currency, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Avatar,
		&user.Currency,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func CreateUser(ctx context.Context, pool *pgxpool.Pool, req models.RegisterRequest, hashedPassword, avatar, currency string) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, name, password_hash, avatar, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, name, password_hash, avatar, currency, created_at, updated_at
	`
	var user models.User
	err := pool.QueryRow(ctx, query, uuid.NewString(), req.Email, req.Name, hashedPassword, avatar, currency).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Avatar,
		&user.Currency,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func UpdateUserProfile(ctx context.Context, pool *pgxpool.Pool, userID, name, avatar, currency string) error {
	query := `
		UPDATE users
		SET name = $1, avatar = $2, currency = $3, updated_at = NOW()
		WHERE id = $4
	`
	cmd, err := pool.Exec(ctx, query, name, avatar, currency, userID)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, pool *pgxpool.Pool, userID, hashedPassword string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	cmd, err := pool.Exec(ctx, query, hashedPassword, userID)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user; categories, expenses, budgets and the
// financial plan go with it via ON DELETE CASCADE.
func DeleteUser(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	query := `DELETE FROM users WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
