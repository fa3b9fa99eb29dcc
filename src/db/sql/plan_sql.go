package db

import (
	"budgetbuddy-server/src/models"
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetFinancialPlanForUser(ctx context.Context, pool *pgxpool.Pool, userID string) (*models.FinancialPlan, error) {
	query := `
		SELECT id, user_id, goal, monthly_income, currency, structured_plan,
		       essential_expenses, essential_expenses_purpose,
		       savings, savings_purpose,
		       discretionary_spending, discretionary_spending_purpose,
		       created_at, updated_at
		FROM financial_plans
		WHERE user_id = $1
	`
	var p models.FinancialPlan
	err := pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Goal, &p.MonthlyIncome, &p.Currency, &p.StructuredPlan,
		&p.EssentialExpenses, &p.EssentialExpensesPurpose,
		&p.Savings, &p.SavingsPurpose,
		&p.DiscretionarySpending, &p.DiscretionarySpendingPurpose,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

// UpsertFinancialPlan saves the user's plan, replacing any previous one.
func UpsertFinancialPlan(ctx context.Context, pool *pgxpool.Pool, plan *models.FinancialPlan) (*models.FinancialPlan, error) {
	query := `
		INSERT INTO financial_plans (
			id, user_id, goal, monthly_income, currency, structured_plan,
			essential_expenses, essential_expenses_purpose,
			savings, savings_purpose,
			discretionary_spending, discretionary_spending_purpose
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			goal = $3, monthly_income = $4, currency = $5, structured_plan = $6,
			essential_expenses = $7, essential_expenses_purpose = $8,
			savings = $9, savings_purpose = $10,
			discretionary_spending = $11, discretionary_spending_purpose = $12,
			updated_at = NOW()
		RETURNING id, user_id, goal, monthly_income, currency, structured_plan,
		          essential_expenses, essential_expenses_purpose,
		          savings, savings_purpose,
		          discretionary_spending, discretionary_spending_purpose,
		          created_at, updated_at
	`
	var p models.FinancialPlan
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), plan.UserID, plan.Goal, plan.MonthlyIncome, plan.Currency, plan.StructuredPlan,
		plan.EssentialExpenses, plan.EssentialExpensesPurpose,
		plan.Savings, plan.SavingsPurpose,
		plan.DiscretionarySpending, plan.DiscretionarySpendingPurpose,
	).Scan(
		&p.ID, &p.UserID, &p.Goal, &p.MonthlyIncome, &p.Currency, &p.StructuredPlan,
		&p.EssentialExpenses, &p.EssentialExpensesPurpose,
		&p.Savings, &p.SavingsPurpose,
		&p.DiscretionarySpending, &p.DiscretionarySpendingPurpose,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}
