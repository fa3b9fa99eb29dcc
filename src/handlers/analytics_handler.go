package handlers

import (
	"budgetbuddy-server/src/analytics"
	cache "budgetbuddy-server/src/db"
	db "budgetbuddy-server/src/db/sql"
	"budgetbuddy-server/src/models"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// loadSnapshot fetches the records every analytics view is computed from.
func loadSnapshot(r *http.Request, pool *pgxpool.Pool, userID string) ([]models.Expense, []models.Budget, []models.Category, error) {
	expenses, err := db.GetAllExpensesForUser(r.Context(), pool, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	categories, err := db.GetAllCategoriesForUser(r.Context(), pool, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return expenses, budgets, categories, nil
}

// analyticsView serves one cached view, computing it on miss. Mutations
// bump the user's cache generation, so a hit is never stale even when a
// mutation lands mid-computation.
func analyticsView(pool *pgxpool.Pool, view string, compute func(expenses []models.Expense, budgets []models.Budget, categories []models.Category) interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		cacheKey := cache.AnalyticsCacheKey(userID, view)
		if cached, found := cache.GetAnalyticsCache(cacheKey); found {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}

		expenses, budgets, categories, err := loadSnapshot(r, pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load analytics snapshot for user %s: %v", userID, err)
			http.Error(w, "failed to compute analytics", http.StatusInternalServerError)
			return
		}

		result := compute(expenses, budgets, categories)
		cache.SetAnalyticsCache(cacheKey, result)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func GetAnalyticsSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return analyticsView(pool, "summary", func(expenses []models.Expense, budgets []models.Budget, categories []models.Category) interface{} {
		return analytics.Summarize(expenses, budgets, categories)
	})
}

func GetAnalyticsCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return analyticsView(pool, "categories", func(expenses []models.Expense, budgets []models.Budget, categories []models.Category) interface{} {
		breakdown := analytics.ExpensesByCategory(expenses, categories)
		if breakdown == nil {
			breakdown = []analytics.CategoryTotal{}
		}
		return breakdown
	})
}

func GetAnalyticsMonthly(pool *pgxpool.Pool) http.HandlerFunc {
	return analyticsView(pool, "monthly", func(expenses []models.Expense, budgets []models.Budget, categories []models.Category) interface{} {
		return analytics.MonthlyExpenses(expenses)
	})
}

type recurringExpenseView struct {
	models.Expense
	AnnualCost float64 `json:"annual_cost"`
}

type recurringView struct {
	Expenses        []recurringExpenseView `json:"expenses"`
	TotalAnnualCost float64                `json:"total_annual_cost"`
}

func GetAnalyticsRecurring(pool *pgxpool.Pool) http.HandlerFunc {
	return analyticsView(pool, "recurring", func(expenses []models.Expense, budgets []models.Budget, categories []models.Category) interface{} {
		view := recurringView{Expenses: []recurringExpenseView{}}
		for _, e := range analytics.RecurringExpenses(expenses) {
			annual := analytics.AnnualizedCost(e.Amount, e.RecurringFrequency)
			view.Expenses = append(view.Expenses, recurringExpenseView{Expense: e, AnnualCost: annual})
			view.TotalAnnualCost += annual
		}
		return view
	})
}
