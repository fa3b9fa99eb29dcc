package api

import (
	"budgetbuddy-server/src/handlers"
	"budgetbuddy-server/src/llm"
	"budgetbuddy-server/src/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, llmClient *llm.Client) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(pool))
		r.Post("/auth/login", handlers.Login(pool))
		r.Get("/auth/verify", handlers.Verify())

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/user", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteUser(pool))

			// Categories
			r.Post("/categories", handlers.CreateCategory(pool))
			r.Get("/categories", handlers.GetAllCategoriesForUser(pool))
			r.Delete("/categories/{category_id}", handlers.DeleteCategory(pool))

			// Expenses
			r.Post("/expenses", handlers.CreateExpense(pool))
			r.Get("/expenses", handlers.GetAllExpensesForUser(pool))
			r.Get("/expenses/{expense_id}", handlers.GetExpenseByID(pool))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(pool))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(pool))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets", handlers.GetAllBudgetsForUser(pool))
			r.Get("/budgets/{budget_id}", handlers.GetBudgetByID(pool))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Analytics
			r.Get("/analytics/summary", handlers.GetAnalyticsSummary(pool))
			r.Get("/analytics/categories", handlers.GetAnalyticsCategories(pool))
			r.Get("/analytics/monthly", handlers.GetAnalyticsMonthly(pool))
			r.Get("/analytics/recurring", handlers.GetAnalyticsRecurring(pool))

			// Financial plan + assistant
			r.Get("/financial-plan", handlers.GetFinancialPlan(pool))
			r.Post("/financial-plan", handlers.SaveFinancialPlan(pool))
			r.Post("/financial-goals", handlers.GenerateFinancialPlan(llmClient))
			r.Post("/chat", handlers.Chat(pool, llmClient))
		})
	})

	return r
}
