package handlers

import (
	"budgetbuddy-server/src/analytics"
	db "budgetbuddy-server/src/db/sql"
	"budgetbuddy-server/src/llm"
	"budgetbuddy-server/src/models"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GetFinancialPlan returns the user's saved plan with its allocation
// breakdown, or {"has_plan": false} when none has been saved yet.
func GetFinancialPlan(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		plan, err := db.GetFinancialPlanForUser(r.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]interface{}{"has_plan": false})
				return
			}
			log.Printf("ERROR: Failed to get financial plan for user %s: %v", userID, err)
			http.Error(w, "failed to get financial plan", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"has_plan":   true,
			"plan":       plan,
			"allocation": analytics.PlanAllocation(*plan),
		})
	}
}

// SaveFinancialPlan persists a plan, replacing the user's previous one.
func SaveFinancialPlan(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Goal                         string  `json:"goal"`
			MonthlyIncome                float64 `json:"monthly_income"`
			Currency                     string  `json:"currency"`
			StructuredPlan               string  `json:"structured_plan"`
			EssentialExpenses            float64 `json:"essential_expenses"`
			EssentialExpensesPurpose     string  `json:"essential_expenses_purpose"`
			Savings                      float64 `json:"savings"`
			SavingsPurpose               string  `json:"savings_purpose"`
			DiscretionarySpending        float64 `json:"discretionary_spending"`
			DiscretionarySpendingPurpose string  `json:"discretionary_spending_purpose"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Goal) == "" {
			http.Error(w, "goal is required", http.StatusBadRequest)
			return
		}
		if req.MonthlyIncome <= 0 {
			http.Error(w, "monthly_income must be greater than zero", http.StatusBadRequest)
			return
		}
		if req.EssentialExpenses < 0 || req.Savings < 0 || req.DiscretionarySpending < 0 {
			http.Error(w, "allocation amounts cannot be negative", http.StatusBadRequest)
			return
		}
		if req.Currency == "" {
			req.Currency = "USD"
		}

		plan, err := db.UpsertFinancialPlan(r.Context(), pool, &models.FinancialPlan{
			UserID:                       userID,
			Goal:                         req.Goal,
			MonthlyIncome:                req.MonthlyIncome,
			Currency:                     req.Currency,
			StructuredPlan:               req.StructuredPlan,
			EssentialExpenses:            req.EssentialExpenses,
			EssentialExpensesPurpose:     req.EssentialExpensesPurpose,
			Savings:                      req.Savings,
			SavingsPurpose:               req.SavingsPurpose,
			DiscretionarySpending:        req.DiscretionarySpending,
			DiscretionarySpendingPurpose: req.DiscretionarySpendingPurpose,
		})
		if err != nil {
			log.Printf("ERROR: Failed to save financial plan for user %s: %v", userID, err)
			http.Error(w, "failed to save financial plan", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Saved financial plan for user %s", userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"plan":       plan,
			"allocation": analytics.PlanAllocation(*plan),
		})
	}
}

// GenerateFinancialPlan asks the model for an income-allocation plan.
// The result is returned to the client for review and is only persisted
// through SaveFinancialPlan.
func GenerateFinancialPlan(llmClient *llm.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !llmClient.Configured() {
			http.Error(w, "plan generation is not available", http.StatusServiceUnavailable)
			return
		}

		userID := r.Context().Value("user_id").(string)

		var req struct {
			Goal              string  `json:"goal"`
			MonthlyIncome     float64 `json:"monthly_income"`
			Currency          string  `json:"currency"`
			AdditionalContext string  `json:"additional_context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Goal) == "" {
			http.Error(w, "goal is required", http.StatusBadRequest)
			return
		}
		if req.MonthlyIncome <= 0 {
			http.Error(w, "monthly_income must be greater than zero", http.StatusBadRequest)
			return
		}
		if req.Currency == "" {
			req.Currency = "USD"
		}

		generated, err := llmClient.GeneratePlan(r.Context(), req.Goal, req.MonthlyIncome, req.Currency, req.AdditionalContext)
		if err != nil {
			log.Printf("ERROR: Failed to generate financial plan for user %s: %v", userID, err)
			http.Error(w, "failed to generate financial plan", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Generated financial plan for user %s", userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generated)
	}
}
