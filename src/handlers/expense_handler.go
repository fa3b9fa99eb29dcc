package handlers

import (
	cache "budgetbuddy-server/src/db"
	db "budgetbuddy-server/src/db/sql"
	"budgetbuddy-server/src/models"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expenseRequest struct {
	CategoryID         string  `json:"category_id"`
	Amount             float64 `json:"amount"`
	Description        string  `json:"description"`
	Date               string  `json:"date"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency string  `json:"recurring_frequency"`
}

// validateExpense turns the wire request into a model, rejecting
// non-positive amounts, malformed dates and unrecognized frequencies at
// the boundary.
func validateExpense(req expenseRequest) (*models.Expense, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if req.CategoryID == "" {
		return nil, fmt.Errorf("category_id is required")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be YYYY-MM-DD or RFC 3339")
		}
	}

	frequency, err := models.ParseFrequency(req.RecurringFrequency)
	if err != nil {
		return nil, err
	}
	if req.IsRecurring && frequency == models.FrequencyNone {
		return nil, fmt.Errorf("recurring expense requires a frequency")
	}
	if !req.IsRecurring && frequency != models.FrequencyNone {
		return nil, fmt.Errorf("frequency is only valid for recurring expenses")
	}

	return &models.Expense{
		CategoryID:         req.CategoryID,
		Amount:             req.Amount,
		Description:        req.Description,
		Date:               date,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: frequency,
	}, nil
}

func CreateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req expenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		expense, err := validateExpense(req)
		if err != nil {
			log.Printf("ERROR: Invalid create expense request for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		expense.UserID = userID

		created, err := db.CreateExpense(r.Context(), pool, expense)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to create expense for user %s: %v", userID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Created expense %s for user %s, category %s, amount %.2f", created.ID, userID, created.CategoryName, created.Amount)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetExpenseByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		expenseID := chi.URLParam(r, "expense_id")

		expense, err := db.GetExpenseByID(r.Context(), pool, userID, expenseID)
		if err != nil {
			log.Printf("ERROR: Expense %s not found for user %s: %v", expenseID, userID, err)
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expense)
	}
}

func GetAllExpensesForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		expenses, err := db.GetAllExpensesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %s: %v", userID, err)
			http.Error(w, "failed to get expenses", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expenses)
	}
}

func UpdateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		expenseID := chi.URLParam(r, "expense_id")

		var req expenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		expense, err := validateExpense(req)
		if err != nil {
			log.Printf("ERROR: Invalid update expense request for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		expense.ID = expenseID
		expense.UserID = userID

		updated, err := db.UpdateExpense(r.Context(), pool, expense)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "expense not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update expense %s for user %s: %v", expenseID, userID, err)
			http.Error(w, "failed to update expense", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Updated expense %s for user %s", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		expenseID := chi.URLParam(r, "expense_id")

		err := db.DeleteExpense(r.Context(), pool, userID, expenseID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "expense not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete expense %s for user %s: %v", expenseID, userID, err)
			http.Error(w, "failed to delete expense", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Deleted expense %s for user %s", expenseID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "expense deleted"})
	}
}
