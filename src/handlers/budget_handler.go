package handlers

import (
	cache "budgetbuddy-server/src/db"
	db "budgetbuddy-server/src/db/sql"
	"budgetbuddy-server/src/models"
	"budgetbuddy-server/src/util"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type budgetRequest struct {
	CategoryID string  `json:"category_id"`
	Limit      float64 `json:"limit"`
	Month      string  `json:"month"`
}

func validateBudget(req budgetRequest) (*models.Budget, error) {
	if req.Limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	if req.CategoryID == "" {
		return nil, fmt.Errorf("category_id is required")
	}
	if !util.ValidateMonth(req.Month) {
		return nil, fmt.Errorf("month must be YYYY-MM")
	}
	return &models.Budget{
		CategoryID: req.CategoryID,
		Limit:      req.Limit,
		Month:      req.Month,
	}, nil
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		budget, err := validateBudget(req)
		if err != nil {
			log.Printf("ERROR: Invalid create budget request for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		budget.UserID = userID

		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, db.ErrConflict) {
				log.Printf("ERROR: Duplicate budget for user %s, category %s, month %s", userID, req.CategoryID, req.Month)
				http.Error(w, "budget already exists for this category and month", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create budget for user %s: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Created budget %s for user %s, category %s, month %s", created.ID, userID, created.CategoryName, created.Month)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudgetByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		budget, err := db.GetBudgetByID(r.Context(), pool, userID, budgetID)
		if err != nil {
			log.Printf("ERROR: Budget %s not found for user %s: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func GetAllBudgetsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %s: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		budget, err := validateBudget(req)
		if err != nil {
			log.Printf("ERROR: Invalid update budget request for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		budget.ID = budgetID
		budget.UserID = userID

		updated, err := db.UpdateBudget(r.Context(), pool, budget)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "budget not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, db.ErrConflict) {
				http.Error(w, "budget already exists for this category and month", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to update budget %s for user %s: %v", budgetID, userID, err)
			http.Error(w, "failed to update budget", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Updated budget %s for user %s", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		err := db.DeleteBudget(r.Context(), pool, userID, budgetID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "budget not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete budget %s for user %s: %v", budgetID, userID, err)
			http.Error(w, "failed to delete budget", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Deleted budget %s for user %s", budgetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "budget deleted"})
	}
}
