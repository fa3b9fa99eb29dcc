package handlers

import (
	cache "budgetbuddy-server/src/db"
	db "budgetbuddy-server/src/db/sql"
	"budgetbuddy-server/src/models"
	"budgetbuddy-server/src/util"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name  string `json:"name"`
			Color string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "category name is required", http.StatusBadRequest)
			return
		}
		if req.Color == "" {
			req.Color = models.DefaultCategoryColor
		}
		if !util.ValidateHexColor(req.Color) {
			log.Printf("ERROR: Invalid category color %q for user %s", req.Color, userID)
			http.Error(w, "color must be a hex value like #36A2EB", http.StatusBadRequest)
			return
		}

		category := &models.Category{
			UserID: userID,
			Name:   req.Name,
			Color:  req.Color,
		}
		created, err := db.CreateCategory(r.Context(), pool, category)
		if err != nil {
			if errors.Is(err, db.ErrConflict) {
				log.Printf("ERROR: Duplicate category name %q for user %s", req.Name, userID)
				http.Error(w, "category already exists", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create category for user %s: %v", userID, err)
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Created category %s (%s) for user %s", created.ID, created.Name, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllCategoriesForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		categories, err := db.GetAllCategoriesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		categoryID := chi.URLParam(r, "category_id")

		err := db.DeleteCategory(r.Context(), pool, userID, categoryID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete category %s for user %s: %v", categoryID, userID, err)
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
			return
		}
		cache.ClearUserAnalyticsCaches(userID)

		log.Printf("INFO: Deleted category %s for user %s", categoryID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "category deleted"})
	}
}
