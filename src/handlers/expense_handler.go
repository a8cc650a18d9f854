package handlers

import (
	"encoding/json"
	"log"
	db "monthwise-server/src/db/sql"
	"monthwise-server/src/models"
	"monthwise-server/src/util"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		categories, err := db.GetCategories(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get expense categories - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name string `json:"name"`
			Type string `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if req.Type == "" {
			req.Type = "misc"
		}

		category, err := db.CreateCategory(r.Context(), pool, userID, req.Name, req.Type)
		if err != nil {
			log.Printf("ERROR: Failed to create category - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Category created - User: %s, ID: %s", userID, category.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	}
}

func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteCategory(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete category - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "category deleted",
		})
	}
}

func GetExpenses(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		month, err := resolveMonth(r, pool, userID)
		if err != nil {
			if err == errInvalidMonth {
				http.Error(w, "invalid month or year", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to resolve month for expenses - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		expenses, err := db.GetExpensesForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses - user_id: %s, month_id: %s: %v", userID, month.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"month":    month,
			"expenses": expenses,
		})
	}
}

func CreateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Month      int    `json:"month"`
			Year       int    `json:"year"`
			Name       string `json:"name"`
			Amount     string `json:"amount"`
			CategoryID string `json:"category_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateMonth(req.Month) || req.Year <= 0 {
			http.Error(w, "invalid month or year", http.StatusBadRequest)
			return
		}
		if req.Name == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "name and a valid amount are required", http.StatusBadRequest)
			return
		}

		month, err := db.GetOrCreateMonth(r.Context(), pool, userID, req.Month, req.Year)
		if err != nil {
			log.Printf("ERROR: Failed to resolve month for expense - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		expense, err := db.CreateExpense(r.Context(), pool, &models.Expense{
			UserID:     userID,
			MonthID:    month.ID,
			Name:       req.Name,
			Amount:     req.Amount,
			CategoryID: req.CategoryID,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create expense - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Expense created - User: %s, ID: %s", userID, expense.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(expense)
	}
}

func UpdateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		var req struct {
			Name       string `json:"name"`
			Amount     string `json:"amount"`
			CategoryID string `json:"category_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "name and a valid amount are required", http.StatusBadRequest)
			return
		}

		expense, err := db.UpdateExpense(r.Context(), pool, userID, id, req.Name, req.Amount, req.CategoryID)
		if err != nil {
			log.Printf("ERROR: Failed to update expense - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expense)
	}
}

func DeleteExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteExpense(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete expense - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "expense deleted",
		})
	}
}
