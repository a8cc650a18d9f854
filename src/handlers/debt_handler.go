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

func GetDebts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		debts, err := db.GetDebts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get debts - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(debts)
	}
}

func CreateDebt(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name           string  `json:"name"`
			Principal      string  `json:"principal"`
			InterestRate   *string `json:"interest_rate"`
			MonthlyPayment string  `json:"monthly_payment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create debt request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.Principal) || !util.ValidateAmount(req.MonthlyPayment) {
			http.Error(w, "name and valid amounts are required", http.StatusBadRequest)
			return
		}

		debt, err := db.CreateDebt(r.Context(), pool, &models.Debt{
			UserID:         userID,
			Name:           req.Name,
			Principal:      req.Principal,
			InterestRate:   req.InterestRate,
			MonthlyPayment: req.MonthlyPayment,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create debt - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Debt created - User: %s, ID: %s", userID, debt.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(debt)
	}
}

func UpdateDebt(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		var req struct {
			Name           string  `json:"name"`
			Principal      string  `json:"principal"`
			InterestRate   *string `json:"interest_rate"`
			MonthlyPayment string  `json:"monthly_payment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update debt request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.Principal) || !util.ValidateAmount(req.MonthlyPayment) {
			http.Error(w, "name and valid amounts are required", http.StatusBadRequest)
			return
		}

		debt, err := db.UpdateDebt(r.Context(), pool, &models.Debt{
			ID:             id,
			UserID:         userID,
			Name:           req.Name,
			Principal:      req.Principal,
			InterestRate:   req.InterestRate,
			MonthlyPayment: req.MonthlyPayment,
		})
		if err != nil {
			log.Printf("ERROR: Failed to update debt - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(debt)
	}
}

func DeleteDebt(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteDebt(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete debt - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "debt deleted",
		})
	}
}
