package handlers

import (
	"encoding/json"
	"errors"
	"log"
	db "monthwise-server/src/db/sql"
	"monthwise-server/src/models"
	"monthwise-server/src/util"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errInvalidMonth = errors.New("invalid month or year")

// resolveMonth reads month/year query params, defaulting to the current
// calendar month, and returns the user's month row, creating it if needed.
func resolveMonth(r *http.Request, pool *pgxpool.Pool, userID string) (*models.Month, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || !util.ValidateMonth(parsed) {
			return nil, errInvalidMonth
		}
		month = parsed
	}
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed <= 0 {
			return nil, errInvalidMonth
		}
		year = parsed
	}

	return db.GetOrCreateMonth(r.Context(), pool, userID, month, year)
}

func FetchIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		month, err := resolveMonth(r, pool, userID)
		if err != nil {
			if err == errInvalidMonth {
				http.Error(w, "invalid month or year", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to resolve month for income - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		hasAny, err := db.HasAnyIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to check income presence - user_id: %s, month_id: %s: %v", userID, month.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Carry forward from the previous month when this month has no
		// income rows at all.
		if !hasAny {
			prev, err := db.GetPreviousMonth(r.Context(), pool, userID, month.Month, month.Year)
			if err != nil {
				log.Printf("ERROR: Failed to resolve previous month - user_id: %s: %v", userID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if err := db.CopyIncomeFromMonth(r.Context(), pool, userID, prev.ID, month.ID); err != nil {
				log.Printf("ERROR: Failed to carry income forward - user_id: %s, from: %s, to: %s: %v", userID, prev.ID, month.ID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			log.Printf("INFO: Carried income forward - User: %s, Month: %d/%d", userID, month.Month, month.Year)
		}

		income, err := db.GetIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get income - user_id: %s, month_id: %s: %v", userID, month.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		additional, err := db.GetAdditionalIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get additional income - user_id: %s, month_id: %s: %v", userID, month.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"month":             month,
			"income":            income,
			"additional_income": additional,
		})
	}
}

func UpsertIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Month           int    `json:"month"`
			Year            int    `json:"year"`
			GrossIncome     string `json:"gross_income"`
			TaxDeduction    string `json:"tax_deduction"`
			NisDeduction    string `json:"nis_deduction"`
			OtherDeductions string `json:"other_deductions"`
			NetIncome       string `json:"net_income"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode upsert income request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateMonth(req.Month) || req.Year <= 0 {
			http.Error(w, "invalid month or year", http.StatusBadRequest)
			return
		}
		for _, amount := range []string{req.GrossIncome, req.TaxDeduction, req.NisDeduction, req.OtherDeductions, req.NetIncome} {
			if !util.ValidateAmount(amount) {
				http.Error(w, "invalid amount", http.StatusBadRequest)
				return
			}
		}

		month, err := db.GetOrCreateMonth(r.Context(), pool, userID, req.Month, req.Year)
		if err != nil {
			log.Printf("ERROR: Failed to resolve month for income upsert - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		income, err := db.UpsertIncome(r.Context(), pool, userID, month.ID, db.IncomeInput{
			GrossIncome:     req.GrossIncome,
			TaxDeduction:    req.TaxDeduction,
			NisDeduction:    req.NisDeduction,
			OtherDeductions: req.OtherDeductions,
			NetIncome:       req.NetIncome,
		})
		if err != nil {
			log.Printf("ERROR: Failed to upsert income - user_id: %s, month_id: %s: %v", userID, month.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Income saved - User: %s, Month: %d/%d", userID, req.Month, req.Year)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(income)
	}
}

func CreateAdditionalIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Month  int    `json:"month"`
			Year   int    `json:"year"`
			Label  string `json:"label"`
			Amount string `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create additional income request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateMonth(req.Month) || req.Year <= 0 {
			http.Error(w, "invalid month or year", http.StatusBadRequest)
			return
		}
		if req.Label == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "label and a valid amount are required", http.StatusBadRequest)
			return
		}

		month, err := db.GetOrCreateMonth(r.Context(), pool, userID, req.Month, req.Year)
		if err != nil {
			log.Printf("ERROR: Failed to resolve month for additional income - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		income, err := db.CreateAdditionalIncome(r.Context(), pool, userID, month.ID, req.Label, req.Amount)
		if err != nil {
			log.Printf("ERROR: Failed to create additional income - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Additional income created - User: %s, ID: %s", userID, income.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(income)
	}
}

func UpdateAdditionalIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		var req struct {
			Label  string `json:"label"`
			Amount string `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update additional income request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Label == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "label and a valid amount are required", http.StatusBadRequest)
			return
		}

		income, err := db.UpdateAdditionalIncome(r.Context(), pool, userID, id, req.Label, req.Amount)
		if err != nil {
			log.Printf("ERROR: Failed to update additional income - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "additional income not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(income)
	}
}

func DeleteAdditionalIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteAdditionalIncome(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete additional income - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "additional income not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "additional income deleted",
		})
	}
}
