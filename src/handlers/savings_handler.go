package handlers

import (
	"encoding/json"
	"log"
	"monthwise-server/src/analytics"
	db "monthwise-server/src/db/sql"
	"monthwise-server/src/models"
	"monthwise-server/src/util"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetSavingsAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		accounts, err := db.GetSavingsAccounts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings accounts - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Lifetime balances fold every transaction ever posted, not just
		// the viewing month's.
		var transactions []models.SavingsTransaction
		for _, account := range accounts {
			rows, err := db.GetSavingsTransactionsForAccount(r.Context(), pool, userID, account.ID)
			if err != nil {
				log.Printf("ERROR: Failed to get transactions for account - user_id: %s, account_id: %s: %v", userID, account.ID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			transactions = append(transactions, rows...)
		}

		balances := analytics.BalancesByAccount(accounts, transactions)

		result := make([]models.AccountWithBalance, 0, len(accounts))
		for _, account := range accounts {
			result = append(result, models.AccountWithBalance{
				ID:             account.ID,
				Name:           account.Name,
				InitialBalance: account.InitialBalance,
				Balance:        balances[account.ID],
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func CreateSavingsAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name           string `json:"name"`
			InitialBalance string `json:"initial_balance"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create savings account request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.InitialBalance) {
			http.Error(w, "name and a valid initial balance are required", http.StatusBadRequest)
			return
		}

		account, err := db.CreateSavingsAccount(r.Context(), pool, userID, req.Name, req.InitialBalance)
		if err != nil {
			log.Printf("ERROR: Failed to create savings account - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Savings account created - User: %s, ID: %s", userID, account.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(account)
	}
}

func UpdateSavingsAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		var req struct {
			Name           string `json:"name"`
			InitialBalance string `json:"initial_balance"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update savings account request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.InitialBalance) {
			http.Error(w, "name and a valid initial balance are required", http.StatusBadRequest)
			return
		}

		account, err := db.UpdateSavingsAccount(r.Context(), pool, userID, id, req.Name, req.InitialBalance)
		if err != nil {
			log.Printf("ERROR: Failed to update savings account - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "savings account not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(account)
	}
}

func DeleteSavingsAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteSavingsAccount(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete savings account - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "savings account not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Savings account deleted - User: %s, ID: %s", userID, id)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "savings account deleted",
		})
	}
}

func GetSavingsTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		month, err := resolveMonth(r, pool, userID)
		if err != nil {
			if err == errInvalidMonth {
				http.Error(w, "invalid month or year", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to resolve month for savings transactions - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		transactions, err := db.GetSavingsTransactionsForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings transactions - user_id: %s, month_id: %s: %v", userID, month.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"month":        month,
			"transactions": transactions,
			"contribution": analytics.MonthContribution(transactions),
		})
	}
}

func CreateSavingsTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Month     int    `json:"month"`
			Year      int    `json:"year"`
			AccountID string `json:"account_id"`
			Amount    string `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create savings transaction request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateMonth(req.Month) || req.Year <= 0 {
			http.Error(w, "invalid month or year", http.StatusBadRequest)
			return
		}
		if req.AccountID == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "account_id and a valid amount are required", http.StatusBadRequest)
			return
		}

		month, err := db.GetOrCreateMonth(r.Context(), pool, userID, req.Month, req.Year)
		if err != nil {
			log.Printf("ERROR: Failed to resolve month for savings transaction - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		transaction, err := db.CreateSavingsTransaction(r.Context(), pool, userID, req.AccountID, month.ID, req.Amount)
		if err != nil {
			log.Printf("ERROR: Failed to create savings transaction - user_id: %s, account_id: %s: %v", userID, req.AccountID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Savings transaction created - User: %s, ID: %s", userID, transaction.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(transaction)
	}
}

func DeleteSavingsTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteSavingsTransaction(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete savings transaction - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "savings transaction not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "savings transaction deleted",
		})
	}
}
