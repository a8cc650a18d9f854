package handlers

import (
	"encoding/json"
	"log"
	"monthwise-server/src/analytics"
	db "monthwise-server/src/db/sql"
	"monthwise-server/src/models"
	"monthwise-server/src/util"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// parseTargetDate accepts an optional YYYY-MM-DD date string.
func parseTargetDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func GetGoals(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		goals, err := db.GetGoals(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get goals - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		accounts, err := db.GetSavingsAccounts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings accounts for goals - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var transactions []models.SavingsTransaction
		for _, account := range accounts {
			rows, err := db.GetSavingsTransactionsForAccount(r.Context(), pool, userID, account.ID)
			if err != nil {
				log.Printf("ERROR: Failed to get transactions for goals - user_id: %s, account_id: %s: %v", userID, account.ID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			transactions = append(transactions, rows...)
		}

		balances := analytics.BalancesByAccount(accounts, transactions)
		now := time.Now()

		result := make([]models.GoalWithProgress, 0, len(goals))
		for _, goal := range goals {
			accountIDs, err := db.GetGoalAccounts(r.Context(), pool, userID, goal.ID)
			if err != nil {
				log.Printf("ERROR: Failed to get linked accounts - user_id: %s, goal_id: %s: %v", userID, goal.ID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			target := analytics.ParseAmount(goal.TargetAmount)
			progress := analytics.GoalProgress(accountIDs, balances)

			result = append(result, models.GoalWithProgress{
				ID:            goal.ID,
				Name:          goal.Name,
				TargetAmount:  goal.TargetAmount,
				TargetDate:    goal.TargetDate,
				AccountIDs:    accountIDs,
				Progress:      progress,
				Percent:       analytics.GoalPercent(progress, target),
				MonthlyNeeded: analytics.MonthlyNeeded(target, progress, goal.TargetDate, now),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func CreateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name         string `json:"name"`
			TargetAmount string `json:"target_amount"`
			TargetDate   string `json:"target_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create goal request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.TargetAmount) {
			http.Error(w, "name and a valid target amount are required", http.StatusBadRequest)
			return
		}

		targetDate, err := parseTargetDate(req.TargetDate)
		if err != nil {
			http.Error(w, "target_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		goal, err := db.CreateGoal(r.Context(), pool, userID, req.Name, req.TargetAmount, targetDate)
		if err != nil {
			log.Printf("ERROR: Failed to create goal - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Goal created - User: %s, ID: %s", userID, goal.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(goal)
	}
}

func UpdateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		var req struct {
			Name         string `json:"name"`
			TargetAmount string `json:"target_amount"`
			TargetDate   string `json:"target_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update goal request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.TargetAmount) {
			http.Error(w, "name and a valid target amount are required", http.StatusBadRequest)
			return
		}

		targetDate, err := parseTargetDate(req.TargetDate)
		if err != nil {
			http.Error(w, "target_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		goal, err := db.UpdateGoal(r.Context(), pool, userID, id, req.Name, req.TargetAmount, targetDate)
		if err != nil {
			log.Printf("ERROR: Failed to update goal - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goal)
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteGoal(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete goal - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Goal deleted - User: %s, ID: %s", userID, id)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "goal deleted",
		})
	}
}

func GetGoalAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")

		accountIDs, err := db.GetGoalAccounts(r.Context(), pool, userID, goalID)
		if err != nil {
			log.Printf("ERROR: Failed to get goal accounts - user_id: %s, goal_id: %s: %v", userID, goalID, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"account_ids": accountIDs,
		})
	}
}

func LinkGoalAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")
		accountID := chi.URLParam(r, "account_id")

		if err := db.LinkAccountToGoal(r.Context(), pool, userID, goalID, accountID); err != nil {
			log.Printf("ERROR: Failed to link account to goal - user_id: %s, goal_id: %s, account_id: %s: %v", userID, goalID, accountID, err)
			http.Error(w, "goal or account not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Account linked to goal - User: %s, Goal: %s, Account: %s", userID, goalID, accountID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "account linked",
		})
	}
}

func UnlinkGoalAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")
		accountID := chi.URLParam(r, "account_id")

		if err := db.UnlinkAccountFromGoal(r.Context(), pool, userID, goalID, accountID); err != nil {
			log.Printf("ERROR: Failed to unlink account from goal - user_id: %s, goal_id: %s, account_id: %s: %v", userID, goalID, accountID, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Account unlinked from goal - User: %s, Goal: %s, Account: %s", userID, goalID, accountID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "account unlinked",
		})
	}
}
