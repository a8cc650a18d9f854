package handlers

import (
	"encoding/json"
	"log"
	"monthwise-server/src/analytics"
	db "monthwise-server/src/db/sql"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetChanges(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		limit := 12
		if l := r.URL.Query().Get("limit"); l != "" {
			parsed, err := strconv.Atoi(l)
			if err != nil || (parsed != 6 && parsed != 12) {
				http.Error(w, "limit must be 6 or 12", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		months, err := db.GetMonthsForUser(r.Context(), pool, userID, limit)
		if err != nil {
			log.Printf("ERROR: Failed to get months for changes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		monthIDs := make([]string, 0, len(months))
		for _, mo := range months {
			monthIDs = append(monthIDs, mo.ID)
		}

		incomes, err := db.GetIncomeForMonths(r.Context(), pool, userID, monthIDs)
		if err != nil {
			log.Printf("ERROR: Failed to get incomes for changes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		additional, err := db.GetAdditionalIncomeForMonths(r.Context(), pool, userID, monthIDs)
		if err != nil {
			log.Printf("ERROR: Failed to get additional income for changes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		expenses, err := db.GetExpensesForMonths(r.Context(), pool, userID, monthIDs)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for changes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		subscriptions, err := db.GetSubscriptions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get subscriptions for changes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		totals := analytics.FoldMonthTotals(incomes, additional, expenses)
		if err := monthSavings(r, pool, userID, months, &totals); err != nil {
			log.Printf("ERROR: Failed to fold savings for changes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"rows": analytics.BuildChangeRows(months, totals, analytics.SubscriptionsTotal(subscriptions)),
		})
	}
}
