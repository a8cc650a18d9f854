package handlers

import (
	"encoding/json"
	"log"
	"monthwise-server/src/analytics"
	db "monthwise-server/src/db/sql"
	"monthwise-server/src/models"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

const trendWindow = 6

// monthSavings fills the savings side of the month totals, one fold per month
// over that month's posted transactions.
func monthSavings(r *http.Request, pool *pgxpool.Pool, userID string, months []models.Month, totals *analytics.MonthTotals) error {
	for _, mo := range months {
		transactions, err := db.GetSavingsTransactionsForMonth(r.Context(), pool, userID, mo.ID)
		if err != nil {
			return err
		}
		totals.Savings[mo.ID] = analytics.MonthContribution(transactions)
	}
	return nil
}

func GetOverview(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		month, err := resolveMonth(r, pool, userID)
		if err != nil {
			if err == errInvalidMonth {
				http.Error(w, "invalid month or year", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to resolve month for overview - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		income, err := db.GetIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get income for overview - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		additional, err := db.GetAdditionalIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get additional income for overview - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		expenses, err := db.GetExpensesForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for overview - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		subscriptions, err := db.GetSubscriptions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get subscriptions for overview - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		accounts, err := db.GetSavingsAccounts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings accounts for overview - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		var transactions []models.SavingsTransaction
		for _, account := range accounts {
			rows, err := db.GetSavingsTransactionsForAccount(r.Context(), pool, userID, account.ID)
			if err != nil {
				log.Printf("ERROR: Failed to get transactions for overview - user_id: %s, account_id: %s: %v", userID, account.ID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			transactions = append(transactions, rows...)
		}
		balances := analytics.BalancesByAccount(accounts, transactions)

		savingsAccounts := make([]models.AccountWithBalance, 0, len(accounts))
		var savingsTotal float64
		for _, account := range accounts {
			savingsAccounts = append(savingsAccounts, models.AccountWithBalance{
				ID:             account.ID,
				Name:           account.Name,
				InitialBalance: account.InitialBalance,
				Balance:        balances[account.ID],
			})
			savingsTotal += balances[account.ID]
		}

		// Trend over the most recent tracked months, charted oldest-first.
		months, err := db.GetMonthsForUser(r.Context(), pool, userID, trendWindow)
		if err != nil {
			log.Printf("ERROR: Failed to get months for overview trend - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		monthIDs := make([]string, 0, len(months))
		for _, mo := range months {
			monthIDs = append(monthIDs, mo.ID)
		}

		trendIncomes, err := db.GetIncomeForMonths(r.Context(), pool, userID, monthIDs)
		if err != nil {
			log.Printf("ERROR: Failed to get trend incomes - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		trendAdditional, err := db.GetAdditionalIncomeForMonths(r.Context(), pool, userID, monthIDs)
		if err != nil {
			log.Printf("ERROR: Failed to get trend additional income - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		trendExpenses, err := db.GetExpensesForMonths(r.Context(), pool, userID, monthIDs)
		if err != nil {
			log.Printf("ERROR: Failed to get trend expenses - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		totals := analytics.FoldMonthTotals(trendIncomes, trendAdditional, trendExpenses)
		if err := monthSavings(r, pool, userID, months, &totals); err != nil {
			log.Printf("ERROR: Failed to fold trend savings - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"month":               month,
			"income_total":        analytics.IncomeTotal(income, additional),
			"expense_total":       analytics.ExpenseTotal(expenses),
			"expense_breakdown":   analytics.ExpenseBreakdown(expenses),
			"savings_accounts":    savingsAccounts,
			"savings_total":       savingsTotal,
			"subscriptions_total": analytics.SubscriptionsTotal(subscriptions),
			"trend":               analytics.BuildTrend(months, totals),
		})
	}
}
