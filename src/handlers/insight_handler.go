package handlers

import (
	"encoding/json"
	"log"
	"monthwise-server/src/ai"
	"monthwise-server/src/analytics"
	db "monthwise-server/src/db/sql"
	"monthwise-server/src/models"
	"monthwise-server/src/ratelimit"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insightPreamble = `You are a helpful personal finance assistant. The user tracks income, expenses, savings, debts, and subscriptions. Answer briefly based on the following context. Be concise and actionable.`

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildInsightContext summarizes one month's income and expenses as the
// system-prompt context for the completion call.
func BuildInsightContext(income *models.Income, additional []models.AdditionalIncome, expenses []models.ExpenseWithCategory) string {
	var parts []string

	if income == nil && len(additional) == 0 {
		parts = append(parts, "No income recorded this month.")
	} else {
		var incomeDesc string
		if income != nil {
			incomeDesc = "Primary net: " + income.NetIncome + ". Gross: " + income.GrossIncome +
				", Tax: " + income.TaxDeduction + ", NIS: " + income.NisDeduction +
				", Other: " + income.OtherDeductions + "."
		} else {
			incomeDesc = "No primary income this month."
		}
		if additionalTotal := analytics.AdditionalIncomeTotal(additional); additionalTotal > 0 {
			incomeDesc += " Additional income: " + formatMoney(additionalTotal) + "."
		}
		parts = append(parts, incomeDesc)
	}

	parts = append(parts, "Total expenses this month: "+formatMoney(analytics.ExpenseTotal(expenses))+".")

	if breakdown := analytics.ExpenseBreakdown(expenses); len(breakdown) > 0 {
		entries := make([]string, 0, len(breakdown))
		for _, c := range breakdown {
			entries = append(entries, c.Name+": "+formatMoney(c.Value))
		}
		parts = append(parts, "By category: "+strings.Join(entries, "; ")+".")
	}

	return strings.Join(parts, " ")
}

func jsonError(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func CreateInsight(pool *pgxpool.Pool, limiter *ratelimit.Limiter, client *ai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		ok, remaining := limiter.Check(userID)
		if !ok {
			jsonError(w, http.StatusTooManyRequests, map[string]interface{}{
				"error":     "Rate limit exceeded. Try again later.",
				"remaining": 0,
			})
			return
		}

		var body struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonError(w, http.StatusBadRequest, map[string]interface{}{"error": "Invalid JSON"})
			return
		}
		prompt := strings.TrimSpace(body.Prompt)
		if prompt == "" {
			jsonError(w, http.StatusBadRequest, map[string]interface{}{"error": "Missing prompt"})
			return
		}

		if !client.Enabled() {
			jsonError(w, http.StatusServiceUnavailable, map[string]interface{}{
				"error": "AI insights are not configured. Set OPENAI_API_KEY.",
			})
			return
		}

		now := time.Now()
		month, err := db.GetOrCreateMonth(r.Context(), pool, userID, int(now.Month()), now.Year())
		if err != nil {
			log.Printf("ERROR: Failed to resolve month for insight - user_id: %s: %v", userID, err)
			jsonError(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to get AI response. Please try again.",
			})
			return
		}

		income, err := db.GetIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get income for insight - user_id: %s: %v", userID, err)
			jsonError(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to get AI response. Please try again.",
			})
			return
		}
		additional, err := db.GetAdditionalIncomeForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get additional income for insight - user_id: %s: %v", userID, err)
			jsonError(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to get AI response. Please try again.",
			})
			return
		}
		expenses, err := db.GetExpensesForMonth(r.Context(), pool, userID, month.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for insight - user_id: %s: %v", userID, err)
			jsonError(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to get AI response. Please try again.",
			})
			return
		}

		systemContent := insightPreamble + "\n\nContext: " + BuildInsightContext(income, additional, expenses)

		reply, err := client.Complete(r.Context(), systemContent, prompt)
		if err != nil {
			log.Printf("ERROR: AI completion failed - user_id: %s: %v", userID, err)
			jsonError(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to get AI response. Please try again.",
			})
			return
		}

		if _, err := db.CreateAiInsight(r.Context(), pool, userID, &month.ID, prompt, reply); err != nil {
			log.Printf("ERROR: Failed to persist insight - user_id: %s: %v", userID, err)
			jsonError(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to get AI response. Please try again.",
			})
			return
		}

		log.Printf("INFO: Insight created - User: %s, Remaining: %d", userID, remaining)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response":  reply,
			"remaining": remaining,
		})
	}
}

func GetInsights(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		limit := 20
		if l := r.URL.Query().Get("limit"); l != "" {
			parsed, err := strconv.Atoi(l)
			if err != nil || parsed <= 0 || parsed > 100 {
				http.Error(w, "limit must be between 1 and 100", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		insights, err := db.GetAiInsights(r.Context(), pool, userID, limit)
		if err != nil {
			log.Printf("ERROR: Failed to get insights - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(insights)
	}
}
