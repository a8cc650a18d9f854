package api

import (
	"monthwise-server/src/ai"
	"monthwise-server/src/config"
	"monthwise-server/src/handlers"
	"monthwise-server/src/middleware"
	"monthwise-server/src/ratelimit"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config, limiter *ratelimit.Limiter, aiClient *ai.Client) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool, cfg.JWTSecret))
		r.Post("/register", handlers.Register(pool, cfg.JWTSecret))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(cfg.JWTSecret)).Group(func(r chi.Router) {
			// User
			r.Get("/user", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteUser(pool))

			// Income
			r.Get("/income", handlers.FetchIncome(pool))
			r.Put("/income", handlers.UpsertIncome(pool))
			r.Post("/income/additional", handlers.CreateAdditionalIncome(pool))
			r.Put("/income/additional/{id}", handlers.UpdateAdditionalIncome(pool))
			r.Delete("/income/additional/{id}", handlers.DeleteAdditionalIncome(pool))

			// Expenses
			r.Get("/expense-categories", handlers.GetCategories(pool))
			r.Post("/expense-categories", handlers.CreateCategory(pool))
			r.Delete("/expense-categories/{id}", handlers.DeleteCategory(pool))
			r.Get("/expenses", handlers.GetExpenses(pool))
			r.Post("/expenses", handlers.CreateExpense(pool))
			r.Put("/expenses/{id}", handlers.UpdateExpense(pool))
			r.Delete("/expenses/{id}", handlers.DeleteExpense(pool))

			// Savings
			r.Get("/savings/accounts", handlers.GetSavingsAccounts(pool))
			r.Post("/savings/accounts", handlers.CreateSavingsAccount(pool))
			r.Put("/savings/accounts/{id}", handlers.UpdateSavingsAccount(pool))
			r.Delete("/savings/accounts/{id}", handlers.DeleteSavingsAccount(pool))
			r.Get("/savings/transactions", handlers.GetSavingsTransactions(pool))
			r.Post("/savings/transactions", handlers.CreateSavingsTransaction(pool))
			r.Delete("/savings/transactions/{id}", handlers.DeleteSavingsTransaction(pool))

			// Goals
			r.Get("/goals", handlers.GetGoals(pool))
			r.Post("/goals", handlers.CreateGoal(pool))
			r.Put("/goals/{id}", handlers.UpdateGoal(pool))
			r.Delete("/goals/{id}", handlers.DeleteGoal(pool))
			r.Get("/goals/{goal_id}/accounts", handlers.GetGoalAccounts(pool))
			r.Post("/goals/{goal_id}/accounts/{account_id}", handlers.LinkGoalAccount(pool))
			r.Delete("/goals/{goal_id}/accounts/{account_id}", handlers.UnlinkGoalAccount(pool))

			// Debts
			r.Get("/debts", handlers.GetDebts(pool))
			r.Post("/debts", handlers.CreateDebt(pool))
			r.Put("/debts/{id}", handlers.UpdateDebt(pool))
			r.Delete("/debts/{id}", handlers.DeleteDebt(pool))

			// Subscriptions
			r.Get("/subscriptions", handlers.GetSubscriptions(pool))
			r.Post("/subscriptions", handlers.CreateSubscription(pool))
			r.Put("/subscriptions/{id}", handlers.UpdateSubscription(pool))
			r.Delete("/subscriptions/{id}", handlers.DeleteSubscription(pool))

			// Analytics
			r.Get("/overview", handlers.GetOverview(pool))
			r.Get("/changes", handlers.GetChanges(pool))

			// AI insights
			r.Post("/ai", handlers.CreateInsight(pool, limiter, aiClient))
			r.Get("/ai/insights", handlers.GetInsights(pool))
		})
	})

	return r
}
