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

func GetSubscriptions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		subscriptions, err := db.GetSubscriptions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get subscriptions - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"subscriptions": subscriptions,
			"monthly_total": analytics.SubscriptionsTotal(subscriptions),
		})
	}
}

func CreateSubscription(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name       string `json:"name"`
			Amount     string `json:"amount"`
			BillingDay *int   `json:"billing_day"`
			IsActive   *bool  `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create subscription request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "name and a valid amount are required", http.StatusBadRequest)
			return
		}
		if req.BillingDay != nil && !util.ValidateBillingDay(*req.BillingDay) {
			http.Error(w, "billing_day must be between 1 and 31", http.StatusBadRequest)
			return
		}

		sub, err := db.CreateSubscription(r.Context(), pool, &models.Subscription{
			UserID:     userID,
			Name:       req.Name,
			Amount:     req.Amount,
			BillingDay: req.BillingDay,
			IsActive:   req.IsActive,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create subscription - user_id: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Subscription created - User: %s, ID: %s", userID, sub.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sub)
	}
}

func UpdateSubscription(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		var req struct {
			Name       string `json:"name"`
			Amount     string `json:"amount"`
			BillingDay *int   `json:"billing_day"`
			IsActive   *bool  `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update subscription request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || !util.ValidateAmount(req.Amount) {
			http.Error(w, "name and a valid amount are required", http.StatusBadRequest)
			return
		}
		if req.BillingDay != nil && !util.ValidateBillingDay(*req.BillingDay) {
			http.Error(w, "billing_day must be between 1 and 31", http.StatusBadRequest)
			return
		}

		sub, err := db.UpdateSubscription(r.Context(), pool, &models.Subscription{
			ID:         id,
			UserID:     userID,
			Name:       req.Name,
			Amount:     req.Amount,
			BillingDay: req.BillingDay,
			IsActive:   req.IsActive,
		})
		if err != nil {
			log.Printf("ERROR: Failed to update subscription - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "subscription not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sub)
	}
}

func DeleteSubscription(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "id")

		if err := db.DeleteSubscription(r.Context(), pool, userID, id); err != nil {
			log.Printf("ERROR: Failed to delete subscription - user_id: %s, id: %s: %v", userID, id, err)
			http.Error(w, "subscription not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "subscription deleted",
		})
	}
}
