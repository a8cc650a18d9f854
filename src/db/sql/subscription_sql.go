package db

import (
	"context"
	"fmt"
	"monthwise-server/src/db"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func subscriptionCacheKey(userID string) string {
	return "subscriptions:" + userID
}

func GetSubscriptions(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Subscription, error) {
	cacheKey := subscriptionCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if subs, ok := cached.([]models.Subscription); ok {
			return subs, nil
		}
	}

	query := `
		SELECT id, user_id, name, amount, billing_day, is_active, created_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var s models.Subscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Amount, &s.BillingDay, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetSubscriptionCache(cacheKey, subs)
	return subs, nil
}

func CreateSubscription(ctx context.Context, pool *pgxpool.Pool, sub *models.Subscription) (*models.Subscription, error) {
	isActive := true
	if sub.IsActive != nil {
		isActive = *sub.IsActive
	}
	query := `
		INSERT INTO subscriptions (id, user_id, name, amount, billing_day, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, amount, billing_day, is_active, created_at
	`
	var s models.Subscription
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), sub.UserID, sub.Name, sub.Amount, sub.BillingDay, isActive,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Amount, &s.BillingDay, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	db.DelSubscriptionCache(subscriptionCacheKey(sub.UserID))
	return &s, nil
}

func UpdateSubscription(ctx context.Context, pool *pgxpool.Pool, sub *models.Subscription) (*models.Subscription, error) {
	isActive := true
	if sub.IsActive != nil {
		isActive = *sub.IsActive
	}
	query := `
		UPDATE subscriptions
		SET name = $1, amount = $2, billing_day = $3, is_active = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, amount, billing_day, is_active, created_at
	`
	var s models.Subscription
	err := pool.QueryRow(ctx, query,
		sub.Name, sub.Amount, sub.BillingDay, isActive, sub.ID, sub.UserID,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Amount, &s.BillingDay, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	db.DelSubscriptionCache(subscriptionCacheKey(sub.UserID))
	return &s, nil
}

func DeleteSubscription(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("subscription not found")
	}
	db.DelSubscriptionCache(subscriptionCacheKey(userID))
	return nil
}
