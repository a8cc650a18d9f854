package models

import "time"

type Subscription struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Amount     string    `json:"amount"`
	BillingDay *int      `json:"billing_day"`
	IsActive   *bool     `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
