package models

import "time"

// Month is the per-user time bucket every month-scoped entity keys off of.
// At most one row exists per (user, month, year); rows are created lazily
// on first access and never deleted through the API.
type Month struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}
