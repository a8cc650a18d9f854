package models

import "time"

type Goal struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	TargetAmount string     `json:"target_amount"`
	TargetDate   *time.Time `json:"target_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

// GoalWithProgress is a goal plus the derived numbers the goals page shows.
// Progress sums the lifetime balances of the linked accounts; MonthlyNeeded
// is nil when no projection applies (no target date, date passed, goal met).
type GoalWithProgress struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  string     `json:"target_amount"`
	TargetDate    *time.Time `json:"target_date"`
	AccountIDs    []string   `json:"account_ids"`
	Progress      float64    `json:"progress"`
	Percent       float64    `json:"percent"`
	MonthlyNeeded *float64   `json:"monthly_needed"`
}
