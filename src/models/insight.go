package models

import "time"

// AiInsight is an append-only prompt/response log entry. MonthID is nulled
// rather than cascaded if the month it referenced is ever removed.
type AiInsight struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MonthID   *string   `json:"month_id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
