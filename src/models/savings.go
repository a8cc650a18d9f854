package models

import "time"

type SavingsAccount struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	InitialBalance string    `json:"initial_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// SavingsTransaction is a signed contribution or withdrawal posted to an
// account within one month bucket.
type SavingsTransaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AccountID string    `json:"account_id"`
	MonthID   string    `json:"month_id"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type SavingsTransactionWithAccount struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Amount      string `json:"amount"`
}

// AccountWithBalance pairs an account with its lifetime balance: initial
// balance plus every transaction ever posted, independent of the viewing month.
type AccountWithBalance struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	InitialBalance string  `json:"initial_balance"`
	Balance        float64 `json:"balance"`
}
