package models

import "time"

// Debt is informational only; no amortization schedule is computed.
type Debt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Principal      string    `json:"principal"`
	InterestRate   *string   `json:"interest_rate"`
	MonthlyPayment string    `json:"monthly_payment"`
	CreatedAt      time.Time `json:"created_at"`
}
