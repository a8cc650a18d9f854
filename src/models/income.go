package models

import "time"

// Income is the single primary income row a month may have. Net is stored
// exactly as submitted; the server never recomputes it from the deductions.
type Income struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	MonthID         string    `json:"month_id"`
	GrossIncome     string    `json:"gross_income"`
	TaxDeduction    string    `json:"tax_deduction"`
	NisDeduction    string    `json:"nis_deduction"`
	OtherDeductions string    `json:"other_deductions"`
	NetIncome       string    `json:"net_income"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdditionalIncome struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MonthID   string    `json:"month_id"`
	Label     string    `json:"label"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
