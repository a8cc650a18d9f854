package models

import "time"

type ExpenseCategory struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type Expense struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MonthID    string    `json:"month_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Amount     string    `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExpenseWithCategory is an expense joined with its category name, the shape
// the expenses page and the aggregation folds consume.
type ExpenseWithCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}
