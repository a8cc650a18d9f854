package db

import (
	"context"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetIncomeForMonth returns the month's primary income row, or nil when the
// month has none.
func GetIncomeForMonth(ctx context.Context, pool *pgxpool.Pool, userID, monthID string) (*models.Income, error) {
	query := `
		SELECT id, user_id, month_id, gross_income, tax_deduction, nis_deduction, other_deductions, net_income, created_at
		FROM income
		WHERE user_id = $1 AND month_id = $2
	`
	var inc models.Income
	err := pool.QueryRow(ctx, query, userID, monthID).Scan(
		&inc.ID,
		&inc.UserID,
		&inc.MonthID,
		&inc.GrossIncome,
		&inc.TaxDeduction,
		&inc.NisDeduction,
		&inc.OtherDeductions,
		&inc.NetIncome,
		&inc.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inc, nil
}

type IncomeInput struct {
	GrossIncome     string `json:"gross_income"`
	TaxDeduction    string `json:"tax_deduction"`
	NisDeduction    string `json:"nis_deduction"`
	OtherDeductions string `json:"other_deductions"`
	NetIncome       string `json:"net_income"`
}

// UpsertIncome creates or replaces the month's single primary income row. Net
// is stored as submitted, not derived from the other fields.
func UpsertIncome(ctx context.Context, pool *pgxpool.Pool, userID, monthID string, data IncomeInput) (*models.Income, error) {
	query := `
		INSERT INTO income (id, user_id, month_id, gross_income, tax_deduction, nis_deduction, other_deductions, net_income)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, month_id) DO UPDATE
		SET gross_income = EXCLUDED.gross_income,
		    tax_deduction = EXCLUDED.tax_deduction,
		    nis_deduction = EXCLUDED.nis_deduction,
		    other_deductions = EXCLUDED.other_deductions,
		    net_income = EXCLUDED.net_income
		RETURNING id, user_id, month_id, gross_income, tax_deduction, nis_deduction, other_deductions, net_income, created_at
	`
	var inc models.Income
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), userID, monthID,
		data.GrossIncome, data.TaxDeduction, data.NisDeduction, data.OtherDeductions, data.NetIncome,
	).Scan(
		&inc.ID,
		&inc.UserID,
		&inc.MonthID,
		&inc.GrossIncome,
		&inc.TaxDeduction,
		&inc.NisDeduction,
		&inc.OtherDeductions,
		&inc.NetIncome,
		&inc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

// HasAnyIncomeForMonth reports whether the month has a primary income row or
// any additional-income rows. It gates the carry-forward copy.
func HasAnyIncomeForMonth(ctx context.Context, pool *pgxpool.Pool, userID, monthID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM income WHERE user_id = $1 AND month_id = $2)
		    OR EXISTS (SELECT 1 FROM additional_income WHERE user_id = $1 AND month_id = $2)
	`
	var hasAny bool
	if err := pool.QueryRow(ctx, query, userID, monthID).Scan(&hasAny); err != nil {
		return false, err
	}
	return hasAny, nil
}

// carriedIncome builds the target month's copy of a primary income row with a
// fresh id. Nil in, nil out: a month without a primary row carries nothing.
func carriedIncome(src *models.Income, targetMonthID string) *models.Income {
	if src == nil {
		return nil
	}
	return &models.Income{
		ID:              uuid.NewString(),
		UserID:          src.UserID,
		MonthID:         targetMonthID,
		GrossIncome:     src.GrossIncome,
		TaxDeduction:    src.TaxDeduction,
		NisDeduction:    src.NisDeduction,
		OtherDeductions: src.OtherDeductions,
		NetIncome:       src.NetIncome,
	}
}

// carriedAdditional builds target-month copies of every additional-income row.
func carriedAdditional(extras []models.AdditionalIncome, targetMonthID string) []models.AdditionalIncome {
	copies := make([]models.AdditionalIncome, 0, len(extras))
	for _, e := range extras {
		copies = append(copies, models.AdditionalIncome{
			ID:      uuid.NewString(),
			UserID:  e.UserID,
			MonthID: targetMonthID,
			Label:   e.Label,
			Amount:  e.Amount,
		})
	}
	return copies
}

// CopyIncomeFromMonth copies the source month's primary income row and all of
// its additional-income rows into the target month. One-directional, one-time:
// the caller only invokes it when the target month has no income at all.
func CopyIncomeFromMonth(ctx context.Context, pool *pgxpool.Pool, userID, sourceMonthID, targetMonthID string) error {
	primary, err := GetIncomeForMonth(ctx, pool, userID, sourceMonthID)
	if err != nil {
		return err
	}
	if copied := carriedIncome(primary, targetMonthID); copied != nil {
		insert := `
			INSERT INTO income (id, user_id, month_id, gross_income, tax_deduction, nis_deduction, other_deductions, net_income)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err = pool.Exec(ctx, insert,
			copied.ID, userID, copied.MonthID,
			copied.GrossIncome, copied.TaxDeduction, copied.NisDeduction, copied.OtherDeductions, copied.NetIncome,
		)
		if err != nil {
			return err
		}
	}

	extras, err := GetAdditionalIncomeForMonth(ctx, pool, userID, sourceMonthID)
	if err != nil {
		return err
	}
	for _, copied := range carriedAdditional(extras, targetMonthID) {
		insert := `
			INSERT INTO additional_income (id, user_id, month_id, label, amount)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := pool.Exec(ctx, insert, copied.ID, userID, copied.MonthID, copied.Label, copied.Amount); err != nil {
			return err
		}
	}
	return nil
}

// GetIncomeForMonths returns the primary income rows for a set of months.
func GetIncomeForMonths(ctx context.Context, pool *pgxpool.Pool, userID string, monthIDs []string) ([]models.Income, error) {
	if len(monthIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, user_id, month_id, gross_income, tax_deduction, nis_deduction, other_deductions, net_income, created_at
		FROM income
		WHERE user_id = $1 AND month_id = ANY($2)
	`
	rows, err := pool.Query(ctx, query, userID, monthIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var inc models.Income
		err := rows.Scan(
			&inc.ID, &inc.UserID, &inc.MonthID,
			&inc.GrossIncome, &inc.TaxDeduction, &inc.NisDeduction, &inc.OtherDeductions, &inc.NetIncome,
			&inc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, inc)
	}
	return incomes, rows.Err()
}
