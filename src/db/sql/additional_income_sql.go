package db

import (
	"context"
	"fmt"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAdditionalIncomeForMonth(ctx context.Context, pool *pgxpool.Pool, userID, monthID string) ([]models.AdditionalIncome, error) {
	query := `
		SELECT id, user_id, month_id, label, amount, created_at
		FROM additional_income
		WHERE user_id = $1 AND month_id = $2
		ORDER BY created_at
	`
	rows, err := pool.Query(ctx, query, userID, monthID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AdditionalIncome
	for rows.Next() {
		var a models.AdditionalIncome
		if err := rows.Scan(&a.ID, &a.UserID, &a.MonthID, &a.Label, &a.Amount, &a.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}

func GetAdditionalIncomeForMonths(ctx context.Context, pool *pgxpool.Pool, userID string, monthIDs []string) ([]models.AdditionalIncome, error) {
	if len(monthIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, user_id, month_id, label, amount, created_at
		FROM additional_income
		WHERE user_id = $1 AND month_id = ANY($2)
	`
	rows, err := pool.Query(ctx, query, userID, monthIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AdditionalIncome
	for rows.Next() {
		var a models.AdditionalIncome
		if err := rows.Scan(&a.ID, &a.UserID, &a.MonthID, &a.Label, &a.Amount, &a.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}

func CreateAdditionalIncome(ctx context.Context, pool *pgxpool.Pool, userID, monthID, label, amount string) (*models.AdditionalIncome, error) {
	query := `
		INSERT INTO additional_income (id, user_id, month_id, label, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, month_id, label, amount, created_at
	`
	var a models.AdditionalIncome
	err := pool.QueryRow(ctx, query, uuid.NewString(), userID, monthID, label, amount).
		Scan(&a.ID, &a.UserID, &a.MonthID, &a.Label, &a.Amount, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func UpdateAdditionalIncome(ctx context.Context, pool *pgxpool.Pool, userID, id, label, amount string) (*models.AdditionalIncome, error) {
	query := `
		UPDATE additional_income
		SET label = $1, amount = $2
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, month_id, label, amount, created_at
	`
	var a models.AdditionalIncome
	err := pool.QueryRow(ctx, query, label, amount, id, userID).
		Scan(&a.ID, &a.UserID, &a.MonthID, &a.Label, &a.Amount, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func DeleteAdditionalIncome(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM additional_income WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("additional income not found")
	}
	return nil
}
