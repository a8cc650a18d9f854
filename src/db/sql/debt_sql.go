package db

import (
	"context"
	"fmt"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetDebts(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Debt, error) {
	query := `
		SELECT id, user_id, name, principal, interest_rate, monthly_payment, created_at
		FROM debts
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Principal, &d.InterestRate, &d.MonthlyPayment, &d.CreatedAt); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func CreateDebt(ctx context.Context, pool *pgxpool.Pool, debt *models.Debt) (*models.Debt, error) {
	query := `
		INSERT INTO debts (id, user_id, name, principal, interest_rate, monthly_payment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, principal, interest_rate, monthly_payment, created_at
	`
	var d models.Debt
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), debt.UserID, debt.Name, debt.Principal, debt.InterestRate, debt.MonthlyPayment,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Principal, &d.InterestRate, &d.MonthlyPayment, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func UpdateDebt(ctx context.Context, pool *pgxpool.Pool, debt *models.Debt) (*models.Debt, error) {
	query := `
		UPDATE debts
		SET name = $1, principal = $2, interest_rate = $3, monthly_payment = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, principal, interest_rate, monthly_payment, created_at
	`
	var d models.Debt
	err := pool.QueryRow(ctx, query,
		debt.Name, debt.Principal, debt.InterestRate, debt.MonthlyPayment, debt.ID, debt.UserID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Principal, &d.InterestRate, &d.MonthlyPayment, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func DeleteDebt(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM debts WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("debt not found")
	}
	return nil
}
