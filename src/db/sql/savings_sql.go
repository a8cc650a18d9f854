package db

import (
	"context"
	"fmt"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetSavingsAccounts(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.SavingsAccount, error) {
	query := `
		SELECT id, user_id, name, initial_balance, created_at
		FROM savings_accounts
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.SavingsAccount
	for rows.Next() {
		var a models.SavingsAccount
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.InitialBalance, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func CreateSavingsAccount(ctx context.Context, pool *pgxpool.Pool, userID, name, initialBalance string) (*models.SavingsAccount, error) {
	if initialBalance == "" {
		initialBalance = "0"
	}
	query := `
		INSERT INTO savings_accounts (id, user_id, name, initial_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, initial_balance, created_at
	`
	var a models.SavingsAccount
	err := pool.QueryRow(ctx, query, uuid.NewString(), userID, name, initialBalance).
		Scan(&a.ID, &a.UserID, &a.Name, &a.InitialBalance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func UpdateSavingsAccount(ctx context.Context, pool *pgxpool.Pool, userID, id, name, initialBalance string) (*models.SavingsAccount, error) {
	query := `
		UPDATE savings_accounts
		SET name = $1, initial_balance = $2
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, name, initial_balance, created_at
	`
	var a models.SavingsAccount
	err := pool.QueryRow(ctx, query, name, initialBalance, id, userID).
		Scan(&a.ID, &a.UserID, &a.Name, &a.InitialBalance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteSavingsAccount also removes the account's transactions and goal links
// through the cascade rules.
func DeleteSavingsAccount(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM savings_accounts WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("savings account not found")
	}
	return nil
}

// GetSavingsTransactionsForMonth returns the transactions posted within one
// month bucket, joined with account names. This is the monthly-contribution
// view, distinct from the lifetime balance.
func GetSavingsTransactionsForMonth(ctx context.Context, pool *pgxpool.Pool, userID, monthID string) ([]models.SavingsTransactionWithAccount, error) {
	query := `
		SELECT t.id, t.account_id, a.name, t.amount
		FROM savings_transactions t
		INNER JOIN savings_accounts a ON t.account_id = a.id
		WHERE t.user_id = $1 AND t.month_id = $2
		ORDER BY t.created_at
	`
	rows, err := pool.Query(ctx, query, userID, monthID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.SavingsTransactionWithAccount
	for rows.Next() {
		var t models.SavingsTransactionWithAccount
		if err := rows.Scan(&t.ID, &t.AccountID, &t.AccountName, &t.Amount); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetSavingsTransactionsForAccount returns every transaction ever posted to
// the account, unbounded by month. Lifetime balances are folded from this.
func GetSavingsTransactionsForAccount(ctx context.Context, pool *pgxpool.Pool, userID, accountID string) ([]models.SavingsTransaction, error) {
	query := `
		SELECT id, user_id, account_id, month_id, amount, created_at
		FROM savings_transactions
		WHERE user_id = $1 AND account_id = $2
		ORDER BY created_at
	`
	rows, err := pool.Query(ctx, query, userID, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.SavingsTransaction
	for rows.Next() {
		var t models.SavingsTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &t.MonthID, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func CreateSavingsTransaction(ctx context.Context, pool *pgxpool.Pool, userID, accountID, monthID, amount string) (*models.SavingsTransaction, error) {
	query := `
		INSERT INTO savings_transactions (id, user_id, account_id, month_id, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, account_id, month_id, amount, created_at
	`
	var t models.SavingsTransaction
	err := pool.QueryRow(ctx, query, uuid.NewString(), userID, accountID, monthID, amount).
		Scan(&t.ID, &t.UserID, &t.AccountID, &t.MonthID, &t.Amount, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func DeleteSavingsTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM savings_transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("savings transaction not found")
	}
	return nil
}
