package db

import (
	"context"
	"fmt"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetExpensesForMonth returns the month's expenses joined with their category
// names, oldest first.
func GetExpensesForMonth(ctx context.Context, pool *pgxpool.Pool, userID, monthID string) ([]models.ExpenseWithCategory, error) {
	query := `
		SELECT e.id, e.name, e.amount, e.category_id, c.name
		FROM expenses e
		INNER JOIN expense_categories c ON e.category_id = c.id
		WHERE e.user_id = $1 AND e.month_id = $2
		ORDER BY e.created_at
	`
	rows, err := pool.Query(ctx, query, userID, monthID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.ExpenseWithCategory
	for rows.Next() {
		var e models.ExpenseWithCategory
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.CategoryID, &e.CategoryName); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func GetExpensesForMonths(ctx context.Context, pool *pgxpool.Pool, userID string, monthIDs []string) ([]models.Expense, error) {
	if len(monthIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, user_id, month_id, category_id, name, amount, created_at
		FROM expenses
		WHERE user_id = $1 AND month_id = ANY($2)
	`
	rows, err := pool.Query(ctx, query, userID, monthIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.MonthID, &e.CategoryID, &e.Name, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (id, user_id, month_id, category_id, name, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, month_id, category_id, name, amount, created_at
	`
	var e models.Expense
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), expense.UserID, expense.MonthID, expense.CategoryID, expense.Name, expense.Amount,
	).Scan(&e.ID, &e.UserID, &e.MonthID, &e.CategoryID, &e.Name, &e.Amount, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func UpdateExpense(ctx context.Context, pool *pgxpool.Pool, userID, id, name, amount, categoryID string) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET name = $1, amount = $2, category_id = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, month_id, category_id, name, amount, created_at
	`
	var e models.Expense
	err := pool.QueryRow(ctx, query, name, amount, categoryID, id, userID).
		Scan(&e.ID, &e.UserID, &e.MonthID, &e.CategoryID, &e.Name, &e.Amount, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}
