package db

import (
	"context"
	"fmt"
	"monthwise-server/src/models"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetGoals(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, target_date, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.TargetDate, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, userID, name, targetAmount string, targetDate *time.Time) (*models.Goal, error) {
	query := `
		INSERT INTO goals (id, user_id, name, target_amount, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, target_amount, target_date, created_at
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, uuid.NewString(), userID, name, targetAmount, targetDate).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.TargetDate, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, userID, id, name, targetAmount string, targetDate *time.Time) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, target_date = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, target_amount, target_date, created_at
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, name, targetAmount, targetDate, id, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.TargetDate, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGoal removes the goal and, by cascade, its account links.
func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("goal not found")
	}
	return nil
}

// GetGoalAccounts returns the ids of the savings accounts linked to a goal,
// verifying goal ownership through the join.
func GetGoalAccounts(ctx context.Context, pool *pgxpool.Pool, userID, goalID string) ([]string, error) {
	query := `
		SELECT ga.account_id
		FROM goal_accounts ga
		INNER JOIN goals g ON ga.goal_id = g.id
		WHERE g.user_id = $1 AND ga.goal_id = $2
	`
	rows, err := pool.Query(ctx, query, userID, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accountIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		accountIDs = append(accountIDs, id)
	}
	return accountIDs, rows.Err()
}

// LinkAccountToGoal is idempotent: linking an already-linked pair is a no-op.
func LinkAccountToGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID, accountID string) error {
	if err := checkGoalOwnership(ctx, pool, userID, goalID); err != nil {
		return err
	}
	query := `
		INSERT INTO goal_accounts (goal_id, account_id)
		VALUES ($1, $2)
		ON CONFLICT (goal_id, account_id) DO NOTHING
	`
	_, err := pool.Exec(ctx, query, goalID, accountID)
	return err
}

func UnlinkAccountFromGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID, accountID string) error {
	if err := checkGoalOwnership(ctx, pool, userID, goalID); err != nil {
		return err
	}
	query := `DELETE FROM goal_accounts WHERE goal_id = $1 AND account_id = $2`
	_, err := pool.Exec(ctx, query, goalID, accountID)
	return err
}

func checkGoalOwnership(ctx context.Context, pool *pgxpool.Pool, userID, goalID string) error {
	query := `SELECT 1 FROM goals WHERE id = $1 AND user_id = $2`
	var one int
	err := pool.QueryRow(ctx, query, goalID, userID).Scan(&one)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("goal not found")
	}
	return err
}
