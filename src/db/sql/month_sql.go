package db

import (
	"context"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetOrCreateMonth resolves the singleton month bucket for (user, month, year),
// inserting it on first access. Two concurrent first-time calls race on the
// insert; the loser's ON CONFLICT DO NOTHING returns no row and we fall back
// to re-reading the winner's row.
func GetOrCreateMonth(ctx context.Context, pool *pgxpool.Pool, userID string, month, year int) (*models.Month, error) {
	m, err := getMonth(ctx, pool, userID, month, year)
	if err == nil {
		return m, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	insert := `
		INSERT INTO months (id, user_id, month, year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month, year) DO NOTHING
		RETURNING id, user_id, month, year, created_at
	`
	var created models.Month
	err = pool.QueryRow(ctx, insert, uuid.NewString(), userID, month, year).Scan(
		&created.ID,
		&created.UserID,
		&created.Month,
		&created.Year,
		&created.CreatedAt,
	)
	if err == nil {
		return &created, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	// Lost the creation race; the unique row exists now.
	return getMonth(ctx, pool, userID, month, year)
}

func getMonth(ctx context.Context, pool *pgxpool.Pool, userID string, month, year int) (*models.Month, error) {
	query := `
		SELECT id, user_id, month, year, created_at
		FROM months
		WHERE user_id = $1 AND month = $2 AND year = $3
	`
	var m models.Month
	err := pool.QueryRow(ctx, query, userID, month, year).Scan(
		&m.ID,
		&m.UserID,
		&m.Month,
		&m.Year,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// PreviousMonth steps one calendar month back; January wraps to December of
// the prior year.
func PreviousMonth(month, year int) (int, int) {
	if month <= 1 {
		return 12, year - 1
	}
	return month - 1, year
}

func GetPreviousMonth(ctx context.Context, pool *pgxpool.Pool, userID string, month, year int) (*models.Month, error) {
	prevMonth, prevYear := PreviousMonth(month, year)
	return GetOrCreateMonth(ctx, pool, userID, prevMonth, prevYear)
}

// GetMonthsForUser returns up to limit months, newest first.
func GetMonthsForUser(ctx context.Context, pool *pgxpool.Pool, userID string, limit int) ([]models.Month, error) {
	query := `
		SELECT id, user_id, month, year, created_at
		FROM months
		WHERE user_id = $1
		ORDER BY year DESC, month DESC
		LIMIT $2
	`
	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []models.Month
	for rows.Next() {
		var m models.Month
		if err := rows.Scan(&m.ID, &m.UserID, &m.Month, &m.Year, &m.CreatedAt); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}
