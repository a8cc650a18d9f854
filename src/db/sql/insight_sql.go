package db

import (
	"context"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateAiInsight appends a prompt/response pair to the user's insight log.
func CreateAiInsight(ctx context.Context, pool *pgxpool.Pool, userID string, monthID *string, prompt, response string) (*models.AiInsight, error) {
	query := `
		INSERT INTO ai_insights (id, user_id, month_id, prompt, response)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, month_id, prompt, response, created_at
	`
	var ins models.AiInsight
	err := pool.QueryRow(ctx, query, uuid.NewString(), userID, monthID, prompt, response).
		Scan(&ins.ID, &ins.UserID, &ins.MonthID, &ins.Prompt, &ins.Response, &ins.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func GetAiInsights(ctx context.Context, pool *pgxpool.Pool, userID string, limit int) ([]models.AiInsight, error) {
	query := `
		SELECT id, user_id, month_id, prompt, response, created_at
		FROM ai_insights
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []models.AiInsight
	for rows.Next() {
		var ins models.AiInsight
		if err := rows.Scan(&ins.ID, &ins.UserID, &ins.MonthID, &ins.Prompt, &ins.Response, &ins.CreatedAt); err != nil {
			return nil, err
		}
		insights = append(insights, ins)
	}
	return insights, rows.Err()
}
