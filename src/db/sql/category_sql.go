package db

import (
	"context"
	"fmt"
	"monthwise-server/src/db"
	"monthwise-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Every user starts with the same six categories, seeded on the first
// category read that finds none.
var defaultCategories = []struct {
	Name string
	Type string
}{
	{"Utilities", "utility"},
	{"Transportation", "misc"},
	{"Food", "misc"},
	{"Debt payments", "debt"},
	{"Savings contributions", "savings"},
	{"Misc", "misc"},
}

func categoryCacheKey(userID string) string {
	return "categories:" + userID
}

// GetCategories returns the user's expense categories ordered by name,
// seeding the defaults first if the user has none yet.
func GetCategories(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.ExpenseCategory, error) {
	cacheKey := categoryCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if categories, ok := cached.([]models.ExpenseCategory); ok {
			return categories, nil
		}
	}

	categories, err := listCategories(ctx, pool, userID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		if err := seedDefaultCategories(ctx, pool, userID); err != nil {
			return nil, err
		}
		categories, err = listCategories(ctx, pool, userID)
		if err != nil {
			return nil, err
		}
	}

	db.SetCategoryCache(cacheKey, categories)
	return categories, nil
}

func listCategories(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.ExpenseCategory, error) {
	query := `
		SELECT id, user_id, name, type
		FROM expense_categories
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.ExpenseCategory
	for rows.Next() {
		var c models.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func seedDefaultCategories(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	query := `
		INSERT INTO expense_categories (id, user_id, name, type)
		VALUES ($1, $2, $3, $4)
	`
	for _, c := range defaultCategories {
		if _, err := pool.Exec(ctx, query, uuid.NewString(), userID, c.Name, c.Type); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Name, err)
		}
	}
	return nil
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, userID, name, categoryType string) (*models.ExpenseCategory, error) {
	query := `
		INSERT INTO expense_categories (id, user_id, name, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, type
	`
	var c models.ExpenseCategory
	err := pool.QueryRow(ctx, query, uuid.NewString(), userID, name, categoryType).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Type)
	if err != nil {
		return nil, err
	}
	db.DelCategoryCache(categoryCacheKey(userID))
	return &c, nil
}

func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, userID, id string) error {
	query := `DELETE FROM expense_categories WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("category not found")
	}
	db.DelCategoryCache(categoryCacheKey(userID))
	return nil
}
