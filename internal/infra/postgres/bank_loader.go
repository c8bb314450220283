package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"heritage-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// BankLoader loads category JSONB from Postgres.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_banks WHERE id=$1`, categoryID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, domain.ErrInvalidCategory
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("load category: %w", err)
	}
	var c domain.Category
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Category{}, fmt.Errorf("unmarshal category: %w", err)
	}
	return c, nil
}

func (l *BankLoader) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, name, jsonb_array_length(data->'questions')
		FROM question_banks
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []domain.CategorySummary
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.ID, &s.Name, &s.QuestionCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
