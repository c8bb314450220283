package postgres

import (
	"context"
	"fmt"

	"heritage-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResultStore persists completed quiz results.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) SaveResult(ctx context.Context, r domain.StoredResult) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO quiz_results
			(id, session_id, user_id, category, total_questions, correct_count, percentage, elapsed_seconds, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.SessionID, r.UserID, r.Category,
		r.Result.TotalQuestions, r.Result.CorrectCount, r.Result.Percentage, r.Result.ElapsedSeconds,
		r.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *ResultStore) ListResults(ctx context.Context, userID string, limit int) ([]domain.StoredResult, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, session_id::text, user_id, category,
		       total_questions, correct_count, percentage, elapsed_seconds, completed_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []domain.StoredResult
	for rows.Next() {
		var r domain.StoredResult
		if err := rows.Scan(&r.ID, &r.SessionID, &r.UserID, &r.Category,
			&r.Result.TotalQuestions, &r.Result.CorrectCount, &r.Result.Percentage, &r.Result.ElapsedSeconds,
			&r.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *ResultStore) BestScores(ctx context.Context, category string, n int) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, MAX(percentage) AS best
		FROM quiz_results
		WHERE category = $1
		GROUP BY user_id
		ORDER BY best DESC, user_id
		LIMIT $2`, category, n)
	if err != nil {
		return nil, fmt.Errorf("best scores: %w", err)
	}
	defer rows.Close()

	var out []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Percentage); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
