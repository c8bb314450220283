package postgres

import (
	"context"
	"fmt"

	"heritage-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ContactStore persists contact form submissions.
type ContactStore struct {
	pool *pgxpool.Pool
}

func NewContactStore(pool *pgxpool.Pool) *ContactStore {
	return &ContactStore{pool: pool}
}

func (s *ContactStore) SaveContact(ctx context.Context, m domain.ContactMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contact_messages (id, first_name, last_name, email, phone, subject, message, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.Subject, m.Message, m.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
