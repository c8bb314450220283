package app

import (
	"context"
	"log"
	"time"

	"heritage-quiz-service/internal/domain"
	"github.com/google/uuid"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	SaveContact(ctx context.Context, msg domain.ContactMessage) error
}

// ContactService validates and stores visitor enquiries.
type ContactService struct {
	store ContactRepository
	now   func() time.Time
}

func NewContactService(store ContactRepository) *ContactService {
	return &ContactService{store: store, now: time.Now}
}

// Submit validates msg, stamps it with an ID and receive time, and stores it.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return domain.ContactMessage{}, err
	}
	msg.ID = uuid.NewString()
	msg.ReceivedAt = s.now()
	if err := s.store.SaveContact(ctx, msg); err != nil {
		return domain.ContactMessage{}, err
	}
	log.Printf("contact message %s received: subject=%q", msg.ID, msg.Subject)
	return msg, nil
}
