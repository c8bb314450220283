package memory

import (
	"context"
	"sort"
	"sync"

	"heritage-quiz-service/internal/domain"
)

// ResultStore keeps completed results in process memory, newest last.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string][]domain.StoredResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[string][]domain.StoredResult)}
}

func (s *ResultStore) SaveResult(_ context.Context, result domain.StoredResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.UserID] = append(s.results[result.UserID], result)
	return nil
}

// ListResults returns up to limit results for userID, most recent first.
func (s *ResultStore) ListResults(_ context.Context, userID string, limit int) ([]domain.StoredResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.results[userID]
	out := make([]domain.StoredResult, 0, min(limit, len(all)))
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// BestScores ranks users by their best percentage in category.
func (s *ResultStore) BestScores(_ context.Context, category string, n int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	best := make(map[string]int)
	for userID, results := range s.results {
		for _, r := range results {
			if r.Category != category {
				continue
			}
			if p, ok := best[userID]; !ok || r.Result.Percentage > p {
				best[userID] = r.Result.Percentage
			}
		}
	}
	s.mu.RUnlock()

	out := make([]domain.LeaderboardEntry, 0, len(best))
	for userID, p := range best {
		out = append(out, domain.LeaderboardEntry{UserID: userID, Percentage: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// ContactStore keeps contact messages in process memory.
type ContactStore struct {
	mu       sync.Mutex
	messages []domain.ContactMessage
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

func (s *ContactStore) SaveContact(_ context.Context, msg domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

// Messages returns a copy of the stored messages.
func (s *ContactStore) Messages() []domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ContactMessage(nil), s.messages...)
}
