package redis

import (
	"context"
	"sync"
	"time"

	"heritage-quiz-service/internal/app"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Sessions stay in a local map; the engine state is not serialized.
//   - Redis holds a liveness marker per session (value: owning user) whose
//     TTL is refreshed on every access, so other instances and operators can
//     see which sessions are live.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Put(session *app.Session) {
	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(session.ID()), session.UserID(), s.ttl).Err()
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok && s.ttl > 0 {
		_ = s.client.Expire(context.Background(), s.key(sessionID), s.ttl).Err()
	}
	return session, ok
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	var expired []string
	for id, session := range s.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	s.mu.Unlock()

	if len(expired) > 0 {
		keys := make([]string, len(expired))
		for i, id := range expired {
			keys[i] = s.key(id)
		}
		_ = s.client.Del(context.Background(), keys...).Err()
	}
	return len(expired)
}

func (s *SessionStore) key(sessionID string) string {
	return "quiz:session:" + sessionID
}
