package app

import (
	"context"
	"log"
	"math/rand"
	"time"

	"heritage-quiz-service/internal/domain"
	"github.com/google/uuid"
)

// SessionRepository abstracts how live quiz sessions are kept (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
	// Sweep drops sessions idle since before cutoff and reports how many were removed.
	Sweep(cutoff time.Time) int
}

// QuestionBankRepository loads category content (from cache/backing store).
type QuestionBankRepository interface {
	GetCategory(ctx context.Context, categoryID string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)
}

// ResultRepository is the reporting sink for completed sessions.
type ResultRepository interface {
	SaveResult(ctx context.Context, result domain.StoredResult) error
	ListResults(ctx context.Context, userID string, limit int) ([]domain.StoredResult, error)
	BestScores(ctx context.Context, category string, n int) ([]domain.LeaderboardEntry, error)
}

const (
	defaultResultLimit = 10
	maxResultLimit     = 100
)

// ServiceOption customizes a QuizService.
type ServiceOption func(*QuizService)

// WithSessionOptions applies engine options to every session the service starts.
func WithSessionOptions(opts ...SessionOption) ServiceOption {
	return func(s *QuizService) { s.sessionOpts = append(s.sessionOpts, opts...) }
}

// WithServiceClock sets the time source used for idle expiry.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *QuizService) { s.now = now }
}

// QuizService contains the quiz use cases around the session engine.
type QuizService struct {
	sessions    SessionRepository
	banks       QuestionBankRepository
	results     ResultRepository
	sessionOpts []SessionOption
	summarizer  *Summarizer
	now         func() time.Time
}

func NewQuizService(sessions SessionRepository, banks QuestionBankRepository, results ResultRepository, opts ...ServiceOption) *QuizService {
	s := &QuizService{
		sessions:   sessions,
		banks:      banks,
		results:    results,
		summarizer: NewSummarizer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories lists the playable categories.
func (s *QuizService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	return s.banks.ListCategories(ctx)
}

// Start begins a new attempt for userID in the given category.
func (s *QuizService) Start(ctx context.Context, userID, categoryID string) (SessionView, error) {
	category, err := s.banks.GetCategory(ctx, categoryID)
	if err != nil {
		return SessionView{}, err
	}

	bank := domain.QuestionBank{category.ID: category}
	session, err := Start(uuid.NewString(), userID, category.ID, bank, s.sessionOpts...)
	if err != nil {
		return SessionView{}, err
	}
	s.sessions.Put(session)
	log.Printf("quiz session %s started: user=%s category=%s questions=%d", session.ID(), userID, category.ID, len(category.Questions))
	return session.Snapshot(), nil
}

// Get returns the current view of a session.
func (s *QuizService) Get(_ context.Context, sessionID string) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.Snapshot(), nil
}

// SubmitAnswer records an answer for the session's current question.
func (s *QuizService) SubmitAnswer(_ context.Context, sessionID string, option int) (domain.AnswerOutcome, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.AnswerOutcome{}, err
	}
	return session.SubmitAnswer(option)
}

// Advance moves the session forward and reports the result when it completes.
func (s *QuizService) Advance(ctx context.Context, sessionID string) (AdvanceOutcome, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return AdvanceOutcome{}, err
	}
	outcome, err := session.Advance()
	if err != nil {
		return AdvanceOutcome{}, err
	}
	if outcome.Completed {
		s.report(ctx, session, outcome.Result)
	}
	return outcome, nil
}

// Tick applies one second of countdown to the session.
func (s *QuizService) Tick(_ context.Context, sessionID string) (TickResult, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return TickResult{}, err
	}
	return session.Tick()
}

// UseLifeline consumes a lifeline. A skip on the last question completes the session.
func (s *QuizService) UseLifeline(ctx context.Context, sessionID string, kind domain.Lifeline) (LifelineResult, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return LifelineResult{}, err
	}
	res, err := session.UseLifeline(kind)
	if err != nil {
		return LifelineResult{}, err
	}
	if res.Advance != nil && res.Advance.Completed {
		s.report(ctx, session, res.Advance.Result)
	}
	return res, nil
}

// Previous navigates back one question.
func (s *QuizService) Previous(_ context.Context, sessionID string) (PreviousOutcome, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return PreviousOutcome{}, err
	}
	return session.Previous()
}

// Summary renders the shareable summary of a completed session.
func (s *QuizService) Summary(_ context.Context, sessionID string) (ResultSummary, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return ResultSummary{}, err
	}
	result, ok := session.Result()
	if !ok {
		return ResultSummary{}, domain.ErrSessionInProgress
	}
	return s.summarizer.Summarize(session.CategoryName(), result), nil
}

// Abandon discards a session; nothing is reported for it.
func (s *QuizService) Abandon(_ context.Context, sessionID string) error {
	if _, err := s.session(sessionID); err != nil {
		return err
	}
	s.sessions.Delete(sessionID)
	return nil
}

// Results lists a user's most recent completed attempts.
func (s *QuizService) Results(ctx context.Context, userID string, limit int) ([]domain.StoredResult, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}
	return s.results.ListResults(ctx, userID, limit)
}

// Leaderboard lists the best percentages recorded for a category.
func (s *QuizService) Leaderboard(ctx context.Context, category string, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		n = defaultResultLimit
	}
	if n > maxResultLimit {
		n = maxResultLimit
	}
	return s.results.BestScores(ctx, category, n)
}

// ExpireIdle drops sessions nobody has touched for maxIdle.
func (s *QuizService) ExpireIdle(_ context.Context, maxIdle time.Duration) int {
	removed := s.sessions.Sweep(s.now().Add(-maxIdle))
	if removed > 0 {
		log.Printf("expired %d idle quiz sessions", removed)
	}
	return removed
}

func (s *QuizService) session(sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// report hands the result to the sink. The caller already holds the result,
// so a sink failure is logged rather than returned.
func (s *QuizService) report(ctx context.Context, session *Session, result domain.Result) {
	stored := domain.StoredResult{
		ID:          uuid.NewString(),
		SessionID:   session.ID(),
		UserID:      session.UserID(),
		Category:    session.Category(),
		Result:      result,
		CompletedAt: session.CompletedAt(),
	}
	if err := s.results.SaveResult(ctx, stored); err != nil {
		log.Printf("save result for session %s: %v", session.ID(), err)
		return
	}
	log.Printf("quiz session %s completed: %d/%d (%d%%)", session.ID(), result.CorrectCount, result.TotalQuestions, result.Percentage)
}
