package app

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"heritage-quiz-service/internal/domain"
)

const (
	// DefaultQuestionSeconds is the countdown every question starts with.
	DefaultQuestionSeconds = 30
	// DefaultExtraTimeSeconds is what the extraTime lifeline adds.
	DefaultExtraTimeSeconds = 15
)

// Status is the coarse lifecycle state of a Session.
type Status string

const (
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
)

// TickOutcome tells the caller what a clock tick did.
type TickOutcome string

const (
	// TickContinue means the countdown was decremented and is still running.
	TickContinue TickOutcome = "continue"
	// TickTimeExpired means the countdown reached zero; the caller must Advance.
	TickTimeExpired TickOutcome = "timeExpired"
	// TickTimerStopped means no countdown is running for the current question.
	TickTimerStopped TickOutcome = "timerStopped"
)

// TickResult is returned by Session.Tick.
type TickResult struct {
	Outcome       TickOutcome `json:"outcome"`
	TimeRemaining int         `json:"timeRemaining"`
}

// AdvanceOutcome is either the next question or the final result.
type AdvanceOutcome struct {
	Completed bool            `json:"completed"`
	Index     int             `json:"index"`
	Question  domain.Question `json:"-"`
	Result    domain.Result   `json:"result"`
}

// PreviousOutcome carries a revisited question and its recorded answer.
type PreviousOutcome struct {
	Index    int             `json:"index"`
	Question domain.Question `json:"-"`
	Answer   int             `json:"answer"`
}

// LifelineResult describes the effect of a consumed lifeline.
type LifelineResult struct {
	Kind          domain.Lifeline `json:"kind"`
	Eliminated    []int           `json:"eliminated,omitempty"`
	TimeRemaining int             `json:"timeRemaining"`
	Advance       *AdvanceOutcome `json:"advance,omitempty"`
}

// SessionOption customizes a Session at Start.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	now             func() time.Time
	rnd             *rand.Rand
	questionSeconds int
	extraSeconds    int
}

// WithClock injects the time source used for the start and end timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(c *sessionConfig) { c.now = now }
}

// WithRand injects the random source used to shuffle questions.
func WithRand(rnd *rand.Rand) SessionOption {
	return func(c *sessionConfig) { c.rnd = rnd }
}

// WithTimer overrides the per-question countdown and the extraTime bonus.
// Non-positive values keep the defaults.
func WithTimer(questionSeconds, extraSeconds int) SessionOption {
	return func(c *sessionConfig) {
		if questionSeconds > 0 {
			c.questionSeconds = questionSeconds
		}
		if extraSeconds > 0 {
			c.extraSeconds = extraSeconds
		}
	}
}

// Session is one user's quiz attempt. All methods are safe to call from
// different goroutines; each runs to completion under the session lock.
type Session struct {
	mu sync.Mutex

	id           string
	userID       string
	categoryID   string
	categoryName string
	now          func() time.Time

	questionSeconds int
	extraSeconds    int

	questions     []domain.Question
	answers       []int
	eliminated    map[int][]int
	lifelines     map[domain.Lifeline]bool
	index         int
	score         int
	timeRemaining int
	timerRunning  bool
	expired       bool
	startedAt     time.Time
	lastActivity  time.Time
	completedAt   time.Time
	result        *domain.Result
}

// Start creates a session over a shuffled copy of the category's questions.
func Start(id, userID, category string, bank domain.QuestionBank, opts ...SessionOption) (*Session, error) {
	c, ok := bank[category]
	if !ok || len(c.Questions) == 0 {
		return nil, domain.ErrInvalidCategory
	}

	cfg := sessionConfig{
		now:             time.Now,
		questionSeconds: DefaultQuestionSeconds,
		extraSeconds:    DefaultExtraTimeSeconds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rnd == nil {
		cfg.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	questions := copyQuestions(c.Questions)
	cfg.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = domain.Unanswered
	}

	lifelines := make(map[domain.Lifeline]bool, len(domain.AllLifelines))
	for _, l := range domain.AllLifelines {
		lifelines[l] = true
	}

	now := cfg.now()
	return &Session{
		id:              id,
		userID:          userID,
		categoryID:      c.ID,
		categoryName:    c.Name,
		now:             cfg.now,
		questionSeconds: cfg.questionSeconds,
		extraSeconds:    cfg.extraSeconds,
		questions:       questions,
		answers:         answers,
		eliminated:      make(map[int][]int),
		lifelines:       lifelines,
		timeRemaining:   cfg.questionSeconds,
		timerRunning:    true,
		startedAt:       now,
		lastActivity:    now,
	}, nil
}

func copyQuestions(src []domain.Question) []domain.Question {
	out := make([]domain.Question, len(src))
	for i, q := range src {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// UserID returns the owner of the session.
func (s *Session) UserID() string { return s.userID }

// Category returns the category ID the session was started for.
func (s *Session) Category() string { return s.categoryID }

// CategoryName returns the display name of the session's category.
func (s *Session) CategoryName() string { return s.categoryName }

// LastActivity reports when the session was last operated on.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Result returns the final result once the session is completed.
func (s *Session) Result() (domain.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.Result{}, false
	}
	return *s.result, true
}

// CompletedAt is the time the final result was computed, zero while in progress.
func (s *Session) CompletedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedAt
}

// SubmitAnswer records the selected option for the current question. A new
// answer replaces the previous one and the score follows the latest answer only.
// Once the countdown has expired the question is closed until the next Advance.
func (s *Session) SubmitAnswer(option int) (domain.AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return domain.AnswerOutcome{}, domain.ErrSessionCompleted
	}
	if option < 0 || option >= domain.OptionsPerQuestion {
		return domain.AnswerOutcome{}, domain.ErrInvalidOption
	}
	if s.expired {
		return domain.AnswerOutcome{}, domain.ErrTimeExpired
	}
	s.touchLocked()

	q := s.questions[s.index]
	s.recordLocked(option)
	s.timerRunning = false

	return domain.AnswerOutcome{
		IsCorrect:    option == q.CorrectIndex,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
	}, nil
}

// Advance moves to the next question, or completes the session after the last one.
func (s *Session) Advance() (AdvanceOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return AdvanceOutcome{}, domain.ErrSessionCompleted
	}
	if s.answers[s.index] == domain.Unanswered {
		return AdvanceOutcome{}, domain.ErrQuestionNotAnswered
	}
	s.touchLocked()
	return s.advanceLocked(), nil
}

// Tick is driven once per second by the caller's clock.
func (s *Session) Tick() (TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return TickResult{}, domain.ErrSessionCompleted
	}
	if !s.timerRunning {
		return TickResult{Outcome: TickTimerStopped, TimeRemaining: s.timeRemaining}, nil
	}

	s.timeRemaining--
	if s.timeRemaining > 0 {
		return TickResult{Outcome: TickContinue, TimeRemaining: s.timeRemaining}, nil
	}

	s.timeRemaining = 0
	s.timerRunning = false
	s.expired = true
	if s.answers[s.index] == domain.Unanswered {
		s.answers[s.index] = domain.Skipped
	}
	s.touchLocked()
	return TickResult{Outcome: TickTimeExpired}, nil
}

// UseLifeline consumes a lifeline for the current question.
func (s *Session) UseLifeline(kind domain.Lifeline) (LifelineResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return LifelineResult{}, domain.ErrSessionCompleted
	}
	available, known := s.lifelines[kind]
	if !known {
		return LifelineResult{}, domain.ErrUnknownLifeline
	}
	if !available {
		return LifelineResult{}, domain.ErrLifelineAlreadyUsed
	}
	s.lifelines[kind] = false
	s.touchLocked()

	res := LifelineResult{Kind: kind}
	switch kind {
	case domain.LifelineFiftyFifty:
		res.Eliminated = s.eliminateLocked()
	case domain.LifelineSkipQuestion:
		s.recordLocked(domain.Skipped)
		next := s.advanceLocked()
		res.Advance = &next
	case domain.LifelineExtraTime:
		s.timeRemaining += s.extraSeconds
	}
	res.TimeRemaining = s.timeRemaining
	return res, nil
}

// Previous steps back one question. Answers and score are untouched and the
// countdown is paused rather than reset.
func (s *Session) Previous() (PreviousOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return PreviousOutcome{}, domain.ErrSessionCompleted
	}
	if s.index == 0 {
		return PreviousOutcome{}, domain.ErrNoPreviousQuestion
	}
	s.touchLocked()

	s.index--
	s.timerRunning = false
	s.expired = false
	return PreviousOutcome{
		Index:    s.index,
		Question: s.questions[s.index],
		Answer:   s.answers[s.index],
	}, nil
}

// recordLocked stores an answer for the current question, undoing any score
// the previous answer earned.
func (s *Session) recordLocked(answer int) {
	correct := s.questions[s.index].CorrectIndex
	if s.answers[s.index] == correct {
		s.score--
	}
	s.answers[s.index] = answer
	if answer == correct {
		s.score++
	}
}

func (s *Session) advanceLocked() AdvanceOutcome {
	if s.index == len(s.questions)-1 {
		s.timerRunning = false
		result := s.computeResultLocked()
		s.result = &result
		s.completedAt = s.now()
		return AdvanceOutcome{Completed: true, Index: s.index, Result: result}
	}
	s.index++
	s.expired = false
	s.timeRemaining = s.questionSeconds
	s.timerRunning = true
	return AdvanceOutcome{Index: s.index, Question: s.questions[s.index]}
}

// eliminateLocked picks the first two wrong options in scan order.
func (s *Session) eliminateLocked() []int {
	correct := s.questions[s.index].CorrectIndex
	out := make([]int, 0, 2)
	for i := range s.questions[s.index].Options {
		if i == correct {
			continue
		}
		out = append(out, i)
		if len(out) == 2 {
			break
		}
	}
	s.eliminated[s.index] = out
	return append([]int(nil), out...)
}

func (s *Session) computeResultLocked() domain.Result {
	total := len(s.questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(s.score) * 100 / float64(total)))
	}
	elapsed := int(s.now().Sub(s.startedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	return domain.Result{
		TotalQuestions: total,
		CorrectCount:   s.score,
		Percentage:     percentage,
		ElapsedSeconds: elapsed,
	}
}

func (s *Session) touchLocked() {
	s.lastActivity = s.now()
}
