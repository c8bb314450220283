package app

import (
	"time"

	"heritage-quiz-service/internal/domain"
)

// QuestionView is the presentation form of a question. The correct index and
// explanation are only revealed once an option has been chosen.
type QuestionView struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	Image        string   `json:"image,omitempty"`
	Eliminated   []int    `json:"eliminated,omitempty"`
	Answer       int      `json:"answer"`
	CorrectIndex *int     `json:"correctIndex,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

// SessionView is a read-only snapshot of a Session.
type SessionView struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"userId"`
	Category      string                   `json:"category"`
	CategoryName  string                   `json:"categoryName"`
	Status        Status                   `json:"status"`
	Index         int                      `json:"index"`
	Total         int                      `json:"total"`
	Question      QuestionView             `json:"question"`
	Answers       []int                    `json:"answers"`
	Score         int                      `json:"score"`
	TimeRemaining int                      `json:"timeRemaining"`
	TimerRunning  bool                     `json:"timerRunning"`
	Lifelines     map[domain.Lifeline]bool `json:"lifelines"`
	StartedAt     time.Time                `json:"startedAt"`
	Result        *domain.Result           `json:"result,omitempty"`
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lifelines := make(map[domain.Lifeline]bool, len(s.lifelines))
	for k, v := range s.lifelines {
		lifelines[k] = v
	}

	view := SessionView{
		ID:            s.id,
		UserID:        s.userID,
		Category:      s.categoryID,
		CategoryName:  s.categoryName,
		Status:        StatusInProgress,
		Index:         s.index,
		Total:         len(s.questions),
		Question:      s.questionViewLocked(s.index),
		Answers:       append([]int(nil), s.answers...),
		Score:         s.score,
		TimeRemaining: s.timeRemaining,
		TimerRunning:  s.timerRunning,
		Lifelines:     lifelines,
		StartedAt:     s.startedAt,
	}
	if s.result != nil {
		result := *s.result
		view.Status = StatusCompleted
		view.Result = &result
	}
	return view
}

func (s *Session) questionViewLocked(i int) QuestionView {
	q := s.questions[i]
	view := QuestionView{
		Prompt:     q.Prompt,
		Options:    append([]string(nil), q.Options...),
		Image:      q.Image,
		Eliminated: append([]int(nil), s.eliminated[i]...),
		Answer:     s.answers[i],
	}
	if s.answers[i] >= 0 {
		correct := q.CorrectIndex
		view.CorrectIndex = &correct
		view.Explanation = q.Explanation
	}
	return view
}
