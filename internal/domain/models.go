package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// OptionsPerQuestion is the fixed number of choices every question carries.
const OptionsPerQuestion = 4

// Answer slot sentinels. Recorded answers are otherwise option indices 0-3.
const (
	Unanswered = -2
	Skipped    = -1
)

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Image        string   `json:"image,omitempty"`
}

// Validate checks the question shape the engine relies on.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestionBank)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuestionBank, OptionsPerQuestion, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionsPerQuestion {
		return fmt.Errorf("%w: correct index %d out of range", ErrInvalidQuestionBank, q.CorrectIndex)
	}
	return nil
}

// Category is a named, ordered set of questions.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Validate checks every question of the category.
func (c Category) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("%w: category %q has no questions", ErrInvalidQuestionBank, c.ID)
	}
	for i, q := range c.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("category %q question %d: %w", c.ID, i, err)
		}
	}
	return nil
}

// CategorySummary is the listing form of a category.
type CategorySummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"questionCount"`
}

// QuestionBank maps category IDs to their questions. It is read-only once loaded.
type QuestionBank map[string]Category

// Validate checks all categories and that map keys match category IDs.
func (b QuestionBank) Validate() error {
	for id, c := range b {
		if c.ID != id {
			return fmt.Errorf("%w: key %q holds category %q", ErrInvalidQuestionBank, id, c.ID)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Summaries lists the bank's categories ordered by ID.
func (b QuestionBank) Summaries() []CategorySummary {
	out := make([]CategorySummary, 0, len(b))
	for _, c := range b {
		out = append(out, CategorySummary{ID: c.ID, Name: c.Name, QuestionCount: len(c.Questions)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lifeline is a one-shot assist action.
type Lifeline string

const (
	LifelineFiftyFifty   Lifeline = "fiftyFifty"
	LifelineSkipQuestion Lifeline = "skipQuestion"
	LifelineExtraTime    Lifeline = "extraTime"
)

// AllLifelines lists the supported lifelines in display order.
var AllLifelines = []Lifeline{LifelineFiftyFifty, LifelineSkipQuestion, LifelineExtraTime}

// ParseLifeline maps a wire name to a Lifeline.
func ParseLifeline(raw string) (Lifeline, error) {
	for _, l := range AllLifelines {
		if string(l) == raw {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLifeline, raw)
}

// Result is the immutable summary produced once at session end.
type Result struct {
	TotalQuestions int `json:"totalQuestions"`
	CorrectCount   int `json:"correctCount"`
	Percentage     int `json:"percentage"`
	ElapsedSeconds int `json:"elapsedSeconds"`
}

// StoredResult is what the reporting sink persists for a completed session.
type StoredResult struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId"`
	Category    string    `json:"category"`
	Result      Result    `json:"result"`
	CompletedAt time.Time `json:"completedAt"`
}

// LeaderboardEntry is a user's best percentage in a category.
type LeaderboardEntry struct {
	UserID     string `json:"userId"`
	Percentage int    `json:"percentage"`
}

// AnswerOutcome is the feedback returned for a submitted answer.
type AnswerOutcome struct {
	IsCorrect    bool   `json:"isCorrect"`
	CorrectIndex int    `json:"correctIndex"`
	Explanation  string `json:"explanation"`
}
