package app

import (
	"fmt"
	"math/rand"
	"sync"

	"heritage-quiz-service/internal/domain"
)

// ResultSummary is the shareable rendering of a Result.
type ResultSummary struct {
	Percentage     int    `json:"percentage"`
	CorrectCount   int    `json:"correctCount"`
	TotalQuestions int    `json:"totalQuestions"`
	Badge          string `json:"badge"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	FormattedTime  string `json:"formattedTime"`
	ShareText      string `json:"shareText"`
	CulturalFact   string `json:"culturalFact"`
}

var culturalFacts = []string{
	"The Taj Mahal appears to change colors throughout the day as light reflects off its white marble.",
	"Each wheel of the Konark Sun Temple chariot works as a sundial that can tell the time.",
	"The Khajuraho temples were hidden by forest for centuries until their rediscovery in the 1830s.",
	"The Ajanta Caves were carved by hand with hammers and chisels over roughly two centuries.",
	"The word 'Yoga' comes from the Sanskrit root 'yuj', meaning to unite or join.",
	"India is home to more than 1,600 languages and dialects.",
	"Chess began in India as 'Chaturanga', the game of the four divisions of the army.",
}

type resultTier struct {
	min      int
	badge    string
	title    string
	subtitle string
}

// tiers are ordered by descending threshold.
var tiers = []resultTier{
	{90, "trophy", "Outstanding!", "You are a true heritage expert!"},
	{70, "celebration", "Well Done!", "Great knowledge of Indian heritage!"},
	{50, "thumbs-up", "Good Effort!", "Keep exploring to learn more!"},
	{0, "books", "Keep Learning!", "There's so much more to discover!"},
}

// Summarizer turns results into shareable summaries.
type Summarizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSummarizer(rnd *rand.Rand) *Summarizer {
	return &Summarizer{rnd: rnd}
}

// Summarize renders a result with its tier headline, m:ss time and a random fact.
func (s *Summarizer) Summarize(categoryName string, r domain.Result) ResultSummary {
	tier := tiers[len(tiers)-1]
	for _, t := range tiers {
		if r.Percentage >= t.min {
			tier = t
			break
		}
	}

	fact := culturalFacts[0]
	if s.rnd != nil {
		s.mu.Lock()
		fact = culturalFacts[s.rnd.Intn(len(culturalFacts))]
		s.mu.Unlock()
	}

	return ResultSummary{
		Percentage:     r.Percentage,
		CorrectCount:   r.CorrectCount,
		TotalQuestions: r.TotalQuestions,
		Badge:          tier.badge,
		Title:          tier.title,
		Subtitle:       tier.subtitle,
		FormattedTime:  FormatElapsed(r.ElapsedSeconds),
		ShareText:      fmt.Sprintf("I scored %d%% on the %s Cultural Heritage Quiz! Test your knowledge of India's heritage at Roots & Wings.", r.Percentage, categoryName),
		CulturalFact:   fact,
	}
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
