package app

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
	"time"

	"heritage-quiz-service/internal/domain"
)

func fixtureBank() domain.QuestionBank {
	return domain.QuestionBank{
		"culture":   fixtureCategory("culture", "Culture", 8),
		"monuments": fixtureCategory("monuments", "Monuments", 10),
	}
}

func fixtureCategory(id, name string, n int) domain.Category {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Prompt:       fmt.Sprintf("%s question %d", id, i),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % domain.OptionsPerQuestion,
			Explanation:  fmt.Sprintf("explanation %d", i),
		}
	}
	return domain.Category{ID: id, Name: name, Questions: questions}
}

func startFixture(t *testing.T, category string, opts ...SessionOption) *Session {
	t.Helper()
	opts = append([]SessionOption{WithRand(rand.New(rand.NewSource(7)))}, opts...)
	s, err := Start("s-1", "u1", category, fixtureBank(), opts...)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func currentCorrect(s *Session) int {
	return s.questions[s.index].CorrectIndex
}

func wrongOption(s *Session) int {
	return (currentCorrect(s) + 1) % domain.OptionsPerQuestion
}

func assertAnswersLen(t *testing.T, s *Session) {
	t.Helper()
	if len(s.answers) != len(s.questions) {
		t.Fatalf("answers length %d != questions length %d", len(s.answers), len(s.questions))
	}
}

func TestStartRejectsUnknownCategory(t *testing.T) {
	_, err := Start("s-1", "u1", "cuisine", fixtureBank())
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestStartShufflesACopy(t *testing.T) {
	bank := fixtureBank()
	original := fixtureCategory("monuments", "Monuments", 10).Questions

	s, err := Start("s-1", "u1", "monuments", bank, WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	prompts := func(qs []domain.Question) []string {
		out := make([]string, len(qs))
		for i, q := range qs {
			out[i] = q.Prompt
		}
		sort.Strings(out)
		return out
	}
	if !reflect.DeepEqual(prompts(s.questions), prompts(original)) {
		t.Fatalf("session questions are not a permutation of the category")
	}

	// Mutating the session copy must not leak into the bank.
	s.questions[0].Options[0] = "changed"
	for i := 0; i < len(s.questions); i++ {
		if _, err := s.SubmitAnswer(0); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if !reflect.DeepEqual(bank["monuments"].Questions, original) {
		t.Fatalf("question bank was modified by the session")
	}

	if _, ok := s.Result(); !ok {
		t.Fatalf("expected session to be completed")
	}
}

func TestFreshSessionState(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := startFixture(t, "culture", WithClock(func() time.Time { return start }))

	view := s.Snapshot()
	if view.Index != 0 || view.Score != 0 || view.Total != 8 {
		t.Fatalf("unexpected start view %+v", view)
	}
	if view.TimeRemaining != DefaultQuestionSeconds || !view.TimerRunning {
		t.Fatalf("expected running %ds timer, got %d running=%v", DefaultQuestionSeconds, view.TimeRemaining, view.TimerRunning)
	}
	for _, l := range domain.AllLifelines {
		if !view.Lifelines[l] {
			t.Fatalf("expected lifeline %s available", l)
		}
	}
	for i, a := range view.Answers {
		if a != domain.Unanswered {
			t.Fatalf("answer %d should be unanswered, got %d", i, a)
		}
	}
	if !view.StartedAt.Equal(start) {
		t.Fatalf("expected start %v, got %v", start, view.StartedAt)
	}
	assertAnswersLen(t, s)
}

func TestCultureScenarioScoresEightyEight(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := startFixture(t, "culture", WithClock(clock))

	var outcome AdvanceOutcome
	for i := 0; i < 8; i++ {
		option := currentCorrect(s)
		if i == 7 {
			option = wrongOption(s)
		}
		if _, err := s.SubmitAnswer(option); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		now = now.Add(4500 * time.Millisecond)
		var err error
		outcome, err = s.Advance()
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		assertAnswersLen(t, s)
	}

	if !outcome.Completed {
		t.Fatalf("expected completion after the last question")
	}
	want := domain.Result{TotalQuestions: 8, CorrectCount: 7, Percentage: 88, ElapsedSeconds: 36}
	if outcome.Result != want {
		t.Fatalf("expected %+v, got %+v", want, outcome.Result)
	}
	if got, ok := s.Result(); !ok || got != want {
		t.Fatalf("stored result %+v (ok=%v)", got, ok)
	}
}

func TestResubmitReplacesAnswerWithoutDoubleCounting(t *testing.T) {
	s := startFixture(t, "culture")
	correct := currentCorrect(s)

	out, err := s.SubmitAnswer(correct)
	if err != nil || !out.IsCorrect {
		t.Fatalf("expected correct answer, got %+v err=%v", out, err)
	}
	if s.Snapshot().Score != 1 {
		t.Fatalf("expected score 1")
	}

	if _, err := s.SubmitAnswer(correct); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if s.Snapshot().Score != 1 {
		t.Fatalf("expected score to stay 1 on identical resubmit")
	}

	out, err = s.SubmitAnswer(wrongOption(s))
	if err != nil || out.IsCorrect {
		t.Fatalf("expected incorrect answer, got %+v err=%v", out, err)
	}
	view := s.Snapshot()
	if view.Score != 0 {
		t.Fatalf("expected score back to 0, got %d", view.Score)
	}
	if view.Answers[0] != wrongOption(s) {
		t.Fatalf("expected last answer recorded, got %d", view.Answers[0])
	}
	if view.TimerRunning {
		t.Fatalf("expected timer stopped after answering")
	}
}

func TestSubmitAnswerRejectsOutOfRange(t *testing.T) {
	s := startFixture(t, "culture")
	for _, option := range []int{-1, 4, 99} {
		if _, err := s.SubmitAnswer(option); !errors.Is(err, domain.ErrInvalidOption) {
			t.Fatalf("option %d: expected ErrInvalidOption, got %v", option, err)
		}
	}
	if s.Snapshot().Answers[0] != domain.Unanswered {
		t.Fatalf("rejected option must not be recorded")
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := startFixture(t, "culture")
	if _, err := s.Advance(); !errors.Is(err, domain.ErrQuestionNotAnswered) {
		t.Fatalf("expected ErrQuestionNotAnswered, got %v", err)
	}
}

func TestCompletedSessionRejectsMutations(t *testing.T) {
	s := startFixture(t, "culture")
	for i := 0; i < 8; i++ {
		if _, err := s.SubmitAnswer(0); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	first, _ := s.Result()

	if _, err := s.Advance(); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted on advance, got %v", err)
	}
	if _, err := s.SubmitAnswer(0); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted on submit, got %v", err)
	}
	if _, err := s.Tick(); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted on tick, got %v", err)
	}
	if _, err := s.UseLifeline(domain.LifelineExtraTime); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted on lifeline, got %v", err)
	}
	if _, err := s.Previous(); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted on previous, got %v", err)
	}
	if again, _ := s.Result(); again != first {
		t.Fatalf("result changed after completion: %+v vs %+v", again, first)
	}
}

func TestThirtyTicksExpireAndSkip(t *testing.T) {
	s := startFixture(t, "culture")

	for i := 1; i < DefaultQuestionSeconds; i++ {
		res, err := s.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if res.Outcome != TickContinue || res.TimeRemaining != DefaultQuestionSeconds-i {
			t.Fatalf("tick %d: unexpected %+v", i, res)
		}
	}
	res, err := s.Tick()
	if err != nil {
		t.Fatalf("final tick: %v", err)
	}
	if res.Outcome != TickTimeExpired || res.TimeRemaining != 0 {
		t.Fatalf("expected expiry on tick 30, got %+v", res)
	}
	if got := s.Snapshot().Answers[0]; got != domain.Skipped {
		t.Fatalf("expected skipped answer, got %d", got)
	}

	res, err = s.Tick()
	if err != nil || res.Outcome != TickTimerStopped {
		t.Fatalf("expected stopped timer after expiry, got %+v err=%v", res, err)
	}

	out, err := s.Advance()
	if err != nil || out.Completed || out.Index != 1 {
		t.Fatalf("expected advance to question 1, got %+v err=%v", out, err)
	}
	if view := s.Snapshot(); view.TimeRemaining != DefaultQuestionSeconds || !view.TimerRunning {
		t.Fatalf("expected timer reset, got %+v", view)
	}
}

func TestAnswerAfterExpiryIsRejected(t *testing.T) {
	s := startFixture(t, "culture", WithTimer(1, 0))
	if res, err := s.Tick(); err != nil || res.Outcome != TickTimeExpired {
		t.Fatalf("expected expiry, got %+v err=%v", res, err)
	}

	if _, err := s.SubmitAnswer(currentCorrect(s)); !errors.Is(err, domain.ErrTimeExpired) {
		t.Fatalf("expected ErrTimeExpired, got %v", err)
	}
	view := s.Snapshot()
	if view.Answers[0] != domain.Skipped || view.Score != 0 {
		t.Fatalf("late answer must not replace the skip, got answer %d score %d", view.Answers[0], view.Score)
	}

	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := s.SubmitAnswer(currentCorrect(s)); err != nil {
		t.Fatalf("next question should accept answers, got %v", err)
	}
}

func TestExtraTimeDelaysExpiry(t *testing.T) {
	s := startFixture(t, "culture", WithTimer(1, 0))
	if _, err := s.UseLifeline(domain.LifelineExtraTime); err != nil {
		t.Fatalf("extra time: %v", err)
	}
	for i := 0; i < DefaultExtraTimeSeconds; i++ {
		if _, err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	res, _ := s.Tick()
	if res.Outcome != TickTimeExpired {
		t.Fatalf("expected expiry after 1+%d seconds, got %+v", DefaultExtraTimeSeconds, res)
	}
}

func TestExtraTimeOnce(t *testing.T) {
	s := startFixture(t, "culture")
	if _, err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	res, err := s.UseLifeline(domain.LifelineExtraTime)
	if err != nil {
		t.Fatalf("extra time: %v", err)
	}
	if res.TimeRemaining != DefaultQuestionSeconds-1+DefaultExtraTimeSeconds {
		t.Fatalf("expected %d seconds, got %d", DefaultQuestionSeconds-1+DefaultExtraTimeSeconds, res.TimeRemaining)
	}

	if _, err := s.UseLifeline(domain.LifelineExtraTime); !errors.Is(err, domain.ErrLifelineAlreadyUsed) {
		t.Fatalf("expected ErrLifelineAlreadyUsed, got %v", err)
	}
	if got := s.Snapshot().TimeRemaining; got != DefaultQuestionSeconds-1+DefaultExtraTimeSeconds {
		t.Fatalf("second call must not change time, got %d", got)
	}
}

func TestFiftyFiftyEliminatesFirstTwoWrongOptions(t *testing.T) {
	s := startFixture(t, "culture")
	correct := currentCorrect(s)

	res, err := s.UseLifeline(domain.LifelineFiftyFifty)
	if err != nil {
		t.Fatalf("fifty fifty: %v", err)
	}
	var want []int
	for i := 0; i < domain.OptionsPerQuestion && len(want) < 2; i++ {
		if i != correct {
			want = append(want, i)
		}
	}
	if !reflect.DeepEqual(res.Eliminated, want) {
		t.Fatalf("expected eliminated %v, got %v", want, res.Eliminated)
	}

	view := s.Snapshot()
	if !reflect.DeepEqual(view.Question.Eliminated, want) {
		t.Fatalf("expected view to carry eliminated %v, got %v", want, view.Question.Eliminated)
	}
	if view.Score != 0 || view.Answers[0] != domain.Unanswered {
		t.Fatalf("fifty fifty must not touch answers or score")
	}

	if _, err := s.SubmitAnswer(correct); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(s.Snapshot().Question.Eliminated) != 0 {
		t.Fatalf("elimination must apply to its own question only")
	}
	if _, err := s.UseLifeline(domain.LifelineFiftyFifty); !errors.Is(err, domain.ErrLifelineAlreadyUsed) {
		t.Fatalf("expected ErrLifelineAlreadyUsed, got %v", err)
	}
}

func TestSkipLifelineRecordsSkipAndAdvances(t *testing.T) {
	s := startFixture(t, "culture")

	res, err := s.UseLifeline(domain.LifelineSkipQuestion)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if res.Advance == nil || res.Advance.Completed || res.Advance.Index != 1 {
		t.Fatalf("expected advance to question 1, got %+v", res.Advance)
	}
	view := s.Snapshot()
	if view.Answers[0] != domain.Skipped || view.Score != 0 {
		t.Fatalf("expected skipped first answer and zero score, got %+v", view)
	}
	if view.Lifelines[domain.LifelineSkipQuestion] {
		t.Fatalf("skip lifeline should be consumed")
	}
}

func TestSkipAfterCorrectAnswerKeepsScoreConsistent(t *testing.T) {
	s := startFixture(t, "culture")
	if _, err := s.SubmitAnswer(currentCorrect(s)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.UseLifeline(domain.LifelineSkipQuestion); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if got := s.Snapshot().Score; got != 0 {
		t.Fatalf("expected score 0 once the answer is replaced by a skip, got %d", got)
	}
}

func TestSkipOnLastQuestionCompletes(t *testing.T) {
	s := startFixture(t, "culture")
	for i := 0; i < 7; i++ {
		if _, err := s.SubmitAnswer(currentCorrect(s)); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	res, err := s.UseLifeline(domain.LifelineSkipQuestion)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if res.Advance == nil || !res.Advance.Completed {
		t.Fatalf("expected completion, got %+v", res.Advance)
	}
	if res.Advance.Result.CorrectCount != 7 || res.Advance.Result.Percentage != 88 {
		t.Fatalf("unexpected result %+v", res.Advance.Result)
	}
}

func TestUnknownLifeline(t *testing.T) {
	s := startFixture(t, "culture")
	if _, err := s.UseLifeline(domain.Lifeline("askTheAudience")); !errors.Is(err, domain.ErrUnknownLifeline) {
		t.Fatalf("expected ErrUnknownLifeline, got %v", err)
	}
}

func TestPreviousKeepsAnswersAndPausesTimer(t *testing.T) {
	s := startFixture(t, "culture")

	if _, err := s.Previous(); !errors.Is(err, domain.ErrNoPreviousQuestion) {
		t.Fatalf("expected ErrNoPreviousQuestion, got %v", err)
	}

	first := currentCorrect(s)
	if _, err := s.SubmitAnswer(first); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}

	prev, err := s.Previous()
	if err != nil {
		t.Fatalf("previous: %v", err)
	}
	if prev.Index != 0 || prev.Answer != first {
		t.Fatalf("expected question 0 with answer %d, got %+v", first, prev)
	}
	view := s.Snapshot()
	if view.Score != 1 || view.TimerRunning || view.TimeRemaining != DefaultQuestionSeconds-5 {
		t.Fatalf("previous must not change score or reset the timer, got %+v", view)
	}
	if view.Question.CorrectIndex == nil || *view.Question.CorrectIndex != first {
		t.Fatalf("revisited answered question should reveal its correct index")
	}
	if res, _ := s.Tick(); res.Outcome != TickTimerStopped {
		t.Fatalf("expected paused countdown, got %+v", res)
	}
	assertAnswersLen(t, s)

	out, err := s.Advance()
	if err != nil || out.Index != 1 {
		t.Fatalf("expected to move forward again, got %+v err=%v", out, err)
	}
	if got := s.Snapshot().Answers[1]; got != domain.Unanswered {
		t.Fatalf("question 1 should still be unanswered, got %d", got)
	}
}

func TestLastActivityFollowsOperations(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := startFixture(t, "culture", WithClock(func() time.Time { return now }))

	now = now.Add(time.Minute)
	if _, err := s.SubmitAnswer(0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !s.LastActivity().Equal(now) {
		t.Fatalf("expected last activity %v, got %v", now, s.LastActivity())
	}
}
