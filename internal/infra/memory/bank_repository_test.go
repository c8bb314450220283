package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"heritage-quiz-service/internal/domain"
)

func TestBankRepositoryCaches(t *testing.T) {
	loader := &countingLoader{BankLoader: NewStaticBankLoader(HeritageBank())}
	repo := NewBankRepository(loader, time.Minute)

	if _, err := repo.GetCategory(context.Background(), "culture"); err != nil {
		t.Fatalf("get category: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCategory(context.Background(), "culture"); err != nil {
		t.Fatalf("get category 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestBankRepositoryExpires(t *testing.T) {
	loader := &countingLoader{BankLoader: NewStaticBankLoader(HeritageBank())}
	repo := NewBankRepository(loader, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetCategory(context.Background(), "history")
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetCategory(context.Background(), "history")
	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.calls)
	}
}

func TestBankRepositoryUnknownCategory(t *testing.T) {
	repo := NewBankRepository(NewStaticBankLoader(HeritageBank()), time.Minute)
	_, err := repo.GetCategory(context.Background(), "cuisine")
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected invalid category, got %v", err)
	}
}

func TestBankRepositoryRejectsInvalidContent(t *testing.T) {
	bank := domain.QuestionBank{
		"broken": {ID: "broken", Name: "Broken", Questions: []domain.Question{
			{Prompt: "Two options only?", Options: []string{"a", "b"}, CorrectIndex: 0},
		}},
	}
	repo := NewBankRepository(NewStaticBankLoader(bank), time.Minute)
	_, err := repo.GetCategory(context.Background(), "broken")
	if !errors.Is(err, domain.ErrInvalidQuestionBank) {
		t.Fatalf("expected invalid bank error, got %v", err)
	}
}

func TestHeritageBankIsValid(t *testing.T) {
	bank := HeritageBank()
	if err := bank.Validate(); err != nil {
		t.Fatalf("built-in bank invalid: %v", err)
	}
	want := map[string]int{"monuments": 10, "culture": 8, "history": 6, "mixed": 4}
	for id, n := range want {
		if got := len(bank[id].Questions); got != n {
			t.Fatalf("category %s: expected %d questions, got %d", id, n, got)
		}
	}
}

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) LoadCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	l.calls++
	return l.BankLoader.LoadCategory(ctx, categoryID)
}
