package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"heritage-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// BankLoader fetches question content from a backing store (e.g., Postgres).
type BankLoader interface {
	LoadCategory(ctx context.Context, categoryID string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)
}

// BankRepository caches categories with TTL to avoid repeated loader hits.
type BankRepository struct {
	loader BankLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	rnd   *rand.Rand
	cache map[string]cachedCategory
}

type cachedCategory struct {
	category  domain.Category
	expiresAt time.Time
}

func NewBankRepository(loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedCategory),
	}
}

func (r *BankRepository) GetCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	if c, ok := r.cached(categoryID); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(categoryID, func() (interface{}, error) {
		if c, ok := r.cached(categoryID); ok {
			return c, nil
		}

		c, err := r.loader.LoadCategory(ctx, categoryID)
		if err != nil {
			return domain.Category{}, err
		}
		if err := c.Validate(); err != nil {
			return domain.Category{}, err
		}

		r.mu.Lock()
		r.cache[categoryID] = cachedCategory{
			category:  c,
			expiresAt: r.clock().Add(r.ttlWithJitterLocked()),
		}
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return domain.Category{}, err
	}
	return result.(domain.Category), nil
}

// ListCategories is not cached; listings are cheap and must reflect newly seeded banks.
func (r *BankRepository) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return r.loader.ListCategories(ctx)
}

func (r *BankRepository) cached(categoryID string) (domain.Category, bool) {
	now := r.clock()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.cache[categoryID]; ok && entry.expiresAt.After(now) {
		return entry.category, true
	}
	return domain.Category{}, false
}

func (r *BankRepository) ttlWithJitterLocked() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticBankLoader is a loader backed by an in-memory bank (useful for tests/demos).
type StaticBankLoader struct {
	bank domain.QuestionBank
}

func NewStaticBankLoader(bank domain.QuestionBank) *StaticBankLoader {
	return &StaticBankLoader{bank: bank}
}

func (l *StaticBankLoader) LoadCategory(_ context.Context, categoryID string) (domain.Category, error) {
	if c, ok := l.bank[categoryID]; ok {
		return c, nil
	}
	return domain.Category{}, domain.ErrInvalidCategory
}

func (l *StaticBankLoader) ListCategories(_ context.Context) ([]domain.CategorySummary, error) {
	return l.bank.Summaries(), nil
}
