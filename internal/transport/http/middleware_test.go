package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterPerIP(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "other clients keep their own budget")

	now = now.Add(30 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "a token refills every 30s at 2/min")
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterEvictsIdleVisitorsPeriodically(t *testing.T) {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	now := start
	rl := NewRateLimiter(5)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = start.Add(time.Minute)
	rl.Allow("10.0.0.2")
	assert.Len(t, rl.visitors, 2, "no sweep inside the idle interval")

	now = start.Add(3*time.Minute + 30*time.Second)
	rl.Allow("10.0.0.3")
	assert.Len(t, rl.visitors, 2)
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")

	now = start.Add(4*time.Minute + 30*time.Second)
	rl.Allow("10.0.0.4")
	assert.Len(t, rl.visitors, 3, "the next sweep waits a full interval")
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS("https://heritage.example")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("preflight must not reach the handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/quiz/sessions", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://heritage.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
