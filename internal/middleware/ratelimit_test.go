package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour, nil, discard)
	defer rl.Close()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "limits are per client")
}

func TestWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond, nil, discard)
	defer rl.Close()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, []string{" 192.168.1.10 "}, discard)
	defer rl.Close()
	blocked := 0
	rl.OnBlocked = func() { blocked++ }

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(remote, xff string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/boards", nil)
		req.RemoteAddr = remote
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := do("10.0.0.1:5000", "")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))
	rec := do("10.0.0.1:5001", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, blocked)

	// forwarded address counts, not the proxy
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:5002", "172.16.0.5, 10.0.0.1").Code)

	for range 3 {
		assert.Equal(t, http.StatusNoContent, do("192.168.1.10:80", "").Code)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.1.1:1234"
	assert.Equal(t, "10.1.1.1", getClientIP(req))

	req.Header.Set("X-Real-IP", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7:443, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(req))
}

func TestStats(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute, []string{"127.0.0.1"}, discard)
	defer rl.Close()

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")

	stats := rl.Stats()
	assert.Equal(t, 2, stats["tracked_ips"])
	assert.Equal(t, 5, stats["rate_per_window"])
	assert.Equal(t, 1, stats["whitelist_entries"])
}
