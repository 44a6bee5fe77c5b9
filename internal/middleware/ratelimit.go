package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter allows each client address a fixed number of requests per
// window. Windows start at a client's first request.
type RateLimiter struct {
	limit     int
	window    time.Duration
	whitelist map[string]struct{}
	logger    *slog.Logger

	// OnBlocked, when set, is called for every rejected request.
	OnBlocked func()

	mu     sync.Mutex
	quotas map[string]*quota

	done      chan struct{}
	closeOnce sync.Once
}

type quota struct {
	used    int
	resetAt time.Time
}

// NewRateLimiter allows limit requests per window for every address not on
// the whitelist. Close stops the goroutine that forgets idle clients.
func NewRateLimiter(limit int, window time.Duration, whitelist []string, logger *slog.Logger) *RateLimiter {
	wl := make(map[string]struct{}, len(whitelist))
	for _, ip := range whitelist {
		if ip = strings.TrimSpace(ip); ip != "" {
			wl[ip] = struct{}{}
		}
	}

	rl := &RateLimiter{
		limit:     limit,
		window:    window,
		whitelist: wl,
		logger:    logger.With("component", "rate_limiter"),
		quotas:    make(map[string]*quota),
		done:      make(chan struct{}),
	}
	go rl.forgetIdle()
	return rl
}

func (rl *RateLimiter) forgetIdle() {
	ticker := time.NewTicker(2 * rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, q := range rl.quotas {
				if now.After(q.resetAt) {
					delete(rl.quotas, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Close stops the cleanup goroutine.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) IsWhitelisted(ip string) bool {
	_, ok := rl.whitelist[ip]
	return ok
}

// Allow counts a request from ip and reports whether it is within quota.
func (rl *RateLimiter) Allow(ip string) bool {
	_, _, ok := rl.take(ip, time.Now())
	return ok
}

func (rl *RateLimiter) take(ip string, now time.Time) (remaining int, resetAt time.Time, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	q := rl.quotas[ip]
	if q == nil || !now.Before(q.resetAt) {
		q = &quota{resetAt: now.Add(rl.window)}
		rl.quotas[ip] = q
	}
	if q.used >= rl.limit {
		return 0, q.resetAt, false
	}
	q.used++
	return rl.limit - q.used, q.resetAt, true
}

// Middleware rejects requests over quota with 429 and a Retry-After header.
// Allowed responses carry the X-RateLimit-* headers.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getClientIP(r)
		if rl.IsWhitelisted(ip) {
			next.ServeHTTP(w, r)
			return
		}

		now := time.Now()
		remaining, resetAt, ok := rl.take(ip, now)
		if !ok {
			rl.logger.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			if rl.OnBlocked != nil {
				rl.OnBlocked()
			}
			wait := int(math.Ceil(resetAt.Sub(now).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(wait))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		next.ServeHTTP(w, r)
	})
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the peer address.
func getClientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		first = strings.TrimSpace(first)
		if host, _, err := net.SplitHostPort(first); err == nil {
			return host
		}
		return first
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Stats is reported under rate_limit by /v1/stats.
func (rl *RateLimiter) Stats() map[string]any {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]any{
		"tracked_ips":       len(rl.quotas),
		"rate_per_window":   rl.limit,
		"window_seconds":    rl.window.Seconds(),
		"whitelist_entries": len(rl.whitelist),
	}
}
