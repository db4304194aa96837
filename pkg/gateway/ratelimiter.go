package gateway

import (
	"sync"
	"time"
)

const rateLimitWindow = time.Minute

// RateLimiter implements per-IP rate limiting with a sliding window
type RateLimiter struct {
	mu              sync.Mutex
	requests        map[string][]time.Time
	maxPerWindow    int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(maxRequestsPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		requests:        make(map[string][]time.Time),
		maxPerWindow:    maxRequestsPerMinute,
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go rl.runCleanup()

	return rl
}

// Allow reports whether a request from the given IP is within the limit,
// recording it when allowed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	recent := rl.pruneLocked(ip, now)

	if len(recent) >= rl.maxPerWindow {
		return false
	}

	rl.requests[ip] = append(recent, now)
	return true
}

// RetryAfter returns the number of seconds until the oldest request in the
// window expires for the given IP.
func (rl *RateLimiter) RetryAfter(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := rl.requests[ip]
	if len(recent) == 0 {
		return 0
	}

	remaining := rateLimitWindow - time.Since(recent[0])
	if remaining < 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}

// pruneLocked drops timestamps outside the sliding window. Callers must
// hold the mutex.
func (rl *RateLimiter) pruneLocked(ip string, now time.Time) []time.Time {
	recent := rl.requests[ip][:0]
	for _, t := range rl.requests[ip] {
		if now.Sub(t) < rateLimitWindow {
			recent = append(recent, t)
		}
	}
	return recent
}

// runCleanup periodically removes idle IPs
func (rl *RateLimiter) runCleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for ip := range rl.requests {
				if recent := rl.pruneLocked(ip, now); len(recent) == 0 {
					delete(rl.requests, ip)
				} else {
					rl.requests[ip] = recent
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCleanup:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopCleanup)
}
