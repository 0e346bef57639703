package ratelimit

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a sliding-window limiter keyed by an arbitrary string
type RateLimiter struct {
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// New creates a new rate limiter
func New(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Limit() int {
	return rl.limit
}

func (rl *RateLimiter) Window() time.Duration {
	return rl.window
}

// Allow checks if a request is allowed for the given key
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := rl.live(key, now)

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (rl *RateLimiter) GetRemaining(key string) int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	remaining := rl.limit - len(rl.live(key, rl.now()))
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// GetResetTime returns the time when the oldest request leaves the window
func (rl *RateLimiter) GetResetTime(key string) time.Time {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	now := rl.now()
	valid := rl.live(key, now)
	if len(valid) == 0 {
		return now
	}
	// entries are appended in time order
	return valid[0].Add(rl.window)
}

// Reset clears the rate limit for the given key
func (rl *RateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.requests, key)
}

// Cleanup removes expired entries to prevent memory leaks
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key := range rl.requests {
		valid := rl.live(key, now)
		if len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

// StartCleanup runs Cleanup every interval until ctx is cancelled
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

// live returns the requests for key still inside the window. Caller holds mu.
func (rl *RateLimiter) live(key string, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	var valid []time.Time
	for _, t := range rl.requests[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	return valid
}
