// ABOUTME: Backoff helper for retrying upstream provider calls
// ABOUTME: Exponential growth with jitter, capped at maxBackoff
package util

import (
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// Backoff returns the delay before retry number attempt (1-based).
// Doubles the base per attempt with +/-25% jitter, capped at 30s.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 || base <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	d := base * time.Duration(1<<uint(attempt))
	if d > maxBackoff {
		d = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(d)/2)) - d/4
	return d + jitter
}
