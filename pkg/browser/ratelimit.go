package browser

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"
)

// rateLimiter enforces a minimum delay between navigations to the same host.
// It is safe for concurrent use from multiple goroutines.
type rateLimiter struct {
	lastRequest sync.Map // map[string]time.Time
	mu          sync.Map // map[string]*sync.Mutex - per-host locks
	minDelay    time.Duration
}

func newRateLimiter(minDelay time.Duration) *rateLimiter {
	return &rateLimiter{minDelay: minDelay}
}

// Wait blocks until minDelay has passed since the last navigation to rawURL's host.
// It returns early with the context's error if ctx ends first.
func (r *rateLimiter) Wait(ctx context.Context, rawURL string, logger *slog.Logger) error {
	host := hostOf(rawURL)
	if host == "" || r.minDelay <= 0 {
		return nil
	}

	muI, _ := r.mu.LoadOrStore(host, &sync.Mutex{})
	mu, ok := muI.(*sync.Mutex)
	if !ok {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if lastI, ok := r.lastRequest.Load(host); ok {
		if last, ok := lastI.(time.Time); ok {
			if elapsed := time.Since(last); elapsed < r.minDelay {
				wait := r.minDelay - elapsed
				if logger != nil {
					logger.DebugContext(ctx, "rate limit pause", "host", host, "wait", wait.Round(time.Millisecond))
				}
				if err := sleep(ctx, wait); err != nil {
					return err
				}
			}
		}
	}

	r.lastRequest.Store(host, time.Now())
	return nil
}

// hostOf returns the host portion of a URL, or empty string on error.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
