package browser

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimiterSameHost(t *testing.T) {
	r := newRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for range 3 {
		if err := r.Wait(ctx, "https://www.linkedin.com/in/a/", nil); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("three waits took %v, want at least 100ms", elapsed)
	}
}

func TestRateLimiterDistinctHosts(t *testing.T) {
	r := newRateLimiter(time.Hour)
	ctx := context.Background()

	start := time.Now()
	for _, u := range []string{"https://a.example.com/", "https://b.example.com/", "https://c.example.com/"} {
		if err := r.Wait(ctx, u, nil); err != nil {
			t.Fatalf("Wait(%q) error = %v", u, err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("first visits to distinct hosts took %v, want no delay", elapsed)
	}
}

func TestRateLimiterHonorsContext(t *testing.T) {
	r := newRateLimiter(time.Hour)
	if err := r.Wait(context.Background(), "https://www.linkedin.com/", nil); err != nil {
		t.Fatalf("first Wait() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := r.Wait(ctx, "https://www.linkedin.com/", nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRateLimiterSkipsBadURLs(t *testing.T) {
	r := newRateLimiter(time.Hour)
	ctx := context.Background()
	for range 2 {
		if err := r.Wait(ctx, "::bad", nil); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
}

func TestHostOf(t *testing.T) {
	tests := map[string]string{
		"https://www.linkedin.com/in/x/": "www.linkedin.com",
		"http://localhost:9222/json":     "localhost:9222",
		"not a url":                      "",
		"::bad":                          "",
	}
	for in, want := range tests {
		if got := hostOf(in); got != want {
			t.Errorf("hostOf(%q) = %q, want %q", in, got, want)
		}
	}
}
