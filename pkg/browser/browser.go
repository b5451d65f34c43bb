// Package browser drives a Chrome instance over the DevTools protocol to render
// pages that only exist after client-side scripts have run.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/liprofile/pkg/auth"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/retry"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

var (
	// ErrNoContent is returned when the requested selector is missing from the rendered page.
	ErrNoContent = errors.New("no content")
	// ErrNotStarted is returned when the session is used before Start.
	ErrNotStarted = errors.New("browser not started")
)

// expandSettle is how long to wait after clicking an expand control.
const expandSettle = 500 * time.Millisecond

// Config controls how Chrome is launched and how pages are rendered.
type Config struct {
	Bin               string        // Chrome binary; empty lets rod locate or download one
	ControlURL        string        // attach to an existing DevTools endpoint instead of launching
	Headless          bool          // run without a window
	NavigationTimeout time.Duration // per navigation
	Settle            time.Duration // fixed wait after load for late scripts
	MinDelay          time.Duration // minimum gap between navigations to one host
	Attempts          uint          // render attempts, including the first
}

// DefaultConfig returns the settings used by the CLI.
// CHROME_PATH, when set, selects the browser binary.
func DefaultConfig() Config {
	return Config{
		Bin:               os.Getenv("CHROME_PATH"),
		Headless:          true,
		NavigationTimeout: 30 * time.Second,
		Settle:            5 * time.Second,
		MinDelay:          2 * time.Second,
		Attempts:          2,
	}
}

// Request describes what to capture from a rendered page.
type Request struct {
	Selector string // element whose inner HTML is returned; empty means the whole document
	Expand   string // optional control clicked before capture when visible
}

// Session is a single browser tab reused for every render.
// Renders are serialized; the tab holds one page at a time.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Session struct {
	cfg     Config
	logger  *slog.Logger
	limiter *rateLimiter

	mu      sync.Mutex
	launch  *launcher.Launcher
	browser *rod.Browser
	page    *rod.Page
}

// New creates a Session. Call Start before rendering.
func New(cfg Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultConfig().NavigationTimeout
	}
	return &Session{
		cfg:     cfg,
		logger:  logger,
		limiter: newRateLimiter(cfg.MinDelay),
	}
}

// Start launches Chrome, or attaches to ControlURL, and opens a blank tab.
// Calling Start on a running session is a no-op.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		return nil
	}

	controlURL := s.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(s.cfg.Headless)
		if s.cfg.Bin != "" {
			l = l.Bin(s.cfg.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return fmt.Errorf("launch chrome: %w", err)
		}
		s.launch = l
		controlURL = u
		s.logger.DebugContext(ctx, "launched chrome", "control_url", controlURL, "headless", s.cfg.Headless)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		s.killLocked()
		return fmt.Errorf("connect to chrome: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close() //nolint:errcheck // already failing
		s.killLocked()
		return fmt.Errorf("open tab: %w", err)
	}

	s.browser = b
	s.page = page
	return nil
}

// SetCookies installs cookies into the session's browser context.
func (s *Session) SetCookies(ctx context.Context, cookies []auth.Cookie) error {
	page, err := s.current()
	if err != nil {
		return err
	}
	params := cookieParams(cookies)
	if len(params) == 0 {
		return nil
	}
	if err := page.Context(ctx).SetCookies(params); err != nil {
		return fmt.Errorf("set cookies: %w", err)
	}
	s.logger.DebugContext(ctx, "installed cookies", "count", len(params), "names", auth.Names(cookies))
	return nil
}

// Render navigates to rawURL and returns the captured markup.
// Transient navigation failures are retried; a redirect to a login wall is not.
func (s *Session) Render(ctx context.Context, rawURL string, req Request) (string, error) {
	page, err := s.current()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return retry.DoWithData(
		func() (string, error) {
			if err := s.limiter.Wait(ctx, rawURL, s.logger); err != nil {
				return "", err
			}
			return s.render(ctx, page, rawURL, req)
		},
		retry.Context(ctx),
		retry.Attempts(s.cfg.Attempts),
		retry.Delay(time.Second),
		retry.MaxJitter(500*time.Millisecond),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			s.logger.DebugContext(ctx, "retrying render", "attempt", n+1, "url", rawURL, "error", err)
		}),
	)
}

func (s *Session) render(ctx context.Context, page *rod.Page, rawURL string, req Request) (string, error) {
	p := page.Context(ctx)

	start := time.Now()
	if err := p.Timeout(s.cfg.NavigationTimeout).Navigate(rawURL); err != nil {
		return "", fmt.Errorf("navigate %s: %w", rawURL, err)
	}
	if err := p.Timeout(s.cfg.NavigationTimeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("wait for load %s: %w", rawURL, err)
	}
	if err := sleep(ctx, s.cfg.Settle); err != nil {
		return "", err
	}

	info, err := p.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	if err := checkLanding(info.URL); err != nil {
		return "", fmt.Errorf("%s landed on %s: %w", rawURL, info.URL, err)
	}

	if req.Expand != "" {
		s.expand(ctx, p, req.Expand)
	}

	if req.Selector == "" {
		html, err := p.HTML()
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		s.logger.DebugContext(ctx, "rendered page", "url", rawURL, "bytes", len(html), "took", time.Since(start).Round(time.Millisecond))
		return html, nil
	}

	has, el, err := p.Has(req.Selector)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", req.Selector, err)
	}
	if !has {
		return "", fmt.Errorf("%s: selector %q: %w", rawURL, req.Selector, ErrNoContent)
	}
	res, err := el.Eval(`() => this.innerHTML`)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", req.Selector, err)
	}
	html := res.Value.Str()
	s.logger.DebugContext(ctx, "rendered page", "url", rawURL, "selector", req.Selector, "bytes", len(html), "took", time.Since(start).Round(time.Millisecond))
	return html, nil
}

// expand clicks the control matching selector when it is visible.
// Failures are logged and otherwise ignored.
func (s *Session) expand(ctx context.Context, p *rod.Page, selector string) {
	has, el, err := p.Has(selector)
	if err != nil || !has {
		return
	}
	if visible, err := el.Visible(); err != nil || !visible {
		return
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.logger.DebugContext(ctx, "expand click failed", "selector", selector, "error", err)
		return
	}
	_ = sleep(ctx, expandSettle) //nolint:errcheck // caller observes ctx on its next step
}

// Close shuts down the browser. A launched Chrome process is killed and its
// profile directory removed; an attached browser only has its tab closed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.page != nil {
		if closeErr := s.page.Close(); closeErr != nil {
			err = fmt.Errorf("close tab: %w", closeErr)
		}
		s.page = nil
	}
	if s.browser != nil && s.launch != nil {
		if closeErr := s.browser.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close browser: %w", closeErr)
		}
	}
	s.browser = nil
	s.killLocked()
	return err
}

func (s *Session) killLocked() {
	if s.launch == nil {
		return
	}
	s.launch.Kill()
	s.launch.Cleanup()
	s.launch = nil
}

func (s *Session) current() (*rod.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == nil {
		return nil, ErrNotStarted
	}
	return s.page, nil
}

// checkLanding maps the final URL of a navigation to the error it implies.
func checkLanding(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil //nolint:nilerr // unparseable landing URLs are not conclusive
	}
	path := strings.ToLower(u.Path)
	for _, prefix := range []string{"/authwall", "/login", "/uas/login", "/checkpoint", "/signup"} {
		if strings.HasPrefix(path, prefix) {
			return profile.ErrAuthRequired
		}
	}
	if path == "/404" || strings.HasPrefix(path, "/404/") {
		return profile.ErrProfileNotFound
	}
	return nil
}

// isRetryable returns true for transient errors that should be retried.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, profile.ErrAuthRequired),
		errors.Is(err, profile.ErrProfileNotFound),
		errors.Is(err, ErrNoContent),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
