package auth

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // Import all browser cookie stores
	"github.com/browserutils/kooky/browser/firefox"
)

// BrowserSource reads cookies from browser cookie stores.
type BrowserSource struct {
	logger *slog.Logger
}

// NewBrowserSource creates a new browser cookie source.
func NewBrowserSource(logger *slog.Logger) *BrowserSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowserSource{logger: logger}
}

// Cookies returns cookies for the given platform from browser stores.
func (s *BrowserSource) Cookies(ctx context.Context, platform string) ([]Cookie, error) {
	domain, ok := platformDomains[platform]
	if !ok {
		return nil, nil
	}

	s.logger.DebugContext(ctx, "reading browser cookies", "platform", platform, "domain", domain)

	// Try Firefox profiles first (including Developer Edition)
	cookies := s.tryFirefoxProfiles(ctx, domain, platform)
	if len(cookies) > 0 {
		return cookies, nil
	}

	// Fall back to kooky's automatic browser detection
	kookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(domain))
	if err != nil {
		s.logger.Debug("failed to read browser cookies", "platform", platform, "error", err)
		return nil, nil // a failed browser read is not fatal
	}
	if len(kookies) == 0 {
		return nil, nil
	}

	return s.filterEssentialCookies(kookies, platform), nil
}

// tryFirefoxProfiles attempts to read cookies from Firefox profiles.
func (s *BrowserSource) tryFirefoxProfiles(ctx context.Context, domain, platform string) []Cookie {
	home := os.Getenv("HOME")
	if home == "" {
		return nil
	}

	dirs := []string{
		filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"),
		filepath.Join(home, ".mozilla", "firefox"),
	}
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*", "cookies.sqlite"))
		if err != nil || len(matches) == 0 {
			continue
		}
		for _, f := range matches {
			kookies, err := firefox.ReadCookies(ctx, f, kooky.Valid, kooky.DomainHasSuffix(domain))
			if err == nil && len(kookies) > 0 {
				s.logger.Debug("found Firefox cookies",
					"profile", filepath.Base(filepath.Dir(f)),
					"platform", platform,
					"count", len(kookies))
				return s.filterEssentialCookies(kookies, platform)
			}
		}
	}

	return nil
}

// filterEssentialCookies extracts only the required cookies for a platform.
func (s *BrowserSource) filterEssentialCookies(kookies []*kooky.Cookie, platform string) []Cookie {
	essentialSet := make(map[string]bool)
	for _, name := range platformEssentialCookies[platform] {
		essentialSet[name] = true
	}

	var cookies []Cookie
	for _, c := range kookies {
		if len(essentialSet) > 0 && !essentialSet[c.Name] {
			continue
		}
		cookies = append(cookies, fromKooky(c))
	}

	missing := missingCookies(cookies, platform)
	if len(cookies) > 0 {
		s.logger.Info("browser cookies found", "platform", platform, "keys", Names(cookies))
	}
	if len(missing) > 0 {
		s.logger.Info("browser cookies missing", "platform", platform, "keys", missing)
	}

	return cookies
}

func fromKooky(c *kooky.Cookie) Cookie {
	out := Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
		SameSite: "Lax",
	}
	switch c.SameSite {
	case http.SameSiteStrictMode:
		out.SameSite = "Strict"
	case http.SameSiteNoneMode:
		out.SameSite = "None"
	default:
	}
	if out.Path == "" {
		out.Path = "/"
	}
	return out
}

// missingCookies lists the platform's essential names absent from cookies,
// in the platform's declared order.
func missingCookies(cookies []Cookie, platform string) []string {
	var missing []string
	for _, name := range platformEssentialCookies[platform] {
		if !hasCookie(cookies, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func hasCookie(cookies []Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name {
			return true
		}
	}
	return false
}
