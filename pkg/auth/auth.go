// Package auth provides session cookies for authenticated LinkedIn scraping.
package auth

import (
	"context"
	"slices"
)

// Cookie is a session cookie ready to be injected into a browser.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
}

// Source represents a source of authentication cookies.
type Source interface {
	// Cookies returns cookies for the given platform, or nil if unavailable.
	Cookies(ctx context.Context, platform string) ([]Cookie, error)
}

// ChainSources returns cookies from the first source that provides them.
func ChainSources(ctx context.Context, platform string, sources ...Source) ([]Cookie, error) {
	for _, src := range sources {
		cookies, err := src.Cookies(ctx, platform)
		if err != nil {
			return nil, err
		}
		if len(cookies) > 0 {
			return cookies, nil
		}
	}
	return nil, nil
}

// Names returns the sorted cookie names, for logging without leaking values.
func Names(cookies []Cookie) []string {
	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
	}
	slices.Sort(names)
	return names
}

// EssentialCookies returns the cookie names a platform session needs.
func EssentialCookies(platform string) []string {
	return slices.Clone(platformEssentialCookies[platform])
}

// platformDomains maps platform names to their cookie domains.
var platformDomains = map[string]string{
	"linkedin": "linkedin.com",
}

// platformEssentialCookies maps platform names to their required cookie names.
var platformEssentialCookies = map[string][]string{
	"linkedin": {"li_at", "JSESSIONID", "lidc", "bcookie"},
}

// sessionCookie builds a cookie scoped to the platform's domain with browser defaults.
func sessionCookie(platform, name, value string) Cookie {
	return Cookie{
		Name:     name,
		Value:    value,
		Domain:   "." + platformDomains[platform],
		Path:     "/",
		Secure:   true,
		SameSite: "Lax",
	}
}
