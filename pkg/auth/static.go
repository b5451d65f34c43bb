package auth

import (
	"context"
	"maps"
	"slices"
)

// StaticSource provides cookies from a static map.
// This is useful for testing or when cookies are provided via options.
type StaticSource struct {
	cookies map[string]string
}

// NewStaticSource creates a cookie source from a static map.
func NewStaticSource(cookies map[string]string) *StaticSource {
	return &StaticSource{cookies: cookies}
}

// Cookies returns the static cookies scoped to the platform's domain.
func (s *StaticSource) Cookies(_ context.Context, platform string) ([]Cookie, error) {
	if len(s.cookies) == 0 {
		return nil, nil
	}
	out := make([]Cookie, 0, len(s.cookies))
	for _, name := range slices.Sorted(maps.Keys(s.cookies)) {
		if v := s.cookies[name]; v != "" {
			out = append(out, sessionCookie(platform, name, v))
		}
	}
	return out, nil
}
