package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// FileSource reads cookies from a JSON export such as the ones produced by
// browser cookie-editor extensions.
type FileSource struct {
	path string
}

// NewFileSource creates a cookie source backed by a JSON file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// exportedCookie is one entry of a cookie export. Missing booleans take browser defaults.
type exportedCookie struct {
	Secure   *bool  `json:"secure"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	SameSite string `json:"sameSite"`
	HTTPOnly bool   `json:"httpOnly"`
}

// Cookies returns the exported cookies that belong to the platform's domain.
// A missing file yields no cookies; a malformed one is an error.
func (s *FileSource) Cookies(_ context.Context, platform string) ([]Cookie, error) {
	domain, ok := platformDomains[platform]
	if !ok || s.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cookie file: %w", err)
	}

	var exported []exportedCookie
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("parse cookie file %s: %w", s.path, err)
	}

	var cookies []Cookie
	for _, c := range exported {
		if !strings.Contains(c.Domain, "."+domain) {
			continue
		}
		ck := Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   true,
			HTTPOnly: c.HTTPOnly,
			SameSite: NormalizeSameSite(c.SameSite),
		}
		if ck.Path == "" {
			ck.Path = "/"
		}
		if c.Secure != nil {
			ck.Secure = *c.Secure
		}
		cookies = append(cookies, ck)
	}
	return cookies, nil
}

// NormalizeSameSite maps a sameSite value onto the ones browsers accept, defaulting to Lax.
func NormalizeSameSite(v string) string {
	switch v {
	case "Strict", "Lax", "None":
		return v
	default:
		return "Lax"
	}
}
