// Package store writes scraped profiles and their captured markup to disk.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Common errors.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidID     = errors.New("invalid profile ID")
)

// Store writes files under one directory.
type Store struct {
	dir    string
	format string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a Store writing into dir, creating it if needed.
func New(dir, format string, opts ...Option) (*Store, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	s := &Store{dir: dir, format: format, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

// HTMLPath returns where the markup of one section is archived.
func (s *Store) HTMLPath(id, section string) string {
	return filepath.Join(s.dir, id+"."+section+".html")
}

// ProfilePath returns where a profile is written.
func (s *Store) ProfilePath(id string) string {
	return filepath.Join(s.dir, id+"."+s.format)
}

// checkName rejects names that would resolve outside the output directory.
func checkName(names ...string) error {
	for _, name := range names {
		if name == "." || strings.ContainsAny(name, `/\`) || !filepath.IsLocal(name) {
			return fmt.Errorf("%w: %q", ErrInvalidID, name)
		}
	}
	return nil
}

// SaveHTML archives the markup of one section, trimmed of surrounding whitespace.
func (s *Store) SaveHTML(id, section, html string) error {
	if err := checkName(id, section); err != nil {
		return err
	}
	path := s.HTMLPath(id, section)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(html)), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.logger.Debug("archived section", "profile", id, "section", section, "path", path)
	return nil
}

// LoadHTML reads archived markup. A missing file yields an error wrapping fs.ErrNotExist.
func (s *Store) LoadHTML(id, section string) (string, error) {
	if err := checkName(id, section); err != nil {
		return "", err
	}
	path := s.HTMLPath(id, section)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// SaveProfile writes p in the store's format and returns the file path.
func (s *Store) SaveProfile(p *profile.Profile) (string, error) {
	if p == nil || p.ID == "" {
		return "", errors.New("profile has no ID")
	}
	if err := checkName(p.ID); err != nil {
		return "", err
	}
	data, err := Encode(p, s.format)
	if err != nil {
		return "", err
	}
	path := s.ProfilePath(p.ID)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	s.logger.Info("saved profile", "profile", p.ID, "path", path)
	return path, nil
}

// Encode renders v as indented JSON or YAML.
func Encode(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
