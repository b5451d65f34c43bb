// Package linkedin scrapes LinkedIn profile sections from browser-rendered pages.
package linkedin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/browser"
	"github.com/codeGROOVE-dev/liprofile/pkg/pagecache"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

const profileBase = "https://www.linkedin.com/in/"

var publicIDPattern = regexp.MustCompile(`/in/([^/?#]+)`)

// Match returns true if the URL is a LinkedIn profile URL.
func Match(urlStr string) bool {
	return strings.Contains(strings.ToLower(urlStr), "linkedin.com/in/")
}

// PublicID returns the public identifier from a profile URL or bare ID.
// It returns "" when ref is neither.
func PublicID(ref string) string {
	ref = strings.TrimSpace(ref)
	if Match(ref) {
		m := publicIDPattern.FindStringSubmatch(ref)
		if len(m) < 2 {
			return ""
		}
		slug := m[1]
		if strings.Contains(slug, "%") {
			decoded, err := url.PathUnescape(slug)
			if err != nil {
				return ""
			}
			slug = decoded
		}
		if !safeID(slug) {
			return ""
		}
		return slug
	}
	if ref == "" || strings.ContainsAny(ref, "/?#: \t") || !safeID(ref) {
		return ""
	}
	return ref
}

// safeID reports whether id can name files inside an output directory.
func safeID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, "/\\\x00")
}

// Renderer returns the markup of a page after client-side rendering.
// *browser.Session satisfies it.
type Renderer interface {
	Render(ctx context.Context, url string, req browser.Request) (string, error)
}

// Archiver keeps a copy of each captured section.
type Archiver interface {
	SaveHTML(id, section, html string) error
}

// Loader returns a previously archived section.
// Missing sections are reported with an error wrapping fs.ErrNotExist.
type Loader interface {
	LoadHTML(id, section string) (string, error)
}

// Client scrapes profiles one section at a time.
type Client struct {
	renderer Renderer
	cache    pagecache.Cacher
	archive  Archiver
	logger   *slog.Logger
	sections []section
	timeline []timeline.Option
}

// Option configures a Client.
type Option func(*config)

type config struct {
	cache    pagecache.Cacher
	archive  Archiver
	logger   *slog.Logger
	sections []string
	timeline []timeline.Option
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithPageCache caches rendered sections.
func WithPageCache(cache pagecache.Cacher) Option {
	return func(c *config) { c.cache = cache }
}

// WithArchive stores the markup of every captured section.
func WithArchive(a Archiver) Option {
	return func(c *config) { c.archive = a }
}

// WithSections limits scraping to the named sections. Unknown names make New fail.
func WithSections(names ...string) Option {
	return func(c *config) { c.sections = names }
}

// WithTimelineOptions passes options to experience grouping.
func WithTimelineOptions(opts ...timeline.Option) Option {
	return func(c *config) { c.timeline = opts }
}

// New creates a LinkedIn client. renderer may be nil when the client only
// reparses archived sections.
func New(renderer Renderer, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	sections, err := selectSections(cfg.sections)
	if err != nil {
		return nil, err
	}

	return &Client{
		renderer: renderer,
		cache:    cfg.cache,
		archive:  cfg.archive,
		logger:   cfg.logger,
		sections: sections,
		timeline: cfg.timeline,
	}, nil
}

// Fetch renders and parses every selected section of a profile.
// A section that cannot be captured is logged and left empty; a login wall or
// missing profile aborts the whole fetch.
func (c *Client) Fetch(ctx context.Context, ref string) (*profile.Profile, error) {
	id := PublicID(ref)
	if id == "" {
		return nil, fmt.Errorf("%w: %q is not a profile URL or ID", profile.ErrProfileNotFound, ref)
	}
	if c.renderer == nil {
		return nil, fmt.Errorf("fetch %s: %w", id, browser.ErrNotStarted)
	}

	c.logger.InfoContext(ctx, "fetching linkedin profile", "profile", id, "sections", len(c.sections))
	return c.collect(ctx, id, c.render, true)
}

// FromArchive parses previously archived sections of a profile without a browser.
func (c *Client) FromArchive(ctx context.Context, ref string, loader Loader) (*profile.Profile, error) {
	id := PublicID(ref)
	if id == "" {
		return nil, fmt.Errorf("%w: %q is not a profile URL or ID", profile.ErrProfileNotFound, ref)
	}

	c.logger.InfoContext(ctx, "parsing archived linkedin profile", "profile", id)
	load := func(_ context.Context, _ string, s section) (string, error) {
		return loader.LoadHTML(id, s.name)
	}
	return c.collect(ctx, id, load, false)
}

type getFunc func(ctx context.Context, id string, s section) (string, error)

func (c *Client) collect(ctx context.Context, id string, get getFunc, archive bool) (*profile.Profile, error) {
	p := &profile.Profile{ID: id}
	captured := 0

	for _, s := range c.sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		markup, err := get(ctx, id, s)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, profile.ErrAuthRequired) || errors.Is(err, profile.ErrProfileNotFound) {
				return nil, fmt.Errorf("%s %s: %w", id, s.name, err)
			}
			if errors.Is(err, fs.ErrNotExist) {
				c.logger.DebugContext(ctx, "section not archived", "profile", id, "section", s.name)
				continue
			}
			c.logger.WarnContext(ctx, "section unavailable", "profile", id, "section", s.name, "error", err)
			continue
		}
		captured++

		if archive && c.archive != nil {
			if err := c.archive.SaveHTML(id, s.name, markup); err != nil {
				c.logger.WarnContext(ctx, "archive section failed", "profile", id, "section", s.name, "error", err)
			}
		}

		if err := parse(s, markup, p, c.timeline); err != nil {
			c.logger.WarnContext(ctx, "section parse failed", "profile", id, "section", s.name, "error", err)
			continue
		}
		c.logger.DebugContext(ctx, "parsed section", "profile", id, "section", s.name, "bytes", len(markup))
	}

	if captured == 0 {
		return nil, fmt.Errorf("%w: no section of %s could be captured", profile.ErrProfileNotFound, id)
	}
	return p, nil
}

func (c *Client) render(ctx context.Context, id string, s section) (string, error) {
	pageURL := s.URL(id)
	fetch := func(ctx context.Context) ([]byte, error) {
		c.logger.InfoContext(ctx, "rendering section", "profile", id, "section", s.name, "url", pageURL)
		markup, err := c.renderer.Render(ctx, pageURL, s.request)
		if err != nil {
			return nil, err
		}
		return []byte(markup), nil
	}

	body, err := pagecache.Fetch(ctx, c.cache, pagecache.Key(id, s.name), fetch, pagecache.NonEmpty, c.logger)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ParseSection parses captured markup of the named section into p.
func ParseSection(name, markup string, p *profile.Profile, opts ...timeline.Option) error {
	s, ok := lookupSection(name)
	if !ok {
		return fmt.Errorf("%w: %q", profile.ErrUnknownSection, name)
	}
	return parse(s, markup, p, opts)
}

func parse(s section, markup string, p *profile.Profile, opts []timeline.Option) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return fmt.Errorf("parse %s: %w", s.name, err)
	}
	s.parse(doc.Selection, p, opts)
	return nil
}
