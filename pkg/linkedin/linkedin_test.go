package linkedin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/liprofile/pkg/browser"
	"github.com/codeGROOVE-dev/liprofile/pkg/pagecache"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/google/go-cmp/cmp"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRenderer serves canned markup keyed by URL.
type fakeRenderer struct {
	pages map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeRenderer) Render(_ context.Context, url string, _ browser.Request) (string, error) {
	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	if page, ok := f.pages[url]; ok {
		return page, nil
	}
	return "", fmt.Errorf("%s: %w", url, browser.ErrNoContent)
}

type memArchive map[string]string

func (m memArchive) SaveHTML(id, section, html string) error {
	m[id+"."+section] = html
	return nil
}

func (m memArchive) LoadHTML(id, section string) (string, error) {
	html, ok := m[id+"."+section]
	if !ok {
		return "", fmt.Errorf("load %s.%s: %w", id, section, fs.ErrNotExist)
	}
	return html, nil
}

func TestMatch(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.linkedin.com/in/johndoe", true},
		{"https://linkedin.com/in/johndoe/", true},
		{"linkedin.com/in/johndoe", true},
		{"https://LINKEDIN.COM/IN/johndoe", true},
		{"https://linkedin.com/company/acme", false},
		{"https://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := Match(tt.url); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestPublicID(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"https://linkedin.com/in/johndoe", "johndoe"},
		{"https://linkedin.com/in/johndoe/", "johndoe"},
		{"https://linkedin.com/in/john-doe-123", "john-doe-123"},
		{"https://www.linkedin.com/in/ariadneconill/details/experience/", "ariadneconill"},
		{"https://www.linkedin.com/in/johndoe?trk=public_profile", "johndoe"},
		{"https://www.linkedin.com/in/j%C3%BCrgen/", "jürgen"},
		{"  johndoe  ", "johndoe"},
		{"johndoe", "johndoe"},
		{"https://example.com", ""},
		{"https://linkedin.com/company/acme", ""},
		{"", ""},
		{"https://www.linkedin.com/in/..%2F..%2Fescape", ""},
		{"https://www.linkedin.com/in/%2E%2E/", ""},
		{"https://www.linkedin.com/in/a%5Cb", ""},
		{"https://www.linkedin.com/in/bad%zz", ""},
		{"..", ""},
		{".", ""},
		{`a\b`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := PublicID(tt.ref); got != tt.want {
				t.Errorf("PublicID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestSections(t *testing.T) {
	want := []string{"main", "experience", "education", "certifications", "skills", "recommendations", "publications", "patents"}
	if diff := cmp.Diff(want, Sections()); diff != "" {
		t.Errorf("Sections() mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionURL(t *testing.T) {
	top, _ := lookupSection(SectionMain)
	if got := top.URL("johndoe"); got != "https://www.linkedin.com/in/johndoe/" {
		t.Errorf("main URL = %q", got)
	}
	exp, _ := lookupSection(SectionExperience)
	if got := exp.URL("johndoe"); got != "https://www.linkedin.com/in/johndoe/details/experience/" {
		t.Errorf("experience URL = %q", got)
	}
	if exp.request.Selector != "main" {
		t.Errorf("experience selector = %q, want main", exp.request.Selector)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate section should panic")
		}
	}()
	register(section{name: SectionMain})
}

func TestNewWithSections(t *testing.T) {
	c, err := New(nil, WithSections("patents", "main", "patents"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var got []string
	for _, s := range c.sections {
		got = append(got, s.name)
	}
	if diff := cmp.Diff([]string{"main", "patents"}, got); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}

	if _, err := New(nil, WithSections("volunteering")); !errors.Is(err, profile.ErrUnknownSection) {
		t.Errorf("New() error = %v, want ErrUnknownSection", err)
	}
}

func TestFetch(t *testing.T) {
	r := &fakeRenderer{
		pages: map[string]string{
			"https://www.linkedin.com/in/ada/":                    mainPage,
			"https://www.linkedin.com/in/ada/details/experience/": experienceHTML,
		},
		errs:  map[string]error{
			"https://www.linkedin.com/in/ada/details/education/": errors.New("websocket closed"),
		},
	}
	archive := memArchive{}
	c, err := New(r, WithLogger(quietLogger()), WithArchive(archive))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p, err := c.Fetch(context.Background(), "https://www.linkedin.com/in/ada")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if p.ID != "ada" {
		t.Errorf("ID = %q, want ada", p.ID)
	}
	if p.Main == nil || *p.Main.Name != "Ada Lovelace" {
		t.Errorf("Main = %+v, want name Ada Lovelace", p.Main)
	}
	if len(p.Experience) != 2 {
		t.Errorf("Experience has %d tenures, want 2", len(p.Experience))
	}
	if p.Education != nil || p.Skills != nil {
		t.Error("failed sections should be left empty")
	}
	if len(r.calls) != len(Sections()) {
		t.Errorf("rendered %d pages, want %d", len(r.calls), len(Sections()))
	}
	if _, ok := archive["ada.experience"]; !ok || len(archive) != 2 {
		t.Errorf("archived %v, want main and experience", archive)
	}
}

func TestFetchAuthRequiredAborts(t *testing.T) {
	r := &fakeRenderer{
		pages: map[string]string{"https://www.linkedin.com/in/ada/": mainPage},
		errs:  map[string]error{
			"https://www.linkedin.com/in/ada/details/experience/": fmt.Errorf("landed on authwall: %w", profile.ErrAuthRequired),
		},
	}
	c, err := New(r, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Fetch(context.Background(), "ada")
	if !errors.Is(err, profile.ErrAuthRequired) {
		t.Fatalf("Fetch() error = %v, want ErrAuthRequired", err)
	}
	if len(r.calls) != 2 {
		t.Errorf("rendered %d pages after the login wall, want 2", len(r.calls))
	}
}

func TestFetchNothingCaptured(t *testing.T) {
	c, err := New(&fakeRenderer{}, WithLogger(quietLogger()), WithSections(SectionMain, SectionSkills))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.Fetch(context.Background(), "ada"); !errors.Is(err, profile.ErrProfileNotFound) {
		t.Errorf("Fetch() error = %v, want ErrProfileNotFound", err)
	}
}

func TestFetchBadRef(t *testing.T) {
	c, err := New(&fakeRenderer{}, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.Fetch(context.Background(), "https://example.com/x"); !errors.Is(err, profile.ErrProfileNotFound) {
		t.Errorf("Fetch() error = %v, want ErrProfileNotFound", err)
	}
}

func TestFetchWithoutRenderer(t *testing.T) {
	c, err := New(nil, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.Fetch(context.Background(), "ada"); !errors.Is(err, browser.ErrNotStarted) {
		t.Errorf("Fetch() error = %v, want ErrNotStarted", err)
	}
}

func TestFetchCanceled(t *testing.T) {
	c, err := New(&fakeRenderer{}, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Fetch(ctx, "ada"); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestFetchUsesPageCache(t *testing.T) {
	cache, err := pagecache.NewWithPath(time.Hour, t.TempDir())
	if err != nil {
		t.Fatalf("NewWithPath() error = %v", err)
	}
	r := &fakeRenderer{pages: map[string]string{"https://www.linkedin.com/in/ada/": mainPage}}
	c, err := New(r, WithLogger(quietLogger()), WithPageCache(cache), WithSections(SectionMain))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for range 2 {
		p, err := c.Fetch(context.Background(), "ada")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if p.Main == nil {
			t.Fatal("Main should be parsed from cached markup")
		}
	}
	if len(r.calls) != 1 {
		t.Errorf("rendered %d times, want 1", len(r.calls))
	}
}

func TestFromArchive(t *testing.T) {
	archive := memArchive{
		"ada.main":     mainPage,
		"ada.patents":  patentsHTML,
		"other.skills": skillsHTML,
	}
	c, err := New(nil, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p, err := c.FromArchive(context.Background(), "ada", archive)
	if err != nil {
		t.Fatalf("FromArchive() error = %v", err)
	}
	if p.Main == nil || len(p.Patents) != 1 {
		t.Errorf("FromArchive() = %+v, want main and patents", p)
	}
	if p.Skills != nil {
		t.Error("skills belong to another profile")
	}
	if len(archive) != 3 {
		t.Error("FromArchive must not write to the archive")
	}
}
