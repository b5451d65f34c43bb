// Command liprofile scrapes LinkedIn profiles through a real browser session
// and writes them as JSON or YAML, with experience grouped by employer.
//
// Usage:
//
//	liprofile -cookies cookies.json johndoe
//	liprofile https://www.linkedin.com/in/johndoe  # uses LINKEDIN_* env vars or browser cookies
//	liprofile -offline -output out johndoe         # reparse out/johndoe.*.html
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/liprofile/pkg/auth"
	"github.com/codeGROOVE-dev/liprofile/pkg/browser"
	"github.com/codeGROOVE-dev/liprofile/pkg/linkedin"
	"github.com/codeGROOVE-dev/liprofile/pkg/pagecache"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/store"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

const platform = "linkedin"

func main() {
	os.Exit(realMain())
}

// realMain returns the exit status once the browser and cache are closed.
func realMain() int {
	defaults := browser.DefaultConfig()

	cookieFile := flag.String("cookies", "", "JSON cookie export from a logged-in LinkedIn session")
	output := flag.String("output", "output", "directory for profiles and archived section HTML")
	format := flag.String("format", store.FormatJSON, "profile format: json or yaml")
	sections := flag.String("sections", "", "comma-separated sections to scrape (default: all of "+strings.Join(linkedin.Sections(), ",")+")")
	headless := flag.Bool("headless", defaults.Headless, "run Chrome without a window")
	chrome := flag.String("chrome", defaults.Bin, "Chrome binary (default: $CHROME_PATH, or located by rod)")
	controlURL := flag.String("control-url", "", "attach to a running Chrome DevTools endpoint instead of launching one")
	settle := flag.Duration("settle", defaults.Settle, "wait after each page load for late scripts")
	noBrowser := flag.Bool("no-browser", false, "disable reading cookies from browser stores (enabled by default)")
	offline := flag.Bool("offline", false, "reparse archived section HTML from -output instead of scraping")
	noCache := flag.Bool("no-cache", false, "disable caching of rendered pages")
	cacheTTL := flag.Duration("cache-ttl", pagecache.DefaultTTL, "rendered page cache time-to-live")
	unparsedLast := flag.Bool("unparsed-last", false, "sort roles with unreadable start dates after dated ones")
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: liprofile [options] <profile-id-or-url>...")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nCookies are read, in order, from -cookies, the environment, then browser stores.")
		fmt.Fprintf(os.Stderr, "Environment: %s\n", strings.Join(auth.EnvVarsForPlatform(platform), ", "))
		return 1
	}

	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.New(*output, *format, store.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	opts := []linkedin.Option{linkedin.WithLogger(logger), linkedin.WithArchive(st)}
	if *sections != "" {
		opts = append(opts, linkedin.WithSections(splitList(*sections)...))
	}
	if *unparsedLast {
		opts = append(opts, linkedin.WithTimelineOptions(timeline.WithUnparsedLast()))
	}

	if *offline {
		client, err := linkedin.New(nil, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		failed := run(ctx, logger, st, os.Stdout, flag.Args(), func(ctx context.Context, ref string) (*profile.Profile, error) {
			return client.FromArchive(ctx, ref, st)
		})
		return status(failed)
	}

	sources := []auth.Source{auth.NewFileSource(*cookieFile), auth.EnvSource{}}
	if !*noBrowser {
		sources = append(sources, auth.NewBrowserSource(logger))
	}
	cookies, err := auth.ChainSources(ctx, platform, sources...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cookie retrieval failed: %v\n", err)
		return 1
	}
	if len(cookies) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v: pass -cookies or set %s\n",
			profile.ErrNoCookies, strings.Join(auth.EnvVarsForPlatform(platform), ", "))
		return 1
	}
	logger.Info("loaded cookies", "count", len(cookies), "names", auth.Names(cookies))

	if !*noCache {
		cache, err := pagecache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := cache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			logger.Debug("page cache initialized", "ttl", cacheTTL.String())
			opts = append(opts, linkedin.WithPageCache(cache))
		}
	}

	cfg := defaults
	cfg.Bin = *chrome
	cfg.ControlURL = *controlURL
	cfg.Headless = *headless
	cfg.Settle = *settle

	session := browser.New(cfg, logger)
	if err := session.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("failed to close browser", "error", err)
		}
	}()
	if err := session.SetCookies(ctx, cookies); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	client, err := linkedin.New(session, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	start := time.Now()
	failed := run(ctx, logger, st, os.Stdout, flag.Args(), client.Fetch)
	stats := pagecache.CacheStats()
	logger.Info("done", "profiles", flag.NArg(), "failed", failed,
		"cache_hits", stats.Hits, "cache_misses", stats.Misses, "took", time.Since(start).Round(time.Second))
	return status(failed)
}

func status(failed int) int {
	if failed > 0 {
		return 1
	}
	return 0
}

type fetchFunc func(ctx context.Context, ref string) (*profile.Profile, error)

// run fetches and saves each profile in turn, returning how many failed.
// A login wall stops the run: every later profile would hit it too.
func run(ctx context.Context, logger *slog.Logger, st *store.Store, out io.Writer, refs []string, fetch fetchFunc) int {
	failed := 0
	for i, ref := range refs {
		p, err := fetch(ctx, ref)
		if err != nil {
			failed++
			logger.ErrorContext(ctx, "profile failed", "profile", ref, "error", err)
			if errors.Is(err, profile.ErrAuthRequired) || ctx.Err() != nil {
				return failed + len(refs) - i - 1
			}
			continue
		}
		path, err := st.SaveProfile(p)
		if err != nil {
			failed++
			logger.ErrorContext(ctx, "save failed", "profile", p.ID, "error", err)
			continue
		}
		fmt.Fprintln(out, path)
	}
	return failed
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
