// Command check-cookies reports where LinkedIn session cookies can be found and,
// optionally, whether they get past the login wall. Cookie values are never printed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/codeGROOVE-dev/liprofile/pkg/auth"
	"github.com/codeGROOVE-dev/liprofile/pkg/browser"
	"github.com/codeGROOVE-dev/liprofile/pkg/linkedin"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
)

const platform = "linkedin"

type namedSource struct {
	name   string
	source auth.Source
}

func main() {
	cookieFile := flag.String("cookies", "", "JSON cookie export to check")
	verify := flag.String("verify", "", "profile ID or URL to open with the first cookies found")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	ctx := context.Background()

	sources := []namedSource{
		{"file " + *cookieFile, auth.NewFileSource(*cookieFile)},
		{"environment", auth.EnvSource{}},
		{"browser stores", auth.NewBrowserSource(logger)},
	}
	if *cookieFile == "" {
		sources = sources[1:]
	}

	essential := auth.EssentialCookies(platform)
	var first []auth.Cookie
	for _, s := range sources {
		cookies, err := s.source.Cookies(ctx, platform)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", s.name, err)
			continue
		}
		if len(cookies) == 0 {
			fmt.Printf("⚠️  %s: no cookies\n", s.name)
			continue
		}

		names := auth.Names(cookies)
		fmt.Printf("✅ %s: %d cookies\n", s.name, len(cookies))
		for _, want := range essential {
			mark := "missing"
			if slices.Contains(names, want) {
				mark = "present"
			}
			fmt.Printf("     %-10s %s\n", want, mark)
		}
		if first == nil {
			first = cookies
		}
	}

	if first == nil {
		fmt.Printf("\n%v: set %v or pass -cookies\n", profile.ErrNoCookies, auth.EnvVarsForPlatform(platform))
		os.Exit(1)
	}
	if *verify == "" {
		return
	}

	if err := check(ctx, logger, first, *verify); err != nil {
		fmt.Printf("\n❌ %s: %v\n", *verify, err)
		os.Exit(1)
	}
	fmt.Printf("\n✅ %s: signed in\n", *verify)
}

// check opens the profile's main page with the given cookies.
func check(ctx context.Context, logger *slog.Logger, cookies []auth.Cookie, ref string) error {
	id := linkedin.PublicID(ref)
	if id == "" {
		return fmt.Errorf("%w: %q", profile.ErrProfileNotFound, ref)
	}

	cfg := browser.DefaultConfig()
	cfg.Attempts = 1
	session := browser.New(cfg, logger)
	if err := session.Start(ctx); err != nil {
		return err
	}
	defer session.Close() //nolint:errcheck // best effort

	if err := session.SetCookies(ctx, cookies); err != nil {
		return err
	}
	_, err := session.Render(ctx, "https://www.linkedin.com/in/"+id+"/", browser.Request{Selector: "h1"})
	if errors.Is(err, profile.ErrAuthRequired) {
		return fmt.Errorf("cookies rejected: %w", err)
	}
	return err
}
