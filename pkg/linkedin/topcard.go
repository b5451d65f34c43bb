package linkedin

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

// parseMain reads the top card and About section from the full profile page.
func parseMain(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	m := profile.Main{
		Name:     field(root, "h1", ""),
		Headline: field(root, "div.text-body-medium", ""),
		About:    field(root, "div[class*='inline-show-more-text'] "+hidden, "\n"),
	}

	root.Find("main " + hidden).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := text(s, "")
		if strings.Contains(strings.ToLower(t), "follower") {
			m.Followers = ptr(t)
			return false
		}
		return true
	})

	if !m.Empty() {
		p.Main = &m
	}
}
