package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

var (
	// "· 2nd", "· 3rd": connection degree badges that precede the headline.
	degreePattern         = regexp.MustCompile(`^·\s*\d+(st|nd|rd)?$`)
	recommendationPattern = regexp.MustCompile(`^([A-Za-z]+ \d{1,2}, \d{4})`)
)

const authorLink = "a.optional-action-target-wrapper"

func parseRecommendations(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		r := profile.Recommendation{
			Name:       field(item, authorLink+" "+hidden, ""),
			ProfileURL: href(item, authorLink),
			Text:       field(item, detail, " "),
		}

		item.Find("span.t-14.t-normal " + hidden).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			t := text(s, "")
			if degreePattern.MatchString(t) {
				return true
			}
			if headline, org, ok := strings.Cut(t, " at "); ok {
				r.Headline = ptr(trim(headline))
				r.Organization = ptr(trim(org))
			} else {
				r.Headline = ptr(t)
			}
			return false
		})

		if c := field(item, caption, " "); c != nil {
			rest := *c
			if m := recommendationPattern.FindStringSubmatch(rest); m != nil {
				r.Date = ptr(m[1])
				rest = rest[len(m[1]):]
			}
			r.Relationship = nonEmpty(strings.TrimLeft(trim(rest), ", "))
		}

		p.Recommendations = append(p.Recommendations, r)
	})
}
