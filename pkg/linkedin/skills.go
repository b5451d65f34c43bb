package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

var endorsementsPattern = regexp.MustCompile(`(?i)^\d+\+?\s+endorsement`)

func parseSkills(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		sk := profile.Skill{
			Name: field(item, ".t-bold "+hidden, ""),
			URL:  href(item, "a[data-field='skill_page_skill_topic']"),
		}

		item.Find(hidden).Each(func(_ int, s *goquery.Selection) {
			t := text(s, "")
			lower := strings.ToLower(t)
			switch {
			case endorsementsPattern.MatchString(t):
				sk.Endorsements = ptr(strings.Fields(t)[0])
			case strings.HasPrefix(lower, "endorsed by"):
				who, _, _ := strings.Cut(strings.ReplaceAll(t, "Endorsed by", ""), "who")
				sk.EndorsedBy = ptr(trim(who))
			case strings.Contains(lower, "experiences across"):
				sk.Context = ptr(t)
			}
		})

		p.Skills = append(p.Skills, sk)
	})
}
