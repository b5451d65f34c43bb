package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

var schoolDatesPattern = regexp.MustCompile(`^(\w+ \d{4}|\d{4})\s*-\s*(\w+ \d{4}|\d{4}|Present)`)

const activitiesLabel = "activities and societies"

func parseEducation(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		e := profile.Education{
			School:     field(item, boldLabel, ""),
			Degree:     field(item, subtitle, ""),
			Activities: activities(item),
		}
		if c := field(item, caption, ""); c != nil {
			if m := schoolDatesPattern.FindStringSubmatch(*c); m != nil {
				e.StartDate = ptr(m[1])
				e.EndDate = ptr(m[2])
			}
		}

		var lines []string
		item.Find(detail).Each(func(_ int, s *goquery.Selection) {
			t := text(s, "")
			if t != "" && !strings.Contains(strings.ToLower(t), activitiesLabel) {
				lines = append(lines, t)
			}
		})
		if len(lines) > 0 {
			e.Description = ptr(strings.Join(lines, " "))
		}

		p.Education = append(p.Education, e)
	})
}

// activities finds the span labelled "Activities and societies" and returns the
// text of its parent without the label.
func activities(item *goquery.Selection) *string {
	label := item.Find("span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		str, ok := ownString(s.Nodes[0])
		return ok && strings.Contains(strings.ToLower(str), activitiesLabel)
	}).First()
	if label.Length() == 0 {
		return nil
	}
	t := text(label.Parent(), " ")
	return ptr(trim(strings.ReplaceAll(t, "Activities and societies:", "")))
}
