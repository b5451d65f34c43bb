package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

var issuedDayPattern = regexp.MustCompile(`Issued\s+(\w+\s+\d{1,2},\s+\d{4})`)

const infoLine = "span.t-14.t-normal " + hidden

func parsePublications(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		pub := profile.Publication{
			Title:       field(item, ".t-bold "+hidden, ""),
			URL:         href(item, "a[href]"),
			Description: field(item, detail, " "),
		}
		if info := field(item, infoLine, ""); info != nil {
			if strings.Contains(*info, "·") {
				if parts := splitTrim(*info, "·"); len(parts) == 2 {
					pub.Publisher, pub.Date = ptr(parts[0]), ptr(parts[1])
				}
			} else {
				pub.Publisher = info
			}
		}
		if !pub.Empty() {
			p.Publications = append(p.Publications, pub)
		}
	})
}

func parsePatents(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		pat := profile.Patent{
			Title:       field(item, ".t-bold "+hidden, ""),
			Description: field(item, detail, " "),
		}
		if info := field(item, infoLine, ""); info != nil {
			if parts := splitTrim(*info, "·"); len(parts) == 2 {
				pat.PatentNumber = ptr(parts[0])
				if m := issuedDayPattern.FindStringSubmatch(parts[1]); m != nil {
					pat.IssueDate = ptr(m[1])
				}
			}
		}
		if !pat.Empty() {
			p.Patents = append(p.Patents, pat)
		}
	})
}

// splitTrim splits s on sep and trims every part, keeping blanks.
func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, part := range parts {
		parts[i] = trim(part)
	}
	return parts
}
