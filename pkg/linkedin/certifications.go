package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

var issuedMonthPattern = regexp.MustCompile(`Issued\s+(\w+\s+\d{4})`)

// credentialLink matches links to the usual credential verification hosts.
const credentialLink = "a[href*='coursera.org'], a[href*='credly.com'], a[href*='linkedin.com/learning'], a[href*='verify']"

func parseCertifications(root *goquery.Selection, p *profile.Profile, _ []timeline.Option) {
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		c := profile.Certification{
			Name:          field(item, boldLabel, ""),
			Issuer:        field(item, subtitle, ""),
			CredentialURL: href(item, credentialLink),
		}
		if issued := field(item, caption, ""); issued != nil {
			if m := issuedMonthPattern.FindStringSubmatch(*issued); m != nil {
				c.IssueDate = ptr(trim(m[1]))
			}
		}

		item.Find("span.t-14.t-normal.t-black " + hidden).Each(func(_ int, s *goquery.Selection) {
			t := text(s, "")
			if strings.Contains(strings.ToLower(t), "credential id") {
				c.CredentialID = ptr(trim(strings.ReplaceAll(t, "Credential ID", "")))
			}
		})

		item.Find(hidden).Each(func(_ int, s *goquery.Selection) {
			t := text(s, "")
			if !strings.HasPrefix(strings.ToLower(t), "skills:") {
				return
			}
			c.Skills = splitDots(strings.ReplaceAll(t, "Skills:", ""))
		})

		p.Certifications = append(p.Certifications, c)
	})
}

// splitDots splits a "a · b · c" list, dropping blank parts.
func splitDots(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, "·") {
		if part = trim(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
