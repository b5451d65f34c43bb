package linkedin

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

const (
	listItem    = "li.pvs-list__paged-list-item"
	subRoleItem = "li.pvs-list__item--one-column"
	boldLabel   = "div.t-bold " + hidden
	subtitle    = "span.t-14.t-normal > " + hidden
	caption     = "span.pvs-entity__caption-wrapper[aria-hidden='true']"
	detail      = "div.t-14.t-normal.t-black " + hidden
)

var (
	// "Jan 2020 - Present · 1 yr 3 mos", "2015 - 2018 · 3 yrs".
	dateRangePattern = regexp.MustCompile(`([A-Za-z]+[\s\p{Zs}]\d{4}|\d{4})[\s\p{Zs}]*[-to]+[\s\p{Zs}]*(Present|[A-Za-z]+[\s\p{Zs}]\d{4}|\d{4})`)
	durationPattern  = regexp.MustCompile(`·[\s\p{Zs}]*(.+)`)
	// A subtitle like "2019 - 2021 · 2 yrs" means the item is a stray date row, not an employer.
	dateSubtitlePattern = regexp.MustCompile(`^\d{4}.*·.*`)
)

func parseExperience(root *goquery.Selection, p *profile.Profile, opts []timeline.Option) {
	var entries []timeline.Entry
	root.Find(listItem).Each(func(_ int, item *goquery.Selection) {
		if e, ok := experienceEntry(item); ok {
			entries = append(entries, e)
		}
	})
	p.Experience = timeline.Records(timeline.Summarize(timeline.Flatten(entries), opts...))
}

// experienceEntry reads one list item. Items grouping several positions at one
// employer carry the employer in their header and the positions as sub-roles.
func experienceEntry(item *goquery.Selection) (timeline.Entry, bool) {
	if subs := item.Find(subRoleItem); subs.Length() > 0 {
		e := timeline.Entry{Role: timeline.RawRole{Company: field(item, boldLabel, "")}}
		subs.Each(func(_ int, sub *goquery.Selection) {
			r := timeline.RawRole{
				Title:       field(sub, boldLabel, ""),
				Description: field(sub, detail, " "),
			}
			applyCaption(&r, sub)
			e.SubRoles = append(e.SubRoles, r)
		})
		return e, true
	}

	r := timeline.RawRole{
		Title:       field(item, "div.hoverable-link-text.t-bold "+hidden, ""),
		Company:     field(item, subtitle, ""),
		Description: field(item, detail, " "),
	}
	if r.Company != nil && dateSubtitlePattern.MatchString(*r.Company) {
		return timeline.Entry{}, false
	}
	applyCaption(&r, item)
	return timeline.Entry{Role: r}, true
}

// applyCaption fills the date range and duration from the item's caption.
func applyCaption(r *timeline.RawRole, s *goquery.Selection) {
	c := field(s, caption, "")
	if c == nil {
		return
	}
	if m := dateRangePattern.FindStringSubmatch(*c); m != nil {
		r.StartDate = ptr(m[1])
		r.EndDate = ptr(m[2])
	}
	if m := durationPattern.FindStringSubmatch(*c); m != nil {
		r.Duration = ptr(trim(m[1]))
	}
}
