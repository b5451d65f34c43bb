package timeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Pre-compiled duration patterns. Either may be missing; surrounding words are ignored.
// LinkedIn often separates numbers and units with a non-breaking space.
var (
	yearsPattern  = regexp.MustCompile(`(\d+)[\s\p{Zs}]+yr`)
	monthsPattern = regexp.MustCompile(`(\d+)[\s\p{Zs}]+mo`)
	spacePattern  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// maxUnits bounds a single year or month count so totals cannot overflow.
const maxUnits = 100000

// dateRule is one recognized date shape. Rules are tried in order; first match wins.
type dateRule struct {
	name   string
	layout string
}

var dateRules = []dateRule{
	{name: "month-year", layout: "Jan 2006"},
	{name: "year", layout: "2006"},
}

// ParseDuration extracts a month count from text such as "3 yrs 2 mos".
// It returns 0 for nil or unrecognized text.
func ParseDuration(s *string) int {
	if s == nil {
		return 0
	}
	return firstInt(yearsPattern, *s)*12 + firstInt(monthsPattern, *s)
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > maxUnits {
		return 0
	}
	return n
}

// FormatDuration renders a month count as "X yrs Y mos".
// Units are pluralized only above one, zero units are left out, and a zero total is nil.
func FormatDuration(months int) *string {
	years, rest := months/12, months%12
	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d yr%s", years, plural(years)))
	}
	if rest > 0 {
		parts = append(parts, fmt.Sprintf("%d mo%s", rest, plural(rest)))
	}
	if len(parts) == 0 {
		return nil
	}
	return ptr(strings.Join(parts, " "))
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// ParseDate parses "Jun 2019" or "2019". Anything else, "Present" included, is unparsed.
// Any run of whitespace, non-breaking spaces included, counts as one space.
func ParseDate(s string) (Date, bool) {
	s = spacePattern.ReplaceAllString(s, " ")
	for _, rule := range dateRules {
		t, err := time.Parse(rule.layout, s)
		if err != nil {
			continue
		}
		return Date{Year: t.Year(), Month: t.Month()}, true
	}
	return Date{}, false
}

// IsPresent reports whether an end date is the ongoing sentinel.
func IsPresent(s *string) bool {
	return s != nil && strings.EqualFold(*s, Present)
}

// Normalize parses a role's dates and duration. The raw text is kept as is.
func Normalize(r RawRole) NormalizedRole {
	n := NormalizedRole{
		RawRole: r,
		Ongoing: IsPresent(r.EndDate),
		Months:  ParseDuration(r.Duration),
	}
	if r.StartDate != nil {
		if d, ok := ParseDate(*r.StartDate); ok {
			n.Start = &d
		}
	}
	if r.EndDate != nil && !n.Ongoing {
		if d, ok := ParseDate(*r.EndDate); ok {
			n.End = &d
		}
	}
	return n
}
