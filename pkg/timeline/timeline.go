// Package timeline normalizes scraped experience entries into per-employer tenures.
//
// Input is a flat sequence of loosely-structured role records as they come off the
// page: free-text dates, free-text durations, duplicated roles, nested sub-roles.
// Output is one EmployerTenure per employer with an aggregated date range and duration.
// Every function here is total: text that cannot be parsed becomes an absent value,
// never an error.
package timeline

import (
	"time"
)

// RawRole is one employment entry as extracted from the page.
// A nil field was not found; an empty string was found but blank.
type RawRole struct {
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Company     *string `json:"company,omitempty"     yaml:"company,omitempty"`
	StartDate   *string `json:"start_date,omitempty"  yaml:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"    yaml:"end_date,omitempty"`
	Duration    *string `json:"duration,omitempty"    yaml:"duration,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NormalizedRole is a RawRole with its dates and duration parsed.
type NormalizedRole struct {
	RawRole

	Start   *Date // nil when StartDate is absent or unparseable
	End     *Date // nil when EndDate is absent, unparseable, or "Present"
	Ongoing bool  // EndDate is the "Present" sentinel
	Months  int   // parsed Duration, 0 when absent
}

// EmployerTenure groups the roles held at one employer.
type EmployerTenure struct {
	Company  *string
	Start    *Date
	End      *Date
	Ongoing  bool
	Months   int
	Duration *string
	Roles    []NormalizedRole
}

// TenureRecord is the serialized shape of an EmployerTenure.
// Roles carry their raw text only and omit the company they are grouped under.
type TenureRecord struct {
	Company   *string   `json:"company,omitempty"    yaml:"company,omitempty"`
	StartDate *string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"   yaml:"end_date,omitempty"`
	Duration  *string   `json:"duration,omitempty"   yaml:"duration,omitempty"`
	Roles     []RawRole `json:"roles,omitempty"      yaml:"roles,omitempty"`
}

// Present is the end-date sentinel for an ongoing role or tenure.
const Present = "Present"

// Date is a calendar month.
type Date struct {
	Year  int
	Month time.Month
}

// dateLayout is how dates are rendered back to text.
const dateLayout = "Jan 2006"

// Compare returns -1, 0, or +1 depending on whether d is before, equal to, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year < o.Year:
		return -1
	case d.Year > o.Year:
		return 1
	case d.Month < o.Month:
		return -1
	case d.Month > o.Month:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

func (d Date) String() string {
	return time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// MarshalText renders the date as "Jan 2006".
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// EndText returns "Present" for ongoing tenures, the latest end date otherwise,
// or nil when neither is known.
func (t EmployerTenure) EndText() *string {
	if t.Ongoing {
		return ptr(Present)
	}
	return dateText(t.End)
}

// Record converts the tenure into its serialized shape.
func (t EmployerTenure) Record() TenureRecord {
	roles := make([]RawRole, len(t.Roles))
	for i, r := range t.Roles {
		roles[i] = r.RawRole
		roles[i].Company = nil
	}
	return TenureRecord{
		Company:   t.Company,
		StartDate: dateText(t.Start),
		EndDate:   t.EndText(),
		Duration:  t.Duration,
		Roles:     roles,
	}
}

// Summary collapses the tenure into a single RawRole spanning the whole tenure.
// Grouping summaries again yields the same company and date range.
func (t EmployerTenure) Summary() RawRole {
	return RawRole{
		Company:   t.Company,
		StartDate: dateText(t.Start),
		EndDate:   t.EndText(),
		Duration:  t.Duration,
	}
}

// Records converts tenures into their serialized shapes.
func Records(tenures []EmployerTenure) []TenureRecord {
	if len(tenures) == 0 {
		return nil
	}
	out := make([]TenureRecord, len(tenures))
	for i, t := range tenures {
		out[i] = t.Record()
	}
	return out
}

func dateText(d *Date) *string {
	if d == nil {
		return nil
	}
	return ptr(d.String())
}

func ptr(s string) *string { return &s }
