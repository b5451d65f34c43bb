// Package profile defines the structured data extracted from a LinkedIn profile.
package profile

import (
	"errors"

	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

// Common errors returned while scraping.
var (
	ErrAuthRequired    = errors.New("authentication required")
	ErrNoCookies       = errors.New("no cookies available")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownSection  = errors.New("unknown section")
)

// Profile holds every section scraped for one member.
// Sections that yielded nothing are left empty and omitted from output.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Profile struct {
	ID string `json:"-" yaml:"-"` // public identifier, e.g. "johndoe"

	Main            *Main                   `json:"main,omitempty"            yaml:"main,omitempty"`
	Experience      []timeline.TenureRecord `json:"experience,omitempty"      yaml:"experience,omitempty"`
	Education       []Education             `json:"education,omitempty"       yaml:"education,omitempty"`
	Certifications  []Certification         `json:"certifications,omitempty"  yaml:"certifications,omitempty"`
	Skills          []Skill                 `json:"skills,omitempty"          yaml:"skills,omitempty"`
	Recommendations []Recommendation        `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Publications    []Publication           `json:"publications,omitempty"    yaml:"publications,omitempty"`
	Patents         []Patent                `json:"patents,omitempty"         yaml:"patents,omitempty"`
}

// Main is the top card of the profile page.
type Main struct {
	Name      *string `json:"name,omitempty"      yaml:"name,omitempty"`
	Headline  *string `json:"headline,omitempty"  yaml:"headline,omitempty"`
	Followers *string `json:"followers,omitempty" yaml:"followers,omitempty"`
	About     *string `json:"about,omitempty"     yaml:"about,omitempty"`
}

// Empty reports whether no field was found.
func (m Main) Empty() bool {
	return m.Name == nil && m.Headline == nil && m.Followers == nil && m.About == nil
}

// Education is one school entry.
type Education struct {
	School      *string `json:"school,omitempty"      yaml:"school,omitempty"`
	Degree      *string `json:"degree,omitempty"      yaml:"degree,omitempty"`
	StartDate   *string `json:"start_date,omitempty"  yaml:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"    yaml:"end_date,omitempty"`
	Activities  *string `json:"activities,omitempty"  yaml:"activities,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Certification is one license or certification.
type Certification struct {
	Name          *string  `json:"name,omitempty"           yaml:"name,omitempty"`
	Issuer        *string  `json:"issuer,omitempty"         yaml:"issuer,omitempty"`
	IssueDate     *string  `json:"issue_date,omitempty"     yaml:"issue_date,omitempty"`
	CredentialID  *string  `json:"credential_id,omitempty"  yaml:"credential_id,omitempty"`
	CredentialURL *string  `json:"credential_url,omitempty" yaml:"credential_url,omitempty"`
	Skills        []string `json:"skills,omitempty"         yaml:"skills,omitempty"`
}

// Skill is one listed skill and its endorsement summary.
type Skill struct {
	Name         *string `json:"name,omitempty"         yaml:"name,omitempty"`
	Endorsements *string `json:"endorsements,omitempty" yaml:"endorsements,omitempty"`
	EndorsedBy   *string `json:"endorsed_by,omitempty"  yaml:"endorsed_by,omitempty"`
	Context      *string `json:"context,omitempty"      yaml:"context,omitempty"`
	URL          *string `json:"url,omitempty"          yaml:"url,omitempty"`
}

// Recommendation is one received recommendation.
type Recommendation struct {
	Name         *string `json:"name,omitempty"         yaml:"name,omitempty"`
	Headline     *string `json:"headline,omitempty"     yaml:"headline,omitempty"`
	Organization *string `json:"organization,omitempty" yaml:"organization,omitempty"`
	Date         *string `json:"date,omitempty"         yaml:"date,omitempty"`
	Relationship *string `json:"relationship,omitempty" yaml:"relationship,omitempty"`
	Text         *string `json:"text,omitempty"         yaml:"text,omitempty"`
	ProfileURL   *string `json:"profile_url,omitempty"  yaml:"profile_url,omitempty"`
}

// Publication is one listed publication.
type Publication struct {
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Publisher   *string `json:"publisher,omitempty"   yaml:"publisher,omitempty"`
	Date        *string `json:"date,omitempty"        yaml:"date,omitempty"`
	URL         *string `json:"url,omitempty"         yaml:"url,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Empty reports whether no field was found.
func (p Publication) Empty() bool {
	return p.Title == nil && p.Publisher == nil && p.Date == nil && p.URL == nil && p.Description == nil
}

// Patent is one listed patent.
type Patent struct {
	Title        *string `json:"title,omitempty"         yaml:"title,omitempty"`
	PatentNumber *string `json:"patent_number,omitempty" yaml:"patent_number,omitempty"`
	IssueDate    *string `json:"issue_date,omitempty"    yaml:"issue_date,omitempty"`
	Description  *string `json:"description,omitempty"   yaml:"description,omitempty"`
}

// Empty reports whether no field was found.
func (p Patent) Empty() bool {
	return p.Title == nil && p.PatentNumber == nil && p.IssueDate == nil && p.Description == nil
}
