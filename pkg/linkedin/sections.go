package linkedin

import (
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/liprofile/pkg/browser"
	"github.com/codeGROOVE-dev/liprofile/pkg/profile"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

// Section names, in the order they are scraped.
const (
	SectionMain            = "main"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionCertifications  = "certifications"
	SectionSkills          = "skills"
	SectionRecommendations = "recommendations"
	SectionPublications    = "publications"
	SectionPatents         = "patents"
)

// parseFunc extracts one section from its captured markup into p.
type parseFunc func(root *goquery.Selection, p *profile.Profile, opts []timeline.Option)

// section describes how one part of a profile is captured and parsed.
type section struct {
	name    string
	request browser.Request
	parse   parseFunc
}

// URL returns the page holding this section for the given public ID.
func (s section) URL(id string) string {
	if s.name == SectionMain {
		return profileBase + id + "/"
	}
	return profileBase + id + "/details/" + s.name + "/"
}

var (
	registryMu sync.RWMutex
	registry   []section
	byName     = make(map[string]section)
)

// register adds a section to the registry. Registration order is scrape order.
func register(s section) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := byName[s.name]; exists {
		panic("section already registered: " + s.name)
	}
	registry = append(registry, s)
	byName[s.name] = s
}

func init() {
	details := browser.Request{Selector: "main"}
	register(section{name: SectionMain, request: browser.Request{Expand: "button.inline-show-more-text__see-more"}, parse: parseMain})
	register(section{name: SectionExperience, request: details, parse: parseExperience})
	register(section{name: SectionEducation, request: details, parse: parseEducation})
	register(section{name: SectionCertifications, request: details, parse: parseCertifications})
	register(section{name: SectionSkills, request: details, parse: parseSkills})
	register(section{name: SectionRecommendations, request: details, parse: parseRecommendations})
	register(section{name: SectionPublications, request: details, parse: parsePublications})
	register(section{name: SectionPatents, request: details, parse: parsePatents})
}

// Sections returns every known section name in scrape order.
func Sections() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.name
	}
	return names
}

// selectSections returns the registered sections named in want, in scrape order.
// An empty want selects everything.
func selectSections(want []string) ([]section, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if len(want) == 0 {
		return append([]section(nil), registry...), nil
	}

	wanted := make(map[string]bool, len(want))
	for _, name := range want {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", profile.ErrUnknownSection, name)
		}
		wanted[name] = true
	}

	var out []section
	for _, s := range registry {
		if wanted[s.name] {
			out = append(out, s)
		}
	}
	return out, nil
}

func lookupSection(name string) (section, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := byName[name]
	return s, ok
}
