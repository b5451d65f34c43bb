package main

import (
	"strings"
	"testing"

	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
)

func TestDecode(t *testing.T) {
	input := `[
  {"title": "Analyst", "company": "Globex", "start_date": "2015", "end_date": "May 2018", "duration": "3 yrs 5 mos"},
  {"company": "Acme", "sub_roles": [
    {"title": "Lead", "start_date": "Jan 2020", "end_date": "Present", "duration": "1 yr 3 mos"},
    {"title": "Engineer", "start_date": "Jun 2018", "end_date": "Dec 2019", "duration": "1 yr 6 mos"}
  ]}
]`

	entries, err := decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("decode() returned %d entries, want 2", len(entries))
	}
	if len(entries[1].SubRoles) != 2 {
		t.Errorf("second entry has %d sub-roles, want 2", len(entries[1].SubRoles))
	}

	records := timeline.Records(timeline.Summarize(timeline.Flatten(entries)))
	if len(records) != 2 {
		t.Fatalf("got %d tenures, want 2", len(records))
	}
	acme := records[1]
	if *acme.Company != "Acme" || *acme.StartDate != "Jun 2018" || *acme.EndDate != "Present" || *acme.Duration != "2 yrs 9 mos" {
		t.Errorf("Acme tenure = %s %s-%s %s", *acme.Company, *acme.StartDate, *acme.EndDate, *acme.Duration)
	}
	if acme.Roles[0].Company != nil {
		t.Error("roles inside a tenure should not repeat the company")
	}
}

func TestDecodeYAML(t *testing.T) {
	input := `
- title: Intern
  company: Hooli
  start_date: Jun 2012
`
	entries, err := decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	if len(entries) != 1 || *entries[0].Role.Title != "Intern" {
		t.Errorf("decode() = %+v", entries)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := decode(strings.NewReader(`{"title": `)); err == nil {
		t.Error("decode() should fail on malformed input")
	}
}
