// Command timeline groups raw experience entries into per-employer tenures
// without touching the network.
//
// Input is a JSON (or YAML) array of roles. An entry with "sub_roles" lists
// several positions at the employer named by its "company".
//
// Usage:
//
//	timeline roles.json
//	cat roles.json | timeline -format yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/codeGROOVE-dev/liprofile/pkg/store"
	"github.com/codeGROOVE-dev/liprofile/pkg/timeline"
	"gopkg.in/yaml.v3"
)

// inputRole is one element of the input array.
type inputRole struct {
	timeline.RawRole `yaml:",inline"`

	SubRoles []timeline.RawRole `json:"sub_roles,omitempty" yaml:"sub_roles,omitempty"`
}

func main() {
	format := flag.String("format", store.FormatJSON, "output format: json or yaml")
	unparsedLast := flag.Bool("unparsed-last", false, "sort roles with unreadable start dates after dated ones")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Usage: timeline [options] [roles.json]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close() //nolint:errcheck // read-only
		in = f
	}

	entries, err := decode(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	var opts []timeline.Option
	if *unparsedLast {
		opts = append(opts, timeline.WithUnparsedLast())
	}
	records := timeline.Records(timeline.Summarize(timeline.Flatten(entries), opts...))
	if records == nil {
		records = []timeline.TenureRecord{}
	}

	out, err := store.Encode(records, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

// decode reads the input array. YAML is a superset of JSON, so both parse.
func decode(r io.Reader) ([]timeline.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var roles []inputRole
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	entries := make([]timeline.Entry, len(roles))
	for i, r := range roles {
		entries[i] = timeline.Entry{Role: r.RawRole, SubRoles: r.SubRoles}
	}
	return entries, nil
}
