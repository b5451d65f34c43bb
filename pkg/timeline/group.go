package timeline

import "slices"

// Option configures grouping.
type Option func(*config)

type config struct {
	unparsedLast bool
}

// WithUnparsedLast sorts roles whose start date could not be parsed after every
// dated role instead of before them.
func WithUnparsedLast() Option {
	return func(c *config) { c.unparsedLast = true }
}

// Summarize dedupes roles and groups them by employer.
func Summarize(roles []RawRole, opts ...Option) []EmployerTenure {
	return Group(Dedupe(roles), opts...)
}

// Group buckets roles by company and aggregates each bucket into an EmployerTenure.
// Buckets are emitted in the order their company was first seen; a missing company
// forms its own bucket. Roles are expected to carry their employer already
// (see Flatten).
func Group(roles []RawRole, opts ...Option) []EmployerTenure {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	buckets := newOrderedMap[textKey, []NormalizedRole]()
	for _, r := range roles {
		n := Normalize(r)
		buckets.Update(keyOf(r.Company), func(rs []NormalizedRole) []NormalizedRole {
			return append(rs, n)
		})
	}
	if buckets.Len() == 0 {
		return nil
	}

	out := make([]EmployerTenure, 0, buckets.Len())
	for _, rs := range buckets.Values() {
		out = append(out, aggregate(rs, cfg))
	}
	return out
}

func aggregate(roles []NormalizedRole, cfg *config) EmployerTenure {
	slices.SortStableFunc(roles, func(a, b NormalizedRole) int {
		return compareStart(a.Start, b.Start, cfg.unparsedLast)
	})

	t := EmployerTenure{Company: roles[0].Company, Roles: roles}
	for _, r := range roles {
		if r.Start != nil && (t.Start == nil || r.Start.Before(*t.Start)) {
			t.Start = r.Start
		}
		if r.End != nil && (t.End == nil || t.End.Before(*r.End)) {
			t.End = r.End
		}
		if r.Ongoing {
			t.Ongoing = true
		}
		t.Months += r.Months
	}
	t.Duration = FormatDuration(t.Months)
	return t
}

// compareStart orders start dates. A nil date acts as a sentinel below every real
// date, or above every real date when unparsedLast is set.
func compareStart(a, b *Date, unparsedLast bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if unparsedLast {
			return 1
		}
		return -1
	case b == nil:
		if unparsedLast {
			return -1
		}
		return 1
	default:
		return a.Compare(*b)
	}
}
