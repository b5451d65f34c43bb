package timeline

// roleKey identifies a role by title and start date, compared as raw text.
type roleKey struct {
	title textKey
	start textKey
}

// Dedupe drops roles whose (title, start date) pair was already seen.
// The first occurrence wins and order of first appearance is kept.
// Roles differing only in duration or description still collapse.
func Dedupe(roles []RawRole) []RawRole {
	seen := newOrderedMap[roleKey, RawRole]()
	for _, r := range roles {
		seen.SetIfAbsent(roleKey{title: keyOf(r.Title), start: keyOf(r.StartDate)}, r)
	}
	if seen.Len() == 0 {
		return nil
	}
	return seen.Values()
}
