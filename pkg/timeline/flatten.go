package timeline

// Entry is one item of the experience list. An employer that lists several
// positions arrives as an Entry whose Role names the employer and whose SubRoles
// hold the positions.
type Entry struct {
	Role     RawRole   `json:"role"                yaml:"role"`
	SubRoles []RawRole `json:"sub_roles,omitempty" yaml:"sub_roles,omitempty"`
}

// Flatten turns entries into the flat role sequence Group expects.
// Sub-roles take the enclosing entry's company, replacing whatever they carried.
// An entry without sub-roles is emitted as is.
func Flatten(entries []Entry) []RawRole {
	var out []RawRole
	for _, e := range entries {
		if len(e.SubRoles) == 0 {
			out = append(out, e.Role)
			continue
		}
		for _, sub := range e.SubRoles {
			sub.Company = e.Role.Company
			out = append(out, sub)
		}
	}
	return out
}
