package arena

// NameLookup maps contestant ids to display names. It is built once per
// screen load and handed to whatever renders battle rows, which decides how
// a missing id is shown.
type NameLookup map[string]string

// NewNameLookup indexes contestants by id. Later duplicates win.
func NewNameLookup(contestants []Contestant) NameLookup {
	lookup := make(NameLookup, len(contestants))
	for _, c := range contestants {
		if c.ID == "" {
			continue
		}
		lookup[c.ID] = c.Name
	}
	return lookup
}

// Lookup returns the name for id and whether it was known.
func (l NameLookup) Lookup(id string) (string, bool) {
	name, ok := l[id]
	return name, ok
}
