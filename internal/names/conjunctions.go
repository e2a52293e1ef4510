package names

// Conjunctions are the joiners placed between assembled name parts.
type Conjunctions struct {
	Male   []string `json:"male"`
	Female []string `json:"female"`
	Any    []string `json:"any"`
}

// List returns the joiners for sex, falling back to Any when empty.
func (c *Conjunctions) List(sex Sex) []string {
	switch sex {
	case SexMale:
		if len(c.Male) > 0 {
			return c.Male
		}
	case SexFemale:
		if len(c.Female) > 0 {
			return c.Female
		}
	}
	return c.Any
}

// Random picks a joiner for sex uniformly, or "" when none are defined.
func (c *Conjunctions) Random(rng Random, sex Sex) string {
	list := c.List(sex)
	if len(list) == 0 {
		return ""
	}
	return list[rng.Uniform(0, len(list)-1)]
}
