package names

// Segment holds the rules for one name part (first, middle or last).
// Value pools are keyed by sex with Any as the fallback; the affix pools
// apply regardless of sex.
type Segment struct {
	Male   Pool `json:"male"`
	Female Pool `json:"female"`
	Any    Pool `json:"any"`

	Prefix    Pool `json:"prefix"`
	Suffix    Pool `json:"suffix"`
	Circumfix bool `json:"circumfix"` // prefix and suffix drawn as a pair sharing one index
}

// Resolve returns the value pool for sex. Male and female fall back to Any
// when their own pool is empty; unspecified always uses Any.
func (s *Segment) Resolve(sex Sex) *Pool {
	switch sex {
	case SexMale:
		if !s.Male.IsEmpty() {
			return &s.Male
		}
	case SexFemale:
		if !s.Female.IsEmpty() {
			return &s.Female
		}
	}
	return &s.Any
}

// Assign draws a value and its affixes for sex. ok is false when no value
// was drawn, in which case all three strings are empty. Missing affixes
// never fail the assignment.
func (s *Segment) Assign(rng Random, sex Sex) (value, prefix, suffix string, ok bool) {
	value = s.Resolve(sex).DrawValue(rng)
	if value == "" {
		return "", "", "", false
	}

	if s.Circumfix {
		prefix, suffix = s.circumfix(rng)
		return value, prefix, suffix, true
	}

	// Prefix exclusivity is checked first, so it wins when both claim it.
	switch {
	case s.Prefix.Exclusive:
		prefix = s.Prefix.DrawValue(rng)
	case s.Suffix.Exclusive:
		suffix = s.Suffix.DrawValue(rng)
	default:
		prefix = s.Prefix.DrawValue(rng)
		suffix = s.Suffix.DrawValue(rng)
	}
	return value, prefix, suffix, true
}

// circumfix draws a prefix with the smaller pool size as the index ceiling
// and pairs it with the suffix at the same index. A prefix index past the
// end of the suffix pool yields no affixes: either both are set or neither.
func (s *Segment) circumfix(rng Random) (string, string) {
	n := min(s.Prefix.Size(), s.Suffix.Size())
	if n == 0 {
		return "", ""
	}
	prefix, i := s.Prefix.Draw(rng, n)
	if prefix == "" {
		return "", ""
	}
	suffix := s.Suffix.NameAt(i)
	if suffix == "" {
		return "", ""
	}
	return prefix, suffix
}
