package names

// Definition is a complete naming rule set. It is read-only once loaded
// and may be shared by any number of concurrent generation calls.
type Definition struct {
	ID            string       `json:"id"`
	First         Segment      `json:"first"`
	Middle        Segment      `json:"middle"`
	Last          Segment      `json:"last"`
	Conjunctions  Conjunctions `json:"conjunctions"`
	ShortSegments SegmentMask  `json:"short_segments"`
}

// NewComponents returns empty components carrying the definition's short form.
func (d *Definition) NewComponents() *Components {
	return &Components{ShortSegments: d.ShortSegments}
}

// GenerateFirst fills the first-name slots of c.
func (d *Definition) GenerateFirst(rng Random, sex Sex, c *Components) bool {
	var ok bool
	c.FirstName, c.FirstPrefix, c.FirstSuffix, ok = d.First.Assign(rng, sex)
	return ok
}

// GenerateMiddle fills the middle-name slots of c.
func (d *Definition) GenerateMiddle(rng Random, sex Sex, c *Components) bool {
	var ok bool
	c.MiddleName, c.MiddlePrefix, c.MiddleSuffix, ok = d.Middle.Assign(rng, sex)
	return ok
}

// GenerateLast fills the last-name slots of c.
func (d *Definition) GenerateLast(rng Random, sex Sex, c *Components) bool {
	var ok bool
	c.LastName, c.LastPrefix, c.LastSuffix, ok = d.Last.Assign(rng, sex)
	return ok
}

// GenerateConjunction picks the joiner for c.
func (d *Definition) GenerateConjunction(rng Random, sex Sex, c *Components) bool {
	c.Conjunction = d.Conjunctions.Random(rng, sex)
	return c.Conjunction != ""
}

// GenerateFull runs every part generator and reports whether any succeeded.
// All four always run: partial definitions must still fill what they define.
func (d *Definition) GenerateFull(rng Random, sex Sex, c *Components) bool {
	first := d.GenerateFirst(rng, sex, c)
	middle := d.GenerateMiddle(rng, sex, c)
	last := d.GenerateLast(rng, sex, c)
	conj := d.GenerateConjunction(rng, sex, c)
	return first || middle || last || conj
}
