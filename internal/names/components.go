package names

import "strings"

// Components is the result of a generation: one value, prefix and suffix
// per name part, the joiner, and the parts used by the short form.
// An empty string means the slot is absent.
type Components struct {
	FirstName   string `json:"first_name,omitempty" db:"first_name"`
	FirstPrefix string `json:"first_prefix,omitempty" db:"first_prefix"`
	FirstSuffix string `json:"first_suffix,omitempty" db:"first_suffix"`

	MiddleName   string `json:"middle_name,omitempty" db:"middle_name"`
	MiddlePrefix string `json:"middle_prefix,omitempty" db:"middle_prefix"`
	MiddleSuffix string `json:"middle_suffix,omitempty" db:"middle_suffix"`

	LastName   string `json:"last_name,omitempty" db:"last_name"`
	LastPrefix string `json:"last_prefix,omitempty" db:"last_prefix"`
	LastSuffix string `json:"last_suffix,omitempty" db:"last_suffix"`

	Conjunction   string      `json:"conjunction,omitempty" db:"conjunction"`
	ShortSegments SegmentMask `json:"short_segments" db:"short_segments"`
}

// IsValid reports whether at least one of first, middle or last is present.
func (c *Components) IsValid() bool {
	return c.FirstName != "" || c.MiddleName != "" || c.LastName != ""
}

// Assemble joins every present part with the conjunction. Each part is
// prefix, value and suffix concatenated verbatim.
func (c *Components) Assemble() (string, bool) {
	return c.assemble(SegmentAll)
}

// AssembleShort joins the present parts that belong to the short form.
// It fails when no short-form part is present.
func (c *Components) AssembleShort() (string, bool) {
	return c.assemble(c.ShortSegments)
}

func (c *Components) assemble(segments SegmentMask) (string, bool) {
	if !c.IsValid() {
		return "", false
	}

	parts := make([]string, 0, 3)
	if segments.Has(SegmentFirst) && c.FirstName != "" {
		parts = append(parts, c.FirstPrefix+c.FirstName+c.FirstSuffix)
	}
	if segments.Has(SegmentMiddle) && c.MiddleName != "" {
		parts = append(parts, c.MiddlePrefix+c.MiddleName+c.MiddleSuffix)
	}
	if segments.Has(SegmentLast) && c.LastName != "" {
		parts = append(parts, c.LastPrefix+c.LastName+c.LastSuffix)
	}
	if len(parts) == 0 {
		// Only reachable for the short form: valid components whose
		// present parts are all outside the mask.
		return "", false
	}
	return strings.Join(parts, c.Conjunction), true
}
