// Package names provides the name definition model and the composition
// engine that turns a definition into first/middle/last name components
// and assembles them into full and short display strings.
package names

// Sex selects which value pools a segment draws from.
type Sex uint8

const (
	SexMale        Sex = 0
	SexFemale      Sex = 1
	SexUnspecified Sex = 2 // Creatures and anything without a sex; uses the "any" pools
)

// String returns the lowercase sex label.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unspecified"
	}
}

// Random is the entropy source consumed by the engine.
type Random interface {
	// Uniform returns an integer in [low, high], both inclusive.
	Uniform(low, high int) int
	// Probability reports whether a roll in [0, 100) is below percent.
	Probability(percent uint8) bool
}

// SegmentMask is a set of name segments.
type SegmentMask uint8

const (
	SegmentFirst SegmentMask = 1 << iota
	SegmentMiddle
	SegmentLast

	SegmentNone SegmentMask = 0
	SegmentAll              = SegmentFirst | SegmentMiddle | SegmentLast
)

// Has reports whether every segment in other is in m.
func (m SegmentMask) Has(other SegmentMask) bool {
	return other != 0 && m&other == other
}

// ParseSegment maps "first", "middle" or "last" to its mask bit.
func ParseSegment(s string) (SegmentMask, bool) {
	switch s {
	case "first":
		return SegmentFirst, true
	case "middle":
		return SegmentMiddle, true
	case "last":
		return SegmentLast, true
	}
	return SegmentNone, false
}
