// Package rules loads naming definitions from YAML or JSON documents and
// keeps them in a registry keyed by definition id.
package rules

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/talgya/npcnames/internal/names"
)

var (
	ErrUnknownDefinition = errors.New("unknown name definition")
	ErrMissingID         = errors.New("name definition has no id")
	ErrInvalidChance     = errors.New("chance must be between 0 and 100")
	ErrUnknownSegment    = errors.New("unknown short segment")
	ErrUnsupportedFormat = errors.New("unsupported rules file format")
)

// defaultChance applies when a pool omits its chance.
const defaultChance = 100

// Document is the on-disk shape of a rules file.
type Document struct {
	Definitions []DefinitionDoc `yaml:"definitions" json:"definitions"`
}

// DefinitionDoc describes one definition.
type DefinitionDoc struct {
	ID           string          `yaml:"id" json:"id"`
	First        SegmentDoc      `yaml:"first" json:"first"`
	Middle       SegmentDoc      `yaml:"middle" json:"middle"`
	Last         SegmentDoc      `yaml:"last" json:"last"`
	Conjunctions ConjunctionsDoc `yaml:"conjunctions" json:"conjunctions"`
	Short        []string        `yaml:"short" json:"short"` // defaults to [first]
}

// SegmentDoc describes one name part.
type SegmentDoc struct {
	Male      PoolDoc `yaml:"male" json:"male"`
	Female    PoolDoc `yaml:"female" json:"female"`
	Any       PoolDoc `yaml:"any" json:"any"`
	Prefix    PoolDoc `yaml:"prefix" json:"prefix"`
	Suffix    PoolDoc `yaml:"suffix" json:"suffix"`
	Circumfix bool    `yaml:"circumfix" json:"circumfix"`
}

// PoolDoc describes a candidate pool.
type PoolDoc struct {
	Names     []string `yaml:"names" json:"names"`
	Chance    *int     `yaml:"chance" json:"chance"`
	Exclusive bool     `yaml:"exclusive" json:"exclusive"`
	Static    bool     `yaml:"static" json:"static"`
}

// ConjunctionsDoc lists joiners by sex.
type ConjunctionsDoc struct {
	Male   []string `yaml:"male" json:"male"`
	Female []string `yaml:"female" json:"female"`
	Any    []string `yaml:"any" json:"any"`
}

// Build converts the document into a definition. Empty candidate strings
// are dropped so that "" only ever means an absent component.
func (d DefinitionDoc) Build() (*names.Definition, error) {
	if d.ID == "" {
		return nil, ErrMissingID
	}

	def := &names.Definition{ID: d.ID}
	var err error
	if def.First, err = d.First.build(d.ID, "first"); err != nil {
		return nil, err
	}
	if def.Middle, err = d.Middle.build(d.ID, "middle"); err != nil {
		return nil, err
	}
	if def.Last, err = d.Last.build(d.ID, "last"); err != nil {
		return nil, err
	}
	def.Conjunctions = names.Conjunctions{
		Male:   compact(d.ID, "conjunctions.male", d.Conjunctions.Male),
		Female: compact(d.ID, "conjunctions.female", d.Conjunctions.Female),
		Any:    compact(d.ID, "conjunctions.any", d.Conjunctions.Any),
	}

	if len(d.Short) == 0 {
		def.ShortSegments = names.SegmentFirst
	}
	for _, s := range d.Short {
		seg, ok := names.ParseSegment(s)
		if !ok {
			return nil, fmt.Errorf("definition %q: %w: %q", d.ID, ErrUnknownSegment, s)
		}
		def.ShortSegments |= seg
	}
	return def, nil
}

func (s SegmentDoc) build(id, part string) (names.Segment, error) {
	seg := names.Segment{Circumfix: s.Circumfix}
	pools := []struct {
		key string
		doc PoolDoc
		dst *names.Pool
	}{
		{"male", s.Male, &seg.Male},
		{"female", s.Female, &seg.Female},
		{"any", s.Any, &seg.Any},
		{"prefix", s.Prefix, &seg.Prefix},
		{"suffix", s.Suffix, &seg.Suffix},
	}
	for _, p := range pools {
		pool, err := p.doc.build(id, part+"."+p.key)
		if err != nil {
			return names.Segment{}, err
		}
		*p.dst = pool
	}
	return seg, nil
}

func (p PoolDoc) build(id, path string) (names.Pool, error) {
	chance := defaultChance
	if p.Chance != nil {
		chance = *p.Chance
	}
	if chance < 0 || chance > 100 {
		return names.Pool{}, fmt.Errorf("definition %q %s: %w (got %d)", id, path, ErrInvalidChance, chance)
	}
	return names.Pool{
		Names:     compact(id, path, p.Names),
		Chance:    uint8(chance),
		Exclusive: p.Exclusive,
		Static:    p.Static,
	}, nil
}

func compact(id, path string, list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s == "" {
			slog.Warn("dropping empty name candidate", "definition", id, "pool", path)
			continue
		}
		out = append(out, s)
	}
	return out
}
