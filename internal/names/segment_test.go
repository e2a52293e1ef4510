package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/npcnames/internal/entropy"
)

func TestSegmentResolveFallsBackToAny(t *testing.T) {
	s := Segment{
		Female: Pool{Names: []string{"Astrid"}, Chance: 100},
		Any:    Pool{Names: []string{"Aria"}, Chance: 100},
	}
	assert.Same(t, &s.Any, s.Resolve(SexMale))
	assert.Same(t, &s.Female, s.Resolve(SexFemale))
	assert.Same(t, &s.Any, s.Resolve(SexUnspecified))

	v, _, _, ok := s.Assign(entropy.NewSelector(1), SexMale)
	require.True(t, ok)
	assert.Equal(t, "Aria", v)
}

func TestSegmentUnspecifiedIgnoresSexPools(t *testing.T) {
	s := Segment{
		Male: Pool{Names: []string{"Bram"}, Static: true},
	}
	_, _, _, ok := s.Assign(entropy.NewSelector(1), SexUnspecified)
	assert.False(t, ok)
}

func TestSegmentAssignFailsWithoutValue(t *testing.T) {
	s := Segment{
		Any:    Pool{Names: []string{"Bram"}, Chance: 0},
		Prefix: Pool{Names: []string{"Mac"}, Static: true},
	}
	v, p, x, ok := s.Assign(entropy.NewSelector(1), SexMale)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Empty(t, p)
	assert.Empty(t, x)
}

func TestSegmentCircumfixPairsByIndex(t *testing.T) {
	s := Segment{
		Any:       Pool{Names: []string{"Gro"}, Static: true},
		Prefix:    Pool{Names: []string{"Mac"}, Static: true},
		Suffix:    Pool{Names: []string{"-son", "-ville"}, Static: true},
		Circumfix: true,
	}
	rng := entropy.NewSelector(8)
	for i := 0; i < 1000; i++ {
		v, p, x, ok := s.Assign(rng, SexFemale)
		require.True(t, ok)
		assert.Equal(t, "Gro", v)
		assert.Equal(t, "Mac", p)
		assert.Equal(t, "-son", x)
	}
}

func TestSegmentCircumfixAllOrNothing(t *testing.T) {
	s := Segment{
		Any:       Pool{Names: []string{"Gro"}, Static: true},
		Prefix:    Pool{Names: []string{"Mac", "O'"}, Chance: 50},
		Suffix:    Pool{Names: []string{"-son", "-ville"}, Chance: 100},
		Circumfix: true,
	}
	rng := entropy.NewSelector(9)
	var paired, bare int
	for i := 0; i < 1000; i++ {
		_, p, x, ok := s.Assign(rng, SexMale)
		require.True(t, ok)
		switch {
		case p == "" && x == "":
			bare++
		case p == "Mac":
			assert.Equal(t, "-son", x)
			paired++
		case p == "O'":
			assert.Equal(t, "-ville", x)
			paired++
		default:
			t.Fatalf("unpaired affixes %q %q", p, x)
		}
	}
	assert.Positive(t, paired)
	assert.Positive(t, bare)
}

func TestSegmentCircumfixWithEmptyAffixPool(t *testing.T) {
	s := Segment{
		Any:       Pool{Names: []string{"Gro"}, Static: true},
		Prefix:    Pool{Names: []string{"Mac"}, Static: true},
		Circumfix: true,
	}
	v, p, x, ok := s.Assign(entropy.NewSelector(1), SexMale)
	assert.True(t, ok)
	assert.Equal(t, "Gro", v)
	assert.Empty(t, p)
	assert.Empty(t, x)
}

func TestSegmentCircumfixMissingSuffixAtIndex(t *testing.T) {
	s := Segment{
		Any:       Pool{Names: []string{"Gro"}, Static: true},
		Prefix:    Pool{Names: []string{"Mac", "O'"}, Static: true},
		Suffix:    Pool{Names: []string{"-son", ""}, Static: true},
		Circumfix: true,
	}
	_, p, x, ok := s.Assign(fixedRandom{index: 1, present: true}, SexMale)
	assert.True(t, ok)
	assert.Empty(t, p)
	assert.Empty(t, x)
}

func TestSegmentExclusivePrefixWinsTie(t *testing.T) {
	s := Segment{
		Any:    Pool{Names: []string{"Gro"}, Static: true},
		Prefix: Pool{Names: []string{"Mac"}, Static: true, Exclusive: true},
		Suffix: Pool{Names: []string{"-mir"}, Static: true, Exclusive: true},
	}
	rng := entropy.NewSelector(10)
	for i := 0; i < 200; i++ {
		_, p, x, _ := s.Assign(rng, SexMale)
		assert.Equal(t, "Mac", p)
		assert.Empty(t, x)
	}
}

func TestSegmentExclusiveSuffixSuppressesPrefix(t *testing.T) {
	s := Segment{
		Any:    Pool{Names: []string{"Gro"}, Static: true},
		Prefix: Pool{Names: []string{"Mac"}, Static: true},
		Suffix: Pool{Names: []string{"-mir"}, Static: true, Exclusive: true},
	}
	_, p, x, _ := s.Assign(entropy.NewSelector(1), SexMale)
	assert.Empty(t, p)
	assert.Equal(t, "-mir", x)
}

func TestSegmentIndependentAffixes(t *testing.T) {
	s := Segment{
		Any:    Pool{Names: []string{"Gro"}, Static: true},
		Prefix: Pool{Names: []string{"Mac"}, Static: true},
		Suffix: Pool{Names: []string{"-mir"}, Static: true},
	}
	v, p, x, ok := s.Assign(entropy.NewSelector(1), SexMale)
	require.True(t, ok)
	assert.Equal(t, "Mac", p)
	assert.Equal(t, "Gro", v)
	assert.Equal(t, "-mir", x)
}

func TestSegmentCircumfixPrefixPastSuffixPool(t *testing.T) {
	s := Segment{
		Any:       Pool{Names: []string{"Gro"}, Static: true},
		Prefix:    Pool{Names: []string{"Mac", "O'", "Fitz"}, Static: true},
		Suffix:    Pool{Names: []string{"-son", "-ville"}, Static: true},
		Circumfix: true,
	}
	rng := entropy.NewSelector(12)
	const trials = 3000
	bare := 0
	for i := 0; i < trials; i++ {
		_, p, x, ok := s.Assign(rng, SexMale)
		require.True(t, ok)
		switch p {
		case "":
			assert.Empty(t, x)
			bare++
		case "Mac":
			assert.Equal(t, "-son", x)
		case "O'":
			assert.Equal(t, "-ville", x)
		default:
			t.Fatalf("prefix %q has no suffix at its index", p)
		}
	}
	// Index 2 of the prefix pool has no suffix partner, so a third of the
	// draws carry no affixes.
	assert.InDelta(t, 1.0/3, float64(bare)/trials, 0.05)
}
