package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleAllAbsent(t *testing.T) {
	c := &Components{Conjunction: " ", ShortSegments: SegmentAll}
	_, ok := c.Assemble()
	assert.False(t, ok)
	_, ok = c.AssembleShort()
	assert.False(t, ok)
}

func TestAssembleSinglePartWithSuffix(t *testing.T) {
	c := &Components{FirstName: "Gro", FirstSuffix: "mir", Conjunction: " "}
	got, ok := c.Assemble()
	assert.True(t, ok)
	assert.Equal(t, "Gromir", got)
}

func TestAssembleKeepsAffixesVerbatim(t *testing.T) {
	c := &Components{FirstName: "Gro", FirstSuffix: "-mir"}
	got, ok := c.Assemble()
	assert.True(t, ok)
	assert.Equal(t, "Gro-mir", got)
}

func TestAssembleThreePartsInOrder(t *testing.T) {
	c := &Components{
		FirstName:   "Jon",
		MiddleName:  "of the",
		LastName:    "Plains",
		Conjunction: " ",
	}
	got, ok := c.Assemble()
	assert.True(t, ok)
	assert.Equal(t, "Jon of the Plains", got)
}

func TestAssembleShortRespectsMask(t *testing.T) {
	c := &Components{
		FirstName:     "Ann",
		MiddleName:    "Marie",
		LastName:      "Cross",
		Conjunction:   "-",
		ShortSegments: SegmentFirst | SegmentLast,
	}
	got, ok := c.AssembleShort()
	assert.True(t, ok)
	assert.Equal(t, "Ann-Cross", got)

	full, _ := c.Assemble()
	assert.Equal(t, "Ann-Marie-Cross", full)
}

func TestAssembleShortWithNoMatchingParts(t *testing.T) {
	c := &Components{LastName: "Cross", ShortSegments: SegmentFirst}
	_, ok := c.AssembleShort()
	assert.False(t, ok)
}

func TestAssembleAffixOrder(t *testing.T) {
	c := &Components{
		FirstPrefix: "Mac", FirstName: "Gro", FirstSuffix: "-son",
		LastName: "Voss", LastPrefix: "von ",
		Conjunction: " ",
	}
	got, _ := c.Assemble()
	assert.Equal(t, "MacGro-son von Voss", got)
}

func TestSegmentMask(t *testing.T) {
	assert.True(t, SegmentAll.Has(SegmentMiddle))
	assert.False(t, SegmentFirst.Has(SegmentLast))
	assert.False(t, SegmentAll.Has(SegmentNone))

	m, ok := ParseSegment("middle")
	assert.True(t, ok)
	assert.Equal(t, SegmentMiddle, m)
	_, ok = ParseSegment("title")
	assert.False(t, ok)
}
