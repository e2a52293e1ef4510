// Package agents provides the NPC data model and the spawner that creates
// populations for the naming system.
package agents

import (
	"github.com/talgya/npcnames/internal/names"
)

// AgentID is a unique identifier for an agent.
type AgentID uint64

// Occupation represents an agent's primary activity. It doubles as the
// agent's title in display contexts.
type Occupation uint8

const (
	OccupationFarmer Occupation = iota
	OccupationMiner
	OccupationCrafter
	OccupationMerchant
	OccupationSoldier
	OccupationScholar
	OccupationAlchemist
	OccupationLaborer
	OccupationFisher
	OccupationHunter
	OccupationNone // Creatures and anything else without a trade
)

var occupationTitles = [...]string{
	OccupationFarmer:    "Farmer",
	OccupationMiner:     "Miner",
	OccupationCrafter:   "Crafter",
	OccupationMerchant:  "Merchant",
	OccupationSoldier:   "Soldier",
	OccupationScholar:   "Scholar",
	OccupationAlchemist: "Alchemist",
	OccupationLaborer:   "Laborer",
	OccupationFisher:    "Fisher",
	OccupationHunter:    "Hunter",
	OccupationNone:      "",
}

// Title returns the occupation's display title, or "" for OccupationNone.
func (o Occupation) Title() string {
	if int(o) < len(occupationTitles) {
		return occupationTitles[o]
	}
	return ""
}

// Agent is an individual that receives a generated name.
type Agent struct {
	ID         AgentID `json:"id"`
	Definition string  `json:"definition"` // Name definition id
	Default    string  `json:"default"`    // Fallback name when nothing can be generated

	// Demographics
	Age        uint16     `json:"age"`
	Sex        names.Sex  `json:"sex"`
	Occupation Occupation `json:"occupation"`

	// Known agents are never obscured.
	Known  bool `json:"known"`
	Minion bool `json:"minion"` // Summoned or follower of another agent
}

// DefaultName returns the name shown when generation produced nothing.
func (a *Agent) DefaultName() string {
	return a.Default
}

// Title returns the occupation title.
func (a *Agent) Title() string {
	return a.Occupation.Title()
}

// IsKnown reports whether the agent's name may be shown unobscured.
func (a *Agent) IsKnown() bool {
	return a.Known
}

// IsMinion reports whether the agent is someone's minion.
func (a *Agent) IsMinion() bool {
	return a.Minion
}
