package agents

import (
	"math/rand"

	"github.com/talgya/npcnames/internal/names"
)

// SpawnConfig controls population generation.
type SpawnConfig struct {
	Seed               int64
	Definition         string  // Name definition assigned to spawned agents
	CreatureDefinition string  // Name definition for creatures; Definition when empty
	CreatureShare      float32 // Fraction of agents spawned without a sex, 0.0–1.0
	KnownShare         float32 // Fraction of agents the player has already met, 0.0–1.0
}

// Spawner creates agents.
type Spawner struct {
	cfg    SpawnConfig
	rng    *rand.Rand
	nextID AgentID
}

// NewSpawner creates an agent spawner from cfg.
func NewSpawner(cfg SpawnConfig) *Spawner {
	return &Spawner{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed + 300)),
		nextID: 1,
	}
}

// SetNextID sets the next agent ID to be issued (used when restoring from DB).
func (s *Spawner) SetNextID(id AgentID) {
	s.nextID = id
}

// SpawnPopulation creates count agents.
func (s *Spawner) SpawnPopulation(count uint32) []*Agent {
	agents := make([]*Agent, 0, count)
	for i := uint32(0); i < count; i++ {
		agents = append(agents, s.spawnOne())
	}
	return agents
}

func (s *Spawner) spawnOne() *Agent {
	id := s.nextID
	s.nextID++

	a := &Agent{
		ID:         id,
		Definition: s.cfg.Definition,
		Age:        s.weightedAge(),
		Known:      s.rng.Float32() < s.cfg.KnownShare,
	}

	if s.rng.Float32() < s.cfg.CreatureShare {
		a.Sex = names.SexUnspecified
		a.Occupation = OccupationNone
		if s.cfg.CreatureDefinition != "" {
			a.Definition = s.cfg.CreatureDefinition
		}
		a.Default = "Creature"
		return a
	}

	a.Sex = names.SexMale
	if s.rng.Float32() < 0.5 {
		a.Sex = names.SexFemale
	}
	a.Occupation = s.randomOccupation()
	a.Default = a.Occupation.Title()
	return a
}

// SpawnMinion creates a sexless minion bound to owner, named by definition.
func (s *Spawner) SpawnMinion(owner *Agent, definition string) *Agent {
	id := s.nextID
	s.nextID++
	return &Agent{
		ID:         id,
		Definition: definition,
		Default:    "Familiar",
		Sex:        names.SexUnspecified,
		Occupation: OccupationNone,
		Known:      owner.Known,
		Minion:     true,
	}
}

func (s *Spawner) weightedAge() uint16 {
	// Bell curve centered around 30, range 5–70.
	age := 30.0 + s.rng.NormFloat64()*12.0
	if age < 5 {
		age = 5
	}
	if age > 70 {
		age = 70
	}
	return uint16(age)
}

func (s *Spawner) randomOccupation() Occupation {
	r := s.rng.Float32()
	switch {
	case r < 0.35:
		return OccupationFarmer
	case r < 0.50:
		return OccupationLaborer
	case r < 0.62:
		return OccupationCrafter
	case r < 0.72:
		return OccupationMerchant
	case r < 0.80:
		return OccupationSoldier
	case r < 0.86:
		return OccupationMiner
	case r < 0.91:
		return OccupationFisher
	case r < 0.95:
		return OccupationHunter
	case r < 0.98:
		return OccupationScholar
	default:
		return OccupationAlchemist
	}
}
