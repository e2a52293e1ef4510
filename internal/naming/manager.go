// Package naming assigns persistent generated names to agents. Names are
// generated once from the agent's definition, kept in an LRU cache and
// written to the store on Flush.
package naming

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/talgya/npcnames/internal/agents"
	"github.com/talgya/npcnames/internal/display"
	"github.com/talgya/npcnames/internal/names"
	"github.com/talgya/npcnames/internal/persistence"
	"github.com/talgya/npcnames/internal/rules"
)

// ErrNoName is returned when an agent's definition yields no usable name.
var ErrNoName = errors.New("definition produced no name")

// Store persists generated names.
type Store interface {
	LoadName(id agents.AgentID) (persistence.NameRecord, error)
	SaveNames(records []persistence.NameRecord) error
	DeleteName(id agents.AgentID) error
	ClearNames() (int64, error)
}

// Manager hands out names for agents.
type Manager struct {
	defs      *rules.Registry
	store     Store // nil keeps names in memory only
	rng       names.Random
	formatter *display.Formatter

	mu    sync.Mutex
	cache *lru.Cache[agents.AgentID, persistence.NameRecord]
	dirty map[agents.AgentID]persistence.NameRecord
}

// NewManager creates a manager caching up to cacheSize names in memory.
func NewManager(defs *rules.Registry, store Store, rng names.Random, formatter *display.Formatter, cacheSize int) (*Manager, error) {
	cache, err := lru.New[agents.AgentID, persistence.NameRecord](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("name cache: %w", err)
	}
	if formatter == nil {
		formatter = display.NewFormatter()
	}
	return &Manager{
		defs:      defs,
		store:     store,
		rng:       rng,
		formatter: formatter,
		cache:     cache,
		dirty:     make(map[agents.AgentID]persistence.NameRecord),
	}, nil
}

// Formatter returns the formatter used by Name.
func (m *Manager) Formatter() *display.Formatter {
	return m.formatter
}

// Components returns the agent's name components, generating and caching
// them on first use. A cached name from a different definition or sex is
// discarded and generated again.
func (m *Manager) Components(a *agents.Agent) (*names.Components, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.lookup(a); ok {
		c := rec.Components
		return &c, nil
	}

	def, err := m.defs.Get(a.Definition)
	if err != nil {
		return nil, err
	}
	c := def.NewComponents()
	if !def.GenerateFull(m.rng, a.Sex, c) || !c.IsValid() {
		return nil, fmt.Errorf("agent %d (%s): %w", a.ID, a.Definition, ErrNoName)
	}

	rec := persistence.NameRecord{
		AgentID:     a.ID,
		Definition:  a.Definition,
		Sex:         a.Sex,
		Components:  *c,
		GeneratedAt: time.Now().Unix(),
	}
	m.cache.Add(a.ID, rec)
	m.dirty[a.ID] = rec
	return c, nil
}

func (m *Manager) lookup(a *agents.Agent) (persistence.NameRecord, bool) {
	matches := func(rec persistence.NameRecord) bool {
		return rec.Definition == a.Definition && rec.Sex == a.Sex
	}

	if rec, ok := m.cache.Get(a.ID); ok && matches(rec) {
		return rec, true
	}
	if rec, ok := m.dirty[a.ID]; ok && matches(rec) {
		m.cache.Add(a.ID, rec)
		return rec, true
	}
	if m.store == nil {
		return persistence.NameRecord{}, false
	}

	rec, err := m.store.LoadName(a.ID)
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			slog.Warn("name lookup failed", "agent", a.ID, "error", err)
		}
		return persistence.NameRecord{}, false
	}
	if !matches(rec) {
		return persistence.NameRecord{}, false
	}
	m.cache.Add(a.ID, rec)
	return rec, true
}

// Name returns the string shown for the agent in ctx. Agents without a
// usable name get their default name.
func (m *Manager) Name(a *agents.Agent, ctx display.Context) string {
	c, err := m.Components(a)
	if err != nil {
		slog.Debug("using default name", "agent", a.ID, "error", err)
		c = nil
	}
	return m.formatter.Format(ctx, a, c)
}

// Reset forgets one agent's name so the next lookup generates a new one.
func (m *Manager) Reset(id agents.AgentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache.Remove(id)
	delete(m.dirty, id)
	if m.store == nil {
		return nil
	}
	if err := m.store.DeleteName(id); err != nil {
		return fmt.Errorf("reset name %d: %w", id, err)
	}
	return nil
}

// ResetAll forgets every name.
func (m *Manager) ResetAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache.Purge()
	clear(m.dirty)
	if m.store == nil {
		return nil
	}
	if _, err := m.store.ClearNames(); err != nil {
		return fmt.Errorf("reset all names: %w", err)
	}
	return nil
}

// Pending returns the number of generated names not yet flushed.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dirty)
}

// Flush writes newly generated names to the store.
func (m *Manager) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil || len(m.dirty) == 0 {
		return nil
	}
	records := make([]persistence.NameRecord, 0, len(m.dirty))
	for _, rec := range m.dirty {
		records = append(records, rec)
	}
	if err := m.store.SaveNames(records); err != nil {
		return fmt.Errorf("flush names: %w", err)
	}
	clear(m.dirty)
	slog.Debug("names flushed", "count", len(records))
	return nil
}
