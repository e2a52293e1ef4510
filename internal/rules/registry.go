package rules

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/talgya/npcnames/internal/names"
)

// Registry holds loaded name definitions.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]*names.Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]*names.Definition),
	}
}

// LoadFromFile loads definitions from a .yaml, .yml or .json file.
func (r *Registry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return r.LoadFromYAML(data)
	case ".json":
		return r.LoadFromJSON(data)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadFromYAML loads definitions from raw YAML bytes.
func (r *Registry) LoadFromYAML(data []byte) error {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse rules YAML: %w", err)
	}
	return r.Add(doc)
}

// LoadFromJSON loads definitions from raw JSON bytes.
func (r *Registry) LoadFromJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse rules JSON: %w", err)
	}
	return r.Add(doc)
}

// Add builds and registers every definition in doc. Nothing is registered
// if any definition is invalid. A repeated id replaces the earlier one.
func (r *Registry) Add(doc Document) error {
	built := make([]*names.Definition, 0, len(doc.Definitions))
	for _, d := range doc.Definitions {
		def, err := d.Build()
		if err != nil {
			return err
		}
		built = append(built, def)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, def := range built {
		if _, exists := r.definitions[def.ID]; exists {
			slog.Warn("name definition replaced", "definition", def.ID)
		}
		r.definitions[def.ID] = def
	}
	slog.Debug("name definitions loaded", "count", len(built))
	return nil
}

// Get returns the definition with the given id.
func (r *Registry) Get(id string) (*names.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, id)
	}
	return def, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.definitions))
	for id := range r.definitions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}
