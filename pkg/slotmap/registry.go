package slotmap

import (
	"sort"

	"github.com/figmap-dev/figmap/pkg/classify"
)

// Registry holds the slot schemas for every supported archetype. It is
// immutable after construction and safe for concurrent lookups; build one at
// startup and pass it into the mapper rather than reaching for global state.
type Registry struct {
	schemas map[classify.Archetype]Schema
}

// NewRegistry builds a registry with the builtin schemas for the default
// target component library.
func NewRegistry() *Registry {
	return NewRegistryWith(builtinSchemas())
}

// NewRegistryWith builds a registry from an explicit schema set, e.g. for a
// different target component library.
func NewRegistryWith(schemas []Schema) *Registry {
	byArchetype := make(map[classify.Archetype]Schema, len(schemas))

	for _, schema := range schemas {
		byArchetype[schema.Archetype] = schema
	}

	return &Registry{schemas: byArchetype}
}

// Get returns the schema registered for the archetype.
func (r *Registry) Get(archetype classify.Archetype) (Schema, bool) {
	schema, ok := r.schemas[archetype]

	return schema, ok
}

// Archetypes returns the registered archetype names, sorted for stable
// iteration.
func (r *Registry) Archetypes() []classify.Archetype {
	out := make([]classify.Archetype, 0, len(r.schemas))
	for archetype := range r.schemas {
		out = append(out, archetype)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
