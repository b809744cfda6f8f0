package slotmap

import (
	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/design"
)

// SlotMapping records the layers bound to one named slot together with the
// mapper's confidence in the binding.
type SlotMapping struct {
	SlotName   string         `json:"slot_name"`
	BoundNodes []*design.Node `json:"-"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning"`

	// events counts merge operations so Confidence can stay a running mean
	// when the same slot binds under several parent layers.
	events int
}

// NodeNames returns the layer names of the bound nodes in binding order.
func (s SlotMapping) NodeNames() []string {
	names := make([]string, 0, len(s.BoundNodes))

	for _, n := range s.BoundNodes {
		names = append(names, n.Name)
	}

	return names
}

// MappingResult is the full outcome of mapping one design subtree onto an
// archetype schema. Slots holds one entry per declared schema slot; unmatched
// ones keep empty bound nodes. Unmet required slots surface as warnings,
// never as errors, so partial mappings remain usable.
type MappingResult struct {
	Archetype         classify.Archetype `json:"archetype"`
	Slots             []SlotMapping      `json:"slots"`
	OverallConfidence float64            `json:"overall_confidence"`
	Warnings          []string           `json:"warnings,omitempty"`
	Suggestions       []string           `json:"suggestions,omitempty"`
}

// Slot returns the mapping for the named slot, or nil when the schema does
// not declare it.
func (r *MappingResult) Slot(name string) *SlotMapping {
	for i := range r.Slots {
		if r.Slots[i].SlotName == name {
			return &r.Slots[i]
		}
	}

	return nil
}

// upsert returns the existing mapping for the slot name, appending a fresh
// one in first-encounter order when absent.
func (r *MappingResult) upsert(name string) *SlotMapping {
	if existing := r.Slot(name); existing != nil {
		return existing
	}

	r.Slots = append(r.Slots, SlotMapping{SlotName: name})

	return &r.Slots[len(r.Slots)-1]
}
