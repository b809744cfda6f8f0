package slotmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/design"
	"github.com/figmap-dev/figmap/pkg/mathutil"
)

// ErrSchemaNotFound reports a mapping request for an archetype the registry
// does not know. It is the only hard failure the mapper produces.
var ErrSchemaNotFound = errors.New("no schema registered for archetype")

const (
	// DefaultSafeThreshold is the binding confidence below which the mapper
	// attaches a review suggestion instead of silently accepting the match.
	DefaultSafeThreshold = 0.5

	// optionalSlotWeight discounts optional slots in the overall confidence
	// so an absent nicety never drags the score like a missing requirement.
	optionalSlotWeight = 0.5
)

// Mapper maps design subtrees onto archetype schemas from a registry.
type Mapper struct {
	registry      *Registry
	safeThreshold float64
}

// NewMapper returns a mapper over the given registry with the default safe
// threshold.
func NewMapper(registry *Registry) *Mapper {
	return &Mapper{registry: registry, safeThreshold: DefaultSafeThreshold}
}

// NewMapperWithThreshold returns a mapper with a custom safe threshold.
// The threshold is clamped to the unit interval.
func NewMapperWithThreshold(registry *Registry, threshold float64) *Mapper {
	return &Mapper{registry: registry, safeThreshold: mathutil.Clamp01(threshold)}
}

// Map binds the children of root onto the slots of the archetype's schema.
// Every declared slot appears in the result, unmatched ones with no bound
// nodes; unmet required slots additionally become warnings. The only error is
// ErrSchemaNotFound.
func (m *Mapper) Map(root *design.Node, archetype classify.Archetype) (*MappingResult, error) {
	schema, ok := m.registry.Get(archetype)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, archetype)
	}

	result := &MappingResult{Archetype: archetype}
	declareSlots(result, schema.Slots)

	acc := &confidenceAccumulator{}

	m.mapLevel(root, schema.Slots, result, acc)

	result.OverallConfidence = acc.overall()

	return result, nil
}

// declareSlots seeds the result with one empty mapping per schema slot, in
// declaration order, so unmatched slots are visible in the output.
func declareSlots(result *MappingResult, slots []Slot) {
	for _, slot := range slots {
		result.upsert(slot.Name)
		declareSlots(result, slot.Children)
	}
}

// mapLevel matches one schema level against the visible children of parent.
// Slots are processed in declaration order and each candidate layer can be
// consumed by at most one slot.
func (m *Mapper) mapLevel(parent *design.Node, slots []Slot, result *MappingResult, acc *confidenceAccumulator) {
	var candidates []*design.Node
	if parent != nil {
		candidates = parent.VisibleChildren()
	}

	parentName := "document"
	if parent != nil {
		parentName = parent.Name
	}

	consumed := make([]bool, len(candidates))

	for _, slot := range slots {
		bound, conf := bindSlot(slot, candidates, consumed)

		if len(bound) == 0 {
			acc.observe(slot.Required, false, 0)

			if slot.Required {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("required slot %s has no matching layer under %q", slot.Name, parentName))
			}

			continue
		}

		acc.observe(slot.Required, true, conf)

		mapping := result.upsert(slot.Name)
		mapping.BoundNodes = append(mapping.BoundNodes, bound...)
		mapping.events++
		mapping.Confidence += (conf - mapping.Confidence) / float64(mapping.events)

		note := fmt.Sprintf("bound %s under %q", strings.Join(nodeNames(bound), ", "), parentName)
		if mapping.Reasoning == "" {
			mapping.Reasoning = note
		} else {
			mapping.Reasoning += "; " + note
		}

		if conf < m.safeThreshold {
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("slot %s bound with low confidence %.2f, consider renaming %s to match",
					slot.Name, conf, strings.Join(nodeNames(bound), ", ")))
		}

		for _, n := range bound {
			if len(slot.Children) > 0 {
				m.mapLevel(n, slot.Children, result, acc)
			}
		}
	}
}

// bindSlot selects the candidates for one slot and marks them consumed.
// Multi-binding slots take every unconsumed layer whose name rules fired,
// single slots take the best-scoring layer. Ties keep the earlier layer.
func bindSlot(slot Slot, candidates []*design.Node, consumed []bool) ([]*design.Node, float64) {
	total := len(candidates)

	if slot.AllowsMultiple {
		var (
			bound []*design.Node
			sum   float64
		)

		for i, c := range candidates {
			if consumed[i] {
				continue
			}

			score, nameScore := slot.score(c, Context{Index: i, Total: total})
			if score <= 0 {
				continue
			}

			if slot.hasNameRule() && nameScore <= 0 {
				continue
			}

			consumed[i] = true
			bound = append(bound, c)
			sum += score
		}

		if len(bound) == 0 {
			return nil, 0
		}

		return bound, mathutil.Clamp01(sum / float64(len(bound)))
	}

	best := -1

	var bestScore float64

	for i, c := range candidates {
		if consumed[i] {
			continue
		}

		score, _ := slot.score(c, Context{Index: i, Total: total})
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return nil, 0
	}

	consumed[best] = true

	return []*design.Node{candidates[best]}, mathutil.Clamp01(bestScore)
}

func nodeNames(nodes []*design.Node) []string {
	names := make([]string, 0, len(nodes))

	for _, n := range nodes {
		names = append(names, fmt.Sprintf("%q", n.Name))
	}

	return names
}

// confidenceAccumulator folds per-slot outcomes into the overall confidence.
// Required slots always contribute their full weight, unbound ones at zero
// confidence. Optional slots contribute a discounted weight only when bound.
type confidenceAccumulator struct {
	weight   float64
	weighted float64
}

func (a *confidenceAccumulator) observe(required, bound bool, conf float64) {
	switch {
	case required:
		a.weight++

		if bound {
			a.weighted += conf
		}
	case bound:
		a.weight += optionalSlotWeight
		a.weighted += optionalSlotWeight * conf
	}
}

// overall returns the weighted mean confidence. A schema with no observed
// slots, such as a leaf archetype, maps trivially at full confidence.
func (a *confidenceAccumulator) overall() float64 {
	if a.weight == 0 {
		return 1
	}

	return mathutil.Clamp01(a.weighted / a.weight)
}
