// Package report renders classification and mapping outcomes for human and
// machine consumption. Renderers are stateless; build a Report once and write
// it in any format.
package report

import (
	"fmt"
	"time"

	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/design"
	"github.com/figmap-dev/figmap/pkg/slotmap"
)

// Component is the analysis outcome for one design node.
type Component struct {
	NodeName       string                  `json:"node_name"`
	NodeCount      int                     `json:"node_count"`
	Classification classify.Classification `json:"classification"`
	Accepted       bool                    `json:"accepted"`
	Mapping        *slotmap.MappingResult  `json:"mapping,omitempty"`
}

// Report is a batch of analyzed components from one source document.
type Report struct {
	Source      string      `json:"source"`
	GeneratedAt time.Time   `json:"generated_at"`
	Floor       float64     `json:"floor"`
	Components  []Component `json:"components"`
}

// Analyzer bundles the classifier and mapper used to build reports.
type Analyzer struct {
	classifier *classify.Classifier
	mapper     *slotmap.Mapper
	floor      float64
}

// NewAnalyzer builds an analyzer. A floor of zero falls back to the
// classifier's default acceptance floor.
func NewAnalyzer(classifier *classify.Classifier, mapper *slotmap.Mapper, floor float64) *Analyzer {
	if floor <= 0 {
		floor = classify.DefaultFloor
	}

	return &Analyzer{classifier: classifier, mapper: mapper, floor: floor}
}

// Analyze classifies and maps every component-like node in the tree and
// returns the assembled report. When the tree declares no components the root
// itself is analyzed, so plain frame fixtures still produce a result.
// An accepted archetype with no registered schema fails the whole run; the
// built-in registry covers every archetype the classifier emits, so this only
// fires with a custom registry.
func (a *Analyzer) Analyze(source string, root *design.Node) (*Report, error) {
	report := &Report{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Floor:       a.floor,
	}

	for _, target := range analysisTargets(root) {
		component, err := a.analyzeNode(target)
		if err != nil {
			return nil, fmt.Errorf("analyze %q: %w", target.Name, err)
		}

		report.Components = append(report.Components, component)
	}

	return report, nil
}

func (a *Analyzer) analyzeNode(node *design.Node) (Component, error) {
	classification := a.classifier.Classify(node)

	component := Component{
		NodeName:       node.Name,
		NodeCount:      node.CountNodes(),
		Classification: classification,
		Accepted:       classification.Accepted(a.floor),
	}

	if !component.Accepted {
		return component, nil
	}

	mapping, err := a.mapper.Map(node, classification.Archetype)
	if err != nil {
		return Component{}, err
	}

	component.Mapping = mapping

	return component, nil
}

// analysisTargets selects the nodes worth classifying: component declarations
// and instances. A tree without any falls back to its root.
func analysisTargets(root *design.Node) []*design.Node {
	if root == nil {
		return nil
	}

	var targets []*design.Node

	root.Walk(func(n *design.Node) bool {
		switch n.Kind {
		case design.KindComponent, design.KindComponentSet, design.KindInstance:
			targets = append(targets, n)

			// Nested components are covered by their enclosing target.
			return false
		default:
			return true
		}
	})

	if len(targets) == 0 {
		targets = append(targets, root)
	}

	return targets
}
