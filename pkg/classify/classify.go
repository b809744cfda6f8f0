// Package classify implements the rule-based design-node classifier. Every
// supported component archetype contributes one scorer; Classify runs the
// full battery on a node and returns the highest-confidence candidate.
package classify

import (
	"github.com/figmap-dev/figmap/pkg/design"
)

// Archetype identifies a UI component archetype in the closed set the
// classifier knows about.
type Archetype string

// Supported archetypes. Container is the generic fallback for frames that
// match no specific component shape.
const (
	ArchetypeButton       Archetype = "Button"
	ArchetypeTabs         Archetype = "Tabs"
	ArchetypeDropdownMenu Archetype = "DropdownMenu"
	ArchetypeSelect       Archetype = "Select"
	ArchetypeContextMenu  Archetype = "ContextMenu"
	ArchetypeAccordion    Archetype = "Accordion"
	ArchetypeCollapsible  Archetype = "Collapsible"
	ArchetypeSeparator    Archetype = "Separator"
	ArchetypeAspectRatio  Archetype = "AspectRatio"
	ArchetypeResizable    Archetype = "Resizable"
	ArchetypeScrollArea   Archetype = "ScrollArea"
	ArchetypeDataTable    Archetype = "DataTable"
	ArchetypeKbd          Archetype = "Kbd"
	ArchetypeBreadcrumb   Archetype = "Breadcrumb"
	ArchetypeSidebar      Archetype = "Sidebar"
	ArchetypeSwitch       Archetype = "Switch"
	ArchetypeTextarea     Archetype = "Textarea"
	ArchetypeContainer    Archetype = "Container"
)

// DefaultFloor is the acceptance floor callers commonly apply to a
// classification before trusting it. The classifier itself always returns
// its best candidate, even below the floor.
const DefaultFloor = 0.4

// Classification is the classifier's verdict for one node.
type Classification struct {
	Archetype  Archetype `json:"archetype"`
	Confidence float64   `json:"confidence"`
	Reasons    []string  `json:"reasons,omitempty"`
}

// Accepted reports whether the classification clears the given acceptance
// floor. Floor policy belongs to the caller, not the classifier.
func (c Classification) Accepted(floor float64) bool {
	return c.Confidence >= floor
}

type scorerFunc func(*design.Node) Classification

type scorer struct {
	archetype Archetype
	score     scorerFunc
}

// Classifier runs an ordered battery of per-archetype scorers.
type Classifier struct {
	scorers []scorer
}

// NewClassifier creates a classifier with the full builtin scorer battery.
//
// Scorer order is part of the contract: ties in confidence resolve to the
// earlier-declared archetype, which is how near-identical shapes
// (DropdownMenu/Select/ContextMenu, Accordion/Collapsible) stay separated.
// Order runs most-specific first; Container is last so any specific match at
// equal confidence beats the generic fallback.
func NewClassifier() *Classifier {
	return &Classifier{scorers: []scorer{
		{ArchetypeDropdownMenu, scoreDropdownMenu},
		{ArchetypeSelect, scoreSelect},
		{ArchetypeContextMenu, scoreContextMenu},
		{ArchetypeTabs, scoreTabs},
		{ArchetypeAccordion, scoreAccordion},
		{ArchetypeCollapsible, scoreCollapsible},
		{ArchetypeSidebar, scoreSidebar},
		{ArchetypeBreadcrumb, scoreBreadcrumb},
		{ArchetypeDataTable, scoreDataTable},
		{ArchetypeSeparator, scoreSeparator},
		{ArchetypeSwitch, scoreSwitch},
		{ArchetypeTextarea, scoreTextarea},
		{ArchetypeKbd, scoreKbd},
		{ArchetypeButton, scoreButton},
		{ArchetypeScrollArea, scoreScrollArea},
		{ArchetypeAspectRatio, scoreAspectRatio},
		{ArchetypeResizable, scoreResizable},
		{ArchetypeContainer, scoreContainer},
	}}
}

// Archetypes returns the archetypes the classifier scores, in declaration
// (tie-break priority) order.
func (c *Classifier) Archetypes() []Archetype {
	out := make([]Archetype, 0, len(c.scorers))
	for _, s := range c.scorers {
		out = append(out, s.archetype)
	}

	return out
}

// Classify runs every scorer on the node and returns the candidate with the
// highest confidence. Pure function of the input tree: no I/O, no hidden
// state, deterministic. Never errors; completely unrecognized input comes
// back as the best (possibly zero-confidence) guess.
func (c *Classifier) Classify(node *design.Node) Classification {
	best := Classification{Archetype: ArchetypeContainer}

	if node == nil {
		return best
	}

	for _, s := range c.scorers {
		candidate := s.score(node)
		candidate.Archetype = s.archetype

		// Strict greater-than keeps the earlier-declared archetype on ties,
		// and zero evidence everywhere keeps the Container fallback.
		if candidate.Confidence > best.Confidence {
			best = candidate
		}
	}

	return best
}
