// Package slotmap implements the declarative slot schemas for each component
// archetype and the recursive engine that binds design-tree nodes to slots.
package slotmap

import (
	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/design"
	"github.com/figmap-dev/figmap/pkg/mathutil"
)

// SignalKind names one detection-rule matcher variant. The set is closed:
// every slot rule dispatches to one of these named matchers, so the weighted
// aggregation stays shared and testable independently of any archetype's
// keyword lists.
type SignalKind string

// Detection rule matcher kinds.
const (
	SignalName      SignalKind = "name"
	SignalChildRole SignalKind = "child-role"
	SignalText      SignalKind = "text"
	SignalNodeKind  SignalKind = "node-kind"
	SignalPosition  SignalKind = "position"
	SignalThinSize  SignalKind = "thin-size"
)

// PositionLast marks a position rule that expects the last sibling.
const PositionLast = -1

// Graded matcher scores. Matchers return values in [0, 1]; these are the
// intermediate grades between full match and miss.
const (
	scoreFull          = 1.0
	scoreAltKeyword    = 0.8
	scoreSingleRole    = 0.7
	scoreNestedText    = 0.6
	scoreNearPosition  = 0.4
	textScanDepth      = 2
	multiRoleThreshold = 2
)

// Rule is one weighted detection rule for a slot. Which parameter fields
// apply depends on Kind.
type Rule struct {
	Kind   SignalKind
	Weight float64

	// Keywords are name/child-role alternatives. The first keyword is the
	// canonical one; matching it scores higher than matching an alternate.
	Keywords []string

	// Exclude blocks a name match outright.
	Exclude []string

	// Kinds is the accepted node-kind set for SignalNodeKind.
	Kinds []design.Kind

	// Position is the expected sibling index for SignalPosition
	// (PositionLast for the final sibling).
	Position int

	// MaxThin is the thin-dimension ceiling for SignalThinSize.
	MaxThin float64
}

// Context carries the binding context a matcher may consult: the candidate's
// positional index among its original siblings and the sibling count.
type Context struct {
	Index int
	Total int
}

// Score evaluates the rule's matcher against a candidate, returning a graded
// value in [0, 1] before weighting.
func (r Rule) Score(node *design.Node, ctx Context) float64 {
	switch r.Kind {
	case SignalName:
		return r.scoreName(node)
	case SignalChildRole:
		return r.scoreChildRole(node)
	case SignalText:
		return r.scoreText(node)
	case SignalNodeKind:
		return r.scoreNodeKind(node)
	case SignalPosition:
		return r.scorePosition(ctx)
	case SignalThinSize:
		return r.scoreThinSize(node)
	default:
		return 0
	}
}

func (r Rule) scoreName(node *design.Node) float64 {
	if node.NameContainsAny(r.Exclude...) {
		return 0
	}

	for i, keyword := range r.Keywords {
		if !node.NameContains(keyword) {
			continue
		}

		if i == 0 {
			return scoreFull
		}

		return scoreAltKeyword
	}

	return 0
}

func (r Rule) scoreChildRole(node *design.Node) float64 {
	matched := 0

	for _, child := range node.VisibleChildren() {
		if child.NameContainsAny(r.Keywords...) {
			matched++
		}
	}

	switch {
	case matched >= multiRoleThreshold:
		return scoreFull
	case matched == 1:
		return scoreSingleRole
	default:
		return 0
	}
}

func (r Rule) scoreText(node *design.Node) float64 {
	if node.Kind == design.KindText && node.TextContent != "" {
		return scoreFull
	}

	hasNested := node.HasDescendant(func(d *design.Node) bool {
		return d.Kind == design.KindText && d.TextContent != ""
	}, textScanDepth)

	if hasNested {
		return scoreNestedText
	}

	return 0
}

func (r Rule) scoreNodeKind(node *design.Node) float64 {
	for _, kind := range r.Kinds {
		if node.Kind == kind {
			return scoreFull
		}
	}

	return 0
}

func (r Rule) scorePosition(ctx Context) float64 {
	expected := r.Position
	if expected == PositionLast {
		expected = ctx.Total - 1
	}

	delta := ctx.Index - expected
	if delta < 0 {
		delta = -delta
	}

	switch delta {
	case 0:
		return scoreFull
	case 1:
		return scoreNearPosition
	default:
		return 0
	}
}

func (r Rule) scoreThinSize(node *design.Node) float64 {
	if node.Size == nil {
		return 0
	}

	thin := node.Size.W
	if node.Size.H < thin {
		thin = node.Size.H
	}

	if thin <= r.MaxThin {
		return scoreFull
	}

	return 0
}

// Slot declares one expected structural position in an archetype's slot
// schema. Slots may nest: a slot's Children are matched against the children
// of whatever node the slot binds.
type Slot struct {
	Name           string
	Required       bool
	AllowsMultiple bool
	Rules          []Rule
	Children       []Slot
}

// hasNameRule reports whether the slot carries a name-pattern rule. Slots
// with a name rule gate multi-binding on a nonzero name contribution.
func (s Slot) hasNameRule() bool {
	for _, rule := range s.Rules {
		if rule.Kind == SignalName {
			return true
		}
	}

	return false
}

// score computes a candidate's slot confidence: the weighted sum of rule
// scores, capped at 1. The name-rule contribution is returned separately for
// the multi-bind gate.
func (s Slot) score(node *design.Node, ctx Context) (total, nameScore float64) {
	for _, rule := range s.Rules {
		value := rule.Score(node, ctx)
		total += value * rule.Weight

		if rule.Kind == SignalName && value > nameScore {
			nameScore = value
		}
	}

	return mathutil.Clamp01(total), nameScore
}

// Schema is the full declarative slot tree for one archetype.
//
// Slot declaration order is load-bearing: slots are matched and consume
// candidates in declared order, so narrow-pattern slots (Separator, Label)
// must precede catch-all slots (Item) at the same level.
type Schema struct {
	Archetype classify.Archetype
	Slots     []Slot
}
