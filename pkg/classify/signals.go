package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/figmap-dev/figmap/pkg/design"
	"github.com/figmap-dev/figmap/pkg/mathutil"
)

// Figma-style variant annotations embedded in layer names ("State=Focus",
// "Open=True"). Matched case-insensitively against the raw name.
//
//nolint:gochecknoglobals // compiled once, read-only.
var (
	reOpenVariant      = regexp.MustCompile(`(?i)open\s*=`)
	reStateVariant     = regexp.MustCompile(`(?i)state\s*=`)
	reCheckedVariant   = regexp.MustCompile(`(?i)(checked|on)\s*=`)
	reExpandedVariant  = regexp.MustCompile(`(?i)(expanded|collapsed)\s*=`)
	reSelectedVariant  = regexp.MustCompile(`(?i)(active|selected)\s*=`)
	reTypeVariant      = regexp.MustCompile(`(?i)(type|variant)\s*=`)
	reAspectRatioToken = regexp.MustCompile(`\d+\s*[:x]\s*\d+`)
)

// evidence accumulates additive signal contributions and the human-readable
// rationale for one scorer run. Contributions sum, penalties multiply, and
// the final confidence is clamped to [0, 1].
type evidence struct {
	raw     float64
	reasons []string
}

// add records one additive contribution. Negative weights record a
// counter-signal (e.g. a separator-like node that is too tall).
func (e *evidence) add(weight float64, reason string) {
	e.raw += weight
	e.reasons = append(e.reasons, fmt.Sprintf("%s (%+.2f)", reason, weight))
}

// penalize applies a multiplicative penalty to everything accumulated so
// far. Kept flat rather than scaled by signal count: the fixed halving is
// what separates confusable archetypes.
func (e *evidence) penalize(factor float64, reason string) {
	if e.raw <= 0 {
		return
	}

	e.raw *= factor
	e.reasons = append(e.reasons, fmt.Sprintf("%s (x%.2f)", reason, factor))
}

// classification finalizes the accumulated evidence.
func (e *evidence) classification() Classification {
	return Classification{
		Confidence: mathutil.Clamp01(e.raw),
		Reasons:    e.reasons,
	}
}

// nameTier is one mutually-exclusive name-pattern tier. All substrings must
// appear in the lower-cased node name; none of the excludes may.
type nameTier struct {
	all     []string
	exclude []string
	weight  float64
}

// matchNameTier tries tiers in declaration order (descending specificity)
// and records the FIRST match only. Tiers never stack.
func (e *evidence) matchNameTier(node *design.Node, tiers []nameTier) bool {
	name := node.LowerName()

	for _, tier := range tiers {
		if !containsAll(name, tier.all) || containsAny(name, tier.exclude) {
			continue
		}

		e.add(tier.weight, fmt.Sprintf("name matches %q", strings.Join(tier.all, "+")))

		return true
	}

	return false
}

func containsAll(name string, subs []string) bool {
	for _, s := range subs {
		if !strings.Contains(name, s) {
			return false
		}
	}

	return true
}

func containsAny(name string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(name, s) {
			return true
		}
	}

	return false
}

// rolePair is a two-role structural expectation over a node's immediate
// children (e.g. a trigger role and a content role).
type rolePair struct {
	labelA, labelB string
	rolesA, rolesB []string
	bothWeight     float64
	eitherWeight   float64

	// containersOnly restricts role matching to children that can carry
	// children themselves; text/vector leaves named "Menu" should not count
	// as a content frame.
	containersOnly bool
}

// matchRolePair scores the tiered structural signal: both roles present
// beats either one alone beats neither.
func (e *evidence) matchRolePair(node *design.Node, pair rolePair) {
	hasA := hasChildRole(node, pair.rolesA, pair.containersOnly)
	hasB := hasChildRole(node, pair.rolesB, pair.containersOnly)

	switch {
	case hasA && hasB:
		e.add(pair.bothWeight, fmt.Sprintf("has %s and %s children", pair.labelA, pair.labelB))
	case hasA:
		e.add(pair.eitherWeight, fmt.Sprintf("has %s child", pair.labelA))
	case hasB:
		e.add(pair.eitherWeight, fmt.Sprintf("has %s child", pair.labelB))
	}
}

func hasChildRole(node *design.Node, roles []string, containersOnly bool) bool {
	for _, child := range node.VisibleChildren() {
		if containersOnly && !child.IsContainer() {
			continue
		}

		if child.NameContainsAny(roles...) {
			return true
		}
	}

	return false
}

// matchNestedKeyword recurses one extra level: children of children whose
// names carry any keyword. parentRoles narrows which children are inspected;
// empty means all of them.
func (e *evidence) matchNestedKeyword(node *design.Node, parentRoles, keywords []string, weight float64, label string) {
	for _, child := range node.VisibleChildren() {
		if len(parentRoles) > 0 && !child.NameContainsAny(parentRoles...) {
			continue
		}

		for _, grandchild := range child.VisibleChildren() {
			if grandchild.NameContainsAny(keywords...) {
				e.add(weight, label)

				return
			}
		}
	}
}

// matchSubtreeKeyword scans the subtree up to maxDepth levels below the node
// for any name keyword.
func (e *evidence) matchSubtreeKeyword(node *design.Node, keywords []string, maxDepth int, weight float64, label string) {
	found := node.HasDescendant(func(d *design.Node) bool {
		return d.NameContainsAny(keywords...)
	}, maxDepth)

	if found {
		e.add(weight, label)
	}
}

// matchVariant records the variant-property signal when the raw name carries
// a Figma-style variant annotation.
func (e *evidence) matchVariant(node *design.Node, re *regexp.Regexp, weight float64, label string) {
	if re.MatchString(node.Name) {
		e.add(weight, label)
	}
}

// matchChildCount records a weak structural prior when the node has at least
// minCount visible children.
func (e *evidence) matchChildCount(node *design.Node, minCount int, weight float64) {
	if len(node.VisibleChildren()) >= minCount {
		e.add(weight, fmt.Sprintf("has >=%d children", minCount))
	}
}

// thinDimension returns the smaller of width and height, or -1 when size is
// unknown.
func thinDimension(node *design.Node) float64 {
	if node.Size == nil {
		return -1
	}

	if node.Size.W < node.Size.H {
		return node.Size.W
	}

	return node.Size.H
}

// heightBetween reports whether the node's height is known and inside
// [low, high].
func heightBetween(node *design.Node, low, high float64) bool {
	return node.Size != nil && node.Size.H >= low && node.Size.H <= high
}
