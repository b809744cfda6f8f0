package classify

import "github.com/figmap-dev/figmap/pkg/design"

//nolint:gochecknoglobals // static keyword tables.
var (
	tabListRoles    = []string{"list", "bar", "header"}
	tabContentRoles = []string{"content", "panel"}
	tabItemRoles    = []string{"tab", "trigger"}

	disclosureTriggerRoles = []string{"trigger", "header", "button"}
	disclosureContentRoles = []string{"content", "body", "panel"}
	accordionItemRoles     = []string{"item", "section", "row"}
)

const (
	tabsFullNameWeight = 0.7
	tabsBarNameWeight  = 0.6
	tabsWeakNameWeight = 0.4

	accordionNameWeight   = 0.7
	accordionItemsWeight  = 0.5
	accordionNestedWeight = 0.3

	collapsibleNameWeight     = 0.7
	collapsibleWeakNameWeight = 0.4
	collapsibleBothWeight     = 0.4
	collapsibleEitherWeight   = 0.2

	disclosureVariantWeight = 0.1

	// minAccordionItems is the structural floor for the multi-item signal;
	// a single trigger+content pair reads as a Collapsible instead.
	minAccordionItems = 2
)

func scoreTabs(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"tabs"}, weight: tabsFullNameWeight},
		{all: []string{"tab", "bar"}, weight: tabsBarNameWeight},
		{all: []string{"tab"}, exclude: []string{"table", "tablet"}, weight: tabsWeakNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "list", labelB: "content",
		rolesA: tabListRoles, rolesB: tabContentRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	e.matchNestedKeyword(node, tabListRoles, tabItemRoles, menuItemsWeight, "tab triggers inside list")
	e.matchVariant(node, reSelectedVariant, disclosureVariantWeight, "active/selected= variant annotation")
	e.matchChildCount(node, minMenuChildren, menuChildCountWeight)

	return e.classification()
}

func scoreAccordion(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"accordion"}, weight: accordionNameWeight},
	})

	if countAccordionItems(node) >= minAccordionItems {
		e.add(accordionItemsWeight, "has multiple expandable items")
	}

	e.matchNestedKeyword(node, accordionItemRoles, disclosureTriggerRoles, accordionNestedWeight, "triggers inside items")
	e.matchVariant(node, reExpandedVariant, disclosureVariantWeight, "expanded= variant annotation")

	if node.NameContains("collapsible") && !node.NameContains("accordion") {
		e.penalize(confusablePenalty, "name suggests a collapsible without an accordion keyword")
	}

	return e.classification()
}

// countAccordionItems counts direct children that look like expandable
// items: either named as items or carrying their own trigger+content pair.
func countAccordionItems(node *design.Node) int {
	count := 0

	for _, child := range node.VisibleChildren() {
		if !child.IsContainer() {
			continue
		}

		if child.NameContainsAny(accordionItemRoles...) {
			count++

			continue
		}

		hasTrigger := hasChildRole(child, disclosureTriggerRoles, true)
		hasContent := hasChildRole(child, disclosureContentRoles, true)

		if hasTrigger && hasContent {
			count++
		}
	}

	return count
}

func scoreCollapsible(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"collapsible"}, weight: collapsibleNameWeight},
		{all: []string{"collapse"}, weight: collapsibleWeakNameWeight},
		{all: []string{"expander"}, weight: collapsibleWeakNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "trigger", labelB: "content",
		rolesA: disclosureTriggerRoles, rolesB: disclosureContentRoles,
		bothWeight: collapsibleBothWeight, eitherWeight: collapsibleEitherWeight,
		containersOnly: true,
	})

	e.matchVariant(node, reOpenVariant, disclosureVariantWeight, "open= variant annotation")
	e.matchVariant(node, reExpandedVariant, disclosureVariantWeight, "expanded/collapsed= variant annotation")

	if node.NameContains("accordion") && !node.NameContainsAny("collapsible", "collapse") {
		e.penalize(confusablePenalty, "name suggests an accordion without a collapsible keyword")
	}

	return e.classification()
}
