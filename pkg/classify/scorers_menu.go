package classify

import "github.com/figmap-dev/figmap/pkg/design"

// Shared role keyword sets for the menu-shaped archetypes. Trigger/content
// pairs only count when the child is a container; a TEXT layer named "Menu"
// is a label, not a content frame.
//
//nolint:gochecknoglobals // static keyword tables.
var (
	menuTriggerRoles = []string{"trigger", "button", "open"}
	menuContentRoles = []string{"content", "menu", "list", "items"}
	menuItemRoles    = []string{"item", "option"}
	separatorRoles   = []string{"separator", "divider"}
)

// confusablePenalty is the flat multiplicative penalty applied when a node's
// name matches a sibling archetype's pattern without the current archetype's
// own distinguishing keyword. Deliberately not scaled by how many other
// signals fired.
const confusablePenalty = 0.5

const (
	menuFullNameWeight    = 0.7
	menuPartialNameWeight = 0.5
	menuWeakNameWeight    = 0.3
	menuStructBothWeight  = 0.5
	menuStructOneWeight   = 0.25
	menuItemsWeight       = 0.3
	menuSeparatorWeight   = 0.2
	menuVariantWeight     = 0.1
	menuChildCountWeight  = 0.1

	separatorScanDepth = 3
	minMenuChildren    = 2
)

func scoreDropdownMenu(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"dropdown", "menu"}, weight: menuFullNameWeight},
		{all: []string{"dropdown"}, weight: menuPartialNameWeight},
		{all: []string{"menu"}, exclude: []string{"menubar", "menu bar", "navigation", "nav", "context"}, weight: menuWeakNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "trigger", labelB: "content",
		rolesA: menuTriggerRoles, rolesB: menuContentRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	e.matchNestedKeyword(node, menuContentRoles, menuItemRoles, menuItemsWeight, "menu items inside content")
	e.matchSubtreeKeyword(node, separatorRoles, separatorScanDepth, menuSeparatorWeight, "separator in subtree")
	e.matchVariant(node, reOpenVariant, menuVariantWeight, "open= variant annotation")
	e.matchChildCount(node, minMenuChildren, menuChildCountWeight)

	if node.NameContainsAny("select", "context") && !node.NameContainsAny("menu", "dropdown") {
		e.penalize(confusablePenalty, "name suggests a confusable archetype without a menu keyword")
	}

	return e.classification()
}

func scoreSelect(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"select"}, exclude: []string{"selection", "selected"}, weight: menuFullNameWeight},
		{all: []string{"combobox"}, weight: 0.6},
		{all: []string{"picker"}, weight: menuPartialNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "trigger", labelB: "content",
		rolesA: menuTriggerRoles, rolesB: menuContentRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	e.matchNestedKeyword(node, menuContentRoles, menuItemRoles, menuItemsWeight, "options inside content")
	e.matchSubtreeKeyword(node, []string{"chevron", "caret", "arrow"}, separatorScanDepth, menuSeparatorWeight, "chevron indicator in subtree")
	e.matchVariant(node, reOpenVariant, menuVariantWeight, "open= variant annotation")

	if node.NameContainsAny("menu", "dropdown") && !node.NameContains("select") {
		e.penalize(confusablePenalty, "name suggests a menu without a select keyword")
	}

	return e.classification()
}

func scoreContextMenu(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"context", "menu"}, weight: menuFullNameWeight},
		{all: []string{"right click"}, weight: menuPartialNameWeight},
		{all: []string{"context"}, weight: menuWeakNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "trigger", labelB: "content",
		rolesA: menuTriggerRoles, rolesB: menuContentRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	e.matchNestedKeyword(node, menuContentRoles, menuItemRoles, menuItemsWeight, "menu items inside content")
	e.matchSubtreeKeyword(node, separatorRoles, separatorScanDepth, menuSeparatorWeight, "separator in subtree")
	e.matchVariant(node, reOpenVariant, menuVariantWeight, "open= variant annotation")

	if node.NameContainsAny("dropdown", "select") && !node.NameContains("context") {
		e.penalize(confusablePenalty, "name suggests a confusable archetype without a context keyword")
	}

	return e.classification()
}
