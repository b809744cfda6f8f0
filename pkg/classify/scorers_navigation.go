package classify

import "github.com/figmap-dev/figmap/pkg/design"

//nolint:gochecknoglobals // static keyword tables.
var (
	sidebarHeaderRoles  = []string{"header", "logo", "brand"}
	sidebarContentRoles = []string{"content", "menu", "nav", "group"}
	sidebarFooterRoles  = []string{"footer", "user", "account"}
	sidebarItemRoles    = []string{"item", "link"}

	breadcrumbItemRoles = []string{"item", "link", "page"}
	breadcrumbSepRoles  = []string{"separator", "chevron", "slash", "divider"}
)

const (
	sidebarNameWeight     = 0.8
	sidebarSideNavWeight  = 0.5
	sidebarDrawerWeight   = 0.4
	sidebarThreeRoles     = 0.5
	sidebarTwoRoles       = 0.35
	sidebarOneRole        = 0.15
	sidebarNestedWeight   = 0.3
	sidebarVerticalWeight = 0.1
	sidebarTallWeight     = 0.1

	breadcrumbNameWeight     = 0.8
	breadcrumbWeakNameWeight = 0.5
	breadcrumbBothWeight     = 0.5
	breadcrumbEitherWeight   = 0.25
	breadcrumbFlowWeight     = 0.1

	minBreadcrumbItems = 3
	sidebarNestedDepth = 3
)

func scoreSidebar(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"sidebar"}, weight: sidebarNameWeight},
		{all: []string{"side", "nav"}, weight: sidebarSideNavWeight},
		{all: []string{"drawer"}, weight: sidebarDrawerWeight},
	})

	matched := 0
	for _, roles := range [][]string{sidebarHeaderRoles, sidebarContentRoles, sidebarFooterRoles} {
		if hasChildRole(node, roles, true) {
			matched++
		}
	}

	switch matched {
	case 3:
		e.add(sidebarThreeRoles, "has header, content and footer children")
	case 2:
		e.add(sidebarTwoRoles, "has two of header/content/footer children")
	case 1:
		e.add(sidebarOneRole, "has one of header/content/footer children")
	}

	e.matchSubtreeKeyword(node, sidebarItemRoles, sidebarNestedDepth, sidebarNestedWeight, "menu items in subtree")

	if node.LayoutAxis == design.LayoutVertical {
		e.add(sidebarVerticalWeight, "vertical auto-layout")
	}

	if node.Size != nil && node.Size.H > node.Size.W {
		e.add(sidebarTallWeight, "taller than wide")
	}

	e.matchVariant(node, reTypeVariant, disclosureVariantWeight, "type= variant annotation")

	if node.NameContainsAny("navbar", "topbar", "header bar") && !node.NameContains("side") {
		e.penalize(confusablePenalty, "name suggests a horizontal bar without a side keyword")
	}

	return e.classification()
}

func scoreBreadcrumb(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"breadcrumb"}, weight: breadcrumbNameWeight},
		{all: []string{"crumb"}, weight: breadcrumbWeakNameWeight},
	})

	// Breadcrumb items are frequently plain text layers, so role matching
	// is not restricted to containers here.
	e.matchRolePair(node, rolePair{
		labelA: "item", labelB: "separator",
		rolesA: breadcrumbItemRoles, rolesB: breadcrumbSepRoles,
		bothWeight: breadcrumbBothWeight, eitherWeight: breadcrumbEitherWeight,
	})

	if node.LayoutAxis == design.LayoutHorizontal {
		e.add(breadcrumbFlowWeight, "horizontal auto-layout")
	}

	e.matchChildCount(node, minBreadcrumbItems, breadcrumbFlowWeight)

	return e.classification()
}
