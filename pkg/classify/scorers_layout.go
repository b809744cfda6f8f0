package classify

import (
	"math"

	"github.com/figmap-dev/figmap/pkg/design"
)

//nolint:gochecknoglobals // static keyword tables.
var (
	scrollViewportRoles = []string{"viewport", "content"}
	scrollBarRoles      = []string{"scrollbar", "scroll bar", "thumb"}

	resizablePanelRoles  = []string{"panel", "pane"}
	resizableHandleRoles = []string{"handle", "grip", "gutter"}

	containerGenericNames = []string{"frame", "container", "group", "wrapper", "section", "stack", "box"}

	// commonAspectRatios are the presets designers reach for.
	commonAspectRatios = []float64{16.0 / 9.0, 4.0 / 3.0, 3.0 / 2.0, 1.0, 21.0 / 9.0}
)

const (
	scrollAreaFullNameWeight = 0.8
	scrollAreaNameWeight     = 0.5

	aspectRatioFullNameWeight = 0.8
	aspectRatioNameWeight     = 0.5
	aspectRatioTokenWeight    = 0.4
	aspectRatioOneChildWeight = 0.2
	aspectRatioGeometryWeight = 0.2
	aspectRatioTolerance      = 0.02

	resizableNameWeight     = 0.8
	resizableWeakNameWeight = 0.5
	resizableSplitWeight    = 0.4
	resizablePanelsWeight   = 0.2
	resizableLayoutWeight   = 0.1
	minResizablePanels      = 2

	containerKindWeight   = 0.25
	containerLayoutWeight = 0.15
	containerNameWeight   = 0.1
)

func scoreScrollArea(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"scroll", "area"}, weight: scrollAreaFullNameWeight},
		{all: []string{"scroll"}, weight: scrollAreaNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "viewport", labelB: "scrollbar",
		rolesA: scrollViewportRoles, rolesB: scrollBarRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	e.matchVariant(node, reTypeVariant, disclosureVariantWeight, "type= variant annotation")

	return e.classification()
}

func scoreAspectRatio(node *design.Node) Classification {
	e := &evidence{}

	matched := e.matchNameTier(node, []nameTier{
		{all: []string{"aspect", "ratio"}, weight: aspectRatioFullNameWeight},
		{all: []string{"aspect"}, weight: aspectRatioNameWeight},
	})

	if !matched && reAspectRatioToken.MatchString(node.Name) {
		e.add(aspectRatioTokenWeight, "name carries a ratio token")
	}

	children := node.VisibleChildren()
	if len(children) == 1 && children[0].IsContainer() {
		e.add(aspectRatioOneChildWeight, "single content child")
	}

	if hasCommonAspect(node) {
		e.add(aspectRatioGeometryWeight, "size matches a common aspect ratio")
	}

	return e.classification()
}

func hasCommonAspect(node *design.Node) bool {
	if node.Size == nil || node.Size.H <= 0 {
		return false
	}

	aspect := node.Size.W / node.Size.H

	for _, ratio := range commonAspectRatios {
		if math.Abs(aspect-ratio) <= aspectRatioTolerance*ratio {
			return true
		}
	}

	return false
}

func scoreResizable(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"resizable"}, weight: resizableNameWeight},
		{all: []string{"resize"}, weight: resizableWeakNameWeight},
		{all: []string{"split"}, weight: resizableSplitWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "panel", labelB: "handle",
		rolesA: resizablePanelRoles, rolesB: resizableHandleRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	if countChildRole(node, resizablePanelRoles) >= minResizablePanels {
		e.add(resizablePanelsWeight, "has multiple panels")
	}

	if node.LayoutAxis == design.LayoutHorizontal || node.LayoutAxis == design.LayoutVertical {
		e.add(resizableLayoutWeight, "auto-layout container")
	}

	return e.classification()
}

// scoreContainer is the generic fallback: any container with content gets a
// weak baseline so unrecognized frames classify as Container rather than
// arbitrarily inheriting a component archetype. Declared last, so every
// specific archetype beats it on ties.
func scoreContainer(node *design.Node) Classification {
	e := &evidence{}

	if node.IsContainer() && len(node.VisibleChildren()) > 0 {
		e.add(containerKindWeight, "container kind with children")
	}

	if node.LayoutAxis == design.LayoutHorizontal || node.LayoutAxis == design.LayoutVertical {
		e.add(containerLayoutWeight, "auto-layout container")
	}

	if node.NameContainsAny(containerGenericNames...) {
		e.add(containerNameWeight, "generic layout name")
	}

	return e.classification()
}
