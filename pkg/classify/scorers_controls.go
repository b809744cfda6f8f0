package classify

import "github.com/figmap-dev/figmap/pkg/design"

//nolint:gochecknoglobals // static keyword tables.
var (
	switchThumbRoles = []string{"thumb", "knob", "handle"}
	switchTrackRoles = []string{"track", "background", "bg"}

	textareaFieldRoles = []string{"field", "input", "box"}
	textareaLabelRoles = []string{"label", "placeholder"}
)

const (
	buttonNameWeight    = 0.7
	buttonCTAWeight     = 0.4
	buttonTextWeight    = 0.2
	buttonIconWeight    = 0.1
	buttonSizeWeight    = 0.1
	buttonMinHeight     = 20
	buttonMaxHeight     = 64
	buttonVariantWeight = 0.1

	switchNameWeight    = 0.8
	toggleNameWeight    = 0.6
	switchBothWeight    = 0.5
	switchEitherWeight  = 0.25
	switchPillWeight    = 0.2
	switchVariantWeight = 0.1
	switchMinAspect     = 1.5
	switchMaxAspect     = 3.2

	textareaNameWeight    = 0.8
	textareaSplitWeight   = 0.7
	textareaWeakWeight    = 0.5
	textareaFieldWeight   = 0.2
	textareaLabelWeight   = 0.15
	textareaTallWeight    = 0.2
	textareaMinTallHeight = 60
	textareaVariantWeight = 0.1
)

func scoreButton(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"button"}, exclude: []string{"radio", "group"}, weight: buttonNameWeight},
		{all: []string{"btn"}, weight: buttonNameWeight},
		{all: []string{"cta"}, weight: buttonCTAWeight},
	})

	if hasTextLeafChild(node) {
		e.add(buttonTextWeight, "has label text child")
	}

	if hasIconChild(node) {
		e.add(buttonIconWeight, "has icon child")
	}

	if heightBetween(node, buttonMinHeight, buttonMaxHeight) {
		e.add(buttonSizeWeight, "button-sized height")
	}

	e.matchVariant(node, reStateVariant, buttonVariantWeight, "state= variant annotation")
	e.matchVariant(node, reTypeVariant, buttonVariantWeight, "type/variant= annotation")

	return e.classification()
}

func hasTextLeafChild(node *design.Node) bool {
	for _, child := range node.VisibleChildren() {
		if child.Kind == design.KindText {
			return true
		}
	}

	return false
}

func hasIconChild(node *design.Node) bool {
	for _, child := range node.VisibleChildren() {
		if child.Kind == design.KindVector || child.NameContains("icon") {
			return true
		}
	}

	return false
}

func scoreSwitch(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"switch"}, weight: switchNameWeight},
		{all: []string{"toggle"}, weight: toggleNameWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "thumb", labelB: "track",
		rolesA: switchThumbRoles, rolesB: switchTrackRoles,
		bothWeight: switchBothWeight, eitherWeight: switchEitherWeight,
	})

	if isPillShaped(node) {
		e.add(switchPillWeight, "pill-shaped aspect ratio")
	}

	e.matchVariant(node, reCheckedVariant, switchVariantWeight, "checked/on= variant annotation")
	e.matchVariant(node, reStateVariant, switchVariantWeight, "state= variant annotation")

	if node.NameContains("checkbox") && !node.NameContainsAny("switch", "toggle") {
		e.penalize(confusablePenalty, "name suggests a checkbox without a switch keyword")
	}

	return e.classification()
}

func isPillShaped(node *design.Node) bool {
	if node.Size == nil || node.Size.H <= 0 {
		return false
	}

	aspect := node.Size.W / node.Size.H

	return aspect >= switchMinAspect && aspect <= switchMaxAspect
}

func scoreTextarea(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"textarea"}, weight: textareaNameWeight},
		{all: []string{"text", "area"}, weight: textareaSplitWeight},
		{all: []string{"multiline"}, weight: textareaWeakWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "field", labelB: "label",
		rolesA: textareaFieldRoles, rolesB: textareaLabelRoles,
		bothWeight: textareaFieldWeight + textareaLabelWeight, eitherWeight: textareaLabelWeight,
	})

	if node.Size != nil && node.Size.H >= textareaMinTallHeight {
		e.add(textareaTallWeight, "multi-line height")
	}

	e.matchVariant(node, reStateVariant, textareaVariantWeight, "state= variant annotation")

	if node.NameContains("input") && !node.NameContainsAny("area", "multiline") {
		e.penalize(confusablePenalty, "name suggests a single-line input without an area keyword")
	}

	return e.classification()
}
