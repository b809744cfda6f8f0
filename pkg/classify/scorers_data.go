package classify

import "github.com/figmap-dev/figmap/pkg/design"

//nolint:gochecknoglobals // static keyword tables.
var (
	tableHeaderRoles = []string{"header", "head", "thead"}
	tableBodyRoles   = []string{"body", "rows", "row", "tbody"}
	tableCellRoles   = []string{"cell", "column", "td"}
)

const (
	dataTableFullNameWeight = 0.7
	dataTableNameWeight     = 0.5
	dataTableGridWeight     = 0.3
	dataTableCellsWeight    = 0.3
	dataTableRowsWeight     = 0.1

	separatorNameWeight  = 0.8
	dividerNameWeight    = 0.7
	separatorThinWeight  = 0.3
	separatorThickWeight = -0.3
	separatorKindWeight  = 0.2
	separatorLeafWeight  = 0.1
	separatorThinLimit   = 4
	separatorThickLimit  = 10

	kbdNameWeight      = 0.8
	kbdSecondaryWeight = 0.5
	kbdKeyTextWeight   = 0.3
	kbdCompactWeight   = 0.1
	kbdMaxKeyTextLen   = 6
	kbdMaxHeight       = 36
	minTableRows       = 2
)

func scoreDataTable(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"data", "table"}, weight: dataTableFullNameWeight},
		{all: []string{"table"}, exclude: []string{"tablet"}, weight: dataTableNameWeight},
		{all: []string{"grid"}, weight: dataTableGridWeight},
	})

	e.matchRolePair(node, rolePair{
		labelA: "header", labelB: "body",
		rolesA: tableHeaderRoles, rolesB: tableBodyRoles,
		bothWeight: menuStructBothWeight, eitherWeight: menuStructOneWeight,
		containersOnly: true,
	})

	e.matchNestedKeyword(node, tableBodyRoles, tableCellRoles, dataTableCellsWeight, "cells inside rows")

	if countChildRole(node, tableBodyRoles) >= minTableRows {
		e.add(dataTableRowsWeight, "has multiple rows")
	}

	return e.classification()
}

func countChildRole(node *design.Node, roles []string) int {
	count := 0

	for _, child := range node.VisibleChildren() {
		if child.NameContainsAny(roles...) {
			count++
		}
	}

	return count
}

func scoreSeparator(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"separator"}, weight: separatorNameWeight},
		{all: []string{"divider"}, weight: dividerNameWeight},
	})

	// Geometry carries unusual weight here: a separator is thin along one
	// axis regardless of what the layer is called.
	if thin := thinDimension(node); thin >= 0 {
		switch {
		case thin <= separatorThinLimit:
			e.add(separatorThinWeight, "thin along one axis")
		case thin > separatorThickLimit:
			e.add(separatorThickWeight, "too thick for a separator")
		}
	}

	switch node.Kind {
	case design.KindLine, design.KindRectangle, design.KindVector:
		e.add(separatorKindWeight, "line-like node kind")
	case design.KindFrame, design.KindGroup, design.KindComponent, design.KindComponentSet,
		design.KindInstance, design.KindText, design.KindEllipse, design.KindBooleanOp, design.KindSection:
	}

	if len(node.Children) == 0 {
		e.add(separatorLeafWeight, "leaf node")
	}

	return e.classification()
}

func scoreKbd(node *design.Node) Classification {
	e := &evidence{}

	e.matchNameTier(node, []nameTier{
		{all: []string{"kbd"}, weight: kbdNameWeight},
		{all: []string{"keyboard"}, weight: kbdSecondaryWeight},
		{all: []string{"shortcut"}, weight: kbdSecondaryWeight},
		{all: []string{"hotkey"}, weight: kbdSecondaryWeight},
	})

	if key := singleShortTextChild(node); key != nil {
		e.add(kbdKeyTextWeight, "single short key-cap text")
	}

	if heightBetween(node, 1, kbdMaxHeight) {
		e.add(kbdCompactWeight, "compact height")
	}

	return e.classification()
}

// singleShortTextChild returns the node's only visible text child when the
// node has exactly one and its content is key-cap sized.
func singleShortTextChild(node *design.Node) *design.Node {
	children := node.VisibleChildren()
	if len(children) != 1 {
		return nil
	}

	child := children[0]
	if child.Kind != design.KindText || child.TextContent == "" {
		return nil
	}

	if len([]rune(child.TextContent)) > kbdMaxKeyTextLen {
		return nil
	}

	return child
}
