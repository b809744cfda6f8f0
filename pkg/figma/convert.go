package figma

import (
	"github.com/figmap-dev/figmap/pkg/design"
)

// apiNode mirrors the subset of the Figma REST node payload the design tree
// needs. Visibility and opacity are pointers because the API omits them at
// their defaults.
type apiNode struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Visible    *bool     `json:"visible,omitempty"`
	Opacity    *float64  `json:"opacity,omitempty"`
	Characters string    `json:"characters,omitempty"`
	LayoutMode string    `json:"layoutMode,omitempty"`
	Children   []apiNode `json:"children,omitempty"`

	AbsoluteBoundingBox *struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"absoluteBoundingBox,omitempty"`
}

// knownKinds maps Figma node types onto the internal kind set. The REST API
// uses the same spelling for every kind the classifier cares about.
//
//nolint:gochecknoglobals // static table.
var knownKinds = map[string]design.Kind{
	string(design.KindFrame):        design.KindFrame,
	string(design.KindGroup):        design.KindGroup,
	string(design.KindComponent):    design.KindComponent,
	string(design.KindComponentSet): design.KindComponentSet,
	string(design.KindInstance):     design.KindInstance,
	string(design.KindText):         design.KindText,
	string(design.KindVector):       design.KindVector,
	string(design.KindRectangle):    design.KindRectangle,
	string(design.KindEllipse):      design.KindEllipse,
	string(design.KindLine):         design.KindLine,
	string(design.KindBooleanOp):    design.KindBooleanOp,
	string(design.KindSection):      design.KindSection,
}

// convertKind maps a Figma node type string onto a design kind. Types outside
// the known set (STAR, SLICE, new API additions) degrade to a frame when they
// hold children and to a vector otherwise, so the tree stays walkable.
func convertKind(apiType string, hasChildren bool) design.Kind {
	if kind, ok := knownKinds[apiType]; ok {
		return kind
	}

	if hasChildren {
		return design.KindFrame
	}

	return design.KindVector
}

// convertNode converts one API node and its subtree into the design tree,
// preserving layer order.
func convertNode(src apiNode) *design.Node {
	node := design.New(src.Name, convertKind(src.Type, len(src.Children) > 0))
	node.TextContent = src.Characters

	if src.Visible != nil {
		node.Visible = *src.Visible
	}

	if src.Opacity != nil {
		node.Opacity = *src.Opacity
	}

	switch src.LayoutMode {
	case string(design.LayoutHorizontal):
		node.LayoutAxis = design.LayoutHorizontal
	case string(design.LayoutVertical):
		node.LayoutAxis = design.LayoutVertical
	default:
		node.LayoutAxis = design.LayoutNone
	}

	if box := src.AbsoluteBoundingBox; box != nil {
		node.Size = &design.Size{W: box.Width, H: box.Height}
	}

	for _, child := range src.Children {
		node.Children = append(node.Children, convertNode(child))
	}

	return node
}
