// Package design provides the canonical design-node tree structure consumed
// by the classifier and slot mapper, plus traversal and query helpers.
package design

import "strings"

// Kind is the coarse shape tag a design tool assigns to a node. It describes
// geometry and role in the layer list, not UI semantics.
type Kind string

// Node kind constants, matching the Figma node type vocabulary.
const (
	KindFrame        Kind = "FRAME"
	KindGroup        Kind = "GROUP"
	KindComponent    Kind = "COMPONENT"
	KindComponentSet Kind = "COMPONENT_SET"
	KindInstance     Kind = "INSTANCE"
	KindText         Kind = "TEXT"
	KindVector       Kind = "VECTOR"
	KindRectangle    Kind = "RECTANGLE"
	KindEllipse      Kind = "ELLIPSE"
	KindLine         Kind = "LINE"
	KindBooleanOp    Kind = "BOOLEAN_OPERATION"
	KindSection      Kind = "SECTION"
)

// LayoutAxis is the auto-layout direction of a container node.
type LayoutAxis string

// Layout axis constants. LayoutNone marks nodes without auto-layout.
const (
	LayoutNone       LayoutAxis = "NONE"
	LayoutHorizontal LayoutAxis = "HORIZONTAL"
	LayoutVertical   LayoutAxis = "VERTICAL"
)

// Size is the geometric extent of a node in design units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// minVisibleOpacity is the opacity below which a node is treated as hidden.
const minVisibleOpacity = 0.01

// Node is one node in a design tree. Trees are immutable inputs: the
// classifier and mapper only read them. Child order follows layer order and
// is meaningful for positional heuristics.
type Node struct {
	Name        string     `json:"name"`
	Kind        Kind       `json:"kind"`
	Children    []*Node    `json:"children,omitempty"`
	LayoutAxis  LayoutAxis `json:"layoutAxis,omitempty"`
	Size        *Size      `json:"size,omitempty"`
	Visible     bool       `json:"visible"`
	Opacity     float64    `json:"opacity"`
	TextContent string     `json:"textContent,omitempty"`
}

// New creates a visible, fully opaque node with the given name and kind.
func New(name string, kind Kind, children ...*Node) *Node {
	return &Node{
		Name:     name,
		Kind:     kind,
		Children: children,
		Visible:  true,
		Opacity:  1,
	}
}

// NewText creates a visible text leaf carrying the given content.
func NewText(name, content string) *Node {
	n := New(name, KindText)
	n.TextContent = content

	return n
}

// Hidden reports whether the node is suppressed from consideration, either
// explicitly invisible or effectively transparent.
func (n *Node) Hidden() bool {
	return !n.Visible || n.Opacity < minVisibleOpacity
}

// VisibleChildren returns the node's children with hidden nodes filtered out,
// preserving layer order.
func (n *Node) VisibleChildren() []*Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}

	out := make([]*Node, 0, len(n.Children))

	for _, child := range n.Children {
		if child == nil || child.Hidden() {
			continue
		}

		out = append(out, child)
	}

	return out
}

// LowerName returns the node name lower-cased for pattern matching.
func (n *Node) LowerName() string {
	return strings.ToLower(n.Name)
}

// IsContainer reports whether the node kind can carry children.
func (n *Node) IsContainer() bool {
	switch n.Kind {
	case KindFrame, KindGroup, KindComponent, KindComponentSet, KindInstance, KindSection:
		return true
	case KindText, KindVector, KindRectangle, KindEllipse, KindLine, KindBooleanOp:
		return false
	default:
		return len(n.Children) > 0
	}
}

// Walk visits the node and every visible descendant depth-first in layer
// order. Traversal stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}

	if !fn(n) {
		return
	}

	for _, child := range n.VisibleChildren() {
		child.Walk(fn)
	}
}

// Find returns the first visible descendant (excluding the node itself)
// satisfying pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node

	for _, child := range n.VisibleChildren() {
		child.Walk(func(d *Node) bool {
			if found != nil {
				return false
			}

			if pred(d) {
				found = d

				return false
			}

			return true
		})

		if found != nil {
			break
		}
	}

	return found
}

// HasDescendant reports whether any visible descendant within maxDepth levels
// below the node satisfies pred. maxDepth 1 inspects direct children only.
func (n *Node) HasDescendant(pred func(*Node) bool, maxDepth int) bool {
	if n == nil || maxDepth <= 0 {
		return false
	}

	for _, child := range n.VisibleChildren() {
		if pred(child) {
			return true
		}

		if child.HasDescendant(pred, maxDepth-1) {
			return true
		}
	}

	return false
}

// CountNodes returns the number of nodes in the subtree rooted at n,
// including n and hidden nodes.
func (n *Node) CountNodes() int {
	if n == nil {
		return 0
	}

	count := 1
	for _, child := range n.Children {
		count += child.CountNodes()
	}

	return count
}

// MaxDepth returns the depth of the subtree rooted at n. A leaf has depth 1.
func (n *Node) MaxDepth() int {
	if n == nil {
		return 0
	}

	deepest := 0

	for _, child := range n.Children {
		if d := child.MaxDepth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}

// NameContains reports whether the lower-cased node name contains every one
// of the given lower-case substrings.
func (n *Node) NameContains(substrings ...string) bool {
	name := n.LowerName()

	for _, s := range substrings {
		if !strings.Contains(name, s) {
			return false
		}
	}

	return true
}

// NameContainsAny reports whether the lower-cased node name contains at
// least one of the given lower-case substrings.
func (n *Node) NameContainsAny(substrings ...string) bool {
	name := n.LowerName()

	for _, s := range substrings {
		if strings.Contains(name, s) {
			return true
		}
	}

	return false
}
