package design //nolint:testpackage // testing internal implementation.

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleChildren_FiltersHiddenNodes(t *testing.T) {
	t.Parallel()

	shown := New("Label", KindText)
	hidden := New("Ghost", KindFrame)
	hidden.Visible = false
	transparent := New("Faded", KindFrame)
	transparent.Opacity = 0

	root := New("Card", KindFrame, shown, hidden, transparent)

	visible := root.VisibleChildren()

	assert.Len(t, visible, 1)
	assert.Equal(t, "Label", visible[0].Name)
}

func TestVisibleChildren_PreservesLayerOrder(t *testing.T) {
	t.Parallel()

	root := New("Row", KindFrame,
		New("First", KindText),
		New("Second", KindText),
		New("Third", KindText),
	)

	visible := root.VisibleChildren()

	names := make([]string, 0, len(visible))
	for _, child := range visible {
		names = append(names, child.Name)
	}

	assert.Equal(t, []string{"First", "Second", "Third"}, names)
}

func TestHasDescendant_RespectsDepthLimit(t *testing.T) {
	t.Parallel()

	deep := New("Item", KindFrame)
	mid := New("Content", KindFrame, deep)
	root := New("Menu", KindFrame, mid)

	isItem := func(n *Node) bool { return n.Name == "Item" }

	assert.False(t, root.HasDescendant(isItem, 1))
	assert.True(t, root.HasDescendant(isItem, 2))
}

func TestHasDescendant_SkipsHiddenSubtrees(t *testing.T) {
	t.Parallel()

	hiddenParent := New("Hidden", KindFrame, New("Item", KindFrame))
	hiddenParent.Visible = false
	root := New("Menu", KindFrame, hiddenParent)

	found := root.HasDescendant(func(n *Node) bool { return n.Name == "Item" }, 3)

	assert.False(t, found)
}

func TestFind_ReturnsFirstMatchInLayerOrder(t *testing.T) {
	t.Parallel()

	root := New("Root", KindFrame,
		New("Trigger A", KindFrame),
		New("Trigger B", KindFrame),
	)

	match := root.Find(func(n *Node) bool { return n.NameContains("trigger") })

	assert.NotNil(t, match)
	assert.Equal(t, "Trigger A", match.Name)
}

func TestCountNodes_IncludesHiddenNodes(t *testing.T) {
	t.Parallel()

	hidden := New("Hidden", KindFrame)
	hidden.Visible = false
	root := New("Root", KindFrame, New("A", KindText), hidden)

	assert.Equal(t, 3, root.CountNodes())
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	leaf := New("Leaf", KindText)
	root := New("Root", KindFrame, New("Mid", KindFrame, leaf))

	assert.Equal(t, 3, root.MaxDepth())
	assert.Equal(t, 1, leaf.MaxDepth())
}

func TestNameContains_AllSubstringsRequired(t *testing.T) {
	t.Parallel()

	n := New("Dropdown Menu", KindComponent)

	assert.True(t, n.NameContains("dropdown", "menu"))
	assert.False(t, n.NameContains("dropdown", "select"))
	assert.True(t, n.NameContainsAny("select", "menu"))
}

func TestIsContainer(t *testing.T) {
	t.Parallel()

	assert.True(t, New("Frame", KindFrame).IsContainer())
	assert.True(t, New("Component", KindComponent).IsContainer())
	assert.False(t, New("Text", KindText).IsContainer())
	assert.False(t, New("Vector", KindVector).IsContainer())
}
