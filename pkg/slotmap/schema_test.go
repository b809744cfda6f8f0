package slotmap //nolint:testpackage // testing internal implementation.

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/figmap-dev/figmap/pkg/design"
)

func TestRuleScore_NameGradesKeywordOrder(t *testing.T) {
	t.Parallel()

	rule := Rule{Kind: SignalName, Keywords: []string{"trigger", "button"}}

	assert.InDelta(t, scoreFull, rule.Score(design.New("Menu Trigger", design.KindFrame), Context{}), 0.0001)
	assert.InDelta(t, scoreAltKeyword, rule.Score(design.New("Open Button", design.KindFrame), Context{}), 0.0001)
	assert.InDelta(t, 0.0, rule.Score(design.New("Content", design.KindFrame), Context{}), 0.0001)
}

func TestRuleScore_NameExcludeBlocksMatch(t *testing.T) {
	t.Parallel()

	rule := Rule{Kind: SignalName, Keywords: []string{"tab"}, Exclude: []string{"table"}}

	assert.InDelta(t, scoreFull, rule.Score(design.New("Tab One", design.KindFrame), Context{}), 0.0001)
	assert.InDelta(t, 0.0, rule.Score(design.New("Data Table", design.KindFrame), Context{}), 0.0001)
}

func TestRuleScore_ChildRoleThresholds(t *testing.T) {
	t.Parallel()

	rule := Rule{Kind: SignalChildRole, Keywords: []string{"item"}}

	none := design.New("List", design.KindFrame, design.New("Other", design.KindFrame))
	one := design.New("List", design.KindFrame, design.New("Item A", design.KindFrame))
	two := design.New("List", design.KindFrame,
		design.New("Item A", design.KindFrame),
		design.New("Item B", design.KindFrame),
	)

	assert.InDelta(t, 0.0, rule.Score(none, Context{}), 0.0001)
	assert.InDelta(t, scoreSingleRole, rule.Score(one, Context{}), 0.0001)
	assert.InDelta(t, scoreFull, rule.Score(two, Context{}), 0.0001)
}

func TestRuleScore_TextPrefersDirectLeaf(t *testing.T) {
	t.Parallel()

	rule := Rule{Kind: SignalText}

	leaf := design.NewText("Label", "Save")
	wrapped := design.New("Cell", design.KindFrame, design.NewText("Label", "Save"))
	deep := design.New("Outer", design.KindFrame,
		design.New("Mid", design.KindFrame,
			design.New("Inner", design.KindFrame, design.NewText("Label", "Save")),
		),
	)

	assert.InDelta(t, scoreFull, rule.Score(leaf, Context{}), 0.0001)
	assert.InDelta(t, scoreNestedText, rule.Score(wrapped, Context{}), 0.0001)
	assert.InDelta(t, 0.0, rule.Score(deep, Context{}), 0.0001)
}

func TestRuleScore_PositionGradesDistance(t *testing.T) {
	t.Parallel()

	first := Rule{Kind: SignalPosition, Position: 0}

	assert.InDelta(t, scoreFull, first.Score(nil, Context{Index: 0, Total: 3}), 0.0001)
	assert.InDelta(t, scoreNearPosition, first.Score(nil, Context{Index: 1, Total: 3}), 0.0001)
	assert.InDelta(t, 0.0, first.Score(nil, Context{Index: 2, Total: 3}), 0.0001)

	last := Rule{Kind: SignalPosition, Position: PositionLast}

	assert.InDelta(t, scoreFull, last.Score(nil, Context{Index: 2, Total: 3}), 0.0001)
	assert.InDelta(t, scoreNearPosition, last.Score(nil, Context{Index: 1, Total: 3}), 0.0001)
}

func TestRuleScore_ThinSizeNeedsGeometry(t *testing.T) {
	t.Parallel()

	rule := Rule{Kind: SignalThinSize, MaxThin: 4}

	thin := design.New("Divider", design.KindLine)
	thin.Size = &design.Size{W: 240, H: 1}

	thick := design.New("Block", design.KindRectangle)
	thick.Size = &design.Size{W: 240, H: 48}

	assert.InDelta(t, scoreFull, rule.Score(thin, Context{}), 0.0001)
	assert.InDelta(t, 0.0, rule.Score(thick, Context{}), 0.0001)
	assert.InDelta(t, 0.0, rule.Score(design.New("No Size", design.KindLine), Context{}), 0.0001)
}

func TestSlotScore_ClampsAndReportsNameContribution(t *testing.T) {
	t.Parallel()

	slot := Slot{
		Name: "Content",
		Rules: []Rule{
			{Kind: SignalName, Weight: 0.8, Keywords: []string{"content"}},
			{Kind: SignalNodeKind, Weight: 0.8, Kinds: []design.Kind{design.KindFrame}},
		},
	}

	total, nameScore := slot.score(design.New("Menu Content", design.KindFrame), Context{Total: 1})

	assert.InDelta(t, 1.0, total, 0.0001)
	assert.InDelta(t, scoreFull, nameScore, 0.0001)

	total, nameScore = slot.score(design.New("Panel", design.KindFrame), Context{Total: 1})

	assert.InDelta(t, 0.8, total, 0.0001)
	assert.InDelta(t, 0.0, nameScore, 0.0001)
}

func TestSlotHasNameRule(t *testing.T) {
	t.Parallel()

	named := Slot{Rules: []Rule{{Kind: SignalText}, {Kind: SignalName, Keywords: []string{"x"}}}}
	unnamed := Slot{Rules: []Rule{{Kind: SignalText}}}

	assert.True(t, named.hasNameRule())
	assert.False(t, unnamed.hasNameRule())
}
