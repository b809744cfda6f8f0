package mcp //nolint:testpackage // testing internal implementation.

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figmap-dev/figmap/pkg/report"
)

// buttonTree is a minimal button component document.
const buttonTree = `{
  "name": "Button/Primary",
  "kind": "COMPONENT",
  "layoutAxis": "HORIZONTAL",
  "children": [
    {"name": "Label", "kind": "TEXT", "textContent": "Submit"}
  ]
}`

func TestHandleClassify_EmptyTree(t *testing.T) {
	t.Parallel()

	input := ClassifyInput{Tree: ""}

	result, _, err := handleClassify(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "tree parameter is required")
}

func TestHandleClassify_InvalidFloor(t *testing.T) {
	t.Parallel()

	input := ClassifyInput{Tree: buttonTree, Floor: 1.5}

	result, _, err := handleClassify(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleClassify_MalformedDocument(t *testing.T) {
	t.Parallel()

	input := ClassifyInput{Tree: `{"name": "Broken"}`}

	result, _, err := handleClassify(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "decode tree")
}

func TestHandleClassify_ButtonDocument(t *testing.T) {
	t.Parallel()

	input := ClassifyInput{Tree: buttonTree}

	result, output, err := handleClassify(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	rep, ok := output.Data.(*report.Report)
	require.True(t, ok)
	assert.Equal(t, "inline", rep.Source)
	require.Len(t, rep.Components, 1)
	assert.Equal(t, "Button/Primary", rep.Components[0].NodeName)

	// The content mirrors the structured output as indented JSON.
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.True(t, json.Valid([]byte(text.Text)))
}

func TestHandleClassify_SourceLabelPropagates(t *testing.T) {
	t.Parallel()

	input := ClassifyInput{Tree: buttonTree, Source: "design-system.fig"}

	_, output, err := handleClassify(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)

	rep, ok := output.Data.(*report.Report)
	require.True(t, ok)
	assert.Equal(t, "design-system.fig", rep.Source)
}
