package commands //nolint:testpackage // testing internal implementation.

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figmap-dev/figmap/pkg/classify"
)

func TestSchemasCommand_TextListsEveryArchetype(t *testing.T) {
	t.Parallel()

	cmd := NewSchemasCommand()
	cmd.SetArgs([]string{})

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	for _, archetype := range classify.NewClassifier().Archetypes() {
		assert.Contains(t, out.String(), string(archetype))
	}

	assert.Contains(t, out.String(), "DropdownMenuTrigger (required)")
	assert.Contains(t, out.String(), "DropdownMenuItem (required, multiple)")
}

func TestSchemasCommand_JSONShape(t *testing.T) {
	t.Parallel()

	cmd := NewSchemasCommand()
	cmd.SetArgs([]string{"--format", "json"})

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	var docs []schemaDoc

	require.NoError(t, json.Unmarshal(out.Bytes(), &docs))
	assert.Len(t, docs, len(classify.NewClassifier().Archetypes()))

	for _, doc := range docs {
		assert.NotEmpty(t, doc.Archetype)
	}
}

func TestSchemasCommand_UnknownFormat(t *testing.T) {
	t.Parallel()

	cmd := NewSchemasCommand()
	cmd.SetArgs([]string{"--format", "plot"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrUnknownFormat)
}
