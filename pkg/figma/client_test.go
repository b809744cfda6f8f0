package figma //nolint:testpackage // testing internal implementation.

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figmap-dev/figmap/pkg/design"
)

const fileFixture = `{
	"name": "Design System",
	"document": {
		"id": "0:0",
		"name": "Document",
		"type": "DOCUMENT",
		"children": [
			{
				"id": "1:1",
				"name": "Dropdown Menu",
				"type": "COMPONENT",
				"layoutMode": "VERTICAL",
				"absoluteBoundingBox": {"width": 240, "height": 320},
				"children": [
					{"id": "1:2", "name": "Trigger", "type": "FRAME"},
					{"id": "1:3", "name": "Hidden Draft", "type": "FRAME", "visible": false},
					{"id": "1:4", "name": "Label", "type": "TEXT", "characters": "Options"}
				]
			}
		]
	}
}`

func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}

		if r.Header.Get(tokenHeader) != "secret" {
			w.WriteHeader(http.StatusForbidden)

			return
		}

		switch r.URL.Path {
		case "/v1/files/abc123":
			_, _ = w.Write([]byte(fileFixture))
		case "/v1/files/abc123/nodes":
			_, _ = w.Write([]byte(`{"nodes": {"1:1": {"document": {"id": "1:1", "name": "Dropdown Menu", "type": "COMPONENT"}}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestClientFile_ConvertsDocumentTree(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, nil)
	defer server.Close()

	client, err := NewClient(Config{Token: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	root, err := client.File(t.Context(), "abc123")
	require.NoError(t, err)

	require.Len(t, root.Children, 1)

	component := root.Children[0]
	assert.Equal(t, "Dropdown Menu", component.Name)
	assert.Equal(t, design.KindComponent, component.Kind)
	assert.Equal(t, design.LayoutVertical, component.LayoutAxis)
	require.NotNil(t, component.Size)
	assert.InDelta(t, 240.0, component.Size.W, 0.0001)

	require.Len(t, component.Children, 3)
	assert.True(t, component.Children[1].Hidden())
	assert.Equal(t, "Options", component.Children[2].TextContent)
}

func TestClientFile_CachesResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64

	server := newTestServer(t, &hits)
	defer server.Close()

	client, err := NewClient(Config{Token: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	for range 3 {
		_, err := client.File(t.Context(), "abc123")
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), hits.Load())
}

func TestClientNode_FetchesSubtree(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, nil)
	defer server.Close()

	client, err := NewClient(Config{Token: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	node, err := client.Node(t.Context(), "abc123", "1:1")
	require.NoError(t, err)

	assert.Equal(t, "Dropdown Menu", node.Name)
	assert.Equal(t, design.KindComponent, node.Kind)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, nil)
	defer server.Close()

	rejected, err := NewClient(Config{Token: "wrong", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = rejected.File(t.Context(), "abc123")
	assert.ErrorIs(t, err, ErrUnauthorized)

	client, err := NewClient(Config{Token: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.File(t.Context(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewClient_RequiresToken(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{})

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestConvertKind_UnknownTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, design.KindFrame, convertKind("STAR", true))
	assert.Equal(t, design.KindVector, convertKind("STAR", false))
	assert.Equal(t, design.KindSection, convertKind("SECTION", false))
}
