// Package figma fetches design documents from the Figma REST API and converts
// them into the internal design tree.
package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/figmap-dev/figmap/pkg/design"
)

const (
	// DefaultBaseURL is the production Figma REST endpoint.
	DefaultBaseURL = "https://api.figma.com"

	// DefaultTimeout bounds a single API round trip.
	DefaultTimeout = 30 * time.Second

	// DefaultCacheEntries is the response cache capacity. Design files are
	// fetched repeatedly while iterating on mappings, so a small LRU saves
	// most round trips.
	DefaultCacheEntries = 32

	tokenHeader  = "X-Figma-Token" //nolint:gosec // header name, not a credential.
	maxErrorBody = 512
)

var (
	// ErrMissingToken reports a client constructed without an API token.
	ErrMissingToken = errors.New("figma API token is required")

	// ErrNotFound reports a file or node key the API does not know.
	ErrNotFound = errors.New("figma file not found")

	// ErrUnauthorized reports a rejected token.
	ErrUnauthorized = errors.New("figma token rejected")
)

// Config carries the client settings. Zero values fall back to the defaults
// above, only Token is mandatory.
type Config struct {
	Token        string
	BaseURL      string
	Timeout      time.Duration
	CacheEntries int
}

// Client is a Figma REST API client with an LRU response cache. It is safe
// for concurrent use.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	cache   *lru.Cache[string, *design.Node]
}

// NewClient builds a client from the config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.CacheEntries <= 0 {
		cfg.CacheEntries = DefaultCacheEntries
	}

	cache, err := lru.New[string, *design.Node](cfg.CacheEntries)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		cache:   cache,
	}, nil
}

// fileResponse is the JSON envelope of GET /v1/files/{key}.
type fileResponse struct {
	Name     string  `json:"name"`
	Document apiNode `json:"document"`
}

// nodesResponse is the JSON envelope of GET /v1/files/{key}/nodes.
type nodesResponse struct {
	Nodes map[string]struct {
		Document apiNode `json:"document"`
	} `json:"nodes"`
}

// File fetches a whole design file and returns its document root. Responses
// are cached by file key.
func (c *Client) File(ctx context.Context, fileKey string) (*design.Node, error) {
	if cached, ok := c.cache.Get(fileKey); ok {
		return cached, nil
	}

	var envelope fileResponse
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(fileKey), &envelope); err != nil {
		return nil, err
	}

	root := convertNode(envelope.Document)
	c.cache.Add(fileKey, root)

	return root, nil
}

// Node fetches a single node subtree from a design file. Responses are cached
// by file key and node ID.
func (c *Client) Node(ctx context.Context, fileKey, nodeID string) (*design.Node, error) {
	cacheKey := fileKey + "#" + nodeID
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached, nil
	}

	var envelope nodesResponse

	path := "/v1/files/" + url.PathEscape(fileKey) + "/nodes?ids=" + url.QueryEscape(nodeID)
	if err := c.get(ctx, path, &envelope); err != nil {
		return nil, err
	}

	entry, ok := envelope.Nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("%w: node %s in file %s", ErrNotFound, nodeID, fileKey)
	}

	root := convertNode(entry.Document)
	c.cache.Add(cacheKey, root)

	return root, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	target := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body.

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, target)
	case http.StatusForbidden, http.StatusUnauthorized:
		return fmt.Errorf("%w: HTTP %d from %s", ErrUnauthorized, resp.StatusCode, target)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, target, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", target, err)
	}

	return nil
}
