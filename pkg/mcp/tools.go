package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool name constants.
const (
	ToolNameClassify = "figmap_classify"
	ToolNameSchemas  = "figmap_schemas"
)

// Input size limits.
const (
	// MaxTreeInputBytes is the maximum allowed size for an inline design tree (4 MB).
	MaxTreeInputBytes = 4 << 20
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyTree indicates the tree parameter is empty.
	ErrEmptyTree = errors.New("tree parameter is required and must not be empty")
	// ErrTreeTooLarge indicates the design tree input exceeds the size limit.
	ErrTreeTooLarge = errors.New("tree input exceeds maximum size")
	// ErrUnknownArchetype indicates the requested archetype has no schema.
	ErrUnknownArchetype = errors.New("unknown archetype")
	// ErrInvalidFloor indicates the floor parameter is outside the unit interval.
	ErrInvalidFloor = errors.New("floor must be between 0 and 1")
)

// Input types (auto-generate JSON schemas via struct tags).

// ClassifyInput is the input schema for the figmap_classify tool.
type ClassifyInput struct {
	Floor     float64 `json:"floor,omitempty"     jsonschema:"optional classification acceptance floor between 0 and 1 (default: 0.4)"`
	Source    string  `json:"source,omitempty"    jsonschema:"optional label for the document in the report (default: inline)"`
	Threshold float64 `json:"threshold,omitempty" jsonschema:"optional slot confidence threshold below which suggestions fire (default: 0.5)"`
	Tree      string  `json:"tree"                jsonschema:"design tree as JSON with name type and children fields"`
}

// SchemasInput is the input schema for the figmap_schemas tool.
type SchemasInput struct {
	Archetype string `json:"archetype,omitempty" jsonschema:"optional archetype name to return a single schema (e.g. DropdownMenu)"`
}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// validateTreeInput checks common design tree input constraints.
func validateTreeInput(tree string, floor float64) error {
	if tree == "" {
		return ErrEmptyTree
	}

	if len(tree) > MaxTreeInputBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTreeTooLarge, len(tree), MaxTreeInputBytes)
	}

	if floor < 0 || floor > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidFloor, floor)
	}

	return nil
}
