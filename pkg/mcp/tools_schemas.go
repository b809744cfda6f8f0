package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/slotmap"
)

// SchemaInfo describes one archetype's slot schema in tool output.
type SchemaInfo struct {
	Archetype string     `json:"archetype"`
	Slots     []SlotInfo `json:"slots,omitempty"`
}

// SlotInfo describes one slot and its nested children in tool output.
type SlotInfo struct {
	Name           string     `json:"name"`
	Required       bool       `json:"required"`
	AllowsMultiple bool       `json:"allows_multiple,omitempty"`
	Signals        []string   `json:"signals,omitempty"`
	Children       []SlotInfo `json:"children,omitempty"`
}

// handleSchemas processes figmap_schemas tool calls.
func handleSchemas(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input SchemasInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	registry := slotmap.NewRegistry()

	if input.Archetype != "" {
		schema, ok := registry.Get(classify.Archetype(input.Archetype))
		if !ok {
			return errorResult(fmt.Errorf("%w: %s", ErrUnknownArchetype, input.Archetype))
		}

		return jsonResult([]SchemaInfo{schemaInfo(schema)})
	}

	archetypes := registry.Archetypes()
	infos := make([]SchemaInfo, 0, len(archetypes))

	for _, archetype := range archetypes {
		schema, ok := registry.Get(archetype)
		if !ok {
			continue
		}

		infos = append(infos, schemaInfo(schema))
	}

	return jsonResult(infos)
}

func schemaInfo(schema slotmap.Schema) SchemaInfo {
	return SchemaInfo{
		Archetype: string(schema.Archetype),
		Slots:     slotInfos(schema.Slots),
	}
}

func slotInfos(slots []slotmap.Slot) []SlotInfo {
	if len(slots) == 0 {
		return nil
	}

	infos := make([]SlotInfo, 0, len(slots))

	for _, slot := range slots {
		signals := make([]string, 0, len(slot.Rules))
		for _, rule := range slot.Rules {
			signals = append(signals, string(rule.Kind))
		}

		infos = append(infos, SlotInfo{
			Name:           slot.Name,
			Required:       slot.Required,
			AllowsMultiple: slot.AllowsMultiple,
			Signals:        signals,
			Children:       slotInfos(slot.Children),
		})
	}

	return infos
}
