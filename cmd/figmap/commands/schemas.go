package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/figmap-dev/figmap/pkg/slotmap"
)

// schemaDoc is the JSON shape for one archetype's schema listing.
type schemaDoc struct {
	Archetype string    `json:"archetype"`
	Slots     []slotDoc `json:"slots,omitempty"`
}

// slotDoc is the JSON shape for one slot and its nested children.
type slotDoc struct {
	Name           string    `json:"name"`
	Required       bool      `json:"required"`
	AllowsMultiple bool      `json:"allows_multiple,omitempty"`
	Children       []slotDoc `json:"children,omitempty"`
}

// SchemasCommand holds configuration for the schemas command.
type SchemasCommand struct {
	format string
}

// NewSchemasCommand creates the schemas command.
func NewSchemasCommand() *cobra.Command {
	sc := &SchemasCommand{format: FormatText}

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the slot schemas for every supported archetype",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.format, "format", FormatText, "Output format: text, json")

	return cmd
}

func (sc *SchemasCommand) run(cmd *cobra.Command, _ []string) error {
	registry := slotmap.NewRegistry()

	docs := make([]schemaDoc, 0, len(registry.Archetypes()))

	for _, archetype := range registry.Archetypes() {
		schema, ok := registry.Get(archetype)
		if !ok {
			continue
		}

		docs = append(docs, schemaDoc{
			Archetype: string(schema.Archetype),
			Slots:     slotDocs(schema.Slots),
		})
	}

	switch sc.format {
	case FormatText:
		return writeSchemasText(cmd.OutOrStdout(), docs)
	case FormatJSON:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		return encoder.Encode(docs)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, sc.format)
	}
}

func slotDocs(slots []slotmap.Slot) []slotDoc {
	if len(slots) == 0 {
		return nil
	}

	docs := make([]slotDoc, 0, len(slots))

	for _, slot := range slots {
		docs = append(docs, slotDoc{
			Name:           slot.Name,
			Required:       slot.Required,
			AllowsMultiple: slot.AllowsMultiple,
			Children:       slotDocs(slot.Children),
		})
	}

	return docs
}

func writeSchemasText(w io.Writer, docs []schemaDoc) error {
	for _, doc := range docs {
		_, err := fmt.Fprintf(w, "%s\n", doc.Archetype)
		if err != nil {
			return fmt.Errorf("write schemas: %w", err)
		}

		err = writeSlotTree(w, doc.Slots, 1)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeSlotTree(w io.Writer, slots []slotDoc, depth int) error {
	for _, slot := range slots {
		marker := "optional"
		if slot.Required {
			marker = "required"
		}

		if slot.AllowsMultiple {
			marker += ", multiple"
		}

		_, err := fmt.Fprintf(w, "%s%s (%s)\n", strings.Repeat("  ", depth), slot.Name, marker)
		if err != nil {
			return fmt.Errorf("write slot tree: %w", err)
		}

		err = writeSlotTree(w, slot.Children, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}
