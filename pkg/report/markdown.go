package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders the report as a markdown document.
func WriteMarkdown(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Figmap Report: %s\n\n", r.Source)
	fmt.Fprintf(&b, "Generated %s. Acceptance floor %.2f.\n\n",
		r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.Floor)

	for _, component := range r.Components {
		writeComponentMarkdown(&b, component)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}

	return nil
}

func writeComponentMarkdown(b *strings.Builder, c Component) {
	fmt.Fprintf(b, "## %s\n\n", c.NodeName)
	fmt.Fprintf(b, "**%s** at %.0f%% confidence", c.Classification.Archetype, c.Classification.Confidence*100)

	if !c.Accepted {
		b.WriteString(" (below acceptance floor)")
	}

	b.WriteString("\n\n")

	if len(c.Classification.Reasons) > 0 {
		for _, reason := range c.Classification.Reasons {
			fmt.Fprintf(b, "- %s\n", reason)
		}

		b.WriteString("\n")
	}

	if c.Mapping == nil {
		return
	}

	if len(c.Mapping.Slots) > 0 {
		b.WriteString("| Slot | Layers | Confidence |\n")
		b.WriteString("| --- | --- | --- |\n")

		for _, slot := range c.Mapping.Slots {
			fmt.Fprintf(b, "| %s | %s | %.2f |\n",
				slot.SlotName, strings.Join(slot.NodeNames(), ", "), slot.Confidence)
		}

		fmt.Fprintf(b, "\nOverall mapping confidence: **%.2f**\n\n", c.Mapping.OverallConfidence)
	}

	for _, warning := range c.Mapping.Warnings {
		fmt.Fprintf(b, "> :warning: %s\n", warning)
	}

	for _, suggestion := range c.Mapping.Suggestions {
		fmt.Fprintf(b, "> :bulb: %s\n", suggestion)
	}

	if len(c.Mapping.Warnings)+len(c.Mapping.Suggestions) > 0 {
		b.WriteString("\n")
	}
}
