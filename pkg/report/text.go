package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	confidenceHigh   = 0.8
	confidenceMedium = 0.6
)

// TextOptions controls the text renderer.
type TextOptions struct {
	NoColor bool
}

// WriteText renders the report as colored terminal text, one block per
// analyzed component.
func WriteText(w io.Writer, r *Report, opts TextOptions) error {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	if opts.NoColor {
		for _, c := range []*color.Color{green, yellow, red} {
			c.DisableColor()
		}
	}

	if _, err := fmt.Fprintf(w, "=== FIGMAP REPORT: %s ===\n", r.Source); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	totalNodes := 0
	for _, component := range r.Components {
		totalNodes += component.NodeCount
	}

	fmt.Fprintf(w, "%s component(s), %s node(s), acceptance floor %.2f\n\n",
		humanize.Comma(int64(len(r.Components))), humanize.Comma(int64(totalNodes)), r.Floor)

	for i, component := range r.Components {
		if i > 0 {
			fmt.Fprintln(w)
		}

		writeComponentText(w, component, green, yellow, red)
	}

	return nil
}

func writeComponentText(w io.Writer, c Component, green, yellow, red *color.Color) {
	verdict := confidenceColor(c.Classification.Confidence, green, yellow, red)

	fmt.Fprintf(w, "%s\n", c.NodeName)
	verdict.Fprintf(w, "  %s (%.0f%% confidence)\n",
		c.Classification.Archetype, c.Classification.Confidence*100)

	if !c.Accepted {
		red.Fprintf(w, "  below acceptance floor, treating as unrecognized\n")
	}

	for _, reason := range c.Classification.Reasons {
		fmt.Fprintf(w, "    - %s\n", reason)
	}

	if c.Mapping == nil {
		return
	}

	if len(c.Mapping.Slots) > 0 {
		fmt.Fprintln(w, indentLines(renderSlotTable(c), "  "))
	}

	for _, warning := range c.Mapping.Warnings {
		yellow.Fprintf(w, "  warning: %s\n", warning)
	}

	for _, suggestion := range c.Mapping.Suggestions {
		fmt.Fprintf(w, "  suggestion: %s\n", suggestion)
	}
}

func renderSlotTable(c Component) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{"SLOT", "LAYERS", "CONFIDENCE"})

	for _, slot := range c.Mapping.Slots {
		tbl.AppendRow(table.Row{
			slot.SlotName,
			strings.Join(slot.NodeNames(), ", "),
			fmt.Sprintf("%.2f", slot.Confidence),
		})
	}

	tbl.AppendFooter(table.Row{"overall", "", fmt.Sprintf("%.2f", c.Mapping.OverallConfidence)})

	return tbl.Render()
}

func confidenceColor(confidence float64, green, yellow, red *color.Color) *color.Color {
	switch {
	case confidence >= confidenceHigh:
		return green
	case confidence >= confidenceMedium:
		return yellow
	default:
		return red
	}
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}
