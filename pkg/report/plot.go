package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	plotWidth  = "1100px"
	plotHeight = "520px"
	axisRotate = 35
)

// WritePlot renders the report as a standalone HTML page with a bar chart of
// per-component classification and mapping confidence.
func WritePlot(w io.Writer, r *Report) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: plotWidth, Height: plotHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Figmap Confidence",
			Subtitle: fmt.Sprintf("Source: %s", r.Source),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "confidence", Type: "value"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: axisRotate}}),
	)

	labels := make([]string, 0, len(r.Components))
	classified := make([]opts.BarData, 0, len(r.Components))
	mapped := make([]opts.BarData, 0, len(r.Components))

	for _, component := range r.Components {
		labels = append(labels, fmt.Sprintf("%s (%s)", component.NodeName, component.Classification.Archetype))
		classified = append(classified, opts.BarData{Value: component.Classification.Confidence})

		mappingConfidence := 0.0
		if component.Mapping != nil {
			mappingConfidence = component.Mapping.OverallConfidence
		}

		mapped = append(mapped, opts.BarData{Value: mappingConfidence})
	}

	bar.SetXAxis(labels).
		AddSeries("classification", classified).
		AddSeries("mapping", mapped)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render plot page: %w", err)
	}

	return nil
}
