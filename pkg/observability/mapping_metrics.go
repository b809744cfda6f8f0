package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricComponentsTotal  = "figmap.classify.components.total"
	metricClassifyDuration = "figmap.classify.duration.seconds"
	metricUnmetSlotsTotal  = "figmap.slotmap.unmet_slots.total"
	metricSuggestionsTotal = "figmap.slotmap.suggestions.total"
)

// MappingMetrics holds OTel instruments for classification and slot-mapping
// metrics.
type MappingMetrics struct {
	componentsTotal  metric.Int64Counter
	classifyDuration metric.Float64Histogram
	unmetSlots       metric.Int64Counter
	suggestions      metric.Int64Counter
}

// ComponentStats holds the outcome of analyzing one component, decoupled from
// the report types.
type ComponentStats struct {
	Archetype   string
	Accepted    bool
	Duration    time.Duration
	UnmetSlots  int
	Suggestions int
}

// NewMappingMetrics creates mapping metric instruments from the given meter.
func NewMappingMetrics(mt metric.Meter) (*MappingMetrics, error) {
	components, err := mt.Int64Counter(metricComponentsTotal,
		metric.WithDescription("Total design nodes classified, by archetype and acceptance"),
		metric.WithUnit("{component}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricComponentsTotal, err)
	}

	classifyDur, err := mt.Float64Histogram(metricClassifyDuration,
		metric.WithDescription("Per-component classify+map duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricClassifyDuration, err)
	}

	unmet, err := mt.Int64Counter(metricUnmetSlotsTotal,
		metric.WithDescription("Required slots the mapper could not bind"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricUnmetSlotsTotal, err)
	}

	suggest, err := mt.Int64Counter(metricSuggestionsTotal,
		metric.WithDescription("Low-confidence slot bindings flagged for review"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSuggestionsTotal, err)
	}

	return &MappingMetrics{
		componentsTotal:  components,
		classifyDuration: classifyDur,
		unmetSlots:       unmet,
		suggestions:      suggest,
	}, nil
}

// RecordComponent records the metrics for one analyzed component.
// Safe to call on a nil receiver (no-op).
func (mm *MappingMetrics) RecordComponent(ctx context.Context, stats ComponentStats) {
	if mm == nil {
		return
	}

	archetypeAttrs := metric.WithAttributes(
		attribute.String(attrArchetype, stats.Archetype),
		attribute.Bool(attrAccepted, stats.Accepted),
	)

	mm.componentsTotal.Add(ctx, 1, archetypeAttrs)
	mm.classifyDuration.Record(ctx, stats.Duration.Seconds())

	slotAttrs := metric.WithAttributes(attribute.String(attrArchetype, stats.Archetype))
	mm.unmetSlots.Add(ctx, int64(stats.UnmetSlots), slotAttrs)
	mm.suggestions.Add(ctx, int64(stats.Suggestions), slotAttrs)
}
