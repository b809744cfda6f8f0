package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/figmap-dev/figmap/pkg/observability"
)

func setupMappingMeter(t *testing.T) (*observability.MappingMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mm, err := observability.NewMappingMetrics(mp.Meter("test"))
	require.NoError(t, err)

	return mm, reader
}

func TestMappingMetrics_RecordComponent(t *testing.T) {
	t.Parallel()

	mm, reader := setupMappingMeter(t)
	ctx := context.Background()

	mm.RecordComponent(ctx, observability.ComponentStats{
		Archetype:   "DropdownMenu",
		Accepted:    true,
		Duration:    5 * time.Millisecond,
		UnmetSlots:  1,
		Suggestions: 2,
	})

	rm := collectMetrics(t, reader)

	assert.NotNil(t, findMetric(rm, "figmap.classify.components.total"))
	assert.NotNil(t, findMetric(rm, "figmap.classify.duration.seconds"))
	assert.NotNil(t, findMetric(rm, "figmap.slotmap.unmet_slots.total"))
	assert.NotNil(t, findMetric(rm, "figmap.slotmap.suggestions.total"))
}

func TestMappingMetrics_NilReceiverIsNoop(t *testing.T) {
	t.Parallel()

	var mm *observability.MappingMetrics

	// Must not panic.
	mm.RecordComponent(context.Background(), observability.ComponentStats{Archetype: "Button"})
}
