package mathutil //nolint:testpackage // testing internal implementation.

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, Clamp01(-0.5), 1e-9)
	assert.InDelta(t, 0.0, Clamp01(0), 1e-9)
	assert.InDelta(t, 0.42, Clamp01(0.42), 1e-9)
	assert.InDelta(t, 1.0, Clamp01(1), 1e-9)
	assert.InDelta(t, 1.0, Clamp01(1.7), 1e-9)
}
