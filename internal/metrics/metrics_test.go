package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/internal/metrics"
)

// TestObserve counts rows on success and errors on failure.
func TestObserve(t *testing.T) {
	m := metrics.New(zerolog.Nop())

	m.Observe(metrics.StepUnroll, time.Now(), 6, nil)
	m.Observe(metrics.StepUnroll, time.Now(), 2, nil)
	m.Observe(metrics.StepThreshold, time.Now(), 0, errors.New("boom"))

	assert.Equal(t, 8.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues(metrics.StepUnroll)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepErrorsTotal.WithLabelValues(metrics.StepThreshold)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StepErrorsTotal.WithLabelValues(metrics.StepUnroll)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.StepSeconds))
}

// TestRegistry exposes every collector through Gather.
func TestRegistry(t *testing.T) {
	m := metrics.New(zerolog.Nop())
	m.RunsTotal.Inc()
	m.Observe(metrics.StepBuild, time.Now(), 3, nil)
	m.Observe(metrics.StepToll, time.Now(), 0, errors.New("cancelled"))

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"tollnet_pipeline_runs_total",
		"tollnet_step_errors_total",
		"tollnet_step_duration_seconds",
		"tollnet_records_total",
	}, names)
}
