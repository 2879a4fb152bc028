// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of a tollnet Pipeline.
// Collectors live on a private registry; exposing it is up to the caller.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Step names used as the "step" label.
const (
	StepBuild     = "build"
	StepUnroll    = "unroll"
	StepThreshold = "threshold"
	StepToll      = "toll"
)

// Metrics counts pipeline runs, per-step errors, latency and emitted rows.
type Metrics struct {
	reg *prometheus.Registry

	RunsTotal       prometheus.Counter
	StepErrorsTotal *prometheus.CounterVec
	StepSeconds     *prometheus.HistogramVec
	RecordsTotal    *prometheus.CounterVec
}

// New creates and registers the pipeline collectors on a fresh registry.
func New(logger zerolog.Logger) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tollnet", Name: "pipeline_runs_total", Help: "Pipeline runs started",
		}),
		StepErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tollnet", Name: "step_errors_total", Help: "Failed pipeline steps by step",
		}, []string{"step"}),
		StepSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tollnet", Name: "step_duration_seconds", Help: "Pipeline step latency",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"step"}),
		RecordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tollnet", Name: "records_total", Help: "Rows produced by step",
		}, []string{"step"}),
	}
	m.reg.MustRegister(m.RunsTotal, m.StepErrorsTotal, m.StepSeconds, m.RecordsTotal)
	logger.Debug().Msg("pipeline metrics initialized")

	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Observe records one finished step: its latency, its output size on
// success, or a failure.
func (m *Metrics) Observe(step string, started time.Time, rows int, err error) {
	m.StepSeconds.WithLabelValues(step).Observe(time.Since(started).Seconds())
	if err != nil {
		m.StepErrorsTotal.WithLabelValues(step).Inc()
		return
	}
	m.RecordsTotal.WithLabelValues(step).Add(float64(rows))
}
