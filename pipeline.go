// SPDX-License-Identifier: MIT

package tollnet

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/tollnet/config"
	"github.com/katalvlaran/tollnet/distance"
	"github.com/katalvlaran/tollnet/internal/logging"
	"github.com/katalvlaran/tollnet/internal/metrics"
	"github.com/katalvlaran/tollnet/toll"
)

// Report is the output of one Pipeline run.
type Report struct {
	Matrix    *distance.Matrix
	Records   []distance.Record
	Neighbors []distance.ID
	Tolls     []toll.Record
}

// Pipeline runs Build → Unroll → {FindWithinThreshold, Calculate} with one
// configuration. It holds no per-run state.
type Pipeline struct {
	distanceOpts []distance.Option
	calculator   *toll.Calculator
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

// NewPipeline validates cfg and prepares the components. Logs go to w.
func NewPipeline(cfg *config.Config, w io.Writer) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := logging.New(cfg.Logging, w)

	dOpts, err := cfg.DistanceOptions()
	if err != nil {
		return nil, fmt.Errorf("NewPipeline: %w", err)
	}
	tOpts, err := cfg.TollOptions()
	if err != nil {
		return nil, fmt.Errorf("NewPipeline: %w", err)
	}

	return &Pipeline{
		distanceOpts: append(dOpts, distance.WithLogger(logger)),
		calculator:   toll.NewCalculator(append(tOpts, toll.WithLogger(logger))...),
		logger:       logger,
		metrics:      metrics.New(logger),
	}, nil
}

// Registry returns the Prometheus registry with the pipeline's step
// counters and latency histograms.
func (p *Pipeline) Registry() *prometheus.Registry { return p.metrics.Registry() }

// Run executes the pipeline for edges and the reference id.
// Any failing step aborts the run; no partial report is returned.
func (p *Pipeline) Run(ctx context.Context, edges []distance.Edge, reference distance.ID) (*Report, error) {
	p.metrics.RunsTotal.Inc()

	started := time.Now()
	m, err := distance.Build(edges, p.distanceOpts...)
	if err != nil {
		p.metrics.Observe(metrics.StepBuild, started, 0, err)
		return nil, err
	}
	p.metrics.Observe(metrics.StepBuild, started, m.Len(), nil)

	started = time.Now()
	records, err := distance.Unroll(m, p.distanceOpts...)
	p.metrics.Observe(metrics.StepUnroll, started, len(records), err)
	if err != nil {
		return nil, err
	}

	started = time.Now()
	neighbors, err := distance.FindWithinThreshold(records, reference, p.distanceOpts...)
	p.metrics.Observe(metrics.StepThreshold, started, len(neighbors), err)
	if err != nil {
		return nil, err
	}

	started = time.Now()
	tolls, err := p.calculator.Calculate(ctx, records)
	p.metrics.Observe(metrics.StepToll, started, len(tolls), err)
	if err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("ids", m.Len()).
		Int("records", len(records)).
		Int("neighbors", len(neighbors)).
		Int("tolls", len(tolls)).
		Msg("pipeline finished")

	return &Report{Matrix: m, Records: records, Neighbors: neighbors, Tolls: tolls}, nil
}
