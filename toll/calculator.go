// SPDX-License-Identifier: MIT

package toll

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tollnet/distance"
	"github.com/katalvlaran/tollnet/matrix"
)

// Calculator expands unrolled edges into per-window tolls.
// A Calculator is immutable after NewCalculator and safe for concurrent use.
type Calculator struct {
	rates     Rates
	precision int
	workers   int
	logger    zerolog.Logger

	// factors[k] is the discount factor of week window k.
	factors [WindowsPerWeek]float64
}

// NewCalculator builds a Calculator from options (see With* constructors).
// The schedule is resolved against the canonical week once, here.
func NewCalculator(opts ...Option) *Calculator {
	o := gatherOptions(opts...)
	c := &Calculator{
		rates:     o.rates,
		precision: o.precision,
		workers:   o.workers,
		logger:    o.logger,
	}
	for k, w := range week {
		c.factors[k] = o.schedule.Factor(w.StartDay, w.Start)
	}

	return c
}

// Rates returns the base rates in use.
func (c *Calculator) Rates() Rates { return c.rates }

// Calculate returns WindowsPerWeek records per input edge.
// Implementation:
//   - Stage 1: validate every distance (finite, non-negative).
//   - Stage 2: pre-size the output; split edges into contiguous chunks and
//     expand them on at most `workers` goroutines. Each chunk writes only its
//     own slots, so the result does not depend on scheduling.
//   - Stage 3: return everything or nothing.
//
// Behavior highlights:
//   - Output order: input edge order, each edge's windows Monday→Sunday.
//   - toll = distance × rate[class] × factor(window start), rounded only when
//     WithPrecision was given.
//
// Errors:
//   - ErrInvalidInput for a bad distance; ctx.Err() when cancelled.
//
// Complexity:
//   - Time O(E × 672 × classes), Space O(E × 672).
func (c *Calculator) Calculate(ctx context.Context, records []distance.Record) ([]Record, error) {
	for k, r := range records {
		if math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) || r.Distance < 0 {
			return nil, fmt.Errorf("Calculate: record %d (%d→%d) distance %v: %w",
				k, r.Start, r.End, r.Distance, ErrInvalidInput)
		}
	}
	if len(records) == 0 {
		return []Record{}, nil
	}

	started := time.Now()
	out := make([]Record, len(records)*WindowsPerWeek)

	workers := min(c.workers, len(records))
	chunk := (len(records) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(records); lo += chunk {
		lo := lo // per-iteration copy (go1.21 loop semantics)
		hi := min(lo+chunk, len(records))
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.expand(records[k], out[k*WindowsPerWeek:(k+1)*WindowsPerWeek])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Calculate: %w", err)
	}

	c.logger.Debug().
		Int("edges", len(records)).
		Int("records", len(out)).
		Int("workers", workers).
		Dur("elapsed", time.Since(started)).
		Msg("time-windowed tolls computed")

	return out, nil
}

// expand fills dst (len WindowsPerWeek) with the windows of one edge.
func (c *Calculator) expand(r distance.Record, dst []Record) {
	for k := range week {
		w, rec := &week[k], &dst[k]
		rec.Start, rec.End = r.Start, r.End
		rec.StartDay, rec.StartTime = w.StartDay, w.Start
		rec.EndDay, rec.EndTime = w.EndDay, w.End
		for v, rate := range c.rates {
			rec.Tolls[v] = c.round(r.Distance * rate * c.factors[k])
		}
	}
}

// round applies the configured precision; negative means none.
func (c *Calculator) round(v float64) float64 {
	if c.precision < 0 {
		return v
	}

	return matrix.RoundTo(v, c.precision)
}

// Calculate expands records with a default Calculator.
func Calculate(ctx context.Context, records []distance.Record, opts ...Option) ([]Record, error) {
	return NewCalculator(opts...).Calculate(ctx, records)
}
