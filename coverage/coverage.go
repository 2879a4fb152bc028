// SPDX-License-Identifier: MIT

package coverage

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/tollnet/toll"
)

// ErrInvalidInterval indicates an unparsable day name or time of day.
var ErrInvalidInterval = errors.New("coverage: invalid interval")

const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerWeek = 7 * secondsPerDay
)

// Interval is one row of the time-windowed dataset, in its textual form:
// days are English weekday names, times are HH:MM:SS.
type Interval struct {
	ID        int64
	ID2       int64
	StartDay  string
	StartTime string
	EndDay    string
	EndTime   string
}

// Pair identifies the series an interval belongs to.
type Pair struct {
	ID  int64
	ID2 int64
}

// Result reports completeness for one pair.
type Result struct {
	Pair     Pair
	Complete bool
}

// span is a half-open second range [from, to) on the week timeline.
type span struct{ from, to int }

// dayOffset maps lower-case weekday names to their offset from Monday.
var dayOffset = func() map[string]int {
	m := make(map[string]int, len(toll.WeekOrder))
	for i, d := range toll.WeekOrder {
		m[strings.ToLower(d.String())] = i * secondsPerDay
	}
	return m
}()

// Check reports, per (ID, ID2) pair sorted ascending, whether the pair's
// intervals cover the full week. An interval whose end precedes its start
// wraps around Sunday→Monday.
// Errors: ErrInvalidInterval on the first unparsable row; no partial result.
// Complexity: O(N log N).
func Check(intervals []Interval) ([]Result, error) {
	spans := make(map[Pair][]span)
	for k, iv := range intervals {
		from, err := weekSecond(iv.StartDay, iv.StartTime)
		if err != nil {
			return nil, fmt.Errorf("Check: row %d start: %w", k, err)
		}
		to, err := weekSecond(iv.EndDay, iv.EndTime)
		if err != nil {
			return nil, fmt.Errorf("Check: row %d end: %w", k, err)
		}
		p := Pair{ID: iv.ID, ID2: iv.ID2}
		to++ // inclusive end second
		if to > from {
			spans[p] = append(spans[p], span{from, to})
		} else {
			spans[p] = append(spans[p], span{from, secondsPerWeek}, span{0, to})
		}
	}

	out := make([]Result, 0, len(spans))
	for p, s := range spans {
		out = append(out, Result{Pair: p, Complete: covers(s)})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Pair.ID != out[b].Pair.ID {
			return out[a].Pair.ID < out[b].Pair.ID
		}
		return out[a].Pair.ID2 < out[b].Pair.ID2
	})

	return out, nil
}

// CheckMap is Check keyed by pair.
func CheckMap(intervals []Interval) (map[Pair]bool, error) {
	res, err := Check(intervals)
	if err != nil {
		return nil, err
	}
	out := make(map[Pair]bool, len(res))
	for _, r := range res {
		out[r.Pair] = r.Complete
	}

	return out, nil
}

// covers sweeps the spans in start order and reports whether they leave
// no gap on [0, secondsPerWeek).
func covers(s []span) bool {
	sort.Slice(s, func(a, b int) bool { return s[a].from < s[b].from })
	reach := 0
	for _, sp := range s {
		if sp.from > reach {
			return false
		}
		reach = max(reach, sp.to)
	}

	return reach >= secondsPerWeek
}

// weekSecond converts ("Tuesday", "10:15:00") to seconds since Monday 00:00:00.
func weekSecond(day, clock string) (int, error) {
	off, ok := dayOffset[strings.ToLower(strings.TrimSpace(day))]
	if !ok {
		return 0, fmt.Errorf("day %q: %w", day, ErrInvalidInterval)
	}
	c, err := toll.ParseClock(clock)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrInvalidInterval)
	}

	return off + int(c), nil
}
