// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/tollnet/matrix"
)

// Build constructs the symmetric distance matrix of a sparse edge list.
// Implementation:
//   - Stage 1: validate every edge (finite, non-negative distance).
//   - Stage 2: collect the id universe (both roles), sort ascending.
//   - Stage 3: allocate n×n zeros; write each edge to (s,e) and (e,s) in
//     input order, so a later edge for the same unordered pair wins.
//   - Stage 4: force the diagonal to 0, dropping self-loop distances.
//
// Behavior highlights:
//   - Only direct edges are recorded; pairs without an edge stay 0. No
//     shortest-path relaxation is performed.
//   - All-or-nothing: an invalid edge anywhere returns no matrix.
//
// Errors:
//   - ErrInvalidInput for an empty edge list or a bad distance.
//
// Complexity:
//   - Time O(E + V log V + V²), Space O(V²).
func Build(edges []Edge, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if len(edges) == 0 {
		return nil, distanceErrorf("Build: no edges", ErrInvalidInput)
	}
	for k, e := range edges {
		if math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0) || e.Distance < 0 {
			return nil, distanceErrorf(
				fmt.Sprintf("Build: edge %d (%d→%d) distance %v", k, e.Start, e.End, e.Distance),
				ErrInvalidInput,
			)
		}
	}

	ids := collectIDs(edges)
	n := len(ids)
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, distanceErrorf("Build", err)
	}
	m := newLabeled(ids, dense)

	var i, j int
	for _, e := range edges {
		i, j = m.index[e.Start], m.index[e.End]
		if err = dense.Set(i, j, e.Distance); err != nil {
			return nil, distanceErrorf("Build", err)
		}
		if err = dense.Set(j, i, e.Distance); err != nil {
			return nil, distanceErrorf("Build", err)
		}
	}
	for i = 0; i < n; i++ {
		_ = dense.Set(i, i, 0) // in range by construction
	}

	o.logger.Debug().
		Int("edges", len(edges)).
		Int("ids", n).
		Msg("distance matrix built")

	return m, nil
}

// collectIDs returns the ascending, de-duplicated set of ids used by edges.
func collectIDs(edges []Edge) []ID {
	seen := make(map[ID]struct{}, 2*len(edges))
	ids := make([]ID, 0, 2*len(edges))
	for _, e := range edges {
		for _, id := range [2]ID{e.Start, e.End} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	return ids
}
