// SPDX-License-Identifier: MIT
// Package: distmst/topology
//
// validate.go — whole-graph validation run by the driver before any node starts.
//
// Contract:
//   • Validate never mutates the Topology.
//   • Every defect found is reported; validation does not stop at the first
//     failure (hashicorp/go-multierror aggregation).
//   • Each appended error wraps its sentinel, so errors.Is(err, ErrX) works
//     on the aggregate.
//
// Complexity: O(E α(V)) for connectivity (union-find), O(E) for weight checks.

package topology

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the whole-graph preconditions of the distributed MST core:
//
//  1. N ≥ 1 (ErrTooFewNodes).
//  2. All edge weights pairwise distinct (ErrDuplicateWeight, one report per
//     edge whose weight an earlier-seen edge already carries).
//  3. The graph spans all N nodes (ErrDisconnected). N == 1 with no edges is
//     trivially connected.
//
// Structural per-edge defects (range, loops, non-positive weights) cannot
// exist here because AddEdge rejects them at insertion time.
//
// The returned error is nil when the topology is well-formed, otherwise a
// multierror aggregating every defect.
func (t *Topology) Validate() error {
	var result *multierror.Error

	// 1. Node count.
	if t.n < 1 {
		result = multierror.Append(result,
			fmt.Errorf("Validate: n=%d (must be ≥ 1): %w", t.n, ErrTooFewNodes))

		// Nothing below is meaningful without nodes.
		return result.ErrorOrNil()
	}

	// 2. Globally distinct weights. seen maps weight → first edge carrying it.
	seen := make(map[int64]pair, len(t.weights))
	for key, w := range t.weights {
		if first, dup := seen[w]; dup {
			result = multierror.Append(result,
				fmt.Errorf("Validate: weight %d on {%d,%d} and {%d,%d}: %w",
					w, first.u, first.v, key.u, key.v, ErrDuplicateWeight))
			continue
		}
		seen[w] = key
	}

	// 3. Connectivity via union-find with path compression + union by rank.
	parent := make([]int, t.n)
	rank := make([]int, t.n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}
	for key := range t.weights {
		union(key.u, key.v)
	}
	root := find(0)
	for i := 1; i < t.n; i++ {
		if find(i) != root {
			result = multierror.Append(result,
				fmt.Errorf("Validate: node %d unreachable from node 0: %w", i, ErrDisconnected))

			// One unreachable node proves disconnection; do not list them all.
			break
		}
	}

	return result.ErrorOrNil()
}
