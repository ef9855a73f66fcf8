// SPDX-License-Identifier: MIT
// Package: distmst/topology
//
// generators.go — the named topologies offered by the driver.
//
// Canonical layouts:
//   • Linear(n)    — path 0—1—…—(n-1); edge {i,i+1} has weight i+1.
//   • Complete(n)  — K_n; weights follow lexicographic edge order 1..C(n,2).
//   • Grid(n)      — ⌈√n⌉ columns, row-major, 4-neighborhood over the first
//                    n cells; random distinct weights from the seeded RNG.
//   • Star(n)      — K_{1,n-1} centered at 0; spoke to node i has weight i.
//   • Random(n,p)  — connected Erdős–Rényi-like graph: chain backbone plus
//                    each remaining pair with probability p; weights are a
//                    random permutation of 1..E.
//
// Contract:
//   • Emit vertices/edges in a stable, documented order.
//   • Weights are distinct by construction (GHS precondition).
//   • Return only sentinel errors; never panic at runtime.

package topology

import (
	"fmt"
	"math"
)

// File-local constants: method tags and minima (no magic literals).
const (
	methodLinear   = "Linear"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodStar     = "Star"
	methodRandom   = "Random"

	minLinearNodes   = 2
	minCompleteNodes = 2
	minGridNodes     = 2
	minStarNodes     = 2
	minRandomNodes   = 2

	// weightSpread widens the random weight range so rejection sampling
	// terminates quickly: range = weightSpread × E.
	weightSpread = 1000
)

// Linear builds the path topology P_n. Edge {i,i+1} carries weight i+1,
// so weights ascend along the path: 1, 2, …, n-1.
// Complexity: O(n).
func Linear(n int) (*Topology, error) {
	if n < minLinearNodes {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLinear, n, minLinearNodes, ErrTooFewNodes)
	}
	t := New(n)
	for i := 0; i+1 < n; i++ {
		if err := t.AddEdge(i, i+1, int64(i+1)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLinear, err)
		}
	}

	return t, nil
}

// Complete builds K_n with weights assigned in lexicographic edge order:
// {0,1}:1, {0,2}:2, …, {0,n-1}, {1,2}, … up to C(n,2).
// Complexity: O(n²).
func Complete(n int) (*Topology, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}
	t := New(n)
	var w int64
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			w++
			if err := t.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}

	return t, nil
}

// Grid builds a 4-neighborhood grid over n nodes laid out row-major in
// ⌈√n⌉ columns. Node i sits at (i/side, i%side); edges run to the right
// and bottom neighbors that exist among the first n cells. Weights are
// random and distinct, drawn from the generator RNG (WithSeed).
// Complexity: O(n) vertices + O(n) edges.
func Grid(n int, opts ...Option) (*Topology, error) {
	if n < minGridNodes {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodGrid, n, minGridNodes, ErrTooFewNodes)
	}
	cfg := newGenConfig(opts...)
	side := int(math.Ceil(math.Sqrt(float64(n))))

	t := New(n)
	// Collect edges first (stable order: per cell, right then bottom), then
	// weight them in one pass so distinctness is a single concern.
	type link struct{ u, v int }
	var links []link
	for i := 0; i < n; i++ {
		c := i % side
		if c+1 < side && i+1 < n {
			links = append(links, link{u: i, v: i + 1})
		}
		if below := i + side; below < n {
			links = append(links, link{u: i, v: below})
		}
	}
	weights := distinctWeights(cfg, len(links))
	for k, l := range links {
		if err := t.AddEdge(l.u, l.v, weights[k]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGrid, err)
		}
	}

	return t, nil
}

// Star builds K_{1,n-1}: node 0 is the center, spokes to 1..n-1 with
// ascending weights 1..n-1.
// Complexity: O(n).
func Star(n int) (*Topology, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}
	t := New(n)
	for i := 1; i < n; i++ {
		if err := t.AddEdge(0, i, int64(i)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
	}

	return t, nil
}

// Random builds a connected random graph: a chain backbone 0—1—…—(n-1)
// guarantees connectivity, then every remaining pair is added with
// probability p. Weights are a random permutation of 1..E, hence distinct.
// Deterministic for a fixed seed.
// Complexity: O(n²) pair draws.
func Random(n int, p float64, opts ...Option) (*Topology, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRandom, n, minRandomNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g (must be in [0,1]): %w", methodRandom, p, ErrBadProbability)
	}
	cfg := newGenConfig(opts...)

	type link struct{ u, v int }
	var links []link
	// 1. Chain backbone for guaranteed connectivity.
	for i := 0; i+1 < n; i++ {
		links = append(links, link{u: i, v: i + 1})
	}
	// 2. Remaining pairs with probability p (skip chain pairs v == u+1).
	for u := 0; u < n; u++ {
		for v := u + 2; v < n; v++ {
			if cfg.rng.Float64() < p {
				links = append(links, link{u: u, v: v})
			}
		}
	}
	// 3. Random permutation of 1..E as weights: distinct by construction.
	perm := cfg.rng.Perm(len(links))
	t := New(n)
	for k, l := range links {
		if err := t.AddEdge(l.u, l.v, int64(perm[k]+1)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, err)
		}
	}

	return t, nil
}

// distinctWeights draws count pairwise-distinct weights from [1, spread·count]
// by rejection sampling. The range keeps the expected number of redraws below
// count/spread, so termination is immediate in practice.
func distinctWeights(cfg genConfig, count int) []int64 {
	out := make([]int64, 0, count)
	seen := make(map[int64]struct{}, count)
	limit := int64(weightSpread) * int64(count)
	if limit < 1 {
		limit = 1
	}
	for len(out) < count {
		w := cfg.rng.Int63n(limit) + 1
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out
}
