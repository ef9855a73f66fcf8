// Package topology core types: Topology, Edge and their accessors.
//
// A Topology is mutable while being assembled (AddEdge) and is treated as
// immutable once handed to the GHS core. Accessors return copies; callers
// cannot reach the internal maps.
package topology

import (
	"fmt"
	"sort"
)

// Edge is an undirected weighted edge. U < V always holds for edges returned
// by this package; AddEdge normalizes endpoint order.
type Edge struct {
	// U is the smaller endpoint index.
	U int

	// V is the larger endpoint index.
	V int

	// Weight is the strictly positive edge weight.
	Weight int64
}

// pair is the normalized map key for an unordered edge {u,v}.
type pair struct {
	u, v int
}

// mkPair normalizes (a,b) so that u < v.
func mkPair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{u: a, v: b}
}

// Topology is a weighted undirected graph over nodes 0..N-1.
type Topology struct {
	n       int
	weights map[pair]int64
}

// New returns an empty Topology over n nodes. n may be any positive value;
// generators and Validate enforce their own minima.
// Complexity: O(1).
func New(n int) *Topology {
	return &Topology{
		n:       n,
		weights: make(map[pair]int64),
	}
}

// NodeCount reports N.
func (t *Topology) NodeCount() int { return t.n }

// EdgeCount reports the number of undirected edges.
func (t *Topology) EdgeCount() int { return len(t.weights) }

// AddEdge inserts the undirected edge {u,v} with weight w.
//
// Structural defects are rejected immediately:
//   - endpoints outside [0,N)      → ErrNodeRange
//   - u == v                       → ErrSelfLoop
//   - w ≤ 0                        → ErrBadWeight
//   - {u,v} already present        → ErrDuplicateEdge
//
// Weight distinctness and connectivity are whole-graph properties and are
// checked by Validate, not here.
// Complexity: O(1).
func (t *Topology) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, t.n, ErrNodeRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if w <= 0 {
		return fmt.Errorf("AddEdge(%d,%d): w=%d: %w", u, v, w, ErrBadWeight)
	}
	key := mkPair(u, v)
	if _, dup := t.weights[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}
	t.weights[key] = w

	return nil
}

// Weight reports the weight of {u,v} and whether the edge exists.
// Complexity: O(1).
func (t *Topology) Weight(u, v int) (int64, bool) {
	w, ok := t.weights[mkPair(u, v)]

	return w, ok
}

// Neighbors returns the weighted neighbor map of node i: neighbor → weight.
// This is exactly the per-node view the GHS core is initialized with.
// The returned map is a copy.
// Complexity: O(E).
func (t *Topology) Neighbors(i int) map[int]int64 {
	out := make(map[int]int64)
	for key, w := range t.weights {
		switch i {
		case key.u:
			out[key.v] = w
		case key.v:
			out[key.u] = w
		}
	}

	return out
}

// Edges returns all edges sorted by (U,V). The slice is a fresh copy.
// Complexity: O(E log E).
func (t *Topology) Edges() []Edge {
	out := make([]Edge, 0, len(t.weights))
	for key, w := range t.weights {
		out = append(out, Edge{U: key.u, V: key.v, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// TotalWeight sums all edge weights.
// Complexity: O(E).
func (t *Topology) TotalWeight() int64 {
	var total int64
	for _, w := range t.weights {
		total += w
	}

	return total
}
