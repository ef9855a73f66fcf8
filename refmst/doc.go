// Package refmst provides centralized reference MST algorithms, Kruskal and
// Prim, over a topology.Topology.
//
// What & Why
//
//   - The distributed GHS core is verified against a classical single-process
//     computation: given distinct weights the MST is unique, so the edge sets
//     must match exactly, whatever message interleaving a run took.
//   - Kruskal: global edge sort plus union-find (path compression, union by
//     rank). Time O(E log E + α(V)·E), memory O(V + E).
//   - Prim: min-heap growth from a root vertex. Time O(V·E + E log E)
//     (neighbor lookup scans the edge map), memory O(V + E).
//
// Both return the MST edge slice sorted by (U,V), the total weight, and an
// error. Determinism is free here: weights are pairwise distinct by the
// topology contract, so no tie-breaking policy is ever exercised.
//
// Error Conditions:
//
//   - ErrNilTopology  : topology is nil.
//   - ErrBadRoot      : Prim root outside [0, N).
//   - ErrDisconnected : |V| == 0, or |V| > 1 and no spanning tree covers
//     all vertices.
package refmst
