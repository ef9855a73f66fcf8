// Package topology defines the weighted undirected input graphs consumed by
// the distributed MST core, together with validation and named generators.
//
// What:
//
//   - Topology holds N nodes (identified 0..N-1) and a map from the unordered
//     pair {u,v} to a strictly positive int64 weight.
//   - Validate checks every structural precondition the GHS core relies on
//     (connectivity, globally distinct weights, no self-loops, weights > 0)
//     and reports all defects at once.
//   - Generators build the named layouts offered by the driver: Linear,
//     Complete, Grid, Star and Random.
//
// Why:
//
//   - The GHS algorithm is only correct on connected graphs with pairwise
//     distinct positive weights; the core refuses to run on anything else,
//     so rejection happens here, before any node is started.
//   - Generators assign weights distinct-by-construction, which is why the
//     package owns weight assignment instead of accepting a weight function.
//
// Determinism:
//
//   - Edges() returns edges sorted by (U,V); two topologies built from the
//     same generator call are identical.
//   - Stochastic generators (Grid, Random) draw from a seeded RNG supplied
//     via WithSeed; the same seed always yields the same topology.
//
// Errors:
//
//   - ErrTooFewNodes     - node count below the generator's minimum.
//   - ErrNodeRange       - edge endpoint outside [0, N).
//   - ErrSelfLoop        - edge {v,v}.
//   - ErrBadWeight       - weight ≤ 0.
//   - ErrDuplicateEdge   - second weight for the same unordered pair.
//   - ErrDuplicateWeight - two edges share a weight.
//   - ErrDisconnected    - graph does not span all N nodes.
//   - ErrBadProbability  - Random called with p outside [0,1].
//
// Validate aggregates defects with hashicorp/go-multierror, so callers can
// both print the full report and branch on individual sentinels via errors.Is.
package topology
