// SPDX-License-Identifier: MIT
// Package: distmst/topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`; sentinels themselves stay bare.
//   • Generators never panic at runtime; invalid parameters surface as errors.

package topology

import "errors"

// ErrTooFewNodes indicates a generator was asked for fewer nodes than its
// layout supports (e.g. Linear needs n ≥ 2, Star needs n ≥ 2).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("topology: too few nodes")

// ErrNodeRange indicates an edge endpoint outside the valid range [0, N).
var ErrNodeRange = errors.New("topology: node index out of range")

// ErrSelfLoop indicates an edge whose endpoints coincide. Spanning trees
// cannot contain loops, and the GHS channel model has no place for them.
var ErrSelfLoop = errors.New("topology: self-loop not allowed")

// ErrBadWeight indicates a non-positive edge weight.
var ErrBadWeight = errors.New("topology: edge weight must be positive")

// ErrDuplicateEdge indicates a second AddEdge for the same unordered pair.
var ErrDuplicateEdge = errors.New("topology: duplicate edge")

// ErrDuplicateWeight indicates two edges carry the same weight. GHS relies
// on globally distinct weights for MST uniqueness; ties are out of scope.
var ErrDuplicateWeight = errors.New("topology: duplicate edge weight")

// ErrDisconnected indicates the edge set does not span all N nodes.
// The distributed algorithm would never terminate on such input.
var ErrDisconnected = errors.New("topology: graph is disconnected")

// ErrBadProbability indicates a probability outside the closed interval [0,1].
var ErrBadProbability = errors.New("topology: probability out of range")
