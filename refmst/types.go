// Package refmst sentinel errors.
package refmst

import "errors"

// ErrNilTopology indicates a nil topology was passed.
var ErrNilTopology = errors.New("refmst: nil topology")

// ErrBadRoot indicates the Prim root vertex is outside [0, N).
var ErrBadRoot = errors.New("refmst: root vertex out of range")

// ErrDisconnected indicates the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("refmst: graph is disconnected")
