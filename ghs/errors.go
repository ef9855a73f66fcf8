// Package ghs sentinel errors.
//
// The package surfaces errors only for malformed input to Run; everything
// after a successful start either completes or aborts on an implementation
// bug (see doc.go). Topology defects pass through wrapped, so errors.Is
// works against the topology sentinels as well.
package ghs

import "errors"

// ErrNilTopology indicates Run was handed a nil topology.
var ErrNilTopology = errors.New("ghs: nil topology")
