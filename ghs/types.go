// Package ghs node-local enumerations and sentinels: channel status,
// node state, and the None/Infinity markers.
package ghs

import (
	"fmt"
	"math"
)

// None marks an absent edge reference (no test edge, no best edge, no
// in-branch before the first Initiate). Neighbor identifiers are ≥ 0.
const None = -1

// Infinity is the best-weight sentinel meaning "no outgoing edge known".
// Real weights are strictly positive and far below it.
const Infinity = int64(math.MaxInt64)

// ChannelStatus classifies a node's view of one incident edge.
//
// Legal transitions: Basic→Branch and Basic→Reject only. A classified
// channel never reverts, and Reject→Branch is forbidden; setStatus enforces
// this and treats a violation as an implementation bug.
type ChannelStatus uint8

const (
	// Basic - not yet classified.
	Basic ChannelStatus = iota

	// Branch - known to be in the MST.
	Branch

	// Reject - known to lead inside the node's own fragment.
	Reject
)

// String names the status for traces and state dumps.
func (s ChannelStatus) String() string {
	switch s {
	case Basic:
		return "BASIC"
	case Branch:
		return "BRANCH"
	case Reject:
		return "REJECT"
	default:
		return fmt.Sprintf("ChannelStatus(%d)", uint8(s))
	}
}

// NodeState is a node's computation state.
type NodeState uint8

const (
	// StateSleeping - initial, before local wakeup.
	StateSleeping NodeState = iota

	// StateFind - participating in a find-minimum-outgoing-edge wave.
	StateFind

	// StateFound - not currently participating in a find wave.
	StateFound
)

// String names the state for traces and state dumps.
func (s NodeState) String() string {
	switch s {
	case StateSleeping:
		return "SLEEPING"
	case StateFind:
		return "FIND"
	case StateFound:
		return "FOUND"
	default:
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
}
