// SPDX-License-Identifier: MIT
// Package: distmst/ghs
//
// run.go — orchestration of one full in-process execution.
//
// Contract:
//   • The topology is validated before any node exists; the core refuses to
//     run on malformed input.
//   • Every node and the collector are created before the first message
//     flows; delivery is the only synchronization between nodes.
//   • Run blocks until the collector halts, then tears every node down and
//     snapshots final states with all goroutines stopped (no data races on
//     the snapshot).

package ghs

import (
	"fmt"
	"sync"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// RunOption customizes one execution.
type RunOption func(*runConfig)

type runConfig struct {
	tracer Tracer
	sink   Sink
}

// WithTracer injects a tracing capability. Default: NopTracer.
func WithTracer(tr Tracer) RunOption {
	if tr == nil {
		panic("ghs: WithTracer(nil)")
	}

	return func(c *runConfig) { c.tracer = tr }
}

// WithSink registers a callback invoked once with the final MST when the
// collector halts. Default: none.
func WithSink(s Sink) RunOption {
	return func(c *runConfig) { c.sink = s }
}

// NodeSnapshot is a node's final state, taken after teardown.
type NodeSnapshot struct {
	ID        int
	State     NodeState
	Level     int
	Fragment  int64
	InBranch  int
	BestWt    int64
	TestEdge  int
	FindCount int
	Channels  map[int]ChannelStatus
}

// Result is the outcome of one run.
type Result struct {
	// Edges is the MST edge set, sorted by (U,V). Exactly N-1 entries.
	Edges []topology.Edge

	// TotalWeight is the sum of MST edge weights.
	TotalWeight int64

	// Nodes holds one final snapshot per node, indexed by node id.
	Nodes []NodeSnapshot
}

// Run executes the GHS algorithm on topo and returns the discovered MST.
//
// One goroutine is started per node; all of them are torn down before Run
// returns. The single-node topology terminates immediately with an empty
// edge set (there is no edge to wake across).
//
// Errors: topology validation failures, wrapped with context; branch with
// errors.Is against the topology sentinels.
func Run(topo *topology.Topology, opts ...RunOption) (Result, error) {
	if topo == nil {
		return Result{}, fmt.Errorf("Run: %w", ErrNilTopology)
	}
	if err := topo.Validate(); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}

	cfg := runConfig{tracer: NopTracer{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := topo.NodeCount()
	if n == 1 {
		// Driver special case: nothing to do, nothing to adopt.
		if cfg.sink != nil {
			cfg.sink(nil, 0)
		}

		return Result{Nodes: []NodeSnapshot{{
			ID: 0, State: StateSleeping, InBranch: None,
			BestWt: Infinity, TestEdge: None,
			Channels: map[int]ChannelStatus{},
		}}}, nil
	}

	// Assemble the world before the first message flows.
	done := make(chan struct{})
	fab := newFabric()
	coll := newCollector(cfg.sink, cfg.tracer)
	nodes := make([]*node, n)
	for i := 0; i < n; i++ {
		nodes[i] = newNode(i, topo.Neighbors(i), fab, coll, cfg.tracer, done)
		fab.attach(i, nodes[i].inbox)
	}

	// Start all nodes concurrently.
	var wg sync.WaitGroup
	wg.Add(n)
	for _, nd := range nodes {
		go func(nd *node) {
			defer wg.Done()
			nd.run()
		}(nd)
	}

	// Wait for the terminating root's halt, then stop every node loop.
	<-coll.Done()
	close(done)
	wg.Wait()

	edges, total := coll.Edges()
	result := Result{Edges: edges, TotalWeight: total, Nodes: make([]NodeSnapshot, n)}
	for i, nd := range nodes {
		result.Nodes[i] = snapshotNode(nd)
	}

	return result, nil
}

// snapshotNode copies a node's final state. Only called after wg.Wait().
func snapshotNode(n *node) NodeSnapshot {
	channels := make(map[int]ChannelStatus, len(n.status))
	for v, s := range n.status {
		channels[v] = s
	}

	return NodeSnapshot{
		ID:        n.id,
		State:     n.state,
		Level:     n.level,
		Fragment:  n.fragment,
		InBranch:  n.inBranch,
		BestWt:    n.bestWt,
		TestEdge:  n.testEdge,
		FindCount: n.findCount,
		Channels:  channels,
	}
}
