// Package ghs collector: the single passive observer of the run.
package ghs

import (
	"sort"
	"sync"

	"go.uber.org/atomic"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// Sink receives the final MST edge set when the collector halts.
type Sink func(edges []topology.Edge, total int64)

// Collector accumulates edge-adopted notifications from all nodes and the
// halt notification from the terminating root.
//
// EdgeAdopted is idempotent over the unordered pair: during a merge both
// endpoints may legitimately announce the same edge (the connecting side at
// wakeup or change-root, the absorbing side on Connect), and the second
// announcement must be a no-op.
//
// Halt may also fire twice: the two roots of the final core edge each see a
// +∞ report and both take the halt branch when scheduling allows. A CAS on
// the active flag lets only the first caller publish.
type Collector struct {
	mu     sync.Mutex
	edges  map[[2]int]int64
	active *atomic.Bool
	halted chan struct{}
	sink   Sink
	tracer Tracer
}

func newCollector(sink Sink, tracer Tracer) *Collector {
	return &Collector{
		edges:  make(map[[2]int]int64),
		active: atomic.NewBool(true),
		halted: make(chan struct{}),
		sink:   sink,
		tracer: tracer,
	}
}

// EdgeAdopted records the undirected edge {u,v} with weight w as part of the
// MST. Safe for concurrent use by all nodes; duplicate announcements of the
// same pair are ignored.
func (c *Collector) EdgeAdopted(u, v int, w int64) {
	if u > v {
		u, v = v, u
	}
	key := [2]int{u, v}

	c.mu.Lock()
	_, dup := c.edges[key]
	if !dup {
		c.edges[key] = w
	}
	c.mu.Unlock()

	if !dup {
		c.tracer.Adopted(u, v, w)
	}
}

// Halt marks the collector inactive and publishes the MST snapshot to the
// sink. Only the first caller publishes; later calls are no-ops.
func (c *Collector) Halt(node int) {
	if !c.active.CompareAndSwap(true, false) {
		return
	}
	c.tracer.Halted(node)
	edges, total := c.snapshot()
	if c.sink != nil {
		c.sink(edges, total)
	}
	close(c.halted)
}

// Done is closed once Halt has published.
func (c *Collector) Done() <-chan struct{} { return c.halted }

// Edges returns the adopted edge set sorted by (U,V), with its total weight.
func (c *Collector) Edges() ([]topology.Edge, int64) {
	return c.snapshot()
}

func (c *Collector) snapshot() ([]topology.Edge, int64) {
	c.mu.Lock()
	out := make([]topology.Edge, 0, len(c.edges))
	var total int64
	for key, w := range c.edges {
		out = append(out, topology.Edge{U: key[0], V: key[1], Weight: w})
		total += w
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out, total
}
