// Package refmst Prim's algorithm over a topology.Topology.
package refmst

import (
	"container/heap"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// candidate is a frontier edge on the heap: tree vertex u → outside vertex v.
type candidate struct {
	u, v   int
	weight int64
}

// candidateHeap is a min-heap of frontier edges ordered by weight.
type candidateHeap []candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// Prim computes the Minimum Spanning Tree of topo by growing outwards from
// root using a min-heap of frontier edges.
//
// Steps:
//  1. Validate: topo != nil; root within [0, N); |V| == 0 → ErrDisconnected;
//     |V| == 1 → trivial empty MST.
//  2. Mark root visited; push its incident edges.
//  3. Pop the cheapest frontier edge; skip if it re-enters the tree,
//     otherwise adopt it, mark the new vertex and push its edges.
//  4. Stop at |V|-1 edges; fewer when the heap drains → ErrDisconnected.
//
// Complexity: O(V·E + E log E) time (each absorbed vertex scans the edge map
// via topo.Neighbors), O(V + E) memory.
func Prim(topo *topology.Topology, root int) ([]topology.Edge, int64, error) {
	if topo == nil {
		return nil, 0, ErrNilTopology
	}
	numVerts := topo.NodeCount()
	if numVerts == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= numVerts {
		return nil, 0, ErrBadRoot
	}
	if numVerts == 1 {
		return []topology.Edge{}, 0, nil
	}

	visited := make([]bool, numVerts)
	pq := &candidateHeap{}
	heap.Init(pq)

	// absorb marks u visited and pushes its frontier edges.
	absorb := func(u int) {
		visited[u] = true
		for v, w := range topo.Neighbors(u) {
			if !visited[v] {
				heap.Push(pq, candidate{u: u, v: v, weight: w})
			}
		}
	}
	absorb(root)

	var (
		mst   []topology.Edge
		total int64
	)
	for pq.Len() > 0 && len(mst) < numVerts-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.v] {
			// Both endpoints already in the tree; the edge would close a cycle.
			continue
		}
		u, v := c.u, c.v
		if u > v {
			u, v = v, u
		}
		mst = append(mst, topology.Edge{U: u, V: v, Weight: c.weight})
		total += c.weight
		absorb(c.v)
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	sortEdges(mst)

	return mst, total, nil
}
