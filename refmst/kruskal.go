// Package refmst Kruskal's algorithm over a topology.Topology.
package refmst

import (
	"sort"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// Kruskal computes the Minimum Spanning Tree of topo using a disjoint-set
// (union-find) structure with path compression and union by rank.
//
// Steps:
//  1. Validate: topo != nil; |V| ≥ 1 (|V| == 0 → ErrDisconnected).
//     |V| == 1 → trivial empty MST, weight 0.
//  2. Collect edges and sort ascending by weight (weights are distinct, so
//     the order is total and no tie-break is needed).
//  3. Initialize union-find over vertex indices.
//  4. Sweep sorted edges; an edge joining two components enters the MST.
//  5. Stop at |V|-1 edges; fewer after the sweep → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(topo *topology.Topology) ([]topology.Edge, int64, error) {
	if topo == nil {
		return nil, 0, ErrNilTopology
	}
	numVerts := topo.NodeCount()
	if numVerts == 0 {
		return nil, 0, ErrDisconnected
	}
	if numVerts == 1 {
		return []topology.Edge{}, 0, nil
	}

	// 2. Sorted edge sweep order.
	edges := topo.Edges()
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Union-find over 0..numVerts-1.
	parent := make([]int, numVerts)
	rank := make([]int, numVerts)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 4. Sweep.
	var (
		mst   []topology.Edge
		total int64
	)
	for _, e := range edges {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	// 5. A short MST proves disconnection.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	sortEdges(mst)

	return mst, total, nil
}

// sortEdges orders by (U,V) so results are comparable across algorithms.
func sortEdges(edges []topology.Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
}
