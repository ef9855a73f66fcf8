// Package render plain-text summary emission.
package render

import (
	"fmt"
	"strings"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// ASCII renders a one-line-per-edge summary of topo; MST edges are marked
// with an asterisk and the MST total is appended.
// Complexity: O(E log E) (sorted emission).
func ASCII(topo *topology.Topology, mst []topology.Edge) string {
	inMST := edgeSet(mst)

	var b strings.Builder
	fmt.Fprintf(&b, "graph: %d nodes, %d edges\n", topo.NodeCount(), topo.EdgeCount())
	var total int64
	for _, e := range topo.Edges() {
		mark := " "
		if _, ok := inMST[[2]int{e.U, e.V}]; ok {
			mark = "*"
			total += e.Weight
		}
		fmt.Fprintf(&b, "  %s %d -- %d  w=%d\n", mark, e.U, e.V, e.Weight)
	}
	fmt.Fprintf(&b, "mst: %d edges, total weight %d\n", len(mst), total)

	return b.String()
}
