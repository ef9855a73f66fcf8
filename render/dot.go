// Package render Graphviz DOT emission.
package render

import (
	"fmt"
	"strings"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// DOT renders topo as an undirected Graphviz graph. Edges present in mst are
// drawn bold and colored; every edge is labeled with its weight.
// Complexity: O(E log E) (sorted emission).
func DOT(topo *topology.Topology, mst []topology.Edge) string {
	inMST := edgeSet(mst)

	var b strings.Builder
	b.WriteString("graph mst {\n")
	b.WriteString("  node [shape=circle];\n")
	for _, e := range topo.Edges() {
		if _, ok := inMST[[2]int{e.U, e.V}]; ok {
			fmt.Fprintf(&b, "  n%d -- n%d [label=\"%d\", color=firebrick, penwidth=2.0];\n",
				e.U, e.V, e.Weight)
			continue
		}
		fmt.Fprintf(&b, "  n%d -- n%d [label=\"%d\", color=gray];\n", e.U, e.V, e.Weight)
	}
	b.WriteString("}\n")

	return b.String()
}

// edgeSet indexes mst by normalized unordered pair.
func edgeSet(mst []topology.Edge) map[[2]int]struct{} {
	out := make(map[[2]int]struct{}, len(mst))
	for _, e := range mst {
		u, v := e.U, e.V
		if u > v {
			u, v = v, u
		}
		out[[2]int{u, v}] = struct{}{}
	}

	return out
}
