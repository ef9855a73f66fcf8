package ghs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mema5/DistributedMSTComputation/ghs"
	"github.com/Mema5/DistributedMSTComputation/refmst"
	"github.com/Mema5/DistributedMSTComputation/topology"
)

// checkEndInvariants asserts the quantified end-of-run invariants:
//
//  1. every adopted edge is incident to both endpoints and Branch on at
//     least one side;
//  2. the edge set has exactly N-1 entries;
//  3. its total weight matches the Kruskal reference;
//  4. every node ended with no outstanding probe and no outstanding reports;
//  5. no channel ended Basic while its far side ended Branch.
func checkEndInvariants(t *testing.T, topo *topology.Topology, res ghs.Result) {
	t.Helper()
	n := topo.NodeCount()

	// 2. Exactly N-1 edges.
	require.Len(t, res.Edges, n-1)

	// 1. Incidence and at-least-one-side Branch.
	for _, e := range res.Edges {
		w, exists := topo.Weight(e.U, e.V)
		require.True(t, exists, "adopted edge {%d,%d} not in topology", e.U, e.V)
		assert.Equal(t, w, e.Weight)

		su := res.Nodes[e.U].Channels[e.V]
		sv := res.Nodes[e.V].Channels[e.U]
		assert.True(t, su == ghs.Branch || sv == ghs.Branch,
			"edge {%d,%d} adopted but Branch on neither side", e.U, e.V)
	}

	// 3. Weight equals the centralized reference (unique MST).
	refEdges, refTotal, err := refmst.Kruskal(topo)
	require.NoError(t, err)
	assert.Equal(t, refEdges, res.Edges)
	assert.Equal(t, refTotal, res.TotalWeight)

	// 4. Quiescent node state.
	for _, snap := range res.Nodes {
		assert.Equal(t, ghs.None, snap.TestEdge, "node %d test edge", snap.ID)
		assert.Equal(t, 0, snap.FindCount, "node %d find count", snap.ID)
	}

	// 5. Basic-vs-Branch asymmetry is forbidden.
	for _, snap := range res.Nodes {
		for v, s := range snap.Channels {
			if s != ghs.Basic {
				continue
			}
			assert.NotEqual(t, ghs.Branch, res.Nodes[v].Channels[snap.ID],
				"edge {%d,%d}: Basic here, Branch there", snap.ID, v)
		}
	}
}

// TestRun_Linear4 is seed scenario 1: path 0—1—2—3, weights 1,2,3.
// The MST is all three edges, weight 6, Branch from both sides.
func TestRun_Linear4(t *testing.T) {
	topo, err := topology.Linear(4)
	require.NoError(t, err)

	res, err := ghs.Run(topo)
	require.NoError(t, err)

	assert.Equal(t, []topology.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
	}, res.Edges)
	assert.Equal(t, int64(6), res.TotalWeight)

	// On a path every edge is Branch from both endpoints.
	for _, e := range res.Edges {
		assert.Equal(t, ghs.Branch, res.Nodes[e.U].Channels[e.V])
		assert.Equal(t, ghs.Branch, res.Nodes[e.V].Channels[e.U])
	}
	checkEndInvariants(t, topo, res)
}

// TestRun_K4Lex is seed scenario 2: K₄ with lexicographic weights.
// MST: the three edges at node 0, weight 6.
func TestRun_K4Lex(t *testing.T) {
	topo, err := topology.Complete(4)
	require.NoError(t, err)

	res, err := ghs.Run(topo)
	require.NoError(t, err)

	assert.Equal(t, []topology.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 2},
		{U: 0, V: 3, Weight: 3},
	}, res.Edges)
	assert.Equal(t, int64(6), res.TotalWeight)
	checkEndInvariants(t, topo, res)
}

// TestRun_K4Reversed is seed scenario 3: K₄ with the weight order reversed.
// MST flips to the edges at node 3, weight 4+2+1 = 7.
func TestRun_K4Reversed(t *testing.T) {
	topo := topology.New(4)
	require.NoError(t, topo.AddEdge(0, 1, 6))
	require.NoError(t, topo.AddEdge(0, 2, 5))
	require.NoError(t, topo.AddEdge(0, 3, 4))
	require.NoError(t, topo.AddEdge(1, 2, 3))
	require.NoError(t, topo.AddEdge(1, 3, 2))
	require.NoError(t, topo.AddEdge(2, 3, 1))

	res, err := ghs.Run(topo)
	require.NoError(t, err)

	assert.Equal(t, []topology.Edge{
		{U: 0, V: 3, Weight: 4},
		{U: 1, V: 3, Weight: 2},
		{U: 2, V: 3, Weight: 1},
	}, res.Edges)
	assert.Equal(t, int64(7), res.TotalWeight)
	checkEndInvariants(t, topo, res)
}

// TestRun_Grid3x3 is seed scenario 4: a 3×3 grid, unit weights perturbed by
// index (all distinct). 8 MST edges, total equal to the Kruskal reference.
func TestRun_Grid3x3(t *testing.T) {
	topo := topology.New(9)
	w := int64(0)
	for i := 0; i < 9; i++ {
		if i%3+1 < 3 {
			w++
			require.NoError(t, topo.AddEdge(i, i+1, w*10+int64(i)))
		}
		if i+3 < 9 {
			w++
			require.NoError(t, topo.AddEdge(i, i+3, w*10+int64(i)))
		}
	}
	require.Equal(t, 12, topo.EdgeCount())
	require.NoError(t, topo.Validate())

	res, err := ghs.Run(topo)
	require.NoError(t, err)

	assert.Len(t, res.Edges, 8)
	checkEndInvariants(t, topo, res)
}

// TestRun_TwoNodePath is seed scenario 5: a single edge of weight 42.
// Both sides adopt it at wakeup; halt comes from the first +∞ report
// exchange. Both nodes end FOUND with bestWt = +∞.
func TestRun_TwoNodePath(t *testing.T) {
	topo := topology.New(2)
	require.NoError(t, topo.AddEdge(0, 1, 42))

	res, err := ghs.Run(topo)
	require.NoError(t, err)

	assert.Equal(t, []topology.Edge{{U: 0, V: 1, Weight: 42}}, res.Edges)
	assert.Equal(t, int64(42), res.TotalWeight)
	for _, snap := range res.Nodes {
		assert.Equal(t, ghs.StateFound, snap.State)
		assert.Equal(t, ghs.Infinity, snap.BestWt)
		assert.Equal(t, int64(42), snap.Fragment)
	}
	checkEndInvariants(t, topo, res)
}

// TestRun_Star is seed scenario 6: K₁,₅ centered at 0, spoke weights 10..14.
// All spokes are MST edges. The only equal-level merge happens across the
// cheapest spoke (weight 10): every later spoke joins by absorption, which
// never renames the fragment, so all six nodes agree on name 10.
func TestRun_Star(t *testing.T) {
	topo := topology.New(6)
	for i := 1; i <= 5; i++ {
		require.NoError(t, topo.AddEdge(0, i, int64(9+i)))
	}

	res, err := ghs.Run(topo)
	require.NoError(t, err)

	require.Len(t, res.Edges, 5)
	assert.Equal(t, int64(10+11+12+13+14), res.TotalWeight)

	for _, snap := range res.Nodes {
		assert.Equal(t, int64(10), snap.Fragment, "node %d fragment name", snap.ID)
	}
	checkEndInvariants(t, topo, res)
}

// TestRun_SingleNode is the N=1 boundary: empty MST, immediate termination.
func TestRun_SingleNode(t *testing.T) {
	res, err := ghs.Run(topology.New(1))
	require.NoError(t, err)

	assert.Empty(t, res.Edges)
	assert.Zero(t, res.TotalWeight)
	require.Len(t, res.Nodes, 1)
}

// TestRun_RejectsInvalid verifies the core refuses malformed input.
func TestRun_RejectsInvalid(t *testing.T) {
	// Nil topology.
	_, err := ghs.Run(nil)
	assert.ErrorIs(t, err, ghs.ErrNilTopology)

	// Disconnected two-subgraph input: rejected before any node starts.
	topo := topology.New(4)
	require.NoError(t, topo.AddEdge(0, 1, 1))
	require.NoError(t, topo.AddEdge(2, 3, 2))
	_, err = ghs.Run(topo)
	assert.ErrorIs(t, err, topology.ErrDisconnected)

	// Duplicate weights.
	topo = topology.New(3)
	require.NoError(t, topo.AddEdge(0, 1, 5))
	require.NoError(t, topo.AddEdge(1, 2, 5))
	_, err = ghs.Run(topo)
	assert.ErrorIs(t, err, topology.ErrDuplicateWeight)
}

// TestRun_Deterministic is the first round-trip law: two runs over the same
// topology produce the same MST even though interleavings differ.
func TestRun_Deterministic(t *testing.T) {
	topo, err := topology.Random(24, 0.3, topology.WithSeed(99))
	require.NoError(t, err)

	first, err := ghs.Run(topo)
	require.NoError(t, err)
	second, err := ghs.Run(topo)
	require.NoError(t, err)

	assert.Equal(t, first.Edges, second.Edges)
	assert.Equal(t, first.TotalWeight, second.TotalWeight)
}

// TestRun_RelabelInvariance is the second round-trip law: permuting node
// identifiers without touching weights yields the same MST under relabeling.
func TestRun_RelabelInvariance(t *testing.T) {
	base, err := topology.Random(12, 0.4, topology.WithSeed(7))
	require.NoError(t, err)

	// Relabel i → (i+5) mod 12.
	perm := func(i int) int { return (i + 5) % 12 }
	relabeled := topology.New(12)
	for _, e := range base.Edges() {
		require.NoError(t, relabeled.AddEdge(perm(e.U), perm(e.V), e.Weight))
	}

	resBase, err := ghs.Run(base)
	require.NoError(t, err)
	resRel, err := ghs.Run(relabeled)
	require.NoError(t, err)

	// Map the base MST through the permutation and compare as sets.
	expect := make(map[[2]int]int64)
	for _, e := range resBase.Edges {
		u, v := perm(e.U), perm(e.V)
		if u > v {
			u, v = v, u
		}
		expect[[2]int{u, v}] = e.Weight
	}
	got := make(map[[2]int]int64)
	for _, e := range resRel.Edges {
		got[[2]int{e.U, e.V}] = e.Weight
	}
	assert.Equal(t, expect, got)
}

// TestRun_MatchesKruskal_Property runs random connected topologies across a
// spread of sizes and densities and compares against the reference.
func TestRun_MatchesKruskal_Property(t *testing.T) {
	sizes := []int{2, 3, 5, 8, 13, 21, 34}
	probs := []float64{0.0, 0.2, 0.5, 0.9}
	for _, n := range sizes {
		for _, p := range probs {
			n, p := n, p
			t.Run(fmt.Sprintf("n=%d/p=%g", n, p), func(t *testing.T) {
				topo, err := topology.Random(n, p, topology.WithSeed(int64(n*100)+int64(p*10)))
				require.NoError(t, err)

				res, err := ghs.Run(topo)
				require.NoError(t, err)
				checkEndInvariants(t, topo, res)
			})
		}
	}
}

// TestRun_NamedTopologies sweeps every generator through the full pipeline.
func TestRun_NamedTopologies(t *testing.T) {
	cases := []struct {
		name string
		topo func() (*topology.Topology, error)
	}{
		{"linear-16", func() (*topology.Topology, error) { return topology.Linear(16) }},
		{"complete-9", func() (*topology.Topology, error) { return topology.Complete(9) }},
		{"grid-16", func() (*topology.Topology, error) { return topology.Grid(16, topology.WithSeed(4)) }},
		{"grid-11", func() (*topology.Topology, error) { return topology.Grid(11, topology.WithSeed(6)) }},
		{"star-10", func() (*topology.Topology, error) { return topology.Star(10) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topo, err := tc.topo()
			require.NoError(t, err)

			res, err := ghs.Run(topo)
			require.NoError(t, err)
			checkEndInvariants(t, topo, res)
		})
	}
}

// TestRun_SinkReceivesResult verifies the sink fires exactly once with the
// final set.
func TestRun_SinkReceivesResult(t *testing.T) {
	topo, err := topology.Linear(5)
	require.NoError(t, err)

	var calls int
	var sunk []topology.Edge
	var sunkTotal int64
	res, err := ghs.Run(topo, ghs.WithSink(func(edges []topology.Edge, total int64) {
		calls++
		sunk = edges
		sunkTotal = total
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, res.Edges, sunk)
	assert.Equal(t, res.TotalWeight, sunkTotal)
}
