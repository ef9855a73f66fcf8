package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// TestValidate_OK accepts a well-formed connected topology.
func TestValidate_OK(t *testing.T) {
	topo := topology.New(3)
	require.NoError(t, topo.AddEdge(0, 1, 1))
	require.NoError(t, topo.AddEdge(1, 2, 2))

	assert.NoError(t, topo.Validate())
}

// TestValidate_SingleNode accepts the trivial one-node, zero-edge topology.
func TestValidate_SingleNode(t *testing.T) {
	assert.NoError(t, topology.New(1).Validate())
}

// TestValidate_NoNodes rejects an empty node set.
func TestValidate_NoNodes(t *testing.T) {
	assert.ErrorIs(t, topology.New(0).Validate(), topology.ErrTooFewNodes)
}

// TestValidate_DuplicateWeight rejects weight collisions across edges.
func TestValidate_DuplicateWeight(t *testing.T) {
	topo := topology.New(3)
	require.NoError(t, topo.AddEdge(0, 1, 7))
	require.NoError(t, topo.AddEdge(1, 2, 7))

	assert.ErrorIs(t, topo.Validate(), topology.ErrDuplicateWeight)
}

// TestValidate_Disconnected rejects a two-component input.
func TestValidate_Disconnected(t *testing.T) {
	topo := topology.New(4)
	require.NoError(t, topo.AddEdge(0, 1, 1))
	require.NoError(t, topo.AddEdge(2, 3, 2))

	assert.ErrorIs(t, topo.Validate(), topology.ErrDisconnected)
}

// TestValidate_AggregatesDefects verifies every defect class is reported in
// one pass: duplicate weights AND disconnection surface together.
func TestValidate_AggregatesDefects(t *testing.T) {
	topo := topology.New(4)
	require.NoError(t, topo.AddEdge(0, 1, 5))
	require.NoError(t, topo.AddEdge(2, 3, 5)) // duplicate weight + second component

	err := topo.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrDuplicateWeight)
	assert.ErrorIs(t, err, topology.ErrDisconnected)
}
