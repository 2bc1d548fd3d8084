package netlist_test

import (
	"testing"

	"netlist-visualizer-backend/internal/netlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_NodesFollowInputOrder(t *testing.T) {
	g := netlist.BuildGraph(cleanNetlist(), nil)

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "U1", g.Nodes[0].ID)
	assert.Equal(t, "MCU", g.Nodes[0].Label)
	assert.Len(t, g.Nodes[0].Pins, 3)
	assert.Equal(t, "J1", g.Nodes[1].ID)

	// Placeholder positions before layout: one axis, fixed spacing.
	assert.Equal(t, 0.0, g.Nodes[0].Position.X)
	assert.Equal(t, 160.0, g.Nodes[1].Position.X)
}

func TestBuildGraph_EdgesFanOutFromHead(t *testing.T) {
	n := cleanNetlist()
	n.Components = append(n.Components, netlist.Component{
		ID: "C1", Name: "Decoupling cap", Type: "capacitor",
		Pins: []netlist.Pin{{ID: "1", Name: "1"}, {ID: "2", Name: "2"}},
	})
	n.Nets[0].Connections = append(n.Nets[0].Connections, netlist.Connection{ComponentID: "C1", PinID: "2"})

	g := netlist.BuildGraph(n, nil)

	// N1 has 3 connections -> 2 edges, N2 has 2 -> 1 edge.
	require.Len(t, g.Edges, 3)

	assert.Equal(t, "N1-0", g.Edges[0].ID)
	assert.Equal(t, "U1", g.Edges[0].Source)
	assert.Equal(t, "J1", g.Edges[0].Target)
	assert.Equal(t, "GND", g.Edges[0].Label)

	assert.Equal(t, "N1-1", g.Edges[1].ID)
	assert.Equal(t, "U1", g.Edges[1].Source)
	assert.Equal(t, "C1", g.Edges[1].Target)

	assert.Equal(t, "N2-0", g.Edges[2].ID)
	assert.Equal(t, "U1", g.Edges[2].Source)
	assert.Equal(t, "J1", g.Edges[2].Target)
	assert.Equal(t, "UART_TX", g.Edges[2].Label)
}

func TestBuildGraph_SingleEndedNetYieldsNoEdges(t *testing.T) {
	n := cleanNetlist()
	n.Nets[1].Connections = n.Nets[1].Connections[:1]

	g := netlist.BuildGraph(n, nil)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "N1-0", g.Edges[0].ID)
}

func TestBuildGraph_MarksInvalidElements(t *testing.T) {
	n := cleanNetlist()
	violations := []netlist.Violation{
		{Rule: netlist.RuleBlankName, Message: "m", Location: netlist.ComponentLocation("U1")},
		{Rule: netlist.RuleDanglingConnection, Message: "m", Location: netlist.NetLocation("N2")},
		{Rule: netlist.RuleMissingGNDNet, Message: "board-wide, no location"},
	}

	g := netlist.BuildGraph(n, violations)

	assert.True(t, g.Nodes[0].IsInvalid)
	assert.False(t, g.Nodes[1].IsInvalid)

	require.Len(t, g.Edges, 2)
	assert.False(t, g.Edges[0].IsInvalid) // N1
	assert.True(t, g.Edges[1].IsInvalid)  // N2
}

func TestBuildGraph_UnmatchedLocationsMarkNothing(t *testing.T) {
	violations := []netlist.Violation{
		{Rule: netlist.RuleDuplicateComponentID, Message: "m", Location: netlist.ComponentLocation("U404")},
	}

	g := netlist.BuildGraph(cleanNetlist(), violations)
	for _, node := range g.Nodes {
		assert.False(t, node.IsInvalid)
	}
	for _, edge := range g.Edges {
		assert.False(t, edge.IsInvalid)
	}
}

func TestBuildGraph_EmptyEdgesSerializeAsArray(t *testing.T) {
	n := cleanNetlist()
	n.Nets[0].Connections = n.Nets[0].Connections[:1]
	n.Nets[1].Connections = n.Nets[1].Connections[:1]

	g := netlist.BuildGraph(n, nil)
	require.NotNil(t, g.Edges)
	assert.Empty(t, g.Edges)
}

func TestColumnLayout_WrapsRows(t *testing.T) {
	nodes := make([]netlist.Node, 5)
	for i := range nodes {
		nodes[i].ID = string(rune('A' + i))
	}
	g := netlist.Graph{Nodes: nodes, Edges: []netlist.Edge{}}

	laid := netlist.ColumnLayout{Columns: 2, SpacingX: 100, SpacingY: 50}.Apply(g)

	want := []netlist.Position{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 0, Y: 50},
		{X: 100, Y: 50},
		{X: 0, Y: 100},
	}
	for i, node := range laid.Nodes {
		assert.Equal(t, want[i], node.Position, "node %d", i)
	}
}

func TestColumnLayout_DoesNotMutateInput(t *testing.T) {
	g := netlist.BuildGraph(cleanNetlist(), nil)
	before := g.Nodes[1].Position

	_ = netlist.DefaultColumnLayout().Apply(g)
	assert.Equal(t, before, g.Nodes[1].Position)
}

func TestColumnLayout_ZeroValueDefaults(t *testing.T) {
	g := netlist.Graph{Nodes: make([]netlist.Node, 2)}
	laid := netlist.ColumnLayout{}.Apply(g)

	// A zero-value layout degrades to a single column with default spacing.
	assert.Equal(t, netlist.Position{X: 0, Y: 0}, laid.Nodes[0].Position)
	assert.Equal(t, netlist.Position{X: 0, Y: 120}, laid.Nodes[1].Position)
}

func TestColumnLayout_IsDeterministic(t *testing.T) {
	g := netlist.BuildGraph(cleanNetlist(), nil)
	layout := netlist.DefaultColumnLayout()

	first := layout.Apply(g)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, layout.Apply(g))
	}
}
