package netlist

import "fmt"

// Placeholder spacing for the initial one-axis placement.
const nodeSpacing = 160.0

// BuildGraph derives the node/edge projection for a validated netlist.
//
// One node per component, in input order. For each net the first
// connection is the head; one edge links it to every remaining (tail)
// connection, so a net with N connections yields N-1 edges and a
// single-ended net yields none. Edge ids are "<netId>-<tailIndex>" with a
// zero-based tail index, stable and collision-free within a net.
//
// The builder performs no validation itself: it trusts the violation
// list's locations and anything unmatched simply marks nothing.
func BuildGraph(n *Netlist, violations []Violation) Graph {
	invalid := make(map[Location]bool, len(violations))
	for _, v := range violations {
		if !v.Location.IsZero() {
			invalid[v.Location] = true
		}
	}

	nodes := make([]Node, 0, len(n.Components))
	for i, c := range n.Components {
		nodes = append(nodes, Node{
			ID:        c.ID,
			Label:     c.Name,
			Pins:      c.Pins,
			IsInvalid: invalid[ComponentLocation(c.ID)],
			Position:  Position{X: float64(i) * nodeSpacing},
		})
	}

	edges := make([]Edge, 0)
	for _, net := range n.Nets {
		if len(net.Connections) < 2 {
			continue
		}
		head := net.Connections[0]
		bad := invalid[NetLocation(net.ID)]
		for tail, conn := range net.Connections[1:] {
			edges = append(edges, Edge{
				ID:        fmt.Sprintf("%s-%d", net.ID, tail),
				Source:    head.ComponentID,
				Target:    conn.ComponentID,
				Label:     net.Name,
				IsInvalid: bad,
			})
		}
	}

	return Graph{Nodes: nodes, Edges: edges}
}
