package netlist

// Layouter assigns final positions to a derived graph. Implementations
// must be pure: same graph in, same positions out, no shared layout state
// between invocations. The automatic layout engine used by the frontend
// satisfies this interface; ColumnLayout is the server-side default.
type Layouter interface {
	Apply(g Graph) Graph
}

// ColumnLayout arranges nodes left to right, wrapping to a new row after
// Columns nodes. It never mutates its input.
type ColumnLayout struct {
	Columns  int
	SpacingX float64
	SpacingY float64
}

// DefaultColumnLayout matches the placeholder spacing of BuildGraph.
func DefaultColumnLayout() ColumnLayout {
	return ColumnLayout{Columns: 4, SpacingX: nodeSpacing, SpacingY: 120}
}

// Apply returns a copy of g with grid positions assigned in node order.
func (l ColumnLayout) Apply(g Graph) Graph {
	cols := l.Columns
	if cols <= 0 {
		cols = 1
	}
	sx := l.SpacingX
	if sx == 0 {
		sx = nodeSpacing
	}
	sy := l.SpacingY
	if sy == 0 {
		sy = 120
	}

	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	for i := range nodes {
		nodes[i].Position = Position{
			X: float64(i%cols) * sx,
			Y: float64(i/cols) * sy,
		}
	}
	return Graph{Nodes: nodes, Edges: g.Edges}
}
