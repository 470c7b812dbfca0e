package ir

import "github.com/cipherstack/fhec/graph"

// Stats summarizes a circuit for logging and for the parameter search
// downstream, which keys off the multiplication structure.
type Stats struct {
	NbNodes int
	NbEdges int

	NbInputs            int
	NbLiterals          int
	NbAdds              int
	NbSubs              int
	NbMultiplications   int
	NbNegations         int
	NbRelinearizations  int
	NbShifts            int
	NbOutputs           int
	MultiplicativeDepth int
}

// GetStats counts nodes per operation kind and computes the multiplicative
// depth (maximum number of multiplies on any input-to-output path).
func (c *Circuit) GetStats() Stats {
	r := Stats{
		NbNodes: c.Graph.NodeCount(),
		NbEdges: c.Graph.EdgeCount(),
	}

	for _, id := range c.Graph.NodeIDs() {
		switch c.Graph.Node(id).Operation.Kind {
		case OpInputCiphertext:
			r.NbInputs++
		case OpLiteral:
			r.NbLiterals++
		case OpAdd:
			r.NbAdds++
		case OpSub:
			r.NbSubs++
		case OpMultiply:
			r.NbMultiplications++
		case OpNegate:
			r.NbNegations++
		case OpRelinearize:
			r.NbRelinearizations++
		case OpShiftLeft, OpShiftRight:
			r.NbShifts++
		case OpOutputCiphertext:
			r.NbOutputs++
		}
	}

	order, err := c.Graph.TopologicalSort()
	if err != nil {
		// depth is undefined on a cyclic graph; Validate reports the cycle
		return r
	}
	depth := make(map[graph.NodeID]int, len(order))
	for _, id := range order {
		d := 0
		for _, m := range c.Graph.NeighborsDirected(id, graph.Incoming) {
			if depth[m] > d {
				d = depth[m]
			}
		}
		if c.Graph.Node(id).Operation.Kind == OpMultiply {
			d++
		}
		depth[id] = d
		if d > r.MultiplicativeDepth {
			r.MultiplicativeDepth = d
		}
	}
	return r
}
