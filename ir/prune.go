package ir

import (
	"fmt"

	"github.com/cipherstack/fhec/graph"
)

// Prune runs tree shaking and returns a new circuit containing exactly the
// transitive dependency closure of the keep set, with original edge roles
// preserved. Handles are renumbered; compare results with Equal, not by
// handle. An empty keep set yields an empty circuit. Passing a handle that
// is not in the graph is a fatal contract violation.
//
// Reachability is computed once for the whole graph via the transitive
// closure of the reversed DAG, so many keep nodes sharing sub-dependencies
// cost one precomputation plus O(1) set lookups, rather than a DFS per node.
func (c *Circuit) Prune(keep []graph.NodeID) *Circuit {
	// flip the edges so "depends on" becomes "reachable from"
	rev := c.Graph.Clone()
	rev.Reverse()

	order, err := rev.TopologicalSort()
	if err != nil {
		panic(fmt.Sprintf("fatal error: prune on cyclic graph: %v", err))
	}
	pos := make(map[graph.NodeID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	_, closure := graph.TransitiveReductionClosure(rev, order)

	closureSet := make(map[int]bool)
	var visit []int
	for _, n := range keep {
		p, ok := pos[n]
		if !ok {
			panic(fmt.Sprintf("fatal error: prune keep node %d is not in the graph", n))
		}
		visit = append(visit, p)
		closureSet[p] = true
	}

	for len(visit) > 0 {
		p := visit[len(visit)-1]
		visit = visit[:len(visit)-1]
		for _, q := range closure[p] {
			if !closureSet[q] {
				closureSet[q] = true
				visit = append(visit, q)
			}
		}
	}

	// filter the original graph down to the closure set
	pruned := New(c.Scheme)
	remap := make(map[graph.NodeID]graph.NodeID)
	for _, id := range c.Graph.NodeIDs() {
		if closureSet[pos[id]] {
			remap[id] = pruned.Graph.AddNode(*c.Graph.Node(id))
		}
	}
	for _, e := range c.Graph.Edges() {
		from, okFrom := remap[e.From]
		to, okTo := remap[e.To]
		if okFrom && okTo {
			pruned.Graph.AddEdge(from, to, e.Data)
		}
	}
	return pruned
}
