package graph

import (
	"errors"
	"sort"
)

// ErrCycle is returned by TopologicalSort when the graph is not a DAG.
var ErrCycle = errors.New("graph contains a cycle")

// TopologicalSort returns the live nodes in an order where every edge goes
// from an earlier node to a later one. The order among independent nodes
// follows the node table.
func (g *Graph[N, E]) TopologicalSort() ([]NodeID, error) {
	indegree := make(map[NodeID]int, g.nbNodes)
	var queue []NodeID
	for _, id := range g.NodeIDs() {
		d := len(g.NeighborsDirected(id, Incoming))
		indegree[id] = d
		if d == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]NodeID, 0, g.nbNodes)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, m := range g.NeighborsDirected(n, Outgoing) {
			indegree[m]--
			if indegree[m] == 0 {
				queue = append(queue, m)
			}
		}
	}
	if len(order) != g.nbNodes {
		return nil, ErrCycle
	}
	return order, nil
}

// TransitiveReductionClosure computes the transitive reduction and transitive
// closure of a DAG in one pass. order must be a topological order of g (as
// returned by TopologicalSort); nodes are addressed by their position in it.
// reduction[i] and closure[i] list successor positions of the node at
// position i.
//
// Computing the full closure up front makes each later reachability check an
// O(1) set lookup, which pays off when many queries share sub-dependencies.
func TransitiveReductionClosure[N, E any](g *Graph[N, E], order []NodeID) (reduction, closure [][]int) {
	n := len(order)
	pos := make(map[NodeID]int, n)
	for i, id := range order {
		pos[id] = i
	}

	reduction = make([][]int, n)
	closure = make([][]int, n)
	reach := make([][]bool, n)

	// process in reverse topological order so closures of successors are
	// already complete
	for i := n - 1; i >= 0; i-- {
		reach[i] = make([]bool, n)

		succ := []int{}
		for _, m := range g.NeighborsDirected(order[i], Outgoing) {
			succ = append(succ, pos[m])
		}
		sort.Ints(succ)

		for _, v := range succ {
			if reach[i][v] {
				continue
			}
			reduction[i] = append(reduction[i], v)
			reach[i][v] = true
			closure[i] = append(closure[i], v)
			for _, w := range closure[v] {
				if !reach[i][w] {
					reach[i][w] = true
					closure[i] = append(closure[i], w)
				}
			}
		}
	}
	return reduction, closure
}
