// Package graph provides a directed multigraph with stable node and edge
// handles, plus the DAG algorithms the IR layer is built on: topological
// sorting, transitive reduction/closure, and isomorphism matching.
//
// Handles stay valid across insertions and across removal of other nodes.
// Removed slots are never reused, so a stale handle can be detected with
// Contains instead of silently aliasing a new node.
package graph

import "fmt"

// NodeID is a stable handle to a node. It is an index into the node table
// and carries no ownership semantics.
type NodeID int

// EdgeID is a stable handle to an edge.
type EdgeID int

// InvalidNode is returned by operations that did not produce a node.
const InvalidNode NodeID = -1

// Direction selects which end of an edge a query walks from.
type Direction int

const (
	// Outgoing walks producer -> consumer edges.
	Outgoing Direction = iota
	// Incoming walks consumer -> producer edges.
	Incoming
)

type node[N any] struct {
	data    N
	present bool
	// incident edge ids, in insertion order
	out []EdgeID
	in  []EdgeID
}

type edge[E any] struct {
	data     E
	from, to NodeID
	present  bool
}

// Graph is a directed multigraph with payloads of type N on nodes and E on
// edges. The zero value is not usable; call New.
type Graph[N, E any] struct {
	nodes []node[N]
	edges []edge[E]

	nbNodes int
	nbEdges int
}

// EdgeRef describes one edge when iterating.
type EdgeRef[E any] struct {
	ID   EdgeID
	From NodeID
	To   NodeID
	Data E
}

// New creates an empty graph.
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

// NodeCount returns the number of live nodes.
func (g *Graph[N, E]) NodeCount() int {
	return g.nbNodes
}

// EdgeCount returns the number of live edges.
func (g *Graph[N, E]) EdgeCount() int {
	return g.nbEdges
}

// AddNode inserts a node and returns its handle.
func (g *Graph[N, E]) AddNode(data N) NodeID {
	g.nodes = append(g.nodes, node[N]{data: data, present: true})
	g.nbNodes++
	return NodeID(len(g.nodes) - 1)
}

// Contains reports whether id refers to a live node.
func (g *Graph[N, E]) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id].present
}

// Node returns a pointer to the payload of a live node. The pointer stays
// valid until the node is removed. Panics on a dead or out-of-range handle.
func (g *Graph[N, E]) Node(id NodeID) *N {
	if !g.Contains(id) {
		panic(fmt.Sprintf("fatal error: no such node %d", id))
	}
	return &g.nodes[id].data
}

// AddEdge inserts an edge from -> to and returns its handle. Parallel edges
// are allowed. Panics if either endpoint is dead.
func (g *Graph[N, E]) AddEdge(from, to NodeID, data E) EdgeID {
	if !g.Contains(from) || !g.Contains(to) {
		panic(fmt.Sprintf("fatal error: edge endpoints %d -> %d not in graph", from, to))
	}
	g.edges = append(g.edges, edge[E]{data: data, from: from, to: to, present: true})
	id := EdgeID(len(g.edges) - 1)
	g.nodes[from].out = append(g.nodes[from].out, id)
	g.nodes[to].in = append(g.nodes[to].in, id)
	g.nbEdges++
	return id
}

// UpdateEdge sets the payload of the from -> to edge, inserting it if absent.
// With parallel edges present the first live one is updated.
func (g *Graph[N, E]) UpdateEdge(from, to NodeID, data E) EdgeID {
	if id, ok := g.FindEdge(from, to); ok {
		g.edges[id].data = data
		return id
	}
	return g.AddEdge(from, to, data)
}

// FindEdge returns the handle of the first live from -> to edge.
func (g *Graph[N, E]) FindEdge(from, to NodeID) (EdgeID, bool) {
	if !g.Contains(from) {
		return 0, false
	}
	for _, id := range g.nodes[from].out {
		if g.edges[id].present && g.edges[id].to == to {
			return id, true
		}
	}
	return 0, false
}

// Edge returns the description of a live edge.
func (g *Graph[N, E]) Edge(id EdgeID) EdgeRef[E] {
	if id < 0 || int(id) >= len(g.edges) || !g.edges[id].present {
		panic(fmt.Sprintf("fatal error: no such edge %d", id))
	}
	e := g.edges[id]
	return EdgeRef[E]{ID: id, From: e.from, To: e.to, Data: e.data}
}

// RemoveEdge deletes an edge. Other handles are unaffected.
func (g *Graph[N, E]) RemoveEdge(id EdgeID) {
	if id < 0 || int(id) >= len(g.edges) || !g.edges[id].present {
		panic(fmt.Sprintf("fatal error: no such edge %d", id))
	}
	e := &g.edges[id]
	e.present = false
	g.nodes[e.from].out = removeID(g.nodes[e.from].out, id)
	g.nodes[e.to].in = removeID(g.nodes[e.to].in, id)
	g.nbEdges--
}

// RemoveNode deletes a node and all incident edges. Handles of other nodes
// are unaffected; the slot is never reused.
func (g *Graph[N, E]) RemoveNode(id NodeID) {
	if !g.Contains(id) {
		panic(fmt.Sprintf("fatal error: no such node %d", id))
	}
	n := &g.nodes[id]
	for len(n.out) > 0 {
		g.RemoveEdge(n.out[len(n.out)-1])
	}
	for len(n.in) > 0 {
		g.RemoveEdge(n.in[len(n.in)-1])
	}
	n.present = false
	var zero N
	n.data = zero
	g.nbNodes--
}

// NodeIDs returns the handles of all live nodes in table order.
func (g *Graph[N, E]) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, g.nbNodes)
	for i := range g.nodes {
		if g.nodes[i].present {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// Edges returns all live edges in table order.
func (g *Graph[N, E]) Edges() []EdgeRef[E] {
	refs := make([]EdgeRef[E], 0, g.nbEdges)
	for i := range g.edges {
		if g.edges[i].present {
			e := g.edges[i]
			refs = append(refs, EdgeRef[E]{ID: EdgeID(i), From: e.from, To: e.to, Data: e.data})
		}
	}
	return refs
}

// NeighborsDirected returns the neighbors of id along dir, one entry per
// edge. A dead handle yields nil.
func (g *Graph[N, E]) NeighborsDirected(id NodeID, dir Direction) []NodeID {
	if !g.Contains(id) {
		return nil
	}
	var incident []EdgeID
	if dir == Outgoing {
		incident = g.nodes[id].out
	} else {
		incident = g.nodes[id].in
	}
	out := make([]NodeID, 0, len(incident))
	for _, eid := range incident {
		if dir == Outgoing {
			out = append(out, g.edges[eid].to)
		} else {
			out = append(out, g.edges[eid].from)
		}
	}
	return out
}

// EdgesDirected returns the edges incident to id along dir.
func (g *Graph[N, E]) EdgesDirected(id NodeID, dir Direction) []EdgeRef[E] {
	if !g.Contains(id) {
		return nil
	}
	var incident []EdgeID
	if dir == Outgoing {
		incident = g.nodes[id].out
	} else {
		incident = g.nodes[id].in
	}
	out := make([]EdgeRef[E], 0, len(incident))
	for _, eid := range incident {
		e := g.edges[eid]
		out = append(out, EdgeRef[E]{ID: eid, From: e.from, To: e.to, Data: e.data})
	}
	return out
}

// Clone returns a deep copy sharing no state with g. Payloads are copied by
// value.
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	c := &Graph[N, E]{
		nodes:   make([]node[N], len(g.nodes)),
		edges:   make([]edge[E], len(g.edges)),
		nbNodes: g.nbNodes,
		nbEdges: g.nbEdges,
	}
	for i, n := range g.nodes {
		c.nodes[i] = node[N]{
			data:    n.data,
			present: n.present,
			out:     append([]EdgeID(nil), n.out...),
			in:      append([]EdgeID(nil), n.in...),
		}
	}
	copy(c.edges, g.edges)
	return c
}

// Reverse flips the direction of every edge in place.
func (g *Graph[N, E]) Reverse() {
	for i := range g.edges {
		e := &g.edges[i]
		e.from, e.to = e.to, e.from
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		n.out, n.in = n.in, n.out
	}
}

func removeID(s []EdgeID, id EdgeID) []EdgeID {
	for i, x := range s {
		if x == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
