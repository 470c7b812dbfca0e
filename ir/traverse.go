package ir

import "github.com/cipherstack/fhec/graph"

// GraphQuery is a read-only view over a circuit, handed to traversal
// callbacks in place of the circuit itself. Callbacks inspect the graph
// through it and express mutation declaratively via the returned
// TransformList, so the traversal engine keeps the only mutable reference.
// The view aliases the circuit being traversed and must not be retained
// past the callback invocation.
type GraphQuery struct {
	ir *Circuit
}

// NewGraphQuery creates a query view over a circuit.
func NewGraphQuery(c *Circuit) GraphQuery {
	return GraphQuery{ir: c}
}

// GetNode returns the NodeInfo of the node with handle x.
func (q GraphQuery) GetNode(x graph.NodeID) *NodeInfo {
	return q.ir.Graph.Node(x)
}

// NeighborsDirected returns the parents (Incoming) or children (Outgoing) of
// the node with handle x. Forward passes typically want children, reverse
// passes parents.
func (q GraphQuery) NeighborsDirected(x graph.NodeID, dir graph.Direction) []graph.NodeID {
	return q.ir.Graph.NeighborsDirected(x, dir)
}

// EdgesDirected returns the inbound or outbound edges of the node with
// handle x, with their operand roles.
func (q GraphQuery) EdgesDirected(x graph.NodeID, dir graph.Direction) []graph.EdgeRef[EdgeInfo] {
	return q.ir.Graph.EdgesDirected(x, dir)
}

// TraversalCallback is invoked once per visited node. It may return a
// transform list to edit the graph; the engine applies it before continuing.
// A nil result means no edits.
type TraversalCallback func(query GraphQuery, node graph.NodeID) *TransformList

// ForwardTraverse walks the circuit in dependency order (inputs first). It
// is a specialized topological traversal that tolerates the following
// mutations from the callback's transform list:
//   - deleting the current node
//   - inserting nodes that depend on already-visited nodes
//   - adding new nodes with no dependencies
//
// Other mutations may leave nodes unvisited. Every node present when it
// becomes ready is visited exactly once, after all of its dependencies; a
// node deleted before being reached is never visited. Nodes already visited
// are not revisited when their dependencies change.
func (c *Circuit) ForwardTraverse(callback TraversalCallback) {
	c.traverse(true, callback)
}

// ReverseTraverse walks the circuit in reverse dependency order (outputs
// first), with the same mutation tolerance as ForwardTraverse.
func (c *Circuit) ReverseTraverse(callback TraversalCallback) {
	c.traverse(false, callback)
}

func (c *Circuit) traverse(forward bool, callback TraversalCallback) {
	prevDirection := graph.Incoming
	nextDirection := graph.Outgoing
	if !forward {
		prevDirection, nextDirection = nextDirection, prevDirection
	}

	// ready doubles as an ever-enqueued set so nodes enter the stack once
	ready := make(map[graph.NodeID]bool)
	visited := make(map[graph.NodeID]bool)

	var readyNodes []graph.NodeID
	for _, id := range c.Graph.NodeIDs() {
		if len(c.Graph.NeighborsDirected(id, prevDirection)) == 0 {
			ready[id] = true
			readyNodes = append(readyNodes, id)
		}
	}

	nodeReady := func(id graph.NodeID) bool {
		for _, m := range c.Graph.NeighborsDirected(id, prevDirection) {
			if !visited[m] {
				return false
			}
		}
		return true
	}

	for len(readyNodes) > 0 {
		n := readyNodes[len(readyNodes)-1]
		readyNodes = readyNodes[:len(readyNodes)-1]

		// an earlier callback may have deleted an enqueued node
		if !c.Graph.Contains(n) {
			continue
		}
		visited[n] = true

		// snapshot the next nodes in case the callback deletes n
		nextNodes := append([]graph.NodeID(nil), c.Graph.NeighborsDirected(n, nextDirection)...)

		transforms := callback(GraphQuery{ir: c}, n)
		if transforms != nil {
			transforms.Apply(c)
		}

		// if n survived the edits, enqueue its now-ready dependents
		if c.Graph.Contains(n) {
			for _, i := range c.Graph.NeighborsDirected(n, nextDirection) {
				if !ready[i] && nodeReady(i) {
					ready[i] = true
					readyNodes = append(readyNodes, i)
				}
			}
		}

		// the pre-edit dependents may have become ready even if n is gone
		for _, i := range nextNodes {
			if c.Graph.Contains(i) && !ready[i] && nodeReady(i) {
				ready[i] = true
				readyNodes = append(readyNodes, i)
			}
		}

		// pick up any sources/sinks the callback introduced
		for _, i := range c.Graph.NodeIDs() {
			if !ready[i] && len(c.Graph.NeighborsDirected(i, prevDirection)) == 0 {
				ready[i] = true
				readyNodes = append(readyNodes, i)
			}
		}
	}
}
