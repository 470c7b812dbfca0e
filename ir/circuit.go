// Package ir contains the intermediate representation for the compiler
// back-end: a circuit of homomorphic operations as a DAG, with a
// mutation-tolerant topological traversal engine, declarative transform
// batches for editing the graph mid-traversal, and tree shaking over the
// transitive dependency closure.
package ir

import (
	"fmt"
	"io"

	"github.com/cipherstack/fhec/graph"
)

// NodeInfo is the payload attached to every circuit graph node.
type NodeInfo struct {
	Operation Operation
}

// EdgeInfo tags a dependency edge with the operand role its producer plays
// for the consumer.
type EdgeInfo int

const (
	// LeftOperand marks the source node as the left input of a binary
	// operation.
	LeftOperand EdgeInfo = iota
	// RightOperand marks the source node as the right input of a binary
	// operation.
	RightOperand
	// UnaryOperand marks the source node as the single input of a unary
	// operation.
	UnaryOperand
)

func (e EdgeInfo) String() string {
	switch e {
	case LeftOperand:
		return "left"
	case RightOperand:
		return "right"
	case UnaryOperand:
		return "unary"
	}
	return "unknown"
}

// Circuit is the IR for an FHE program. Passes transform it with
// ForwardTraverse and ReverseTraverse, or walk Graph directly for analysis.
//
// The append builders take node handles that must refer to live nodes of
// this circuit; they are not validated, and passing a deleted or foreign
// handle is a fatal contract violation. The graph must stay acyclic;
// traversal and pruning assume a DAG.
type Circuit struct {
	// Scheme is the FHE scheme the circuit will run under.
	Scheme SchemeType

	// Graph is the underlying dependency graph.
	Graph *graph.Graph[NodeInfo, EdgeInfo]
}

// New creates an empty circuit for the given scheme.
func New(scheme SchemeType) *Circuit {
	return &Circuit{
		Scheme: scheme,
		Graph:  graph.New[NodeInfo, EdgeInfo](),
	}
}

func (c *Circuit) append2InputNode(op Operation, x, y graph.NodeID) graph.NodeID {
	n := c.Graph.AddNode(NodeInfo{Operation: op})
	// AddEdge, not UpdateEdge: with x == y both role edges must exist
	c.Graph.AddEdge(x, n, LeftOperand)
	c.Graph.AddEdge(y, n, RightOperand)
	return n
}

func (c *Circuit) append1InputNode(op Operation, x graph.NodeID) graph.NodeID {
	n := c.Graph.AddNode(NodeInfo{Operation: op})
	c.Graph.AddEdge(x, n, UnaryOperand)
	return n
}

func (c *Circuit) append0InputNode(op Operation) graph.NodeID {
	return c.Graph.AddNode(NodeInfo{Operation: op})
}

// AppendNegate appends a negate operation depending on x.
func (c *Circuit) AppendNegate(x graph.NodeID) graph.NodeID {
	return c.append1InputNode(Operation{Kind: OpNegate}, x)
}

// AppendMultiply appends a multiply operation depending on x and y.
func (c *Circuit) AppendMultiply(x, y graph.NodeID) graph.NodeID {
	return c.append2InputNode(Operation{Kind: OpMultiply}, x, y)
}

// AppendAdd appends an add operation depending on x and y.
func (c *Circuit) AppendAdd(x, y graph.NodeID) graph.NodeID {
	return c.append2InputNode(Operation{Kind: OpAdd}, x, y)
}

// AppendSub appends a subtract operation depending on x and y.
func (c *Circuit) AppendSub(x, y graph.NodeID) graph.NodeID {
	return c.append2InputNode(Operation{Kind: OpSub}, x, y)
}

// AppendInputCiphertext appends an input ciphertext with the given id.
func (c *Circuit) AppendInputCiphertext(id int) graph.NodeID {
	return c.append0InputNode(InputCiphertextOp(id))
}

// AppendInputLiteral appends an unencrypted constant.
func (c *Circuit) AppendInputLiteral(value Literal) graph.NodeID {
	return c.append0InputNode(LiteralOp(value))
}

// AppendOutputCiphertext appends a node designating x as a circuit output.
func (c *Circuit) AppendOutputCiphertext(x graph.NodeID) graph.NodeID {
	return c.append1InputNode(Operation{Kind: OpOutputCiphertext}, x)
}

// AppendRelinearize appends an operation that relinearizes x.
func (c *Circuit) AppendRelinearize(x graph.NodeID) graph.NodeID {
	return c.append1InputNode(Operation{Kind: OpRelinearize}, x)
}

// AppendRotateLeft appends an operation rotating ciphertext x left by the
// number of lanes given by the literal node y.
func (c *Circuit) AppendRotateLeft(x, y graph.NodeID) graph.NodeID {
	return c.append2InputNode(Operation{Kind: OpShiftLeft}, x, y)
}

// AppendRotateRight appends an operation rotating ciphertext x right by the
// number of lanes given by the literal node y.
func (c *Circuit) AppendRotateRight(x, y graph.NodeID) graph.NodeID {
	return c.append2InputNode(Operation{Kind: OpShiftRight}, x, y)
}

// RemoveNode deletes a node and all its edges. Handles of other nodes stay
// valid.
func (c *Circuit) RemoveNode(id graph.NodeID) {
	c.Graph.RemoveNode(id)
}

// Outputs returns the handles of all OutputCiphertext nodes in node table
// order. Callers must not depend on the relative order beyond it being
// deterministic for an unchanged circuit.
func (c *Circuit) Outputs() []graph.NodeID {
	var out []graph.NodeID
	for _, id := range c.Graph.NodeIDs() {
		if c.Graph.Node(id).Operation.Kind == OpOutputCiphertext {
			out = append(out, id)
		}
	}
	return out
}

// Equal reports whether the two circuits have the same scheme and isomorphic
// graphs under operation and edge-role matching. Handle numbering does not
// matter, so circuits that went through pruning or rewriting compare by
// structure. The check is a backtracking search and can be quadratic or
// worse in graph size; it is meant for tests, not hot paths.
func (c *Circuit) Equal(other *Circuit) bool {
	if c.Scheme != other.Scheme {
		return false
	}
	return graph.IsIsomorphicMatching(c.Graph, other.Graph,
		func(a, b *NodeInfo) bool { return a.Operation == b.Operation },
		func(a, b *EdgeInfo) bool { return *a == *b },
	)
}

// Print writes a human-readable listing of the circuit to w, one node per
// line in table order.
func (c *Circuit) Print(w io.Writer) {
	for _, id := range c.Graph.NodeIDs() {
		op := c.Graph.Node(id).Operation
		if op.Arity() == 0 {
			fmt.Fprintf(w, "v%d = %s\n", id, op)
			continue
		}
		var left, right, unary graph.NodeID = graph.InvalidNode, graph.InvalidNode, graph.InvalidNode
		for _, e := range c.Graph.EdgesDirected(id, graph.Incoming) {
			switch e.Data {
			case LeftOperand:
				left = e.From
			case RightOperand:
				right = e.From
			case UnaryOperand:
				unary = e.From
			}
		}
		if op.Arity() == 1 {
			fmt.Fprintf(w, "v%d = %s(v%d)\n", id, op, unary)
		} else {
			fmt.Fprintf(w, "v%d = %s(v%d, v%d)\n", id, op, left, right)
		}
	}
}
