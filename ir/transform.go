package ir

import (
	"fmt"

	"github.com/cipherstack/fhec/graph"
)

// TransformKind enumerates the edits a traversal callback can request.
type TransformKind int

const (
	TAppendAdd TransformKind = iota
	TAppendSub
	TAppendMultiply
	TAppendShiftLeft
	TAppendShiftRight
	TAppendNegate
	TAppendRelinearize
	TAppendOutputCiphertext
	TAppendInputCiphertext
	TAppendInputLiteral
	TRemoveNode
	TAddEdge
	TRemoveEdge
)

// DeferredID is the position of a transform within its pending batch, used
// to reference the node that transform will create before it exists.
type DeferredID int

// TransformNodeID names a node operand of a transform: either a handle to a
// node already in the graph, or a deferred reference to the output of an
// earlier transform in the same batch. Deferred references only ever look
// backward within one batch, never forward and never across batches.
type TransformNodeID struct {
	node     graph.NodeID
	pos      DeferredID
	deferred bool
}

// Existing references a node already present in the graph.
func Existing(id graph.NodeID) TransformNodeID {
	return TransformNodeID{node: id}
}

// Deferred references the node created by the transform at the given
// position in the same batch.
func Deferred(pos DeferredID) TransformNodeID {
	return TransformNodeID{pos: pos, deferred: true}
}

// Transform is one declarative graph edit. Build them with the constructor
// functions; Kind decides which fields are meaningful.
type Transform struct {
	Kind    TransformKind
	X, Y    TransformNodeID
	Edge    EdgeInfo
	InputID int
	Value   Literal
}

func AppendAdd(x, y TransformNodeID) Transform {
	return Transform{Kind: TAppendAdd, X: x, Y: y}
}

func AppendSub(x, y TransformNodeID) Transform {
	return Transform{Kind: TAppendSub, X: x, Y: y}
}

func AppendMultiply(x, y TransformNodeID) Transform {
	return Transform{Kind: TAppendMultiply, X: x, Y: y}
}

func AppendShiftLeft(x, y TransformNodeID) Transform {
	return Transform{Kind: TAppendShiftLeft, X: x, Y: y}
}

func AppendShiftRight(x, y TransformNodeID) Transform {
	return Transform{Kind: TAppendShiftRight, X: x, Y: y}
}

func AppendNegate(x TransformNodeID) Transform {
	return Transform{Kind: TAppendNegate, X: x}
}

func AppendRelinearize(x TransformNodeID) Transform {
	return Transform{Kind: TAppendRelinearize, X: x}
}

func AppendOutputCiphertext(x TransformNodeID) Transform {
	return Transform{Kind: TAppendOutputCiphertext, X: x}
}

func AppendInputCiphertext(id int) Transform {
	return Transform{Kind: TAppendInputCiphertext, InputID: id}
}

func AppendInputLiteral(value Literal) Transform {
	return Transform{Kind: TAppendInputLiteral, Value: value}
}

func RemoveNode(x TransformNodeID) Transform {
	return Transform{Kind: TRemoveNode, X: x}
}

func AddEdge(x, y TransformNodeID, edge EdgeInfo) Transform {
	return Transform{Kind: TAddEdge, X: x, Y: y, Edge: edge}
}

func RemoveEdge(x, y TransformNodeID) Transform {
	return Transform{Kind: TRemoveEdge, X: x, Y: y}
}

// TransformList is an ordered batch of edits produced by one traversal
// callback and consumed exactly once by Apply. Alongside the transforms it
// records, per applied transform, the handle of the node it inserted, which
// is what deferred references resolve against.
type TransformList struct {
	transforms  []Transform
	insertedIDs []graph.NodeID
	applied     bool
}

// NewTransformList creates an empty batch.
func NewTransformList() *TransformList {
	return &TransformList{}
}

// Push adds a transform to the batch and returns its position, usable as a
// Deferred operand by later transforms in the same batch.
func (l *TransformList) Push(t Transform) DeferredID {
	l.transforms = append(l.transforms, t)
	return DeferredID(len(l.transforms) - 1)
}

// Len returns the number of pending transforms.
func (l *TransformList) Len() int {
	return len(l.transforms)
}

// Apply performs every transform in push order, resolving deferred operands
// against the handles recorded for earlier transforms in this batch.
//
// Apply panics if the batch was already applied, if a deferred operand is
// out of range or refers to a transform that inserted no node (chaining off
// a removal), or if a RemoveEdge names an edge that does not exist. These
// are compiler-pass bugs, not recoverable input.
func (l *TransformList) Apply(c *Circuit) {
	if l.applied {
		panic("fatal error: transform list already applied")
	}
	l.applied = true
	for _, t := range l.transforms {
		inserted := graph.InvalidNode
		switch t.Kind {
		case TAppendAdd:
			inserted = c.AppendAdd(l.materialize(t.X), l.materialize(t.Y))
		case TAppendSub:
			inserted = c.AppendSub(l.materialize(t.X), l.materialize(t.Y))
		case TAppendMultiply:
			inserted = c.AppendMultiply(l.materialize(t.X), l.materialize(t.Y))
		case TAppendShiftLeft:
			inserted = c.AppendRotateLeft(l.materialize(t.X), l.materialize(t.Y))
		case TAppendShiftRight:
			inserted = c.AppendRotateRight(l.materialize(t.X), l.materialize(t.Y))
		case TAppendNegate:
			inserted = c.AppendNegate(l.materialize(t.X))
		case TAppendRelinearize:
			inserted = c.AppendRelinearize(l.materialize(t.X))
		case TAppendOutputCiphertext:
			inserted = c.AppendOutputCiphertext(l.materialize(t.X))
		case TAppendInputCiphertext:
			inserted = c.AppendInputCiphertext(t.InputID)
		case TAppendInputLiteral:
			inserted = c.AppendInputLiteral(t.Value)
		case TRemoveNode:
			c.RemoveNode(l.materialize(t.X))
		case TRemoveEdge:
			x := l.materialize(t.X)
			y := l.materialize(t.Y)
			id, ok := c.Graph.FindEdge(x, y)
			if !ok {
				panic(fmt.Sprintf("fatal error: attempted to remove nonexistent edge %d -> %d", x, y))
			}
			c.Graph.RemoveEdge(id)
		case TAddEdge:
			c.Graph.UpdateEdge(l.materialize(t.X), l.materialize(t.Y), t.Edge)
		default:
			panic(fmt.Sprintf("fatal error: unknown transform kind %d", t.Kind))
		}
		l.insertedIDs = append(l.insertedIDs, inserted)
	}
}

func (l *TransformList) materialize(x TransformNodeID) graph.NodeID {
	if !x.deferred {
		return x.node
	}
	if int(x.pos) < 0 || int(x.pos) >= len(l.insertedIDs) || l.insertedIDs[x.pos] == graph.InvalidNode {
		panic(fmt.Sprintf("fatal error: no such deferred node index %d", x.pos))
	}
	return l.insertedIDs[x.pos]
}
