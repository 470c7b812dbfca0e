package ir

import (
	"fmt"
	"math/big"

	"github.com/cipherstack/fhec/graph"
)

// Evaluate runs the circuit over plaintext values for debugging and tests.
// It models the batched (SIMD) view of a ciphertext: every value is a vector
// of lanes, Add/Sub/Multiply/Negate apply lane-wise, shifts rotate lanes by
// the amount in their literal operand, and Relinearize is the identity.
// Single-lane values broadcast against wider operands.
//
// inputs[i] supplies the lanes for the input ciphertext with id i. The
// result holds one lane vector per output node, in Outputs() order.
//
// This is a reference interpreter for the IR's arithmetic meaning, not an
// execution engine; the runtime dispatches the real ciphertext operations.
func (c *Circuit) Evaluate(inputs map[int][]*big.Int) ([][]*big.Int, error) {
	order, err := c.Graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	values := make(map[graph.NodeID][]*big.Int, len(order))
	for _, id := range order {
		v, err := c.evalNode(id, inputs, values)
		if err != nil {
			return nil, err
		}
		values[id] = v
	}

	outputs := c.Outputs()
	result := make([][]*big.Int, len(outputs))
	for i, id := range outputs {
		result[i] = values[id]
	}
	return result, nil
}

func (c *Circuit) evalNode(id graph.NodeID, inputs map[int][]*big.Int, values map[graph.NodeID][]*big.Int) ([]*big.Int, error) {
	op := c.Graph.Node(id).Operation

	operand := func(role EdgeInfo) (graph.NodeID, error) {
		for _, e := range c.Graph.EdgesDirected(id, graph.Incoming) {
			if e.Data == role {
				return e.From, nil
			}
		}
		return graph.InvalidNode, fmt.Errorf("node %d (%s): missing %s operand", id, op, role)
	}

	switch op.Kind {
	case OpInputCiphertext:
		lanes, ok := inputs[op.InputID]
		if !ok {
			return nil, fmt.Errorf("node %d: no value supplied for input %d", id, op.InputID)
		}
		return lanes, nil

	case OpLiteral:
		v := new(big.Int)
		if op.Value.Kind == LiteralU64 {
			v.SetUint64(op.Value.Unsigned)
		} else {
			v.SetInt64(op.Value.Signed)
		}
		return []*big.Int{v}, nil

	case OpNegate, OpRelinearize, OpOutputCiphertext:
		src, err := operand(UnaryOperand)
		if err != nil {
			return nil, err
		}
		in := values[src]
		if op.Kind != OpNegate {
			return in, nil
		}
		out := make([]*big.Int, len(in))
		for i, x := range in {
			out[i] = new(big.Int).Neg(x)
		}
		return out, nil

	case OpAdd, OpSub, OpMultiply:
		l, err := operand(LeftOperand)
		if err != nil {
			return nil, err
		}
		r, err := operand(RightOperand)
		if err != nil {
			return nil, err
		}
		return laneWise(id, op, values[l], values[r])

	case OpShiftLeft, OpShiftRight:
		l, err := operand(LeftOperand)
		if err != nil {
			return nil, err
		}
		r, err := operand(RightOperand)
		if err != nil {
			return nil, err
		}
		amountOp := c.Graph.Node(r).Operation
		if amountOp.Kind != OpLiteral {
			return nil, fmt.Errorf("node %d (%s): shift amount must be a literal node, found %s", id, op, amountOp)
		}
		var amount int
		if amountOp.Value.Kind == LiteralU64 {
			amount = int(amountOp.Value.Unsigned)
		} else {
			amount = int(amountOp.Value.Signed)
		}
		return rotateLanes(values[l], amount, op.Kind == OpShiftLeft), nil
	}

	return nil, fmt.Errorf("node %d: unknown operation kind %d", id, op.Kind)
}

func laneWise(id graph.NodeID, op Operation, l, r []*big.Int) ([]*big.Int, error) {
	// broadcast scalars against vectors
	n := len(l)
	if len(r) > n {
		n = len(r)
	}
	if (len(l) != n && len(l) != 1) || (len(r) != n && len(r) != 1) {
		return nil, fmt.Errorf("node %d (%s): lane count mismatch %d vs %d", id, op, len(l), len(r))
	}
	lane := func(v []*big.Int, i int) *big.Int {
		if len(v) == 1 {
			return v[0]
		}
		return v[i]
	}

	out := make([]*big.Int, n)
	for i := range out {
		x, y := lane(l, i), lane(r, i)
		switch op.Kind {
		case OpAdd:
			out[i] = new(big.Int).Add(x, y)
		case OpSub:
			out[i] = new(big.Int).Sub(x, y)
		case OpMultiply:
			out[i] = new(big.Int).Mul(x, y)
		}
	}
	return out, nil
}

func rotateLanes(v []*big.Int, amount int, left bool) []*big.Int {
	n := len(v)
	if n == 0 {
		return v
	}
	amount %= n
	if amount < 0 {
		amount += n
	}
	if !left {
		amount = (n - amount) % n
	}
	out := make([]*big.Int, n)
	for i := range v {
		out[i] = v[(i+amount)%n]
	}
	return out
}
