package ir

import (
	"fmt"

	"github.com/cipherstack/fhec/graph"
)

// Validator inspects a circuit and returns all structural errors it finds.
// It is a pure function of the circuit; the graph engine stays decoupled
// from scheme-specific rules by letting callers swap it.
type Validator func(c *Circuit) []error

// DefaultValidator is used by Circuit.Validate. It checks acyclicity,
// operand arity and roles, and shift operand kinds.
var DefaultValidator Validator = ValidateCircuit

// Validate checks the circuit with the package validator. A non-empty
// finding list is returned as an *IRError; callers decide whether to abort
// compilation or attempt a repair pass.
func (c *Circuit) Validate() error {
	errs := DefaultValidator(c)
	if len(errs) > 0 {
		return &IRError{Errors: errs}
	}
	return nil
}

// ValidateCircuit checks the structural well-formedness of a circuit.
func ValidateCircuit(c *Circuit) []error {
	var errs []error

	if c.Scheme != Bfv && c.Scheme != Ckks && c.Scheme != Tfhe {
		errs = append(errs, fmt.Errorf("unknown scheme type %d", c.Scheme))
	}

	if _, err := c.Graph.TopologicalSort(); err != nil {
		errs = append(errs, err)
	}

	for _, id := range c.Graph.NodeIDs() {
		op := c.Graph.Node(id).Operation
		var nbLeft, nbRight, nbUnary int
		for _, e := range c.Graph.EdgesDirected(id, graph.Incoming) {
			switch e.Data {
			case LeftOperand:
				nbLeft++
			case RightOperand:
				nbRight++
			case UnaryOperand:
				nbUnary++
			}
		}
		nbIn := nbLeft + nbRight + nbUnary

		switch op.Arity() {
		case 0:
			if nbIn != 0 {
				errs = append(errs, fmt.Errorf("node %d (%s): expected 0 operands, found %d", id, op, nbIn))
			}
		case 1:
			if nbUnary != 1 || nbIn != 1 {
				errs = append(errs, fmt.Errorf("node %d (%s): expected 1 unary operand, found %d left, %d right, %d unary", id, op, nbLeft, nbRight, nbUnary))
			}
		case 2:
			if nbLeft != 1 || nbRight != 1 || nbIn != 2 {
				errs = append(errs, fmt.Errorf("node %d (%s): expected left and right operands, found %d left, %d right, %d unary", id, op, nbLeft, nbRight, nbUnary))
			}
		}

		if op.IsShift() {
			for _, e := range c.Graph.EdgesDirected(id, graph.Incoming) {
				if e.Data == RightOperand && c.Graph.Node(e.From).Operation.Kind != OpLiteral {
					errs = append(errs, fmt.Errorf("node %d (%s): shift amount must be a literal node, found %s", id, op, c.Graph.Node(e.From).Operation))
				}
			}
		}
	}

	return errs
}
