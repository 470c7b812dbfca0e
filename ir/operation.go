package ir

import "fmt"

// OpKind enumerates the operations a circuit node can perform.
type OpKind int

const (
	// 0-input operations
	OpInputCiphertext OpKind = iota
	OpLiteral

	// 1-input operations
	OpNegate
	OpOutputCiphertext
	OpRelinearize

	// 2-input operations
	OpAdd
	OpSub
	OpMultiply
	OpShiftLeft
	OpShiftRight
)

// Operation is the payload of a circuit node: a kind plus the payload fields
// that kind uses. InputID is meaningful only for OpInputCiphertext and Value
// only for OpLiteral; constructors keep the unused fields zeroed so the
// struct compares structurally with ==.
type Operation struct {
	Kind    OpKind
	InputID int
	Value   Literal
}

func InputCiphertextOp(id int) Operation {
	return Operation{Kind: OpInputCiphertext, InputID: id}
}

func LiteralOp(value Literal) Operation {
	return Operation{Kind: OpLiteral, Value: value}
}

// Arity returns the number of operands the operation consumes.
func (o Operation) Arity() int {
	switch o.Kind {
	case OpInputCiphertext, OpLiteral:
		return 0
	case OpNegate, OpOutputCiphertext, OpRelinearize:
		return 1
	case OpAdd, OpSub, OpMultiply, OpShiftLeft, OpShiftRight:
		return 2
	}
	panic(fmt.Sprintf("fatal error: unknown operation kind %d", o.Kind))
}

// IsShift reports whether the operation is a lane rotation. Shifts require
// their right operand to be a literal node.
func (o Operation) IsShift() bool {
	return o.Kind == OpShiftLeft || o.Kind == OpShiftRight
}

func (o Operation) String() string {
	switch o.Kind {
	case OpInputCiphertext:
		return fmt.Sprintf("in(%d)", o.InputID)
	case OpLiteral:
		return fmt.Sprintf("lit(%s)", o.Value)
	case OpNegate:
		return "negate"
	case OpOutputCiphertext:
		return "output"
	case OpRelinearize:
		return "relinearize"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMultiply:
		return "multiply"
	case OpShiftLeft:
		return "shl"
	case OpShiftRight:
		return "shr"
	}
	return "unknown"
}
