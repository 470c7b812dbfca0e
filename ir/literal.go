package ir

import "strconv"

// LiteralKind enumerates the payload types a literal node can carry.
type LiteralKind int

const (
	LiteralU64 LiteralKind = iota
	LiteralI64
)

// Literal is the constant value carried by a literal node. The IR treats it
// as opaque; only the plaintext evaluator and the encoding layer interpret
// it. Equality is structural, so a u64 literal never equals an i64 literal
// even when the numeric values agree.
type Literal struct {
	Kind     LiteralKind
	Unsigned uint64
	Signed   int64
}

// U64Literal wraps an unsigned constant.
func U64Literal(v uint64) Literal {
	return Literal{Kind: LiteralU64, Unsigned: v}
}

// I64Literal wraps a signed constant.
func I64Literal(v int64) Literal {
	return Literal{Kind: LiteralI64, Signed: v}
}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralU64:
		return strconv.FormatUint(l.Unsigned, 10) + "u64"
	case LiteralI64:
		return strconv.FormatInt(l.Signed, 10) + "i64"
	}
	return "invalid"
}
