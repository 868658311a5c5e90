package codetree

import "github.com/Zero5620/Kano/internal/symbols"

// Literal is a compile-time constant value baked directly into the code
// tree: a numeric/boolean/character constant, or the null pointer literal.
// Only one of the value fields is meaningful, per Type.Kind.
type Literal struct {
	exprBase
	Int  int64
	Real float64
	Bool bool
	Byte byte
}

// Address is a resolved reference to a symbol's storage: the lowering of an
// ast.Identifier, per SPEC_FULL.md §4.4. Subscript is non-nil when this
// Address denotes an element of an array/view/string rather than the whole
// symbol (e.g. `a[i]`).
type Address struct {
	exprBase
	Symbol    *symbols.Symbol
	Offset    uint32 // additional constant byte offset past Symbol.Address (member access)
	Subscript *Subscript
}

// Subscript is `base[index]`, valid only on STATIC_ARRAY, ARRAY_VIEW, or the
// built-in string struct, per SPEC_FULL.md §4.4.
type Subscript struct {
	exprBase
	Base  Expression
	Index Expression
}

// Offset advances a base expression's address by a constant byte count and
// retypes it: the lowering of struct member access and of
// array_view/static_array `.count`/`.data` sugar.
type Offset struct {
	exprBase
	Base       Expression
	ByteOffset uint32
}

// UnaryOperatorKind mirrors ast.UnaryOperatorKind for the resolved tree.
type UnaryOperatorKind int

const (
	UnaryPlus UnaryOperatorKind = iota
	UnaryMinus
	UnaryNot
	UnaryBitwiseNot
	UnaryAddressOf
	UnaryDereference
)

// UnaryOperator is a resolved unary expression, already matched against the
// unary operator table (or special-cased for & and *, per SPEC_FULL.md §4.3).
type UnaryOperator struct {
	exprBase
	Op      UnaryOperatorKind
	Operand Expression
}

// BinaryOperatorKind mirrors ast.BinaryOperatorKind for the resolved tree.
type BinaryOperatorKind int

const (
	BinAdd BinaryOperatorKind = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinBitwiseAnd
	BinBitwiseOr
	BinBitwiseXor
	BinShiftLeft
	BinShiftRight
	BinEqual
	BinNotEqual
	BinLess
	BinLessEqual
	BinGreater
	BinGreaterEqual
	BinLogicalAnd
	BinLogicalOr
)

// BinaryOperator is a resolved binary expression matched against the binary
// operator table. Compound is true for the lowering of a compound-assignment
// operator (`+=` etc.), which additionally requires Left to be an LVALUE and
// whose evaluation writes its result back through Left's address.
type BinaryOperator struct {
	exprBase
	Op       BinaryOperatorKind
	Left     Expression
	Right    Expression
	Compound bool
}

// TypeCast wraps Expr with a conversion to exprBase.Type, per the implicit
// cast lattice in SPEC_FULL.md §4.4.1 or an explicit cast request.
type TypeCast struct {
	exprBase
	Expr     Expression
	Implicit bool
}

// ProcedureCall is a resolved call: Callee evaluates to a procedure value
// (code-block or ccall), Arguments are the non-variadic declared-slot
// expressions in order (already cast), and Variadics are the extra
// trailing arguments packed into the variadic tail region per
// SPEC_FULL.md §3.4. For a variadic procedure, Arguments holds only the
// genuinely-declared slots; the interpreter computes the trailing
// pointer-to-tag-area value itself (VariadicPointerOffset) rather than the
// resolver synthesizing a placeholder expression for it.
//
// The frame layout fields below are all precomputed by the resolver (the
// address planner already knows every argument's aligned size), so the
// interpreter only needs to copy values into the offsets it's given:
//
//	[ return slot? ][ declared arg 0 ][ declared arg 1 ]...[ variadic tail ]
//	                                                        (reverse-packed
//	                                                         tag,value pairs)
//
// StackTopOffset is where the callee's frame begins, as a byte offset from
// the caller's own frame base (the interpreter adds it to the current
// StackTop). ReturnOffset is the offset of the return slot (0 / unused when
// the procedure is void). ArgumentOffsets holds one offset per entry in
// Arguments. VariadicTagAreaOffset is where the reverse-packed (tag, value)
// pairs begin; VariadicPointerOffset is the offset of the final declared
// slot that receives a pointer to the first (lowest-address) tag, or null
// when the call passes no variadic arguments. Neither is used when
// HasVariadics is false.
type ProcedureCall struct {
	exprBase
	Callee         Expression
	Arguments      []Expression
	Variadics      []Expression
	StackTopOffset uint32

	HasReturn            bool
	ReturnOffset         uint32
	ArgumentOffsets      []uint32
	HasVariadics         bool
	VariadicTagAreaOffset uint32
	VariadicPointerOffset uint32
}
