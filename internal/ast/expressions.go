package ast

import (
	"fmt"

	"github.com/Zero5620/Kano/internal/token"
)

// LiteralKind distinguishes the primitive shapes a literal token can carry.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralReal
	LiteralBool
	LiteralCharacter
	LiteralString
	LiteralNullPointer
)

// Literal is a constant value spelled directly in source.
type Literal struct {
	Kind       LiteralKind
	IntValue   int64
	RealValue  float64
	BoolValue  bool
	ByteValue  byte
	StrValue   string
	Position   token.Position
}

func (l *Literal) Pos() token.Position { return l.Position }
func (l *Literal) expressionNode()     {}
func (l *Literal) String() string {
	switch l.Kind {
	case LiteralInt:
		return fmt.Sprintf("%d", l.IntValue)
	case LiteralReal:
		return fmt.Sprintf("%g", l.RealValue)
	case LiteralBool:
		return fmt.Sprintf("%t", l.BoolValue)
	case LiteralCharacter:
		return fmt.Sprintf("%q", l.ByteValue)
	case LiteralString:
		return fmt.Sprintf("%q", l.StrValue)
	default:
		return "null"
	}
}

// Identifier is a bare name reference, resolved against the symbol table.
type Identifier struct {
	Name     string
	Position token.Position
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) expressionNode()     {}
func (i *Identifier) String() string      { return i.Name }

// UnaryOperatorKind is the closed set of prefix operators the language has.
type UnaryOperatorKind int

const (
	UnaryPlus UnaryOperatorKind = iota
	UnaryMinus
	UnaryBitwiseNot
	UnaryLogicalNot
	UnaryAddressOf    // &x
	UnaryDereference  // *p
)

// UnaryOperator applies a prefix operator to a single operand.
type UnaryOperator struct {
	Op       UnaryOperatorKind
	Operand  Expression
	Position token.Position
}

func (u *UnaryOperator) Pos() token.Position { return u.Position }
func (u *UnaryOperator) expressionNode()     {}
func (u *UnaryOperator) String() string      { return "unary-op" }

// BinaryOperatorKind is the closed set of infix operators, including the
// compound-assignment and member-access forms.
type BinaryOperatorKind int

const (
	BinAdd BinaryOperatorKind = iota
	BinSub
	BinMul
	BinDiv
	BinRemainder
	BinShiftLeft
	BinShiftRight
	BinBitwiseAnd
	BinBitwiseOr
	BinBitwiseXor
	BinGreater
	BinLess
	BinGreaterEqual
	BinLessEqual
	BinEqual
	BinNotEqual
	BinLogicalAnd
	BinLogicalOr
	BinCompoundAdd
	BinCompoundSub
	BinCompoundMul
	BinCompoundDiv
	BinCompoundRemainder
	BinCompoundShiftLeft
	BinCompoundShiftRight
	BinCompoundBitwiseAnd
	BinCompoundBitwiseOr
	BinCompoundBitwiseXor
	BinMember // the `.` operator; Right must be an *Identifier
)

// IsCompound reports whether op is one of the `op=` compound-assignment forms.
func (op BinaryOperatorKind) IsCompound() bool {
	return op >= BinCompoundAdd && op <= BinCompoundBitwiseXor
}

// BinaryOperator applies an infix operator to two operands.
type BinaryOperator struct {
	Op       BinaryOperatorKind
	Left     Expression
	Right    Expression
	Position token.Position
}

func (b *BinaryOperator) Pos() token.Position { return b.Position }
func (b *BinaryOperator) expressionNode()     {}
func (b *BinaryOperator) String() string      { return "binary-op" }

// Subscript indexes into an array, array view, or string: expr[index].
type Subscript struct {
	Expr     Expression
	Index    Expression
	Position token.Position
}

func (s *Subscript) Pos() token.Position { return s.Position }
func (s *Subscript) expressionNode()     {}
func (s *Subscript) String() string      { return "subscript" }

// TypeCast is an explicit `expr as Type` conversion.
type TypeCast struct {
	Expr     Expression
	Type     TypeExpr
	Position token.Position
}

func (t *TypeCast) Pos() token.Position { return t.Position }
func (t *TypeCast) expressionNode()     {}
func (t *TypeCast) String() string      { return "type-cast" }

// SizeOf evaluates to the runtime size, in bytes, of a type.
type SizeOf struct {
	Type     TypeExpr
	Position token.Position
}

func (s *SizeOf) Pos() token.Position { return s.Position }
func (s *SizeOf) expressionNode()     {}
func (s *SizeOf) String() string      { return "size-of" }

// ProcedureCall invokes a procedure-typed expression with parameters.
type ProcedureCall struct {
	Procedure  Expression
	Parameters []Expression
	Position   token.Position
}

func (c *ProcedureCall) Pos() token.Position { return c.Position }
func (c *ProcedureCall) expressionNode()     {}
func (c *ProcedureCall) String() string      { return "call" }

// Assignment stores the value of Right into the address denoted by Left.
type Assignment struct {
	Left     Expression
	Right    Expression
	Position token.Position
}

func (a *Assignment) Pos() token.Position { return a.Position }
func (a *Assignment) expressionNode()     {}
func (a *Assignment) String() string      { return "assignment" }
