// Package build is a fluent, Go-native way to construct the internal/ast
// tree pkg/kano.Compile consumes, standing in for the lexer/parser this
// module's spec treats as an external collaborator (see SPEC_FULL.md §3).
// It is the supported way to embed a fixed Kano program in Go code (tests,
// demos, the cmd/kano CLI's built-in samples) without hand-writing AST
// struct literals at every call site.
package build

import (
	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/token"
)

var zero token.Position

// Global wraps a sequence of top-level declarations into a GlobalScope.
func Global(decls ...*ast.Declaration) *ast.GlobalScope {
	stmts := make([]*ast.Stmt, len(decls))
	for i, d := range decls {
		stmts[i] = &ast.Stmt{Node: d, Position: d.Position}
	}
	return &ast.GlobalScope{Block: &ast.Block{Statements: stmts}}
}

// Var declares `name [: typ] = init` (or `name := init` when typ is nil).
func Var(name string, typ ast.TypeExpr, init ast.Node) *ast.Declaration {
	return &ast.Declaration{Identifier: name, Type: typ, Initializer: init, Position: zero}
}

// Const declares `name :: init` (or `name : typ : init`).
func Const(name string, typ ast.TypeExpr, init ast.Node) *ast.Declaration {
	return &ast.Declaration{Identifier: name, Constant: true, Type: typ, Initializer: init, Position: zero}
}

// Struct builds a `name :: struct { members... }` declaration.
func Struct(name string, members ...*ast.Declaration) *ast.Declaration {
	return &ast.Declaration{Identifier: name, Constant: true, Initializer: &ast.StructLiteral{Members: members}, Position: zero}
}

// Field is sugar for a struct member or procedure argument: a typed
// declaration with no initializer.
func Field(name string, typ ast.TypeExpr) *ast.Declaration {
	return &ast.Declaration{Identifier: name, Type: typ, Position: zero}
}

// Proc builds a procedure literal: `proc (args...) returnType { body }`.
func Proc(returnType ast.TypeExpr, body *ast.Block, args ...*ast.Declaration) *ast.ProcedureLiteral {
	return &ast.ProcedureLiteral{Arguments: args, ReturnType: returnType, Body: body, Position: zero}
}

// Block wraps a sequence of statements.
func Block(stmts ...ast.Statement) *ast.Block {
	out := make([]*ast.Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = &ast.Stmt{Node: s, Position: s.Pos()}
	}
	return &ast.Block{Statements: out}
}

// Expr wraps an expression as a statement.
func Expr(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expr: e, Position: e.Pos()}
}

// If builds `if cond then [else elseStmt]`.
func If(cond ast.Expression, then ast.Statement, els ast.Statement) *ast.If {
	return &ast.If{Condition: cond, Then: then, Else: els, Position: zero}
}

// For builds a C-style `for init; cond; inc { body }`.
func For(init ast.Statement, cond ast.Expression, inc ast.Expression, body ast.Statement) *ast.For {
	return &ast.For{Init: init, Condition: cond, Increment: inc, Body: body, Position: zero}
}

// While builds `while cond { body }`.
func While(cond ast.Expression, body ast.Statement) *ast.While {
	return &ast.While{Condition: cond, Body: body, Position: zero}
}

// Do builds `do { body } while cond`.
func Do(body ast.Statement, cond ast.Expression) *ast.Do {
	return &ast.Do{Body: body, Condition: cond, Position: zero}
}

// Return builds `return [value]`.
func Return(value ast.Expression) *ast.Return {
	return &ast.Return{Expression: value, Position: zero}
}

// Break and Continue build the corresponding bare loop-control statements.
func Break() *ast.Break       { return &ast.Break{Position: zero} }
func Continue() *ast.Continue { return &ast.Continue{Position: zero} }

// Int, Real, Bool, Char, Str and Null build the closed set of literal kinds.
func Int(v int64) *ast.Literal    { return &ast.Literal{Kind: ast.LiteralInt, IntValue: v} }
func Real(v float64) *ast.Literal { return &ast.Literal{Kind: ast.LiteralReal, RealValue: v} }
func Bool(v bool) *ast.Literal    { return &ast.Literal{Kind: ast.LiteralBool, BoolValue: v} }
func Char(v byte) *ast.Literal    { return &ast.Literal{Kind: ast.LiteralCharacter, ByteValue: v} }
func Str(v string) *ast.Literal   { return &ast.Literal{Kind: ast.LiteralString, StrValue: v} }
func Null() *ast.Literal          { return &ast.Literal{Kind: ast.LiteralNullPointer} }

// Id references a declared name.
func Id(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

// Unary and binary operator builders.
func Unary(op ast.UnaryOperatorKind, operand ast.Expression) *ast.UnaryOperator {
	return &ast.UnaryOperator{Op: op, Operand: operand, Position: operand.Pos()}
}

func Binary(op ast.BinaryOperatorKind, left, right ast.Expression) *ast.BinaryOperator {
	return &ast.BinaryOperator{Op: op, Left: left, Right: right, Position: left.Pos()}
}

// Add, Sub, Mul, Div are shorthand over Binary for the arithmetic operators
// used throughout the sample programs and tests.
func Add(l, r ast.Expression) *ast.BinaryOperator { return Binary(ast.BinAdd, l, r) }
func Sub(l, r ast.Expression) *ast.BinaryOperator { return Binary(ast.BinSub, l, r) }
func Mul(l, r ast.Expression) *ast.BinaryOperator { return Binary(ast.BinMul, l, r) }
func Div(l, r ast.Expression) *ast.BinaryOperator { return Binary(ast.BinDiv, l, r) }
func Lt(l, r ast.Expression) *ast.BinaryOperator  { return Binary(ast.BinLess, l, r) }
func Le(l, r ast.Expression) *ast.BinaryOperator  { return Binary(ast.BinLessEqual, l, r) }
func Gt(l, r ast.Expression) *ast.BinaryOperator  { return Binary(ast.BinGreater, l, r) }
func Eq(l, r ast.Expression) *ast.BinaryOperator  { return Binary(ast.BinEqual, l, r) }

// Member builds `base.name`.
func Member(base ast.Expression, name string) *ast.BinaryOperator {
	return Binary(ast.BinMember, base, &ast.Identifier{Name: name})
}

// Assign builds `lhs = rhs`.
func Assign(lhs, rhs ast.Expression) *ast.Assignment {
	return &ast.Assignment{Left: lhs, Right: rhs, Position: lhs.Pos()}
}

// Subscript builds `base[index]`.
func Subscript(base, index ast.Expression) *ast.Subscript {
	return &ast.Subscript{Expr: base, Index: index, Position: base.Pos()}
}

// Call builds a procedure invocation.
func Call(callee ast.Expression, args ...ast.Expression) *ast.ProcedureCall {
	return &ast.ProcedureCall{Procedure: callee, Parameters: args, Position: callee.Pos()}
}

// Cast builds an explicit `expr as typ`.
func Cast(expr ast.Expression, typ ast.TypeExpr) *ast.TypeCast {
	return &ast.TypeCast{Expr: expr, Type: typ, Position: expr.Pos()}
}

// SizeOf builds `sizeof(typ)`.
func SizeOf(typ ast.TypeExpr) *ast.SizeOf {
	return &ast.SizeOf{Type: typ, Position: zero}
}

// Type, Ptr, View, Array and ProcType build type expressions.
func Type(name string) *ast.NamedType { return &ast.NamedType{Name: name} }

func Ptr(base ast.TypeExpr) *ast.PointerType { return &ast.PointerType{Base: base} }

func View(elem ast.TypeExpr) *ast.ArrayViewType { return &ast.ArrayViewType{Element: elem} }

func Array(elem ast.TypeExpr, count ast.Expression) *ast.StaticArrayType {
	return &ast.StaticArrayType{Element: elem, Count: count}
}

func ProcType(returnType ast.TypeExpr, args ...ast.TypeExpr) *ast.ProcedureType {
	return &ast.ProcedureType{Arguments: args, ReturnType: returnType}
}

func Variadic() *ast.VariadicType { return &ast.VariadicType{} }
