// Package samples builds a handful of small, named Kano programs with
// pkg/kano/build — the CLI's stand-in for source files, and a second set
// of eyes on every scenario spec.md §8 names. The programs call a `print`
// ccall they do not register themselves: callers (cmd/kano, tests) Build a
// resolver, register print on it (builtins.RegisterPrint), call the
// constructor, then Compile and Run.
package samples

import (
	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/pkg/kano/build"
)

// Names lists every sample in registration order, for a CLI to enumerate.
var Names = []string{"fibonacci", "pointers", "variadic-print", "linked-list"}

// Get returns the named sample's global scope, or false if name is unknown.
func Get(name string) (*ast.GlobalScope, bool) {
	switch name {
	case "fibonacci":
		return Fibonacci(), true
	case "pointers":
		return PointerArithmetic(), true
	case "variadic-print":
		return VariadicPrint(), true
	case "linked-list":
		return LinkedList(), true
	}
	return nil, false
}

// Fibonacci is spec.md §8 scenario 1: a recursive fib(10), printed via the
// print ccall. Expected output: "55".
func Fibonacci() *ast.GlobalScope {
	n := build.Id("n")
	fibCall := func(arg ast.Expression) *ast.ProcedureCall { return build.Call(build.Id("fib"), arg) }

	fibBody := build.Block(
		build.If(build.Lt(n, build.Int(2)), build.Return(n), nil),
		build.Return(build.Add(fibCall(build.Sub(n, build.Int(1))), fibCall(build.Sub(n, build.Int(2))))),
	)

	mainBody := build.Block(
		build.Expr(build.Call(build.Id("print"), fibCall(build.Int(10)))),
	)

	return build.Global(
		build.Const("fib", nil, build.Proc(build.Type("int"), fibBody, build.Field("n", build.Type("int")))),
		build.Const("main", nil, build.Proc(nil, mainBody)),
	)
}

// PointerArithmetic is spec.md §8 scenario 2: writing through a pointer
// advanced two elements past &a[0] only disturbs a[2].
func PointerArithmetic() *ast.GlobalScope {
	a := func(i int64) ast.Expression { return build.Subscript(build.Id("a"), build.Int(i)) }

	mainBody := build.Block(
		build.Expr(build.Assign(a(0), build.Int(10))),
		build.Expr(build.Assign(a(1), build.Int(20))),
		build.Expr(build.Assign(a(2), build.Int(30))),
		build.Expr(build.Assign(a(3), build.Int(40))),
		build.Expr(build.Binary(ast.BinCompoundAdd, build.Id("p"), build.Int(2))),
		build.Expr(build.Assign(build.Unary(ast.UnaryDereference, build.Id("p")), build.Int(7))),
		build.Expr(build.Call(build.Id("print"), a(0), build.Str(" "), a(1), build.Str(" "), a(2), build.Str(" "), a(3))),
	)

	return build.Global(
		build.Var("a", build.Array(build.Type("int"), build.Int(4)), nil),
		build.Var("p", nil, build.Unary(ast.UnaryAddressOf, a(0))),
		build.Const("main", nil, build.Proc(nil, mainBody)),
	)
}

// VariadicPrint is spec.md §8 scenario 4: `print("x=", x, " y=", y)` with
// x=1, y=2.5 — the ccall's formatter concatenates to "x=1 y=2.5".
func VariadicPrint() *ast.GlobalScope {
	mainBody := build.Block(
		build.Expr(build.Call(build.Id("print"), build.Str("x="), build.Id("x"), build.Str(" y="), build.Id("y"))),
	)

	return build.Global(
		build.Var("x", nil, build.Int(1)),
		build.Var("y", nil, build.Real(2.5)),
		build.Const("main", nil, build.Proc(nil, mainBody)),
	)
}

// LinkedList is spec.md §8 scenario 5's `Node :: struct { value: int;
// next: *Node; }`, exercised: two stack-allocated nodes are linked a -> b
// -> nil and their values printed by walking the chain with a
// pointer-comparison loop condition (node != null), grounding the
// POINTER,POINTER overloads resolvePointerBinary adds.
func LinkedList() *ast.GlobalScope {
	node := build.Id("node")
	walk := build.Block(
		build.Expr(build.Call(build.Id("print"), build.Member(node, "value"), build.Str(" "))),
		build.Expr(build.Assign(node, build.Member(node, "next"))),
	)

	mainBody := build.Block(
		build.Var("a", build.Type("Node"), nil),
		build.Var("b", build.Type("Node"), nil),
		build.Expr(build.Assign(build.Member(build.Id("a"), "value"), build.Int(1))),
		build.Expr(build.Assign(build.Member(build.Id("a"), "next"), build.Unary(ast.UnaryAddressOf, build.Id("b")))),
		build.Expr(build.Assign(build.Member(build.Id("b"), "value"), build.Int(2))),
		build.Expr(build.Assign(build.Member(build.Id("b"), "next"), build.Null())),
		build.Var("node", nil, build.Unary(ast.UnaryAddressOf, build.Id("a"))),
		build.While(build.Binary(ast.BinNotEqual, node, build.Null()), walk),
	)

	return build.Global(
		build.Struct("Node", build.Field("value", build.Type("int")), build.Field("next", build.Ptr(build.Type("Node")))),
		build.Const("main", nil, build.Proc(nil, mainBody)),
	)
}
