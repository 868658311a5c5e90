package resolver_test

import (
	"testing"

	"github.com/Zero5620/Kano/internal/resolver"
	"github.com/Zero5620/Kano/pkg/kano/build"
)

// TestStructMemberAccessResolvesOffset exercises resolveMember's STRUCT
// branch: a `Pair { a: int; b: int }` value's `.b` member resolves without
// error and the assignment round-trips through it.
func TestStructMemberAccessResolvesOffset(t *testing.T) {
	scope := build.Global(
		build.Struct("Pair", build.Field("a", build.Type("int")), build.Field("b", build.Type("int"))),
		build.Const("main", nil, build.Proc(nil, build.Block(
			build.Var("p", build.Type("Pair"), nil),
			build.Expr(build.Assign(build.Member(build.Id("p"), "b"), build.Int(9))),
		))),
	)

	r := resolver.Create()
	r.Resolve(scope)
	if r.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", errMessages(r))
	}
}

// TestStructMemberAccessUnknownFieldIsAnError.
func TestStructMemberAccessUnknownFieldIsAnError(t *testing.T) {
	scope := build.Global(
		build.Struct("Pair", build.Field("a", build.Type("int"))),
		build.Const("main", nil, build.Proc(nil, build.Block(
			build.Var("p", build.Type("Pair"), nil),
			build.Expr(build.Member(build.Id("p"), "missing")),
		))),
	)

	r := resolver.Create()
	r.Resolve(scope)
	if !containsSubstring(errMessages(r), "has no member") {
		t.Errorf("errors = %v, want a no-member error", errMessages(r))
	}
}

// TestStaticArrayCountAndDataSugar exercises resolveMember's STATIC_ARRAY
// branch: `.count` folds to a constant int, `.data` takes the array's
// address.
func TestStaticArrayCountAndDataSugar(t *testing.T) {
	scope := build.Global(
		build.Const("main", nil, build.Proc(nil, build.Block(
			build.Var("buf", build.Array(build.Type("int"), build.Int(3)), nil),
			build.Var("n", build.Type("int"), build.Member(build.Id("buf"), "count")),
			build.Var("p", nil, build.Member(build.Id("buf"), "data")),
		))),
	)

	r := resolver.Create()
	r.Resolve(scope)
	if r.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", errMessages(r))
	}
}

// TestSizeOfReturnsConstantInt exercises resolveSizeOf: sizeof(int) is an
// 8-byte constant INTEGER literal usable as an int initializer.
func TestSizeOfReturnsConstantInt(t *testing.T) {
	scope := build.Global(
		build.Var("n", build.Type("int"), build.SizeOf(build.Type("int"))),
	)

	r := resolver.Create()
	r.Resolve(scope)
	if r.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", errMessages(r))
	}
}

// TestExplicitCastBetweenStructsIsAnError exercises resolveTypeCast's
// rejection of explicitCast's STRUCT,STRUCT case.
func TestExplicitCastBetweenStructsIsAnError(t *testing.T) {
	scope := build.Global(
		build.Struct("A", build.Field("x", build.Type("int"))),
		build.Struct("B", build.Field("x", build.Type("int"))),
		build.Const("main", nil, build.Proc(nil, build.Block(
			build.Var("a", build.Type("A"), nil),
			build.Expr(build.Cast(build.Id("a"), build.Type("B"))),
		))),
	)

	r := resolver.Create()
	r.Resolve(scope)
	if !containsSubstring(errMessages(r), "cannot cast") {
		t.Errorf("errors = %v, want a cannot-cast error", errMessages(r))
	}
}

// TestSubscriptOnNonArrayIsAnError exercises resolveSubscript's default case.
func TestSubscriptOnNonArrayIsAnError(t *testing.T) {
	scope := build.Global(
		build.Var("n", build.Type("int"), build.Int(1)),
		build.Const("main", nil, build.Proc(nil, build.Block(
			build.Expr(build.Subscript(build.Id("n"), build.Int(0))),
		))),
	)

	r := resolver.Create()
	r.Resolve(scope)
	if !containsSubstring(errMessages(r), "subscript target must be") {
		t.Errorf("errors = %v, want a subscript-target error", errMessages(r))
	}
}
