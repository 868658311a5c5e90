package build_test

import (
	"testing"

	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/pkg/kano/build"
)

func TestVarWithoutTypeInfersFromInitializer(t *testing.T) {
	d := build.Var("x", nil, build.Int(5))
	if d.Identifier != "x" || d.Constant {
		t.Fatalf("Var produced %+v, want a non-constant declaration named x", d)
	}
	if d.Type != nil {
		t.Errorf("Type = %v, want nil (inferred)", d.Type)
	}
	lit, ok := d.Initializer.(*ast.Literal)
	if !ok || lit.IntValue != 5 {
		t.Errorf("Initializer = %+v, want an int literal 5", d.Initializer)
	}
}

func TestConstMarksDeclarationConstant(t *testing.T) {
	d := build.Const("pi", build.Type("float"), build.Real(3.5))
	if !d.Constant {
		t.Error("Const should set Constant = true")
	}
}

func TestStructBuildsStructLiteralInitializer(t *testing.T) {
	d := build.Struct("Pair", build.Field("a", build.Type("int")), build.Field("b", build.Type("int")))
	lit, ok := d.Initializer.(*ast.StructLiteral)
	if !ok {
		t.Fatalf("Struct's initializer = %T, want *ast.StructLiteral", d.Initializer)
	}
	if len(lit.Members) != 2 {
		t.Errorf("len(Members) = %d, want 2", len(lit.Members))
	}
}

func TestGlobalWrapsDeclarationsInOrder(t *testing.T) {
	a := build.Var("a", build.Type("int"), build.Int(1))
	b := build.Var("b", build.Type("int"), build.Int(2))
	scope := build.Global(a, b)

	if len(scope.Block.Statements) != 2 {
		t.Fatalf("len(Statements) = %d, want 2", len(scope.Block.Statements))
	}
	if scope.Block.Statements[0].Node != a || scope.Block.Statements[1].Node != b {
		t.Error("Global did not preserve declaration order")
	}
}

func TestMemberDesugarsToBinMemberOperator(t *testing.T) {
	m := build.Member(build.Id("p"), "x")
	if m.Op != ast.BinMember {
		t.Errorf("Op = %v, want BinMember", m.Op)
	}
	rhs, ok := m.Right.(*ast.Identifier)
	if !ok || rhs.Name != "x" {
		t.Errorf("Right = %+v, want identifier %q", m.Right, "x")
	}
}

func TestArithmeticShorthandsBuildExpectedOperators(t *testing.T) {
	cases := []struct {
		name string
		expr *ast.BinaryOperator
		op   ast.BinaryOperatorKind
	}{
		{"Add", build.Add(build.Int(1), build.Int(2)), ast.BinAdd},
		{"Sub", build.Sub(build.Int(1), build.Int(2)), ast.BinSub},
		{"Mul", build.Mul(build.Int(1), build.Int(2)), ast.BinMul},
		{"Div", build.Div(build.Int(1), build.Int(2)), ast.BinDiv},
		{"Lt", build.Lt(build.Int(1), build.Int(2)), ast.BinLess},
		{"Le", build.Le(build.Int(1), build.Int(2)), ast.BinLessEqual},
		{"Gt", build.Gt(build.Int(1), build.Int(2)), ast.BinGreater},
		{"Eq", build.Eq(build.Int(1), build.Int(2)), ast.BinEqual},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.expr.Op != c.op {
				t.Errorf("%s Op = %v, want %v", c.name, c.expr.Op, c.op)
			}
		})
	}
}

func TestArrayBuildsStaticArrayType(t *testing.T) {
	at := build.Array(build.Type("int"), build.Int(4))
	if _, ok := at.Element.(*ast.NamedType); !ok {
		t.Errorf("Element = %T, want *ast.NamedType", at.Element)
	}
	lit, ok := at.Count.(*ast.Literal)
	if !ok || lit.IntValue != 4 {
		t.Errorf("Count = %+v, want int literal 4", at.Count)
	}
}
