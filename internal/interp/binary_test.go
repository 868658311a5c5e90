package interp

import (
	"testing"

	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

func intLit(n int64) *codetree.Literal {
	l := &codetree.Literal{Int: n}
	l.Type = types.IntType
	return l
}

func boolLit(b bool) *codetree.Literal {
	l := &codetree.Literal{Bool: b}
	l.Type = types.BoolType
	return l
}

// globalAddress builds a resolved Address node referring to a GLOBAL symbol
// at the given byte offset, the same shape resolveIdentifier produces.
func globalAddress(t *types.Type, offset uint64) *codetree.Address {
	sym := &symbols.Symbol{Type: t, Address: symbols.Address{Kind: symbols.Global, Offset: offset}}
	a := &codetree.Address{Symbol: sym}
	a.Type = t
	return a
}

func binOp(op codetree.BinaryOperatorKind, resultType *types.Type, compound bool, left, right codetree.Expression) *codetree.BinaryOperator {
	b := &codetree.BinaryOperator{Op: op, Left: left, Right: right, Compound: compound}
	b.Type = resultType
	return b
}

func TestEvalBinaryIntegerArithmetic(t *testing.T) {
	it := newTestInterpreter()

	b := binOp(codetree.BinAdd, types.IntType, false, intLit(3), intLit(4))
	if got := it.Load(it.evalBinary(b)).Int; got != 7 {
		t.Errorf("3 + 4 = %d, want 7", got)
	}

	b = binOp(codetree.BinMul, types.IntType, false, intLit(6), intLit(7))
	if got := it.Load(it.evalBinary(b)).Int; got != 42 {
		t.Errorf("6 * 7 = %d, want 42", got)
	}
}

func TestEvalBinaryComparison(t *testing.T) {
	it := newTestInterpreter()
	b := binOp(codetree.BinLess, types.BoolType, false, intLit(2), intLit(10))
	if got := it.Load(it.evalBinary(b)).Bool; !got {
		t.Error("2 < 10 should be true")
	}
}

func TestEvalBinaryLogical(t *testing.T) {
	it := newTestInterpreter()
	b := binOp(codetree.BinLogicalAnd, types.BoolType, false, boolLit(true), boolLit(false))
	if got := it.Load(it.evalBinary(b)).Bool; got {
		t.Error("true && false should be false")
	}
}

func TestEvalBinaryCompoundWritesBackThroughAddress(t *testing.T) {
	it := newTestInterpreter()
	left := globalAddress(types.IntType, 0)
	it.Store(Value{Type: types.IntType, Addr: &Addr{Region: RegionGlobal, Offset: 0}}, Immediate{Int: 10})

	b := binOp(codetree.BinAdd, types.IntType, true, left, intLit(5))

	result := it.evalBinary(b)
	if got := it.Load(result).Int; got != 15 {
		t.Errorf("compound add result = %d, want 15", got)
	}
	if got := it.decode(types.IntType, Addr{Region: RegionGlobal, Offset: 0}).Int; got != 15 {
		t.Errorf("compound add did not write back: global[0] = %d, want 15", got)
	}
}

func TestApplyPointerBinaryArithmeticScalesByElementSize(t *testing.T) {
	l := Immediate{Ptr: Addr{Region: RegionStack, Offset: 0}}
	r := Immediate{Int: 2}
	got := applyPointerBinary(codetree.BinAdd, l, r, 8)
	if got.Ptr.Offset != 16 {
		t.Errorf("pointer + 2 (elem size 8) offset = %d, want 16", got.Ptr.Offset)
	}
}

func TestApplyPointerBinaryComparisons(t *testing.T) {
	low := Immediate{Ptr: Addr{Region: RegionStack, Offset: 0}}
	high := Immediate{Ptr: Addr{Region: RegionStack, Offset: 16}}

	cases := []struct {
		op   codetree.BinaryOperatorKind
		want bool
	}{
		{codetree.BinLess, true},
		{codetree.BinLessEqual, true},
		{codetree.BinGreater, false},
		{codetree.BinGreaterEqual, false},
		{codetree.BinEqual, false},
		{codetree.BinNotEqual, true},
	}
	for _, c := range cases {
		if got := applyPointerBinary(c.op, low, high, 1).Bool; got != c.want {
			t.Errorf("low %v high = %v, want %v", c.op, got, c.want)
		}
	}
}

func TestApplyPointerBinaryNullComparison(t *testing.T) {
	null := Immediate{Ptr: Addr{Region: RegionNone}}
	nonNull := Immediate{Ptr: Addr{Region: RegionStack, Offset: 8}}
	if got := applyPointerBinary(codetree.BinNotEqual, nonNull, null, 1).Bool; !got {
		t.Error("a non-null pointer should compare != null")
	}
	if got := applyPointerBinary(codetree.BinEqual, null, null, 1).Bool; !got {
		t.Error("null should compare == null")
	}
}
