package resolver

import (
	"testing"

	"github.com/Zero5620/Kano/internal/types"
)

func TestImplicitCastNumericWidening(t *testing.T) {
	cases := []struct {
		from, to *types.Type
		want     bool
	}{
		{types.BoolType, types.IntType, true},
		{types.ByteType, types.IntType, true},
		{types.ByteType, types.FloatType, true},
		{types.IntType, types.FloatType, true},
		{types.IntType, types.BoolType, true},
		{types.FloatType, types.BoolType, true},
		{types.FloatType, types.IntType, false},
		{types.IntType, types.ByteType, false},
	}
	for _, c := range cases {
		if got := implicitCast(c.from, c.to); got != c.want {
			t.Errorf("implicitCast(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestImplicitCastVoidPointerEitherDirection(t *testing.T) {
	pInt := types.NewPointer(types.IntType)
	if !implicitCast(types.VoidPointerType, pInt) {
		t.Error("*void should implicitly cast to *int")
	}
	if !implicitCast(pInt, types.VoidPointerType) {
		t.Error("*int should implicitly cast to *void")
	}
	pFloat := types.NewPointer(types.FloatType)
	if implicitCast(pInt, pFloat) {
		t.Error("*int should not implicitly cast to *float")
	}
}

func TestImplicitCastStaticArrayToMatchingView(t *testing.T) {
	arr := types.NewStaticArray(types.IntType, 4)
	view := types.NewArrayView(types.IntType)
	if !implicitCast(arr, view) {
		t.Error("[4]int should implicitly cast to []int")
	}
	otherView := types.NewArrayView(types.FloatType)
	if implicitCast(arr, otherView) {
		t.Error("[4]int should not implicitly cast to []float")
	}
}

func TestExplicitCastNumericPairs(t *testing.T) {
	if !explicitCast(types.FloatType, types.IntType) {
		t.Error("explicit cast(int) from float should be allowed")
	}
	if !explicitCast(types.IntType, types.ByteType) {
		t.Error("explicit cast(byte) from int should be allowed")
	}
}

func TestExplicitCastPointerToPointerAlwaysAllowed(t *testing.T) {
	pInt := types.NewPointer(types.IntType)
	pFloat := types.NewPointer(types.FloatType)
	if !explicitCast(pInt, pFloat) {
		t.Error("explicit cast between unrelated pointer types should be allowed")
	}
}

func TestExplicitCastProcedureRequiresMatchingSignature(t *testing.T) {
	a := &types.Type{Kind: types.Procedure, Arguments: []*types.Type{types.IntType}, ReturnType: types.IntType}
	b := &types.Type{Kind: types.Procedure, Arguments: []*types.Type{types.IntType}, ReturnType: types.IntType}
	c := &types.Type{Kind: types.Procedure, Arguments: []*types.Type{types.FloatType}, ReturnType: types.IntType}

	if !explicitCast(a, b) {
		t.Error("identical procedure signatures should cast explicitly")
	}
	if explicitCast(a, c) {
		t.Error("mismatched procedure signatures should not cast explicitly")
	}
}

func TestExplicitCastStructsNeverConvert(t *testing.T) {
	s1 := &types.Type{Kind: types.Struct, ID: 1}
	s2 := &types.Type{Kind: types.Struct, ID: 2}
	if explicitCast(s1, s2) {
		t.Error("distinct struct types should not be explicitly castable")
	}
}
