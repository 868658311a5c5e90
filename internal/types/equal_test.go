package types

import "testing"

func TestEqualScalars(t *testing.T) {
	if !Same(IntType, IntType) {
		t.Error("IntType should equal itself")
	}
	if Same(IntType, FloatType) {
		t.Error("IntType should not equal FloatType")
	}
}

func TestEqualPointerRecursion(t *testing.T) {
	pInt := NewPointer(IntType)
	pFloat := NewPointer(FloatType)

	if Same(pInt, pFloat) {
		t.Error("*int should not equal *float under recursing comparison")
	}
	if !Equal(pInt, pFloat, false) {
		t.Error("*int should equal *float when pointer-base recursion is disabled")
	}
}

func TestEqualStructByID(t *testing.T) {
	a := &Type{Kind: Struct, ID: 1, Name: "Point"}
	b := &Type{Kind: Struct, ID: 1, Name: "Point"}
	c := &Type{Kind: Struct, ID: 2, Name: "Point"}

	if !Same(a, b) {
		t.Error("structs sharing a declaration ID should be equal")
	}
	if Same(a, c) {
		t.Error("structs with distinct declaration IDs should not be equal")
	}
}

func TestEqualProcedureSignature(t *testing.T) {
	a := &Type{Kind: Procedure, Arguments: []*Type{IntType}, ReturnType: IntType}
	b := &Type{Kind: Procedure, Arguments: []*Type{IntType}, ReturnType: IntType}
	c := &Type{Kind: Procedure, Arguments: []*Type{IntType, IntType}, ReturnType: IntType}
	d := &Type{Kind: Procedure, Arguments: []*Type{IntType}, ReturnType: nil}

	if !Same(a, b) {
		t.Error("identical procedure signatures should be equal")
	}
	if Same(a, c) {
		t.Error("signatures with different argument counts should not be equal")
	}
	if Same(a, d) {
		t.Error("a void and a non-void procedure should not be equal")
	}
}

func TestEqualStaticArrayRequiresSameCount(t *testing.T) {
	a := NewStaticArray(IntType, 4)
	b := NewStaticArray(IntType, 8)
	if Same(a, b) {
		t.Error("static arrays of different lengths should not be equal")
	}
	if !Same(a, NewStaticArray(IntType, 4)) {
		t.Error("static arrays of the same element type and length should be equal")
	}
}

func TestEqualNilHandling(t *testing.T) {
	if Same(nil, nil) != true {
		t.Error("two nil types should compare equal (both void)")
	}
	if Same(nil, IntType) {
		t.Error("nil should not equal a concrete type")
	}
}
