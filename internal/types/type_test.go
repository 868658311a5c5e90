package types

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Null:        "NULL",
		Character:   "CHARACTER",
		Integer:     "INTEGER",
		Real:        "REAL",
		Bool:        "BOOL",
		Pointer:     "POINTER",
		Procedure:   "PROCEDURE",
		Struct:      "STRUCT",
		StaticArray: "STATIC_ARRAY",
		ArrayView:   "ARRAY_VIEW",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestNewPointer(t *testing.T) {
	p := NewPointer(IntType)
	if p.Kind != Pointer || p.Base != IntType {
		t.Fatalf("NewPointer(IntType) = %+v", p)
	}
	if p.RuntimeSize != PointerSize || p.Alignment != PointerSize {
		t.Errorf("pointer size/alignment = %d/%d, want %d/%d", p.RuntimeSize, p.Alignment, PointerSize, PointerSize)
	}
}

func TestNewStaticArray(t *testing.T) {
	a := NewStaticArray(IntType, 4)
	if a.Kind != StaticArray || a.Element != IntType || a.ElementCount != 4 {
		t.Fatalf("NewStaticArray(IntType, 4) = %+v", a)
	}
	if a.RuntimeSize != IntType.RuntimeSize*4 {
		t.Errorf("RuntimeSize = %d, want %d", a.RuntimeSize, IntType.RuntimeSize*4)
	}
}

func TestNewArrayView(t *testing.T) {
	v := NewArrayView(ByteType)
	if v.Kind != ArrayView || v.Element != ByteType {
		t.Fatalf("NewArrayView(ByteType) = %+v", v)
	}
	if v.RuntimeSize != 16 {
		t.Errorf("RuntimeSize = %d, want 16", v.RuntimeSize)
	}
}

func TestTypeString(t *testing.T) {
	node := &Type{Kind: Struct, Name: "Node", ID: 1}
	cases := []struct {
		ty   *Type
		want string
	}{
		{nil, "void"},
		{NullType, "void"},
		{ByteType, "byte"},
		{IntType, "int"},
		{FloatType, "float"},
		{BoolType, "bool"},
		{NewPointer(IntType), "*int"},
		{node, "Node"},
		{NewPointer(node), "*Node"},
		{NewStaticArray(IntType, 3), "[3] int"},
		{NewArrayView(ByteType), "[] byte"},
		{&Type{Kind: Procedure, Arguments: []*Type{IntType, IntType}, ReturnType: IntType}, "proc (int, int) -> int"},
		{&Type{Kind: Procedure}, "proc ()"},
	}
	for _, c := range cases {
		if got := c.ty.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
