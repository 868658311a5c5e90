package interp

import (
	"testing"

	"github.com/Zero5620/Kano/internal/types"
)

func newTestInterpreter() *Interpreter {
	it := New()
	it.Init(256, 256, nil, nil, types.VoidPointerType)
	return it
}

func TestStoreLoadRoundTripScalars(t *testing.T) {
	it := newTestInterpreter()

	cases := []struct {
		name  string
		ty    *types.Type
		imm   Immediate
		check func(t *testing.T, got Immediate)
	}{
		{"int", types.IntType, Immediate{Int: -42}, func(t *testing.T, got Immediate) {
			if got.Int != -42 {
				t.Errorf("Int = %d, want -42", got.Int)
			}
		}},
		{"real", types.FloatType, Immediate{Real: 3.5}, func(t *testing.T, got Immediate) {
			if got.Real != 3.5 {
				t.Errorf("Real = %v, want 3.5", got.Real)
			}
		}},
		{"bool", types.BoolType, Immediate{Bool: true}, func(t *testing.T, got Immediate) {
			if !got.Bool {
				t.Error("Bool = false, want true")
			}
		}},
		{"byte", types.ByteType, Immediate{Byte: 'x'}, func(t *testing.T, got Immediate) {
			if got.Byte != 'x' {
				t.Errorf("Byte = %q, want 'x'", got.Byte)
			}
		}},
		{"pointer", types.NewPointer(types.IntType), Immediate{Ptr: Addr{Region: RegionGlobal, Offset: 16}}, func(t *testing.T, got Immediate) {
			if got.Ptr != (Addr{Region: RegionGlobal, Offset: 16}) {
				t.Errorf("Ptr = %+v, want {GLOBAL 16}", got.Ptr)
			}
		}},
	}

	offset := uint32(0)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dst := Value{Type: c.ty, Addr: &Addr{Region: RegionGlobal, Offset: offset}}
			it.Store(dst, c.imm)
			c.check(t, it.Load(dst))
			offset += 16
		})
	}
}

func TestLoadImmediateWithoutAddr(t *testing.T) {
	it := newTestInterpreter()
	v := Value{Type: types.IntType, Imm: Immediate{Int: 7}}
	if got := it.Load(v); got.Int != 7 {
		t.Errorf("Load of an addressless Value = %+v, want Int=7", got)
	}
}

func TestStoreWithoutAddrPanics(t *testing.T) {
	it := newTestInterpreter()
	defer func() {
		if recover() == nil {
			t.Error("expected Store to panic when dst.Addr is nil")
		}
	}()
	it.Store(Value{Type: types.IntType}, Immediate{Int: 1})
}

func TestStructBytesRoundTrip(t *testing.T) {
	it := newTestInterpreter()
	structType := &types.Type{Kind: types.Struct, RuntimeSize: 4, Alignment: 4, ID: 1, Name: "Pair"}
	dst := Value{Type: structType, Addr: &Addr{Region: RegionStack, Offset: 0}}

	payload := Immediate{Bytes: []byte{1, 2, 3, 4}}
	it.Store(dst, payload)
	got := it.Load(dst)
	if string(got.Bytes) != string(payload.Bytes) {
		t.Errorf("struct bytes round trip = %v, want %v", got.Bytes, payload.Bytes)
	}
}

func TestInternTypeIsStableAndDeduplicates(t *testing.T) {
	it := newTestInterpreter()
	a := it.internType(types.IntType)
	b := it.internType(types.FloatType)
	c := it.internType(types.IntType)

	if a != c {
		t.Errorf("interning the same type twice produced different tags: %d vs %d", a, c)
	}
	if a == b {
		t.Error("interning two different types produced the same tag")
	}
	if got := it.TagType(a); got != types.IntType {
		t.Errorf("TagType(%d) = %v, want IntType", a, got)
	}
	if got := it.TagType(b); got != types.FloatType {
		t.Errorf("TagType(%d) = %v, want FloatType", b, got)
	}
}
