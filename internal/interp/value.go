// Package interp is the stack-based tree-walking interpreter: byte
// segments for STACK and GLOBAL memory, a discriminated evaluation value,
// operator dispatch tables, call-frame marshalling, and the single-shot
// constant evaluator the resolver reuses to fold array sizes.
//
// Grounded on original_source/Interp.cpp, shaped the way the teacher splits
// its evaluator across internal/interp/value.go, binary_ops.go and
// interp.go. The interpreter never imports internal/resolver — the "pointer
// back to the resolver" SPEC_FULL.md §4.6 describes for looking up built-in
// types at runtime (e.g. *void for variadic tags) is instead just the
// already-resolved *types.Type values passed in at Init, which avoids an
// import cycle (internal/resolver imports internal/interp for constant
// folding) while keeping the same runtime capability.
package interp

import (
	"encoding/binary"
	"math"

	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/types"
)

// Region names which memory segment an Addr refers to.
type Region uint8

const (
	RegionNone Region = iota
	RegionStack
	RegionGlobal
)

// Addr is a location in the interpreter's memory: for RegionStack, Offset is
// relative to the active call frame's base (added to StackTop at access
// time); for RegionGlobal it is an absolute byte offset.
type Addr struct {
	Region Region
	Offset uint32
}

// CCall is a registered foreign procedure, per SPEC_FULL.md §4.5's ABI
// contract: it reads its arguments directly off the top of the stack and,
// if Proc.ReturnType is non-nil, writes the return value just before them.
type CCall struct {
	Name string
	Proc *types.Type
	Func func(it *Interpreter)
}

// Immediate is the decoded payload of a Value that isn't backed by memory
// (a literal, or the result of an arithmetic operator). Only the field
// matching the value's Kind is meaningful.
type Immediate struct {
	Int       int64
	Real      float64
	Byte      byte
	Bool      bool
	Ptr       Addr // POINTER payload: the address pointed to (RegionNone = null)
	ViewLen   int64
	ViewData  Addr
	ProcBlock *codetree.Block // user-defined procedure value
	ProcCCall *CCall          // foreign procedure value
	Bytes     []byte          // STRUCT/STATIC_ARRAY payload, copied verbatim out of its segment
}

// Value is the interpreter's unit of evaluation: either an address into a
// memory segment (Addr != nil, the common case for anything resulting from
// evaluating an Address/Subscript/Offset node) or an immediate (Addr == nil,
// the result of an arithmetic/literal/procedure-call expression). Reads
// follow Addr when set; writes require it.
type Value struct {
	Type *types.Type
	Addr *Addr
	Imm  Immediate
}

// Load returns v's value as an Immediate, reading through Addr if set.
func (it *Interpreter) Load(v Value) Immediate {
	if v.Addr == nil {
		return v.Imm
	}
	return it.decode(v.Type, *v.Addr)
}

// Store writes imm into dst, which must carry a non-nil Addr.
func (it *Interpreter) Store(dst Value, imm Immediate) {
	if dst.Addr == nil {
		panic("interp: store to a non-addressable value")
	}
	it.encode(dst.Type, *dst.Addr, imm)
}

func (it *Interpreter) bytes(a Addr, size uint32) []byte {
	switch a.Region {
	case RegionStack:
		base := it.StackTop + uint64(a.Offset)
		return it.Stack[base : base+uint64(size)]
	case RegionGlobal:
		return it.Global[a.Offset : uint64(a.Offset)+uint64(size)]
	default:
		panic("interp: dereference of a null or invalid address")
	}
}

func (it *Interpreter) decode(t *types.Type, a Addr) Immediate {
	b := it.bytes(a, t.RuntimeSize)
	switch t.Kind {
	case types.Character:
		return Immediate{Byte: b[0]}
	case types.Integer:
		return Immediate{Int: int64(binary.LittleEndian.Uint64(b))}
	case types.Real:
		return Immediate{Real: math.Float64frombits(binary.LittleEndian.Uint64(b))}
	case types.Bool:
		return Immediate{Bool: b[0] != 0}
	case types.Pointer:
		return Immediate{Ptr: decodeAddr(b)}
	case types.ArrayView:
		return Immediate{
			ViewLen:  int64(binary.LittleEndian.Uint64(b[0:8])),
			ViewData: decodeAddr(b[8:16]),
		}
	case types.Struct, types.StaticArray:
		return Immediate{Bytes: append([]byte(nil), b...)}
	default:
		panic("interp: decode of unsupported kind " + t.Kind.String())
	}
}

func (it *Interpreter) encode(t *types.Type, a Addr, imm Immediate) {
	b := it.bytes(a, t.RuntimeSize)
	switch t.Kind {
	case types.Character:
		b[0] = imm.Byte
	case types.Integer:
		binary.LittleEndian.PutUint64(b, uint64(imm.Int))
	case types.Real:
		binary.LittleEndian.PutUint64(b, math.Float64bits(imm.Real))
	case types.Bool:
		if imm.Bool {
			b[0] = 1
		} else {
			b[0] = 0
		}
	case types.Pointer:
		encodeAddr(b, imm.Ptr)
	case types.ArrayView:
		binary.LittleEndian.PutUint64(b[0:8], uint64(imm.ViewLen))
		encodeAddr(b[8:16], imm.ViewData)
	case types.Struct, types.StaticArray:
		copy(b, imm.Bytes)
	default:
		panic("interp: encode of unsupported kind " + t.Kind.String())
	}
}

// Addr packs into Pointer-sized (8-byte) storage as a 1-byte region tag
// followed by a 4-byte little-endian offset; the remaining bytes are unused.
// This is an internal wire format, not part of the ccall ABI contract.
func decodeAddr(b []byte) Addr {
	return Addr{Region: Region(b[0]), Offset: binary.LittleEndian.Uint32(b[1:5])}
}

func encodeAddr(b []byte, a Addr) {
	b[0] = byte(a.Region)
	binary.LittleEndian.PutUint32(b[1:5], a.Offset)
}
