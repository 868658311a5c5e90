package interp

import (
	"encoding/binary"

	"github.com/Zero5620/Kano/internal/types"
)

// PreloadGlobalString writes a compile-time string literal's raw bytes and
// its {length,data} header into the GLOBAL segment. Callers must run this
// for every resolver.StringConst before evaluating global initialisers or
// calling main, per SPEC_FULL.md §4.4's string-literal lowering.
func (it *Interpreter) PreloadGlobalString(headerOffset, dataOffset uint32, data []byte) {
	copy(it.Global[dataOffset:], data)
	it.encode(types.IntType, Addr{Region: RegionGlobal, Offset: headerOffset}, Immediate{Int: int64(len(data))})
	it.encode(it.VoidPointerType, Addr{Region: RegionGlobal, Offset: headerOffset + 8}, Immediate{Ptr: Addr{Region: RegionGlobal, Offset: dataOffset}})
}

// ReadString decodes a `string`-typed Immediate (the raw 16-byte
// {length, data} struct payload VariadicArgs/Load hands back) into a Go
// string, for a ccall's formatter to consume. Bytes must be the STRUCT
// payload copied by decode for Kind Struct/StaticArray.
func (it *Interpreter) ReadString(imm Immediate) string {
	if len(imm.Bytes) < 16 {
		return ""
	}
	length := int64(binary.LittleEndian.Uint64(imm.Bytes[0:8]))
	if length <= 0 {
		return ""
	}
	data := decodeAddr(imm.Bytes[8:16])
	return string(it.bytes(data, uint32(length)))
}
