package resolver

import (
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// StringConst is a compile-time string literal's backing storage: a
// {length,data} string-struct header and the raw bytes it points to, both
// bump-allocated in the GLOBAL segment by the address planner. A string
// literal has no runtime construction step (unlike a struct literal), so
// this is resolved once and copied verbatim into the interpreter's GLOBAL
// segment before the program's global initialisers run.
type StringConst struct {
	HeaderOffset uint32
	DataOffset   uint32
	Bytes        []byte
}

// StringConsts returns every string literal interned while resolving. The
// host (see pkg/kano) must copy each one into the interpreter's GLOBAL
// segment, e.g. via Interpreter.PreloadGlobalString, before evaluating any
// global initialiser or calling main.
func (r *Resolver) StringConsts() []StringConst { return r.stringConsts }

// internStringLiteral lowers a string literal to an Address over a
// synthetic constant symbol backed by GLOBAL storage, per SPEC_FULL.md
// §4.4: the built-in `string` type has no room for its own contents inline
// (it is just a {length,data} header), so string literals always live in
// the GLOBAL segment rather than being synthesised as an immediate value.
func (r *Resolver) internStringLiteral(s string) *codetree.Address {
	raw := []byte(s)
	dataSize := uint32(len(raw))
	if dataSize == 0 {
		dataSize = 1 // keep the allocation well-formed for the empty string
	}
	dataOffset := r.allocate(symbols.Global, &types.Type{RuntimeSize: dataSize, Alignment: 1})
	headerOffset := r.allocate(symbols.Global, r.StringType)
	r.stringConsts = append(r.stringConsts, StringConst{HeaderOffset: headerOffset, DataOffset: dataOffset, Bytes: raw})

	sym := &symbols.Symbol{
		Type:    r.StringType,
		Flags:   symbols.Constant | symbols.ConstExpr,
		Address: symbols.Address{Kind: symbols.Global, Offset: uint64(headerOffset)},
	}
	addr := &codetree.Address{Symbol: sym}
	addr.Type = r.StringType
	addr.Flags = symbols.Constant | symbols.ConstExpr
	return addr
}
