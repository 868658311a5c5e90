package interp

import (
	"encoding/binary"

	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/types"
)

// VariadicArg is one decoded element of a variadic call's packed tail, in
// original call-site order.
type VariadicArg struct {
	Type *types.Type
	Imm  Immediate
}

// VariadicArgs decodes the tail of the variadic ccall currently running,
// reading CurrentVariadicCount (tag, value) pairs forward from the tag area
// and reversing them back into call-site order, per spec.md §3.4's
// reverse-packing rule. proc is the ccall's own procedure type, used only to
// find where its declared prefix ends and the tail begins.
func (it *Interpreter) VariadicArgs(proc *types.Type) []VariadicArg {
	_, area := codetree.LayoutVariadicPointer(proc)
	out := make([]VariadicArg, it.CurrentVariadicCount)
	cursor := area
	for i := it.CurrentVariadicCount - 1; i >= 0; i-- {
		tag := binary.LittleEndian.Uint64(it.bytes(Addr{Region: RegionStack, Offset: cursor}, 8))
		cursor += 8
		typ := it.TagType(tag)
		out[i] = VariadicArg{Type: typ, Imm: it.decode(typ, Addr{Region: RegionStack, Offset: cursor})}
		cursor += typ.RuntimeSize
	}
	return out
}
