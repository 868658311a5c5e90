package codetree

import "github.com/Zero5620/Kano/internal/types"

func alignUp(offset, alignment uint32) uint32 {
	if alignment <= 1 {
		return offset
	}
	return (offset + alignment - 1) &^ (alignment - 1)
}

// LayoutVariadicPointer returns the offset, within a variadic procedure's own
// frame, of its trailing pointer slot (spec.md §4.5's "final declared
// argument slot") — immediately past the return slot and declared
// arguments, aligned to a pointer. The tag area begins one pointer-width
// past it. A ccall reads these to locate its variadic tail without needing
// the call-site node, which only the resolver sees.
func LayoutVariadicPointer(proc *types.Type) (pointerOffset, tagAreaOffset uint32) {
	_, _, _, base := LayoutProcedureFrame(proc)
	pointerOffset = alignUp(base, types.PointerSize)
	tagAreaOffset = pointerOffset + types.PointerSize
	return
}

// LayoutProcedureFrame computes the call-frame layout SPEC_FULL.md §3.4
// describes: the return slot (if any) followed by the declared arguments in
// order, each bump-allocated and aligned to its own type's alignment,
// starting at offset 0 of the callee's frame. Both the resolver (to fill in
// ProcedureCall's offset fields) and the interpreter's ccall argument
// accessors use this so they agree bit-exactly on the layout without the
// interpreter needing to import the resolver.
func LayoutProcedureFrame(proc *types.Type) (returnOffset uint32, hasReturn bool, argOffsets []uint32, frameSize uint32) {
	var cursor uint32
	hasReturn = proc.ReturnType != nil
	if hasReturn {
		cursor = alignUp(cursor, proc.ReturnType.Alignment)
		returnOffset = cursor
		cursor += proc.ReturnType.RuntimeSize
	}
	argOffsets = make([]uint32, len(proc.Arguments))
	for i, arg := range proc.Arguments {
		cursor = alignUp(cursor, arg.Alignment)
		argOffsets[i] = cursor
		cursor += arg.RuntimeSize
	}
	frameSize = cursor
	return
}
