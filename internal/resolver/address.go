package resolver

import (
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

func alignUp(offset, alignment uint32) uint32 {
	if alignment <= 1 {
		return offset
	}
	return (offset + alignment - 1) &^ (alignment - 1)
}

// allocate implements SPEC_FULL.md §4.2's address planner: align the
// segment cursor up to t's alignment, record the offset, advance by t's
// size. kind must be symbols.Stack or symbols.Global.
func (r *Resolver) allocate(kind symbols.AddressKind, t *types.Type) uint32 {
	switch kind {
	case symbols.Stack:
		r.stackCursor = alignUp(r.stackCursor, t.Alignment)
		offset := r.stackCursor
		r.stackCursor += t.RuntimeSize
		if r.stackCursor > r.maxStack {
			r.maxStack = r.stackCursor
		}
		return offset
	case symbols.Global:
		r.globalCursor = alignUp(r.globalCursor, t.Alignment)
		offset := r.globalCursor
		r.globalCursor += t.RuntimeSize
		return offset
	default:
		panic("resolver: allocate called with a non-memory address kind")
	}
}

// saveStack/restoreStack bracket a block or procedure body: the STACK
// cursor is saved on entry and restored on exit so sibling blocks reuse the
// same stack space, per SPEC_FULL.md §4.2.
func (r *Resolver) saveStack() uint32        { return r.stackCursor }
func (r *Resolver) restoreStack(mark uint32) { r.stackCursor = mark }

// layoutStruct resolves a struct body's member offsets: the STACK cursor
// is borrowed starting at 0 (struct members have no segment of their own),
// and the struct's runtime size is the final cursor rounded up to the
// first member's alignment.
func (r *Resolver) layoutStruct(members []types.Member) (size, alignment uint32) {
	mark := r.saveStack()
	r.stackCursor = 0
	defer r.restoreStack(mark)

	if len(members) == 0 {
		return 0, 1
	}
	alignment = members[0].Type.Alignment
	for i := range members {
		r.stackCursor = alignUp(r.stackCursor, members[i].Type.Alignment)
		members[i].Offset = r.stackCursor
		r.stackCursor += members[i].Type.RuntimeSize
	}
	return alignUp(r.stackCursor, alignment), alignment
}
