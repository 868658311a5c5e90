package interp

import (
	"encoding/binary"

	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/types"
)

// argSlot is an evaluated argument waiting to be written into the new
// frame; it's computed while it.StackTop still points at the caller's
// frame, then copied in once the frame pointer has moved.
type argSlot struct {
	typ    *types.Type
	offset uint32
	imm    Immediate
}

// evalProcedureCall implements SPEC_FULL.md §4.6's Procedure_Call algorithm.
// Every argument and the callee itself are evaluated against the caller's
// still-active frame (it.StackTop == prevTop) before the frame pointer
// moves, so none of them can observe the callee's nascent, not-yet-written
// frame.
func (it *Interpreter) evalProcedureCall(call *codetree.ProcedureCall) Value {
	prevTop := it.StackTop

	callee := it.Load(it.Eval(call.Callee))

	slots := make([]argSlot, 0, len(call.Arguments)+len(call.Variadics))
	for i, arg := range call.Arguments {
		v := it.Eval(arg)
		slots = append(slots, argSlot{typ: v.Type, offset: call.ArgumentOffsets[i], imm: it.Load(v)})
	}

	type variadicSlot struct {
		typ *types.Type
		imm Immediate
	}
	variadics := make([]variadicSlot, len(call.Variadics))
	for i, v := range call.Variadics {
		val := it.Eval(v)
		variadics[i] = variadicSlot{typ: val.Type, imm: it.Load(val)}
	}

	newTop := prevTop + uint64(call.StackTopOffset)
	it.StackTop = newTop

	for _, s := range slots {
		it.encode(s.typ, Addr{Region: RegionStack, Offset: s.offset}, s.imm)
	}

	if call.HasVariadics {
		area := call.VariadicTagAreaOffset
		cursor := area
		for i := len(variadics) - 1; i >= 0; i-- {
			v := variadics[i]
			tag := it.internType(v.typ)
			b := it.bytes(Addr{Region: RegionStack, Offset: cursor}, 8)
			binary.LittleEndian.PutUint64(b, tag)
			cursor += 8
			it.encode(v.typ, Addr{Region: RegionStack, Offset: cursor}, v.imm)
			cursor += v.typ.RuntimeSize
		}
		ptr := Addr{}
		if len(variadics) > 0 {
			ptr = Addr{Region: RegionStack, Offset: area}
		}
		it.encode(it.VoidPointerType, Addr{Region: RegionStack, Offset: call.VariadicPointerOffset}, Immediate{Ptr: ptr})
	}

	prevVariadicCount := it.CurrentVariadicCount
	it.CurrentVariadicCount = len(variadics)

	switch {
	case callee.ProcBlock != nil:
		prevProc := it.CurrentProcedure
		it.CurrentProcedure = call.Callee.ExprType()
		it.Interceptor(it, InterceptProcedureCall, nil)
		it.execBlock(callee.ProcBlock)
		it.Interceptor(it, InterceptProcedureReturn, nil)
		it.CurrentProcedure = prevProc
	case callee.ProcCCall != nil:
		it.Interceptor(it, InterceptProcedureCall, nil)
		callee.ProcCCall.Func(it)
		it.Interceptor(it, InterceptProcedureReturn, nil)
	default:
		panic("interp: call of a non-procedure value")
	}
	it.CurrentVariadicCount = prevVariadicCount

	var result Value
	if call.HasReturn {
		addr := Addr{Region: RegionStack, Offset: call.ReturnOffset}
		result = Value{Type: call.Type, Addr: &addr}
		result = Value{Type: call.Type, Imm: it.Load(result)}
	} else {
		result = Value{Type: call.Type}
	}

	it.StackTop = prevTop
	return result
}

// ArgValue reads the i-th declared argument of the currently-active ccall,
// per the foreign-call ABI in SPEC_FULL.md §4.5: arguments are marshalled
// at the top of the stack using the same layout computed by
// codetree.LayoutProcedureFrame.
func (it *Interpreter) ArgValue(proc *types.Type, index int) Value {
	_, _, argOffsets, _ := codetree.LayoutProcedureFrame(proc)
	addr := Addr{Region: RegionStack, Offset: argOffsets[index]}
	return Value{Type: proc.Arguments[index], Addr: &addr}
}

// SetReturn writes a ccall's return value into its reserved slot.
func (it *Interpreter) SetReturn(proc *types.Type, imm Immediate) {
	returnOffset, hasReturn, _, _ := codetree.LayoutProcedureFrame(proc)
	if !hasReturn {
		panic("interp: SetReturn called on a void ccall")
	}
	it.encode(proc.ReturnType, Addr{Region: RegionStack, Offset: returnOffset}, imm)
}
