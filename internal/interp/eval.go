package interp

import (
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// Eval evaluates a resolved expression into a Value, per SPEC_FULL.md §4.6.
func (it *Interpreter) Eval(expr codetree.Expression) Value {
	switch e := expr.(type) {
	case *codetree.Literal:
		return it.evalLiteral(e)
	case *codetree.Address:
		return it.evalAddress(e)
	case *codetree.Offset:
		return it.evalOffset(e)
	case *codetree.TypeCast:
		return it.evalTypeCast(e)
	case *codetree.UnaryOperator:
		return it.evalUnary(e)
	case *codetree.BinaryOperator:
		return it.evalBinary(e)
	case *codetree.ProcedureCall:
		return it.evalProcedureCall(e)
	default:
		panic("interp: eval of unhandled expression node")
	}
}

func (it *Interpreter) evalLiteral(l *codetree.Literal) Value {
	switch l.Type.Kind {
	case types.Integer:
		return Value{Type: l.Type, Imm: Immediate{Int: l.Int}}
	case types.Real:
		return Value{Type: l.Type, Imm: Immediate{Real: l.Real}}
	case types.Bool:
		return Value{Type: l.Type, Imm: Immediate{Bool: l.Bool}}
	case types.Character:
		return Value{Type: l.Type, Imm: Immediate{Byte: l.Byte}}
	case types.Pointer:
		return Value{Type: l.Type, Imm: Immediate{Ptr: Addr{}}}
	default:
		panic("interp: literal of unsupported kind " + l.Type.Kind.String())
	}
}

// evalAddress implements the two shapes SPEC_FULL.md §4.6 describes: with a
// subscript operand (compute base + index*element_size) or without one
// (symbol offset, optionally plus stack_top for STACK, optionally plus a
// constant member offset).
func (it *Interpreter) evalAddress(a *codetree.Address) Value {
	if a.Subscript != nil {
		baseVal := it.Eval(a.Subscript.Base)
		idx := it.Load(it.Eval(a.Subscript.Index))
		index := idx.Int
		if a.Subscript.Index.ExprType().Kind == types.Character {
			index = int64(idx.Byte)
		}

		elem := elementType(baseVal.Type)
		var dataAddr Addr
		if baseVal.Type.Kind == types.ArrayView {
			loaded := it.Load(baseVal)
			dataAddr = loaded.ViewData
		} else if baseVal.Addr != nil {
			dataAddr = *baseVal.Addr
		}
		dataAddr.Offset += uint32(index) * elem.RuntimeSize
		return Value{Type: elem, Addr: &dataAddr}
	}

	if a.Symbol.Address.Kind == symbols.Code {
		return Value{Type: a.Type, Imm: Immediate{ProcBlock: it.Code[a.Symbol.Address.Offset]}}
	}
	if a.Symbol.Address.Kind == symbols.CCall {
		return Value{Type: a.Type, Imm: Immediate{ProcCCall: it.CCalls[a.Symbol.Address.Offset]}}
	}

	base := symbolAddr(a.Symbol, a.Offset)
	return Value{Type: a.Type, Addr: &base}
}

func elementType(container *types.Type) *types.Type {
	switch container.Kind {
	case types.StaticArray, types.ArrayView:
		return container.Element
	default:
		panic("interp: subscript of a non-array type " + container.Kind.String())
	}
}

func (it *Interpreter) evalOffset(o *codetree.Offset) Value {
	base := it.Eval(o.Base)
	if base.Addr == nil {
		panic("interp: Offset of a non-addressable base")
	}
	addr := Addr{Region: base.Addr.Region, Offset: base.Addr.Offset + o.ByteOffset}
	return Value{Type: o.Type, Addr: &addr}
}
