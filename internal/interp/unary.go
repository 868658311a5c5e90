package interp

import (
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/types"
)

// evalUnary implements SPEC_FULL.md §4.6: !/~ rewrite in place via address,
// + is identity, - negates into a fresh immediate, * dereferences, & takes
// the operand's backing address as an immediate pointer.
func (it *Interpreter) evalUnary(u *codetree.UnaryOperator) Value {
	switch u.Op {
	case codetree.UnaryAddressOf:
		operand := it.Eval(u.Operand)
		if operand.Addr == nil {
			panic("interp: address-of a non-addressable operand")
		}
		return Value{Type: u.Type, Imm: Immediate{Ptr: *operand.Addr}}

	case codetree.UnaryDereference:
		operand := it.Load(it.Eval(u.Operand))
		addr := operand.Ptr
		return Value{Type: u.Type, Addr: &addr}

	case codetree.UnaryPlus:
		return it.Eval(u.Operand)

	case codetree.UnaryMinus:
		v := it.Eval(u.Operand)
		in := it.Load(v)
		switch v.Type.Kind {
		case types.Integer:
			return Value{Type: u.Type, Imm: Immediate{Int: -in.Int}}
		case types.Character:
			return Value{Type: u.Type, Imm: Immediate{Byte: byte(-int8(in.Byte))}}
		case types.Real:
			return Value{Type: u.Type, Imm: Immediate{Real: -in.Real}}
		default:
			panic("interp: unary - on unsupported kind " + v.Type.Kind.String())
		}

	case codetree.UnaryNot:
		v := it.Eval(u.Operand)
		in := it.Load(v)
		return it.writeUnaryResult(u.Type, v, Immediate{Bool: !in.Bool})

	case codetree.UnaryBitwiseNot:
		v := it.Eval(u.Operand)
		in := it.Load(v)
		switch v.Type.Kind {
		case types.Integer:
			return it.writeUnaryResult(u.Type, v, Immediate{Int: ^in.Int})
		case types.Character:
			return it.writeUnaryResult(u.Type, v, Immediate{Byte: ^in.Byte})
		default:
			panic("interp: unary ~ on unsupported kind " + v.Type.Kind.String())
		}

	default:
		panic("interp: unhandled unary operator")
	}
}

// writeUnaryResult implements !/~'s in-place rewrite: when the operand is
// addressable, the result is written back through that same address (so
// `!x` mutates x, mirroring evalBinary's compound write-back); otherwise
// (the operand was itself an immediate, e.g. `!(a == b)`) the result is
// just returned as a fresh immediate.
func (it *Interpreter) writeUnaryResult(t *types.Type, operand Value, result Immediate) Value {
	if operand.Addr != nil {
		it.encode(operand.Type, *operand.Addr, result)
		return Value{Type: t, Addr: operand.Addr}
	}
	return Value{Type: t, Imm: result}
}
