package interp

import (
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/types"
)

// evalBinary implements SPEC_FULL.md §4.6: evaluate right first and
// materialise it into an immediate (so a procedure call in the left
// subtree can't alias a still-addressed right operand), then evaluate
// left, then dispatch. Compound variants write the result back through
// left's address.
func (it *Interpreter) evalBinary(b *codetree.BinaryOperator) Value {
	rightImm := it.Load(it.Eval(b.Right))
	left := it.Eval(b.Left)
	leftImm := it.Load(left)

	opKind := operandKind(b.Left.ExprType(), b.Right.ExprType())
	result := applyBinary(b.Op, opKind, b.Type, leftImm, rightImm)

	if b.Compound {
		if left.Addr == nil {
			panic("interp: compound assignment to a non-addressable lvalue")
		}
		it.encode(left.Type, *left.Addr, result)
		return Value{Type: left.Type, Addr: left.Addr}
	}

	return Value{Type: b.Type, Imm: result}
}

// operandKind picks the type kind arithmetic should be performed in:
// types.Pointer when the left operand is a pointer, else the left operand's
// kind (the resolver has already guaranteed they match or were cast alike).
func operandKind(left, right *types.Type) types.Kind {
	if left.Kind == types.Pointer {
		return types.Pointer
	}
	return left.Kind
}

func applyBinary(op codetree.BinaryOperatorKind, kind types.Kind, resultType *types.Type, l, r Immediate) Immediate {
	switch kind {
	case types.Integer:
		return applyIntegerBinary(op, l.Int, r.Int, resultType)
	case types.Character:
		return applyCharacterBinary(op, l.Byte, r.Byte, resultType)
	case types.Real:
		return applyRealBinary(op, l.Real, r.Real, resultType)
	case types.Bool:
		return applyBoolBinary(op, l.Bool, r.Bool)
	case types.Pointer:
		elemSize := uint32(1)
		if resultType.Kind == types.Pointer && resultType.Base != nil {
			elemSize = resultType.Base.RuntimeSize
			if elemSize == 0 {
				elemSize = 1
			}
		}
		return applyPointerBinary(op, l, r, elemSize)
	default:
		panic("interp: binary operator on unsupported kind " + kind.String())
	}
}

func applyIntegerBinary(op codetree.BinaryOperatorKind, l, r int64, resultType *types.Type) Immediate {
	switch op {
	case codetree.BinAdd:
		return Immediate{Int: l + r}
	case codetree.BinSub:
		return Immediate{Int: l - r}
	case codetree.BinMul:
		return Immediate{Int: l * r}
	case codetree.BinDiv:
		return Immediate{Int: l / r}
	case codetree.BinRem:
		return Immediate{Int: l % r}
	case codetree.BinBitwiseAnd:
		return Immediate{Int: l & r}
	case codetree.BinBitwiseOr:
		return Immediate{Int: l | r}
	case codetree.BinBitwiseXor:
		return Immediate{Int: l ^ r}
	case codetree.BinShiftLeft:
		return Immediate{Int: l << uint(r)}
	case codetree.BinShiftRight:
		return Immediate{Int: l >> uint(r)}
	case codetree.BinEqual:
		return Immediate{Bool: l == r}
	case codetree.BinNotEqual:
		return Immediate{Bool: l != r}
	case codetree.BinLess:
		return Immediate{Bool: l < r}
	case codetree.BinLessEqual:
		return Immediate{Bool: l <= r}
	case codetree.BinGreater:
		return Immediate{Bool: l > r}
	case codetree.BinGreaterEqual:
		return Immediate{Bool: l >= r}
	case codetree.BinLogicalAnd:
		return Immediate{Bool: l != 0 && r != 0}
	case codetree.BinLogicalOr:
		return Immediate{Bool: l != 0 || r != 0}
	default:
		panic("interp: unhandled integer binary operator")
	}
}

func applyCharacterBinary(op codetree.BinaryOperatorKind, l, r byte, resultType *types.Type) Immediate {
	switch op {
	case codetree.BinAdd:
		return Immediate{Byte: l + r}
	case codetree.BinSub:
		return Immediate{Byte: l - r}
	case codetree.BinMul:
		return Immediate{Byte: l * r}
	case codetree.BinDiv:
		return Immediate{Byte: l / r}
	case codetree.BinRem:
		return Immediate{Byte: l % r}
	case codetree.BinBitwiseAnd:
		return Immediate{Byte: l & r}
	case codetree.BinBitwiseOr:
		return Immediate{Byte: l | r}
	case codetree.BinBitwiseXor:
		return Immediate{Byte: l ^ r}
	case codetree.BinShiftLeft:
		return Immediate{Byte: l << r}
	case codetree.BinShiftRight:
		return Immediate{Byte: l >> r}
	case codetree.BinEqual:
		return Immediate{Bool: l == r}
	case codetree.BinNotEqual:
		return Immediate{Bool: l != r}
	case codetree.BinLess:
		return Immediate{Bool: l < r}
	case codetree.BinLessEqual:
		return Immediate{Bool: l <= r}
	case codetree.BinGreater:
		return Immediate{Bool: l > r}
	case codetree.BinGreaterEqual:
		return Immediate{Bool: l >= r}
	case codetree.BinLogicalAnd:
		return Immediate{Bool: l != 0 && r != 0}
	case codetree.BinLogicalOr:
		return Immediate{Bool: l != 0 || r != 0}
	default:
		panic("interp: unhandled character binary operator")
	}
}

func applyRealBinary(op codetree.BinaryOperatorKind, l, r float64, resultType *types.Type) Immediate {
	switch op {
	case codetree.BinAdd:
		return Immediate{Real: l + r}
	case codetree.BinSub:
		return Immediate{Real: l - r}
	case codetree.BinMul:
		return Immediate{Real: l * r}
	case codetree.BinDiv:
		return Immediate{Real: l / r}
	case codetree.BinEqual:
		return Immediate{Bool: l == r}
	case codetree.BinNotEqual:
		return Immediate{Bool: l != r}
	case codetree.BinLess:
		return Immediate{Bool: l < r}
	case codetree.BinLessEqual:
		return Immediate{Bool: l <= r}
	case codetree.BinGreater:
		return Immediate{Bool: l > r}
	case codetree.BinGreaterEqual:
		return Immediate{Bool: l >= r}
	case codetree.BinLogicalAnd:
		return Immediate{Bool: l != 0 && r != 0}
	case codetree.BinLogicalOr:
		return Immediate{Bool: l != 0 || r != 0}
	default:
		panic("interp: unhandled real binary operator")
	}
}

func applyBoolBinary(op codetree.BinaryOperatorKind, l, r bool) Immediate {
	switch op {
	case codetree.BinEqual:
		return Immediate{Bool: l == r}
	case codetree.BinNotEqual:
		return Immediate{Bool: l != r}
	case codetree.BinLogicalAnd:
		return Immediate{Bool: l && r}
	case codetree.BinLogicalOr:
		return Immediate{Bool: l || r}
	default:
		panic("interp: unhandled bool binary operator")
	}
}

// applyPointerBinary implements pointer arithmetic (+ and - against an
// INTEGER offset, scaled by the pointee's element size in bytes — "element
// size byte units, not elements" per spec.md §4.3) and pointer comparisons.
func applyPointerBinary(op codetree.BinaryOperatorKind, l, r Immediate, elemSize uint32) Immediate {
	switch op {
	case codetree.BinAdd:
		return Immediate{Ptr: Addr{Region: l.Ptr.Region, Offset: l.Ptr.Offset + uint32(r.Int)*elemSize}}
	case codetree.BinSub:
		return Immediate{Ptr: Addr{Region: l.Ptr.Region, Offset: l.Ptr.Offset - uint32(r.Int)*elemSize}}
	case codetree.BinEqual:
		return Immediate{Bool: l.Ptr == r.Ptr}
	case codetree.BinNotEqual:
		return Immediate{Bool: l.Ptr != r.Ptr}
	case codetree.BinLess:
		return Immediate{Bool: l.Ptr.Offset < r.Ptr.Offset}
	case codetree.BinLessEqual:
		return Immediate{Bool: l.Ptr.Offset <= r.Ptr.Offset}
	case codetree.BinGreater:
		return Immediate{Bool: l.Ptr.Offset > r.Ptr.Offset}
	case codetree.BinGreaterEqual:
		return Immediate{Bool: l.Ptr.Offset >= r.Ptr.Offset}
	case codetree.BinLogicalAnd:
		return Immediate{Bool: l.Ptr.Region != RegionNone && r.Ptr.Region != RegionNone}
	case codetree.BinLogicalOr:
		return Immediate{Bool: l.Ptr.Region != RegionNone || r.Ptr.Region != RegionNone}
	default:
		panic("interp: unhandled pointer binary operator")
	}
}
