package resolver

import (
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/types"
)

type unaryOverload struct {
	Op      codetree.UnaryOperatorKind
	Operand *types.Type
	Result  *types.Type
}

type binaryOverload struct {
	Op     codetree.BinaryOperatorKind
	Left   *types.Type
	Right  *types.Type
	Result *types.Type
}

// registerOperators installs every overload from SPEC_FULL.md §4.3, in the
// priority order registration-order match requires.
func (r *Resolver) registerOperators() {
	integer, character, real, boolean := types.IntType, types.ByteType, types.FloatType, types.BoolType

	for _, t := range []*types.Type{integer, character} {
		r.unary = append(r.unary,
			unaryOverload{codetree.UnaryPlus, t, t},
			unaryOverload{codetree.UnaryMinus, t, t},
			unaryOverload{codetree.UnaryBitwiseNot, t, t},
		)
	}
	r.unary = append(r.unary,
		unaryOverload{codetree.UnaryPlus, real, real},
		unaryOverload{codetree.UnaryMinus, real, real},
		unaryOverload{codetree.UnaryNot, boolean, boolean},
	)

	arithmeticBitwise := []codetree.BinaryOperatorKind{
		codetree.BinAdd, codetree.BinSub, codetree.BinMul, codetree.BinDiv, codetree.BinRem,
		codetree.BinBitwiseAnd, codetree.BinBitwiseOr, codetree.BinBitwiseXor,
		codetree.BinShiftLeft, codetree.BinShiftRight,
	}
	for _, op := range arithmeticBitwise {
		r.binary = append(r.binary,
			binaryOverload{op, integer, integer, integer},
			binaryOverload{op, character, character, character},
		)
	}
	for _, op := range []codetree.BinaryOperatorKind{codetree.BinAdd, codetree.BinSub, codetree.BinMul, codetree.BinDiv} {
		r.binary = append(r.binary, binaryOverload{op, real, real, real})
	}

	comparisons := []codetree.BinaryOperatorKind{
		codetree.BinEqual, codetree.BinNotEqual, codetree.BinLess,
		codetree.BinLessEqual, codetree.BinGreater, codetree.BinGreaterEqual,
	}
	for _, op := range comparisons {
		for _, t := range []*types.Type{integer, character, real} {
			r.binary = append(r.binary, binaryOverload{op, t, t, boolean})
		}
	}
	r.binary = append(r.binary,
		binaryOverload{codetree.BinEqual, boolean, boolean, boolean},
		binaryOverload{codetree.BinNotEqual, boolean, boolean, boolean},
	)

	for _, t := range []codetree.BinaryOperatorKind{codetree.BinLogicalAnd, codetree.BinLogicalOr} {
		for _, operand := range []*types.Type{boolean, character, integer, real} {
			r.binary = append(r.binary, binaryOverload{t, operand, operand, boolean})
		}
	}
}

// matchUnary finds the first registered overload whose operand type equals
// operand, or accepts it via an implicit cast; returns the result type.
func (r *Resolver) matchUnary(op codetree.UnaryOperatorKind, operand *types.Type) (*types.Type, bool, bool) {
	for _, o := range r.unary {
		if o.Op != op {
			continue
		}
		if types.Same(o.Operand, operand) {
			return o.Result, false, true
		}
		if implicitCast(operand, o.Operand) {
			return o.Result, true, true
		}
	}
	return nil, false, false
}

// matchBinary finds the first registered overload matching op against
// left/right, each independently allowed to match via an implicit cast.
// recursePointerBase mirrors original_source/Resolver.cpp's asymmetric
// recurse_pointer_type usage: the left-operand comparison never recurses
// into a pointer's base type (so two procedure-typed operands that differ
// only in what a pointer argument points to can still match), while the
// right-operand comparison does.
func (r *Resolver) matchBinary(op codetree.BinaryOperatorKind, left, right *types.Type) (result *types.Type, castLeft, castRight, ok bool) {
	for _, o := range r.binary {
		if o.Op != op {
			continue
		}
		leftOK := types.Equal(o.Left, left, false) || implicitCast(left, o.Left)
		rightOK := types.Same(o.Right, right) || implicitCast(right, o.Right)
		if leftOK && rightOK {
			return o.Result, !types.Equal(o.Left, left, false), !types.Same(o.Right, right), true
		}
	}
	return nil, false, false, false
}
