package resolver

import "github.com/Zero5620/Kano/internal/types"

// implicitCast reports whether a value of type from can be implicitly
// converted to type to, per SPEC_FULL.md §4.4.1's lattice. The REAL→BOOL
// entry appears exactly once here — SPEC_FULL.md §4 resolves the
// upstream table's apparent duplicate entry as a bug, not reproduced.
func implicitCast(from, to *types.Type) bool {
	if types.Same(from, to) {
		return true
	}
	switch from.Kind {
	case types.Bool:
		return to.Kind == types.Character || to.Kind == types.Integer
	case types.Character:
		return to.Kind == types.Integer || to.Kind == types.Real || to.Kind == types.Bool
	case types.Integer:
		return to.Kind == types.Real || to.Kind == types.Bool
	case types.Real:
		return to.Kind == types.Bool
	case types.Pointer:
		return to.Kind == types.Pointer && (isVoidPointer(from) || isVoidPointer(to))
	case types.StaticArray:
		return to.Kind == types.ArrayView && types.Same(from.Element, to.Element)
	default:
		return false
	}
}

func isVoidPointer(t *types.Type) bool {
	return t.Kind == types.Pointer && t.Base != nil && t.Base.Kind == types.Null
}

// explicitCast reports whether an explicit `cast(T) expr` between from and
// to is allowed, per SPEC_FULL.md §4.4: any numeric pair, BOOL<->numeric,
// POINTER<->POINTER, matching PROCEDURE signatures, STATIC_ARRAY->ARRAY_VIEW
// of the same element type. Implicit casts are always allowed explicitly too.
func explicitCast(from, to *types.Type) bool {
	if implicitCast(from, to) {
		return true
	}
	if isNumeric(from) && isNumeric(to) {
		return true
	}
	if (from.Kind == types.Bool && isNumeric(to)) || (isNumeric(from) && to.Kind == types.Bool) {
		return true
	}
	if from.Kind == types.Pointer && to.Kind == types.Pointer {
		return true
	}
	if from.Kind == types.Procedure && to.Kind == types.Procedure {
		return types.Equal(from, to, true)
	}
	if from.Kind == types.StaticArray && to.Kind == types.ArrayView {
		return types.Same(from.Element, to.Element)
	}
	return false
}

func isNumeric(t *types.Type) bool {
	switch t.Kind {
	case types.Character, types.Integer, types.Real:
		return true
	default:
		return false
	}
}
