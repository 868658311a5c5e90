package types

// Equal reports whether a and b are structurally identical, per
// SPEC_FULL.md §3.1: same kind, size and alignment, then recurse on
// kind-specific fields.
//
// recursePointerBase controls whether POINTER equality recurses into the
// base type. The binary-operator overload matcher passes false to compare
// two procedure signatures that only differ in the type a pointer argument
// points to (see original_source/Resolver.cpp code_type_are_same and its
// recurse_pointer_type parameter).
func Equal(a, b *Type, recursePointerBase bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.RuntimeSize != b.RuntimeSize || a.Alignment != b.Alignment {
		return false
	}

	switch a.Kind {
	case Pointer:
		if !recursePointerBase {
			return true
		}
		return Equal(a.Base, b.Base, recursePointerBase)

	case Procedure:
		if (a.ReturnType == nil) != (b.ReturnType == nil) {
			return false
		}
		if a.ReturnType != nil && !Equal(a.ReturnType, b.ReturnType, recursePointerBase) {
			return false
		}
		if len(a.Arguments) != len(b.Arguments) {
			return false
		}
		for i := range a.Arguments {
			if !Equal(a.Arguments[i], b.Arguments[i], recursePointerBase) {
				return false
			}
		}
		return a.Variadic == b.Variadic

	case Struct:
		return a.ID == b.ID

	case StaticArray:
		return a.ElementCount == b.ElementCount && Equal(a.Element, b.Element, recursePointerBase)

	case ArrayView:
		return Equal(a.Element, b.Element, recursePointerBase)

	default:
		return true
	}
}

// Same is Equal with pointer-base recursion enabled, the default comparison
// used everywhere except the binary-operator overload matcher.
func Same(a, b *Type) bool {
	return Equal(a, b, true)
}
