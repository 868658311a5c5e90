// Package types implements Kano's closed set of runtime types: their
// memory layout (size and alignment) and the structural equality rules the
// resolver uses to type-check expressions and match operator overloads.
//
// Grounded on the original Code_Type hierarchy (original_source/SyntaxNode.h,
// Resolver.cpp code_type_are_same) and shaped, in naming and doc density,
// after the teacher's type system package (internal/interp/types/type_system.go).
package types

import "fmt"

// Kind is the closed set of type kinds described by SPEC_FULL.md §3.1.
type Kind int

const (
	Null Kind = iota
	Character
	Integer
	Real
	Bool
	Pointer
	Procedure
	Struct
	StaticArray
	ArrayView
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "NULL"
	case Character:
		return "CHARACTER"
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	case Bool:
		return "BOOL"
	case Pointer:
		return "POINTER"
	case Procedure:
		return "PROCEDURE"
	case Struct:
		return "STRUCT"
	case StaticArray:
		return "STATIC_ARRAY"
	case ArrayView:
		return "ARRAY_VIEW"
	default:
		return "UNKNOWN"
	}
}

// Pointer-sized machine constants. Kano targets a 64-bit virtual machine:
// pointers, the int64 length word of a view, and of an array_view layout,
// are all 8 bytes.
const PointerSize = 8

// Member describes one field of a struct type, with its byte offset inside
// the struct's stack-allocated layout.
type Member struct {
	Name   string
	Type   *Type
	Offset uint32
}

// Type is a single runtime type. Only the fields relevant to Kind are set;
// the zero value of the others is meaningless for a given Kind.
type Type struct {
	Kind         Kind
	RuntimeSize  uint32
	Alignment    uint32

	// POINTER
	Base *Type

	// PROCEDURE
	Arguments  []*Type
	ReturnType *Type // nil for void
	Variadic   bool
	Name       string // procedure name, for diagnostics only

	// STRUCT
	ID      uint64 // identity of the declaring block; drives equality
	Members []Member

	// STATIC_ARRAY / ARRAY_VIEW
	Element      *Type
	ElementCount uint32 // STATIC_ARRAY only
}

// Built-in singleton types. These are allocated once and shared for the
// lifetime of a resolver/interpreter pair, per SPEC_FULL.md §3.3.
var (
	NullType = &Type{Kind: Null, RuntimeSize: 0, Alignment: 1}
	ByteType = &Type{Kind: Character, RuntimeSize: 1, Alignment: 1}
	IntType  = &Type{Kind: Integer, RuntimeSize: 8, Alignment: 8}
	FloatType = &Type{Kind: Real, RuntimeSize: 8, Alignment: 8}
	BoolType = &Type{Kind: Bool, RuntimeSize: 1, Alignment: 1}

	// VoidPointerType is `*void`, the type of the null-pointer literal and
	// of variadic type tags.
	VoidPointerType = &Type{Kind: Pointer, RuntimeSize: PointerSize, Alignment: PointerSize, Base: NullType}
)

// NewPointer builds a POINTER type over base.
func NewPointer(base *Type) *Type {
	return &Type{Kind: Pointer, RuntimeSize: PointerSize, Alignment: PointerSize, Base: base}
}

// NewArrayView builds an ARRAY_VIEW type: { int64 length; pointer data; }.
func NewArrayView(element *Type) *Type {
	return &Type{Kind: ArrayView, RuntimeSize: 16, Alignment: 8, Element: element}
}

// NewStaticArray builds a STATIC_ARRAY type of count elements.
func NewStaticArray(element *Type, count uint32) *Type {
	return &Type{
		Kind:         StaticArray,
		Element:      element,
		ElementCount: count,
		RuntimeSize:  element.RuntimeSize * count,
		Alignment:    element.Alignment,
	}
}

// String renders the type the way diagnostics quote it, e.g. "*int" or
// "proc (int, int) -> int".
func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case Null:
		return "void"
	case Character:
		return "byte"
	case Integer:
		return "int"
	case Real:
		return "float"
	case Bool:
		return "bool"
	case Pointer:
		return "*" + t.Base.String()
	case Procedure:
		s := "proc ("
		for i, a := range t.Arguments {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ")"
		if t.ReturnType != nil {
			s += " -> " + t.ReturnType.String()
		}
		return s
	case Struct:
		return t.Name
	case ArrayView:
		return "[] " + t.Element.String()
	case StaticArray:
		return fmt.Sprintf("[%d] %s", t.ElementCount, t.Element.String())
	default:
		return "?"
	}
}
