package ast

import "github.com/Zero5620/Kano/internal/token"

// NamedType refers to a built-in or user-declared type by identifier:
// `byte`, `int`, `float`, `bool`, `string`, or a struct name.
type NamedType struct {
	Name     string
	Position token.Position
}

func (n *NamedType) Pos() token.Position { return n.Position }
func (n *NamedType) typeExprNode()       {}
func (n *NamedType) String() string      { return n.Name }

// VariadicType marks a procedure's final argument as the variadic ellipsis
// `...`. It is only valid as the last entry in a procedure's argument list.
type VariadicType struct {
	Position token.Position
}

func (v *VariadicType) Pos() token.Position { return v.Position }
func (v *VariadicType) typeExprNode()       {}
func (v *VariadicType) String() string      { return "..." }

// PointerType is `*Base`. A nil Base (spelled `*void`) denotes the untyped
// pointer type.
type PointerType struct {
	Base     TypeExpr // nil for *void
	Position token.Position
}

func (p *PointerType) Pos() token.Position { return p.Position }
func (p *PointerType) typeExprNode()       {}
func (p *PointerType) String() string      { return "pointer" }

// ProcedureType is a procedure's type signature used in a variable
// declaration (as opposed to a ProcedureLiteral, which carries a body).
type ProcedureType struct {
	Arguments  []TypeExpr
	ReturnType TypeExpr // nil for void
	Position   token.Position
}

func (p *ProcedureType) Pos() token.Position { return p.Position }
func (p *ProcedureType) typeExprNode()       {}
func (p *ProcedureType) String() string      { return "proc-type" }

// StaticArrayType is `[count] Element`, where count is any constant
// expression the resolver can fold to an integer.
type StaticArrayType struct {
	Element  TypeExpr
	Count    Expression
	Position token.Position
}

func (s *StaticArrayType) Pos() token.Position { return s.Position }
func (s *StaticArrayType) typeExprNode()       {}
func (s *StaticArrayType) String() string      { return "static-array" }

// ArrayViewType is `[] Element`, a runtime-sized (length, data) view.
type ArrayViewType struct {
	Element  TypeExpr
	Position token.Position
}

func (a *ArrayViewType) Pos() token.Position { return a.Position }
func (a *ArrayViewType) typeExprNode()       {}
func (a *ArrayViewType) String() string      { return "array-view" }
