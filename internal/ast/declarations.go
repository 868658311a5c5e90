package ast

import "github.com/Zero5620/Kano/internal/token"

// Declaration binds a name to a type and/or an initializer: `name : [type] [= init]`.
// It is a Statement so it can appear directly in a block, and the resolver
// also reuses it (without an Initializer) to describe procedure arguments
// and struct members.
type Declaration struct {
	Identifier  string
	Constant    bool
	Type        TypeExpr // nil when the type must be inferred from Initializer
	Initializer Node     // nil, an Expression, a *ProcedureLiteral, or a *StructLiteral
	Position    token.Position
}

func (d *Declaration) Pos() token.Position { return d.Position }
func (d *Declaration) statementNode()      {}
func (d *Declaration) String() string      { return "decl " + d.Identifier }

// ProcedureLiteral is both a standalone expression (an anonymous procedure
// value) and the initializer of a `name := proc (...) {...}` declaration.
type ProcedureLiteral struct {
	Arguments  []*Declaration
	ReturnType TypeExpr // nil for a void procedure
	Body       *Block
	Position   token.Position
}

func (p *ProcedureLiteral) Pos() token.Position { return p.Position }
func (p *ProcedureLiteral) expressionNode()     {}
func (p *ProcedureLiteral) String() string      { return "proc" }

// StructLiteral is the initializer of a `name :: struct { ... }` declaration.
// Unlike ProcedureLiteral it never stands alone as an expression: structs in
// Kano only exist as named type declarations.
type StructLiteral struct {
	Members  []*Declaration
	Position token.Position
}

func (s *StructLiteral) Pos() token.Position { return s.Position }
func (s *StructLiteral) String() string      { return "struct" }
