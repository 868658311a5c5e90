// Package codetree is the post-resolution typed intermediate representation
// the interpreter walks. Unlike internal/ast (pre-resolution, untyped),
// every node here carries a resolved *types.Type and symbols.Flag set, and
// every Identifier has already been lowered to an Address pointing at a
// concrete symbols.Symbol.
//
// Grounded on SPEC_FULL.md §3.4 and original_source/Resolver.cpp's lowering
// functions (code_resolve_expression, code_resolve_statement and friends),
// shaped the way the teacher splits its typed-value model across files in
// internal/interp (value.go, binary_ops.go, ...).
package codetree

import (
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/token"
	"github.com/Zero5620/Kano/internal/types"
)

// Expression is any resolved expression node. Every node's resolved type is
// non-nil, per SPEC_FULL.md §8's first invariant.
type Expression interface {
	Pos() token.Position
	ExprType() *types.Type
	ExprFlags() symbols.Flag
	expressionNode()
}

// exprBase is embedded by every Expression implementation to carry the
// fields the resolver fills in uniformly: resolved type, flags, position.
type exprBase struct {
	Type     *types.Type
	Flags    symbols.Flag
	Position token.Position
}

func (e *exprBase) Pos() token.Position        { return e.Position }
func (e *exprBase) ExprType() *types.Type      { return e.Type }
func (e *exprBase) ExprFlags() symbols.Flag    { return e.Flags }
func (e *exprBase) expressionNode()            {}

// Statement is any resolved statement node.
type Statement interface {
	Pos() token.Position
	statementNode()
}

type stmtBase struct {
	Position token.Position
}

func (s *stmtBase) Pos() token.Position { return s.Position }
func (s *stmtBase) statementNode()      {}
