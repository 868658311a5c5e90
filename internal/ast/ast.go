// Package ast defines the Abstract Syntax Tree node types the semantic
// resolver consumes. The lexer and parser that produce these nodes from
// source text are an external, out-of-scope collaborator (see SPEC_FULL.md);
// this package only fixes the shape of their output so the resolver and its
// tests have something concrete to lower.
package ast

import "github.com/Zero5620/Kano/internal/token"

// Node is the base interface implemented by every syntax tree node.
type Node interface {
	// Pos returns the node's source position, used for diagnostics.
	Pos() token.Position
	// String returns a debug representation of the node.
	String() string
}

// Expression is any node that produces a value when resolved.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action when resolved. Declarations,
// control flow and nested blocks are all statements.
type Statement interface {
	Node
	statementNode()
}

// TypeExpr is any node that denotes a type rather than a value.
type TypeExpr interface {
	Node
	typeExprNode()
}

// Stmt wraps a single statement node together with its source row, mirroring
// how the upstream parser links statements inside a block.
type Stmt struct {
	Node     Statement
	Position token.Position
}

func (s *Stmt) Pos() token.Position { return s.Position }
func (s *Stmt) String() string      { return s.Node.String() }

// Block is an ordered sequence of statements sharing a lexical scope. It is
// itself a Statement so it can appear as a loop or branch body.
type Block struct {
	Statements []*Stmt
	Position   token.Position
}

func (b *Block) Pos() token.Position { return b.Position }
func (b *Block) String() string      { return "{ ... }" }
func (b *Block) statementNode()      {}

// GlobalScope is the root of the tree: the top-level block of a program.
type GlobalScope struct {
	Block *Block
}

func (g *GlobalScope) Pos() token.Position { return g.Block.Pos() }
func (g *GlobalScope) String() string      { return "global-scope" }
