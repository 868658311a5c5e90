// Package token provides the source-position type shared by the AST and
// the diagnostics the resolver emits. Kano's lexer and parser live outside
// this module; this package exists only so the code tree can carry the
// same row/column pairs the upstream parser attaches to its syntax nodes.
package token

import "fmt"

// Position identifies a single point in source text.
type Position struct {
	Line   int // 1-based source row
	Column int // 1-based source column
	Offset int // 0-based byte offset into the source buffer
}

// String renders the position the way diagnostics expect it: "row,column".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Line, p.Column)
}
