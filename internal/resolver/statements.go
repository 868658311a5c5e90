package resolver

import (
	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// resolveBlock opens a child scope, lowers every statement in order, and
// restores the STACK cursor on exit per SPEC_FULL.md §4.2.
func (r *Resolver) resolveBlock(parent *symbols.Table, block *ast.Block) *codetree.Block {
	mark := r.saveStack()
	defer r.restoreStack(mark)

	scope := symbols.NewTable(parent)
	out := &codetree.Block{Symbols: scope}
	out.Position = block.Position

	for _, s := range block.Statements {
		entry := r.resolveStatement(scope, s)
		if entry == nil {
			continue
		}
		out.Statements = append(out.Statements, entry)
	}
	return out
}

func (r *Resolver) resolveStatement(scope *symbols.Table, s *ast.Stmt) *codetree.Entry {
	node := r.resolveStatementNode(scope, s.Node)
	if node == nil {
		return nil
	}
	return &codetree.Entry{Node: node, Symbols: scope, Row: s.Position.Line}
}

func (r *Resolver) resolveStatementNode(scope *symbols.Table, node ast.Statement) codetree.Statement {
	switch st := node.(type) {
	case *ast.Declaration:
		assign := r.resolveDeclaration(scope, st, symbols.Stack)
		if assign == nil {
			return nil
		}
		return assign

	case *ast.ExpressionStatement:
		if a, ok := st.Expr.(*ast.Assignment); ok {
			return r.resolveAssignment(scope, a)
		}
		out := &codetree.ExpressionStatement{Expr: r.resolveExpression(scope, st.Expr)}
		out.Position = st.Position
		return out

	case *ast.Block:
		return r.resolveBlock(scope, st)

	case *ast.If:
		out := &codetree.If{Cond: r.resolveCondition(scope, st.Condition)}
		out.Then = r.asBlock(scope, st.Then)
		if st.Else != nil {
			out.Else = r.asBlock(scope, st.Else)
		}
		out.Position = st.Position
		return out

	case *ast.For:
		inner := symbols.NewTable(scope)
		mark := r.saveStack()
		defer r.restoreStack(mark)

		out := &codetree.For{}
		if st.Init != nil {
			out.Init = r.resolveStatementNode(inner, st.Init)
		}
		if st.Condition != nil {
			out.Cond = r.resolveCondition(inner, st.Condition)
		}
		if st.Increment != nil {
			out.Post = r.resolveStatementNode(inner, &ast.ExpressionStatement{Expr: st.Increment, Position: st.Position})
		}
		r.loopDepth++
		out.Body = r.asBlock(inner, st.Body)
		r.loopDepth--
		out.Position = st.Position
		return out

	case *ast.While:
		out := &codetree.While{Cond: r.resolveCondition(scope, st.Condition)}
		r.loopDepth++
		out.Body = r.asBlock(scope, st.Body)
		r.loopDepth--
		out.Position = st.Position
		return out

	case *ast.Do:
		out := &codetree.Do{}
		r.loopDepth++
		out.Body = r.asBlock(scope, st.Body)
		r.loopDepth--
		out.Cond = r.resolveCondition(scope, st.Condition)
		out.Position = st.Position
		return out

	case *ast.Return:
		return r.resolveReturn(scope, st)

	case *ast.Break:
		if r.loopDepth == 0 {
			r.report(st.Position, "break outside of a loop")
		}
		out := &codetree.Break{}
		out.Position = st.Position
		return out

	case *ast.Continue:
		if r.loopDepth == 0 {
			r.report(st.Position, "continue outside of a loop")
		}
		out := &codetree.Continue{}
		out.Position = st.Position
		return out

	default:
		r.report(node.Pos(), "unsupported statement")
		return nil
	}
}

// resolveCondition resolves an expression used as a branch/loop condition,
// requiring a BOOL result per SPEC_FULL.md §4.5.
func (r *Resolver) resolveCondition(scope *symbols.Table, expr ast.Expression) codetree.Expression {
	cond := r.resolveExpression(scope, expr)
	if cond.ExprType() != nil && cond.ExprType().Kind != types.Bool {
		r.report(expr.Pos(), "condition must be a bool expression")
	}
	return cond
}

// asBlock wraps a bare statement body (a single statement, not braced) in a
// one-entry Block so If/For/While/Do all share the same Body shape.
func (r *Resolver) asBlock(scope *symbols.Table, node ast.Statement) *codetree.Block {
	if b, ok := node.(*ast.Block); ok {
		return r.resolveBlock(scope, b)
	}
	mark := r.saveStack()
	defer r.restoreStack(mark)
	inner := symbols.NewTable(scope)
	out := &codetree.Block{Symbols: inner}
	out.Position = node.Pos()
	entry := r.resolveStatement(inner, &ast.Stmt{Node: node, Position: node.Pos()})
	if entry != nil {
		out.Statements = append(out.Statements, entry)
	}
	return out
}

func (r *Resolver) resolveReturn(scope *symbols.Table, st *ast.Return) codetree.Statement {
	out := &codetree.Return{}
	out.Position = st.Position

	if len(r.returnStack) == 0 {
		r.report(st.Position, "return outside of a procedure")
		return out
	}
	expected := r.returnStack[len(r.returnStack)-1]

	if st.Expression == nil {
		if expected != nil {
			r.report(st.Position, "missing return value")
		}
		return out
	}
	if expected == nil {
		r.report(st.Position, "void procedure cannot return a value")
		return out
	}
	value := r.resolveExpression(scope, st.Expression)
	if !types.Same(value.ExprType(), expected) {
		if !implicitCast(value.ExprType(), expected) {
			r.report(st.Position, "cannot return %s as %s", value.ExprType(), expected)
		} else {
			value = r.insertCast(value, expected, true)
		}
	}
	out.Value = value
	return out
}

// resolveAssignment lowers `lhs = rhs`, requiring lhs to be an LVALUE and
// rhs to be implicitly castable to lhs's type, per SPEC_FULL.md §4.4.
func (r *Resolver) resolveAssignment(scope *symbols.Table, a *ast.Assignment) *codetree.Assignment {
	lhs := r.resolveExpression(scope, a.Left)
	rhs := r.resolveExpression(scope, a.Right)

	if !lhs.ExprFlags().Has(symbols.LValue) {
		r.report(a.Position, "left side of an assignment must be an lvalue")
	}
	if !types.Same(lhs.ExprType(), rhs.ExprType()) {
		if !implicitCast(rhs.ExprType(), lhs.ExprType()) {
			r.report(a.Position, "cannot assign %s to %s", rhs.ExprType(), lhs.ExprType())
		} else {
			rhs = r.insertCast(rhs, lhs.ExprType(), true)
		}
	}

	out := &codetree.Assignment{LHS: lhs, RHS: rhs}
	out.Position = a.Position
	return out
}
