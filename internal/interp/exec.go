package interp

import "github.com/Zero5620/Kano/internal/codetree"

// execBlock runs a block's statements in order, per SPEC_FULL.md §4.6's
// control-flow rules: a Break/Continue/Return outcome from any statement
// stops the block immediately and bubbles up (the loop/procedure evaluator
// that owns this block decides what to do with it).
func (it *Interpreter) execBlock(b *codetree.Block) Outcome {
	for _, entry := range b.Statements {
		it.CurrentRow = entry.Row
		it.Interceptor(it, InterceptStatement, entry.Node)
		if out := it.execStatement(entry.Node); out.Kind != Normal {
			return out
		}
	}
	return normalOutcome
}

func (it *Interpreter) execStatement(stmt codetree.Statement) Outcome {
	switch s := stmt.(type) {
	case *codetree.Block:
		return it.execBlock(s)
	case *codetree.ExpressionStatement:
		it.Eval(s.Expr)
		return normalOutcome
	case *codetree.Assignment:
		it.evalAssignment(s)
		return normalOutcome
	case *codetree.If:
		return it.execIf(s)
	case *codetree.For:
		return it.execFor(s)
	case *codetree.While:
		return it.execWhile(s)
	case *codetree.Do:
		return it.execDo(s)
	case *codetree.Return:
		return it.execReturn(s)
	case *codetree.Break:
		return Outcome{Kind: Breaking}
	case *codetree.Continue:
		return Outcome{Kind: Continuing}
	default:
		panic("interp: exec of unhandled statement node")
	}
}

func (it *Interpreter) execIf(s *codetree.If) Outcome {
	cond := it.Load(it.Eval(s.Cond))
	if cond.Bool {
		return it.execBlock(s.Then)
	}
	if s.Else != nil {
		return it.execBlock(s.Else)
	}
	return normalOutcome
}

func (it *Interpreter) execFor(s *codetree.For) Outcome {
	if s.Init != nil {
		if out := it.execStatement(s.Init); out.Kind != Normal {
			return out
		}
	}
	for {
		if s.Cond != nil {
			cond := it.Load(it.Eval(s.Cond))
			if !cond.Bool {
				break
			}
		}
		out := it.execBlock(s.Body)
		switch out.Kind {
		case Breaking:
			return normalOutcome
		case Returning:
			return out
		}
		if s.Post != nil {
			if out := it.execStatement(s.Post); out.Kind != Normal {
				return out
			}
		}
	}
	return normalOutcome
}

func (it *Interpreter) execWhile(s *codetree.While) Outcome {
	for {
		cond := it.Load(it.Eval(s.Cond))
		if !cond.Bool {
			break
		}
		out := it.execBlock(s.Body)
		switch out.Kind {
		case Breaking:
			return normalOutcome
		case Returning:
			return out
		}
	}
	return normalOutcome
}

func (it *Interpreter) execDo(s *codetree.Do) Outcome {
	for {
		out := it.execBlock(s.Body)
		switch out.Kind {
		case Breaking:
			return normalOutcome
		case Returning:
			return out
		}
		cond := it.Load(it.Eval(s.Cond))
		if !cond.Bool {
			break
		}
	}
	return normalOutcome
}

// execReturn writes the returned value into the callee's return slot
// (always offset 0 of the active frame, per codetree.LayoutProcedureFrame)
// before unwinding: evalProcedureCall reads the result back out of that
// same slot once execBlock returns, rather than threading it through Outcome.
func (it *Interpreter) execReturn(s *codetree.Return) Outcome {
	if s.Value == nil {
		return Outcome{Kind: Returning}
	}
	v := it.Eval(s.Value)
	imm := it.Load(v)
	it.encode(it.CurrentProcedure.ReturnType, Addr{Region: RegionStack, Offset: 0}, imm)
	return Outcome{Kind: Returning, Value: &v}
}

// evalAssignment implements SPEC_FULL.md §4.6's Assignment: evaluate RHS,
// then LHS, then byte-copy the destination's runtime size from the source.
func (it *Interpreter) evalAssignment(a *codetree.Assignment) {
	rhs := it.Load(it.Eval(a.RHS))
	lhs := it.Eval(a.LHS)
	if lhs.Addr == nil {
		panic("interp: assignment to a non-addressable lvalue")
	}
	it.encode(lhs.Type, *lhs.Addr, rhs)
}
