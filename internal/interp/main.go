package interp

import (
	"fmt"

	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// FindMain implements SPEC_FULL.md §6's find_main: verifies an existing
// symbol `main` is a constant procedure of type () → void and fabricates a
// call node for it.
func FindMain(global *symbols.Table) (*codetree.ProcedureCall, error) {
	sym := global.Find("main", false)
	if sym == nil {
		return nil, fmt.Errorf("main is not declared")
	}
	if !sym.IsConstant() || sym.Address.Kind != symbols.Code {
		return nil, fmt.Errorf("main must be a constant procedure")
	}
	proc := sym.Type
	if proc.Kind != types.Procedure || len(proc.Arguments) != 0 || proc.ReturnType != nil {
		return nil, fmt.Errorf("main must have signature () -> void")
	}

	callee := &codetree.Address{Symbol: sym}
	callee.Type = proc
	return &codetree.ProcedureCall{
		Callee: callee,
	}, nil
}

// EvaluateProcedure runs a fabricated or resolved call to completion.
func (it *Interpreter) EvaluateProcedure(call *codetree.ProcedureCall) Value {
	return it.evalProcedureCall(call)
}

// EvaluateConstantExpression implements SPEC_FULL.md §4.7: a freshly
// initialised interpreter with zero-sized segments folds an
// integer/character constant expression. It must never reach a
// Procedure_Call node; the resolver's constant-expression predicate
// guarantees that ahead of time.
func EvaluateConstantExpression(expr codetree.Expression) int64 {
	it := New()
	it.Init(0, 0, nil, nil, nil)
	v := it.Load(it.Eval(expr))
	switch expr.ExprType().Kind {
	case types.Character:
		return int64(v.Byte)
	default:
		return v.Int
	}
}
