package resolver

import (
	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/interp"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// resolveType lowers a type expression to a *types.Type, per
// SPEC_FULL.md §4.4's code_resolve_type contract: STATIC_ARRAY's count
// must fold to a compile-time INTEGER or CHARACTER, done by spinning up a
// fresh constant-evaluator interpreter (§4.7).
func (r *Resolver) resolveType(scope *symbols.Table, t ast.TypeExpr) *types.Type {
	switch te := t.(type) {
	case *ast.NamedType:
		resolved := r.FindType(te.Name)
		if resolved == nil {
			r.report(te.Position, "undefined type %q", te.Name)
			return types.NullType
		}
		return resolved

	case *ast.PointerType:
		if te.Base == nil {
			return types.VoidPointerType
		}
		return types.NewPointer(r.resolveType(scope, te.Base))

	case *ast.ArrayViewType:
		return types.NewArrayView(r.resolveType(scope, te.Element))

	case *ast.StaticArrayType:
		element := r.resolveType(scope, te.Element)
		countExpr := r.resolveExpression(scope, te.Count)
		if countExpr.ExprType().Kind != types.Integer && countExpr.ExprType().Kind != types.Character {
			r.report(te.Position, "array size must be a constant integer or character expression")
			return types.NewStaticArray(element, 0)
		}
		count := interp.EvaluateConstantExpression(countExpr)
		return types.NewStaticArray(element, uint32(count))

	case *ast.ProcedureType:
		var args []*types.Type
		variadic := false
		for _, a := range te.Arguments {
			if _, ok := a.(*ast.VariadicType); ok {
				variadic = true
				continue
			}
			args = append(args, r.resolveType(scope, a))
		}
		var ret *types.Type
		if te.ReturnType != nil {
			ret = r.resolveType(scope, te.ReturnType)
		}
		return &types.Type{
			Kind: types.Procedure, RuntimeSize: types.PointerSize, Alignment: types.PointerSize,
			Arguments: args, ReturnType: ret, Variadic: variadic,
		}

	default:
		r.report(t.Pos(), "unsupported type expression")
		return types.NullType
	}
}
