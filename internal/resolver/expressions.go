package resolver

import (
	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/token"
	"github.com/Zero5620/Kano/internal/types"
)

// resolveExpression lowers an AST expression to a typed codetree.Expression,
// per SPEC_FULL.md §4.4.
func (r *Resolver) resolveExpression(scope *symbols.Table, node ast.Expression) codetree.Expression {
	switch e := node.(type) {
	case *ast.Literal:
		return r.resolveLiteral(e)
	case *ast.Identifier:
		return r.resolveIdentifier(scope, e)
	case *ast.UnaryOperator:
		return r.resolveUnary(scope, e)
	case *ast.BinaryOperator:
		return r.resolveBinary(scope, e)
	case *ast.Subscript:
		return r.resolveSubscript(scope, e)
	case *ast.TypeCast:
		return r.resolveTypeCast(scope, e)
	case *ast.SizeOf:
		return r.resolveSizeOf(scope, e)
	case *ast.ProcedureCall:
		return r.resolveCall(scope, e)
	default:
		r.report(node.Pos(), "unsupported expression")
		return &codetree.Literal{}
	}
}

func (r *Resolver) resolveLiteral(l *ast.Literal) codetree.Expression {
	if l.Kind == ast.LiteralString {
		addr := r.internStringLiteral(l.StrValue)
		addr.Position = l.Position
		return addr
	}

	out := &codetree.Literal{}
	switch l.Kind {
	case ast.LiteralInt:
		out.Type = types.IntType
		out.Int = l.IntValue
	case ast.LiteralReal:
		out.Type = types.FloatType
		out.Real = l.RealValue
	case ast.LiteralBool:
		out.Type = types.BoolType
		out.Bool = l.BoolValue
	case ast.LiteralCharacter:
		out.Type = types.ByteType
		out.Byte = l.ByteValue
	case ast.LiteralNullPointer:
		out.Type = types.VoidPointerType
	}
	out.Flags = symbols.ConstExpr
	out.Position = l.Position
	return out
}

// resolveIdentifier lowers a name reference to an Address, per
// SPEC_FULL.md §4.4: non-constants get LVALUE.
func (r *Resolver) resolveIdentifier(scope *symbols.Table, id *ast.Identifier) codetree.Expression {
	sym := scope.Find(id.Name, true)
	if sym == nil {
		r.report(id.Position, "undefined identifier %q", id.Name)
		return &codetree.Literal{}
	}
	addr := &codetree.Address{Symbol: sym}
	addr.Type = sym.Type
	addr.Flags = sym.Flags
	if !sym.IsConstant() {
		addr.Flags |= symbols.LValue
	}
	addr.Position = id.Position
	return addr
}

func (r *Resolver) resolveUnary(scope *symbols.Table, u *ast.UnaryOperator) codetree.Expression {
	operand := r.resolveExpression(scope, u.Operand)

	switch u.Op {
	case ast.UnaryAddressOf:
		if !operand.ExprFlags().Has(symbols.LValue) {
			r.report(u.Position, "cannot take the address of a non-lvalue")
			return &codetree.Literal{}
		}
		out := &codetree.UnaryOperator{Op: codetree.UnaryAddressOf, Operand: operand}
		out.Type = types.NewPointer(operand.ExprType())
		out.Position = u.Position
		return out

	case ast.UnaryDereference:
		if operand.ExprType().Kind != types.Pointer || operand.ExprType().Base.Kind == types.Null {
			r.report(u.Position, "cannot dereference a non-pointer or *void value")
			return &codetree.Literal{}
		}
		out := &codetree.UnaryOperator{Op: codetree.UnaryDereference, Operand: operand}
		out.Type = operand.ExprType().Base
		out.Flags = symbols.LValue
		out.Position = u.Position
		return out
	}

	kind := map[ast.UnaryOperatorKind]codetree.UnaryOperatorKind{
		ast.UnaryPlus: codetree.UnaryPlus, ast.UnaryMinus: codetree.UnaryMinus,
		ast.UnaryBitwiseNot: codetree.UnaryBitwiseNot, ast.UnaryLogicalNot: codetree.UnaryNot,
	}[u.Op]

	resultType, needsCast, ok := r.matchUnary(kind, operand.ExprType())
	if !ok {
		r.report(u.Position, "no matching unary operator for operand type %s", operand.ExprType())
		return &codetree.Literal{}
	}
	if needsCast {
		operand = r.insertCast(operand, operandTypeFor(kind, r), true)
	}
	out := &codetree.UnaryOperator{Op: kind, Operand: operand}
	out.Type = resultType
	out.Position = u.Position
	return out
}

// operandTypeFor is a narrow helper used only right after a successful
// matchUnary call that required a cast; it re-derives which operand type
// the matched overload declared by scanning the table again.
func operandTypeFor(op codetree.UnaryOperatorKind, r *Resolver) *types.Type {
	for _, o := range r.unary {
		if o.Op == op {
			return o.Operand
		}
	}
	return types.NullType
}

var binOpMap = map[ast.BinaryOperatorKind]codetree.BinaryOperatorKind{
	ast.BinAdd: codetree.BinAdd, ast.BinSub: codetree.BinSub, ast.BinMul: codetree.BinMul,
	ast.BinDiv: codetree.BinDiv, ast.BinRemainder: codetree.BinRem,
	ast.BinBitwiseAnd: codetree.BinBitwiseAnd, ast.BinBitwiseOr: codetree.BinBitwiseOr,
	ast.BinBitwiseXor: codetree.BinBitwiseXor, ast.BinShiftLeft: codetree.BinShiftLeft,
	ast.BinShiftRight: codetree.BinShiftRight, ast.BinEqual: codetree.BinEqual,
	ast.BinNotEqual: codetree.BinNotEqual, ast.BinLess: codetree.BinLess,
	ast.BinLessEqual: codetree.BinLessEqual, ast.BinGreater: codetree.BinGreater,
	ast.BinGreaterEqual: codetree.BinGreaterEqual, ast.BinLogicalAnd: codetree.BinLogicalAnd,
	ast.BinLogicalOr: codetree.BinLogicalOr,
	ast.BinCompoundAdd: codetree.BinAdd, ast.BinCompoundSub: codetree.BinSub,
	ast.BinCompoundMul: codetree.BinMul, ast.BinCompoundDiv: codetree.BinDiv,
	ast.BinCompoundRemainder: codetree.BinRem, ast.BinCompoundShiftLeft: codetree.BinShiftLeft,
	ast.BinCompoundShiftRight: codetree.BinShiftRight, ast.BinCompoundBitwiseAnd: codetree.BinBitwiseAnd,
	ast.BinCompoundBitwiseOr: codetree.BinBitwiseOr, ast.BinCompoundBitwiseXor: codetree.BinBitwiseXor,
}

func (r *Resolver) resolveBinary(scope *symbols.Table, b *ast.BinaryOperator) codetree.Expression {
	if b.Op == ast.BinMember {
		return r.resolveMember(scope, b)
	}

	left := r.resolveExpression(scope, b.Left)
	right := r.resolveExpression(scope, b.Right)
	op := binOpMap[b.Op]
	compound := b.Op.IsCompound()

	if compound && !left.ExprFlags().Has(symbols.LValue) {
		r.report(b.Position, "left operand of a compound assignment must be an lvalue")
		return &codetree.Literal{}
	}

	if left.ExprType().Kind == types.Pointer {
		if out, handled := r.resolvePointerBinary(b.Position, op, compound, left, right); handled {
			return out
		}
	}

	result, castLeft, castRight, ok := r.matchBinary(op, left.ExprType(), right.ExprType())
	if !ok {
		r.report(b.Position, "no matching binary operator %v for operand types %s, %s", op, left.ExprType(), right.ExprType())
		return &codetree.Literal{}
	}
	if castLeft {
		left = r.insertCast(left, left.ExprType(), true)
	}
	if castRight {
		right = r.insertCast(right, right.ExprType(), true)
	}

	out := &codetree.BinaryOperator{Op: op, Left: left, Right: right, Compound: compound}
	if compound {
		out.Type = left.ExprType()
	} else {
		out.Type = result
	}
	out.Position = b.Position
	return out
}

// pointerComparisons are the operators original_source/Resolver.cpp registers
// a POINTER,POINTER → BOOL overload for, alongside the POINTER,INTEGER →
// POINTER overload arithmetic gets. Pointer types aren't singletons (every
// base type produces a distinct *types.Type), so these can't be expressed as
// entries in the fixed r.binary table the way scalar overloads are; they're
// resolved here instead, ahead of matchBinary.
var pointerComparisons = map[codetree.BinaryOperatorKind]bool{
	codetree.BinEqual: true, codetree.BinNotEqual: true,
	codetree.BinLess: true, codetree.BinLessEqual: true,
	codetree.BinGreater: true, codetree.BinGreaterEqual: true,
	codetree.BinLogicalAnd: true, codetree.BinLogicalOr: true,
}

func (r *Resolver) resolvePointerBinary(pos token.Position, op codetree.BinaryOperatorKind, compound bool, left, right codetree.Expression) (codetree.Expression, bool) {
	switch {
	case op == codetree.BinAdd || op == codetree.BinSub:
		if right.ExprType().Kind != types.Integer {
			if !implicitCast(right.ExprType(), types.IntType) {
				return nil, false
			}
			right = r.insertCast(right, types.IntType, true)
		}
		out := &codetree.BinaryOperator{Op: op, Left: left, Right: right, Compound: compound}
		out.Type = left.ExprType()
		out.Position = pos
		return out, true

	case pointerComparisons[op]:
		if right.ExprType().Kind != types.Pointer {
			return nil, false
		}
		out := &codetree.BinaryOperator{Op: op, Left: left, Right: right, Compound: compound}
		out.Type = types.BoolType
		out.Position = pos
		return out, true
	}
	return nil, false
}

// resolveMember implements `.` desugaring per SPEC_FULL.md §4.4: deref on
// POINTER first, struct member lookup, or count/data sugar on
// ARRAY_VIEW/STATIC_ARRAY.
func (r *Resolver) resolveMember(scope *symbols.Table, b *ast.BinaryOperator) codetree.Expression {
	base := r.resolveExpression(scope, b.Left)
	name, ok := b.Right.(*ast.Identifier)
	if !ok {
		r.report(b.Position, "member access requires a field name")
		return &codetree.Literal{}
	}

	if base.ExprType().Kind == types.Pointer {
		deref := &codetree.UnaryOperator{Op: codetree.UnaryDereference, Operand: base}
		deref.Type = base.ExprType().Base
		deref.Flags = symbols.LValue
		deref.Position = b.Position
		base = deref
	}

	switch base.ExprType().Kind {
	case types.Struct:
		for _, m := range base.ExprType().Members {
			if m.Name == name.Name {
				off := &codetree.Offset{Base: base, ByteOffset: m.Offset}
				off.Type = m.Type
				off.Flags = base.ExprFlags()
				off.Position = b.Position
				return off
			}
		}
		r.report(b.Position, "struct %s has no member %q", base.ExprType(), name.Name)

	case types.StaticArray:
		switch name.Name {
		case "count":
			lit := &codetree.Literal{Int: int64(base.ExprType().ElementCount)}
			lit.Type = types.IntType
			lit.Flags = symbols.ConstExpr
			lit.Position = b.Position
			return lit
		case "data":
			if !base.ExprFlags().Has(symbols.LValue) {
				r.report(b.Position, "cannot take .data of a non-lvalue array")
				break
			}
			addr := &codetree.UnaryOperator{Op: codetree.UnaryAddressOf, Operand: base}
			addr.Type = types.NewPointer(base.ExprType().Element)
			addr.Position = b.Position
			return addr
		}

	case types.ArrayView:
		switch name.Name {
		case "count":
			off := &codetree.Offset{Base: base, ByteOffset: 0}
			off.Type = types.IntType
			off.Position = b.Position
			return off
		case "data":
			off := &codetree.Offset{Base: base, ByteOffset: 8}
			off.Type = types.NewPointer(base.ExprType().Element)
			off.Position = b.Position
			return off
		}
	}

	r.report(b.Position, "invalid member access %q on %s", name.Name, base.ExprType())
	return &codetree.Literal{}
}

// resolveSubscript lowers `base[index]`. STATIC_ARRAY/ARRAY_VIEW subscripts
// become an addressable codetree.Subscript; the built-in string struct has
// no array storage of its own, so `s[i]` desugars to `*(s.data + i)`,
// reusing pointer-arithmetic and dereference lowering instead of teaching
// the interpreter a second element-addressing scheme.
func (r *Resolver) resolveSubscript(scope *symbols.Table, s *ast.Subscript) codetree.Expression {
	base := r.resolveExpression(scope, s.Expr)
	index := r.resolveExpression(scope, s.Index)
	if index.ExprType() == nil || (index.ExprType().Kind != types.Integer && index.ExprType().Kind != types.Character) {
		r.report(s.Position, "subscript index must be an integer or character")
	}

	switch {
	case base.ExprType() != nil && (base.ExprType().Kind == types.StaticArray || base.ExprType().Kind == types.ArrayView):
		sub := &codetree.Subscript{Base: base, Index: index}
		addr := &codetree.Address{Subscript: sub}
		if a, ok := base.(*codetree.Address); ok {
			addr.Symbol = a.Symbol
		}
		addr.Type = elementTypeOf(base.ExprType())
		addr.Flags = symbols.LValue
		addr.Position = s.Position
		return addr

	case base.ExprType() == r.StringType:
		dataOff := &codetree.Offset{Base: base, ByteOffset: 8}
		dataOff.Type = types.VoidPointerType
		dataOff.Position = s.Position
		data := r.insertCast(dataOff, types.NewPointer(types.ByteType), true)
		if index.ExprType() != nil && index.ExprType().Kind == types.Character {
			index = r.insertCast(index, types.IntType, true)
		}

		advance := &codetree.BinaryOperator{Op: codetree.BinAdd, Left: data, Right: index}
		advance.Type = types.NewPointer(types.ByteType)
		advance.Position = s.Position

		deref := &codetree.UnaryOperator{Op: codetree.UnaryDereference, Operand: advance}
		deref.Type = types.ByteType
		deref.Flags = symbols.LValue
		deref.Position = s.Position
		return deref

	default:
		r.report(s.Position, "subscript target must be an array, array view, or string")
		return &codetree.Literal{}
	}
}

func elementTypeOf(t *types.Type) *types.Type {
	switch t.Kind {
	case types.StaticArray, types.ArrayView:
		return t.Element
	default:
		return types.NullType
	}
}

func (r *Resolver) resolveTypeCast(scope *symbols.Table, c *ast.TypeCast) codetree.Expression {
	expr := r.resolveExpression(scope, c.Expr)
	target := r.resolveType(scope, c.Type)
	if !explicitCast(expr.ExprType(), target) {
		r.report(c.Position, "cannot cast %s to %s", expr.ExprType(), target)
	}
	out := &codetree.TypeCast{Expr: expr, Implicit: false}
	out.Type = target
	out.Position = c.Position
	return out
}

// insertCast wraps expr in an implicit Type_Cast node to target.
func (r *Resolver) insertCast(expr codetree.Expression, target *types.Type, implicit bool) codetree.Expression {
	out := &codetree.TypeCast{Expr: expr, Implicit: implicit}
	out.Type = target
	out.Flags = expr.ExprFlags()
	out.Position = expr.Pos()
	return out
}

// resolveCall lowers a call expression, precomputing the full frame layout
// (return slot, declared argument offsets, and — for a variadic procedure —
// the trailing pointer/tag-area region) so the interpreter only has to copy
// values, per SPEC_FULL.md §4.5/§4.6.
func (r *Resolver) resolveCall(scope *symbols.Table, c *ast.ProcedureCall) codetree.Expression {
	callee := r.resolveExpression(scope, c.Procedure)
	procType := callee.ExprType()
	if procType == nil || procType.Kind != types.Procedure {
		r.report(c.Position, "cannot call a non-procedure value")
		return &codetree.Literal{}
	}

	declaredCount := len(procType.Arguments)
	if !procType.Variadic && len(c.Parameters) != declaredCount {
		r.report(c.Position, "expected %d arguments, got %d", declaredCount, len(c.Parameters))
	}
	if procType.Variadic && len(c.Parameters) < declaredCount {
		r.report(c.Position, "expected at least %d arguments, got %d", declaredCount, len(c.Parameters))
	}

	out := &codetree.ProcedureCall{Callee: callee}
	out.Type = procType.ReturnType
	out.Position = c.Position

	for i := 0; i < declaredCount && i < len(c.Parameters); i++ {
		arg := r.resolveExpression(scope, c.Parameters[i])
		want := procType.Arguments[i]
		if !types.Same(arg.ExprType(), want) {
			if !implicitCast(arg.ExprType(), want) {
				r.report(c.Position, "argument %d: cannot use %s as %s", i+1, arg.ExprType(), want)
			} else {
				arg = r.insertCast(arg, want, true)
			}
		}
		out.Arguments = append(out.Arguments, arg)
	}

	for i := declaredCount; i < len(c.Parameters); i++ {
		v := r.resolveExpression(scope, c.Parameters[i])
		if v.ExprType() != nil && v.ExprType().Kind == types.Character {
			v = r.insertCast(v, types.IntType, true)
		}
		out.Variadics = append(out.Variadics, v)
	}

	returnOffset, hasReturn, argOffsets, base := codetree.LayoutProcedureFrame(procType)
	out.HasReturn = hasReturn
	out.ReturnOffset = returnOffset
	out.ArgumentOffsets = argOffsets

	cursor := base
	out.HasVariadics = procType.Variadic
	if procType.Variadic {
		cursor = alignUp(cursor, types.PointerSize)
		out.VariadicPointerOffset = cursor
		cursor += types.PointerSize
		out.VariadicTagAreaOffset = cursor
		for _, v := range out.Variadics {
			cursor += 8 // interned type tag
			cursor += v.ExprType().RuntimeSize
		}
	}
	// The callee's frame is carved out of the caller's own frame, like an
	// ordinary local: r.allocate reserves cursor bytes at the caller's
	// current stack high-water mark and bumps it past them, so a call
	// nested inside this one's arguments (resolved above, before this
	// point) already claimed its own disjoint region, and a sibling call
	// later in the same block gets the bytes back once its enclosing
	// block's cursor is restored. call.StackTopOffset is that region's
	// start, added to the caller's stack_top to become the callee's own
	// frame base — not the frame's size, which is what cursor holds.
	out.StackTopOffset = r.allocate(symbols.Stack, &types.Type{RuntimeSize: cursor, Alignment: types.PointerSize})

	return out
}

func (r *Resolver) resolveSizeOf(scope *symbols.Table, s *ast.SizeOf) codetree.Expression {
	t := r.resolveType(scope, s.Type)
	out := &codetree.Literal{Int: int64(t.RuntimeSize)}
	out.Type = types.IntType
	out.Flags = symbols.ConstExpr
	out.Position = s.Position
	return out
}
