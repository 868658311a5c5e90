package resolver

import (
	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// resolveDeclaration lowers `name [: type] [= init]`, `name :: struct {...}`
// and `name :: proc (...) {...}` forms, per SPEC_FULL.md §4.2/§4.4.
// region is the address space new storage is bump-allocated in (Stack for a
// local, Global for a top-level declaration). It returns the initializer
// assignment to run at program/block entry, or nil for declarations with no
// runtime effect (types and constant procedures).
func (r *Resolver) resolveDeclaration(scope *symbols.Table, decl *ast.Declaration, region symbols.AddressKind) *codetree.Assignment {
	switch init := decl.Initializer.(type) {
	case *ast.StructLiteral:
		r.resolveStructDeclaration(scope, decl, init)
		return nil
	case *ast.ProcedureLiteral:
		return r.resolveProcedureDeclaration(scope, decl, init, region)
	}

	var declaredType *types.Type
	if decl.Type != nil {
		declaredType = r.resolveType(scope, decl.Type)
	}

	var value codetree.Expression
	if expr, ok := decl.Initializer.(ast.Expression); ok {
		value = r.resolveExpression(scope, expr)
	} else if decl.Initializer != nil {
		r.report(decl.Position, "invalid initializer for %q", decl.Identifier)
	}

	if declaredType == nil {
		if value == nil {
			r.report(decl.Position, "declaration %q needs a type or an initializer", decl.Identifier)
			declaredType = types.NullType
		} else {
			declaredType = value.ExprType()
			// A bare character constant used to infer a declaration's type
			// widens to INTEGER, per SPEC_FULL.md §4.4 (so `c := 'a'`
			// declares an int, matching literal-integer inference).
			if declaredType.Kind == types.Character && value.ExprFlags().Has(symbols.ConstExpr) {
				declaredType = types.IntType
			}
		}
	}

	if decl.Constant && value == nil {
		r.report(decl.Position, "constant %q must have an initializer", decl.Identifier)
	}

	sym, err := scope.Put(decl.Identifier)
	if err != nil {
		r.report(decl.Position, "%q is already declared in this scope", decl.Identifier)
		return nil
	}
	sym.Type = declaredType
	sym.Position = decl.Position
	if decl.Constant {
		sym.Flags = symbols.Constant
		if value != nil && value.ExprFlags().Has(symbols.ConstExpr) {
			sym.Flags |= symbols.ConstExpr
		}
	} else {
		sym.Flags = symbols.LValue
	}
	sym.Address = symbols.Address{Kind: region, Offset: uint64(r.allocate(region, declaredType))}

	if value == nil {
		return nil
	}
	if !types.Same(value.ExprType(), declaredType) {
		if !implicitCast(value.ExprType(), declaredType) {
			r.report(decl.Position, "cannot initialise %q of type %s with %s", decl.Identifier, declaredType, value.ExprType())
		} else {
			value = r.insertCast(value, declaredType, true)
		}
	}

	lhs := &codetree.Address{Symbol: sym}
	lhs.Type = declaredType
	lhs.Flags = sym.Flags | symbols.LValue
	lhs.Position = decl.Position

	out := &codetree.Assignment{LHS: lhs, RHS: value}
	out.Position = decl.Position
	return out
}

// resolveStructDeclaration installs the type symbol before resolving its
// members, so a member pointer can refer back to the struct itself
// (per SPEC_FULL.md §4.2's "install type record first" rule).
func (r *Resolver) resolveStructDeclaration(scope *symbols.Table, decl *ast.Declaration, lit *ast.StructLiteral) {
	sym, err := scope.Put(decl.Identifier)
	if err != nil {
		r.report(decl.Position, "%q is already declared in this scope", decl.Identifier)
		return
	}
	structType := &types.Type{Kind: types.Struct, Name: decl.Identifier, ID: r.nextStructID()}
	sym.Type = structType
	sym.Flags = symbols.IsType | symbols.CompilerDef
	sym.Position = decl.Position

	members := make([]types.Member, 0, len(lit.Members))
	for _, m := range lit.Members {
		memberType := r.resolveType(scope, m.Type)
		members = append(members, types.Member{Name: m.Identifier, Type: memberType})
	}
	size, alignment := r.layoutStruct(members)
	structType.Members = members
	structType.RuntimeSize = size
	structType.Alignment = alignment
}

// resolveProcedureDeclaration lowers a procedure-valued declaration. A
// constant binding (the common case, `name :: proc ...`) stores no runtime
// value at all: the symbol's address is CODE, pointing directly at the
// compiled body. A variable binding additionally allocates a procedure-typed
// storage slot and emits the assignment that copies the CODE value into it.
// The name is declared before the body is resolved, so the body can call
// the procedure recursively.
func (r *Resolver) resolveProcedureDeclaration(scope *symbols.Table, decl *ast.Declaration, lit *ast.ProcedureLiteral, region symbols.AddressKind) *codetree.Assignment {
	sym, err := scope.Put(decl.Identifier)
	if err != nil {
		r.resolveProcedureLiteral(scope, lit, nil)
		r.report(decl.Position, "%q is already declared in this scope", decl.Identifier)
		return nil
	}
	sym.Position = decl.Position
	sym.Flags = symbols.LValue
	if decl.Constant {
		sym.Flags = symbols.Constant
	}

	procType, index := r.resolveProcedureLiteral(scope, lit, sym)

	if decl.Constant {
		sym.Address = symbols.Address{Kind: symbols.Code, Offset: index}
		return nil
	}

	sym.Address = symbols.Address{Kind: region, Offset: uint64(r.allocate(region, procType))}

	codeSym := &symbols.Symbol{Type: procType, Flags: symbols.Constant, Address: symbols.Address{Kind: symbols.Code, Offset: index}}
	rhs := &codetree.Address{Symbol: codeSym}
	rhs.Type = procType
	rhs.Position = decl.Position

	lhs := &codetree.Address{Symbol: sym}
	lhs.Type = procType
	lhs.Flags = symbols.LValue
	lhs.Position = decl.Position

	out := &codetree.Assignment{LHS: lhs, RHS: rhs}
	out.Position = decl.Position
	return out
}

// resolveProcedureLiteral resolves a procedure's signature and body in a
// fresh address space (the STACK cursor resets to 0, per SPEC_FULL.md §4.2:
// each procedure's locals are offsets from its own call frame, not the
// enclosing scope's). Arguments are bound at the exact offsets
// codetree.LayoutProcedureFrame assigns them, so the call-site marshalling
// code and the body's own reads of its parameters agree on addresses without
// either side needing to consult the other. When self is non-nil, its Type
// is set to the procedure type before the body is resolved. The largest
// stack extent the body reaches is kept in maxStack after the body is done.
func (r *Resolver) resolveProcedureLiteral(outer *symbols.Table, lit *ast.ProcedureLiteral, self *symbols.Symbol) (*types.Type, uint64) {
	args := make([]*types.Type, len(lit.Arguments))
	for i, a := range lit.Arguments {
		args[i] = r.resolveType(outer, a.Type)
	}
	var ret *types.Type
	if lit.ReturnType != nil {
		ret = r.resolveType(outer, lit.ReturnType)
	}
	procType := &types.Type{
		Kind: types.Procedure, RuntimeSize: types.PointerSize, Alignment: types.PointerSize,
		Arguments: args, ReturnType: ret,
	}
	if self != nil {
		self.Type = procType
	}

	savedStack, savedMax := r.stackCursor, r.maxStack
	r.stackCursor, r.maxStack = 0, 0
	defer func() {
		if r.maxStack < savedMax {
			r.maxStack = savedMax
		}
		r.stackCursor = savedStack
	}()

	_, _, argOffsets, frameSize := codetree.LayoutProcedureFrame(procType)

	scope := symbols.NewTable(r.Global)
	for i, a := range lit.Arguments {
		sym, err := scope.Put(a.Identifier)
		if err != nil {
			r.report(a.Position, "duplicate argument %q", a.Identifier)
			continue
		}
		sym.Type = args[i]
		sym.Flags = symbols.LValue
		sym.Position = a.Position
		sym.Address = symbols.Address{Kind: symbols.Stack, Offset: uint64(argOffsets[i])}
	}
	r.stackCursor = frameSize
	if r.stackCursor > r.maxStack {
		r.maxStack = r.stackCursor
	}

	r.returnStack = append(r.returnStack, ret)
	body := r.resolveBlock(scope, lit.Body)
	r.returnStack = r.returnStack[:len(r.returnStack)-1]

	index := uint64(len(r.code))
	r.code = append(r.code, body)
	return procType, index
}
