package resolver

import (
	"github.com/Zero5620/Kano/internal/interp"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// ProcedureBuilder accumulates a foreign procedure's signature before
// registration, per original_source/Resolver.h's Procedure_Builder: a
// small builder gathering argument types, an optional return type, and a
// variadic flag.
type ProcedureBuilder struct {
	r          *Resolver
	arguments  []*types.Type
	returnType *types.Type
	variadic   bool
}

// NewProcedureBuilder starts building a ccall signature.
func (r *Resolver) NewProcedureBuilder() *ProcedureBuilder {
	return &ProcedureBuilder{r: r}
}

// Argument appends a declared argument type, looked up by name.
func (b *ProcedureBuilder) Argument(typeName string) *ProcedureBuilder {
	t := b.r.FindType(typeName)
	b.arguments = append(b.arguments, t)
	return b
}

// Returns sets the procedure's return type, looked up by name.
func (b *ProcedureBuilder) Returns(typeName string) *ProcedureBuilder {
	b.returnType = b.r.FindType(typeName)
	return b
}

// Variadic marks the procedure as accepting extra trailing arguments.
func (b *ProcedureBuilder) Variadic() *ProcedureBuilder {
	b.variadic = true
	return b
}

// Type materialises the accumulated signature as a PROCEDURE type.
func (b *ProcedureBuilder) Type(name string) *types.Type {
	size := types.PointerSize
	return &types.Type{
		Kind:        types.Procedure,
		RuntimeSize: uint32(size),
		Alignment:   uint32(size),
		Arguments:   b.arguments,
		ReturnType:  b.returnType,
		Variadic:    b.variadic,
		Name:        name,
	}
}

// RegisterCCall installs a foreign procedure, per spec.md §6's
// register_ccall(name, callback, procedure_type) contract. It returns false
// if name is already declared in the global scope.
func (r *Resolver) RegisterCCall(name string, fn func(it *interp.Interpreter), sig *ProcedureBuilder) bool {
	procType := sig.Type(name)
	sym, err := r.Global.Put(name)
	if err != nil {
		return false
	}
	sym.Type = procType
	sym.Flags = symbols.Constant | symbols.CompilerDef

	index := uint64(len(r.ccalls))
	r.ccalls = append(r.ccalls, &interp.CCall{Name: name, Proc: procType, Func: fn})
	sym.Address = symbols.Address{Kind: symbols.CCall, Offset: index}
	return true
}
