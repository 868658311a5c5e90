// Package resolver lowers an AST (internal/ast) into a typed code tree
// (internal/codetree): symbol tables, type inference and checking, implicit
// and explicit cast insertion, operator overload resolution, address
// assignment, and constant folding via internal/interp.
//
// Grounded on original_source/Resolver.cpp and original_source/Resolver.h,
// shaped the way the teacher splits its own lowering pass across
// internal/semantic (symbol_table.go) and internal/interp (binary_ops.go,
// value.go): one exported Resolver type with its algorithm spread across a
// handful of concern-named files in this package.
package resolver

import (
	"fmt"

	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/errors"
	"github.com/Zero5620/Kano/internal/interp"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/token"
	"github.com/Zero5620/Kano/internal/types"
)

// Resolver is one resolve pass's state: the address planner's two cursors,
// the global symbol table, the registered operator tables, the ccall
// registry, and the accumulated error stream.
type Resolver struct {
	Global *symbols.Table

	stackCursor  uint32
	globalCursor uint32
	maxStack     uint32

	unary  []unaryOverload
	binary []binaryOverload

	ccalls []*interp.CCall
	code   []*codetree.Block

	// structIDSeq hands out STRUCT type identities; 1 is reserved for the
	// built-in string type.
	structIDSeq uint64

	loopDepth    int
	returnStack  []*types.Type // top = current procedure's return type (nil entries mean void)

	Errors []*errors.ResolveError

	// StringType is the built-in `string` struct: { length int; data *void }.
	StringType *types.Type

	// stringConsts accumulates every string literal's GLOBAL-segment
	// backing storage, for the host to preload before running the program.
	stringConsts []StringConst
}

// Create builds a Resolver with every built-in type and operator overload
// from SPEC_FULL.md §4.3 pre-registered, per spec.md §6's Resolver API.
func Create() *Resolver {
	r := &Resolver{Global: symbols.NewTable(nil), structIDSeq: 2}
	r.registerBuiltinTypes()
	r.registerOperators()
	return r
}

// nextStructID hands out a fresh STRUCT type identity.
func (r *Resolver) nextStructID() uint64 {
	id := r.structIDSeq
	r.structIDSeq++
	return id
}

func (r *Resolver) registerBuiltinTypes() {
	builtins := map[string]*types.Type{
		"byte":  types.ByteType,
		"int":   types.IntType,
		"float": types.FloatType,
		"bool":  types.BoolType,
	}
	for name, t := range builtins {
		sym, _ := r.Global.Put(name)
		sym.Type = t
		sym.Flags = symbols.IsType | symbols.CompilerDef
	}

	// string :: struct { length: int; data: *void } — built-in 16-byte
	// struct. The two members happen to be adjacent 8-byte fields; their
	// offsets (0 and 8) never collide, per SPEC_FULL.md §4's resolution of
	// the data/length "offset coincidence" Open Question.
	r.StringType = &types.Type{
		Kind:        types.Struct,
		Name:        "string",
		RuntimeSize: 16,
		Alignment:   8,
		ID:          1,
		Members: []types.Member{
			{Name: "length", Type: types.IntType, Offset: 0},
			{Name: "data", Type: types.VoidPointerType, Offset: 8},
		},
	}
	sym, _ := r.Global.Put("string")
	sym.Type = r.StringType
	sym.Flags = symbols.IsType | symbols.CompilerDef
}

// Find looks up a symbol of any kind, type symbols included, by name in the
// global scope.
func (r *Resolver) Find(name string) *symbols.Symbol {
	return r.Global.Find(name, true)
}

// FindType looks up a type symbol by name and returns its type.
func (r *Resolver) FindType(name string) *types.Type {
	sym := r.Global.Find(name, true)
	if sym == nil || !sym.IsType() {
		return nil
	}
	return sym.Type
}

func (r *Resolver) StackAllocated() uint32 { return r.maxStack }
func (r *Resolver) BSSAllocated() uint32   { return r.globalCursor }
func (r *Resolver) ErrorCount() int        { return len(r.Errors) }

// Code returns the procedure-body table the interpreter indexes
// symbols.Code addresses into.
func (r *Resolver) Code() []*codetree.Block { return r.code }

// CCalls returns the ccall table the interpreter indexes symbols.CCall
// addresses into.
func (r *Resolver) CCalls() []*interp.CCall { return r.ccalls }

// report records a resolution error at pos, per spec.md §7's propagation
// policy (the core itself does not unwind; callers inspect ErrorCount).
func (r *Resolver) report(pos token.Position, format string, args ...any) {
	r.Errors = append(r.Errors, errors.New(pos, fmt.Sprintf(format, args...)))
}

// Resolve lowers a global scope AST into the global symbol table and
// returns the top-level initialiser assignments, per spec.md §6's
// resolve(global_scope) contract.
func (r *Resolver) Resolve(scope *ast.GlobalScope) []*codetree.Assignment {
	var inits []*codetree.Assignment
	for _, entry := range scope.Block.Statements {
		decl, ok := entry.Node.(*ast.Declaration)
		if !ok {
			r.report(entry.Position, "only declarations are allowed at global scope")
			continue
		}
		if a := r.resolveDeclaration(r.Global, decl, symbols.Global); a != nil {
			inits = append(inits, a)
		}
	}
	return inits
}
