// Package kano is the embeddable front door to the resolver/interpreter
// pair: build a global scope (by hand, or via pkg/kano/build's fluent
// helpers), Compile it, then Run the result. This is the collaborator
// boundary SPEC_FULL.md describes for the lexer/parser this module doesn't
// implement — any caller that owns an internal/ast.GlobalScope, however it
// got one, can drive a Kano program through this package alone.
//
// Grounded on the shape of the teacher's own top-level package
// (github.com/cwbudde/go-dws exposing lexer.New/parser.New/interp.New as a
// small pipeline), adapted to Kano's resolve-then-interpret split.
package kano

import (
	"fmt"

	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/errors"
	"github.com/Zero5620/Kano/internal/interp"
	"github.com/Zero5620/Kano/internal/resolver"
	"github.com/Zero5620/Kano/internal/types"
)

// DefaultStackSize and DefaultGlobalSize size the interpreter's segments
// when a caller doesn't have a more specific memory budget in mind; Run
// enlarges either one if the resolver's address planner required more.
const (
	DefaultStackSize  = 1 << 20
	DefaultGlobalSize = 1 << 20
)

// Build creates a fresh Resolver with every built-in type and operator
// overload registered, per spec.md §6. Callers register ccalls against it
// (Resolver.RegisterCCall / NewProcedureBuilder) before calling Compile.
func Build() *resolver.Resolver {
	return resolver.Create()
}

// Program is a successfully resolved Kano program, ready to Run.
type Program struct {
	Resolver *resolver.Resolver
	Inits    []*codetree.Assignment
}

// Compile resolves scope against r. On any resolution error it returns nil
// and a single error whose message is the wire-formatted diagnostic batch
// (errors.FormatAll), per spec.md §7's error propagation policy.
func Compile(r *resolver.Resolver, scope *ast.GlobalScope) (*Program, error) {
	inits := r.Resolve(scope)
	if r.ErrorCount() > 0 {
		return nil, fmt.Errorf("%s", errors.FormatAll(r.Errors))
	}
	return &Program{Resolver: r, Inits: inits}, nil
}

// Run allocates an interpreter's STACK/GLOBAL segments (at least as large
// as the address planner required), preloads string-literal constants,
// evaluates the program's global initialisers, then finds and calls main,
// per spec.md §6's resolve/interpret contract.
func (p *Program) Run(stackSize, globalSize uint64) (interp.Value, error) {
	if want := uint64(p.Resolver.StackAllocated()); stackSize < want {
		stackSize = want
	}
	if want := uint64(p.Resolver.BSSAllocated()); globalSize < want {
		globalSize = want
	}

	it := interp.New()
	it.Init(stackSize, globalSize, p.Resolver.Code(), p.Resolver.CCalls(), types.VoidPointerType)
	for _, s := range p.Resolver.StringConsts() {
		it.PreloadGlobalString(s.HeaderOffset, s.DataOffset, s.Bytes)
	}
	it.EvalGlobals(p.Inits)

	call, err := interp.FindMain(p.Resolver.Global)
	if err != nil {
		return interp.Value{}, err
	}
	return it.EvaluateProcedure(call), nil
}
