package interp

import (
	"github.com/Zero5620/Kano/internal/codetree"
	"github.com/Zero5620/Kano/internal/symbols"
	"github.com/Zero5620/Kano/internal/types"
)

// InterceptKind names the statement/call boundaries the interceptor hook
// fires at, per SPEC_FULL.md §4.6.
type InterceptKind int

const (
	InterceptStatement InterceptKind = iota
	InterceptProcedureCall
	InterceptProcedureReturn
)

// Interceptor is the host-supplied debugging hook. The default is a no-op.
type Interceptor func(it *Interpreter, kind InterceptKind, node codetree.Statement)

// Interpreter is the stack-based tree-walking virtual machine. Construct
// with New, then Init before evaluating any code tree.
type Interpreter struct {
	Stack []byte
	Global []byte

	StackTop uint64

	CurrentProcedure *types.Type
	CurrentRow       int

	// CurrentVariadicCount is the number of variadic arguments packed for
	// the call currently invoking a ccall, set by evalProcedureCall. The
	// tag-area pointer the ABI hands a ccall (spec.md §4.5) only marks
	// where the tail starts, not how many entries it holds, so this is the
	// side channel VariadicArgs uses to know where to stop.
	CurrentVariadicCount int

	Interceptor Interceptor

	// Code and CCalls are indexed by a symbol's Address.Offset for
	// symbols.Code and symbols.CCall addresses respectively, populated by
	// the resolver at Init from its procedure/ccall tables.
	Code   []*codetree.Block
	CCalls []*CCall

	// VoidPointerType is the resolved *void type, used to encode a variadic
	// call's tail pointer slot (null when the call passes no variadic
	// arguments); the tag area's entries are typeRegistry indices. Passed in
	// at Init instead of a back-reference to the resolver, per this
	// package's doc comment.
	VoidPointerType *types.Type

	// typeRegistry interns the *types.Type values used as variadic-tail
	// tags; a tag is stored in the tail area as this slice's index rather
	// than a raw pointer, since the ABI is this module's own Go-facing
	// contract rather than a wire format shared with another process.
	typeRegistry []*types.Type
}

// internType returns the stable tag index for t, registering it on first use.
func (it *Interpreter) internType(t *types.Type) uint64 {
	for i, existing := range it.typeRegistry {
		if existing == t {
			return uint64(i)
		}
	}
	it.typeRegistry = append(it.typeRegistry, t)
	return uint64(len(it.typeRegistry) - 1)
}

// TagType resolves a variadic-tail tag (as read from the tag area) back to
// the *types.Type it was packed with, for a ccall's formatter to dispatch on.
func (it *Interpreter) TagType(tag uint64) *types.Type {
	return it.typeRegistry[tag]
}

// New creates an interpreter with no memory allocated; call Init before use.
func New() *Interpreter {
	return &Interpreter{Interceptor: func(*Interpreter, InterceptKind, codetree.Statement) {}}
}

// Init allocates the STACK/GLOBAL segments and installs the resolver's
// code/ccall tables and built-in type, per SPEC_FULL.md §6's Interpreter API.
func (it *Interpreter) Init(stackSize, globalSize uint64, code []*codetree.Block, ccalls []*CCall, voidPtr *types.Type) {
	it.Stack = make([]byte, stackSize)
	it.Global = make([]byte, globalSize)
	it.StackTop = 0
	it.Code = code
	it.CCalls = ccalls
	it.VoidPointerType = voidPtr
}

// EvalGlobals runs each top-level initialiser assignment produced by
// resolving the program; these are compile-time constants so they reduce to
// plain stores into the GLOBAL segment.
func (it *Interpreter) EvalGlobals(inits []*codetree.Assignment) {
	for _, a := range inits {
		it.evalAssignment(a)
	}
}

// symbolAddr resolves a symbols.Symbol's Address plus a node's extra
// constant offset into an interpreter Addr.
func symbolAddr(sym *symbols.Symbol, extra uint32) Addr {
	switch sym.Address.Kind {
	case symbols.Stack:
		return Addr{Region: RegionStack, Offset: uint32(sym.Address.Offset) + extra}
	case symbols.Global:
		return Addr{Region: RegionGlobal, Offset: uint32(sym.Address.Offset) + extra}
	default:
		panic("interp: symbolAddr called on a non-memory address kind")
	}
}
