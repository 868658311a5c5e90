// Package symbols implements Kano's symbol table: a chain of lexically
// nested scopes, and a bucketed arena that hands out stable addresses for
// the symbols declared in them.
//
// Grounded on original_source/Resolver.cpp's Bucket_Array<T,N> arena and its
// symbols table, generalized from the teacher's internal/semantic/symbol_table.go
// (case-insensitive, overload-aware) down to Kano's simpler case-sensitive,
// overload-free model: Kano has no function overloading, only the separate
// unary/binary operator-overload tables resolved in internal/resolver.
package symbols

import "fmt"

const bucketSize = 64

// arena is a Bucket_Array<Symbol, 64> equivalent: a list of fixed-size
// backing buckets. Appending never reallocates existing elements, so a
// *Symbol handed out earlier stays valid for the arena's lifetime — the
// same property original_source relies on to store raw Symbol* pointers in
// address/expression nodes.
type arena struct {
	buckets [][]Symbol
}

func (a *arena) alloc() *Symbol {
	if len(a.buckets) == 0 || len(a.buckets[len(a.buckets)-1]) == cap(a.buckets[len(a.buckets)-1]) {
		a.buckets = append(a.buckets, make([]Symbol, 0, bucketSize))
	}
	last := &a.buckets[len(a.buckets)-1]
	*last = append(*last, Symbol{})
	return &(*last)[len(*last)-1]
}

// Table is one lexical scope: global scope, a procedure body, or a nested
// block. Lookups walk Parent when a name isn't found locally.
type Table struct {
	Parent  *Table
	symbols map[string]*Symbol
	order   []string
	arena   *arena
}

// NewTable creates a scope nested inside parent. Pass a nil parent for the
// global scope; it allocates its own arena, shared by every descendant
// scope so all symbols in a resolve pass live in one backing store.
func NewTable(parent *Table) *Table {
	t := &Table{Parent: parent, symbols: make(map[string]*Symbol)}
	if parent != nil {
		t.arena = parent.arena
	} else {
		t.arena = &arena{}
	}
	return t
}

// Put declares name in this scope and returns its freshly arena-allocated
// Symbol for the caller to fill in. It returns an error if name is already
// declared in this exact scope (shadowing an outer scope is fine).
func (t *Table) Put(name string) (*Symbol, error) {
	if _, exists := t.symbols[name]; exists {
		return nil, fmt.Errorf("redeclaration of %q in the same scope", name)
	}
	sym := t.arena.alloc()
	sym.Name = name
	t.symbols[name] = sym
	t.order = append(t.order, name)
	return sym, nil
}

// Find looks up name in this scope. When recursive is true and name isn't
// declared here, the search continues up the Parent chain.
func (t *Table) Find(name string, recursive bool) *Symbol {
	if sym, ok := t.symbols[name]; ok {
		return sym
	}
	if recursive && t.Parent != nil {
		return t.Parent.Find(name, recursive)
	}
	return nil
}

// Names returns the symbol names declared directly in this scope, in
// declaration order.
func (t *Table) Names() []string {
	return t.order
}
