package symbols

// Flag is a bitset describing a symbol or a resolved expression node, per
// SPEC_FULL.md §3.2. Flags propagate from symbols onto the Address
// expression nodes the resolver builds for them, and combine (via & or |)
// as expressions are composed.
type Flag uint32

const (
	// Constant marks an immutable binding (declared with `::`).
	Constant Flag = 1 << iota
	// LValue marks an expression addressable as an assignment destination.
	LValue
	// IsType marks a symbol that denotes a type, not a runtime value.
	IsType
	// ConstExpr marks an expression whose value is known at resolve time.
	ConstExpr
	// CompilerDef marks a built-in symbol (int, float, bool, byte, *void, string, ...).
	CompilerDef
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }
