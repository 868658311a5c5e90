package interp

import "github.com/Zero5620/Kano/internal/codetree"
import "github.com/Zero5620/Kano/internal/types"

// evalTypeCast implements SPEC_FULL.md §4.6's Type_Cast evaluation:
// numeric conversions follow Go's own conversion semantics (truncation on
// REAL→INTEGER, nonzero test for →BOOL), and STATIC_ARRAY→ARRAY_VIEW builds
// a view immediate from the array's base address and element count.
func (it *Interpreter) evalTypeCast(c *codetree.TypeCast) Value {
	src := it.Eval(c.Expr)

	if c.Type.Kind == types.ArrayView && src.Type.Kind == types.StaticArray {
		if src.Addr == nil {
			panic("interp: cast of a non-addressable static array to a view")
		}
		return Value{Type: c.Type, Imm: Immediate{
			ViewLen:  int64(src.Type.ElementCount),
			ViewData: *src.Addr,
		}}
	}

	in := it.Load(src)
	return Value{Type: c.Type, Imm: castValue(src.Type, c.Type, in)}
}

func castValue(from, to *types.Type, in Immediate) Immediate {
	// Read the source as a float64 pivot for numeric conversions; booleans
	// and pointers are handled directly.
	toNumber := func() float64 {
		switch from.Kind {
		case types.Character:
			return float64(in.Byte)
		case types.Integer:
			return float64(in.Int)
		case types.Real:
			return in.Real
		case types.Bool:
			if in.Bool {
				return 1
			}
			return 0
		default:
			panic("interp: cast source of unsupported kind " + from.Kind.String())
		}
	}

	switch to.Kind {
	case types.Character:
		return Immediate{Byte: byte(int64(toNumber()))}
	case types.Integer:
		return Immediate{Int: int64(toNumber())}
	case types.Real:
		return Immediate{Real: toNumber()}
	case types.Bool:
		return Immediate{Bool: toNumber() != 0}
	case types.Pointer:
		return Immediate{Ptr: in.Ptr}
	default:
		panic("interp: cast target of unsupported kind " + to.Kind.String())
	}
}
