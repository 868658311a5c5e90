// Package builtins registers the small set of ccalls a hosting program
// (cmd/kano, internal/httpfront, tests) typically wants available to every
// Kano program: output. None of this is core per spec.md §1 ("the foreign
// function registry beyond its entry contract" is out of scope) — it's a
// concrete, reusable tenant of that registry, grounded on spec.md §8's
// print scenarios (a fixed-argument `print(int)` and a fully variadic
// `print(...)` that stringifies and concatenates each argument in order).
package builtins

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Zero5620/Kano/internal/interp"
	"github.com/Zero5620/Kano/internal/resolver"
	"github.com/Zero5620/Kano/internal/types"
)

// RegisterPrint installs a fully variadic `print(...)` ccall that writes the
// stringified form of each argument, concatenated with no separator, to w.
func RegisterPrint(r *resolver.Resolver, w io.Writer) {
	sig := r.NewProcedureBuilder().Variadic()
	procType := sig.Type("print") // same accumulated signature RegisterCCall below rebuilds
	r.RegisterCCall("print", func(it *interp.Interpreter) {
		for _, arg := range it.VariadicArgs(procType) {
			fmt.Fprint(w, formatValue(it, arg.Type, arg.Imm))
		}
	}, sig)
}

// formatValue renders one decoded variadic argument the way Kano's print
// scenarios expect: ints/floats/bools in their natural textual form, a
// `string` argument's characters verbatim, and a raw byte as a single
// character.
func formatValue(it *interp.Interpreter, t *types.Type, imm interp.Immediate) string {
	switch t.Kind {
	case types.Integer:
		return strconv.FormatInt(imm.Int, 10)
	case types.Real:
		return strconv.FormatFloat(imm.Real, 'g', -1, 64)
	case types.Bool:
		return strconv.FormatBool(imm.Bool)
	case types.Character:
		return string(imm.Byte)
	case types.Struct:
		return it.ReadString(imm)
	default:
		return t.String()
	}
}
