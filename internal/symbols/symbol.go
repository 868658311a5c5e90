package symbols

import (
	"github.com/Zero5620/Kano/internal/token"
	"github.com/Zero5620/Kano/internal/types"
)

// Symbol is one binding in a Table: a declared variable, constant,
// procedure, ccall, or type name.
type Symbol struct {
	Name     string
	Type     *types.Type
	Flags    Flag
	Address  Address
	Position token.Position
}

func (s *Symbol) IsConstant() bool  { return s.Flags.Has(Constant) }
func (s *Symbol) IsLValue() bool    { return s.Flags.Has(LValue) }
func (s *Symbol) IsType() bool      { return s.Flags.Has(IsType) }
func (s *Symbol) IsConstExpr() bool { return s.Flags.Has(ConstExpr) }
