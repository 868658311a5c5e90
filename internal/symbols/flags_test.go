package symbols

import "testing"

func TestFlagHas(t *testing.T) {
	f := Constant | LValue

	if !f.Has(Constant) {
		t.Error("expected Constant bit set")
	}
	if !f.Has(LValue) {
		t.Error("expected LValue bit set")
	}
	if f.Has(IsType) {
		t.Error("did not expect IsType bit set")
	}
}

func TestFlagCombinationsAreIndependent(t *testing.T) {
	bits := []Flag{Constant, LValue, IsType, ConstExpr, CompilerDef}
	for i, a := range bits {
		for j, b := range bits {
			if i == j {
				continue
			}
			if a&b != 0 {
				t.Errorf("flags %d and %d overlap bits", i, j)
			}
		}
	}
}
