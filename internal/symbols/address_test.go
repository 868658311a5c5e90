package symbols

import "testing"

func TestAddressKindString(t *testing.T) {
	cases := map[AddressKind]string{
		Stack: "STACK",
		Global: "GLOBAL",
		Code:  "CODE",
		CCall: "CCALL",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("AddressKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
