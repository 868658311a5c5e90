package token

import "testing"

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got, want := p.String(), "3,7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
