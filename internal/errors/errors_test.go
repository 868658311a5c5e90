package errors

import (
	"strings"
	"testing"

	"github.com/Zero5620/Kano/internal/token"
)

func TestErrorWireFormat(t *testing.T) {
	e := New(token.Position{Line: 2, Column: 5}, "undeclared identifier \"x\"")
	want := `ERROR:2,5 : undeclared identifier "x"`
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFormatWithSourceContext(t *testing.T) {
	e := &ResolveError{
		Message: "undeclared identifier",
		Source:  "var x := 1;\nprint(y);\n",
		Pos:     token.Position{Line: 2, Column: 7},
	}
	out := e.Format(false)
	if !strings.Contains(out, "print(y);") {
		t.Errorf("Format output missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format output missing caret:\n%s", out)
	}
	if !strings.Contains(out, "undeclared identifier") {
		t.Errorf("Format output missing message:\n%s", out)
	}
}

func TestFormatWithoutSourceOmitsCaret(t *testing.T) {
	e := New(token.Position{Line: 1, Column: 1}, "boom")
	out := e.Format(false)
	if strings.Contains(out, "^") {
		t.Errorf("Format should not render a caret line with no Source set:\n%s", out)
	}
}

func TestFormatAllJoinsWireLines(t *testing.T) {
	errs := []*ResolveError{
		New(token.Position{Line: 1, Column: 1}, "first"),
		New(token.Position{Line: 2, Column: 3}, "second"),
	}
	want := "ERROR:1,1 : first\nERROR:2,3 : second\n"
	if got := FormatAll(errs); got != want {
		t.Errorf("FormatAll() = %q, want %q", got, want)
	}
}

func TestFormatAllEmpty(t *testing.T) {
	if got := FormatAll(nil); got != "" {
		t.Errorf("FormatAll(nil) = %q, want empty string", got)
	}
}
