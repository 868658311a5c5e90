package httpfront_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/httpfront"
	"github.com/Zero5620/Kano/internal/resolver"
	"github.com/Zero5620/Kano/pkg/kano/build"
	"github.com/Zero5620/Kano/pkg/kano/builtins"
)

func TestParseRequestWithoutInputPrefix(t *testing.T) {
	source, stdin := httpfront.ParseRequest([]byte("main :: proc () {}"))
	if source != "main :: proc () {}" {
		t.Errorf("source = %q, want the whole body", source)
	}
	if stdin != "" {
		t.Errorf("stdin = %q, want empty", stdin)
	}
}

func TestParseRequestWithInputPrefix(t *testing.T) {
	body := "##INPUT hello world\nmain :: proc () {}"
	source, stdin := httpfront.ParseRequest([]byte(body))
	if stdin != "hello world" {
		t.Errorf("stdin = %q, want %q", stdin, "hello world")
	}
	if source != "main :: proc () {}" {
		t.Errorf("source = %q, want %q", source, "main :: proc () {}")
	}
}

func TestParseRequestWithInputPrefixButNoNewline(t *testing.T) {
	source, stdin := httpfront.ParseRequest([]byte("##INPUT only stdin, no source"))
	if source != "" {
		t.Errorf("source = %q, want empty", source)
	}
	if stdin != "only stdin, no source" {
		t.Errorf("stdin = %q, want the remainder", stdin)
	}
}

// printProgram builds a trivial `print("ok")` program directly with
// pkg/kano/build, standing in for a real lexer/parser's Compile hook.
func printProgram(string) (*ast.GlobalScope, error) {
	scope := build.Global(
		build.Const("main", nil, build.Proc(nil, build.Block(
			build.Expr(build.Call(build.Id("print"), build.Str("ok"))),
		))),
	)
	return scope, nil
}

func TestHandlerRunsProgramAndReturnsOutput(t *testing.T) {
	configure := func(r *resolver.Resolver, stdin string, stdout *strings.Builder) {
		builtins.RegisterPrint(r, stdout)
	}
	h := httpfront.Handler(printProgram, configure, 4096, 4096)

	req := httptest.NewRequest("POST", "/run", strings.NewReader("main :: proc () {}"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s, want it to contain the captured output %q", rec.Body.String(), "ok")
	}
}

func TestHandlerOptionsRequestReturnsNoContent(t *testing.T) {
	h := httpfront.Handler(printProgram, nil, 4096, 4096)
	req := httptest.NewRequest("OPTIONS", "/run", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != 204 {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestHandlerCompileErrorReturnsTextPlainError(t *testing.T) {
	compile := func(string) (*ast.GlobalScope, error) {
		return nil, errCompile{}
	}
	h := httpfront.Handler(compile, nil, 4096, 4096)
	req := httptest.NewRequest("POST", "/run", strings.NewReader("garbage"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "ERROR:Compile Error:") {
		t.Errorf("body = %q, want it to start with %q", rec.Body.String(), "ERROR:Compile Error:")
	}
}

type errCompile struct{}

func (errCompile) Error() string { return "boom" }
