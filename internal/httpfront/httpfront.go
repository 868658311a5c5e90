// Package httpfront is the HTTP front-end for running a Kano program on
// demand: a request body carrying source (and, on a leading "##INPUT "
// line, stdin text) is compiled and run against a fresh resolver and
// interpreter per request, with the program's output captured and returned
// as JSON.
//
// Grounded on original_source/Server.cpp's handle_request: one goroutine per
// request stands in for the original's one-pthread-per-request model, and
// ParseRequest below reproduces its "##INPUT " splitting rule byte-for-byte.
// Since this module has no lexer/parser (SPEC_FULL.md §3's Open Question
// resolves the upstream parser's absence by accepting an already-built
// internal/ast.GlobalScope from any caller), Handler takes a Compile hook
// that turns request source text into one, rather than the resolverFactory
// alone a parser-owning server could get away with.
package httpfront

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/resolver"
	"github.com/Zero5620/Kano/pkg/kano"
)

// inputPrefix is the leading-line marker original_source/Server.cpp's
// ParseRequest splits a request body on: the text between it and the first
// newline is stdin, everything after that newline is program source.
const inputPrefix = "##INPUT "

// ParseRequest splits body into (source, stdin) per the "##INPUT " rule: if
// body starts with inputPrefix, the text between it and the first newline
// is stdin and everything after that newline is source. Otherwise the whole
// body is source and stdin is empty.
func ParseRequest(body []byte) (source, stdin string) {
	s := string(body)
	if !strings.HasPrefix(s, inputPrefix) {
		return s, ""
	}
	rest := s[len(inputPrefix):]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return "", rest
	}
	return rest[nl+1:], rest[:nl]
}

// Compile turns request source text into a resolvable global scope — the
// collaborator boundary every lexer/parser implementation plugs into.
type Compile func(source string) (*ast.GlobalScope, error)

// Configure registers ccalls and other per-request resolver state against a
// freshly Built resolver, once per request, before Compile runs. stdin is
// the request's parsed input text; stdout collects whatever the registered
// ccalls write, to be returned as the response body.
type Configure func(r *resolver.Resolver, stdin string, stdout *strings.Builder)

// Response is the success-path reply body: the program's captured stdout.
type Response struct {
	Output string `json:"output"`
}

// Handler builds an http.Handler that compiles and runs one Kano program
// per request. Each request gets its own resolver, interpreter, and output
// buffer, so concurrent requests never share interpreter state. A
// compile or runtime error replies with a "text/plain" body of the form
// "ERROR:...", matching original_source/Server.cpp's failure path; success
// replies with an "application/json" Response.
func Handler(compile Compile, configure Configure, stackSize, globalSize uint64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			writeError(w, err)
			return
		}
		source, stdin := ParseRequest(body)

		r := kano.Build()
		var out strings.Builder
		if configure != nil {
			configure(r, stdin, &out)
		}

		scope, err := compile(source)
		if err != nil {
			writeError(w, fmt.Errorf("Compile Error: %w", err))
			return
		}

		program, err := kano.Compile(r, scope)
		if err != nil {
			writeError(w, err)
			return
		}

		if _, err := program.Run(stackSize, globalSize); err != nil {
			writeError(w, fmt.Errorf("Execution Error: %w", err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{Output: out.String()})
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "ERROR:%s", err.Error())
}
