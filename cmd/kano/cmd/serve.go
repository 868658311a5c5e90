package cmd

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Zero5620/Kano/internal/ast"
	"github.com/Zero5620/Kano/internal/httpfront"
	"github.com/Zero5620/Kano/internal/resolver"
	"github.com/Zero5620/Kano/pkg/kano"
	"github.com/Zero5620/Kano/pkg/kano/builtins"
	"github.com/Zero5620/Kano/pkg/kano/samples"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built-in samples over HTTP",
	Long: fmt.Sprintf(`Start an HTTP server exposing internal/httpfront's request contract.

Since this module implements the resolver and interpreter but not a
lexer/parser, a request's source text must name one of the built-in
samples (%s) rather than carry Kano source directly — this is the
compile hook internal/httpfront.Handler takes, stood in for a real
front-end's source-to-AST step.`, strings.Join(samples.Names, ", ")),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
}

func runServe(_ *cobra.Command, _ []string) error {
	compile := func(source string) (*ast.GlobalScope, error) {
		name := strings.TrimSpace(source)
		scope, ok := samples.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(samples.Names, ", "))
		}
		return scope, nil
	}

	configure := func(r *resolver.Resolver, _ string, stdout *strings.Builder) {
		builtins.RegisterPrint(r, stdout)
	}

	handler := httpfront.Handler(compile, configure, kano.DefaultStackSize, kano.DefaultGlobalSize)

	fmt.Printf("listening on %s\n", serveAddr)
	return http.ListenAndServe(serveAddr, handler)
}
