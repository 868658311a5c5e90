// Command kano runs and serves Kano programs built with pkg/kano/build,
// standing in for the source-file driven CLI a real lexer/parser front-end
// would back (this module implements the resolver and interpreter only).
package main

import (
	"fmt"
	"os"

	"github.com/Zero5620/Kano/cmd/kano/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
